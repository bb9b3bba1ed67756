package stores

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"log-analyzer/internal/models"
	"log-analyzer/internal/shared/filestorages"
)

var (
	ErrReportAlreadyExists = errors.New("report already exists")
	ErrReportNotFound      = errors.New("report not found")
	ErrInvalidReportKey    = errors.New("invalid report key")
)

// StoredReport identifies a report after Put. Key is the file name the report is fetched back
// with, Path the absolute location on disk.
type StoredReport struct {
	Key  string
	Path string
}

// ReportStore keeps rendered reports as "<dir>/<name>.<ext>" files. Whether an existing report may
// be replaced is fixed when the store is built: the CLI rewrites report.md on every run, while the
// HTTP API never replaces a run's report.
//
//go:generate mockgen -source=report_store.go -destination=./mocks/report_store_mock.go -package=mocks
type ReportStore interface {
	Put(ctx context.Context, name string, format models.ReportFormat, content io.Reader) (*StoredReport, error)
	Get(ctx context.Context, key string) (io.ReadCloser, error)
}

type reportStore struct {
	fileStorage    filestorages.FileStorage
	dir            string
	allowOverwrite bool
}

// NewReportStore stores reports below dir inside fileStorage; an empty dir means the storage root.
func NewReportStore(fileStorage filestorages.FileStorage, dir string, allowOverwrite bool) ReportStore {
	return &reportStore{fileStorage: fileStorage, dir: dir, allowOverwrite: allowOverwrite}
}

func (s *reportStore) Put(ctx context.Context, name string, format models.ReportFormat, content io.Reader) (*StoredReport, error) {
	if !isFileName(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidReportKey, name)
	}
	key := format.FileName(name)

	result, err := s.fileStorage.Put(ctx, s.storageKey(key), content, filestorages.PutOptions{AllowOverwrite: s.allowOverwrite})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return nil, ErrReportAlreadyExists
		}
		return nil, fmt.Errorf("failed to put report: %w", err)
	}
	return &StoredReport{Key: key, Path: result.Path}, nil
}

func (s *reportStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	if !isFileName(key) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidReportKey, key)
	}

	rc, err := s.fileStorage.Get(ctx, s.storageKey(key))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return rc, nil
}

func (s *reportStore) storageKey(key string) string {
	if s.dir == "" {
		return key
	}
	return path.Join(s.dir, key)
}

// isFileName accepts a single path element such as "report" or "01ARZ3NDEKTSV4RRFFQ69G5FAV.md".
func isFileName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}
