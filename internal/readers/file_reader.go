package readers

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"log-analyzer/internal/parsers"
	"log-analyzer/internal/shared/loggers"

	"github.com/bmatcuk/doublestar/v4"
)

const globChars = "*?[]"

type fileReader struct {
	parser parsers.RecordParser
}

func newFileReader(parser parsers.RecordParser) *fileReader {
	return &fileReader{parser: parser}
}

// Read resolves a single path or a glob pattern. Matched files without a single parseable line
// are skipped; a single path without one is an error.
func (r *fileReader) Read(ctx context.Context, location string) (*Input, error) {
	logger := loggers.Ctx(ctx)

	var paths []string
	if strings.ContainsAny(location, globChars) {
		matches, err := doublestar.FilepathGlob(location, doublestar.WithFilesOnly())
		if err != nil {
			return nil, errSourceUnavailable(fmt.Sprintf("invalid glob pattern: %s", location), err)
		}
		for _, path := range matches {
			ok, err := r.containsLogData(path)
			if err != nil || !ok {
				logger.Warn().Err(err).Str(loggers.FieldSource, path).Msg("skipping file without log records")
				continue
			}
			paths = append(paths, path)
		}
		if len(paths) == 0 {
			logger.Warn().Str(loggers.FieldSource, location).Msg("no log files matched the pattern")
		}
	} else {
		info, err := os.Stat(location)
		if err != nil {
			return nil, errSourceUnavailable(fmt.Sprintf("log file not found: %s", location), err)
		}
		if !info.Mode().IsRegular() {
			return nil, errSourceUnavailable(fmt.Sprintf("not a regular file: %s", location), nil)
		}
		ok, err := r.containsLogData(location)
		if err != nil {
			return nil, errSourceUnavailable(fmt.Sprintf("log file not readable: %s", location), err)
		}
		if !ok {
			return nil, errSourceUnavailable(fmt.Sprintf("no log records in file: %s", location), nil)
		}
		paths = []string{location}
	}

	sources := make([]string, 0, len(paths))
	seen := make(map[string]struct{}, len(paths))
	for _, path := range paths {
		name := filepath.Base(path)
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		sources = append(sources, name)
	}
	logger.Debug().Strs(loggers.FieldSource, sources).Msg("resolved log files")

	return &Input{
		Sources: sources,
		Lines: func(yield func(string, error) bool) {
			for _, path := range paths {
				if !readFile(ctx, path, yield) {
					return
				}
			}
		},
	}, nil
}

// containsLogData reports whether at least one line of the file parses as a record.
func (r *fileReader) containsLogData(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		if _, ok := r.parser.Parse(scanner.Text()); ok {
			return true, nil
		}
	}
	return false, scanner.Err()
}

func readFile(ctx context.Context, path string, yield func(string, error) bool) bool {
	f, err := os.Open(path)
	if err != nil {
		yield("", fmt.Errorf("open %s: %w", path, err))
		return false
	}
	defer f.Close()
	return scanLines(ctx, f, sourceKindFile, yield)
}
