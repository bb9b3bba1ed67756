package analyzers

import (
	"bytes"
	"context"
	"errors"
	"io"

	"log-analyzer/internal/aggregators"
	"log-analyzer/internal/filters"
	"log-analyzer/internal/models"
	"log-analyzer/internal/parsers"
	"log-analyzer/internal/readers"
	"log-analyzer/internal/reporters"
	"log-analyzer/internal/shared/loggers"
	"log-analyzer/internal/shared/metrics"
	"log-analyzer/internal/shared/svcerrors"
	"log-analyzer/internal/shared/ulid"
	"log-analyzer/internal/stores"
)

const defaultBodySource = "request body"

// AnalyzeResult is the outcome of a successful run.
type AnalyzeResult struct {
	RunID   string
	Report  *stores.StoredReport
	Summary *models.StatisticsSummary
}

// Options holds the service-wide defaults of a run.
type Options struct {
	DefaultFormat     string
	DefaultFilterMode string
	// ReportName is the base name of every stored report. Empty means one report per run, named
	// after the run ID.
	ReportName string
}

//go:generate mockgen -source=analysis_service.go -destination=./mocks/analysis_service_mock.go -package=mocks
type AnalysisService interface {
	// Analyze reads, parses, filters and aggregates the log lines of req in one pass, then renders
	// and stores the report.
	Analyze(ctx context.Context, req *AnalyzeRequest) (*AnalyzeResult, error)
	// GetReport opens a report stored by an earlier run.
	GetReport(ctx context.Context, key string) (io.ReadCloser, error)
}

type analysisService struct {
	parser      parsers.RecordParser
	lineReader  readers.LineReader
	collector   aggregators.StatisticsCollector
	reportStore stores.ReportStore
	opts        Options
}

func NewAnalysisService(
	parser parsers.RecordParser,
	lineReader readers.LineReader,
	collector aggregators.StatisticsCollector,
	reportStore stores.ReportStore,
	opts Options,
) AnalysisService {
	if opts.DefaultFormat == "" {
		opts.DefaultFormat = string(models.FormatMarkdown)
	}
	if opts.DefaultFilterMode == "" {
		opts.DefaultFilterMode = string(filters.ModeSubstring)
	}
	return &analysisService{
		parser:      parser,
		lineReader:  lineReader,
		collector:   collector,
		reportStore: reportStore,
		opts:        opts,
	}
}

func (s *analysisService) Analyze(ctx context.Context, req *AnalyzeRequest) (*AnalyzeResult, error) {
	result, err := s.analyze(ctx, req)
	if err != nil {
		svcErr := svcerrors.Ensure(err)
		metricRunsTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}
	metricRunsTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return result, nil
}

func (s *analysisService) analyze(ctx context.Context, req *AnalyzeRequest) (*AnalyzeResult, error) {
	if req == nil {
		return nil, errValidationFailed("empty request", nil)
	}

	runID := ulid.NewULID()
	logger := loggers.Ctx(ctx).With().Str(loggers.FieldRunID, runID).Logger()
	ctx = logger.WithContext(ctx)

	req.normalize(s.opts.DefaultFormat, s.opts.DefaultFilterMode)
	logger.Debug().Msgf("started analysis of path: %q, from: %q, to: %q, filter: %q=%q (%s), format: %s",
		req.Path, req.From, req.To, req.FilterField, req.FilterValue, req.FilterMode, req.Format)

	filterOpts, err := req.validate()
	if err != nil {
		return nil, err
	}
	filter, err := filters.NewRecordFilter(filterOpts)
	if err != nil {
		return nil, errValidationFailed("invalid request: filter_value is not a valid regular expression", err)
	}

	input, err := s.openInput(ctx, req)
	if err != nil {
		return nil, err
	}

	var streamErr error
	records := func(yield func(*models.LogRecord) bool) {
		for line, err := range input.Lines {
			if err != nil {
				streamErr = err
				return
			}
			record, ok := s.parser.Parse(line)
			if !ok {
				metricRecordsRejectedTotal.WithLabelValues(reasonUnparseable).Inc()
				continue
			}
			if !filter.Accept(record) {
				metricRecordsRejectedTotal.WithLabelValues(reasonFiltered).Inc()
				continue
			}
			if !yield(record) {
				return
			}
		}
	}

	stats := s.collector.Collect(records, input.Sources)
	if streamErr != nil {
		if svcErr, ok := svcerrors.As(streamErr); ok {
			return nil, svcErr
		}
		return nil, errInternalStreamFailed(streamErr)
	}
	summary := stats.Summary()

	reporter, err := reporters.New(models.ReportFormat(req.Format))
	if err != nil {
		return nil, errInternalRenderFailed(err)
	}
	var buf bytes.Buffer
	if err := reporter.Render(&buf, req.report(runID, summary)); err != nil {
		return nil, errInternalRenderFailed(err)
	}

	name := s.opts.ReportName
	if name == "" {
		name = runID
	}
	stored, err := s.reportStore.Put(ctx, name, models.ReportFormat(req.Format), &buf)
	if err != nil {
		if errors.Is(err, stores.ErrReportAlreadyExists) {
			return nil, errReportAlreadyExists(err)
		}
		return nil, errInternalStorageFailed(err)
	}

	logger.Info().
		Str(loggers.FieldReportKey, stored.Key).
		Int64("total_requests", summary.TotalRequests).
		Int("unique_addresses", summary.UniqueAddressCount).
		Strs(loggers.FieldSource, summary.Sources).
		Msg("analysis completed")

	return &AnalyzeResult{
		RunID:   runID,
		Report:  stored,
		Summary: summary,
	}, nil
}

func (s *analysisService) GetReport(ctx context.Context, key string) (io.ReadCloser, error) {
	rc, err := s.reportStore.Get(ctx, key)
	if err != nil {
		if errors.Is(err, stores.ErrReportNotFound) || errors.Is(err, stores.ErrInvalidReportKey) {
			return nil, errReportNotFound(err)
		}
		return nil, errInternalStorageFailed(err)
	}
	return rc, nil
}

func (s *analysisService) openInput(ctx context.Context, req *AnalyzeRequest) (*readers.Input, error) {
	if req.Body != nil {
		source := req.Source
		if source == "" {
			source = defaultBodySource
		}
		return readers.FromReader(ctx, source, req.Body), nil
	}
	return s.lineReader.Read(ctx, req.Path)
}
