package readers

import (
	"log-analyzer/internal/shared/metrics"
)

const (
	sourceKindFile   = "file"
	sourceKindURL    = "url"
	sourceKindStream = "stream"
)

// metricLinesReadTotal counts raw lines handed to the parser, by kind of source (file, url, stream).
var (
	metricLinesReadTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReader,
			Name:      "lines_read_total",
		},
		[]string{"source_kind"},
	)
)
