package aggregators

import (
	"log-analyzer/internal/shared/metrics"
)

// metricRecordsAccumulatedTotal counts the records folded into run statistics, i.e. the lines that
// were parsed and passed the filter.
var (
	metricRecordsAccumulatedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "records_accumulated_total",
		},
	)
)
