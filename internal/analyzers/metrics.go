package analyzers

import (
	"log-analyzer/internal/shared/metrics"
)

const (
	reasonUnparseable = "unparseable"
	reasonFiltered    = "filtered"
)

var (
	// metricRecordsRejectedTotal counts lines that did not reach the statistics, by reason:
	// "unparseable" for lines outside the log format, "filtered" for records the filter rejected.
	metricRecordsRejectedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalysis,
			Name:      "records_rejected_total",
		},
		[]string{"reason"},
	)

	metricRunsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalysis,
			Name:      "runs_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
