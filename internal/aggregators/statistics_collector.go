package aggregators

import (
	"iter"

	"log-analyzer/internal/models"
)

type StatisticsCollector interface {
	// Collect drains records in a single forward pass and returns the finalized statistics.
	Collect(records iter.Seq[*models.LogRecord], sources []string) *Statistics
}

type statisticsCollector struct{}

func NewStatisticsCollector() StatisticsCollector {
	return &statisticsCollector{}
}

func (c *statisticsCollector) Collect(records iter.Seq[*models.LogRecord], sources []string) *Statistics {
	stats := NewStatistics(sources)
	if records != nil {
		for record := range records {
			stats.Ingest(record)
			metricRecordsAccumulatedTotal.Inc()
		}
	}
	stats.Finalize()
	return stats
}
