package models

// StatisticsSummary is the read-only result of one collection pass. It is what reporters
// and the HTTP API consume.
//
// Example JSON:
//
//	{
//	  "totalRequests": 3,
//	  "uniqueAddressCount": 2,
//	  "topResources": [{"key": "/index.html", "count": 2}, {"key": "/api/data", "count": 1}],
//	  "topStatuses": [{"code": 200, "count": 2}, {"code": 404, "count": 1}],
//	  "topMethods": [{"key": "GET", "count": 2}, {"key": "POST", "count": 1}],
//	  "topUserAgents": [{"key": "Chrome", "count": 3}],
//	  "averageResponseSize": 580,
//	  "percentile95ResponseSize": 926,
//	  "sources": ["access.log"]
//	}
type StatisticsSummary struct {
	TotalRequests            int64         `json:"totalRequests"`
	UniqueAddressCount       int           `json:"uniqueAddressCount"`
	TopResources             []KeyCount    `json:"topResources"`
	TopStatuses              []StatusCount `json:"topStatuses"`
	TopMethods               []KeyCount    `json:"topMethods"`
	TopUserAgents            []KeyCount    `json:"topUserAgents"`
	AverageResponseSize      int64         `json:"averageResponseSize"`
	Percentile95ResponseSize int64         `json:"percentile95ResponseSize"`
	Sources                  []string      `json:"sources"`
}

type KeyCount struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

type StatusCount struct {
	Code  int   `json:"code"`
	Count int64 `json:"count"`
}
