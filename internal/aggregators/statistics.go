package aggregators

import (
	"math/bits"
	"slices"
	"strings"

	"log-analyzer/internal/models"

	"github.com/mileusna/useragent"
)

const (
	// TopN is the number of entries kept in every top list of the summary.
	TopN = 3

	unknownValue = "unknown"

	percentile = 95
)

// Statistics accumulates one analysis run. It is not safe for concurrent use; every run owns
// its own instance. After Finalize the instance is read-only and further Ingest calls are ignored.
type Statistics struct {
	total      int64
	addresses  map[string]struct{}
	resources  *FrequencyTable[string]
	statuses   *FrequencyTable[int]
	methods    *FrequencyTable[string]
	userAgents *FrequencyTable[string]
	// 128-bit running sum of the sizes: n sizes of up to 2^63-1 each never overflow it.
	sizeSumHi  uint64
	sizeSumLo  uint64
	sizes      []int64
	sources    []string

	finalized bool
	average   int64
	p95       int64
}

func NewStatistics(sources []string) *Statistics {
	return &Statistics{
		addresses:  make(map[string]struct{}),
		resources:  NewFrequencyTable[string](),
		statuses:   NewFrequencyTable[int](),
		methods:    NewFrequencyTable[string](),
		userAgents: NewFrequencyTable[string](),
		sources:    slices.Clone(sources),
	}
}

// Ingest folds one accepted record into every aggregate.
func (s *Statistics) Ingest(record *models.LogRecord) {
	if record == nil || s.finalized {
		return
	}

	s.total++
	s.addresses[record.RemoteAddr] = struct{}{}
	s.resources.Inc(resourceOf(record.Request))
	s.statuses.Inc(record.Status)
	s.methods.Inc(methodOf(record.Request))
	// sizes are never negative when they come from the parser
	size := max(record.BodyBytesSent, 0)
	s.sizes = append(s.sizes, size)
	var carry uint64
	s.sizeSumLo, carry = bits.Add64(s.sizeSumLo, uint64(size), 0)
	s.sizeSumHi += carry
	s.userAgents.Inc(userAgentFamily(record.HTTPUserAgent))
}

// Finalize computes the post-pass values. Calling it more than once has no further effect.
func (s *Statistics) Finalize() {
	if s.finalized {
		return
	}
	s.finalized = true

	if s.total > 0 {
		s.average = roundedMean(s.sizeSumHi, s.sizeSumLo, uint64(s.total))
	}
	s.p95 = percentileOf(s.sizes, percentile)
}

func (s *Statistics) TotalRequests() int64 {
	return s.total
}

func (s *Statistics) UniqueAddressCount() int {
	return len(s.addresses)
}

// Summary finalizes the statistics if needed and returns the read-only view handed to reporters.
func (s *Statistics) Summary() *models.StatisticsSummary {
	s.Finalize()

	summary := &models.StatisticsSummary{
		TotalRequests:            s.total,
		UniqueAddressCount:       len(s.addresses),
		TopResources:             keyCounts(s.resources.Top(TopN)),
		TopStatuses:              make([]models.StatusCount, 0, TopN),
		TopMethods:               keyCounts(s.methods.Top(TopN)),
		TopUserAgents:            keyCounts(s.userAgents.Top(TopN)),
		AverageResponseSize:      s.average,
		Percentile95ResponseSize: s.p95,
		Sources:                  slices.Clone(s.sources),
	}
	for _, e := range s.statuses.Top(TopN) {
		summary.TopStatuses = append(summary.TopStatuses, models.StatusCount{Code: e.Key, Count: e.Count})
	}
	if summary.Sources == nil {
		summary.Sources = []string{}
	}
	return summary
}

func keyCounts(entries []Entry[string]) []models.KeyCount {
	out := make([]models.KeyCount, 0, len(entries))
	for _, e := range entries {
		out = append(out, models.KeyCount{Key: e.Key, Count: e.Count})
	}
	return out
}

// resourceOf returns the token between the first and second space of the request line,
// e.g. "GET /index.html HTTP/1.1" -> "/index.html".
func resourceOf(request string) string {
	if strings.TrimSpace(request) == "" {
		return unknownValue
	}
	first := strings.IndexByte(request, ' ')
	if first < 0 {
		return request
	}
	second := strings.IndexByte(request[first+1:], ' ')
	if second < 0 {
		return request
	}
	return request[first+1 : first+1+second]
}

func methodOf(request string) string {
	if strings.TrimSpace(request) == "" {
		return unknownValue
	}
	end := strings.IndexByte(request, ' ')
	if end < 0 {
		return unknownValue
	}
	return request[:end]
}

// userAgentFamily parses the browser or bot family, or returns the raw string if parsing fails.
func userAgentFamily(ua string) string {
	if ua == "" {
		return unknownValue
	}
	parsed := useragent.Parse(ua)
	if parsed.Name != "" {
		return parsed.Name
	}
	return ua
}

// roundedMean divides the 128-bit sum hi:lo by n, rounding half away from zero. Every size fits in
// an int64, so hi < n and the quotient fits in an int64 as well.
func roundedMean(hi, lo, n uint64) int64 {
	quo, rem := bits.Div64(hi, lo, n)
	if rem >= n-rem {
		quo++
	}
	return int64(quo)
}

// percentileOf interpolates linearly between the two closest ranks and truncates the result.
// The rank p*(n-1)/100 is split into an integer index and a remainder, and the interpolation is
// done in integers, so no float error creeps into either.
func percentileOf(values []int64, p int) int64 {
	n := len(values)
	if n == 0 {
		return 0
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	pos := p * (n - 1)
	idx := pos / 100
	rem := pos % 100
	if rem == 0 {
		return sorted[idx]
	}

	lower, upper := sorted[idx], sorted[idx+1]
	// (upper-lower)*rem < 2^63*100, so the high word stays below the divisor
	hi, lo := bits.Mul64(uint64(upper-lower), uint64(rem))
	step, _ := bits.Div64(hi, lo, 100)
	return lower + int64(step)
}
