package aggregators

import "sort"

// FrequencyTable counts occurrences of keys and remembers the order in which keys were first seen,
// so ties in Top resolve to the earliest key.
type FrequencyTable[K comparable] struct {
	counts map[K]int64
	order  []K
}

func NewFrequencyTable[K comparable]() *FrequencyTable[K] {
	return &FrequencyTable[K]{
		counts: make(map[K]int64),
	}
}

func (t *FrequencyTable[K]) Inc(key K) {
	if _, ok := t.counts[key]; !ok {
		t.order = append(t.order, key)
	}
	t.counts[key]++
}

func (t *FrequencyTable[K]) Count(key K) int64 {
	return t.counts[key]
}

func (t *FrequencyTable[K]) Len() int {
	return len(t.order)
}

// Entry is one key of a FrequencyTable with its count.
type Entry[K comparable] struct {
	Key   K
	Count int64
}

// Top returns at most n entries ordered by descending count.
func (t *FrequencyTable[K]) Top(n int) []Entry[K] {
	entries := make([]Entry[K], 0, len(t.order))
	for _, k := range t.order {
		entries = append(entries, Entry[K]{Key: k, Count: t.counts[k]})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if n >= 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
