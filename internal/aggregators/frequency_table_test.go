package aggregators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrequencyTable_Top(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		keys     []string
		n        int
		expected []Entry[string]
	}{
		{
			name:     "empty table",
			n:        3,
			expected: []Entry[string]{},
		},
		{
			name: "descending by count",
			keys: []string{"/b", "/a", "/a", "/c", "/a", "/c"},
			n:    3,
			expected: []Entry[string]{
				{Key: "/a", Count: 3},
				{Key: "/c", Count: 2},
				{Key: "/b", Count: 1},
			},
		},
		{
			name: "ties keep first seen order",
			keys: []string{"/z", "/y", "/x", "/w"},
			n:    3,
			expected: []Entry[string]{
				{Key: "/z", Count: 1},
				{Key: "/y", Count: 1},
				{Key: "/x", Count: 1},
			},
		},
		{
			name: "tie after later increments",
			keys: []string{"/a", "/b", "/b", "/a"},
			n:    3,
			expected: []Entry[string]{
				{Key: "/a", Count: 2},
				{Key: "/b", Count: 2},
			},
		},
		{
			name: "negative n returns everything",
			keys: []string{"/a", "/b", "/c", "/d"},
			n:    -1,
			expected: []Entry[string]{
				{Key: "/a", Count: 1},
				{Key: "/b", Count: 1},
				{Key: "/c", Count: 1},
				{Key: "/d", Count: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			table := NewFrequencyTable[string]()
			for _, k := range tt.keys {
				table.Inc(k)
			}
			assert.Equal(t, tt.expected, table.Top(tt.n))
		})
	}
}

func TestFrequencyTable_CountAndLen(t *testing.T) {
	t.Parallel()

	table := NewFrequencyTable[int]()
	table.Inc(200)
	table.Inc(404)
	table.Inc(200)

	assert.Equal(t, int64(2), table.Count(200))
	assert.Equal(t, int64(1), table.Count(404))
	assert.Equal(t, int64(0), table.Count(500))
	assert.Equal(t, 2, table.Len())
}
