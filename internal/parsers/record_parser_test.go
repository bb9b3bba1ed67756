package parsers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordParser_Parse_WellFormedLine(t *testing.T) {
	t.Parallel()

	parser := NewRecordParser()
	line := `109.234.3.35 - - [02/Jun/2015:15:06:00 +0000] "GET /downloads/product_2 HTTP/1.1" 404 336 "-" "Debian APT-HTTP/1.3 (0.9.7.9)"`

	record, ok := parser.Parse(line)

	require.True(t, ok)
	require.NotNil(t, record)
	assert.Equal(t, "109.234.3.35", record.RemoteAddr)
	assert.Empty(t, record.RemoteUser, "dash user should be absent")
	assert.True(t, record.TimeLocal.Equal(time.Date(2015, 6, 2, 15, 6, 0, 0, time.UTC)))
	assert.Equal(t, "GET /downloads/product_2 HTTP/1.1", record.Request)
	assert.Equal(t, 404, record.Status)
	assert.Equal(t, int64(336), record.BodyBytesSent)
	assert.Empty(t, record.HTTPReferer, "dash referer should be absent")
	assert.Equal(t, "Debian APT-HTTP/1.3 (0.9.7.9)", record.HTTPUserAgent)
}

func TestRecordParser_Parse_AllFieldsPresent(t *testing.T) {
	t.Parallel()

	parser := NewRecordParser()
	line := `10.0.0.1 - alice [31/Dec/2024:23:59:59 -0700] "POST /api/items?id=7 HTTP/2.0" 201 0 "https://example.com/page" "curl/8.0"`

	record, ok := parser.Parse(line)

	require.True(t, ok)
	assert.Equal(t, "10.0.0.1", record.RemoteAddr)
	assert.Equal(t, "alice", record.RemoteUser)
	assert.Equal(t, "POST /api/items?id=7 HTTP/2.0", record.Request)
	assert.Equal(t, 201, record.Status)
	assert.Equal(t, int64(0), record.BodyBytesSent)
	assert.Equal(t, "https://example.com/page", record.HTTPReferer)
	assert.Equal(t, "curl/8.0", record.HTTPUserAgent)

	// the offset is kept, so the calendar date stays the one written in the line
	_, offset := record.TimeLocal.Zone()
	assert.Equal(t, -7*3600, offset)
	assert.Equal(t, 31, record.TimeLocal.Day())
	assert.Equal(t, time.December, record.TimeLocal.Month())
	assert.Equal(t, 2024, record.TimeLocal.Year())
}

func TestRecordParser_Parse_AbsentMarkers(t *testing.T) {
	t.Parallel()

	parser := NewRecordParser()

	tests := []struct {
		name string
		line string
	}{
		{
			name: "dash markers",
			line: `1.2.3.4 - - [02/Jun/2015:15:06:00 +0000] "-" 200 10 "-" "-"`,
		},
		{
			name: "empty tokens",
			line: `1.2.3.4 -  [02/Jun/2015:15:06:00 +0000] "" 200 10 "" ""`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			record, ok := parser.Parse(tt.line)
			require.True(t, ok)
			assert.Empty(t, record.RemoteUser)
			assert.Empty(t, record.Request)
			assert.Empty(t, record.HTTPReferer)
			assert.Empty(t, record.HTTPUserAgent)
		})
	}
}

func TestRecordParser_Parse_OddRequestIsPreserved(t *testing.T) {
	t.Parallel()

	parser := NewRecordParser()
	line := `1.2.3.4 - - [02/Jun/2015:15:06:00 +0000] "\x16\x03\x01" 400 157 "-" "-"`

	record, ok := parser.Parse(line)

	require.True(t, ok)
	assert.Equal(t, `\x16\x03\x01`, record.Request)
	assert.Equal(t, 400, record.Status)
}

func TestRecordParser_Parse_NotARecord(t *testing.T) {
	t.Parallel()

	parser := NewRecordParser()

	tests := []struct {
		name string
		line string
	}{
		{
			name: "empty string",
			line: "",
		},
		{
			name: "missing fields",
			line: `109.234.3.35 - - [02/Jun/2015:15:06:00 +0000] "GET /downloads/product_2 HTTP/1.1" 404`,
		},
		{
			name: "invalid time",
			line: `109.234.3.35 - - [invalid_time] "GET /downloads/product_2 HTTP/1.1" 404 336 "-" "-"`,
		},
		{
			name: "unknown month",
			line: `109.234.3.35 - - [02/Foo/2015:15:06:00 +0000] "GET / HTTP/1.1" 404 336 "-" "-"`,
		},
		{
			name: "upper case month",
			line: `109.234.3.35 - - [02/JUN/2015:15:06:00 +0000] "GET / HTTP/1.1" 404 336 "-" "-"`,
		},
		{
			name: "lower case month",
			line: `109.234.3.35 - - [02/jun/2015:15:06:00 +0000] "GET / HTTP/1.1" 404 336 "-" "-"`,
		},
		{
			name: "missing offset",
			line: `109.234.3.35 - - [02/Jun/2015:15:06:00] "GET / HTTP/1.1" 404 336 "-" "-"`,
		},
		{
			name: "non numeric status",
			line: `109.234.3.35 - - [02/Jun/2015:15:06:00 +0000] "GET / HTTP/1.1" not_a_number 336 "-" "-"`,
		},
		{
			name: "four digit status",
			line: `109.234.3.35 - - [02/Jun/2015:15:06:00 +0000] "GET / HTTP/1.1" 4040 336 "-" "-"`,
		},
		{
			name: "dash size",
			line: `109.234.3.35 - - [02/Jun/2015:15:06:00 +0000] "GET / HTTP/1.1" 404 - "-" "-"`,
		},
		{
			name: "size overflows int64",
			line: `109.234.3.35 - - [02/Jun/2015:15:06:00 +0000] "GET / HTTP/1.1" 200 99999999999999999999 "-" "-"`,
		},
		{
			name: "trailing garbage",
			line: `109.234.3.35 - - [02/Jun/2015:15:06:00 +0000] "GET / HTTP/1.1" 200 1 "-" "-" 0.003`,
		},
		{
			name: "missing dash separator",
			line: `109.234.3.35 [02/Jun/2015:15:06:00 +0000] "GET / HTTP/1.1" 200 1 "-" "-"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var (
				ok bool
			)
			assert.NotPanics(t, func() {
				_, ok = parser.Parse(tt.line)
			})
			assert.False(t, ok)
		})
	}
}
