// Package readers turns a log location (a file, a glob or an HTTP URL) into a lazy sequence of lines.
package readers

import (
	"bufio"
	"context"
	"io"
	"iter"
	"net/http"
	"strings"

	"log-analyzer/internal/parsers"
)

const maxLineBytes = 1024 * 1024

// Input is a lazily consumed log source. Ranging over Lines opens and reads the underlying
// files or HTTP body; an error pair ends the sequence.
type Input struct {
	Sources []string
	Lines   iter.Seq2[string, error]
}

//go:generate mockgen -source=line_reader.go -destination=./mocks/line_reader_mock.go -package=mocks
type LineReader interface {
	// Read resolves location. Locations starting with http:// or https:// are fetched over HTTP,
	// anything else is a local path or glob pattern.
	Read(ctx context.Context, location string) (*Input, error)
}

type lineReader struct {
	files *fileReader
	urls  *urlReader
}

func NewLineReader(parser parsers.RecordParser, httpClient *http.Client) LineReader {
	return &lineReader{
		files: newFileReader(parser),
		urls:  newURLReader(httpClient),
	}
}

func (r *lineReader) Read(ctx context.Context, location string) (*Input, error) {
	location = strings.TrimSpace(location)
	if isURL(location) {
		return r.urls.Read(ctx, location)
	}
	return r.files.Read(ctx, location)
}

// FromReader wraps an already open stream, e.g. an HTTP request body, as a single-source Input.
func FromReader(ctx context.Context, name string, rd io.Reader) *Input {
	var sources []string
	if name != "" {
		sources = []string{name}
	}
	return &Input{
		Sources: sources,
		Lines: func(yield func(string, error) bool) {
			scanLines(ctx, rd, sourceKindStream, yield)
		},
	}
}

func isURL(location string) bool {
	lower := strings.ToLower(location)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// scanLines yields every line of rd. It returns false when the consumer stopped early or an error
// was yielded, so callers chaining several readers know to stop.
func scanLines(ctx context.Context, rd io.Reader, kind string, yield func(string, error) bool) bool {
	scanner := bufio.NewScanner(rd)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lines := metricLinesReadTotal.WithLabelValues(kind)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			yield("", err)
			return false
		}
		lines.Inc()
		if !yield(scanner.Text(), nil) {
			return false
		}
	}
	if err := scanner.Err(); err != nil {
		yield("", err)
		return false
	}
	return true
}
