package readers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"log-analyzer/internal/shared/loggers"
)

const (
	urlSourcePrefix = "URL: "
	unknownName     = "unknown"
)

type urlReader struct {
	client *http.Client
}

func newURLReader(client *http.Client) *urlReader {
	if client == nil {
		client = http.DefaultClient
	}
	return &urlReader{client: client}
}

// Read validates rawURL and defers the GET until the lines are ranged over. Transport failures
// and non-200 answers are yielded as errors.
func (r *urlReader) Read(ctx context.Context, rawURL string) (*Input, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return nil, errSourceUnavailable(fmt.Sprintf("invalid log URL: %s", rawURL), err)
	}

	return &Input{
		Sources: []string{urlSourcePrefix + fileNameOf(u)},
		Lines: func(yield func(string, error) bool) {
			logger := loggers.Ctx(ctx)
			logger.Debug().Str(loggers.FieldSource, rawURL).Msg("fetching remote log")

			req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
			if err != nil {
				yield("", errSourceUnavailable(fmt.Sprintf("invalid log URL: %s", rawURL), err))
				return
			}

			resp, err := r.client.Do(req)
			if err != nil {
				yield("", errSourceUnavailable(fmt.Sprintf("failed to fetch log URL: %s", rawURL), err))
				return
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				logger.Warn().Str(loggers.FieldSource, rawURL).Int(loggers.FieldHttpStatus, resp.StatusCode).Msg("remote log not available")
				yield("", errSourceUnavailable(fmt.Sprintf("log URL returned status %d: %s", resp.StatusCode, rawURL), nil))
				return
			}

			scanLines(ctx, resp.Body, sourceKindURL, yield)
		},
	}, nil
}

// fileNameOf returns the last path segment of u, or "unknown" when the path ends with a slash.
func fileNameOf(u *url.URL) string {
	name := u.Path[strings.LastIndexByte(u.Path, '/')+1:]
	if name == "" {
		return unknownName
	}
	return name
}
