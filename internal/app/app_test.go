package app

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"log-analyzer/internal/analyzers"
	internalhttp "log-analyzer/internal/http"
	"log-analyzer/internal/shared/configs"
	"log-analyzer/internal/shared/loggers"
	"log-analyzer/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var accessLog = strings.Join([]string{
	`93.180.71.3 - - [17/May/2015:08:05:32 +0000] "GET /downloads/product_1 HTTP/1.1" 304 512 "-" "Debian APT-HTTP/1.3 (0.8.16~exp12ubuntu10.21)"`,
	`93.180.71.3 - - [17/May/2015:08:05:23 +0000] "GET /downloads/product_1 HTTP/1.1" 304 972 "-" "Debian APT-HTTP/1.3 (0.8.16~exp12ubuntu10.21)"`,
	`not a log record`,
	`80.91.33.133 - - [18/May/2015:08:05:24 +0000] "GET /downloads/product_2 HTTP/1.1" 404 256 "-" "Debian APT-HTTP/1.3 (0.8.16~exp12ubuntu10.17)"`,
}, "\n")

func newTestApp(t *testing.T) (*App, string) {
	t.Helper()

	root := t.TempDir()
	config := &configs.Config{
		Server: configs.ServerConfig{
			Port:              8080,
			ReadHeaderTimeout: 5,
			ReadTimeout:       30,
			WriteTimeout:      30,
			IdleTimeout:       60,
			MaxBodyBytes:      4096,
		},
		Log:         configs.LogConfig{Level: "info", Format: loggers.FormatJSON},
		FileStorage: configs.FileStorageConfig{RootDir: root},
		Analysis: configs.AnalysisConfig{
			DefaultFormat: "markdown",
			FilterMode:    "substring",
			HTTPTimeout:   5,
			ReportName:    "report",
		},
	}

	logger, err := loggers.NewWithWriter(io.Discard, config.Log.Level, config.Log.Format)
	require.NoError(t, err)
	app, err := newApp(config, logger)
	require.NoError(t, err)
	return app, root
}

func TestApp_Analyze_File(t *testing.T) {
	t.Parallel()

	app, root := newTestApp(t)
	logPath := filepath.Join(t.TempDir(), "access.log")
	require.NoError(t, os.WriteFile(logPath, []byte(accessLog), 0o644))

	result, err := app.Analyze(context.Background(), &analyzers.AnalyzeRequest{Path: logPath})
	require.NoError(t, err)

	assert.Equal(t, "report.md", result.Report.Key)
	assert.Equal(t, filepath.Join(root, "report.md"), result.Report.Path)
	assert.EqualValues(t, 3, result.Summary.TotalRequests)
	assert.Equal(t, 2, result.Summary.UniqueAddressCount)
	assert.EqualValues(t, 580, result.Summary.AverageResponseSize)
	assert.EqualValues(t, 926, result.Summary.Percentile95ResponseSize)

	content, err := os.ReadFile(result.Report.Path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "#### General information")
	assert.Contains(t, string(content), "`access.log`")
	assert.Contains(t, string(content), "| /downloads/product_1 | 2 |")

	// a second run replaces report.md
	result, err = app.Analyze(context.Background(), &analyzers.AnalyzeRequest{
		Path: logPath, From: "2015-05-18", Format: "adoc",
	})
	require.NoError(t, err)
	assert.Equal(t, "report.adoc", result.Report.Key)
	assert.EqualValues(t, 1, result.Summary.TotalRequests)

	result, err = app.Analyze(context.Background(), &analyzers.AnalyzeRequest{Path: logPath, To: "2015-05-17"})
	require.NoError(t, err)
	assert.Equal(t, "report.md", result.Report.Key)
	assert.EqualValues(t, 2, result.Summary.TotalRequests)
}

func TestApp_Analyze_Errors(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	tests := []struct {
		name         string
		req          *analyzers.AnalyzeRequest
		expectedCode string
	}{
		{
			name:         "missing file",
			req:          &analyzers.AnalyzeRequest{Path: filepath.Join(t.TempDir(), "missing.log")},
			expectedCode: "ANL_1001",
		},
		{
			name:         "bad date",
			req:          &analyzers.AnalyzeRequest{Path: "access.log", From: "17/05/2015"},
			expectedCode: "ANL_1000",
		},
		{
			name:         "no path",
			req:          &analyzers.AnalyzeRequest{},
			expectedCode: "ANL_1000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := app.Analyze(context.Background(), tt.req)

			svcErr, ok := svcerrors.As(err)
			require.True(t, ok)
			assert.Equal(t, tt.expectedCode, svcErr.Code)
		})
	}
}

func TestApp_Analyze_URL(t *testing.T) {
	t.Parallel()

	logServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, accessLog)
	}))
	t.Cleanup(logServer.Close)

	app, _ := newTestApp(t)
	result, err := app.Analyze(context.Background(), &analyzers.AnalyzeRequest{
		Path:        logServer.URL + "/logs/nginx_logs",
		FilterField: "request",
		FilterValue: "product_2",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"URL: nginx_logs"}, result.Summary.Sources)
	assert.EqualValues(t, 1, result.Summary.TotalRequests)
}

func TestApp_HTTP_CreateAndGetReport(t *testing.T) {
	t.Parallel()

	app, root := newTestApp(t)
	server := httptest.NewServer(app.server.Handler)
	t.Cleanup(server.Close)

	resp, err := http.Post(server.URL+"/reports?format=adoc&source=nginx", "text/plain", strings.NewReader(accessLog))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created internalhttp.CreateReportResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, created.RunID+".adoc", created.ReportKey)
	assert.Equal(t, "/reports/"+created.ReportKey, resp.Header.Get("Location"))
	assert.EqualValues(t, 3, created.Statistics.TotalRequests)
	assert.Equal(t, []string{"nginx"}, created.Statistics.Sources)
	assert.FileExists(t, filepath.Join(root, serverReportDir, created.ReportKey))

	getResp, err := http.Get(server.URL + "/reports/" + created.ReportKey)
	require.NoError(t, err)
	defer getResp.Body.Close()
	require.Equal(t, http.StatusOK, getResp.StatusCode)
	assert.Equal(t, "text/asciidoc; charset=utf-8", getResp.Header.Get("Content-Type"))

	body, err := io.ReadAll(getResp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "==== General information")
}

func TestApp_HTTP_Errors(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	server := httptest.NewServer(app.server.Handler)
	t.Cleanup(server.Close)

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "invalid format",
			method:         http.MethodPost,
			path:           "/reports?format=pdf",
			body:           accessLog,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "ANL_1000",
		},
		{
			name:           "filter value without field",
			method:         http.MethodPost,
			path:           "/reports?filter_value=GET",
			body:           accessLog,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "ANL_1000",
		},
		{
			name:           "body too large",
			method:         http.MethodPost,
			path:           "/reports",
			body:           strings.Repeat(accessLog+"\n", 20),
			expectedStatus: http.StatusRequestEntityTooLarge,
			expectedCode:   "HTTP_1000",
		},
		{
			name:           "unknown report",
			method:         http.MethodGet,
			path:           "/reports/01HZX3Q6V8K9M2N4P5R7S8T9VW.md",
			expectedStatus: http.StatusNotFound,
			expectedCode:   "ANL_1003",
		},
		{
			name:           "malformed report key",
			method:         http.MethodGet,
			path:           "/reports/report.md",
			expectedStatus: http.StatusNotFound,
			expectedCode:   "HTTP_1001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req, err := http.NewRequest(tt.method, server.URL+tt.path, strings.NewReader(tt.body))
			require.NoError(t, err)
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			var errResp internalhttp.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
			assert.Equal(t, tt.expectedCode, errResp.ErrorCode)
			assert.NotEmpty(t, errResp.RequestID)
		})
	}
}
