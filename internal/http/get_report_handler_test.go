package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	analyzermocks "log-analyzer/internal/analyzers/mocks"
	"log-analyzer/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testReportULID = "01HZX3Q6V8K9M2N4P5R7S8T9VW"

// newGetReportRequest builds a request whose chi route context carries key, as the router would.
func newGetReportRequest(key string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/reports/"+key, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("key", key)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetReportHandler_Handle_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		key         string
		contentType string
	}{
		{name: "markdown", key: testReportULID + ".md", contentType: "text/markdown; charset=utf-8"},
		{name: "asciidoc", key: testReportULID + ".adoc", contentType: "text/asciidoc; charset=utf-8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			mockAnalysisService := analyzermocks.NewMockAnalysisService(ctrl)
			handler := NewGetReportHandler(mockAnalysisService)

			mockAnalysisService.EXPECT().
				GetReport(gomock.Any(), tt.key).
				Return(io.NopCloser(strings.NewReader("#### General information\n")), nil)

			rr := httptest.NewRecorder()
			err := handler.Handle(rr, newGetReportRequest(tt.key))

			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.contentType, rr.Header().Get("Content-Type"))
			assert.Equal(t, "#### General information\n", rr.Body.String())
		})
	}
}

func TestGetReportHandler_Handle_RejectsMalformedKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  string
	}{
		{name: "no extension", key: testReportULID},
		{name: "unknown extension", key: testReportULID + ".pdf"},
		{name: "not a ULID", key: "report.md"},
		{name: "traversal", key: "..%2F" + testReportULID + ".md"},
		{name: "empty", key: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// no GetReport call is expected
			ctrl := gomock.NewController(t)
			handler := NewGetReportHandler(analyzermocks.NewMockAnalysisService(ctrl))

			rr := httptest.NewRecorder()
			err := handler.Handle(rr, newGetReportRequest(tt.key))

			svcErr, ok := svcerrors.As(err)
			require.True(t, ok)
			assert.Equal(t, codeReportNotFound, svcErr.Code)
			assert.Equal(t, http.StatusNotFound, svcErr.HttpStatusCode)
		})
	}
}

func TestGetReportHandler_Handle_ServiceError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockAnalysisService := analyzermocks.NewMockAnalysisService(ctrl)
	handler := NewGetReportHandler(mockAnalysisService)

	key := testReportULID + ".md"
	mockAnalysisService.EXPECT().
		GetReport(gomock.Any(), key).
		Return(nil, svcerrors.NewNotFoundError("TEST_4040", "report not found", nil))

	rr := httptest.NewRecorder()
	err := handler.Handle(rr, newGetReportRequest(key))

	svcErr, ok := svcerrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "TEST_4040", svcErr.Code)
}
