package http

import (
	"errors"
	"net/http"

	"log-analyzer/internal/analyzers"
	"log-analyzer/internal/models"
)

// CreateReportResponse is the body of a successful POST /reports.
type CreateReportResponse struct {
	RunID      string                    `json:"runId"`
	ReportKey  string                    `json:"reportKey"`
	Statistics *models.StatisticsSummary `json:"statistics"`
}

type createReportHandler struct {
	analysisService analyzers.AnalysisService
	maxBodyBytes    int64
}

// NewCreateReportHandler analyzes the log lines in the request body. A maxBodyBytes of zero or
// less leaves the body unbounded.
func NewCreateReportHandler(analysisService analyzers.AnalysisService, maxBodyBytes int64) AppHttpHandler {
	return &createReportHandler{
		analysisService: analysisService,
		maxBodyBytes:    maxBodyBytes,
	}
}

// Handle processes POST /reports requests.
func (h *createReportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	body := r.Body
	if h.maxBodyBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}

	req := &analyzers.AnalyzeRequest{
		From:        queryParam(r, "from"),
		To:          queryParam(r, "to"),
		Format:      queryParam(r, "format"),
		FilterField: queryParam(r, "filter_field"),
		FilterValue: r.URL.Query().Get("filter_value"),
		FilterMode:  queryParam(r, "filter_mode"),
		Source:      queryParam(r, "source"),
		Body:        body,
	}

	result, err := h.analysisService.Analyze(r.Context(), req)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return errBodyTooLarge(err)
		}
		return err
	}

	w.Header().Set(headerLocation, "/reports/"+result.Report.Key)
	writeJSON(w, http.StatusCreated, CreateReportResponse{
		RunID:      result.RunID,
		ReportKey:  result.Report.Key,
		Statistics: result.Summary,
	})
	return nil
}
