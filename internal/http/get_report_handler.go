package http

import (
	"io"
	"net/http"
	"strings"

	"log-analyzer/internal/analyzers"
	"log-analyzer/internal/models"
	"log-analyzer/internal/shared/loggers"
	"log-analyzer/internal/shared/ulid"

	"github.com/go-chi/chi/v5"
)

type getReportHandler struct {
	analysisService analyzers.AnalysisService
}

func NewGetReportHandler(analysisService analyzers.AnalysisService) AppHttpHandler {
	return &getReportHandler{
		analysisService: analysisService,
	}
}

// Handle processes GET /reports/{key} requests. Only keys of the form <ULID>.<ext> are looked up.
func (h *getReportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	key := chi.URLParam(r, "key")
	format, ok := models.FormatFromFileName(key)
	if !ok || !ulid.IsULID(strings.TrimSuffix(key, "."+format.Extension())) {
		return errReportNotFound(key)
	}

	content, err := h.analysisService.GetReport(r.Context(), key)
	if err != nil {
		return err
	}
	defer content.Close()

	w.Header().Set(headerContentType, format.ContentType())
	w.WriteHeader(http.StatusOK)
	n, err := io.Copy(w, content)
	metricReportBytesServedTotal.Add(float64(n))
	if err != nil {
		// headers are gone, the client sees a truncated body
		loggers.Ctx(r.Context()).Warn().Err(err).Str(loggers.FieldReportKey, key).Msg("report streaming interrupted")
	}
	return nil
}
