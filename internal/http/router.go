package http

import (
	"net/http"

	"log-analyzer/internal/analyzers"
	"log-analyzer/internal/shared/loggers"
	"log-analyzer/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(analysisService analyzers.AnalysisService, httpLogger loggers.Logger, maxBodyBytes int64) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	createReportHandler := NewCreateReportHandler(analysisService, maxBodyBytes)
	getReportHandler := NewGetReportHandler(analysisService)

	router.Post("/reports", errorHandlingAdapter(createReportHandler))
	router.Get("/reports/{key}", errorHandlingAdapter(getReportHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
