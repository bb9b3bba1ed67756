package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"log-analyzer/internal/aggregators"
	"log-analyzer/internal/analyzers"
	internalhttp "log-analyzer/internal/http"
	"log-analyzer/internal/parsers"
	"log-analyzer/internal/readers"
	"log-analyzer/internal/shared/configs"
	"log-analyzer/internal/shared/filestorages"
	"log-analyzer/internal/shared/loggers"
	"log-analyzer/internal/stores"
)

// serverReportDir is where the HTTP API keeps one report per run, below file_storage.root_dir.
const serverReportDir = "reports"

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	// cliService writes <report_name>.<ext> into the storage root, replacing the previous report.
	cliService analyzers.AnalysisService
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level, config.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "log-analyzer").
		Logger()

	return newApp(config, appLogger)
}

func newApp(config *configs.Config, appLogger loggers.Logger) (*App, error) {
	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	parser := parsers.NewRecordParser()
	httpClient := &http.Client{Timeout: time.Duration(config.Analysis.HTTPTimeout) * time.Second}
	lineReader := readers.NewLineReader(parser, httpClient)
	collector := aggregators.NewStatisticsCollector()

	cliService := analyzers.NewAnalysisService(
		parser, lineReader, collector,
		stores.NewReportStore(fileStorage, "", true),
		analyzers.Options{
			DefaultFormat:     config.Analysis.DefaultFormat,
			DefaultFilterMode: config.Analysis.FilterMode,
			ReportName:        config.Analysis.ReportName,
		},
	)

	serverService := analyzers.NewAnalysisService(
		parser, lineReader, collector,
		stores.NewReportStore(fileStorage, serverReportDir, false),
		analyzers.Options{
			DefaultFormat:     config.Analysis.DefaultFormat,
			DefaultFilterMode: config.Analysis.FilterMode,
		},
	)

	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(serverService, httpLogger, config.Server.MaxBodyBytes)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:     config,
		appLogger:  appLogger,
		server:     server,
		cliService: cliService,
	}, nil
}

// Logger returns the application logger.
func (app *App) Logger() *loggers.Logger {
	return &app.appLogger
}

// Analyze runs a single analysis from the command line and stores its report in the storage root.
func (app *App) Analyze(ctx context.Context, req *analyzers.AnalyzeRequest) (*analyzers.AnalyzeResult, error) {
	ctx = app.appLogger.With().
		Str(loggers.FieldComponent, "cli").
		Logger().WithContext(ctx)

	return app.cliService.Analyze(ctx, req)
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting log-analyzer service on port %d (log_level=%s, file_storage_root_dir=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.FileStorage.RootDir)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")
	return nil
}
