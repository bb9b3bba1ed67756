package main

import (
	"errors"
	"fmt"
	"os"

	"log-analyzer/internal/analyzers"
	"log-analyzer/internal/app"
	"log-analyzer/internal/shared/configs"
	"log-analyzer/internal/shared/svcerrors"

	"github.com/spf13/cobra"
)

var (
	configPath string
	request    analyzers.AnalyzeRequest

	rootCmd = &cobra.Command{
		Use:   "log-analyzer",
		Short: "log-analyzer builds a statistics report from NGINX access logs",
		Long: `log-analyzer reads NGINX access logs from a file, a glob pattern or an HTTP URL,
keeps the records inside the requested date range that match an optional field filter,
and writes a Markdown or AsciiDoc report. The path of the report is printed on stdout.`,
		Example: `  log-analyzer --path 'logs/**/access*.log' --from 2015-05-17 --format adoc
  log-analyzer --path https://example.com/nginx_logs --filter-field http_user_agent --filter-value Mozilla`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp()
			if err != nil {
				return err
			}

			result, err := application.Analyze(cmd.Context(), &request)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Report.Path)
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (defaults and LOG_ANALYZER_* env vars when empty)")

	flags := rootCmd.Flags()
	flags.StringVarP(&request.Path, "path", "p", "", "log file, glob pattern or http(s) URL")
	flags.StringVar(&request.From, "from", "", "first day to include, YYYY-MM-DD")
	flags.StringVar(&request.To, "to", "", "last day to include, YYYY-MM-DD")
	flags.StringVarP(&request.Format, "format", "f", "", "report format: markdown or adoc (default from config)")
	flags.StringVar(&request.FilterField, "filter-field", "", "record field to filter on, e.g. http_user_agent")
	flags.StringVar(&request.FilterValue, "filter-value", "", "value the filter field must match")
	flags.StringVar(&request.FilterMode, "filter-mode", "", "substring or regex (default from config)")
	_ = rootCmd.MarkFlagRequired("path")

	rootCmd.AddCommand(serveCmd)
}

func newApp() (*app.App, error) {
	cfg, err := configs.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	application, err := app.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize app: %w", err)
	}
	return application, nil
}

// Execute runs the command line and exits with status 1 on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorMessage(err))
		os.Exit(1)
	}
}

// errorMessage renders service errors as "CODE: message". Internal errors carry their cause,
// since a terminal user is also the operator.
func errorMessage(err error) string {
	var svcErr *svcerrors.ServiceError
	if !errors.As(err, &svcErr) {
		return "Error: " + err.Error()
	}
	if svcErr.IsInternalError() {
		return "Error: " + svcErr.Detail()
	}
	return "Error: " + svcErr.Error()
}
