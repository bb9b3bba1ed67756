// Package reporters renders the statistics of an analysis run as a Markdown or AsciiDoc document.
package reporters

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"text/template"

	"log-analyzer/internal/models"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = map[models.ReportFormat]*template.Template{
	models.FormatMarkdown: mustParse("markdown.tmpl"),
	models.FormatAsciiDoc: mustParse("adoc.tmpl"),
}

var ErrNoStatistics = errors.New("report has no statistics")

type Reporter interface {
	Render(w io.Writer, report *models.Report) error
}

type templateReporter struct {
	format models.ReportFormat
	tmpl   *template.Template
}

// New returns the reporter for format.
func New(format models.ReportFormat) (Reporter, error) {
	tmpl, ok := templates[format]
	if !ok {
		return nil, fmt.Errorf("unsupported report format: %q", format)
	}
	return &templateReporter{format: format, tmpl: tmpl}, nil
}

func (r *templateReporter) Render(w io.Writer, report *models.Report) error {
	if report == nil || report.Statistics == nil {
		return ErrNoStatistics
	}
	if err := r.tmpl.Execute(w, report); err != nil {
		return fmt.Errorf("render %s report: %w", r.format, err)
	}
	return nil
}

func mustParse(name string) *template.Template {
	return template.Must(template.New(name).Funcs(template.FuncMap{
		"join":       strings.Join,
		"cell":       cell,
		"statusName": statusName,
	}).ParseFS(templateFS, "templates/"+name))
}

// statusName returns the reason phrase of code, e.g. 404 -> "Not Found".
func statusName(code int) string {
	if text := http.StatusText(code); text != "" {
		return text
	}
	return "unknown"
}

// cell escapes the table separator so user data cannot add columns.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
