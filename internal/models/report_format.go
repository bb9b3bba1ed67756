package models

import (
	"fmt"
	"strings"
)

type ReportFormat string

const (
	FormatMarkdown ReportFormat = "markdown"
	FormatAsciiDoc ReportFormat = "adoc"
)

// ParseReportFormat resolves a user supplied format name, ignoring case and surrounding spaces.
func ParseReportFormat(s string) (ReportFormat, error) {
	switch ReportFormat(strings.ToLower(strings.TrimSpace(s))) {
	case FormatMarkdown:
		return FormatMarkdown, nil
	case FormatAsciiDoc:
		return FormatAsciiDoc, nil
	default:
		return "", fmt.Errorf("unsupported report format: %q", s)
	}
}

func (f ReportFormat) Extension() string {
	switch f {
	case FormatMarkdown:
		return "md"
	case FormatAsciiDoc:
		return "adoc"
	default:
		panic(fmt.Sprintf("invalid ReportFormat: %q", f))
	}
}

// ContentType is the media type used when a report is served over HTTP.
func (f ReportFormat) ContentType() string {
	switch f {
	case FormatAsciiDoc:
		return "text/asciidoc; charset=utf-8"
	default:
		return "text/markdown; charset=utf-8"
	}
}

// FileName joins a base name with the format extension, e.g. "report" -> "report.md".
func (f ReportFormat) FileName(base string) string {
	return base + "." + f.Extension()
}

// FormatFromFileName returns the format whose extension ends name, e.g. "run.adoc" -> FormatAsciiDoc.
func FormatFromFileName(name string) (ReportFormat, bool) {
	for _, f := range []ReportFormat{FormatMarkdown, FormatAsciiDoc} {
		if strings.HasSuffix(name, "."+f.Extension()) {
			return f, true
		}
	}
	return "", false
}
