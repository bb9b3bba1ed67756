package analyzers

import (
	"io"
	"strings"
	"time"

	"log-analyzer/internal/filters"
	"log-analyzer/internal/models"
	"log-analyzer/internal/shared/validators"
)

const dateLayout = "2006-01-02"

// AnalyzeRequest describes one analysis run. Either Path or Body supplies the log lines; when Body
// is set, Source names it in the report and Path is ignored.
type AnalyzeRequest struct {
	Path        string `json:"path"`
	From        string `json:"from" validate:"omitempty,datetime=2006-01-02"`
	To          string `json:"to" validate:"omitempty,datetime=2006-01-02"`
	Format      string `json:"format" validate:"required,oneof=markdown adoc"`
	FilterField string `json:"filter_field" validate:"required_with=FilterValue,omitempty,oneof=remote_addr remote_user time_local request status body_bytes_sent http_referer http_user_agent"`
	FilterValue string `json:"filter_value" validate:"required_with=FilterField"`
	FilterMode  string `json:"filter_mode" validate:"required,oneof=substring regex"`

	Source string    `json:"source"`
	Body   io.Reader `json:"-"`
}

var requestValidator = validators.New()

// normalize trims every field, lower-cases the enumerations and fills the defaults.
func (r *AnalyzeRequest) normalize(defaultFormat, defaultFilterMode string) {
	r.Path = strings.TrimSpace(r.Path)
	r.From = strings.TrimSpace(r.From)
	r.To = strings.TrimSpace(r.To)
	r.Format = strings.ToLower(strings.TrimSpace(r.Format))
	r.FilterField = strings.ToLower(strings.TrimSpace(r.FilterField))
	r.FilterMode = strings.ToLower(strings.TrimSpace(r.FilterMode))
	r.Source = strings.TrimSpace(r.Source)

	if r.Format == "" {
		r.Format = defaultFormat
	}
	if r.FilterMode == "" {
		r.FilterMode = defaultFilterMode
	}
}

// validate checks the request and builds the filter options of the run.
func (r *AnalyzeRequest) validate() (filters.Options, error) {
	var opts filters.Options

	if r.Body == nil && r.Path == "" {
		return opts, errValidationFailed("invalid request: path (required)", nil)
	}
	if err := requestValidator.Struct(r); err != nil {
		return opts, errValidationFailed("invalid request: "+strings.Join(validators.Describe(err), ", "), err)
	}

	from, err := parseDate(r.From)
	if err != nil {
		return opts, errValidationFailed("invalid request: from (datetime=2006-01-02)", err)
	}
	to, err := parseDate(r.To)
	if err != nil {
		return opts, errValidationFailed("invalid request: to (datetime=2006-01-02)", err)
	}
	if from != nil && to != nil && from.After(*to) {
		return opts, errValidationFailed("invalid request: from must not be after to", nil)
	}

	mode, err := filters.ParseMode(r.FilterMode)
	if err != nil {
		return opts, errValidationFailed("invalid request: filter_mode (oneof=substring regex)", err)
	}
	if _, err := models.ParseReportFormat(r.Format); err != nil {
		return opts, errValidationFailed("invalid request: format (oneof=markdown adoc)", err)
	}

	opts = filters.Options{
		From:  from,
		To:    to,
		Field: r.FilterField,
		Value: r.FilterValue,
		Mode:  mode,
	}
	return opts, nil
}

func (r *AnalyzeRequest) report(runID string, stats *models.StatisticsSummary) *models.Report {
	return &models.Report{
		RunID:       runID,
		Format:      models.ReportFormat(r.Format),
		From:        r.From,
		To:          r.To,
		FilterField: r.FilterField,
		FilterValue: r.FilterValue,
		Statistics:  stats,
	}
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
