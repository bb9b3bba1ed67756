package models

const unsetParam = "-"

// Report is everything a reporter needs to render one analysis run.
type Report struct {
	RunID       string
	Format      ReportFormat
	From        string
	To          string
	FilterField string
	FilterValue string
	Statistics  *StatisticsSummary
}

// Param returns v, or "-" when the parameter was not supplied.
func (r *Report) Param(v string) string {
	if v == "" {
		return unsetParam
	}
	return v
}
