package filters

import (
	"regexp"
	"time"

	"log-analyzer/internal/models"
)

// InRange reports whether the calendar date of ts, taken in its own offset, lies within [from, to].
// A nil bound leaves that side open.
func InRange(ts time.Time, from, to *time.Time) bool {
	date := calendarDate(ts)
	if from != nil && date.Before(calendarDate(*from)) {
		return false
	}
	if to != nil && date.After(calendarDate(*to)) {
		return false
	}
	return true
}

// Matches reports whether the named field of record matches pattern as a whole. Absent fields,
// unknown field names and patterns that do not compile never match.
func Matches(record *models.LogRecord, field, pattern string) bool {
	re, err := compileAnchored(pattern)
	if err != nil {
		return false
	}
	return matchesCompiled(record, field, re)
}

func matchesCompiled(record *models.LogRecord, field string, re *regexp.Regexp) bool {
	value, ok := FieldValue(record, field)
	if !ok {
		return false
	}
	return re.MatchString(value)
}

func compileAnchored(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile(`^(?:` + pattern + `)$`)
}

func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
