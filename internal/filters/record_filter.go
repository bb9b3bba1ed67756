package filters

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"log-analyzer/internal/models"
)

type Mode string

const (
	// ModeSubstring treats the filter value as literal text.
	ModeSubstring Mode = "substring"
	// ModeRegex embeds the filter value as a regular expression.
	ModeRegex Mode = "regex"
)

// ParseMode resolves a mode name; an empty name selects ModeSubstring.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeSubstring:
		return ModeSubstring, nil
	case ModeRegex:
		return ModeRegex, nil
	default:
		return "", fmt.Errorf("unsupported filter mode: %q", s)
	}
}

// Options configures a RecordFilter. An empty Field disables the field filter.
type Options struct {
	From  *time.Time
	To    *time.Time
	Field string
	Value string
	Mode  Mode
}

type RecordFilter interface {
	// Accept reports whether record takes part in the run.
	Accept(record *models.LogRecord) bool
}

type recordFilter struct {
	from    *time.Time
	to      *time.Time
	field   string
	pattern *regexp.Regexp
}

// NewRecordFilter compiles opts once. It fails only when a regex mode value does not compile.
func NewRecordFilter(opts Options) (RecordFilter, error) {
	f := &recordFilter{
		from: opts.From,
		to:   opts.To,
	}
	if opts.Field == "" {
		return f, nil
	}

	mode := opts.Mode
	if mode == "" {
		mode = ModeSubstring
	}

	var value string
	switch mode {
	case ModeSubstring:
		value = regexp.QuoteMeta(opts.Value)
	case ModeRegex:
		value = opts.Value
	default:
		return nil, fmt.Errorf("unsupported filter mode: %q", mode)
	}

	pattern, err := compileAnchored(".*" + value + ".*")
	if err != nil {
		return nil, fmt.Errorf("compile filter value %q: %w", opts.Value, err)
	}

	f.field = strings.ToLower(opts.Field)
	f.pattern = pattern
	return f, nil
}

func (f *recordFilter) Accept(record *models.LogRecord) bool {
	if record == nil {
		return false
	}
	if !InRange(record.TimeLocal, f.from, f.to) {
		return false
	}
	if f.pattern == nil {
		return true
	}
	return matchesCompiled(record, f.field, f.pattern)
}
