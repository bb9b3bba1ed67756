// Package parsers turns raw access-log lines into structured records.
package parsers

import (
	"regexp"
	"strconv"
	"time"

	"log-analyzer/internal/models"
)

// TimeLayout is the fixed timestamp layout between the square brackets, e.g. "02/Jun/2015:15:06:00 +0000".
const TimeLayout = "02/Jan/2006:15:04:05 -0700"

const absentMarker = "-"

// linePattern is the single supported access-log layout. It is anchored on both ends so that a
// line matches only as a whole.
var linePattern = regexp.MustCompile(
	`^(?P<remote_addr>\S+) - (?P<remote_user>-|\S*) \[(?P<time_local>[^\]]+)\] "(?P<request>[^"]*)" ` +
		`(?P<status>\d{3}) (?P<body_bytes_sent>\d+) "(?P<http_referer>[^"]*)" "(?P<http_user_agent>[^"]*)"$`,
)

var (
	idxRemoteAddr    = linePattern.SubexpIndex("remote_addr")
	idxRemoteUser    = linePattern.SubexpIndex("remote_user")
	idxTimeLocal     = linePattern.SubexpIndex("time_local")
	idxRequest       = linePattern.SubexpIndex("request")
	idxStatus        = linePattern.SubexpIndex("status")
	idxBodyBytesSent = linePattern.SubexpIndex("body_bytes_sent")
	idxHTTPReferer   = linePattern.SubexpIndex("http_referer")
	idxHTTPUserAgent = linePattern.SubexpIndex("http_user_agent")
)

type RecordParser interface {
	// Parse converts one line into a record. The boolean is false when the line is not a record;
	// Parse never fails in any other way.
	Parse(line string) (*models.LogRecord, bool)
}

type recordParser struct{}

func NewRecordParser() RecordParser {
	return &recordParser{}
}

func (p *recordParser) Parse(line string) (*models.LogRecord, bool) {
	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}

	timeLocal, err := time.Parse(TimeLayout, m[idxTimeLocal])
	if err != nil || !hasExactMonth(m[idxTimeLocal], timeLocal) {
		return nil, false
	}

	status, err := strconv.Atoi(m[idxStatus])
	if err != nil {
		return nil, false
	}

	bodyBytesSent, err := strconv.ParseInt(m[idxBodyBytesSent], 10, 64)
	if err != nil {
		return nil, false
	}

	return &models.LogRecord{
		RemoteAddr:    m[idxRemoteAddr],
		RemoteUser:    optional(m[idxRemoteUser]),
		TimeLocal:     timeLocal,
		Request:       optional(m[idxRequest]),
		Status:        status,
		BodyBytesSent: bodyBytesSent,
		HTTPReferer:   optional(m[idxHTTPReferer]),
		HTTPUserAgent: optional(m[idxHTTPUserAgent]),
	}, true
}

// hasExactMonth reports whether the month abbreviation of ts is spelled exactly like Jan..Dec.
// time.Parse accepts "JUN" and "jun" as well. The day is always two digits, so the month starts
// at offset 3.
func hasExactMonth(ts string, t time.Time) bool {
	return len(ts) >= 6 && ts[3:6] == t.Month().String()[:3]
}

// optional maps the "-" and empty tokens to the absent value.
func optional(token string) string {
	if token == absentMarker {
		return ""
	}
	return token
}
