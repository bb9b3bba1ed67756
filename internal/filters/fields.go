// Package filters decides which parsed records take part in an analysis run.
package filters

import (
	"strconv"
	"strings"
	"time"

	"log-analyzer/internal/models"
)

// Field names accepted by the field filter. Matching is case-insensitive.
const (
	FieldRemoteAddr    = "remote_addr"
	FieldRemoteUser    = "remote_user"
	FieldTimeLocal     = "time_local"
	FieldRequest       = "request"
	FieldStatus        = "status"
	FieldBodyBytesSent = "body_bytes_sent"
	FieldHTTPReferer   = "http_referer"
	FieldHTTPUserAgent = "http_user_agent"
)

// Fields lists the filterable fields in record order.
var Fields = []string{
	FieldRemoteAddr,
	FieldRemoteUser,
	FieldTimeLocal,
	FieldRequest,
	FieldStatus,
	FieldBodyBytesSent,
	FieldHTTPReferer,
	FieldHTTPUserAgent,
}

// FieldValue returns the text a field filter is matched against. The boolean is false when the
// record does not carry the field or when the field name is unknown.
func FieldValue(record *models.LogRecord, field string) (string, bool) {
	if record == nil {
		return "", false
	}

	var value string
	switch strings.ToLower(field) {
	case FieldRemoteAddr:
		value = record.RemoteAddr
	case FieldRemoteUser:
		value = record.RemoteUser
	case FieldTimeLocal:
		value = record.TimeLocal.Format(time.RFC3339)
	case FieldRequest:
		value = record.Request
	case FieldStatus:
		value = strconv.Itoa(record.Status)
	case FieldBodyBytesSent:
		value = strconv.FormatInt(record.BodyBytesSent, 10)
	case FieldHTTPReferer:
		value = record.HTTPReferer
	case FieldHTTPUserAgent:
		value = record.HTTPUserAgent
	default:
		return "", false
	}

	if value == "" {
		return "", false
	}
	return value, true
}
