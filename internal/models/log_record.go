package models

import "time"

// LogRecord is one access-log line after parsing. Optional fields hold the empty string
// when the line carried "-" or nothing, so a present value is never empty.
type LogRecord struct {
	RemoteAddr    string
	RemoteUser    string
	TimeLocal     time.Time
	Request       string
	Status        int
	BodyBytesSent int64
	HTTPReferer   string
	HTTPUserAgent string
}
