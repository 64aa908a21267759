// Package audit provides the append-only request audit log.
package audit

import (
	"fmt"
	"time"
)

// timestampFormat matches the legacy audit log layout (day-month-year,
// 12-hour clock). Existing log parsers rely on it.
const timestampFormat = "02-01-2006 03.04.05 PM"

// Record is one audit entry, captured for every request that reaches the
// interceptor.
type Record struct {
	Timestamp  time.Time
	ClientIP   string
	Path       string
	UserAgent  string
	StatusCode int
	// Body holds the buffered request body. Populated for POST only.
	Body string
}

// Line renders the record as a single audit log line, newline-terminated.
func (r Record) Line() string {
	return fmt.Sprintf("%s - IP: %s, Path: %s, User-Agent: %s, Response Code: %d Body: %s\n",
		r.Timestamp.Format(timestampFormat),
		r.ClientIP,
		r.Path,
		r.UserAgent,
		r.StatusCode,
		r.Body,
	)
}
