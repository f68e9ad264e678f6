package event

import (
	"fmt"
	"strings"
	"time"
)

// DayDateFormat is the day-precision format used by the suspensions table.
const DayDateFormat = "02/01/2006"

// instantFormats are tried in order by ParseInstant. A timestamp with no
// offset and no trailing Z is assumed to already be UTC; that is a documented
// assumption about the upstream, not something inferred from content.
var instantFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseDayDate parses a DD/MM/YYYY string into a calendar date.
// Returns false when the string does not match; the caller is expected to
// drop the owning row and continue, never to fail the whole batch.
func ParseDayDate(s string) (time.Time, bool) {
	t, err := time.Parse(DayDateFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ParseInstant parses an ISO-8601 timestamp and normalizes it to UTC.
// Unlike ParseDayDate, failure here is a propagated error: a timetable record
// with a broken timestamp means the upstream contract broke, and the caller
// fails the whole request rather than silently degrading.
func ParseInstant(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, format := range instantFormats {
		t, err := time.Parse(format, s)
		if err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
