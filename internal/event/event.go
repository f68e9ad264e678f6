package event

import (
	"crypto/sha1"
	"fmt"
	"time"
)

// DefaultTitle is used when a source record carries no usable name.
const DefaultTitle = "Lesson"

// Event is the normalized output unit of both extractors.
//
// An event is either all-day (Start/End are calendar dates, time-of-day
// ignored) or timed (Start/End are absolute UTC instants). The two modes are
// never mixed within one event. Start and End are passed through exactly as
// the upstream states them; no start<=end validation happens anywhere.
type Event struct {
	Title       string
	Start       time.Time
	End         time.Time
	AllDay      bool
	Description string
	Location    string
}

// UID returns a deterministic identifier for the event, so a feed consumer
// that refetches the calendar sees updates rather than duplicates.
func (e *Event) UID() string {
	h := sha1.New()
	fmt.Fprintf(h, "%s|%s|%s", e.Title, e.Start.UTC().Format(time.RFC3339), e.Location)
	return fmt.Sprintf("%x", h.Sum(nil))
}
