package timetable

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jwhitfield/streetcal/internal/event"
)

// ErrDataBlockNotFound is returned when the page contains no timetable data
// block at all.
var ErrDataBlockNotFound = errors.New("timetable data block not found")

// ErrMalformedData is wrapped into every error caused by a data block that
// was found but could not be understood.
var ErrMalformedData = errors.New("malformed timetable data")

// dataBlockPattern locates the embedded object literal by its anchor:
// the timetableData assignment up to the first closing brace followed by a
// semicolon. This is a heuristic textual match, not a script parse; it will
// break if the upstream generator renames the variable or starts emitting
// semicolons inside the object. Accepted fragility.
var dataBlockPattern = regexp.MustCompile(`(?s)var\s+timetableData\s*=\s*(\{.*?\})\s*;`)

// Record is one raw timetable entry as embedded in the page.
// StartTime and EndTime are required; everything else is optional.
type Record struct {
	Name      string `json:"name"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Location  string `json:"location"`
	StaffName string `json:"staffName"`
}

type pageData struct {
	Timetables []Record `json:"timetables"`
}

// ExtractEvents locates the timetable data block in raw page text and
// converts every record into an event, preserving record order.
func ExtractEvents(page string) ([]*event.Event, error) {
	m := dataBlockPattern.FindStringSubmatch(page)
	if m == nil {
		return nil, ErrDataBlockNotFound
	}

	var data pageData
	if err := json.Unmarshal([]byte(m[1]), &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedData, err)
	}

	events := make([]*event.Event, 0, len(data.Timetables))
	for i, rec := range data.Timetables {
		evt, err := recordToEvent(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrMalformedData, i, err)
		}
		events = append(events, evt)
	}

	return events, nil
}

// recordToEvent maps one record to a timed event. A record missing its
// required timestamps fails the whole extraction; a broken timetable is
// worth surfacing, not silently thinning out.
func recordToEvent(rec Record) (*event.Event, error) {
	if rec.StartTime == "" || rec.EndTime == "" {
		return nil, errors.New("missing required startTime/endTime")
	}

	start, err := event.ParseInstant(rec.StartTime)
	if err != nil {
		return nil, fmt.Errorf("startTime: %w", err)
	}
	end, err := event.ParseInstant(rec.EndTime)
	if err != nil {
		return nil, fmt.Errorf("endTime: %w", err)
	}

	title := strings.TrimSpace(rec.Name)
	if title == "" {
		title = event.DefaultTitle
	}

	return &event.Event{
		Title:       title,
		Start:       start,
		End:         end,
		Description: rec.StaffName,
		Location:    rec.Location,
	}, nil
}
