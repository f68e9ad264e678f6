package calendar

import (
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/jwhitfield/streetcal/internal/event"
)

// ProductID identifies this service in generated calendars.
const ProductID = "-//streetcal//streetcal//EN"

// uidDomain suffixes event UIDs so they are globally unique.
const uidDomain = "streetcal"

// Builder accumulates events into an iCalendar document.
// Events render in insertion order; chronological order is not required.
type Builder struct {
	cal *ics.Calendar
}

// NewBuilder creates an empty calendar document. The name, if non-empty,
// becomes the calendar display name shown by subscribing clients.
func NewBuilder(name string) *Builder {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(ProductID)
	if name != "" {
		cal.SetXWRCalName(name)
	}
	return &Builder{cal: cal}
}

// Add appends one event to the document.
//
// All-day events arrive with an inclusive end date; the exclusive-DTEND
// convention of the format is applied here, and only here, so an event
// spanning D1 through D2 inclusive renders as covering both days.
func (b *Builder) Add(evt *event.Event) {
	e := b.cal.AddEvent(evt.UID() + "@" + uidDomain)
	e.SetDtStampTime(time.Now().UTC())
	e.SetSummary(evt.Title)

	if evt.AllDay {
		e.SetAllDayStartAt(evt.Start)
		e.SetAllDayEndAt(evt.End.AddDate(0, 0, 1))
	} else {
		e.SetStartAt(evt.Start.UTC())
		e.SetEndAt(evt.End.UTC())
	}

	if evt.Description != "" {
		e.SetDescription(evt.Description)
	}
	if evt.Location != "" {
		e.SetLocation(evt.Location)
	}
}

// Serialize renders the document as iCalendar text. Serialization of a
// well-formed document has no failure mode.
func (b *Builder) Serialize() string {
	return b.cal.Serialize()
}

// Build is a convenience wrapper: one document from a slice of events.
func Build(name string, events []*event.Event) string {
	b := NewBuilder(name)
	for _, evt := range events {
		b.Add(evt)
	}
	return b.Serialize()
}
