// Package calendar accumulates normalized events into an iCalendar document
// and serializes it. Documents are request-scoped: created empty, populated,
// serialized once, discarded.
package calendar
