// Package event defines the canonical calendar event produced by the
// extraction pipeline, plus the date/time normalization helpers shared by
// the suspension scraper and the timetable extractor.
package event
