// Package timetable fetches a school timetable page behind a login and
// extracts lesson events from a JSON data block embedded in the page script.
//
// Unlike the suspensions table, the timetable source has no legitimate empty
// shape: a missing data block or a record without its required timestamps
// means the upstream changed or the login silently failed, so those are hard
// request-level errors rather than per-record skips.
package timetable
