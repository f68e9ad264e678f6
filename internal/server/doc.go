// Package server exposes the calendar feed endpoints over HTTP.
//
// Each request runs one synchronous pipeline: validate parameters, fetch the
// upstream document, extract and normalize events, build the calendar, write
// the response. Nothing is cached or persisted; concurrent requests share
// only the immutable configuration.
package server
