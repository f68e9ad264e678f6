// Package metrics registers the service's prometheus counters and exposes
// them on the /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts handled requests by endpoint and status code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "streetcal_requests_total",
		Help: "Calendar feed requests handled, by endpoint and HTTP status.",
	}, []string{"endpoint", "status"})

	// UpstreamErrorsTotal counts failed upstream interactions by kind
	// (transport, auth, extract).
	UpstreamErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "streetcal_upstream_errors_total",
		Help: "Upstream fetch, auth and extraction failures, by kind.",
	}, []string{"kind"})

	// EventsTotal counts events emitted into calendars by source.
	EventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "streetcal_events_total",
		Help: "Events emitted into calendar feeds, by source.",
	}, []string{"source"})
)
