package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jwhitfield/streetcal/internal/calendar"
	"github.com/jwhitfield/streetcal/internal/event"
	"github.com/jwhitfield/streetcal/internal/fetch"
	"github.com/jwhitfield/streetcal/internal/logger"
	"github.com/jwhitfield/streetcal/internal/metrics"
	"github.com/jwhitfield/streetcal/internal/timetable"
)

// Error message bodies returned to the caller.
const (
	ErrMissingStreets     = "Missing 'street' parameter(s)"
	ErrMissingCredentials = "Missing login or password"
)

// Config is the immutable configuration shared by all requests.
type Config struct {
	Addr           string
	SuspensionsURL string
	TimetableURL   string
}

// SuspensionSource provides suspension events for a set of streets.
type SuspensionSource interface {
	FetchSuspensions(streets []string) ([]*event.Event, error)
}

// TimetableSource provides timetable events for a set of credentials.
type TimetableSource interface {
	FetchTimetable(login, password string) ([]*event.Event, error)
}

// App holds the wired dependencies for the HTTP surface. Constructed once at
// startup and shared read-only by all requests.
type App struct {
	cfg         Config
	suspensions SuspensionSource
	timetable   TimetableSource
	log         *logger.Logger
}

// New creates an App from explicit dependencies.
func New(cfg Config, suspensions SuspensionSource, tt TimetableSource, log *logger.Logger) *App {
	return &App{
		cfg:         cfg,
		suspensions: suspensions,
		timetable:   tt,
		log:         log,
	}
}

// Routes returns the request multiplexer for the service.
func (a *App) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/calendar.ics", a.handleSuspensionsCalendar)
	mux.HandleFunc("/tomcal.ics", a.handleTimetableCalendar)
	mux.HandleFunc("/healthz", handleHealthz)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

// Server returns an http.Server for the app with sane timeouts.
func (a *App) Server() *http.Server {
	return &http.Server{
		Addr:         a.cfg.Addr,
		Handler:      a.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// handleSuspensionsCalendar serves GET /calendar.ics?street=...&street=...
func (a *App) handleSuspensionsCalendar(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	streets := r.URL.Query()["street"]
	if len(streets) == 0 {
		a.reject(w, "/calendar.ics", ErrMissingStreets)
		return
	}

	events, err := a.suspensions.FetchSuspensions(streets)
	if err != nil {
		a.fail(w, "/calendar.ics", err)
		return
	}

	metrics.EventsTotal.WithLabelValues("suspensions").Add(float64(len(events)))
	a.serve(w, "/calendar.ics", "calendar.ics", calendar.Build("Parking Suspensions", events))

	a.log.Info("calendar served", logger.Fields{
		"endpoint": "/calendar.ics",
		"streets":  len(streets),
		"events":   len(events),
		"duration": time.Since(start).String(),
	})
}

// handleTimetableCalendar serves GET /tomcal.ics?l=<login>&p=<password>
func (a *App) handleTimetableCalendar(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	login := r.URL.Query().Get("l")
	password := r.URL.Query().Get("p")
	if login == "" || password == "" {
		a.reject(w, "/tomcal.ics", ErrMissingCredentials)
		return
	}

	events, err := a.timetable.FetchTimetable(login, password)
	if err != nil {
		a.fail(w, "/tomcal.ics", err)
		return
	}

	metrics.EventsTotal.WithLabelValues("timetable").Add(float64(len(events)))
	a.serve(w, "/tomcal.ics", "tomcal.ics", calendar.Build("Timetable", events))

	a.log.Info("calendar served", logger.Fields{
		"endpoint": "/tomcal.ics",
		"events":   len(events),
		"duration": time.Since(start).String(),
	})
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}

// serve writes a successful calendar response.
func (a *App) serve(w http.ResponseWriter, endpoint, filename, body string) {
	w.Header().Set("Content-Type", "text/calendar")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	if _, err := fmt.Fprint(w, body); err != nil {
		a.log.Error("writing response", logger.Fields{"endpoint": endpoint}, err)
	}
	metrics.RequestsTotal.WithLabelValues(endpoint, "200").Inc()
}

// reject answers a request whose parameters are invalid, before any fetch.
func (a *App) reject(w http.ResponseWriter, endpoint, message string) {
	http.Error(w, message, http.StatusBadRequest)
	metrics.RequestsTotal.WithLabelValues(endpoint, strconv.Itoa(http.StatusBadRequest)).Inc()
}

// fail maps a pipeline failure to an HTTP error response. The upstream
// detail goes into the body; nothing here retries or degrades partially.
func (a *App) fail(w http.ResponseWriter, endpoint string, err error) {
	var authErr *timetable.AuthError
	var statusErr *fetch.StatusError

	kind := "transport"
	switch {
	case errors.As(err, &authErr):
		kind = "auth"
	case errors.Is(err, timetable.ErrDataBlockNotFound), errors.Is(err, timetable.ErrMalformedData):
		kind = "extract"
	case errors.As(err, &statusErr):
		kind = "transport"
	}

	metrics.UpstreamErrorsTotal.WithLabelValues(kind).Inc()
	metrics.RequestsTotal.WithLabelValues(endpoint, strconv.Itoa(http.StatusInternalServerError)).Inc()
	a.log.Error("request failed", logger.Fields{"endpoint": endpoint, "kind": kind}, err)

	http.Error(w, err.Error(), http.StatusInternalServerError)
}
