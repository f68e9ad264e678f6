package scraper

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"
)

func loadFixture(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile("testdata/fixtures/suspensions.html")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}
	return string(data)
}

func TestParseSuspensions(t *testing.T) {
	events, err := ParseSuspensions(strings.NewReader(loadFixture(t)))
	if err != nil {
		t.Fatalf("ParseSuspensions failed: %v", err)
	}

	// Fixture has 5 data rows: one short, one with a bad date, three valid
	// (one of those with extra trailing cells, which are ignored).
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}

	first := events[0]
	if first.Title != "Parking Bay Suspension - High Street" {
		t.Errorf("Title = %q", first.Title)
	}
	if !first.AllDay {
		t.Error("suspension events should be all-day")
	}
	if want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC); !first.Start.Equal(want) {
		t.Errorf("Start = %v, want %v", first.Start, want)
	}
	if want := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC); !first.End.Equal(want) {
		t.Errorf("End = %v, want %v", first.End, want)
	}
	if first.Description != "Building works" {
		t.Errorf("Description = %q", first.Description)
	}
	if first.Location != "Outside No. 12" {
		t.Errorf("Location = %q", first.Location)
	}

	// Row with extra trailing cells still parses from the first six.
	last := events[2]
	if last.Title != "Bay Suspension - Station Approach" {
		t.Errorf("Title = %q", last.Title)
	}
}

func TestParseSuspensions_NoTable(t *testing.T) {
	html := `<html><body><p>No suspensions today.</p></body></html>`

	events, err := ParseSuspensions(strings.NewReader(html))
	if err != nil {
		t.Fatalf("missing table should not be an error, got: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected empty result, got %d events", len(events))
	}
}

func TestParseSuspensions_WrongTableClass(t *testing.T) {
	html := `<html><body>
		<table class="layout">
			<tr><th>Street</th></tr>
			<tr><td>High Street</td><td>x</td><td>x</td><td>x</td>
			<td>01/03/2024</td><td>02/03/2024</td><td>ref</td></tr>
		</table>
	</body></html>`

	events, err := ParseSuspensions(strings.NewReader(html))
	if err != nil {
		t.Fatalf("ParseSuspensions failed: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("table without marker class should yield no events, got %d", len(events))
	}
}

func TestParseSuspensions_HeaderOnly(t *testing.T) {
	html := `<html><body>
		<table class="tableborder">
			<tr><th>Street</th><th>Location</th><th>Type</th><th>Reason</th>
			<th>From</th><th>To</th><th>Ref</th></tr>
		</table>
	</body></html>`

	events, err := ParseSuspensions(strings.NewReader(html))
	if err != nil {
		t.Fatalf("ParseSuspensions failed: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("header-only table should yield no events, got %d", len(events))
	}
}

func TestFetchSuspensions(t *testing.T) {
	fixture := loadFixture(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query()["street"]; len(got) != 2 {
			t.Errorf("expected 2 street params, got %v", got)
		}
		w.Write([]byte(fixture))
	}))
	defer srv.Close()

	s := New(srv.URL)
	events, err := s.FetchSuspensions([]string{"High Street", "Mill Lane"})
	if err != nil {
		t.Fatalf("FetchSuspensions failed: %v", err)
	}
	if len(events) != 3 {
		t.Errorf("expected 3 events, got %d", len(events))
	}
}

func TestFetchSuspensions_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	s := New(srv.URL)
	if _, err := s.FetchSuspensions([]string{"High Street"}); err == nil {
		t.Fatal("expected error for upstream 503")
	}
}
