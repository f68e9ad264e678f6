package scraper

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jwhitfield/streetcal/internal/event"
	"github.com/jwhitfield/streetcal/internal/fetch"
)

const (
	// TableClass is the marker class identifying the suspensions table among
	// unrelated tables on the page.
	TableClass = "tableborder"

	// minCells is the minimum cell count for a usable row. The source emits
	// 7 columns; only the first 6 feed the event, but a shorter row means
	// the row is truncated and gets dropped. Extra trailing cells are fine.
	minCells = 7
)

// Cell positions in a suspensions table row.
const (
	cellStreet = iota
	cellLocation
	cellType
	cellReason
	cellFromDate
	cellToDate
)

// Scraper fetches and parses the suspensions page.
type Scraper struct {
	client *fetch.Client
	url    string
}

// New creates a Scraper for the given suspensions page URL.
func New(pageURL string) *Scraper {
	return &Scraper{
		client: fetch.New(),
		url:    pageURL,
	}
}

// FetchSuspensions fetches the suspensions page for the given streets and
// returns the extracted events. All street values are forwarded as repeated
// query parameters in a single upstream request.
func (s *Scraper) FetchSuspensions(streets []string) ([]*event.Event, error) {
	body, err := s.client.Get(s.url, url.Values{"street": streets})
	if err != nil {
		return nil, err
	}
	return ParseSuspensions(strings.NewReader(body))
}

// ParseSuspensions extracts suspension events from an HTML document.
// A document without the marker table yields an empty slice, not an error.
func ParseSuspensions(r io.Reader) ([]*event.Event, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	events := make([]*event.Event, 0)

	table := doc.Find("table." + TableClass).First()
	if table.Length() == 0 {
		return events, nil
	}

	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return // header row
		}
		if evt, ok := rowToEvent(row); ok {
			events = append(events, evt)
		}
	})

	return events, nil
}

// rowToEvent maps one table row to an event. Returns false for rows that
// are too short or carry unparsable dates; those are skipped, never errors.
func rowToEvent(row *goquery.Selection) (*event.Event, bool) {
	cells := row.Find("td")
	if cells.Length() < minCells {
		return nil, false
	}

	text := func(i int) string {
		return strings.TrimSpace(cells.Eq(i).Text())
	}

	start, ok := event.ParseDayDate(text(cellFromDate))
	if !ok {
		return nil, false
	}
	end, ok := event.ParseDayDate(text(cellToDate))
	if !ok {
		return nil, false
	}

	return &event.Event{
		Title:       fmt.Sprintf("%s - %s", text(cellType), text(cellStreet)),
		Start:       start,
		End:         end,
		AllDay:      true,
		Description: text(cellReason),
		Location:    text(cellLocation),
	}, true
}
