package timetable

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"github.com/jwhitfield/streetcal/internal/event"
	"github.com/jwhitfield/streetcal/internal/fetch"
)

// AuthError is returned when the upstream login response indicates failure.
// Body carries the raw response for diagnostics.
type AuthError struct {
	Body string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("upstream login rejected: %s", e.Body)
}

type loginResponse struct {
	Success bool `json:"success"`
}

// Client fetches an authenticated timetable page from the upstream provider.
// The client itself is stateless; each FetchTimetable call runs its own
// login and session, so concurrent requests share nothing.
type Client struct {
	baseURL string
}

// NewClient creates a Client for the given provider base URL.
func NewClient(baseURL string) *Client {
	return &Client{baseURL: baseURL}
}

// FetchTimetable authenticates with the given credentials, fetches the
// timetable page and returns the extracted events.
func (c *Client) FetchTimetable(login, password string) ([]*event.Event, error) {
	session, err := c.authenticate(login, password)
	if err != nil {
		return nil, err
	}

	page, err := session.Get(c.baseURL+"/timetable", nil)
	if err != nil {
		return nil, err
	}

	return ExtractEvents(page)
}

// authenticate posts the credentials to the login endpoint and returns a
// session-bound fetcher carrying the upstream cookies. The upstream signals
// rejection with a success flag in the body, not with a status code.
func (c *Client) authenticate(login, password string) (*fetch.Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}

	session := fetch.NewWithHTTPClient(&http.Client{
		Timeout: fetch.Timeout,
		Jar:     jar,
	})

	body, err := session.PostForm(c.baseURL+"/login", url.Values{
		"login":    {login},
		"password": {password},
	})
	if err != nil {
		return nil, err
	}

	var resp loginResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return nil, &AuthError{Body: body}
	}
	if !resp.Success {
		return nil, &AuthError{Body: body}
	}

	return session, nil
}
