package fetch

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// UserAgent identifies this service to upstream servers.
	UserAgent = "streetcal/1.0 (github.com/jwhitfield/streetcal)"

	// Timeout bounds every upstream request. The upstream has no SLA, so an
	// explicit bound beats the unbounded zero-value client.
	Timeout = 15 * time.Second
)

// StatusError is returned when the upstream responds with a non-success
// status. Code and Body preserve the upstream response for diagnostics.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.Code, e.Body)
}

// Client fetches raw documents from upstream URLs.
type Client struct {
	httpClient *http.Client
}

// New creates a Client with the default timeout.
func New() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: Timeout,
		},
	}
}

// NewWithHTTPClient creates a Client around an existing http.Client.
// Used by the timetable client to share a cookie jar.
func NewWithHTTPClient(httpClient *http.Client) *Client {
	return &Client{httpClient: httpClient}
}

// Get fetches rawURL with the given query parameters appended and returns
// the response body as text.
func (c *Client) Get(rawURL string, params url.Values) (string, error) {
	if len(params) > 0 {
		sep := "?"
		if strings.Contains(rawURL, "?") {
			sep = "&"
		}
		rawURL = rawURL + sep + params.Encode()
	}

	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	return c.do(req)
}

// PostForm posts form values to rawURL and returns the response body.
func (c *Client) PostForm(rawURL string, form url.Values) (string, error) {
	req, err := http.NewRequest(http.MethodPost, rawURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.do(req)
}

func (c *Client) do(req *http.Request) (string, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", req.URL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{Code: resp.StatusCode, Body: string(body)}
	}

	return string(body), nil
}
