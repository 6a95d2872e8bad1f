package logsource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Ensure Client implements Source at compile time.
var _ Source = (*Client)(nil)

// Client fetches entries from a service's HTTP log endpoint.
type Client struct {
	endpoint  *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultTimeout   = 10 * time.Second
	defaultUserAgent = "gander/0.1"
)

// NewClient builds a Client for the given endpoint URL. The endpoint's
// path is kept as-is; any query or fragment is stripped.
func NewClient(endpoint string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q: %w", endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("endpoint %q: unsupported scheme %q", endpoint, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("endpoint %q: missing host", endpoint)
	}
	u.RawQuery = ""
	u.Fragment = ""
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		endpoint: u,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// Fetch issues GET <endpoint>?date=<yyyy-MM-dd> and decodes the JSON
// array of entries the log source returns.
func (c *Client) Fetch(ctx context.Context, service string, day time.Time) ([]Entry, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	values.Set("date", day.Format(DateLayout))

	reqURL := *c.endpoint
	reqURL.RawQuery = values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("log source %s returned status %d", c.endpoint.Host, resp.StatusCode)
	}

	var entries []Entry
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return entries, nil
}
