// Package http provides the HTTP transport of the relay: the outbound
// Fetcher used to read docs pages and the inbound Server exposing /mcp.
package http

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/fwojciec/cratedocs"
)

// Ensure Fetcher implements cratedocs.Fetcher at compile time.
var _ cratedocs.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP GET requests.
// A single Fetcher is shared by all in-flight requests; it is not modified
// after NewFetcher returns.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Zero, the default, leaves requests bounded only by their context.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch performs one GET of url and returns the body of a 2xx response.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", cratedocs.Errorf(cratedocs.EUPSTREAM, "%s", statusLine(resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases idle connections held by the client.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}

// statusLine formats code as "HTTP <code> <reason>", leaving out the reason
// for codes without one.
func statusLine(code int) string {
	line := "HTTP " + strconv.Itoa(code)
	if text := http.StatusText(code); text != "" {
		line += " " + text
	}
	return line
}
