package cratedocs

import "context"

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch performs a single GET of url and returns the response body.
	// Returns EUPSTREAM when the remote answers with a non-2xx status.
	// Transport failures are returned as-is.
	// The context controls cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
