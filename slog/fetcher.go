// Package slog provides log/slog decorators for cratedocs services.
package slog

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/fwojciec/cratedocs"
)

// Ensure LoggingFetcher implements cratedocs.Fetcher.
var _ cratedocs.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   cratedocs.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next cratedocs.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
// Failures are logged at warn level with their class: upstream for a
// non-2xx reply from the docs host, unavailable when it could not be reached.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
		}
		if err == nil {
			f.logger.Info("fetch", attrs...)
			return
		}
		f.logger.Warn("fetch", append(attrs, "code", fetchErrorCode(err), "err", fetchErrorText(err))...)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

func fetchErrorCode(err error) string {
	if code := cratedocs.ErrorCode(err); code == cratedocs.EUPSTREAM {
		return code
	}
	return cratedocs.EUNAVAILABLE
}

func fetchErrorText(err error) string {
	var e *cratedocs.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
