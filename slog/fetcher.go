// Package slog provides log/slog decorators for pagemeta services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagemeta"
)

// Ensure LoggingFetcher implements pagemeta.Fetcher.
var _ pagemeta.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   pagemeta.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next pagemeta.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the page size and
// content type.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (page *pagemeta.Page, err error) {
	defer func(begin time.Time) {
		var (
			size        int
			contentType string
		)
		if page != nil {
			size = len(page.HTML)
			contentType = page.ContentType
		}
		f.logger.Info("fetch",
			"url", url,
			"bytes", size,
			"contentType", contentType,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
