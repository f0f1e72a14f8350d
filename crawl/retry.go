package crawl

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagemeta"
)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetry fetches a page, retrying once per delay after a failure.
// EINVALID, ENOTFOUND and ENOTIMPLEMENTED errors are returned immediately.
func FetchWithRetry(ctx context.Context, url string, fetcher pagemeta.Fetcher, logger *slog.Logger, delays []time.Duration) (*pagemeta.Page, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		page, err := fetcher.Fetch(ctx, url)
		if err == nil {
			return page, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 || isPermanent(err) {
			break
		}

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		logger.Warn("retrying fetch", "url", url, "attempt", attempt+2, "err", err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return nil, lastErr
}

// isPermanent reports whether err cannot be cured by fetching again.
func isPermanent(err error) bool {
	switch pagemeta.ErrorCode(err) {
	case pagemeta.EINVALID, pagemeta.ENOTFOUND, pagemeta.ENOTIMPLEMENTED:
		return true
	}
	return false
}
