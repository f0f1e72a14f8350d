package crawl_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/fwojciec/pagemeta"
	"github.com/fwojciec/pagemeta/crawl"
	"github.com/fwojciec/pagemeta/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchWithRetry(t *testing.T) {
	t.Parallel()

	delays := []time.Duration{time.Millisecond, time.Millisecond}

	t.Run("returns last error after all attempts", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (*pagemeta.Page, error) {
				calls++
				return nil, errors.New("HTTP 503")
			},
		}

		_, err := crawl.FetchWithRetry(context.Background(), "https://example.com/", fetcher, nil, delays)

		require.EqualError(t, err, "HTTP 503")
		assert.Equal(t, 3, calls)
	})

	t.Run("does not retry invalid requests", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (*pagemeta.Page, error) {
				calls++
				return nil, pagemeta.Errorf(pagemeta.EINVALID, "too large")
			},
		}

		_, err := crawl.FetchWithRetry(context.Background(), "https://example.com/", fetcher, nil, delays)

		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("does not retry missing sources", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (*pagemeta.Page, error) {
				calls++
				return nil, pagemeta.Errorf(pagemeta.ENOTFOUND, "file not found")
			},
		}

		_, err := crawl.FetchWithRetry(context.Background(), "missing.html", fetcher, nil, delays)

		require.Error(t, err)
		assert.Equal(t, pagemeta.ENOTFOUND, pagemeta.ErrorCode(err))
		assert.Equal(t, 1, calls)
	})

	t.Run("logs each retry", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		calls := 0
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (*pagemeta.Page, error) {
				calls++
				if calls == 1 {
					return nil, errors.New("timeout")
				}
				return &pagemeta.Page{URL: url}, nil
			},
		}

		page, err := crawl.FetchWithRetry(context.Background(), "https://example.com/", fetcher, logger, delays)

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/", page.URL)
		assert.Contains(t, buf.String(), "retrying fetch")
		assert.Contains(t, buf.String(), "attempt=2")
		assert.Contains(t, buf.String(), "err=timeout")
	})
}
