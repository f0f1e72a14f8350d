// Package crawl runs metadata and article extraction over batches of URLs.
package crawl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/pagemeta"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of pages processed at once when
// Batch.Concurrency is not set.
const DefaultConcurrency = 4

// Result is the outcome of processing a single URL.
type Result struct {
	URL     string
	Page    *pagemeta.Page
	Article *pagemeta.Article
	Err     error
}

// ProgressFunc is called after each URL completes. Calls are serialized.
type ProgressFunc func(completed, total int, result *Result)

// Batch fetches and extracts many pages with bounded concurrency.
type Batch struct {
	Fetcher   pagemeta.Fetcher
	Extractor pagemeta.Extractor

	// Limiter throttles requests per host. Optional.
	Limiter pagemeta.DomainLimiter

	Concurrency int

	// RetryDelays are the waits between fetch attempts. Nil means
	// DefaultRetryDelays; an empty slice disables retries.
	RetryDelays []time.Duration

	Logger *slog.Logger
}

// Run processes urls and returns one result per unique URL in input order.
// Per-URL failures are reported in Result.Err; Run itself only fails when
// ctx is canceled.
func (b *Batch) Run(ctx context.Context, urls []string, progress ProgressFunc) ([]*Result, error) {
	urls = Dedupe(urls)
	results := make([]*Result, len(urls))

	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	delays := b.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	var (
		mu        sync.Mutex
		completed int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, u := range urls {
		g.Go(func() error {
			res := b.process(gctx, u, delays)
			results[i] = res

			if progress != nil {
				mu.Lock()
				completed++
				progress(completed, len(urls), res)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}

func (b *Batch) process(ctx context.Context, rawURL string, delays []time.Duration) *Result {
	res := &Result{URL: rawURL}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	if b.Limiter != nil {
		if host := hostOf(rawURL); host != "" {
			if err := b.Limiter.Wait(ctx, host); err != nil {
				res.Err = err
				return res
			}
		}
	}

	page, err := FetchWithRetry(ctx, rawURL, b.Fetcher, b.Logger, delays)
	if err != nil {
		res.Err = err
		return res
	}
	res.Page = page

	article, err := b.Extractor.Extract(page)
	if err != nil {
		res.Err = err
		return res
	}
	res.Article = article
	return res
}

// Dedupe trims each URL and drops blanks and repeats, keeping first
// occurrences in order.
func Dedupe(urls []string) []string {
	seen := make(map[string]struct{}, len(urls))
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		u = strings.TrimSpace(u)
		if u == "" {
			continue
		}
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
