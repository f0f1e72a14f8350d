package mock

import (
	"context"

	"github.com/fwojciec/pagemeta"
)

var (
	_ pagemeta.Fetcher       = (*Fetcher)(nil)
	_ pagemeta.DomainLimiter = (*DomainLimiter)(nil)
)

// Fetcher is a mock implementation of pagemeta.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*pagemeta.Page, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*pagemeta.Page, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

// DomainLimiter is a mock implementation of pagemeta.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.WaitFn(ctx, domain)
}
