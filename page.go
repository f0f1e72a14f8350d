package pagemeta

import "context"

// Page represents a fetched HTML page.
type Page struct {
	URL string

	// ContentType is the Content-Type header the page was served with.
	// It may carry a charset parameter used for encoding detection.
	ContentType string

	// HTML is the raw, undecoded page body.
	HTML string
}

// Fetcher retrieves raw HTML pages from URLs.
type Fetcher interface {
	// Fetch retrieves the page at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*Page, error)

	// Close releases resources held by the fetcher.
	Close() error
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., from an Extractor).
	Convert(html string) (string, error)
}
