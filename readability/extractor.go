// Package readability extracts article content with go-readability and
// combines it with the metadata produced by the goquery package.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/pagemeta"
	"github.com/fwojciec/pagemeta/dom"
	"github.com/fwojciec/pagemeta/goquery"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements pagemeta.Extractor at compile time.
var _ pagemeta.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
// Title, byline, excerpt and charset always come from goquery.ExtractMetadata;
// go-readability only supplies the article body.
type Extractor struct {
	languages pagemeta.LanguageDetector
	cleaner   *dom.Cleaner
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLanguageDetector sets the detector used to fill Article.Language.
func WithLanguageDetector(d pagemeta.LanguageDetector) Option {
	return func(e *Extractor) {
		e.languages = d
	}
}

// WithCleaner sets the cleaner used to prepare the document before the
// content stage runs.
func WithCleaner(c *dom.Cleaner) Option {
	return func(e *Extractor) {
		e.cleaner = c
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{cleaner: dom.NewCleaner(nil)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract processes the page HTML and returns the article.
func (e *Extractor) Extract(page *pagemeta.Page) (*pagemeta.Article, error) {
	if page == nil || page.HTML == "" {
		return nil, pagemeta.Errorf(pagemeta.EINVALID, "empty HTML input")
	}

	var pageURL *url.URL
	if page.URL != "" {
		u, err := url.Parse(page.URL)
		if err != nil {
			return nil, pagemeta.Errorf(pagemeta.EINVALID, "invalid page URL: %v", err)
		}
		pageURL = u
	}

	doc, err := dom.Parse(strings.NewReader(page.HTML), page.ContentType)
	if err != nil {
		return nil, err
	}

	// Metadata first: the content stage reorganizes the tree it is given.
	meta := goquery.ExtractMetadata(doc)
	e.prepare(doc)

	article, err := readability.FromDocument(doc.Root, pageURL)
	if err != nil {
		return nil, err
	}

	if meta.Excerpt == "" {
		meta.Excerpt = strings.TrimSpace(article.Excerpt)
	}

	result := &pagemeta.Article{
		Metadata:    *meta,
		ContentHTML: article.Content,
		TextContent: article.TextContent,
		Length:      article.Length,
	}
	if e.languages != nil {
		result.Language = e.languages.DetectLanguage(article.TextContent)
	}

	return result, nil
}

// prepare drops style sheets and turns <font> into <span> before scoring.
func (e *Extractor) prepare(doc *dom.Document) {
	if e.cleaner == nil {
		return
	}
	e.cleaner.RemoveNodes(doc.Root, "style", nil)
	e.cleaner.ReplaceNodes(doc.Root, "font", "span")
}
