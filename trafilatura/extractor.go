// Package trafilatura extracts article content with go-trafilatura and
// combines it with the metadata produced by the goquery package.
package trafilatura

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/pagemeta"
	"github.com/fwojciec/pagemeta/dom"
	"github.com/fwojciec/pagemeta/goquery"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements pagemeta.Extractor at compile time.
var _ pagemeta.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
// Metadata always comes from goquery.ExtractMetadata; trafilatura's own
// description is only used when the page declares no excerpt.
type Extractor struct {
	languages pagemeta.LanguageDetector
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLanguageDetector sets the detector used to fill Article.Language.
func WithLanguageDetector(d pagemeta.LanguageDetector) Option {
	return func(e *Extractor) {
		e.languages = d
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
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

	doc, err := dom.Parse(strings.NewReader(page.HTML), page.ContentType)
	if err != nil {
		return nil, err
	}
	meta := goquery.ExtractMetadata(doc)

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(page.HTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	if meta.Excerpt == "" {
		meta.Excerpt = strings.TrimSpace(result.Metadata.Description)
	}

	article := &pagemeta.Article{
		Metadata:    *meta,
		ContentHTML: contentHTML,
		TextContent: result.ContentText,
		Length:      utf8.RuneCountInString(result.ContentText),
	}
	if e.languages != nil {
		article.Language = e.languages.DetectLanguage(result.ContentText)
	}

	return article, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
