package goquery

import (
	"strings"

	"github.com/fwojciec/pagemeta"
	"github.com/fwojciec/pagemeta/dom"
)

// Ensure MetadataExtractor implements the extractor interfaces at compile time.
var (
	_ pagemeta.MetadataExtractor = (*MetadataExtractor)(nil)
	_ pagemeta.Extractor         = (*MetadataExtractor)(nil)
)

// MetadataExtractor parses pages and extracts their metadata.
// Used as a pagemeta.Extractor it yields articles without content.
type MetadataExtractor struct{}

// NewMetadataExtractor creates a new MetadataExtractor.
func NewMetadataExtractor() *MetadataExtractor {
	return &MetadataExtractor{}
}

// ExtractMetadata parses the page HTML, detecting its charset from the
// content type and the document itself, and returns its metadata.
func (e *MetadataExtractor) ExtractMetadata(page *pagemeta.Page) (*pagemeta.Metadata, error) {
	if page == nil || page.HTML == "" {
		return nil, pagemeta.Errorf(pagemeta.EINVALID, "empty HTML input")
	}

	doc, err := dom.Parse(strings.NewReader(page.HTML), page.ContentType)
	if err != nil {
		return nil, err
	}

	return ExtractMetadata(doc), nil
}

// Extract returns an article holding only the page metadata.
func (e *MetadataExtractor) Extract(page *pagemeta.Page) (*pagemeta.Article, error) {
	m, err := e.ExtractMetadata(page)
	if err != nil {
		return nil, err
	}
	return &pagemeta.Article{Metadata: *m}, nil
}
