package mock

import "github.com/fwojciec/pagemeta"

var (
	_ pagemeta.Extractor         = (*Extractor)(nil)
	_ pagemeta.MetadataExtractor = (*MetadataExtractor)(nil)
	_ pagemeta.LanguageDetector  = (*LanguageDetector)(nil)
)

// Extractor is a mock implementation of pagemeta.Extractor.
type Extractor struct {
	ExtractFn func(page *pagemeta.Page) (*pagemeta.Article, error)
}

func (e *Extractor) Extract(page *pagemeta.Page) (*pagemeta.Article, error) {
	return e.ExtractFn(page)
}

// MetadataExtractor is a mock implementation of pagemeta.MetadataExtractor.
type MetadataExtractor struct {
	ExtractMetadataFn func(page *pagemeta.Page) (*pagemeta.Metadata, error)
}

func (e *MetadataExtractor) ExtractMetadata(page *pagemeta.Page) (*pagemeta.Metadata, error) {
	return e.ExtractMetadataFn(page)
}

// LanguageDetector is a mock implementation of pagemeta.LanguageDetector.
type LanguageDetector struct {
	DetectLanguageFn func(text string) string
}

func (d *LanguageDetector) DetectLanguage(text string) string {
	return d.DetectLanguageFn(text)
}
