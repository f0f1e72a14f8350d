package pagemeta

// Metadata holds the metadata extracted from an HTML document.
// A Metadata value is built fresh for every extraction and is not
// modified after it is returned.
type Metadata struct {
	// Title is the article title: meta tags first, then the document's
	// own <title> cleaned by the title heuristic.
	Title string `json:"title" yaml:"title"`

	// Byline is the author as declared by dc:creator, dcterm:creator or author.
	Byline string `json:"byline,omitempty" yaml:"byline,omitempty"`

	// Excerpt is the page summary from description meta tags.
	Excerpt string `json:"excerpt,omitempty" yaml:"excerpt,omitempty"`

	// Charset is the character encoding detected while parsing.
	Charset string `json:"charset" yaml:"charset"`

	SiteName      string `json:"siteName,omitempty" yaml:"siteName,omitempty"`
	PublishedTime string `json:"publishedTime,omitempty" yaml:"publishedTime,omitempty"`
}

// MetadataExtractor extracts metadata from a fetched page.
type MetadataExtractor interface {
	// ExtractMetadata parses the page HTML and returns its metadata.
	// Returns EINVALID if the page has no HTML.
	ExtractMetadata(page *Page) (*Metadata, error)
}

// Article is the main content of a page together with its metadata.
type Article struct {
	Metadata `yaml:",inline"`

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string `json:"contentHtml,omitempty" yaml:"contentHtml,omitempty"`

	// TextContent is the plain text of ContentHTML.
	TextContent string `json:"-" yaml:"-"`

	// Length is the number of characters in TextContent.
	Length int `json:"length,omitempty" yaml:"length,omitempty"`

	// Language is the ISO 639-1 code of the detected content language.
	Language string `json:"language,omitempty" yaml:"language,omitempty"`
}

// Extractor extracts the main content of a page, removing boilerplate.
type Extractor interface {
	// Extract processes the page HTML and returns the article.
	// Title, byline, excerpt and charset come from the metadata extractor;
	// the content HTML has boilerplate removed but preserves structure.
	Extract(page *Page) (*Article, error)
}

// LanguageDetector detects the natural language of a text.
type LanguageDetector interface {
	// DetectLanguage returns the lowercase ISO 639-1 code of the language
	// of text, or "" when it cannot be determined reliably.
	DetectLanguage(text string) string
}
