// Package dom provides the document model and the DOM traversal primitives
// shared by the metadata extractor and the content extraction stages.
package dom

import (
	"bytes"
	"io"
	"regexp"
	"strings"

	"github.com/fwojciec/pagemeta"
	"github.com/go-shiori/dom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

var rxASCIISpace = regexp.MustCompile(`[\t\n\f\r ]+`)

// Document is a parsed HTML document together with the character encoding
// it was decoded from.
type Document struct {
	// Root is the document node produced by the HTML parser.
	Root *html.Node

	// Charset is the canonical name of the detected encoding (e.g. "utf-8").
	Charset string
}

// Parse reads an HTML document from r, detects its character encoding and
// parses the UTF-8 decoded content. contentType is the HTTP Content-Type
// header, if any; its charset parameter takes precedence over <meta> hints.
func Parse(r io.Reader, contentType string) (*Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	_, name, _ := charset.DetermineEncoding(raw, contentType)
	decoded, err := charset.NewReaderLabel(name, bytes.NewReader(raw))
	if err != nil {
		return nil, pagemeta.Errorf(pagemeta.EINVALID, "unsupported charset %q", name)
	}

	root, err := html.Parse(decoded)
	if err != nil {
		return nil, pagemeta.Errorf(pagemeta.EINVALID, "failed to parse HTML: %v", err)
	}

	return &Document{Root: root, Charset: name}, nil
}

// ParseString parses a UTF-8 or self-describing HTML string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s), "")
}

// Title returns the text of the first <title> element with leading and
// trailing whitespace stripped and inner runs collapsed to a single space.
// ok is false when the document has no tree or no <title> element.
func (d *Document) Title() (title string, ok bool) {
	if d == nil || d.Root == nil {
		return "", false
	}
	titles := dom.GetElementsByTagName(d.Root, "title")
	if len(titles) == 0 {
		return "", false
	}
	return strings.TrimSpace(rxASCIISpace.ReplaceAllString(dom.TextContent(titles[0]), " ")), true
}

// GetElementByID returns the first descendant element whose id attribute
// equals id, or nil.
func (d *Document) GetElementByID(id string) *html.Node {
	if d == nil || d.Root == nil {
		return nil
	}
	for _, n := range dom.GetElementsByTagName(d.Root, "*") {
		if dom.GetAttribute(n, "id") == id {
			return n
		}
	}
	return nil
}

// GetElementsByTagName returns all descendant elements with the given tag
// name in document order.
func (d *Document) GetElementsByTagName(tagName string) []*html.Node {
	if d == nil || d.Root == nil {
		return nil
	}
	return dom.GetElementsByTagName(d.Root, tagName)
}
