package dom

import (
	"regexp"
	"strings"

	"github.com/go-shiori/dom"
	"golang.org/x/net/html"
)

var (
	rxNormalize  = regexp.MustCompile(`\s{2,}`)
	rxWhitespace = regexp.MustCompile(`^\s*$`)
)

// phrasingElems are the elements that are always phrasing content.
// A, DEL and INS are phrasing only when all of their children are.
var phrasingElems = map[string]struct{}{
	"abbr": {}, "audio": {}, "b": {}, "bdo": {}, "br": {}, "button": {},
	"cite": {}, "code": {}, "data": {}, "datalist": {}, "dfn": {}, "em": {},
	"embed": {}, "i": {}, "img": {}, "input": {}, "kbd": {}, "label": {},
	"mark": {}, "math": {}, "meter": {}, "noscript": {}, "object": {},
	"output": {}, "progress": {}, "q": {}, "ruby": {}, "samp": {},
	"script": {}, "select": {}, "small": {}, "span": {}, "strong": {},
	"sub": {}, "sup": {}, "textarea": {}, "time": {}, "var": {}, "wbr": {},
}

// TagName returns the lowercase tag name of an element node, or "" for
// any other node type.
func TagName(n *html.Node) string {
	return strings.ToLower(dom.TagName(n))
}

// IsBlank reports whether s is empty or consists only of whitespace.
func IsBlank(s string) bool {
	return rxWhitespace.MatchString(s)
}

// IsWhitespace reports whether n is a text node with no visible text or a
// <br> element.
func IsWhitespace(n *html.Node) bool {
	switch n.Type {
	case html.TextNode:
		return strings.TrimSpace(n.Data) == ""
	case html.ElementNode:
		return TagName(n) == "br"
	}
	return false
}

// IsPhrasingContent reports whether n is phrasing content: a text node, an
// inline element, or an a/del/ins element whose children are all phrasing
// content.
func IsPhrasingContent(n *html.Node) bool {
	if n.Type == html.TextNode {
		return true
	}
	if n.Type != html.ElementNode {
		return false
	}

	tag := TagName(n)
	if _, ok := phrasingElems[tag]; ok {
		return true
	}
	if tag != "a" && tag != "del" && tag != "ins" {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !IsPhrasingContent(c) {
			return false
		}
	}
	return true
}

// NextElement returns n or the first following sibling that is not
// insignificant: non-element nodes whose text isBlank reports as blank are
// skipped. The returned node is usually an element but may be a text node
// with visible content. Returns nil when the siblings are exhausted.
// A nil isBlank uses IsBlank.
func NextElement(n *html.Node, isBlank func(string) bool) *html.Node {
	if isBlank == nil {
		isBlank = IsBlank
	}
	next := n
	for next != nil && next.Type != html.ElementNode && isBlank(dom.TextContent(next)) {
		next = next.NextSibling
	}
	return next
}

// InnerText returns the trimmed text content of n. When normalizeSpaces is
// true, runs of two or more whitespace characters are collapsed to a single
// space.
func InnerText(n *html.Node, normalizeSpaces bool) string {
	if n == nil {
		return ""
	}
	text := strings.TrimSpace(dom.TextContent(n))
	if normalizeSpaces {
		return rxNormalize.ReplaceAllString(text, " ")
	}
	return text
}

// TextContent returns the concatenated text of n and its descendants
// without trimming.
func TextContent(n *html.Node) string {
	if n == nil {
		return ""
	}
	return dom.TextContent(n)
}

// Attr returns the value of the named attribute of n, or "".
func Attr(n *html.Node, name string) string {
	return dom.GetAttribute(n, name)
}
