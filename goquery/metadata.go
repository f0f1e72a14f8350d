// Package goquery extracts page metadata (title, byline, excerpt, charset)
// from parsed HTML documents using goquery selections.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemeta"
	"github.com/fwojciec/pagemeta/dom"
)

var (
	// rxProperty matches namespaced property attributes such as "og:title".
	// It is unanchored; only the first match in an attribute is used.
	rxProperty = regexp.MustCompile(`(?i)\s*(article|dc|dcterm|og|twitter)\s*:\s*(author|creator|description|published_time|title|site_name)\s*`)

	// rxName matches the whole name attribute, e.g. "dc.title" or "description".
	rxName = regexp.MustCompile(`(?i)^\s*(?:(dc|dcterm|og|twitter|weibo:(article|webpage))\s*[.:]\s*)?(author|creator|description|title|site_name)\s*$`)

	rxAnySpace = regexp.MustCompile(`\s`)
)

// Candidate keys for each field, in priority order.
var (
	excerptKeys = []string{
		"dc:description",
		"dcterm:description",
		"og:description",
		"weibo:article:description",
		"weibo:webpage:description",
		"description",
		"twitter:description",
	}
	titleKeys = []string{
		"dc:title",
		"dcterm:title",
		"og:title",
		"weibo:article:title",
		"weibo:webpage:title",
		"title",
		"twitter:title",
	}
	bylineKeys = []string{
		"dc:creator",
		"dcterm:creator",
		"author",
	}
	siteNameKeys = []string{
		"og:site_name",
		"dc:site_name",
		"dcterm:site_name",
		"twitter:site_name",
		"site_name",
	}
	publishedTimeKeys = []string{
		"article:published_time",
	}
)

// ExtractMetadata returns the metadata of doc. It never fails: fields with
// no signal are left empty, and when no meta tag provides a title the
// document's own title is cleaned up by DeriveTitle. The document is not
// modified.
func ExtractMetadata(doc *dom.Document) *pagemeta.Metadata {
	values := harvestMeta(doc)

	m := &pagemeta.Metadata{
		Title:         firstValue(values, titleKeys),
		Byline:        firstValue(values, bylineKeys),
		Excerpt:       firstValue(values, excerptKeys),
		SiteName:      firstValue(values, siteNameKeys),
		PublishedTime: firstValue(values, publishedTimeKeys),
	}
	if strings.TrimSpace(m.Title) == "" {
		m.Title = DeriveTitle(doc)
	}
	if doc != nil {
		m.Charset = doc.Charset
	}

	m.Title = UnescapeHTMLEntities(m.Title)
	m.Byline = UnescapeHTMLEntities(m.Byline)
	m.Excerpt = UnescapeHTMLEntities(m.Excerpt)
	m.SiteName = UnescapeHTMLEntities(m.SiteName)
	m.PublishedTime = UnescapeHTMLEntities(m.PublishedTime)

	return m
}

// harvestMeta maps normalized meta keys to trimmed content. A later meta tag
// overwrites an earlier one with the same key.
func harvestMeta(doc *dom.Document) map[string]string {
	values := make(map[string]string)
	if doc == nil || doc.Root == nil {
		return values
	}

	goquery.NewDocumentFromNode(doc.Root).Find("meta").Each(func(_ int, sel *goquery.Selection) {
		content, _ := sel.Attr("content")
		if content == "" {
			return
		}

		if property, ok := sel.Attr("property"); ok {
			if match := rxProperty.FindString(property); match != "" {
				values[normalizeKey(match)] = strings.TrimSpace(content)
				return
			}
		}

		if name, ok := sel.Attr("name"); ok && rxName.MatchString(name) {
			key := strings.ReplaceAll(normalizeKey(name), ".", ":")
			values[key] = strings.TrimSpace(content)
		}
	})

	return values
}

// firstValue returns the first non-empty value among keys.
func firstValue(values map[string]string, keys []string) string {
	for _, key := range keys {
		if v := values[key]; v != "" {
			return v
		}
	}
	return ""
}

func normalizeKey(s string) string {
	return rxAnySpace.ReplaceAllString(strings.ToLower(s), "")
}
