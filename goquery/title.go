package goquery

import (
	"regexp"
	"strings"
	"unicode/utf16"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemeta/dom"
)

var (
	rxSeparator             = regexp.MustCompile(` [|\-/>»] `)
	rxHierarchicalSeparator = regexp.MustCompile(` [/>»] `)
	rxTitleBeforeLast       = regexp.MustCompile(`(?i)(.*)[|\-/>»] .*`)
	rxTitleAfterFirst       = regexp.MustCompile(`(?i)[^|\-/>»]*[|\-/>»](.*)`)
	rxSeparatorRun          = regexp.MustCompile(`[|\-/>»]+`)
	rxWordBreak             = regexp.MustCompile(`\s+`)
)

// DeriveTitle derives an article title from the document's <title> element,
// or an element with id "title" when that is blank. Site names are stripped
// at separators and colons, and a lone <h1> replaces titles that are too
// short or too long. If the cleaned title is four words or fewer and the
// cleanup cannot be trusted, the original title is returned unchanged.
//
// DeriveTitle never fails; a document whose title cannot be read yields "".
func DeriveTitle(doc *dom.Document) string {
	origTitle, _ := doc.Title()
	curTitle := origTitle

	if strings.TrimSpace(curTitle) == "" {
		if n := doc.GetElementByID("title"); n != nil {
			origTitle = dom.InnerText(n, true)
			curTitle = origTitle
		}
	}

	hadHierarchicalSeparators := false

	switch {
	case rxSeparator.MatchString(curTitle):
		hadHierarchicalSeparators = rxHierarchicalSeparator.MatchString(curTitle)
		curTitle = rxTitleBeforeLast.ReplaceAllString(origTitle, "${1}")
		if WordCount(curTitle) < 3 {
			curTitle = rxTitleAfterFirst.ReplaceAllString(origTitle, "${1}")
		}

	case strings.Contains(curTitle, ": "):
		if !headingEquals(doc, curTitle) {
			curTitle = origTitle[strings.LastIndex(origTitle, ":")+1:]
			if WordCount(curTitle) < 3 {
				curTitle = origTitle[strings.Index(origTitle, ":")+1:]
			} else if WordCount(origTitle[:strings.Index(origTitle, ":")]) > 5 {
				curTitle = origTitle
			}
		}

	case titleLength(curTitle) > 150 || titleLength(curTitle) < 15:
		if h1s := doc.GetElementsByTagName("h1"); len(h1s) == 1 {
			curTitle = dom.InnerText(h1s[0], true)
		}
	}

	curTitle = strings.TrimSpace(curTitle)

	curWords := WordCount(curTitle)
	if curWords <= 4 &&
		(!hadHierarchicalSeparators || curWords != WordCount(rxSeparatorRun.ReplaceAllString(origTitle, ""))-1) {
		return origTitle
	}
	return curTitle
}

// WordCount returns the number of fields produced by splitting s on runs of
// whitespace. Leading or trailing whitespace yields an empty field, so
// WordCount("") is 1 and WordCount(" a") is 2.
func WordCount(s string) int {
	return len(rxWordBreak.Split(s, -1))
}

// headingEquals reports whether any <h1> or <h2> has trimmed text equal to
// the trimmed title.
func headingEquals(doc *dom.Document, title string) bool {
	if doc == nil || doc.Root == nil {
		return false
	}
	title = strings.TrimSpace(title)
	match := false
	goquery.NewDocumentFromNode(doc.Root).Find("h1, h2").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		match = strings.TrimSpace(sel.Text()) == title
		return !match
	})
	return match
}

// titleLength returns the length of s in UTF-16 code units.
func titleLength(s string) int {
	return len(utf16.Encode([]rune(s)))
}
