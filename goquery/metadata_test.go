package goquery_test

import (
	"testing"

	"github.com/fwojciec/pagemeta/dom"
	"github.com/fwojciec/pagemeta/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, html string) *dom.Document {
	t.Helper()
	doc, err := dom.ParseString(html)
	require.NoError(t, err)
	return doc
}

func TestExtractMetadata_Title(t *testing.T) {
	t.Parallel()

	t.Run("uses og:title content", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head>
<meta property="og:title" content="  Actual Article Title  ">
<title>British Broadcasting Corporation</title>
</head></html>`)

		m := goquery.ExtractMetadata(doc)

		assert.Equal(t, "Actual Article Title", m.Title)
	})

	t.Run("prefers dc:title over og:title regardless of order", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head>
<meta property="og:title" content="OG Title">
<meta name="dc.title" content="DC Title">
</head></html>`)

		m := goquery.ExtractMetadata(doc)

		assert.Equal(t, "DC Title", m.Title)
	})

	t.Run("prefers og:title over twitter:title", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head>
<meta name="twitter:title" content="Twitter Title">
<meta property="og:title" content="OG Title">
</head></html>`)

		m := goquery.ExtractMetadata(doc)

		assert.Equal(t, "OG Title", m.Title)
	})

	t.Run("uses weibo name attributes", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head>
<meta name="weibo:article:title" content="Weibo Title">
<meta name="twitter:title" content="Twitter Title">
</head></html>`)

		m := goquery.ExtractMetadata(doc)

		assert.Equal(t, "Weibo Title", m.Title)
	})

	t.Run("unescapes entities in title", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head><meta property="og:title" content="Q&amp;amp;A &amp;#x41;PI"></head></html>`)

		m := goquery.ExtractMetadata(doc)

		assert.Equal(t, "Q&A API", m.Title)
	})

	t.Run("falls back to document title when meta title is blank", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head>
<meta property="og:title" content="   ">
<title>Understanding the Go Memory Model</title>
</head></html>`)

		m := goquery.ExtractMetadata(doc)

		assert.Equal(t, "Understanding the Go Memory Model", m.Title)
	})

	t.Run("later meta tag with the same key wins", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head>
<meta property="og:title" content="First">
<meta property="og:title" content="Second">
</head></html>`)

		m := goquery.ExtractMetadata(doc)

		assert.Equal(t, "Second", m.Title)
	})

	t.Run("normalizes whitespace and case in property", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head><meta property=" OG : Title " content="Spaced"></head></html>`)

		m := goquery.ExtractMetadata(doc)

		assert.Equal(t, "Spaced", m.Title)
	})

	t.Run("uses only the first match in a multi-valued property", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head>
<meta property="twitter:description og:title" content="Shared">
<title>Understanding the Go Memory Model</title>
</head></html>`)

		m := goquery.ExtractMetadata(doc)

		assert.Equal(t, "Understanding the Go Memory Model", m.Title)
		assert.Equal(t, "Shared", m.Excerpt)
	})

	t.Run("ignores name that only partially matches", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head>
<meta name="og:title:extra" content="Wrong">
<title>Understanding the Go Memory Model</title>
</head></html>`)

		m := goquery.ExtractMetadata(doc)

		assert.Equal(t, "Understanding the Go Memory Model", m.Title)
	})

	t.Run("does not fall back to name when property matched", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head><meta property="og:description" name="title" content="Both"></head></html>`)

		m := goquery.ExtractMetadata(doc)

		assert.Equal(t, "Both", m.Excerpt)
		assert.Empty(t, m.Title)
	})
}

func TestExtractMetadata_Excerpt(t *testing.T) {
	t.Parallel()

	t.Run("first match wins over priority list", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head>
<meta name="twitter:description" content="Twitter summary">
<meta name="dc.description" content="DC summary">
</head></html>`)

		m := goquery.ExtractMetadata(doc)

		assert.Equal(t, "DC summary", m.Excerpt)
	})

	t.Run("uses plain description", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head>
<meta name="description" content="Plain summary">
<meta name="twitter:description" content="Twitter summary">
</head></html>`)

		m := goquery.ExtractMetadata(doc)

		assert.Equal(t, "Plain summary", m.Excerpt)
	})

	t.Run("skips meta tags with empty content", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head>
<meta property="og:description" content="">
<meta name="twitter:description" content="Twitter summary">
</head></html>`)

		m := goquery.ExtractMetadata(doc)

		assert.Equal(t, "Twitter summary", m.Excerpt)
	})
}

func TestExtractMetadata_Byline(t *testing.T) {
	t.Parallel()

	t.Run("prefers dc:creator over author", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head>
<meta name="author" content="Plain Author">
<meta name="DC.creator" content="Dublin Core Author">
</head></html>`)

		m := goquery.ExtractMetadata(doc)

		assert.Equal(t, "Dublin Core Author", m.Byline)
	})

	t.Run("uses author name", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head><meta name="author" content="Jane &amp; John"></head></html>`)

		m := goquery.ExtractMetadata(doc)

		assert.Equal(t, "Jane & John", m.Byline)
	})

	t.Run("ignores article:author property", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head><meta property="article:author" content="https://example.com/jane"></head></html>`)

		m := goquery.ExtractMetadata(doc)

		assert.Empty(t, m.Byline)
	})
}

func TestExtractMetadata_Supplemental(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<html><head>
<meta property="og:site_name" content="Example News">
<meta property="article:published_time" content="2024-05-01T10:00:00Z">
</head></html>`)

	m := goquery.ExtractMetadata(doc)

	assert.Equal(t, "Example News", m.SiteName)
	assert.Equal(t, "2024-05-01T10:00:00Z", m.PublishedTime)
}

func TestExtractMetadata_Charset(t *testing.T) {
	t.Parallel()

	t.Run("reports detected charset", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head><meta charset="utf-8"><meta name="charset" content="latin1"></head></html>`)

		m := goquery.ExtractMetadata(doc)

		assert.Equal(t, "utf-8", m.Charset)
	})

	t.Run("handles nil document", func(t *testing.T) {
		t.Parallel()

		m := goquery.ExtractMetadata(nil)

		require.NotNil(t, m)
		assert.Empty(t, m.Title)
		assert.Empty(t, m.Charset)
	})
}

func TestExtractMetadata_DoesNotMutateDocument(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<html><head><title>Home</title></head><body><h1>A Much Better Article Heading Here</h1></body></html>`)
	before := len(doc.GetElementsByTagName("*"))

	m := goquery.ExtractMetadata(doc)

	assert.Equal(t, "A Much Better Article Heading Here", m.Title)
	assert.Len(t, doc.GetElementsByTagName("*"), before)
}
