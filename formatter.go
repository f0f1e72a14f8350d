package pagemeta

import "strings"

// FormatMetadata formats metadata as aligned "Label: value" lines for display.
// Empty fields are omitted except Title, which falls back to "(untitled)".
func FormatMetadata(m *Metadata) string {
	if m == nil {
		return ""
	}

	title := m.Title
	if title == "" {
		title = "(untitled)"
	}

	fields := []struct {
		label string
		value string
	}{
		{"Title", title},
		{"Byline", m.Byline},
		{"Excerpt", m.Excerpt},
		{"Site", m.SiteName},
		{"Published", m.PublishedTime},
		{"Charset", m.Charset},
	}

	var b strings.Builder
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		b.WriteString(f.label)
		b.WriteString(":")
		b.WriteString(strings.Repeat(" ", 11-len(f.label)))
		b.WriteString(f.value)
		b.WriteString("\n")
	}
	return b.String()
}

// FormatArticleMarkdown formats an article as Markdown with front matter.
// body is the Markdown rendering of the article content.
func FormatArticleMarkdown(a *Article, body string) string {
	var b strings.Builder
	b.WriteString("---\n")
	writeFrontMatter(&b, "title", a.Title)
	writeFrontMatter(&b, "byline", a.Byline)
	writeFrontMatter(&b, "excerpt", a.Excerpt)
	writeFrontMatter(&b, "site", a.SiteName)
	writeFrontMatter(&b, "published", a.PublishedTime)
	writeFrontMatter(&b, "language", a.Language)
	writeFrontMatter(&b, "charset", a.Charset)
	b.WriteString("---\n")
	if a.Title != "" {
		b.WriteString("\n# ")
		b.WriteString(a.Title)
		b.WriteString("\n")
	}
	if body = strings.TrimSpace(body); body != "" {
		b.WriteString("\n")
		b.WriteString(body)
		b.WriteString("\n")
	}
	return b.String()
}

func writeFrontMatter(b *strings.Builder, key, value string) {
	if value == "" {
		return
	}
	b.WriteString(key)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString("\n")
}
