// Package htmltomarkdown renders extracted article HTML as Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/pagemeta"
)

// Ensure Converter implements pagemeta.Converter at compile time.
var _ pagemeta.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", pagemeta.Errorf(pagemeta.EINVALID, "empty HTML input")
	}
	return c.conv.ConvertString(html)
}

// ConvertArticle renders an article as a Markdown document with front
// matter built from its metadata. An article without content yields the
// front matter and title only.
func (c *Converter) ConvertArticle(a *pagemeta.Article) (string, error) {
	var body string
	if strings.TrimSpace(a.ContentHTML) != "" {
		md, err := c.Convert(a.ContentHTML)
		if err != nil {
			return "", err
		}
		body = md
	}
	return pagemeta.FormatArticleMarkdown(a, body), nil
}
