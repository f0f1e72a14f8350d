// Package fs reads pages from the local file system and writes extracted
// articles as Markdown files.
package fs

import (
	"net/url"
	"path"
	"strings"

	"github.com/fwojciec/pagemeta"
)

// URLToPath converts a page URL to a relative Markdown file path.
//
//	https://example.com/news/story.html → example.com/news/story.md
//	https://example.com/news/           → example.com/news/index.md
//	file:///tmp/pages/story.html        → story.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", pagemeta.Errorf(pagemeta.EINVALID, "invalid URL %q: %v", rawURL, err)
	}

	if u.Scheme == "file" || u.Host == "" {
		name := path.Base(u.Path)
		if name == "." || name == "/" || name == "" {
			return "index.md", nil
		}
		return stripHTMLExt(name) + ".md", nil
	}

	for _, seg := range strings.Split(u.Path, "/") {
		if seg == ".." {
			return "", pagemeta.Errorf(pagemeta.EINVALID, "path traversal in URL %q", rawURL)
		}
	}

	p := strings.TrimPrefix(u.Path, "/")
	switch {
	case p == "":
		p = "index.md"
	case strings.HasSuffix(p, "/"):
		p += "index.md"
	default:
		p = stripHTMLExt(p) + ".md"
	}
	return path.Join(u.Hostname(), p), nil
}

func stripHTMLExt(p string) string {
	for _, ext := range []string{".html", ".htm", ".xhtml"} {
		if strings.HasSuffix(strings.ToLower(p), ext) {
			return p[:len(p)-len(ext)]
		}
	}
	return p
}
