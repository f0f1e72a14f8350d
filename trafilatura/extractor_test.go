package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/pagemeta"
	"github.com/fwojciec/pagemeta/mock"
	"github.com/fwojciec/pagemeta/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract(&pagemeta.Page{})

		require.Error(t, err)
		assert.Equal(t, pagemeta.EINVALID, pagemeta.ErrorCode(err))
	})

	t.Run("takes title from meta tags", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Getting Started - My Docs</title>
<meta property="og:title" content="Getting Started Guide">
</head>
<body>
<nav>Navigation here</nav>
<main>
<h1>Getting Started</h1>
<p>This is the main content of the documentation page.</p>
</main>
<footer>Footer content</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(&pagemeta.Page{HTML: html})

		require.NoError(t, err)
		assert.Equal(t, "Getting Started Guide", result.Title)
	})

	t.Run("extracts main content", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/">Home</a><a href="/docs">Docs</a></nav>
<article>
<h1>Documentation</h1>
<p>This is important documentation content that should be extracted.</p>
<pre><code>func main() { fmt.Println("Hello") }</code></pre>
</article>
<aside>Sidebar content</aside>
<footer>Copyright 2024</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(&pagemeta.Page{HTML: html})

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "important documentation content")
		assert.Positive(t, result.Length)
	})

	t.Run("keeps meta excerpt", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><meta property="og:description" content="Declared summary"></head>
<body><article><p>This is important documentation content that should be extracted.</p></article></body></html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(&pagemeta.Page{HTML: html})

		require.NoError(t, err)
		assert.Equal(t, "Declared summary", result.Excerpt)
	})

	t.Run("detects language of content text", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Test</title></head>
<body><article><p>This is important documentation content that should be extracted.</p></article></body></html>`
		languages := &mock.LanguageDetector{
			DetectLanguageFn: func(text string) string {
				return "en"
			},
		}

		ext := trafilatura.NewExtractor(trafilatura.WithLanguageDetector(languages))
		result, err := ext.Extract(&pagemeta.Page{HTML: html})

		require.NoError(t, err)
		assert.Equal(t, "en", result.Language)
	})
}
