package fs_test

import (
	"testing"

	"github.com/fwojciec/pagemeta"
	"github.com/fwojciec/pagemeta/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLToPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{"root", "https://example.com", "example.com/index.md"},
		{"root slash", "https://example.com/", "example.com/index.md"},
		{"trailing slash", "https://example.com/news/", "example.com/news/index.md"},
		{"html extension", "https://example.com/news/story.html", "example.com/news/story.md"},
		{"no extension", "https://example.com/docs/api/users", "example.com/docs/api/users.md"},
		{"port dropped", "http://localhost:8080/a", "localhost/a.md"},
		{"file URL", "file:///tmp/pages/Story.HTM", "Story.md"},
		{"plain path", "pages/story.html", "story.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := fs.URLToPath(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestURLToPath_RejectsPathTraversal(t *testing.T) {
	t.Parallel()

	_, err := fs.URLToPath("https://example.com/../../../etc/passwd")

	require.Error(t, err)
	assert.Equal(t, pagemeta.EINVALID, pagemeta.ErrorCode(err))
	assert.Contains(t, pagemeta.ErrorMessage(err), "path traversal")
}
