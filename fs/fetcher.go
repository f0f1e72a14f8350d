package fs

import (
	"context"
	"errors"
	"io/fs"
	"mime"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/pagemeta"
)

// DefaultMaxFileSize caps the size of local pages.
const DefaultMaxFileSize = 10 << 20

var _ pagemeta.Fetcher = (*Fetcher)(nil)

// Fetcher reads pages from local files. Sources with an http or https
// scheme are handed to the remote fetcher.
type Fetcher struct {
	remote pagemeta.Fetcher
}

// NewFetcher returns a Fetcher delegating remote URLs to remote.
// remote may be nil when only local files are expected.
func NewFetcher(remote pagemeta.Fetcher) *Fetcher {
	return &Fetcher{remote: remote}
}

// IsRemote reports whether source is an http or https URL.
func IsRemote(source string) bool {
	u, err := url.Parse(source)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Fetch reads source, which is either a remote URL, a file:// URL or a
// file system path. Local pages get a file:// URL and a media type
// guessed from the file extension.
func (f *Fetcher) Fetch(ctx context.Context, source string) (*pagemeta.Page, error) {
	if IsRemote(source) {
		if f.remote == nil {
			return nil, pagemeta.Errorf(pagemeta.ENOTIMPLEMENTED, "remote fetching disabled for %s", source)
		}
		return f.remote.Fetch(ctx, source)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := source
	if strings.HasPrefix(source, "file://") {
		u, err := url.Parse(source)
		if err != nil {
			return nil, pagemeta.Errorf(pagemeta.EINVALID, "invalid file URL %q: %v", source, err)
		}
		path = u.Path
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(abs)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, pagemeta.Errorf(pagemeta.ENOTFOUND, "file not found: %s", path)
	} else if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, pagemeta.Errorf(pagemeta.EINVALID, "%s is a directory", path)
	}
	if info.Size() > DefaultMaxFileSize {
		return nil, pagemeta.Errorf(pagemeta.EINVALID, "%s exceeds %d bytes", path, DefaultMaxFileSize)
	}

	body, err := os.ReadFile(abs)
	if err != nil {
		return nil, err
	}

	// The encoding of a local file is unknown; drop any charset parameter
	// so detection falls back to the BOM and <meta> prescan.
	contentType, _, _ := strings.Cut(mime.TypeByExtension(filepath.Ext(abs)), ";")
	if contentType == "" {
		contentType = "text/html"
	}

	return &pagemeta.Page{
		URL:         (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String(),
		ContentType: contentType,
		HTML:        string(body),
	}, nil
}

// Close closes the remote fetcher.
func (f *Fetcher) Close() error {
	if f.remote == nil {
		return nil
	}
	return f.remote.Close()
}
