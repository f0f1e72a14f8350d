package fs

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// FileStore writes Markdown files with atomic update semantics.
// Files are saved to a temporary directory and moved into place on Commit.
type FileStore struct {
	baseDir string
	name    string
	saved   map[string]bool
}

// NewFileStore creates a new FileStore.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewFileStore(baseDir, name string) *FileStore {
	return &FileStore{
		baseDir: baseDir,
		name:    name,
		saved:   make(map[string]bool),
	}
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes content for the page at sourceURL into the temporary directory.
// When an earlier source in the same store already mapped to the same path,
// a numeric suffix is added ("index-2.md").
func (s *FileStore) Save(sourceURL, content string) error {
	relPath, err := URLToPath(sourceURL)
	if err != nil {
		return err
	}
	relPath = s.uniquePath(relPath)
	s.saved[relPath] = true

	fullPath := filepath.Join(s.tempDir(), filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, []byte(content), 0644)
}

// uniquePath returns relPath, or relPath with the first free numeric suffix
// when it was already saved.
func (s *FileStore) uniquePath(relPath string) string {
	if !s.saved[relPath] {
		return relPath
	}
	ext := path.Ext(relPath)
	stem := strings.TrimSuffix(relPath, ext)
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s-%d%s", stem, i, ext)
		if !s.saved[candidate] {
			return candidate
		}
	}
}

// Commit replaces the final directory with the saved files. When nothing was
// saved the final directory is left untouched.
func (s *FileStore) Commit() error {
	if len(s.saved) == 0 {
		return s.Abort()
	}
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards everything saved since the store was created.
func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
