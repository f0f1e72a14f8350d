package dom

import (
	"context"
	"log/slog"

	"github.com/go-shiori/dom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Cleaner mutates a document tree by removing or renaming elements.
// Every mutation is logged at debug level with the serialized subtree.
type Cleaner struct {
	logger *slog.Logger
}

// NewCleaner creates a new Cleaner. A nil logger discards diagnostics.
func NewCleaner(logger *slog.Logger) *Cleaner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Cleaner{logger: logger}
}

// RemoveNodes detaches every descendant of root with the given tag name for
// which filter returns true. A nil filter removes all of them. Elements are
// visited in reverse document order and skipped once detached, so nested
// matches are each removed exactly once.
func (c *Cleaner) RemoveNodes(root *html.Node, tagName string, filter func(*html.Node) bool) {
	reason := "tag"
	if filter != nil {
		reason = "filter"
	}

	nodes := dom.GetElementsByTagName(root, tagName)
	for i := len(nodes) - 1; i >= 0; i-- {
		n := nodes[i]
		if n.Parent == nil {
			continue
		}
		if filter != nil && !filter(n) {
			continue
		}
		c.debug("removing node", n, tagName, reason)
		n.Parent.RemoveChild(n)
	}
}

// ReplaceNodes renames every descendant of root with tag name tagName to
// newTagName, keeping its attributes, children and position.
func (c *Cleaner) ReplaceNodes(root *html.Node, tagName, newTagName string) {
	for _, n := range dom.GetElementsByTagName(root, tagName) {
		c.debug("renaming node", n, tagName, "rename to "+newTagName)
		n.Data = newTagName
		n.DataAtom = atom.Lookup([]byte(newTagName))
	}
}

func (c *Cleaner) debug(msg string, n *html.Node, tagName, reason string) {
	if !c.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	c.logger.Debug(msg,
		"tag", tagName,
		"reason", reason,
		"html", dom.OuterHTML(n),
	)
}
