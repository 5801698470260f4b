package diskspace

import (
	"fmt"
	"iter"
	"path/filepath"
	"strings"
)

const (
	headerSize = "Size"
	header     = "Size   (%)  File"
	indent     = "   "
)

// RenderConfig controls how a Tree is rendered.
type RenderConfig struct {
	// Width is the column width of the size field.
	Width int
	// HideBelow prunes nodes, and their subtrees, under this percentage.
	HideBelow int
	// TreeView prints indented base names instead of full paths.
	TreeView bool
}

// Header returns the column header aligned to a size column of width.
func Header(width int) string {
	return strings.Repeat(" ", max(0, width-len(headerSize))) + header
}

// Percentage returns floor(size*100/total). A zero total counts as the whole.
func Percentage(size, total int64) int {
	if total <= 0 {
		return 100
	}

	return int(size * 100 / total)
}

// Lines renders the tree depth-first from its root, one line per visible node.
func Lines(t *Tree, cfg RenderConfig) iter.Seq[string] {
	return func(yield func(string) bool) {
		walkLines(t, cfg, t.Root, 0, yield)
	}
}

// walkLines reports false once yield asks to stop.
func walkLines(t *Tree, cfg RenderConfig, path string, depth int, yield func(string) bool) bool {
	n, ok := t.Nodes[path]
	if !ok {
		return true
	}

	pct := Percentage(n.Size, t.Total)
	if pct < cfg.HideBelow {
		return true
	}

	name := path
	if cfg.TreeView {
		name = strings.Repeat(indent, depth) + filepath.Base(path)
	}

	printSize := n.PrintSize
	if printSize == "" {
		printSize = FormatBlocks(n.Size)
	}

	if !yield(fmt.Sprintf("%*s %4d%%  %s", cfg.Width, printSize, pct, name)) {
		return false
	}

	for _, child := range n.Children {
		if !walkLines(t, cfg, child, depth+1, yield) {
			return false
		}
	}

	return true
}
