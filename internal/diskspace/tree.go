package diskspace

import (
	"cmp"
	"fmt"
	"path/filepath"
	"slices"
)

// Measurement is one (size, path) observation from a Source.
type Measurement struct {
	// Blocks is the size in BlockSize units.
	Blocks int64
	// Path is the absolute path of the entry.
	Path string
}

// Node is one filesystem entry in a Tree.
type Node struct {
	// Size is the size in blocks.
	Size int64
	// Children holds the paths of the direct children.
	Children []string
	// PrintSize is the formatted size, set by Tree.Format.
	PrintSize string

	linked bool
}

// Tree maps absolute paths to nodes. Children reference each other by path,
// since nodes are created out of order and corrected in place.
type Tree struct {
	// Root is the root path.
	Root string
	// Total is the size of the root node in blocks.
	Total int64
	// Nodes holds every known node, including placeholders.
	Nodes map[string]*Node
}

// Order is the sort order of children within a node.
type Order int

const (
	// Descending sorts the largest children first.
	Descending Order = iota
	// Ascending sorts the smallest children first.
	Ascending
)

// ParseOrder converts "desc" or "asc" into an Order.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "desc":
		return Descending, nil
	case "asc":
		return Ascending, nil
	default:
		return Descending, fmt.Errorf("invalid order %q: must be one of [desc asc]", s)
	}
}

func (o Order) String() string {
	if o == Ascending {
		return "asc"
	}

	return "desc"
}

// node returns the node for path, creating an empty one if needed.
func (t *Tree) node(path string) *Node {
	n, ok := t.Nodes[path]
	if !ok {
		n = &Node{}
		t.Nodes[path] = n
	}

	return n
}

// Build folds measurements into a Tree rooted at root.
// Measurements may arrive in any order; a parent first seen as someone's
// directory is a zero-size placeholder until its own measurement arrives.
func Build(measurements []Measurement, root string) (*Tree, error) {
	tree := &Tree{
		Root:  root,
		Nodes: make(map[string]*Node, len(measurements)),
	}

	seenRoot := false

	for _, m := range measurements {
		if m.Path == root {
			tree.node(root).Size = m.Blocks
			tree.Total = m.Blocks
			seenRoot = true

			continue
		}

		n := tree.node(m.Path)
		n.Size = m.Blocks

		if n.linked {
			continue
		}

		parent := tree.node(filepath.Dir(m.Path))
		parent.Children = append(parent.Children, m.Path)
		n.linked = true
	}

	if !seenRoot {
		return nil, fmt.Errorf("%w: %q", ErrMissingRootMeasurement, root)
	}

	return tree, nil
}

// Sort orders the children of every node by size. Ties keep insertion order.
func (t *Tree) Sort(order Order) {
	for _, n := range t.Nodes {
		slices.SortStableFunc(n.Children, func(a, b string) int {
			c := cmp.Compare(t.Nodes[a].Size, t.Nodes[b].Size)
			if order == Descending {
				return -c
			}

			return c
		})
	}
}

// Format sets PrintSize on every node and returns the widest one.
func (t *Tree) Format() int {
	width := 0

	for _, n := range t.Nodes {
		n.PrintSize = FormatBlocks(n.Size)
		width = max(width, len(n.PrintSize))
	}

	return width
}
