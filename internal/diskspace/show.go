package diskspace

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
)

// Options configures a disk usage report and CLI behavior.
type Options struct {
	// Path is the directory to analyze.
	Path string
	// Depth is the maximum listing depth (Unlimited for the full tree).
	Depth int
	// All shows the full tree regardless of Depth.
	All bool
	// Order is the sort order of children.
	Order Order
	// Hide prunes entries below this percentage of the total.
	Hide int
	// TreeView prints an indented tree of base names instead of full paths.
	TreeView bool
	// Source names the measurement source ("du" or "walk").
	Source string
	// Debug indicates whether debug output is enabled.
	Debug bool
	// Version indicates whether to show version and exit.
	Version bool
	// Log receives debug output and warnings.
	Log io.Writer
}

// Show measures opt.Path with src and writes the report to w.
func Show(ctx context.Context, w io.Writer, src Source, opt Options) error {
	log := logger{w: opt.Log, enabled: opt.Debug}

	if opt.Path == "" {
		opt.Path = "."
	}

	root, err := filepath.Abs(opt.Path)
	if err != nil {
		return fmt.Errorf("resolving absolute path: %w", err)
	}

	depth := opt.Depth
	if opt.All {
		depth = Unlimited
	}

	log.debugf("root %s, depth %d, order %s, hide below %d%%\n", root, depth, opt.Order, opt.Hide)

	measurements, err := src.Measure(ctx, root, depth)
	if err != nil {
		return err
	}

	tree, err := Build(measurements, root)
	if err != nil {
		return err
	}

	tree.Sort(opt.Order)
	width := tree.Format()

	log.debugf("tree has %d nodes, total %d blocks\n", len(tree.Nodes), tree.Total)

	if _, err := fmt.Fprintln(w, Header(width)); err != nil {
		return err
	}

	cfg := RenderConfig{Width: width, HideBelow: opt.Hide, TreeView: opt.TreeView}

	for line := range Lines(tree, cfg) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}
