package diskspace

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/charlievieth/fastwalk"
	"github.com/dustin/go-humanize"
)

// WalkSource measures by walking the tree in parallel with fastwalk,
// summing allocated blocks per directory the way du does.
type WalkSource struct {
	// Log receives debug output.
	Log io.Writer
	// Debug enables debug output.
	Debug bool
	// Progress, if set, is called periodically with entries seen and bytes counted.
	Progress func(entries, bytes int64)
	// ProgressInterval controls the Progress cadence.
	ProgressInterval time.Duration
}

// inode identifies a file across hard links.
type inode struct {
	dev, ino uint64
}

// roundBlocks converts an apparent size in bytes to whole blocks.
func roundBlocks(size int64) int64 {
	if size <= 0 {
		return 0
	}

	return (size + BlockSize - 1) / BlockSize
}

// calculateDepth returns the depth of a path relative to the root.
func calculateDepth(path, root string) int {
	relPath := strings.TrimPrefix(path, root)

	relPath = strings.TrimPrefix(relPath, string(filepath.Separator))
	if relPath == "" {
		return 0
	}

	return strings.Count(relPath, string(filepath.Separator)) + 1
}

// collector aggregates directory sizes from concurrent fastwalk callbacks using a mutex.
type collector struct {
	mu         sync.Mutex // Protect concurrent access
	root       string
	sizes      map[string]int64
	seen       map[inode]struct{}
	entries    int64
	bytes      int64
	errorCount int64
}

// newCollector creates a collector for the tree under root.
func newCollector(root string) *collector {
	return &collector{
		root:  root,
		sizes: make(map[string]int64),
		seen:  make(map[inode]struct{}),
	}
}

// addError increments the error counter.
func (c *collector) addError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errorCount++
}

// add records an entry's blocks against its directory and every ancestor up to root.
// A directory also counts towards itself. Entries with several hard links are
// counted once per identity.
func (c *collector) add(path string, isDir bool, blocks int64, id inode, multiLink bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries++

	if multiLink {
		if _, ok := c.seen[id]; ok {
			return
		}

		c.seen[id] = struct{}{}
	}

	c.bytes += blocks * BlockSize

	dir := path
	if !isDir {
		dir = filepath.Dir(path)
	}

	for {
		c.sizes[dir] += blocks
		if dir == c.root {
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}

		dir = parent
	}
}

// progress returns the current counters.
func (c *collector) progress() (int64, int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.entries, c.bytes
}

// finalize returns measurements for directories within depth,
// descendants before their directory and siblings by name.
func (c *collector) finalize(depth int) []Measurement {
	c.mu.Lock()
	defer c.mu.Unlock()

	paths := make([]string, 0, len(c.sizes))

	for dir := range c.sizes {
		if depth != Unlimited && calculateDepth(dir, c.root) > depth {
			continue
		}

		paths = append(paths, dir)
	}

	slices.SortFunc(paths, comparePostOrder(c.root))

	measurements := make([]Measurement, 0, len(paths))
	for _, dir := range paths {
		measurements = append(measurements, Measurement{Blocks: c.sizes[dir], Path: dir})
	}

	return measurements
}

// comparePostOrder orders paths under root so that descendants precede
// their ancestors and siblings compare by name.
func comparePostOrder(root string) func(a, b string) int {
	sep := string(filepath.Separator)

	components := func(path string) []string {
		rel := strings.TrimPrefix(strings.TrimPrefix(path, root), sep)
		if rel == "" {
			return nil
		}

		return strings.Split(rel, sep)
	}

	return func(a, b string) int {
		as, bs := components(a), components(b)

		for i := 0; i < len(as) && i < len(bs); i++ {
			if c := strings.Compare(as[i], bs[i]); c != 0 {
				return c
			}
		}

		// One is an ancestor of the other: the deeper path comes first.
		return len(bs) - len(as)
	}
}

// startProgressReporter invokes hook(entries, bytes) on each tick until ctx is done.
//
//nolint:varnamelen // c is idiomatic for collector
func startProgressReporter(ctx context.Context, c *collector, hook func(int64, int64), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				hook(c.progress())
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Measure walks root and returns per-directory block totals down to depth.
func (s *WalkSource) Measure(ctx context.Context, root string, depth int) ([]Measurement, error) {
	log := logger{w: s.Log, enabled: s.Debug}

	rootInfo, err := os.Lstat(root)
	if err != nil {
		return nil, &SourceError{Source: "walk", Root: root, Err: err}
	}

	collector := newCollector(root)

	blocks, id, multi := fileBlocks(rootInfo)
	collector.add(root, true, blocks, id, multi)

	if !rootInfo.IsDir() {
		return collector.finalize(depth), nil
	}

	// Create child context to ensure progress reporter cleanup
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	startProgressReporter(ctx, collector, s.Progress, s.ProgressInterval)

	start := time.Now()

	conf := &fastwalk.Config{
		Follow: false, // Don't follow symlinks
	}

	//nolint:varnamelen // d is standard for DirEntry
	walkErr := fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.debugf("error accessing path %s: %v\n", path, err)
			collector.addError()

			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if path == root {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			log.debugf("error reading info for %s: %v\n", path, err)
			collector.addError()

			return nil //nolint:nilerr // Intentionally skip errors during walk
		}

		blocks, id, multi := fileBlocks(info)
		collector.add(path, d.IsDir(), blocks, id, multi)

		return nil
	})
	if walkErr != nil {
		return nil, &SourceError{Source: "walk", Root: root, Err: walkErr}
	}

	entries, bytes := collector.progress()
	log.debugf("walked %s entries (%s) in %v, %d errors\n",
		humanize.Comma(entries), humanize.IBytes(uint64(bytes)), //nolint:gosec // Bytes is always positive
		time.Since(start), collector.errorCount)

	return collector.finalize(depth), nil
}
