package diskspace

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Unlimited requests measurements at every depth.
const Unlimited = -1

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// Source produces measurements for root and, down to depth, its descendant directories.
// The root itself is always included. A depth of Unlimited means no limit.
type Source interface {
	Measure(ctx context.Context, root string, depth int) ([]Measurement, error)
}

// SourceConfig holds settings shared by all sources.
type SourceConfig struct {
	// Log receives debug output and warnings.
	Log io.Writer
	// Debug enables debug output.
	Debug bool
	// Progress, if set, is called periodically with entries seen and bytes counted.
	Progress func(entries, bytes int64)
	// ProgressInterval controls the Progress cadence.
	ProgressInterval time.Duration
}

// NewSource returns the source registered under name ("du" or "walk").
func NewSource(name string, cfg SourceConfig) (Source, error) {
	switch name {
	case "du":
		return &DuSource{Log: cfg.Log, Debug: cfg.Debug}, nil
	case "walk":
		return &WalkSource{
			Log:              cfg.Log,
			Debug:            cfg.Debug,
			Progress:         cfg.Progress,
			ProgressInterval: cfg.ProgressInterval,
		}, nil
	default:
		return nil, fmt.Errorf("unknown source %q: must be one of [du walk]", name)
	}
}
