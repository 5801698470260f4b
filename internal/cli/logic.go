package cli

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/idelchi/diskspace/internal/diskspace"
)

func logic(ctx context.Context, out io.Writer, options diskspace.Options) error {
	if ctx == nil {
		ctx = context.Background()
	}

	enableProgress := options.Source == "walk" &&
		!options.Debug &&
		isatty.IsTerminal(os.Stderr.Fd())

	var status *statusLine

	cfg := diskspace.SourceConfig{
		Log:   options.Log,
		Debug: options.Debug,
	}

	if enableProgress {
		status = newStatusLine(os.Stderr)
		defer status.close()

		cfg.Progress = status.update
	}

	src, err := diskspace.NewSource(options.Source, cfg)
	if err != nil {
		return err
	}

	if status == nil {
		return diskspace.Show(ctx, out, src, options)
	}

	return diskspace.Show(ctx, &clearingWriter{w: out, status: status}, src, options)
}
