package diskspace

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"slices"
	"testing"
)

func TestDuSourceArgs(t *testing.T) {
	src := &DuSource{}

	if got := src.Args("/r", Unlimited); !slices.Equal(got, []string{"/r"}) {
		t.Errorf("Args(unlimited) = %v", got)
	}

	if got := src.Args("/r", 2); !slices.Equal(got, []string{"-d", "2", "/r"}) {
		t.Errorf("Args(2) = %v", got)
	}
}

func TestDuSourceMeasure(t *testing.T) {
	if _, err := exec.LookPath("du"); err != nil {
		t.Skip("du not available")
	}

	root := fixture(t)

	var log bytes.Buffer

	measurements, err := (&DuSource{Log: &log}).Measure(context.Background(), root, 1)
	if err != nil {
		t.Fatalf("Measure() error = %v", err)
	}

	sizes := sizesOf(measurements)
	for _, path := range []string{root, filepath.Join(root, "big"), filepath.Join(root, "small dir")} {
		if _, ok := sizes[path]; !ok {
			t.Errorf("missing measurement for %q in %+v", path, measurements)
		}
	}

	if _, ok := sizes[filepath.Join(root, "big", "nested")]; ok {
		t.Error("depth 1 reported a depth 2 directory")
	}

	if log.Len() != 0 {
		t.Errorf("unexpected warnings: %s", log.String())
	}
}

func TestDuSourceFailure(t *testing.T) {
	if _, err := exec.LookPath("du"); err != nil {
		t.Skip("du not available")
	}

	_, err := (&DuSource{}).Measure(context.Background(), filepath.Join(t.TempDir(), "missing"), 1)

	var sourceErr *SourceError
	if !errors.As(err, &sourceErr) {
		t.Fatalf("Measure() error = %v, want SourceError", err)
	}

	if sourceErr.Stderr == "" {
		t.Error("SourceError carries no du diagnostics")
	}
}

func TestDuSourceMissingCommand(t *testing.T) {
	_, err := (&DuSource{Command: "du-does-not-exist"}).Measure(context.Background(), t.TempDir(), 1)

	var sourceErr *SourceError
	if !errors.As(err, &sourceErr) {
		t.Fatalf("Measure() error = %v, want SourceError", err)
	}

	if !errors.Is(err, exec.ErrNotFound) {
		t.Errorf("Measure() error = %v, want exec.ErrNotFound", err)
	}
}
