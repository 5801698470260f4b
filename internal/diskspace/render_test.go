package diskspace

import (
	"slices"
	"testing"
)

func renderAll(t *testing.T, measurements []Measurement, root string, cfg RenderConfig) []string {
	t.Helper()

	tree, err := Build(measurements, root)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	tree.Sort(Descending)
	cfg.Width = tree.Format()

	return slices.Collect(Lines(tree, cfg))
}

//nolint:gochecknoglobals // Test fixture
var evenSplit = []Measurement{
	{Blocks: 200, Path: "/r"},
	{Blocks: 100, Path: "/r/a"},
	{Blocks: 100, Path: "/r/b"},
}

func TestLinesFlat(t *testing.T) {
	got := renderAll(t, evenSplit, "/r", RenderConfig{})
	want := []string{
		"100.00Kb  100%  /r",
		" 50.00Kb   50%  /r/a",
		" 50.00Kb   50%  /r/b",
	}

	if !slices.Equal(got, want) {
		t.Errorf("Lines() =\n%q\nwant\n%q", got, want)
	}
}

func TestLinesTreeView(t *testing.T) {
	got := renderAll(t, []Measurement{
		{Blocks: 2, Path: "/r/a/x y"},
		{Blocks: 4, Path: "/r/a"},
		{Blocks: 4, Path: "/r"},
	}, "/r", RenderConfig{TreeView: true})
	want := []string{
		"2.00Kb  100%  r",
		"2.00Kb  100%     a",
		"1.00Kb   50%        x y",
	}

	if !slices.Equal(got, want) {
		t.Errorf("Lines() =\n%q\nwant\n%q", got, want)
	}
}

func TestLinesHidePrunesSubtree(t *testing.T) {
	if got := renderAll(t, evenSplit, "/r", RenderConfig{HideBelow: 51}); !slices.Equal(got, []string{"100.00Kb  100%  /r"}) {
		t.Errorf("hide 51: Lines() = %q, want only the root", got)
	}

	if got := renderAll(t, evenSplit, "/r", RenderConfig{HideBelow: 50}); len(got) != 3 {
		t.Errorf("hide 50: Lines() = %q, want nodes at the threshold shown", got)
	}

	// /r/small is 9% and hidden, so /r/small/big is hidden with it.
	measurements := []Measurement{
		{Blocks: 100, Path: "/r"},
		{Blocks: 9, Path: "/r/small"},
		{Blocks: 9, Path: "/r/small/big"},
		{Blocks: 91, Path: "/r/large"},
	}
	want := []string{
		"50.00Kb  100%  /r",
		"45.50Kb   91%  /r/large",
	}

	if got := renderAll(t, measurements, "/r", RenderConfig{HideBelow: 10}); !slices.Equal(got, want) {
		t.Errorf("Lines() =\n%q\nwant\n%q", got, want)
	}
}

func TestLinesStopEarly(t *testing.T) {
	tree, err := Build(evenSplit, "/r")
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	count := 0

	for range Lines(tree, RenderConfig{}) {
		count++

		if count == 2 {
			break
		}
	}

	if count != 2 {
		t.Errorf("iterated %d lines, want 2", count)
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		size, total int64
		want        int
	}{
		{200, 200, 100},
		{100, 200, 50},
		{29, 100, 29},
		{1, 3, 33},
		{2, 3, 66},
		{0, 0, 100},
	}

	for _, tt := range tests {
		if got := Percentage(tt.size, tt.total); got != tt.want {
			t.Errorf("Percentage(%d, %d) = %d, want %d", tt.size, tt.total, got, tt.want)
		}
	}
}

func TestHeader(t *testing.T) {
	if got, want := Header(8), "    Size   (%)  File"; got != want {
		t.Errorf("Header(8) = %q, want %q", got, want)
	}

	if got, want := Header(2), "Size   (%)  File"; got != want {
		t.Errorf("Header(2) = %q, want %q", got, want)
	}
}
