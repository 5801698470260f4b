package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/dustin/go-humanize"
)

// statusLine renders an in-place progress message on a terminal.
type statusLine struct {
	mu      sync.Mutex
	w       io.Writer
	visible bool
}

// newStatusLine hides the cursor on w; close restores it.
func newStatusLine(w io.Writer) *statusLine {
	fmt.Fprint(w, "\033[?25l")

	return &statusLine{w: w}
}

// update replaces the status line with the current scan counters.
func (s *statusLine) update(entries, bytes int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := fmt.Sprintf("Scanning… %s entries, %s",
		humanize.Comma(entries), humanize.IBytes(uint64(bytes))) //nolint:gosec // Bytes is always positive
	fmt.Fprintf(s.w, "\r\033[2K%s\r", msg)

	s.visible = true
}

// clear removes the status line if it is shown.
func (s *statusLine) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.visible {
		fmt.Fprint(s.w, "\r\033[2K\r")

		s.visible = false
	}
}

// close clears the status line and restores the cursor.
func (s *statusLine) close() {
	s.clear()
	fmt.Fprint(s.w, "\033[?25h")
}

// clearingWriter clears the status line before the report is written.
type clearingWriter struct {
	w      io.Writer
	status *statusLine
	once   sync.Once
}

func (c *clearingWriter) Write(p []byte) (int, error) {
	c.once.Do(c.status.clear)

	return c.w.Write(p)
}
