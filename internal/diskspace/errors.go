package diskspace

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingRootMeasurement is returned when the measurements never include the root path,
// leaving the total size used for percentages undefined.
var ErrMissingRootMeasurement = errors.New("root path missing from measurements")

// SourceError reports a failure of the measurement source itself.
type SourceError struct {
	// Source names the source, e.g. "du" or "walk".
	Source string
	// Root is the directory that was being measured.
	Root string
	// Stderr holds diagnostic output of an external process, if any.
	Stderr string
	// Err is the underlying failure.
	Err error
}

func (e *SourceError) Error() string {
	msg := fmt.Sprintf("%s: measuring %q: %v", e.Source, e.Root, e.Err)

	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}

	return msg
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// ParseError describes a measurement line that could not be parsed.
type ParseError struct {
	// Line is the 1-based line number.
	Line int
	// Text is the offending line.
	Text string
	// Reason explains what was wrong.
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}
