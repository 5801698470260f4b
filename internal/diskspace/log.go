package diskspace

import (
	"fmt"
	"io"
)

// logger provides conditional debug output and unconditional warnings.
type logger struct {
	w       io.Writer
	enabled bool
}

// debugf prints debug output if logging is enabled.
func (l logger) debugf(format string, args ...any) {
	if l.enabled && l.w != nil {
		fmt.Fprintf(l.w, "[debug]: "+format, args...)
	}
}

// warnf prints a warning.
func (l logger) warnf(format string, args ...any) {
	if l.w != nil {
		fmt.Fprintf(l.w, "[warn]: "+format, args...)
	}
}
