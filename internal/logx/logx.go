// Package logx is the small leveled writer-based logger used by the
// command-line driver for conditions the evaluator itself never reports —
// failure to open the user's source file and errors unwound out of the
// Machine — which the driver reports itself rather than through the
// Machine's own error stream.
package logx

import (
	"fmt"
	"io"
)

// Logger writes prefixed lines to an underlying stream.
type Logger struct {
	w     io.Writer
	debug bool
}

// New returns a Logger writing to w; debug gates Debugf output.
func New(w io.Writer, debug bool) *Logger {
	return &Logger{w: w, debug: debug}
}

// Errorf writes a fatal/error-level line.
func (l *Logger) Errorf(format string, args ...interface{}) {
	fmt.Fprintf(l.w, "error: "+format+"\n", args...)
}

// Debugf writes a debug-level line only when the logger was constructed
// with debug enabled.
func (l *Logger) Debugf(format string, args ...interface{}) {
	if !l.debug {
		return
	}
	fmt.Fprintf(l.w, "debug: "+format+"\n", args...)
}
