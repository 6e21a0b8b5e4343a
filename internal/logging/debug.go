package logging

import (
	"fmt"
	"io"
	"os"
)

// DebugEnv is the environment variable that switches debug output on.
const DebugEnv = "TEAM_DEBUG"

// output receives debug lines; tests swap it out.
var output io.Writer = os.Stderr

// forced turns debug output on regardless of TEAM_DEBUG (--verbose).
var forced bool

// DebugEnabled returns true if debug mode is enabled via TEAM_DEBUG or SetEnabled
func DebugEnabled() bool {
	return forced || os.Getenv(DebugEnv) != ""
}

// SetEnabled forces debug output on or back to following TEAM_DEBUG.
func SetEnabled(enabled bool) {
	forced = enabled
}

// SetOutput redirects debug output and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	prev := output
	output = w
	return prev
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		fmt.Fprintf(output, "[debug] "+format, args...)
	}
}

// Debugln prints a debug message followed by a newline only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		fmt.Fprintln(output, append([]interface{}{"[debug]"}, args...)...)
	}
}
