// Package console provides leveled, colored status output for the CLI.
// Messages go to stderr so that formatted alert output on stdout stays
// machine-parsable.
package console

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
)

var (
	mu      sync.Mutex
	out     io.Writer = os.Stderr
	verbose bool
	boring  bool
)

// Configure sets the verbosity and color toggles for the process.
func Configure(verboseOutput, noColor bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = verboseOutput
	boring = noColor
}

// SetOutput redirects console output, used by tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

// Debug prints a message only when verbose output is enabled.
func Debug(format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if !verbose {
		return
	}
	fmt.Fprintf(out, "%s %s\n", label("[DEBUG]", color.FgCyan), fmt.Sprintf(format, args...))
}

// Info prints a status message.
func Info(format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "%s %s\n", label("[INFO]", color.FgGreen), fmt.Sprintf(format, args...))
}

// Warn prints a warning message.
func Warn(format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "%s %s\n", label("[WARN]", color.FgYellow), fmt.Sprintf(format, args...))
}

// Error prints an error message.
func Error(format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "%s %s\n", label("[ERROR]", color.FgRed), fmt.Sprintf(format, args...))
}

func label(text string, attr color.Attribute) string {
	if boring {
		return text
	}
	return color.New(attr).Sprint(text)
}
