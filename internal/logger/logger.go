// Package logger provides verbose logging for netdays.
// Debug, info and warning lines are printed to stderr only when verbose
// mode is enabled via the --verbose flag. Errors are always printed.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	now               = time.Now
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func write(force bool, level, component, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose && !force {
		return
	}
	prefix := "[" + level + "] "
	if component != "" {
		prefix += component + ": "
	}
	fmt.Fprintf(output, prefix+format+"\n", args...)
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	write(false, "DEBUG", "", format, args...)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	write(false, "INFO", "", format, args...)
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	write(false, "WARN", "", format, args...)
}

// Error prints an error message regardless of verbose mode.
func Error(format string, args ...any) {
	write(true, "ERROR", "", format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Timer logs how long an operation took when the returned func is called.
//
//	defer logger.Timer("import calendar")()
func Timer(operation string) func() {
	start := now()
	return func() {
		Debug("%s took %s", operation, now().Sub(start).Round(time.Millisecond))
	}
}

// Component tags every line with the name of the adapter that wrote it.
type Component string

// Debug prints a tagged message if verbose mode is enabled.
func (c Component) Debug(format string, args ...any) {
	write(false, "DEBUG", string(c), format, args...)
}

// Info prints a tagged informational message if verbose mode is enabled.
func (c Component) Info(format string, args ...any) {
	write(false, "INFO", string(c), format, args...)
}

// Warn prints a tagged warning if verbose mode is enabled.
func (c Component) Warn(format string, args ...any) {
	write(false, "WARN", string(c), format, args...)
}

// Error prints a tagged error regardless of verbose mode.
func (c Component) Error(format string, args ...any) {
	write(true, "ERROR", string(c), format, args...)
}
