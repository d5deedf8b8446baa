// Package logging provides the CLI's console logger: plain status output on
// stderr with styled level markers, and debug output gated behind a flag.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	debugStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	warnStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

// ConsoleLogger writes status lines to stderr. Descriptor output itself
// goes to stdout unstyled, so renders stay pipeable.
type ConsoleLogger struct {
	out   io.Writer
	debug bool
}

// NewConsoleLogger creates a console logger. Debug messages are dropped
// unless debug is set.
func NewConsoleLogger(debug bool) *ConsoleLogger {
	return &ConsoleLogger{out: os.Stderr, debug: debug}
}

// NewConsoleLoggerWithWriter creates a console logger writing to w.
func NewConsoleLoggerWithWriter(w io.Writer, debug bool) *ConsoleLogger {
	return &ConsoleLogger{out: w, debug: debug}
}

// Debugf logs a debug message when debug mode is enabled.
func (l *ConsoleLogger) Debugf(format string, args ...any) {
	if !l.debug {
		return
	}
	fmt.Fprintln(l.out, debugStyle.Render("debug: "+fmt.Sprintf(format, args...)))
}

// Infof logs an informational message.
func (l *ConsoleLogger) Infof(format string, args ...any) {
	fmt.Fprintf(l.out, format+"\n", args...)
}

// Warnf logs a warning.
func (l *ConsoleLogger) Warnf(format string, args ...any) {
	fmt.Fprintln(l.out, warnStyle.Render("warning: ")+fmt.Sprintf(format, args...))
}

// Errorf logs an error.
func (l *ConsoleLogger) Errorf(format string, args ...any) {
	fmt.Fprintln(l.out, errorStyle.Render("error: ")+fmt.Sprintf(format, args...))
}
