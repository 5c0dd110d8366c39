// Package log provides the runtime's diagnostic logging: leveled lines
// written with fmt, colorized when writing to a terminal and
// plain otherwise. Grounded on the teacher's own use of stdlib "log"
// throughout cmd/sentra/main.go, extended with TTY-aware formatting
// per SPEC_FULL.md's ambient-stack section.
package log

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Level classifies a log line by severity.
type Level int

const (
	Info Level = iota
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	default:
		return "INFO"
	}
}

// ansiColor returns the ANSI color code for a level, or "" if none.
func (l Level) ansiColor() string {
	switch l {
	case Warn:
		return "\x1b[33m"
	case Error:
		return "\x1b[31m"
	default:
		return "\x1b[36m"
	}
}

const ansiReset = "\x1b[0m"

// Logger writes leveled diagnostic lines, stamping each with an
// InstanceID so multiple embedded runtime.Context instances in one
// process stay distinguishable (SPEC_FULL.md §9).
type Logger struct {
	out        io.Writer
	color      bool
	instanceID string
}

// New returns a Logger writing to out. Color is enabled automatically
// when out is a terminal (via go-isatty), matching the original's
// conditional colorized terminal output.
func New(out io.Writer, instanceID string) *Logger {
	color := false
	if f, ok := out.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Logger{out: out, color: color, instanceID: instanceID}
}

// Default returns a Logger writing to os.Stderr.
func Default(instanceID string) *Logger {
	return New(os.Stderr, instanceID)
}

func (l *Logger) log(level Level, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if l.color {
		fmt.Fprintf(l.out, "%s[%s]%s %s %s\n", level.ansiColor(), level, ansiReset, l.instanceID, msg)
		return
	}
	fmt.Fprintf(l.out, "[%s] %s %s\n", level, l.instanceID, msg)
}

// Infof logs an informational line.
func (l *Logger) Infof(format string, args ...interface{}) { l.log(Info, format, args...) }

// Warnf logs a warning line. (The RNG's OS-entropy fallback notice does
// not go through this logger; package random prints it to os.Stderr.)
func (l *Logger) Warnf(format string, args ...interface{}) { l.log(Warn, format, args...) }

// Errorf logs an error line, e.g. a class registration failure
// (spec.md §7 item 2).
func (l *Logger) Errorf(format string, args ...interface{}) { l.log(Error, format, args...) }
