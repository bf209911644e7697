// Package logger provides the diagnostics logger for lsv.
//
// Diagnostics (unreadable directories, entries whose metadata vanished,
// unresolvable owners) go to a writer separate from the listing, normally
// os.Stderr, so listing output stays clean when piped. Lines below the
// configured level are dropped. The level tag is colored only when the
// diagnostics writer itself is a terminal and NO_COLOR is unset.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Prefix starts every diagnostic line.
const Prefix = "lsv"

// Level is the severity of a diagnostic.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[Level]string{
	LevelTrace: "TRACE",
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

var levelColors = map[Level]color.Attribute{
	LevelTrace: color.FgHiBlack,
	LevelDebug: color.FgCyan,
	LevelInfo:  color.FgBlue,
	LevelWarn:  color.FgYellow,
	LevelError: color.FgRed,
}

// String returns the upper-case tag printed for l.
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLevel maps a level name (case-insensitive, surrounding space ignored)
// to a Level.
func ParseLevel(name string) (Level, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for l, n := range levelNames {
		if n == name {
			return l, true
		}
	}
	return LevelInfo, false
}

// ConsoleLogger writes "lsv: [LEVEL] message" lines. It is safe for
// concurrent use.
type ConsoleLogger struct {
	mu   sync.Mutex
	w    io.Writer
	min  Level
	tags map[Level]string
}

// NewConsoleLogger creates a logger writing to w at the named level. An empty
// or unknown level means info. A nil w discards everything.
func NewConsoleLogger(w io.Writer, level string) *ConsoleLogger {
	threshold, _ := ParseLevel(level)
	return newConsoleLogger(w, threshold, colorEnabledFor(w))
}

func newConsoleLogger(w io.Writer, threshold Level, colored bool) *ConsoleLogger {
	tags := make(map[Level]string, len(levelNames))
	for l, name := range levelNames {
		tags[l] = name
		if colored {
			c := color.New(levelColors[l])
			// color.NoColor tracks stdout; the decision here is about w.
			c.EnableColor()
			tags[l] = c.Sprint(name)
		}
	}
	return &ConsoleLogger{w: w, min: threshold, tags: tags}
}

// colorEnabledFor reports whether w is a terminal that should get colored tags.
func colorEnabledFor(w io.Writer) bool {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Level returns the minimum level that is written.
func (cl *ConsoleLogger) Level() Level {
	return cl.min
}

// Enabled reports whether a message at l would be written.
func (cl *ConsoleLogger) Enabled(l Level) bool {
	return cl.w != nil && l >= cl.min
}

// LogTrace logs identity lookups and other per-entry detail.
func (cl *ConsoleLogger) LogTrace(message string) {
	cl.log(LevelTrace, message)
}

// LogDebug logs run summaries and resolved settings.
func (cl *ConsoleLogger) LogDebug(message string) {
	cl.log(LevelDebug, message)
}

// LogWarn logs skipped directories and entries.
func (cl *ConsoleLogger) LogWarn(message string) {
	cl.log(LevelWarn, message)
}

// LogError logs directory visits that failed part way.
func (cl *ConsoleLogger) LogError(message string) {
	cl.log(LevelError, message)
}

func (cl *ConsoleLogger) log(l Level, message string) {
	if !cl.Enabled(l) {
		return
	}

	cl.mu.Lock()
	defer cl.mu.Unlock()
	// A failed diagnostic write must not interrupt the listing.
	_, _ = fmt.Fprintf(cl.w, "%s: [%s] %s\n", Prefix, cl.tags[l], message)
}
