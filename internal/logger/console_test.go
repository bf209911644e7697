package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func logAt(l *ConsoleLogger, level Level, message string) {
	switch level {
	case LevelTrace:
		l.LogTrace(message)
	case LevelDebug:
		l.LogDebug(message)
	case LevelWarn:
		l.LogWarn(message)
	case LevelError:
		l.LogError(message)
	}
}

// TestLogLevelFiltering verifies that messages are filtered based on log level
func TestLogLevelFiltering(t *testing.T) {
	tests := []struct {
		name         string
		logLevel     string
		messageLevel Level
		shouldAppear bool
	}{
		{name: "trace sees trace", logLevel: "trace", messageLevel: LevelTrace, shouldAppear: true},
		{name: "trace sees error", logLevel: "trace", messageLevel: LevelError, shouldAppear: true},
		{name: "debug blocks trace", logLevel: "debug", messageLevel: LevelTrace, shouldAppear: false},
		{name: "debug sees debug", logLevel: "debug", messageLevel: LevelDebug, shouldAppear: true},
		{name: "info blocks debug", logLevel: "info", messageLevel: LevelDebug, shouldAppear: false},
		{name: "info sees warn", logLevel: "info", messageLevel: LevelWarn, shouldAppear: true},
		{name: "warn sees warn", logLevel: "warn", messageLevel: LevelWarn, shouldAppear: true},
		{name: "error blocks warn", logLevel: "error", messageLevel: LevelWarn, shouldAppear: false},
		{name: "error sees error", logLevel: "error", messageLevel: LevelError, shouldAppear: true},
		{name: "unknown level means info", logLevel: "chatty", messageLevel: LevelDebug, shouldAppear: false},
		{name: "level is case insensitive", logLevel: "  WARN ", messageLevel: LevelDebug, shouldAppear: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := NewConsoleLogger(buf, tt.logLevel)
			message := tt.messageLevel.String() + " msg"
			logAt(logger, tt.messageLevel, message)

			contains := strings.Contains(buf.String(), message)
			if tt.shouldAppear && !contains {
				t.Errorf("expected %q in output, got %q", message, buf.String())
			}
			if !tt.shouldAppear && contains {
				t.Errorf("expected %q to be filtered, got %q", message, buf.String())
			}
		})
	}
}

func TestConsoleLoggerFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "info")

	logger.LogWarn("cannot open directory /root: permission denied")

	want := "lsv: [WARN] cannot open directory /root: permission denied\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestConsoleLoggerColoredTag(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := newConsoleLogger(buf, LevelTrace, true)

	logger.LogWarn("skipped")

	out := buf.String()
	if !strings.HasPrefix(out, "lsv: [\x1b[33mWARN") {
		t.Errorf("expected yellow WARN tag, got %q", out)
	}
	if !strings.HasSuffix(out, "] skipped\n") {
		t.Errorf("message must stay uncolored, got %q", out)
	}
}

func TestConsoleLoggerPlainInRegularFile(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	os.Unsetenv("NO_COLOR")

	path := filepath.Join(t.TempDir(), "diag.txt")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}

	logger := NewConsoleLogger(f, "warn")
	logger.LogError("listing aborted")
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), "lsv: [ERROR] listing aborted\n"; got != want {
		t.Errorf("file contents = %q, want %q", got, want)
	}
}

func TestColorEnabledFor(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	os.Unsetenv("NO_COLOR")

	if colorEnabledFor(&bytes.Buffer{}) {
		t.Error("buffers are never terminals")
	}

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if colorEnabledFor(f) {
		t.Error("regular files are never terminals")
	}

	var nilFile *os.File
	if colorEnabledFor(nilFile) {
		t.Error("nil file is not a terminal")
	}

	t.Setenv("NO_COLOR", "1")
	if colorEnabledFor(os.Stderr) {
		t.Error("NO_COLOR must disable color")
	}
}

func TestConsoleLoggerNilWriter(t *testing.T) {
	logger := NewConsoleLogger(nil, "trace")
	if logger.Enabled(LevelError) {
		t.Error("nil writer should disable every level")
	}
	// Must not panic.
	logger.LogError("dropped")
	logger.LogTrace("dropped")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in     string
		want   Level
		wantOK bool
	}{
		{"trace", LevelTrace, true},
		{"DEBUG", LevelDebug, true},
		{" info ", LevelInfo, true},
		{"Warn", LevelWarn, true},
		{"error", LevelError, true},
		{"", LevelInfo, false},
		{"fatal", LevelInfo, false},
	}
	for _, tt := range tests {
		got, ok := ParseLevel(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}

	if got := NewConsoleLogger(nil, "bogus").Level(); got != LevelInfo {
		t.Errorf("default level = %v, want %v", got, LevelInfo)
	}
}

func TestConsoleLoggerConcurrentWrites(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "warn")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.LogWarn("entry vanished")
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 20 {
		t.Fatalf("got %d lines, want 20", len(lines))
	}
	for _, line := range lines {
		if line != "lsv: [WARN] entry vanished" {
			t.Errorf("interleaved line %q", line)
		}
	}
}
