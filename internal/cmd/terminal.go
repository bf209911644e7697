package cmd

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// isTerminal reports whether w is a terminal (including Cygwin/MSYS ptys).
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// resolveWidth picks the display width: an explicit value wins, then the
// terminal size of w, then $COLUMNS. Zero lets the layout fall back to 80.
func resolveWidth(configured int, w io.Writer) int {
	if configured > 0 {
		return configured
	}

	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			return cols
		}
	}

	return columnsFromEnv()
}

func columnsFromEnv() int {
	cols, err := strconv.Atoi(strings.TrimSpace(os.Getenv("COLUMNS")))
	if err != nil || cols <= 0 {
		return 0
	}
	return cols
}
