package display

import (
	"bufio"
	"io"
	"strings"

	"github.com/harrison/lsv/internal/colorclass"
	"github.com/harrison/lsv/internal/models"
)

// cellGap is the spacing added to the longest name to get a column width.
const cellGap = 2

// Renderer writes one snapshot to w.
type Renderer interface {
	Render(w io.Writer, snap models.Snapshot) error
}

// Select returns the renderer for opts. Long format takes precedence; otherwise
// horizontal wrap is used only when requested and columns are the default.
func Select(opts models.Options, palette *colorclass.Palette) Renderer {
	switch {
	case opts.LongFormat:
		return &LongRenderer{Palette: palette, HumanSizes: opts.HumanSizes}
	case opts.HorizontalLayout:
		return &HorizontalRenderer{Width: opts.Width(), Palette: palette}
	default:
		return &ColumnRenderer{Width: opts.Width(), Palette: palette}
	}
}

// ColumnWidth returns the padded cell width for a snapshot.
func ColumnWidth(snap models.Snapshot) int {
	return snap.MaxNameLen() + cellGap
}

// effectiveWidth maps a non-positive width to models.DefaultWidth.
func effectiveWidth(width int) int {
	if width <= 0 {
		return models.DefaultWidth
	}
	return width
}

// writeCell appends a colorized name padded with spaces to cellWidth bytes.
func writeCell(b *strings.Builder, palette *colorclass.Palette, e models.Entry, cellWidth int) {
	b.WriteString(palette.Wrap(e.Color, e.Name))
	if pad := cellWidth - len(e.Name); pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
}

// flushLines writes the built text through a buffered writer.
func flushLines(w io.Writer, text string) error {
	if text == "" {
		return nil
	}
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(text); err != nil {
		return err
	}
	return bw.Flush()
}
