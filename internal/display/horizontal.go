package display

import (
	"io"
	"strings"

	"github.com/harrison/lsv/internal/colorclass"
	"github.com/harrison/lsv/internal/models"
)

// HorizontalRenderer prints entries left to right, wrapping at Width.
type HorizontalRenderer struct {
	Width   int
	Palette *colorclass.Palette
}

// Render places cells on the current line until the next one would exceed
// the width. A cell wider than the width on its own is put on a line by
// itself and never split.
func (r *HorizontalRenderer) Render(w io.Writer, snap models.Snapshot) error {
	if snap.Len() == 0 {
		return nil
	}

	width := effectiveWidth(r.Width)
	cell := ColumnWidth(snap)

	var b strings.Builder
	lineWidth := 0
	for _, e := range snap.Entries {
		if lineWidth > 0 && lineWidth+cell > width {
			b.WriteByte('\n')
			lineWidth = 0
		}
		writeCell(&b, r.Palette, e, cell)
		lineWidth += cell
	}
	b.WriteByte('\n')

	return flushLines(w, b.String())
}
