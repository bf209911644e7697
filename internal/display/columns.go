package display

import (
	"io"
	"strings"

	"github.com/harrison/lsv/internal/colorclass"
	"github.com/harrison/lsv/internal/models"
)

// Grid is the down-then-across arrangement of count cells.
type Grid struct {
	Count    int // Number of entries
	Cols     int // Number of columns, at least 1
	Rows     int // ceil(Count / Cols)
	CellSize int // Padded width of every cell
}

// NewGrid computes the grid for count names whose longest name is maxNameLen
// bytes, within width. Columns never drop below one, even for a name wider
// than width.
func NewGrid(count, maxNameLen, width int) Grid {
	cell := maxNameLen + cellGap
	cols := effectiveWidth(width) / cell
	if cols < 1 {
		cols = 1
	}

	rows := 0
	if count > 0 {
		rows = (count + cols - 1) / cols
	}

	return Grid{Count: count, Cols: cols, Rows: rows, CellSize: cell}
}

// Index returns the snapshot index shown at (row, col), and false for cells
// past the end of the snapshot.
func (g Grid) Index(row, col int) (int, bool) {
	idx := row + col*g.Rows
	if row < 0 || col < 0 || row >= g.Rows || col >= g.Cols || idx >= g.Count {
		return 0, false
	}
	return idx, true
}

// ColumnRenderer prints entries down then across.
type ColumnRenderer struct {
	Width   int
	Palette *colorclass.Palette
}

// Render writes Rows lines, each ending in a newline. Every cell, including
// the last one of a row, is padded to the cell width.
func (r *ColumnRenderer) Render(w io.Writer, snap models.Snapshot) error {
	if snap.Len() == 0 {
		return nil
	}

	grid := NewGrid(snap.Len(), snap.MaxNameLen(), r.Width)

	var b strings.Builder
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			idx, ok := grid.Index(row, col)
			if !ok {
				continue
			}
			writeCell(&b, r.Palette, snap.Entries[idx], grid.CellSize)
		}
		b.WriteByte('\n')
	}

	return flushLines(w, b.String())
}
