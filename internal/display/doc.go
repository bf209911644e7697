// Package display lays out a models.Snapshot as text.
//
// Three renderers share the same colorized, ordered snapshot and a width
// budget:
//
//   - LongRenderer prints one detailed line per entry.
//   - ColumnRenderer fills columns top to bottom, then left to right.
//   - HorizontalRenderer fills lines left to right and wraps at the width.
//
// Select picks the renderer for a set of models.Options:
//
//	r := display.Select(opts, colorclass.NewPalette(opts.Color))
//	if err := r.Render(os.Stdout, snapshot); err != nil {
//	    return err
//	}
//
// # Colors
//
// The color of an entry is read from Entry.Color, which the collector set.
// Renderers never re-derive a class from the name. Only the name is wrapped
// in the SGR start and reset sequences; padding is written after the reset.
//
// # Widths
//
// Name widths are byte lengths. A width budget of zero or less falls back to
// models.DefaultWidth. An empty snapshot produces no output at all.
package display
