package models

// DefaultWidth is the layout width used when no width hint is supplied.
const DefaultWidth = 80

// Options is the immutable per-invocation configuration of the listing engine.
// It is passed by value and never mutated after construction.
type Options struct {
	LongFormat       bool // One detailed line per entry
	HorizontalLayout bool // Left-to-right wrap instead of down-then-across columns
	Recursive        bool // Descend into directory entries
	WidthHint        int  // Target display width; <= 0 means DefaultWidth
	HumanSizes       bool // Long format shows sizes as 1.5kB instead of bytes
	Color            bool // Wrap names in ANSI SGR sequences
	Headers          bool // Print a header line before each directory listing
}

// Width returns the effective layout width.
func (o Options) Width() int {
	if o.WidthHint <= 0 {
		return DefaultWidth
	}
	return o.WidthHint
}

// ShowHeaders reports whether each directory visit is preceded by a header.
// Recursive listings always print headers so output can be attributed.
func (o Options) ShowHeaders() bool {
	return o.Headers || o.Recursive
}
