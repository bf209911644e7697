package colorclass

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harrison/lsv/internal/models"
)

// Reset is the fixed SGR sequence written after every colored name.
var Reset = fmt.Sprintf("\x1b[%dm", color.Reset)

// attributes is the class to SGR mapping. ColorDefault has no entry and is
// printed unwrapped.
var attributes = map[models.ColorClass][]color.Attribute{
	models.ColorDirectory:  {color.Bold, color.FgBlue},
	models.ColorSymlink:    {color.Bold, color.FgMagenta},
	models.ColorSpecial:    {color.ReverseVideo},
	models.ColorExecutable: {color.Bold, color.FgGreen},
	models.ColorArchive:    {color.Bold, color.FgRed},
	models.ColorSourceCode: {color.Bold, color.FgCyan},
}

// Palette holds the precomputed start sequences for each color class.
// A disabled palette wraps nothing.
type Palette struct {
	enabled bool
	starts  map[models.ColorClass]string
}

// NewPalette builds a palette. When enabled is false every lookup yields the
// empty string, regardless of the terminal or NO_COLOR.
func NewPalette(enabled bool) *Palette {
	p := &Palette{
		enabled: enabled,
		starts:  make(map[models.ColorClass]string, len(attributes)),
	}
	if !enabled {
		return p
	}

	for class, attrs := range attributes {
		c := color.New(attrs...)
		// Force escapes even when stdout is not a terminal; the caller decided.
		c.EnableColor()

		var sb strings.Builder
		c.SetWriter(&sb)
		p.starts[class] = sb.String()
	}
	return p
}

// Enabled reports whether the palette emits escape sequences.
func (p *Palette) Enabled() bool {
	return p != nil && p.enabled
}

// Start returns the SGR sequence that opens class, or "" for ColorDefault.
func (p *Palette) Start(class models.ColorClass) string {
	if !p.Enabled() {
		return ""
	}
	return p.starts[class]
}

// Wrap returns name surrounded by the start and reset sequences of class.
func (p *Palette) Wrap(class models.ColorClass, name string) string {
	start := p.Start(class)
	if start == "" {
		return name
	}
	return start + name + Reset
}
