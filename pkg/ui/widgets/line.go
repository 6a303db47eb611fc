package widgets

import (
	"github.com/odvcencio/filepane/pkg/ui/backend"
	"github.com/odvcencio/filepane/pkg/ui/runtime"
)

// Orientation selects the axis a line runs along.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Line glyphs.
const (
	SingleHorizontal = '─'
	SingleVertical   = '│'
	DoubleHorizontal = '═'
	DoubleVertical   = '║'
)

// Line is a separator one cell thick that takes all the length it is
// offered along its axis.
type Line struct {
	runtime.Base
	orientation Orientation
	glyph       rune
	style       backend.Style
}

// NewHLine creates a single horizontal line.
func NewHLine() *Line {
	return NewLine(Horizontal, SingleHorizontal)
}

// NewVLine creates a single vertical line.
func NewVLine() *Line {
	return NewLine(Vertical, SingleVertical)
}

// NewDoubleHLine creates a double horizontal line.
func NewDoubleHLine() *Line {
	return NewLine(Horizontal, DoubleHorizontal)
}

// NewDoubleVLine creates a double vertical line.
func NewDoubleVLine() *Line {
	return NewLine(Vertical, DoubleVertical)
}

// NewLine creates a line drawn with glyph.
func NewLine(o Orientation, glyph rune) *Line {
	return &Line{orientation: o, glyph: glyph, style: backend.DefaultStyle()}
}

// WithStyle sets the line colors.
func (l *Line) WithStyle(style backend.Style) *Line {
	l.style = style
	return l
}

// Glyph returns the character the line is drawn with.
func (l *Line) Glyph() rune {
	return l.glyph
}

// Negotiate takes the full max length, or min when max is unbounded,
// and one cell of thickness.
func (l *Line) Negotiate(min, max runtime.Size) runtime.Size {
	l.Track(min, max)

	length := func(lo, hi int) int {
		if hi == runtime.Unbounded {
			return lo
		}
		return hi
	}
	var s runtime.Size
	if l.orientation == Horizontal {
		s = runtime.Size{Width: length(min.Width, max.Width), Height: 1}
	} else {
		s = runtime.Size{Width: 1, Height: length(min.Height, max.Height)}
	}
	return l.SetSize(s.Clamp(min, max))
}

// Paint draws the glyph over the whole rect.
func (l *Line) Paint(c *runtime.Canvas) {
	c.Fill(l.Rect(), l.glyph, l.style)
}

var _ runtime.Widget = (*Line)(nil)
