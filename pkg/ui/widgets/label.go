// Package widgets provides the leaf widgets of the screen: text labels,
// line separators and blank space.
package widgets

import (
	"github.com/odvcencio/filepane/pkg/ui/backend"
	"github.com/odvcencio/filepane/pkg/ui/runtime"
)

// Label is a single row of text. When it is given less width than its
// text needs it shows the widest prefix that fits, never half of a
// wide glyph.
type Label struct {
	runtime.Base
	text  string
	width int
	style backend.Style
	base  backend.Style
	fill  bool
}

// NewLabel creates a label in the default style.
func NewLabel(text string) *Label {
	return &Label{
		text:  text,
		width: runtime.StringWidth(text),
		style: backend.DefaultStyle(),
		base:  backend.DefaultStyle(),
	}
}

// WithStyle sets both the current and the reset style.
func (l *Label) WithStyle(style backend.Style) *Label {
	l.style = style
	l.base = style
	return l
}

// WithFill makes the label paint its whole rect, not just the text.
func (l *Label) WithFill() *Label {
	l.fill = true
	return l
}

// SetText updates the displayed text.
func (l *Label) SetText(text string) {
	l.text = text
	l.width = runtime.StringWidth(text)
}

// Text returns the current text.
func (l *Label) Text() string {
	return l.text
}

// TextWidth returns the display width of the full text.
func (l *Label) TextWidth() int {
	return l.width
}

// SetStyle changes the colors until ResetStyle.
func (l *Label) SetStyle(style backend.Style) {
	l.style = style
}

// ResetStyle restores the style given to WithStyle.
func (l *Label) ResetStyle() {
	l.style = l.base
}

// Style returns the current style.
func (l *Label) Style() backend.Style {
	return l.style
}

// Negotiate reports the text width, or the truncated width when the
// text does not fit in max.
func (l *Label) Negotiate(lo, hi runtime.Size) runtime.Size {
	l.Track(lo, hi)

	w := l.width
	if w > hi.Width {
		w = runtime.FitWidth(l.text, hi.Width)
	}
	w = max(w, lo.Width)
	h := clamp(1, lo.Height, hi.Height)

	return l.SetSize(runtime.Size{Width: w, Height: h})
}

// Paint writes the text at the placed origin.
func (l *Label) Paint(c *runtime.Canvas) {
	r := l.Rect()
	if r.Empty() {
		return
	}
	if l.fill {
		r.Fill(c, l.style)
	}
	c.DrawText(r.X, r.Y, l.text, r.Width, l.style)
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

var _ runtime.Widget = (*Label)(nil)
