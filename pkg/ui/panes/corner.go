package panes

import (
	"github.com/odvcencio/filepane/pkg/ui/backend"
	"github.com/odvcencio/filepane/pkg/ui/runtime"
	"github.com/odvcencio/filepane/pkg/ui/widgets"
)

// CornerLine is a vertical separator that also draws a junction glyph
// one row above its top, joining the horizontal rule it hangs from.
// The corner cell is outside Rect.
type CornerLine struct {
	runtime.Base
	line   *widgets.Line
	corner rune
	clear  rune
	style  backend.Style
}

// NewCornerLine draws the body with glyph and the junction with
// corner. Erase puts clear back in the junction cell.
func NewCornerLine(glyph, corner, clear rune, style backend.Style) *CornerLine {
	return &CornerLine{
		line:   widgets.NewLine(widgets.Vertical, glyph).WithStyle(style),
		corner: corner,
		clear:  clear,
		style:  style,
	}
}

func (l *CornerLine) Negotiate(lo, hi runtime.Size) runtime.Size {
	l.Track(lo, hi)
	return l.SetSize(l.line.Negotiate(lo, hi))
}

func (l *CornerLine) Place(origin runtime.Point) {
	l.Base.Place(origin)
	l.line.Place(origin)
}

func (l *CornerLine) junction() runtime.Point {
	return l.Rect().Origin().Add(runtime.Point{Y: -1})
}

func (l *CornerLine) Paint(c *runtime.Canvas) {
	if l.Rect().Empty() {
		return
	}
	l.line.Paint(c)
	p := l.junction()
	c.Set(p.X, p.Y, l.corner, l.style)
}

// Erase blanks the line and restores the rule under the junction.
func (l *CornerLine) Erase(c *runtime.Canvas) {
	l.Base.Erase(c)
	if l.Rect().Empty() {
		return
	}
	p := l.junction()
	c.Set(p.X, p.Y, l.clear, l.style)
}

var _ runtime.Widget = (*CornerLine)(nil)
