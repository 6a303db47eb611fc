package layout

import (
	"github.com/odvcencio/filepane/pkg/ui/backend"
	"github.com/odvcencio/filepane/pkg/ui/runtime"
)

// Background fills its rect with a color before painting its child.
// Negotiation passes straight through.
type Background struct {
	runtime.Base
	child runtime.Widget
	style backend.Style
}

// NewBackground paints child over a solid background color.
func NewBackground(child runtime.Widget, color backend.Color) *Background {
	return &Background{child: child, style: backend.DefaultStyle().Background(color)}
}

// SetColor changes the fill color.
func (b *Background) SetColor(color backend.Color) {
	b.style = b.style.Background(color)
}

// Color returns the fill color.
func (b *Background) Color() backend.Color {
	return b.style.BG()
}

// SetChild replaces the child.
func (b *Background) SetChild(child runtime.Widget) {
	b.child = child
}

func (b *Background) Negotiate(lo, hi runtime.Size) runtime.Size {
	b.Track(lo, hi)
	return b.SetSize(b.child.Negotiate(lo, hi))
}

func (b *Background) Place(origin runtime.Point) {
	b.Base.Place(origin)
	b.child.Place(origin)
}

func (b *Background) Paint(c *runtime.Canvas) {
	b.Rect().Fill(c, b.style)
	b.child.Paint(c)
}

var _ runtime.Widget = (*Background)(nil)
