package layout

import (
	"github.com/odvcencio/filepane/pkg/ui/backend"
	"github.com/odvcencio/filepane/pkg/ui/runtime"
)

// block asks for a preferred size and fills its rect with a glyph.
type block struct {
	runtime.Base
	want  runtime.Size
	glyph rune
	calls int
}

func newBlock(w, h int, glyph rune) *block {
	return &block{want: runtime.Sz(w, h), glyph: glyph}
}

func (b *block) Negotiate(lo, hi runtime.Size) runtime.Size {
	b.Track(lo, hi)
	b.calls++
	return b.SetSize(b.want.Clamp(lo, hi))
}

func (b *block) Paint(c *runtime.Canvas) {
	c.Fill(b.Rect(), b.glyph, backend.DefaultStyle())
}

func render(w runtime.Widget, width, height int) *runtime.Canvas {
	c := runtime.NewCanvas(width, height, backend.DefaultStyle())
	runtime.Layout(w, runtime.Size{}, runtime.Sz(width, height), runtime.Pt(0, 0))
	w.Paint(c)
	return c
}
