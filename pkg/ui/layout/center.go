package layout

import "github.com/odvcencio/filepane/pkg/ui/runtime"

// Center places its child in the middle of whatever room its minimum
// gives it. Odd leftovers favor the top-left.
type Center struct {
	runtime.Base
	child runtime.Widget
}

func NewCenter(child runtime.Widget) *Center {
	return &Center{child: child}
}

func (c *Center) Negotiate(lo, hi runtime.Size) runtime.Size {
	c.Track(lo, hi)
	s := c.child.Negotiate(runtime.Size{}, hi)
	return c.SetSize(s.Max(lo))
}

func (c *Center) Place(origin runtime.Point) {
	c.Base.Place(origin)
	gap := c.Rect().Size().Sub(c.child.Rect().Size())
	c.child.Place(origin.Add(runtime.Point{X: gap.Width / 2, Y: gap.Height / 2}))
}

func (c *Center) Paint(cv *runtime.Canvas) {
	c.child.Paint(cv)
}

var _ runtime.Widget = (*Center)(nil)
