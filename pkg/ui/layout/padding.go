package layout

import "github.com/odvcencio/filepane/pkg/ui/runtime"

// Padding reserves a fixed inset on each side of its child.
type Padding struct {
	runtime.Base
	child                    runtime.Widget
	top, bottom, left, right int
}

// NewPadding wraps child with no insets.
func NewPadding(child runtime.Widget) *Padding {
	return &Padding{child: child}
}

func (p *Padding) Top(n int) *Padding {
	p.top = n
	return p
}

func (p *Padding) Bottom(n int) *Padding {
	p.bottom = n
	return p
}

func (p *Padding) Left(n int) *Padding {
	p.left = n
	return p
}

func (p *Padding) Right(n int) *Padding {
	p.right = n
	return p
}

// TopBottom sets the vertical insets.
func (p *Padding) TopBottom(n int) *Padding {
	return p.Top(n).Bottom(n)
}

// LeftRight sets the horizontal insets.
func (p *Padding) LeftRight(n int) *Padding {
	return p.Left(n).Right(n)
}

func (p *Padding) inset() runtime.Size {
	return runtime.Size{Width: p.left + p.right, Height: p.top + p.bottom}
}

// Negotiate sizes the child inside the insets and grows the result
// back by them, never past max.
func (p *Padding) Negotiate(lo, hi runtime.Size) runtime.Size {
	p.Track(lo, hi)
	in := p.inset()
	s := p.child.Negotiate(lo.Sub(in), hi.Sub(in))
	return p.SetSize(s.Add(in).Min(hi))
}

func (p *Padding) Place(origin runtime.Point) {
	p.Base.Place(origin)
	p.child.Place(origin.Add(runtime.Point{X: p.left, Y: p.top}))
}

func (p *Padding) Paint(c *runtime.Canvas) {
	p.child.Paint(c)
}

var _ runtime.Widget = (*Padding)(nil)
