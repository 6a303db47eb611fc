package layout

import "github.com/odvcencio/filepane/pkg/ui/runtime"

// UseMin caps its child's max at the offered min on the selected axes,
// so a child that would otherwise grow stays as small as allowed.
type UseMin struct {
	runtime.Base
	child         runtime.Widget
	width, height bool
}

// MinWidth keeps child at its minimum width.
func MinWidth(child runtime.Widget) *UseMin {
	return &UseMin{child: child, width: true}
}

// MinHeight keeps child at its minimum height.
func MinHeight(child runtime.Widget) *UseMin {
	return &UseMin{child: child, height: true}
}

func (u *UseMin) Negotiate(lo, hi runtime.Size) runtime.Size {
	u.Track(lo, hi)
	if u.width {
		hi.Width = lo.Width
	}
	if u.height {
		hi.Height = lo.Height
	}
	return u.SetSize(u.child.Negotiate(lo, hi))
}

func (u *UseMin) Place(origin runtime.Point) {
	u.Base.Place(origin)
	u.child.Place(origin)
}

func (u *UseMin) Paint(c *runtime.Canvas) {
	u.child.Paint(c)
}

var _ runtime.Widget = (*UseMin)(nil)
