package layout

import "github.com/odvcencio/filepane/pkg/ui/runtime"

// Root fills the terminal. Whatever it is offered, it hands its child
// exactly the screen size as both min and max.
type Root struct {
	runtime.Base
	child runtime.Widget
	size  runtime.Size
}

// NewRoot creates a root for child sized to screen.
func NewRoot(child runtime.Widget, screen runtime.Size) *Root {
	return &Root{child: child, size: screen}
}

// Resize changes the screen size used by the next negotiation.
func (r *Root) Resize(screen runtime.Size) {
	r.size = screen
}

// ScreenSize returns the current screen size.
func (r *Root) ScreenSize() runtime.Size {
	return r.size
}

func (r *Root) Negotiate(lo, hi runtime.Size) runtime.Size {
	r.Track(lo, hi)
	r.child.Negotiate(r.size, r.size)
	return r.SetSize(r.size)
}

func (r *Root) Place(origin runtime.Point) {
	r.Base.Place(origin)
	r.child.Place(origin)
}

func (r *Root) Paint(c *runtime.Canvas) {
	r.child.Paint(c)
}

// Layout negotiates the whole tree at the screen size and places it at
// the top-left corner.
func (r *Root) Layout() {
	r.Negotiate(r.size, r.size)
	r.Place(runtime.Point{})
}

var _ runtime.Widget = (*Root)(nil)
