// Package runtime provides the widget contract for filepane's screen:
// geometry, the negotiate/place/paint/erase protocol, text measurement
// and the cell canvas widgets draw into.
package runtime

import "fmt"

// Widget is the contract every element of the screen tree implements.
// The owner calls Negotiate, then Place, then Paint, in that order.
type Widget interface {
	// Negotiate picks a size within [min, max] and records it.
	// Panics if min does not fit in max.
	Negotiate(min, max Size) Size

	// Place sets the absolute origin. Containers place their children.
	Place(origin Point)

	// Paint draws into the canvas at the placed rect.
	Paint(c *Canvas)

	// Erase blanks the widget's rect in the ambient style.
	Erase(c *Canvas)

	// Rect returns the rect from the last Negotiate and Place.
	Rect() Rect
}

// Base is embedded by widgets. It stores the rect and the constraints
// of the last negotiation so the widget can be redrawn in place.
type Base struct {
	rect     Rect
	min, max Size
	tracked  bool
}

// Track records the constraints of a negotiation. Every Negotiate
// implementation calls it first.
func (b *Base) Track(min, max Size) {
	if !min.Fits(max) {
		panic(fmt.Sprintf("runtime: negotiate min %v does not fit max %v", min, max))
	}
	b.min, b.max = min, max
	b.tracked = true
}

// Constraints returns the last recorded constraints and whether the
// widget has been negotiated at all.
func (b *Base) Constraints() (min, max Size, ok bool) {
	return b.min, b.max, b.tracked
}

// SetSize records the negotiated size and returns it.
func (b *Base) SetSize(s Size) Size {
	b.rect.Width, b.rect.Height = s.Width, s.Height
	return s
}

// Place sets the widget origin.
func (b *Base) Place(origin Point) {
	b.rect.X, b.rect.Y = origin.X, origin.Y
}

// Rect returns the widget's rect.
func (b *Base) Rect() Rect {
	return b.rect
}

// Erase blanks the widget's rect.
func (b *Base) Erase(c *Canvas) {
	b.rect.Erase(c)
}

// Constrained is implemented by widgets that remember their last
// negotiation, which every widget embedding Base does.
type Constrained interface {
	Constraints() (min, max Size, ok bool)
}

// Redraw re-lays out w from its cached constraints at its current
// origin and repaints it. The old rect is erased first so a widget
// that shrank leaves nothing behind. It reports false, doing nothing,
// when w has never been negotiated.
func Redraw(w Widget, c *Canvas) bool {
	cw, ok := w.(Constrained)
	if !ok {
		return false
	}
	min, max, ok := cw.Constraints()
	if !ok {
		return false
	}
	origin := w.Rect().Origin()
	w.Erase(c)
	w.Negotiate(min, max)
	w.Place(origin)
	w.Erase(c)
	w.Paint(c)
	return true
}

// Layout negotiates w against [min, max] and places it at origin.
func Layout(w Widget, min, max Size, origin Point) Size {
	s := w.Negotiate(min, max)
	w.Place(origin)
	return s
}
