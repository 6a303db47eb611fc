package panes

import (
	"github.com/odvcencio/filepane/pkg/ui/layout"
	"github.com/odvcencio/filepane/pkg/ui/runtime"
)

// delegate forwards the widget contract to an inner tree. Composites
// embed it and keep handles to the parts they mutate.
type delegate struct {
	runtime.Base
	inner runtime.Widget
}

func (d *delegate) Negotiate(lo, hi runtime.Size) runtime.Size {
	d.Track(lo, hi)
	return d.SetSize(d.inner.Negotiate(lo, hi))
}

func (d *delegate) Place(origin runtime.Point) {
	d.Base.Place(origin)
	d.inner.Place(origin)
}

func (d *delegate) Paint(c *runtime.Canvas) {
	d.inner.Paint(c)
}

// gap is a blank of fixed width.
func gap(n int) *layout.SizedBox {
	return layout.NewSizedBox(nil).Width(n)
}
