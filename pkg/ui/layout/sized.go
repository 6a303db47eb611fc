package layout

import "github.com/odvcencio/filepane/pkg/ui/runtime"

// Auto leaves a SizedBox axis to the child.
const Auto = -1

// SizedBox pins its size on zero, one or both axes. A pinned axis of
// runtime.Unbounded takes everything max offers. An Auto axis is
// negotiated freely by the child.
type SizedBox struct {
	runtime.Base
	child         runtime.Widget
	width, height int
}

// NewSizedBox wraps child with both axes Auto. child may be nil for an
// empty box.
func NewSizedBox(child runtime.Widget) *SizedBox {
	return &SizedBox{child: child, width: Auto, height: Auto}
}

// Width pins the width.
func (b *SizedBox) Width(n int) *SizedBox {
	b.width = n
	return b
}

// Height pins the height.
func (b *SizedBox) Height(n int) *SizedBox {
	b.height = n
	return b
}

// Size pins both axes.
func (b *SizedBox) Size(w, h int) *SizedBox {
	return b.Width(w).Height(h)
}

// MaxWidth takes all available width.
func (b *SizedBox) MaxWidth() *SizedBox {
	return b.Width(runtime.Unbounded)
}

// MaxHeight takes all available height.
func (b *SizedBox) MaxHeight() *SizedBox {
	return b.Height(runtime.Unbounded)
}

// Max takes all available space.
func (b *SizedBox) Max() *SizedBox {
	return b.MaxWidth().MaxHeight()
}

// SetChild replaces the child.
func (b *SizedBox) SetChild(child runtime.Widget) {
	b.child = child
}

func pin(fixed, lo, hi int) (int, int) {
	if fixed == Auto {
		return lo, hi
	}
	v := min(hi, max(lo, fixed))
	return v, v
}

func (b *SizedBox) Negotiate(lo, hi runtime.Size) runtime.Size {
	b.Track(lo, hi)

	var clo, chi runtime.Size
	clo.Width, chi.Width = pin(b.width, lo.Width, hi.Width)
	clo.Height, chi.Height = pin(b.height, lo.Height, hi.Height)

	if b.child == nil {
		return b.SetSize(clo)
	}
	return b.SetSize(b.child.Negotiate(clo, chi))
}

func (b *SizedBox) Place(origin runtime.Point) {
	b.Base.Place(origin)
	if b.child != nil {
		b.child.Place(origin)
	}
}

func (b *SizedBox) Paint(c *runtime.Canvas) {
	if b.child != nil {
		b.child.Paint(c)
	}
}

var _ runtime.Widget = (*SizedBox)(nil)
