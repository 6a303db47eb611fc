// Package layout provides the container widgets: Flex rows and
// columns, Padding, SizedBox, Center, Background, UseMin and the Root
// that fills the terminal.
package layout

import "github.com/odvcencio/filepane/pkg/ui/runtime"

// Direction is the main axis of a Flex.
type Direction int

const (
	Row    Direction = iota // children left to right
	Column                  // children top to bottom
)

type flexChild struct {
	widget runtime.Widget
	weight int // 0 = fixed
}

// Flex stacks children along its main axis. Fixed children take what
// they ask for; flexible children share what is left in proportion to
// their weights. Children are kept in insertion order and every pass
// walks them in that order.
type Flex struct {
	runtime.Base
	direction   Direction
	children    []flexChild
	totalWeight int
	stretch     bool
}

// NewRow creates a horizontal Flex.
func NewRow() *Flex {
	return &Flex{direction: Row}
}

// NewColumn creates a vertical Flex.
func NewColumn() *Flex {
	return &Flex{direction: Column}
}

// Add appends a fixed child.
func (f *Flex) Add(w runtime.Widget) *Flex {
	f.children = append(f.children, flexChild{widget: w})
	return f
}

// AddFlex appends a flexible child. A weight below 1 makes it fixed.
func (f *Flex) AddFlex(w runtime.Widget, weight int) *Flex {
	if weight < 1 {
		return f.Add(w)
	}
	f.children = append(f.children, flexChild{widget: w, weight: weight})
	f.totalWeight += weight
	return f
}

// SetStretch makes every child take the container's full cross extent.
func (f *Flex) SetStretch(on bool) *Flex {
	f.stretch = on
	return f
}

// Len returns the number of children.
func (f *Flex) Len() int {
	return len(f.children)
}

// Child returns the i-th child in insertion order.
func (f *Flex) Child(i int) runtime.Widget {
	return f.children[i].widget
}

// TotalWeight returns the sum of all flexible weights.
func (f *Flex) TotalWeight() int {
	return f.totalWeight
}

// Reset drops every child without erasing.
func (f *Flex) Reset() {
	f.children = nil
	f.totalWeight = 0
}

func (f *Flex) main(s runtime.Size) int {
	if f.direction == Row {
		return s.Width
	}
	return s.Height
}

func (f *Flex) cross(s runtime.Size) int {
	if f.direction == Row {
		return s.Height
	}
	return s.Width
}

func (f *Flex) size(main, cross int) runtime.Size {
	if f.direction == Row {
		return runtime.Size{Width: main, Height: cross}
	}
	return runtime.Size{Width: cross, Height: main}
}

// withMain returns s with its main extent replaced.
func (f *Flex) withMain(s runtime.Size, main int) runtime.Size {
	return f.size(main, f.cross(s))
}

func (f *Flex) Negotiate(lo, hi runtime.Size) runtime.Size {
	f.Track(lo, hi)

	mainSum, crossMax := 0, 0
	account := func(s runtime.Size) {
		mainSum += f.main(s)
		crossMax = max(crossMax, f.cross(s))
	}

	for _, c := range f.children {
		if c.weight > 0 {
			continue
		}
		remaining := f.withMain(hi, max(0, f.main(hi)-mainSum))
		account(c.widget.Negotiate(runtime.Size{}, remaining))
	}

	if f.totalWeight > 0 {
		if f.main(hi) == runtime.Unbounded {
			// Nothing to share: flexible children size themselves.
			for _, c := range f.children {
				if c.weight > 0 {
					account(c.widget.Negotiate(runtime.Size{}, hi))
				}
			}
		} else {
			remaining := max(0, f.main(hi)-mainSum)
			unit := remaining / f.totalWeight
			remainder := remaining % f.totalWeight
			last := f.lastFlexible()

			for i, c := range f.children {
				if c.weight == 0 {
					continue
				}
				alloc := unit * c.weight
				if i == last {
					alloc += remainder
				}
				account(c.widget.Negotiate(f.size(alloc, 0), f.size(alloc, f.cross(hi))))
			}
		}
	}

	out := f.size(max(f.main(lo), mainSum), max(f.cross(lo), crossMax))

	if f.stretch {
		crossAll := f.cross(out)
		for _, c := range f.children {
			got := c.widget.Rect().Size()
			if f.cross(got) < crossAll {
				pinned := f.size(f.main(got), crossAll)
				c.widget.Negotiate(pinned, pinned)
			}
		}
	}

	return f.SetSize(out)
}

func (f *Flex) lastFlexible() int {
	for i := len(f.children) - 1; i >= 0; i-- {
		if f.children[i].weight > 0 {
			return i
		}
	}
	return -1
}

// Place puts the first child at origin and every later child one cell
// past the trailing edge of the one before it.
func (f *Flex) Place(origin runtime.Point) {
	f.Base.Place(origin)
	next := origin
	for _, c := range f.children {
		c.widget.Place(next)
		next = f.after(c.widget.Rect(), origin)
	}
}

func (f *Flex) after(r runtime.Rect, origin runtime.Point) runtime.Point {
	if f.direction == Row {
		return runtime.Point{X: r.TopRight().X + 1, Y: origin.Y}
	}
	return runtime.Point{X: origin.X, Y: r.BottomLeft().Y + 1}
}

// Paint paints children in insertion order.
func (f *Flex) Paint(c *runtime.Canvas) {
	for _, ch := range f.children {
		ch.widget.Paint(c)
	}
}

// Append adds a fixed trailing child to a Flex that is already laid
// out. Only the new child is negotiated, against the main-axis space
// the existing children leave free, and placed after the last one.
// Before the first negotiation it behaves like Add.
func (f *Flex) Append(w runtime.Widget) {
	_, hi, ok := f.Constraints()
	prev := len(f.children)
	f.Add(w)
	if !ok {
		return
	}

	used, crossMax := 0, 0
	for _, c := range f.children[:prev] {
		s := c.widget.Rect().Size()
		used += f.main(s)
		crossMax = max(crossMax, f.cross(s))
	}

	s := w.Negotiate(runtime.Size{}, f.withMain(hi, max(0, f.main(hi)-used)))
	origin := f.Rect().Origin()
	if prev == 0 {
		w.Place(origin)
	} else {
		w.Place(f.after(f.children[prev-1].widget.Rect(), origin))
	}

	grown := f.size(max(f.main(f.Rect().Size()), used+f.main(s)), max(f.cross(f.Rect().Size()), crossMax, f.cross(s)))
	f.SetSize(grown)
}

// RemoveLast erases the trailing child and drops it. It returns the
// removed widget, or nil when the Flex is empty.
func (f *Flex) RemoveLast(c *runtime.Canvas) runtime.Widget {
	if len(f.children) == 0 {
		return nil
	}
	last := f.children[len(f.children)-1]
	last.widget.Erase(c)
	f.children = f.children[:len(f.children)-1]
	f.totalWeight -= last.weight

	if _, _, ok := f.Constraints(); ok {
		size := f.Rect().Size()
		f.SetSize(f.withMain(size, max(0, f.main(size)-f.main(last.widget.Rect().Size()))))
	}
	return last.widget
}

var _ runtime.Widget = (*Flex)(nil)
