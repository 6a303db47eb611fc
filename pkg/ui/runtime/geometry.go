package runtime

import "fmt"

// Unbounded is the extent used for an axis with no upper limit.
const Unbounded = int(^uint(0) >> 1)

// Point is a cell position. Coordinates may be negative while a widget
// is being moved; the canvas clips anything outside the screen.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Size is a widget's extent in cells. Both axes are non-negative.
type Size struct {
	Width, Height int
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h int) Size {
	return Size{Width: w, Height: h}
}

// Zero returns true if both dimensions are zero.
func (s Size) Zero() bool {
	return s.Width == 0 && s.Height == 0
}

// Empty reports whether the size covers no cells.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Max keeps the larger value of each axis.
func (s Size) Max(o Size) Size {
	return Size{Width: max(s.Width, o.Width), Height: max(s.Height, o.Height)}
}

// Min keeps the smaller value of each axis.
func (s Size) Min(o Size) Size {
	return Size{Width: min(s.Width, o.Width), Height: min(s.Height, o.Height)}
}

// Add grows s by o, saturating at Unbounded.
func (s Size) Add(o Size) Size {
	return Size{Width: satAdd(s.Width, o.Width), Height: satAdd(s.Height, o.Height)}
}

// Sub shrinks s by o, saturating at zero.
func (s Size) Sub(o Size) Size {
	return Size{Width: max(0, s.Width-o.Width), Height: max(0, s.Height-o.Height)}
}

// Fits reports whether s is componentwise no larger than o.
func (s Size) Fits(o Size) bool {
	return s.Width <= o.Width && s.Height <= o.Height
}

// Clamp returns s limited to the box [lo, hi] on each axis.
func (s Size) Clamp(lo, hi Size) Size {
	return Size{
		Width:  clamp(s.Width, lo.Width, hi.Width),
		Height: clamp(s.Height, lo.Height, hi.Height),
	}
}

func (s Size) String() string {
	return fmt.Sprintf("%sx%s", extent(s.Width), extent(s.Height))
}

func extent(v int) string {
	if v == Unbounded {
		return "∞"
	}
	return fmt.Sprint(v)
}

// Rect is a positioned rectangle.
type Rect struct {
	X, Y, Width, Height int
}

// RectAt creates a rect from an origin and a size.
func RectAt(p Point, s Size) Rect {
	return Rect{X: p.X, Y: p.Y, Width: s.Width, Height: s.Height}
}

// Origin returns the top-left point.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the rect's dimensions as a Size.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Empty reports whether the rect covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// TopLeft is the first cell of the rect.
func (r Rect) TopLeft() Point {
	return Point{X: r.X, Y: r.Y}
}

// TopRight is the last cell of the first row. For an empty rect it
// lies one column left of the origin, so the next sibling in a row
// starts exactly at the origin.
func (r Rect) TopRight() Point {
	return Point{X: r.X + r.Width - 1, Y: r.Y}
}

// BottomLeft is the first cell of the last row.
func (r Rect) BottomLeft() Point {
	return Point{X: r.X, Y: r.Y + r.Height - 1}
}

// BottomRight is the last cell of the rect.
func (r Rect) BottomRight() Point {
	return Point{X: r.X + r.Width - 1, Y: r.Y + r.Height - 1}
}

// Contains returns true if the point is inside the rect.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Union returns the smallest rect covering r and o. Empty rects are ignored.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	x0, y0 := min(r.X, o.X), min(r.Y, o.Y)
	x1, y1 := max(r.X+r.Width, o.X+o.Width), max(r.Y+r.Height, o.Y+o.Height)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Erase blanks every cell of r in the canvas's ambient style.
func (r Rect) Erase(c *Canvas) {
	c.Fill(r, ' ', c.Ambient())
}

// Fill paints every cell of r with a blank in the given style.
func (r Rect) Fill(c *Canvas, style Style) {
	c.Fill(r, ' ', style)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func satAdd(a, b int) int {
	if a > Unbounded-b {
		return Unbounded
	}
	return a + b
}
