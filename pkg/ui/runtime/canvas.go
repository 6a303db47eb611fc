package runtime

import "github.com/odvcencio/filepane/pkg/ui/backend"

// Style is the cell style used by widgets.
type Style = backend.Style

// Cell represents a single character cell on the canvas.
// A wide glyph occupies its lead cell (Width 2) and a continuation
// cell (Width 0) immediately to the right.
type Cell struct {
	Rune  rune
	Style Style
	Width int
}

func (c Cell) continuation() bool {
	return c.Width == 0
}

// Canvas is the back buffer widgets paint into. The engine flushes it
// to a backend once per frame, emitting only cells that changed since
// the previous flush.
type Canvas struct {
	cells  []Cell
	front  []Cell
	width  int
	height int

	ambient Style

	cursor        Point
	cursorVisible bool
	cursorDirty   bool

	full bool
}

// NewCanvas creates a canvas of the given size filled with blanks in
// the ambient style.
func NewCanvas(w, h int, ambient Style) *Canvas {
	c := &Canvas{ambient: ambient}
	c.Resize(w, h)
	return c
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() Size {
	return Size{Width: c.width, Height: c.height}
}

// Bounds returns the canvas as a rect at the origin.
func (c *Canvas) Bounds() Rect {
	return Rect{Width: c.width, Height: c.height}
}

// Ambient returns the style used for erased cells.
func (c *Canvas) Ambient() Style {
	return c.ambient
}

// SetAmbient changes the erase style. Existing cells are untouched.
func (c *Canvas) SetAmbient(s Style) {
	c.ambient = s
}

// Resize reallocates the canvas and forces the next flush to emit
// every cell.
func (c *Canvas) Resize(w, h int) {
	w, h = max(0, w), max(0, h)
	c.width, c.height = w, h
	c.cells = make([]Cell, w*h)
	c.front = make([]Cell, w*h)
	blank := Cell{Rune: ' ', Style: c.ambient, Width: 1}
	for i := range c.cells {
		c.cells[i] = blank
	}
	c.full = true
}

// Invalidate forces the next flush to emit every cell.
func (c *Canvas) Invalidate() {
	c.full = true
}

// Get returns the cell at position (x, y).
// Returns a blank ambient cell if out of bounds.
func (c *Canvas) Get(x, y int) Cell {
	if !c.inBounds(x, y) {
		return Cell{Rune: ' ', Style: c.ambient, Width: 1}
	}
	return c.cells[y*c.width+x]
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Set writes a rune with style at position (x, y) and returns the
// number of columns it occupies. Out-of-bounds writes are dropped.
// A wide rune that does not fit before the right edge is written as a
// blank, and any wide glyph partially overwritten is blanked out so
// no half glyph survives.
func (c *Canvas) Set(x, y int, r rune, s Style) int {
	w := RuneWidth(r)
	if w <= 0 {
		return 0
	}
	if !c.inBounds(x, y) {
		return w
	}
	if w == 2 && x+1 >= c.width {
		c.put(x, y, Cell{Rune: ' ', Style: s, Width: 1})
		return w
	}
	c.put(x, y, Cell{Rune: r, Style: s, Width: w})
	if w == 2 {
		c.put(x+1, y, Cell{Style: s, Width: 0})
	}
	return w
}

func (c *Canvas) put(x, y int, cell Cell) {
	idx := y*c.width + x
	old := c.cells[idx]
	if old.continuation() && cell.Width != 0 && x > 0 {
		lead := &c.cells[idx-1]
		lead.Rune, lead.Width = ' ', 1
	}
	if old.Width == 2 && cell.Width != 2 && x+1 < c.width {
		next := &c.cells[idx+1]
		if next.continuation() {
			next.Rune, next.Width = ' ', 1
		}
	}
	c.cells[idx] = cell
}

// SetString writes s starting at (x, y), clipped at the right edge of
// the canvas, and returns the number of columns consumed.
func (c *Canvas) SetString(x, y int, s string, style Style) int {
	return c.DrawText(x, y, s, Unbounded, style)
}

// DrawText writes s starting at (x, y) using at most limit columns.
// A wide rune that would cross the limit is not written.
func (c *Canvas) DrawText(x, y int, s string, limit int, style Style) int {
	used := 0
	for _, r := range s {
		w := RuneWidth(r)
		if used+w > limit {
			break
		}
		c.Set(x+used, y, r, style)
		used += w
	}
	return used
}

// Fill fills a rectangular region with a rune and style, clipped to the canvas.
func (c *Canvas) Fill(r Rect, ch rune, s Style) {
	x0 := max(0, r.X)
	y0 := max(0, r.Y)
	x1 := min(c.width, r.X+r.Width)
	y1 := min(c.height, r.Y+r.Height)

	cell := Cell{Rune: ch, Style: s, Width: 1}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.put(x, y, cell)
		}
	}
}

// ShowCursor requests a visible terminal cursor at p.
func (c *Canvas) ShowCursor(p Point) {
	if !c.cursorVisible || c.cursor != p {
		c.cursorDirty = true
	}
	c.cursor, c.cursorVisible = p, true
}

// HideCursor requests a hidden terminal cursor.
func (c *Canvas) HideCursor() {
	if c.cursorVisible {
		c.cursorDirty = true
	}
	c.cursorVisible = false
}

// Cursor returns the requested cursor position and visibility.
func (c *Canvas) Cursor() (Point, bool) {
	return c.cursor, c.cursorVisible
}

// Flush writes every cell that differs from the last flush to b and
// applies the cursor request. It returns the number of cells emitted.
// The caller decides when to Show.
func (c *Canvas) Flush(b backend.Backend) int {
	emitted := 0
	for i, cell := range c.cells {
		if !c.full && c.front[i] == cell {
			continue
		}
		c.front[i] = cell
		if cell.continuation() {
			continue
		}
		b.SetContent(i%c.width, i/c.width, cell.Rune, nil, cell.Style)
		emitted++
	}

	if c.full || c.cursorDirty {
		if c.cursorVisible {
			b.SetCursorPos(c.cursor.X, c.cursor.Y)
		} else {
			b.HideCursor()
		}
	}
	c.full = false
	c.cursorDirty = false
	return emitted
}

// String renders the canvas contents as text lines, for tests and
// debugging. Continuation cells are skipped.
func (c *Canvas) String() string {
	buf := make([]rune, 0, (c.width+1)*c.height)
	for y := 0; y < c.height; y++ {
		if y > 0 {
			buf = append(buf, '\n')
		}
		buf = append(buf, []rune(c.Line(y))...)
	}
	return string(buf)
}

// Line returns row y as text.
func (c *Canvas) Line(y int) string {
	if y < 0 || y >= c.height {
		return ""
	}
	row := make([]rune, 0, c.width)
	for _, cell := range c.cells[y*c.width : (y+1)*c.width] {
		if cell.continuation() {
			continue
		}
		row = append(row, cell.Rune)
	}
	return string(row)
}
