package runtime

import (
	"testing"

	"github.com/odvcencio/filepane/pkg/ui/backend"
	"github.com/odvcencio/filepane/pkg/ui/backend/sim"
)

func TestCanvas_NewIsBlank(t *testing.T) {
	ambient := backend.NewStyle(backend.ColorWhite, backend.ColorBlack)
	c := NewCanvas(3, 2, ambient)

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			cell := c.Get(x, y)
			if cell.Rune != ' ' || cell.Style != ambient || cell.Width != 1 {
				t.Fatalf("cell (%d,%d) = %+v, want ambient blank", x, y, cell)
			}
		}
	}
}

func TestCanvas_SetOutOfBounds(t *testing.T) {
	c := NewCanvas(2, 2, backend.DefaultStyle())
	c.Set(-1, 0, 'x', backend.DefaultStyle())
	c.Set(2, 0, 'x', backend.DefaultStyle())
	c.Set(0, 5, 'x', backend.DefaultStyle())

	if got := c.String(); got != "  \n  " {
		t.Errorf("out-of-bounds writes leaked:\n%q", got)
	}
	if cell := c.Get(9, 9); cell.Rune != ' ' {
		t.Errorf("Get out of bounds = %+v", cell)
	}
}

func TestCanvas_WideGlyph(t *testing.T) {
	c := NewCanvas(4, 1, backend.DefaultStyle())

	if w := c.Set(0, 0, '世', backend.DefaultStyle()); w != 2 {
		t.Errorf("Set returned %d, want 2", w)
	}
	if cell := c.Get(1, 0); cell.Width != 0 {
		t.Errorf("cell after wide glyph should be a continuation, got %+v", cell)
	}
	if got := c.Line(0); got != "世  " {
		t.Errorf("Line = %q", got)
	}

	// Overwriting the continuation blanks the lead.
	c.Set(1, 0, 'x', backend.DefaultStyle())
	if got := c.Line(0); got != " x  " {
		t.Errorf("after overwriting continuation Line = %q", got)
	}
}

func TestCanvas_WideGlyphOverwrittenByNarrow(t *testing.T) {
	c := NewCanvas(3, 1, backend.DefaultStyle())
	c.Set(0, 0, '世', backend.DefaultStyle())
	c.Set(0, 0, 'a', backend.DefaultStyle())

	if got := c.Line(0); got != "a  " {
		t.Errorf("Line = %q, want %q", got, "a  ")
	}
}

func TestCanvas_WideGlyphAtRightEdge(t *testing.T) {
	c := NewCanvas(3, 1, backend.DefaultStyle())
	c.Set(2, 0, '世', backend.DefaultStyle())

	if got := c.Line(0); got != "   " {
		t.Errorf("Line = %q, want blanks", got)
	}
}

func TestCanvas_DrawTextLimit(t *testing.T) {
	c := NewCanvas(10, 1, backend.DefaultStyle())

	used := c.DrawText(0, 0, "ab世界", 5, backend.DefaultStyle())
	if used != 4 {
		t.Errorf("DrawText used %d columns, want 4", used)
	}
	if got := c.Line(0); got != "ab世      " {
		t.Errorf("Line = %q", got)
	}
}

func TestCanvas_Fill(t *testing.T) {
	c := NewCanvas(4, 3, backend.DefaultStyle())
	red := backend.DefaultStyle().Background(backend.ColorRed)

	c.Fill(Rect{X: -1, Y: 1, Width: 3, Height: 5}, '#', red)

	want := "    \n##  \n##  "
	if got := c.String(); got != want {
		t.Errorf("after fill:\n%s\nwant:\n%s", got, want)
	}
	if c.Get(0, 1).Style != red {
		t.Error("fill style not applied")
	}
}

func TestCanvas_FlushEmitsOnlyChanges(t *testing.T) {
	screen := sim.New(5, 2)
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer screen.Fini()

	c := NewCanvas(5, 2, backend.DefaultStyle())
	c.SetString(0, 0, "hello", backend.DefaultStyle())

	if n := c.Flush(screen); n != 10 {
		t.Errorf("first flush emitted %d cells, want 10", n)
	}
	screen.Show()
	if got := screen.CaptureLine(0); got != "hello" {
		t.Errorf("screen line 0 = %q", got)
	}

	if n := c.Flush(screen); n != 0 {
		t.Errorf("unchanged flush emitted %d cells, want 0", n)
	}

	c.Set(1, 1, 'x', backend.DefaultStyle())
	if n := c.Flush(screen); n != 1 {
		t.Errorf("single change emitted %d cells, want 1", n)
	}

	c.Invalidate()
	if n := c.Flush(screen); n != 10 {
		t.Errorf("invalidated flush emitted %d cells, want 10", n)
	}
}

func TestCanvas_FlushWideGlyph(t *testing.T) {
	screen := sim.New(4, 1)
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer screen.Fini()

	c := NewCanvas(4, 1, backend.DefaultStyle())
	c.SetString(0, 0, "世ab", backend.DefaultStyle())

	if n := c.Flush(screen); n != 3 {
		t.Errorf("flush emitted %d cells, want 3 (continuation skipped)", n)
	}
	screen.Show()
	if got := screen.CaptureLine(0); got != "世ab" {
		t.Errorf("screen line = %q, want %q", got, "世ab")
	}
}

func TestCanvas_Cursor(t *testing.T) {
	screen := sim.New(10, 3)
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer screen.Fini()

	c := NewCanvas(10, 3, backend.DefaultStyle())
	c.ShowCursor(Pt(3, 2))
	c.Flush(screen)
	screen.Show()

	if x, y, vis := screen.CursorPos(); x != 3 || y != 2 || !vis {
		t.Errorf("cursor = (%d,%d,%v), want (3,2,true)", x, y, vis)
	}

	c.HideCursor()
	c.Flush(screen)
	screen.Show()
	if _, _, vis := screen.CursorPos(); vis {
		t.Error("cursor should be hidden")
	}
}

func TestCanvas_ResizeForcesFullFlush(t *testing.T) {
	screen := sim.New(3, 1)
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer screen.Fini()

	c := NewCanvas(3, 1, backend.DefaultStyle())
	c.Flush(screen)

	c.Resize(2, 2)
	if got := c.Size(); got != Sz(2, 2) {
		t.Errorf("Size = %v", got)
	}
	if n := c.Flush(screen); n != 4 {
		t.Errorf("flush after resize emitted %d, want 4", n)
	}
}
