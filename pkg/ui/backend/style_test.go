package backend

import "testing"

func TestStyleBuilders(t *testing.T) {
	s := DefaultStyle().Foreground(ColorCyan).Background(ColorBlack).Bold(true)

	fg, bg, attrs := s.Decompose()
	if fg != ColorCyan || bg != ColorBlack {
		t.Errorf("colors = %d/%d, want %d/%d", fg, bg, ColorCyan, ColorBlack)
	}
	if attrs&AttrBold == 0 {
		t.Error("expected bold")
	}

	s = s.Bold(false)
	if s.Attributes()&AttrBold != 0 {
		t.Error("expected bold cleared")
	}
}

func TestStyleInverse(t *testing.T) {
	s := NewStyle(ColorWhite, ColorBlack).Inverse()
	if s.FG() != ColorBlack || s.BG() != ColorWhite {
		t.Errorf("Inverse() = %d/%d, want %d/%d", s.FG(), s.BG(), ColorBlack, ColorWhite)
	}
}

func TestColorValid(t *testing.T) {
	for c := ColorDefault; c <= ColorBrightWhite; c++ {
		if !c.Valid() {
			t.Errorf("Color(%d).Valid() = false", c)
		}
	}
	if Color(16).Valid() || Color(-2).Valid() {
		t.Error("out-of-palette colors should be invalid")
	}
}
