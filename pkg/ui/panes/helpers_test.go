package panes

import (
	"github.com/odvcencio/filepane/pkg/ui/event"
	"github.com/odvcencio/filepane/pkg/ui/runtime"
	"github.com/odvcencio/filepane/pkg/ui/theme"
)

var th = theme.Default()

func newMain(w, h int) (*Main, *runtime.Canvas) {
	m := NewMain(Options{Tabs: 2, Theme: th}, runtime.Sz(w, h))
	return m, runtime.NewCanvas(w, h, th.Screen)
}

// frame lays out and repaints the whole screen the way the engine does.
func frame(m *Main, c *runtime.Canvas) {
	m.BeforeFrame()
	m.Layout()
	c.Bounds().Erase(c)
	m.Paint(c)
}

// cells returns n runes of row y starting at column x.
func cells(c *runtime.Canvas, x, y, n int) string {
	out := make([]rune, 0, n)
	for i := range n {
		out = append(out, c.Get(x+i, y).Rune)
	}
	return string(out)
}

func items(names ...string) []event.FileItem {
	out := make([]event.FileItem, len(names))
	for i, n := range names {
		out[i] = event.FileItem{Name: n, Size: "4K", Mode: "-rw-r--r--", ModifyTime: "2024-01-02 03:04"}
	}
	return out
}
