package panes

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/odvcencio/filepane/pkg/ui/event"
	"github.com/odvcencio/filepane/pkg/ui/runtime"
	"github.com/odvcencio/filepane/pkg/ui/widgets"
)

func TestCornerLine_EraseRestoresRule(t *testing.T) {
	c := runtime.NewCanvas(5, 4, th.Screen)
	rule := widgets.NewHLine()
	runtime.Layout(rule, runtime.Size{}, runtime.Sz(5, 1), runtime.Pt(0, 0))
	rule.Paint(c)

	l := NewCornerLine('│', '┬', '─', th.Line)
	runtime.Layout(l, runtime.Size{}, runtime.Sz(1, 3), runtime.Pt(2, 1))
	l.Paint(c)

	assert.Equal(t, "──┬──", c.Line(0))
	assert.Equal(t, '│', c.Get(2, 3).Rune)
	assert.Equal(t, runtime.Rect{X: 2, Y: 1, Width: 1, Height: 3}, l.Rect())

	l.Erase(c)
	assert.Equal(t, "─────", c.Line(0))
	assert.Equal(t, ' ', c.Get(2, 2).Rune)
}

func TestCornerLine_AtTopEdge(t *testing.T) {
	c := runtime.NewCanvas(3, 3, th.Screen)
	l := NewCornerLine('║', '╥', '─', th.Line)
	runtime.Layout(l, runtime.Size{}, runtime.Sz(1, 3), runtime.Pt(0, 0))
	assert.NotPanics(t, func() {
		l.Paint(c)
		l.Erase(c)
	})
}

func TestSpinner_Cycle(t *testing.T) {
	s := NewSpinner(th.Spinner)
	assert.Equal(t, "☑", s.Glyph())
	assert.False(t, s.Tick())

	s.Start()
	assert.Equal(t, "▁", s.Glyph())
	frames := []rune(spinnerFrames)
	for i := 1; i < len(frames)+1; i++ {
		assert.True(t, s.Tick())
		assert.Equal(t, string(frames[i%len(frames)]), s.Glyph())
	}

	s.Start()
	assert.True(t, s.Running())
	s.Stop()
	assert.Equal(t, "☑", s.Glyph())
}

func TestFileList_KeepsColumnWidthWhenEmpty(t *testing.T) {
	l := NewFileList(0, false, th)
	got := l.Negotiate(runtime.Size{}, runtime.Sz(80, 10))
	assert.Equal(t, runtime.Sz(DefaultColumnWidth+1, 10), got)

	narrow := NewFileList(12, false, th)
	assert.Equal(t, runtime.Sz(7, 10), narrow.Negotiate(runtime.Size{}, runtime.Sz(7, 10)))
}

func TestFileList_ShowsRowsThatFit(t *testing.T) {
	l := NewFileList(20, false, th)
	l.SetFiles(items("a", "b", "c", "d", "e", "f"))
	l.SetSelected(5)

	c := runtime.NewCanvas(21, 4, th.Screen)
	runtime.Layout(l, runtime.Size{}, runtime.Sz(21, 4), runtime.Pt(0, 0))
	l.Paint(c)

	assert.Equal(t, 'a', c.Get(2, 0).Rune)
	assert.Equal(t, 'c', c.Get(2, 2).Rune)
	assert.Equal(t, "6/6", cells(c, 15, 3, 3))
	assert.Equal(t, '│', c.Get(20, 1).Rune)
}

func TestFileList_SetFilesResetsState(t *testing.T) {
	l := NewFileList(20, false, th)
	l.SetFiles(items("a", "b"))
	l.SetSelected(1)
	l.SetMarked([]int{0, 1})

	l.SetFiles(items("x"))
	assert.Equal(t, event.NoSelection, l.Selected())
	assert.Empty(t, l.Marked())
	assert.False(t, l.Row(0).Selected())
}

func TestFileLabel_Styles(t *testing.T) {
	dir := NewFileLabel(event.FileItem{Name: "src", Size: "-", IsDir: true}, 1, false, th)
	assert.Equal(t, th.Directory, dir.Style())

	dir.SetMarked(true)
	assert.Equal(t, th.Marked, dir.Style())

	dir.SetSelected(true)
	assert.Equal(t, th.Marked.Inverse(), dir.Style())

	dir.SetMarked(false)
	assert.Equal(t, th.Directory.Inverse(), dir.Style())
}

func TestDetailLine(t *testing.T) {
	item := event.FileItem{Name: "docs", Size: "4K", Mode: "drwxr-xr-x", ModifyTime: "2024-01-02 03:04"}
	assert.Equal(t, "2024-01-02 03:04  drwxr-xr-x    4K  docs", DetailLine(item, 4))
}

func TestBookmark_WidthFollowsWidestName(t *testing.T) {
	b := NewBookmark(th)
	assert.Equal(t, 13, b.Negotiate(runtime.Size{}, runtime.Sz(80, 10)).Width)

	b.SetBookmarks([]string{"a-rather-long-bookmark"})
	assert.Equal(t, 26, b.Negotiate(runtime.Size{}, runtime.Sz(80, 10)).Width)
	assert.Equal(t, 20, b.Negotiate(runtime.Size{}, runtime.Sz(20, 10)).Width)
}

func TestTab_Active(t *testing.T) {
	tab := NewTab(0, th)
	assert.Equal(t, 1, tab.Len())
	assert.False(t, tab.SetActive(1))
	assert.True(t, tab.SetActive(0))
}
