package panes

import (
	"fmt"
	"slices"

	"github.com/odvcencio/filepane/pkg/ui/event"
	"github.com/odvcencio/filepane/pkg/ui/layout"
	"github.com/odvcencio/filepane/pkg/ui/runtime"
	"github.com/odvcencio/filepane/pkg/ui/theme"
	"github.com/odvcencio/filepane/pkg/ui/widgets"
)

// DefaultColumnWidth is the width of a file list in the short form.
const DefaultColumnWidth = 30

// FileList is one column of the browser: the rows that fit, a
// position indicator on the last row and a separator on the right.
type FileList struct {
	runtime.Base
	files    []*FileLabel
	selected int
	marked   []int
	detail   bool
	width    int

	rows      *layout.Flex
	indicator *widgets.Label
	footer    runtime.Widget
	line      *CornerLine
	theme     *theme.Theme
}

// NewFileList creates an empty list. width is the short-form column
// width; below 1 it defaults to DefaultColumnWidth.
func NewFileList(width int, detail bool, th *theme.Theme) *FileList {
	if width < 1 {
		width = DefaultColumnWidth
	}
	l := &FileList{
		selected:  event.NoSelection,
		detail:    detail,
		width:     width,
		rows:      layout.NewColumn().SetStretch(true),
		indicator: widgets.NewLabel("").WithStyle(th.Text),
		line:      NewCornerLine(widgets.SingleVertical, '┬', widgets.SingleHorizontal, th.Line),
		theme:     th,
	}
	l.footer = layout.MinWidth(layout.NewRow().AddFlex(widgets.NewSpace(), 1).Add(l.indicator))
	return l
}

// SetFiles replaces the rows and clears selection and marks.
func (l *FileList) SetFiles(items []event.FileItem) {
	sizeWidth := 0
	for _, it := range items {
		sizeWidth = max(sizeWidth, runtime.StringWidth(it.Size))
	}
	l.files = make([]*FileLabel, len(items))
	for i, it := range items {
		l.files[i] = NewFileLabel(it, sizeWidth, l.detail, l.theme)
	}
	l.marked = nil
	l.selected = event.NoSelection
	l.updateIndicator()
}

// SetSelected selects row i, clamped to the last row. A negative i or
// an empty list leaves nothing selected. It returns the row selected.
func (l *FileList) SetSelected(i int) int {
	if l.selected != event.NoSelection {
		l.files[l.selected].SetSelected(false)
	}
	switch {
	case i < 0 || len(l.files) == 0:
		i = event.NoSelection
	case i >= len(l.files):
		i = len(l.files) - 1
	}
	l.selected = i
	if i != event.NoSelection {
		l.files[i].SetSelected(true)
	}
	l.updateIndicator()
	return i
}

// SetMarked marks the given rows. Indices outside the list are
// ignored.
func (l *FileList) SetMarked(indices []int) {
	for _, i := range l.marked {
		l.files[i].SetMarked(false)
	}
	l.marked = l.marked[:0]
	for _, i := range indices {
		if i < 0 || i >= len(l.files) || slices.Contains(l.marked, i) {
			continue
		}
		l.files[i].SetMarked(true)
		l.marked = append(l.marked, i)
	}
}

func (l *FileList) updateIndicator() {
	if l.selected == event.NoSelection {
		l.indicator.SetText("")
		return
	}
	l.indicator.SetText(fmt.Sprintf("%d/%d  ", l.selected+1, len(l.files)))
}

// SetShowDetail switches every row between the short and the detail
// form. A detail list takes all the width it is offered.
func (l *FileList) SetShowDetail(on bool) {
	l.detail = on
	for _, f := range l.files {
		f.SetShowDetail(on)
	}
}

func (l *FileList) Detail() bool {
	return l.detail
}

// Selected returns the selected row or event.NoSelection.
func (l *FileList) Selected() int {
	return l.selected
}

// Marked returns the marked rows in the order they were set.
func (l *FileList) Marked() []int {
	return slices.Clone(l.marked)
}

func (l *FileList) Len() int {
	return len(l.files)
}

// Row returns row i.
func (l *FileList) Row(i int) *FileLabel {
	return l.files[i]
}

// Indicator returns the "i/n" text of the footer.
func (l *FileList) Indicator() string {
	return l.indicator.Text()
}

// Negotiate lays out as many rows as fit above the footer row, then
// the separator.
func (l *FileList) Negotiate(lo, hi runtime.Size) runtime.Size {
	l.Track(lo, hi)

	l.rows.Reset()
	for i, f := range l.files {
		if i >= hi.Height-1 {
			break
		}
		l.rows.Add(f)
	}
	l.rows.AddFlex(widgets.NewSpace(), 1)
	l.rows.Add(l.footer)

	lineWidth := min(1, hi.Width)
	avail := hi.Width - lineWidth
	inner := runtime.Size{Width: avail, Height: hi.Height}
	floor := runtime.Size{Height: min(lo.Height, hi.Height)}
	if !l.detail {
		inner.Width = min(l.width, avail)
		floor.Width = inner.Width
	}

	s := l.rows.Negotiate(floor, inner)
	ls := l.line.Negotiate(runtime.Size{Height: s.Height}, runtime.Size{Width: lineWidth, Height: s.Height})
	return l.SetSize(runtime.Size{Width: s.Width + ls.Width, Height: s.Height})
}

func (l *FileList) Place(origin runtime.Point) {
	l.Base.Place(origin)
	l.rows.Place(origin)
	l.line.Place(origin.Add(runtime.Point{X: l.rows.Rect().Width}))
}

func (l *FileList) Paint(c *runtime.Canvas) {
	l.rows.Paint(c)
	l.line.Paint(c)
}

// Erase blanks the list and puts the rule back under the separator's
// junction.
func (l *FileList) Erase(c *runtime.Canvas) {
	l.line.Erase(c)
	l.Base.Erase(c)
}

var _ runtime.Widget = (*FileList)(nil)
