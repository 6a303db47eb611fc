package panes

import (
	"fmt"

	"github.com/odvcencio/filepane/pkg/ui/backend"
	"github.com/odvcencio/filepane/pkg/ui/event"
	"github.com/odvcencio/filepane/pkg/ui/layout"
	"github.com/odvcencio/filepane/pkg/ui/runtime"
	"github.com/odvcencio/filepane/pkg/ui/theme"
	"github.com/odvcencio/filepane/pkg/ui/widgets"
)

// FileLabel is one row of a file list. In the short form it shows the
// name and the size; in the detail form it shows modify time, mode,
// size and name on one line.
type FileLabel struct {
	runtime.Base
	item      event.FileItem
	sizeWidth int

	selected bool
	marked   bool
	detail   bool

	labels []*widgets.Label
	bg     *layout.Background
	style  backend.Style
	theme  *theme.Theme
}

// NewFileLabel creates a row for item. sizeWidth is the widest size
// string of the list, used to right-align sizes in the detail form.
func NewFileLabel(item event.FileItem, sizeWidth int, detail bool, th *theme.Theme) *FileLabel {
	f := &FileLabel{item: item, sizeWidth: sizeWidth, detail: detail, theme: th}
	f.bg = layout.NewBackground(nil, th.Colors.Background)
	f.build()
	return f
}

// DetailLine formats the detail form of item with the size padded to
// sizeWidth columns.
func DetailLine(item event.FileItem, sizeWidth int) string {
	return fmt.Sprintf("%s  %s  %s  %s", item.ModifyTime, item.Mode, runtime.PadLeft(item.Size, sizeWidth), item.Name)
}

func (f *FileLabel) build() {
	row := layout.NewRow()
	if f.detail {
		line := widgets.NewLabel(DetailLine(f.item, f.sizeWidth))
		f.labels = []*widgets.Label{line}
		row.Add(gap(2)).Add(line).Add(gap(2))
	} else {
		name := widgets.NewLabel(f.item.Name)
		size := widgets.NewLabel(f.item.Size)
		f.labels = []*widgets.Label{name, size}
		row.Add(gap(2)).AddFlex(name, 1).Add(gap(2)).Add(size).Add(gap(2))
	}
	f.bg.SetChild(row)
	f.restyle()
}

func (f *FileLabel) restyle() {
	style := f.theme.File
	if f.item.IsDir {
		style = f.theme.Directory
	}
	if f.marked {
		style = f.theme.Marked
	}
	if f.selected {
		style = style.Inverse()
	}
	f.style = style
	for _, l := range f.labels {
		l.SetStyle(style)
	}
	f.bg.SetColor(style.BG())
}

func (f *FileLabel) Item() event.FileItem {
	return f.item
}

// Style returns the colors the row is drawn with.
func (f *FileLabel) Style() backend.Style {
	return f.style
}

func (f *FileLabel) SetSelected(on bool) {
	f.selected = on
	f.restyle()
}

func (f *FileLabel) Selected() bool {
	return f.selected
}

func (f *FileLabel) SetMarked(on bool) {
	f.marked = on
	f.restyle()
}

func (f *FileLabel) Marked() bool {
	return f.marked
}

// SetShowDetail switches between the short and the detail form.
func (f *FileLabel) SetShowDetail(on bool) {
	if f.detail == on {
		return
	}
	f.detail = on
	f.build()
}

func (f *FileLabel) Negotiate(lo, hi runtime.Size) runtime.Size {
	f.Track(lo, hi)
	return f.SetSize(f.bg.Negotiate(lo, hi))
}

func (f *FileLabel) Place(origin runtime.Point) {
	f.Base.Place(origin)
	f.bg.Place(origin)
}

// Paint draws the row and, when marked, a star in its second column.
func (f *FileLabel) Paint(c *runtime.Canvas) {
	f.bg.Paint(c)
	r := f.Rect()
	if f.marked && r.Width > 1 && r.Height > 0 {
		c.Set(r.X+1, r.Y, '*', f.style)
	}
}

var _ runtime.Widget = (*FileLabel)(nil)
