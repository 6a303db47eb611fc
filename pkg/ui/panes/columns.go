package panes

import (
	"github.com/odvcencio/filepane/pkg/ui/event"
	"github.com/odvcencio/filepane/pkg/ui/layout"
	"github.com/odvcencio/filepane/pkg/ui/runtime"
	"github.com/odvcencio/filepane/pkg/ui/theme"
)

// FileColumns is the row of file lists, parent directories first and
// the current directory last. Only the current list can be in the
// detail form.
type FileColumns struct {
	runtime.Base
	lists  []*FileList
	row    *layout.Flex
	detail bool
	width  int
	theme  *theme.Theme
}

func NewFileColumns(width int, detail bool, th *theme.Theme) *FileColumns {
	return &FileColumns{row: layout.NewRow(), detail: detail, width: width, theme: th}
}

func (fc *FileColumns) newList(detail bool) *FileList {
	return NewFileList(fc.width, detail, fc.theme)
}

// Len returns the number of columns.
func (fc *FileColumns) Len() int {
	return len(fc.lists)
}

// Column returns column i.
func (fc *FileColumns) Column(i int) *FileList {
	return fc.lists[i]
}

// Current returns the last column, or nil when there is none.
func (fc *FileColumns) Current() *FileList {
	if len(fc.lists) == 0 {
		return nil
	}
	return fc.lists[len(fc.lists)-1]
}

// InitColumns makes one column per slice, reusing existing columns.
func (fc *FileColumns) InitColumns(columns [][]event.FileItem) {
	if len(fc.lists) > len(columns) {
		fc.lists = fc.lists[:len(columns)]
	}
	for len(fc.lists) < len(columns) {
		fc.lists = append(fc.lists, fc.newList(false))
	}
	last := len(fc.lists) - 1
	for i, items := range columns {
		fc.lists[i].SetShowDetail(fc.detail && i == last)
		fc.lists[i].SetFiles(items)
	}
}

// InitSelected sets the selection of each column. Entries beyond the
// column count are ignored; missing entries leave a column unchanged.
func (fc *FileColumns) InitSelected(selected []int) {
	for i := range min(len(selected), len(fc.lists)) {
		fc.lists[i].SetSelected(selected[i])
	}
}

// InitMarked sets the marks of each column, like InitSelected.
func (fc *FileColumns) InitMarked(marked [][]int) {
	for i := range min(len(marked), len(fc.lists)) {
		fc.lists[i].SetMarked(marked[i])
	}
}

// AddColumn appends a column for a directory just entered. If the
// row is already on screen only the new column is laid out.
func (fc *FileColumns) AddColumn(items []event.FileItem, selected int) *FileList {
	fc.syncRow()
	if cur := fc.Current(); cur != nil && fc.detail {
		cur.SetShowDetail(false)
	}
	l := fc.newList(fc.detail)
	l.SetFiles(items)
	l.SetSelected(selected)
	fc.lists = append(fc.lists, l)
	fc.row.Append(l)
	return l
}

// RemoveColumn drops the current column, erasing it, unless it is the
// only one. With replace set the column left current gets items.
func (fc *FileColumns) RemoveColumn(c *runtime.Canvas, items []event.FileItem, replace bool) {
	if len(fc.lists) > 1 {
		fc.syncRow()
		fc.row.RemoveLast(c)
		fc.lists = fc.lists[:len(fc.lists)-1]
		fc.Current().SetShowDetail(fc.detail)
	}
	if !replace {
		return
	}
	if len(fc.lists) == 0 {
		fc.lists = append(fc.lists, fc.newList(fc.detail))
	}
	fc.Current().SetFiles(items)
}

// SetShowDetail switches the current column's form.
func (fc *FileColumns) SetShowDetail(on bool) {
	fc.detail = on
	if cur := fc.Current(); cur != nil {
		cur.SetShowDetail(on)
	}
}

func (fc *FileColumns) Detail() bool {
	return fc.detail
}

// syncRow makes the row's children match the columns.
func (fc *FileColumns) syncRow() {
	if fc.row.Len() == len(fc.lists) {
		return
	}
	fc.row.Reset()
	for _, l := range fc.lists {
		fc.row.Add(l)
	}
}

func (fc *FileColumns) Negotiate(lo, hi runtime.Size) runtime.Size {
	fc.Track(lo, hi)
	fc.row.Reset()
	for _, l := range fc.lists {
		fc.row.Add(l)
	}
	return fc.SetSize(fc.row.Negotiate(lo, hi))
}

func (fc *FileColumns) Place(origin runtime.Point) {
	fc.Base.Place(origin)
	fc.row.Place(origin)
}

func (fc *FileColumns) Paint(c *runtime.Canvas) {
	fc.row.Paint(c)
}

var _ runtime.Widget = (*FileColumns)(nil)
