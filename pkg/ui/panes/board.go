package panes

import (
	"github.com/odvcencio/filepane/pkg/ui/layout"
	"github.com/odvcencio/filepane/pkg/ui/runtime"
	"github.com/odvcencio/filepane/pkg/ui/theme"
	"github.com/odvcencio/filepane/pkg/ui/widgets"
)

// Board is the middle of the screen: a rule across the top, the
// bookmark panel, a double separator and the file columns.
type Board struct {
	delegate
	bookmark *Bookmark
	columns  *FileColumns
}

func NewBoard(columnWidth int, detail bool, th *theme.Theme) *Board {
	b := &Board{
		bookmark: NewBookmark(th),
		columns:  NewFileColumns(columnWidth, detail, th),
	}
	split := NewCornerLine(widgets.DoubleVertical, '╥', widgets.SingleHorizontal, th.Line)
	body := layout.NewRow().
		Add(b.bookmark).
		Add(layout.NewSizedBox(split).MaxHeight()).
		Add(b.columns)
	b.inner = layout.NewColumn().
		Add(layout.NewSizedBox(widgets.NewHLine().WithStyle(th.Line)).MaxWidth()).
		AddFlex(body, 1)
	return b
}

func (b *Board) Bookmark() *Bookmark {
	return b.bookmark
}

func (b *Board) Columns() *FileColumns {
	return b.columns
}

var _ runtime.Widget = (*Board)(nil)
