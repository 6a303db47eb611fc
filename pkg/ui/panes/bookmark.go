package panes

import (
	"github.com/odvcencio/filepane/pkg/ui/layout"
	"github.com/odvcencio/filepane/pkg/ui/runtime"
	"github.com/odvcencio/filepane/pkg/ui/theme"
	"github.com/odvcencio/filepane/pkg/ui/widgets"
)

const bookmarkTitle = "BOOKMARKS"

// bookmarkInset is the left plus right padding around the title and
// the items.
const bookmarkInset = 4

// Bookmark is the side panel: a centered title over a rule, then as
// many bookmark names as fit.
type Bookmark struct {
	runtime.Base
	title *widgets.Label
	items []*widgets.Label
	list  *layout.Flex
	main  *layout.Flex
	style *theme.Theme
}

func NewBookmark(th *theme.Theme) *Bookmark {
	b := &Bookmark{
		title: widgets.NewLabel(bookmarkTitle).WithStyle(th.Title),
		list:  layout.NewColumn().SetStretch(true),
		style: th,
	}
	b.main = layout.NewColumn().SetStretch(true).
		Add(layout.NewPadding(layout.NewCenter(b.title)).TopBottom(1).LeftRight(2)).
		Add(widgets.NewHLine().WithStyle(th.Line)).
		Add(layout.NewPadding(b.list).LeftRight(2)).
		AddFlex(widgets.NewSpace(), 1)
	return b
}

// SetBookmarks replaces the listed names.
func (b *Bookmark) SetBookmarks(names []string) {
	b.items = b.items[:0]
	for _, n := range names {
		b.AddBookmark(n)
	}
}

func (b *Bookmark) AddBookmark(name string) {
	b.items = append(b.items, widgets.NewLabel(name).WithStyle(b.style.Bookmark))
}

// Names returns the bookmark names in display order.
func (b *Bookmark) Names() []string {
	out := make([]string, len(b.items))
	for i, l := range b.items {
		out[i] = l.Text()
	}
	return out
}

// Negotiate sizes the panel to its widest entry and lists only the
// items that fit in max.
func (b *Bookmark) Negotiate(lo, hi runtime.Size) runtime.Size {
	b.Track(lo, hi)

	b.list.Reset()
	w := b.title.TextWidth()
	for i, item := range b.items {
		if i >= hi.Height {
			break
		}
		b.list.Add(item)
		w = max(w, item.TextWidth())
	}

	w = min(max(w+bookmarkInset, lo.Width), hi.Width)
	inner := runtime.Size{Width: w, Height: hi.Height}
	return b.SetSize(b.main.Negotiate(lo.Min(inner), inner))
}

func (b *Bookmark) Place(origin runtime.Point) {
	b.Base.Place(origin)
	b.main.Place(origin)
}

func (b *Bookmark) Paint(c *runtime.Canvas) {
	b.main.Paint(c)
}

var _ runtime.Widget = (*Bookmark)(nil)
