package panes

import (
	"strconv"

	"github.com/odvcencio/filepane/pkg/ui/layout"
	"github.com/odvcencio/filepane/pkg/ui/runtime"
	"github.com/odvcencio/filepane/pkg/ui/theme"
	"github.com/odvcencio/filepane/pkg/ui/widgets"
)

// Tab is the bracketed row of numbered tabs. Exactly one is active.
type Tab struct {
	delegate
	items  []*widgets.Label
	active int
	theme  *theme.Theme
}

// NewTab creates count tabs numbered from 1 with the first active.
// count is raised to 1.
func NewTab(count int, th *theme.Theme) *Tab {
	count = max(count, 1)
	t := &Tab{theme: th}
	row := layout.NewRow()
	for i := 1; i <= count; i++ {
		l := widgets.NewLabel(" " + strconv.Itoa(i) + " ").WithStyle(th.TabInactive)
		t.items = append(t.items, l)
		row.Add(l)
	}
	t.items[0].SetStyle(th.TabActive)
	t.inner = NewQuoted(row, th.Bracket)
	return t
}

// SetActive makes tab i active. Out-of-range indices are ignored and
// reported false.
func (t *Tab) SetActive(i int) bool {
	if i < 0 || i >= len(t.items) {
		return false
	}
	t.items[t.active].ResetStyle()
	t.items[i].SetStyle(t.theme.TabActive)
	t.active = i
	return true
}

// Active returns the active tab index.
func (t *Tab) Active() int {
	return t.active
}

// Len returns the tab count.
func (t *Tab) Len() int {
	return len(t.items)
}

var _ runtime.Widget = (*Tab)(nil)
