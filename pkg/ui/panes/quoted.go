package panes

import (
	"github.com/odvcencio/filepane/pkg/ui/backend"
	"github.com/odvcencio/filepane/pkg/ui/layout"
	"github.com/odvcencio/filepane/pkg/ui/runtime"
	"github.com/odvcencio/filepane/pkg/ui/widgets"
)

// Quoted draws its child between square brackets.
type Quoted struct {
	delegate
	open, close *widgets.Label
}

// NewQuoted wraps child in brackets drawn with style.
func NewQuoted(child runtime.Widget, style backend.Style) *Quoted {
	q := &Quoted{
		open:  widgets.NewLabel("[").WithStyle(style),
		close: widgets.NewLabel("]").WithStyle(style),
	}
	q.inner = layout.NewRow().Add(q.open).Add(child).Add(q.close)
	return q
}

// SetBracketStyle recolors both brackets.
func (q *Quoted) SetBracketStyle(style backend.Style) {
	q.open.SetStyle(style)
	q.close.SetStyle(style)
}

var _ runtime.Widget = (*Quoted)(nil)
