package panes

import (
	"github.com/odvcencio/filepane/pkg/ui/backend"
	"github.com/odvcencio/filepane/pkg/ui/event"
	"github.com/odvcencio/filepane/pkg/ui/layout"
	"github.com/odvcencio/filepane/pkg/ui/runtime"
	"github.com/odvcencio/filepane/pkg/ui/theme"
	"github.com/odvcencio/filepane/pkg/ui/widgets"
)

// KeyNav spreads "[key] description" hints evenly across a row.
type KeyNav struct {
	delegate
	row   *layout.Flex
	hints []event.KeyHint
	style backend.Style
}

func NewKeyNav(th *theme.Theme) *KeyNav {
	k := &KeyNav{row: layout.NewRow(), style: th.KeyHint}
	k.inner = k.row
	return k
}

// SetHints replaces the hints.
func (k *KeyNav) SetHints(hints []event.KeyHint) {
	k.hints = hints
	k.row.Reset()
	for _, h := range hints {
		k.row.AddFlex(widgets.NewLabel("["+h.Key+"] "+h.Description).WithStyle(k.style), 1)
	}
}

func (k *KeyNav) Hints() []event.KeyHint {
	return k.hints
}

// Clear drops every hint.
func (k *KeyNav) Clear() {
	k.SetHints(nil)
}

func (k *KeyNav) Empty() bool {
	return len(k.hints) == 0
}

var _ runtime.Widget = (*KeyNav)(nil)
