package panes

import (
	"github.com/odvcencio/filepane/pkg/ui/runtime"
	"github.com/odvcencio/filepane/pkg/ui/theme"
	"github.com/odvcencio/filepane/pkg/ui/widgets"
)

// PathIndicator shows the current directory in brackets.
type PathIndicator struct {
	delegate
	label *widgets.Label
}

func NewPathIndicator(path string, th *theme.Theme) *PathIndicator {
	p := &PathIndicator{label: widgets.NewLabel(path).WithStyle(th.Directory)}
	p.inner = NewQuoted(p.label, th.Bracket)
	return p
}

func (p *PathIndicator) SetPath(path string) {
	p.label.SetText(path)
}

func (p *PathIndicator) Path() string {
	return p.label.Text()
}

var _ runtime.Widget = (*PathIndicator)(nil)
