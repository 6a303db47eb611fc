package panes

import (
	"github.com/odvcencio/filepane/pkg/ui/layout"
	"github.com/odvcencio/filepane/pkg/ui/runtime"
	"github.com/odvcencio/filepane/pkg/ui/theme"
	"github.com/odvcencio/filepane/pkg/ui/widgets"
)

// Statusbar is the full-width colored row with the spinner and a
// status message.
type Statusbar struct {
	delegate
	spinner *Spinner
	text    *widgets.Label
}

func NewStatusbar(th *theme.Theme) *Statusbar {
	s := &Statusbar{
		spinner: NewSpinner(th.Spinner),
		text:    widgets.NewLabel("").WithStyle(th.StatusBar),
	}
	row := layout.NewRow().Add(s.spinner).Add(gap(1)).Add(s.text)
	s.inner = layout.NewBackground(layout.NewSizedBox(row).MaxWidth(), th.Colors.StatusBG)
	return s
}

func (s *Statusbar) SetText(text string) {
	s.text.SetText(text)
}

func (s *Statusbar) Text() string {
	return s.text.Text()
}

// SetSpin starts or stops the spinner.
func (s *Statusbar) SetSpin(on bool) {
	if on {
		s.spinner.Start()
	} else {
		s.spinner.Stop()
	}
}

func (s *Statusbar) Spinner() *Spinner {
	return s.spinner
}

var _ runtime.Widget = (*Statusbar)(nil)
