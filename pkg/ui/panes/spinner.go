package panes

import (
	"github.com/odvcencio/filepane/pkg/ui/backend"
	"github.com/odvcencio/filepane/pkg/ui/runtime"
	"github.com/odvcencio/filepane/pkg/ui/widgets"
)

const (
	spinnerFrames = "▁▃▄▅▆▇█▇▆▅▄▃▁"
	spinnerIdle   = "☑"
)

// Spinner is the bracketed loading indicator.
type Spinner struct {
	delegate
	label   *widgets.Label
	frames  []rune
	frame   int
	running bool
}

func NewSpinner(style backend.Style) *Spinner {
	s := &Spinner{
		label:  widgets.NewLabel(spinnerIdle).WithStyle(style),
		frames: []rune(spinnerFrames),
	}
	s.inner = NewQuoted(s.label, style)
	return s
}

// Start shows the first animation frame. Starting a running spinner
// does nothing.
func (s *Spinner) Start() {
	if s.running {
		return
	}
	s.running = true
	s.frame = 0
	s.label.SetText(string(s.frames[0]))
}

// Stop returns to the idle glyph.
func (s *Spinner) Stop() {
	s.running = false
	s.label.SetText(spinnerIdle)
}

// Tick advances the animation and reports whether the glyph changed.
func (s *Spinner) Tick() bool {
	if !s.running {
		return false
	}
	s.frame = (s.frame + 1) % len(s.frames)
	s.label.SetText(string(s.frames[s.frame]))
	return true
}

func (s *Spinner) Running() bool {
	return s.running
}

// Glyph returns the glyph currently shown.
func (s *Spinner) Glyph() string {
	return s.label.Text()
}

var _ runtime.Widget = (*Spinner)(nil)
