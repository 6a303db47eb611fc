package panes

import (
	"github.com/odvcencio/filepane/pkg/ui/layout"
	"github.com/odvcencio/filepane/pkg/ui/runtime"
	"github.com/odvcencio/filepane/pkg/ui/theme"
	"github.com/odvcencio/filepane/pkg/ui/widgets"
)

// Prompt is the one-line input on the bottom row: "name: text" with
// the terminal cursor inside the text.
type Prompt struct {
	delegate
	label  *widgets.Label
	input  *widgets.Label
	cursor int
	active bool
}

func NewPrompt(th *theme.Theme) *Prompt {
	p := &Prompt{
		label: widgets.NewLabel("").WithStyle(th.Prompt),
		input: widgets.NewLabel("").WithStyle(th.Text),
	}
	p.inner = layout.NewRow().Add(p.label).Add(p.input)
	return p
}

// Enter opens the prompt with empty input.
func (p *Prompt) Enter(prompt string) {
	p.label.SetText(prompt + ": ")
	p.input.SetText("")
	p.cursor = 0
	p.active = true
}

// Update replaces the input text and moves the cursor to column cursor
// of the text.
func (p *Prompt) Update(text string, cursor int) {
	p.input.SetText(text)
	p.Move(cursor)
}

// Move places the cursor at column cursor of the text, clamped to the
// end of the text.
func (p *Prompt) Move(cursor int) {
	p.cursor = min(max(cursor, 0), p.input.TextWidth())
}

// Quit closes the prompt.
func (p *Prompt) Quit() {
	p.active = false
}

func (p *Prompt) Active() bool {
	return p.active
}

func (p *Prompt) Text() string {
	return p.input.Text()
}

func (p *Prompt) Cursor() int {
	return p.cursor
}

// Paint draws the prompt and requests the terminal cursor at the input
// position, kept inside the prompt's rect.
func (p *Prompt) Paint(c *runtime.Canvas) {
	p.delegate.Paint(c)
	r := p.Rect()
	if !p.active || r.Empty() {
		return
	}
	origin := p.input.Rect().Origin()
	x := min(origin.X+p.cursor, r.TopRight().X)
	c.ShowCursor(runtime.Point{X: x, Y: origin.Y})
}

var _ runtime.Widget = (*Prompt)(nil)
