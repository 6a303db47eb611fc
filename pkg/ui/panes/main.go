// Package panes builds filepane's screen from the layout containers:
// tab bar, path indicator, bookmark panel, file columns, status bar
// and the bottom overlay row, and applies UI events to them.
package panes

import (
	"github.com/odvcencio/filepane/pkg/ui/event"
	"github.com/odvcencio/filepane/pkg/ui/layout"
	"github.com/odvcencio/filepane/pkg/ui/runtime"
	"github.com/odvcencio/filepane/pkg/ui/theme"
	"github.com/odvcencio/filepane/pkg/ui/widgets"
)

// Options configures the screen tree.
type Options struct {
	Tabs        int
	ColumnWidth int
	ShowDetail  bool
	Theme       *theme.Theme
}

type overlay int

const (
	overlayNone overlay = iota
	overlayKeyNav
	overlayPrompt
)

// Main is the whole screen. It is owned by a single goroutine.
type Main struct {
	root      *layout.Root
	tab       *Tab
	path      *PathIndicator
	board     *Board
	statusbar *Statusbar
	prompt    *Prompt
	keynav    *KeyNav
	bottom    *layout.SizedBox

	overlay overlay
	hold    int
}

// NewMain builds the tree for a screen of the given size.
func NewMain(opts Options, screen runtime.Size) *Main {
	th := opts.Theme
	if th == nil {
		th = theme.Default()
	}
	m := &Main{
		tab:       NewTab(opts.Tabs, th),
		path:      NewPathIndicator("", th),
		board:     NewBoard(opts.ColumnWidth, opts.ShowDetail, th),
		statusbar: NewStatusbar(th),
		prompt:    NewPrompt(th),
		keynav:    NewKeyNav(th),
	}
	m.bottom = layout.NewSizedBox(nil).MaxWidth().Height(1)

	top := layout.NewRow().
		Add(m.tab).
		Add(m.path).
		AddFlex(widgets.NewSpace(), 1).
		Add(widgets.NewLabel("[?]").WithStyle(th.Bracket))

	tree := layout.NewColumn().
		Add(layout.NewPadding(top).TopBottom(1)).
		AddFlex(layout.NewSizedBox(m.board).Max(), 1).
		Add(m.statusbar).
		Add(m.bottom)

	m.root = layout.NewRoot(tree, screen)
	return m
}

func (m *Main) Root() *layout.Root {
	return m.root
}

func (m *Main) Tab() *Tab {
	return m.tab
}

func (m *Main) Path() *PathIndicator {
	return m.path
}

func (m *Main) Board() *Board {
	return m.board
}

func (m *Main) Statusbar() *Statusbar {
	return m.statusbar
}

func (m *Main) Prompt() *Prompt {
	return m.prompt
}

func (m *Main) KeyNav() *KeyNav {
	return m.keynav
}

// Columns is shorthand for Board().Columns().
func (m *Main) Columns() *FileColumns {
	return m.board.columns
}

// Resize changes the screen size used by the next Layout.
func (m *Main) Resize(s runtime.Size) {
	m.root.Resize(s)
}

// Apply updates the tree for one event. c is the canvas the tree was
// last painted into; only removals draw into it directly. It reports
// false for events the screen does not handle.
func (m *Main) Apply(c *runtime.Canvas, ev event.UIEvent) bool {
	cols := m.board.columns
	switch ev := ev.(type) {
	case event.SwitchTab:
		m.tab.SetActive(ev.Index)
	case event.SetPath:
		m.path.SetPath(ev.Path)
	case event.InitColumn:
		cols.InitColumns(ev.Columns)
	case event.InitSelect:
		cols.InitSelected(ev.Selected)
	case event.InitMark:
		cols.InitMarked(ev.Marked)
	case event.RefreshFileItem:
		if cols.Current() == nil {
			cols.InitColumns([][]event.FileItem{ev.Items})
		} else {
			cols.Current().SetFiles(ev.Items)
		}
	case event.SetSelect:
		if cur := cols.Current(); cur != nil {
			cur.SetSelected(ev.Index)
		}
	case event.SetMark:
		if cur := cols.Current(); cur != nil {
			cur.SetMarked(ev.Indices)
		}
	case event.AddFileList:
		cols.AddColumn(ev.Items, ev.Selected)
	case event.RemoveFileList:
		cols.RemoveColumn(c, ev.Items, ev.Replace)
	case event.ShowKeyNav:
		m.showKeyNav(ev.Hints)
	case event.InputEnter:
		m.prompt.Enter(ev.Prompt)
		m.keynav.Clear()
		m.setOverlay(overlayPrompt)
	case event.InputUpdate:
		m.prompt.Update(ev.Text, ev.Cursor)
	case event.InputMove:
		m.prompt.Move(ev.Cursor)
	case event.InputQuit:
		m.prompt.Quit()
		m.setOverlay(overlayNone)
	case event.Message:
		m.statusbar.SetText(ev.Text)
	case event.SetShowDetail:
		cols.SetShowDetail(ev.Show)
	case event.SetBookmark:
		m.board.bookmark.SetBookmarks(ev.Names)
	case event.StartLoading:
		m.statusbar.SetSpin(true)
	case event.StopLoading:
		m.statusbar.SetSpin(false)
	case event.Resize:
		m.Resize(runtime.Size{Width: ev.Width, Height: ev.Height})
	case event.EndQueue:
	default:
		return false
	}
	return true
}

// showKeyNav puts hints on the bottom row for one frame. It does
// nothing while the prompt is open.
func (m *Main) showKeyNav(hints []event.KeyHint) {
	if m.overlay == overlayPrompt {
		return
	}
	if len(hints) == 0 {
		m.keynav.Clear()
		m.setOverlay(overlayNone)
		return
	}
	m.keynav.SetHints(hints)
	m.hold = 1
	m.setOverlay(overlayKeyNav)
}

func (m *Main) setOverlay(o overlay) {
	m.overlay = o
	switch o {
	case overlayKeyNav:
		m.bottom.SetChild(m.keynav)
	case overlayPrompt:
		m.bottom.SetChild(m.prompt)
	default:
		m.hold = 0
		m.bottom.SetChild(nil)
	}
}

// BeforeFrame expires the key hints: they survive the frame that
// draws them and are gone by the next one.
func (m *Main) BeforeFrame() {
	if m.overlay != overlayKeyNav {
		return
	}
	if m.hold > 0 {
		m.hold--
		return
	}
	m.keynav.Clear()
	m.setOverlay(overlayNone)
}

// KeyNavVisible reports whether the hints are on the bottom row.
func (m *Main) KeyNavVisible() bool {
	return m.overlay == overlayKeyNav
}

// Tick advances the spinner and reports whether anything changed.
func (m *Main) Tick() bool {
	return m.statusbar.spinner.Tick()
}

// Loading reports whether the spinner is running.
func (m *Main) Loading() bool {
	return m.statusbar.spinner.Running()
}

// Layout negotiates and places the whole tree at the screen size.
func (m *Main) Layout() {
	m.root.Layout()
}

// Paint draws the tree. The cursor stays hidden unless the prompt
// asks for it.
func (m *Main) Paint(c *runtime.Canvas) {
	c.HideCursor()
	m.root.Paint(c)
}
