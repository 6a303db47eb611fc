package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/filepane/pkg/errors"
	"github.com/odvcencio/filepane/pkg/ui/event"
	"github.com/odvcencio/filepane/pkg/ui/terminal"
)

type browserFixture struct {
	root    string
	mb      *event.Mailbox
	b       *Browser
	chdirTo []string
}

func newFixture(t *testing.T, tabs int) *browserFixture {
	t.Helper()
	f := &browserFixture{root: makeTree(t), mb: event.NewMailbox(256)}
	f.b = newBrowser(f.mb.Sender(), tabs, false, nil)
	f.b.OnChdir(func(dir string) { f.chdirTo = append(f.chdirTo, dir) })
	require.NoError(t, f.b.Init(f.root))
	f.drain()
	return f
}

// drain returns every body sent so far.
func (f *browserFixture) drain() []event.Body {
	var out []event.Body
	for {
		select {
		case b := <-f.mb.Receive():
			out = append(out, b)
		default:
			return out
		}
	}
}

func (f *browserFixture) key(t *testing.T, ev terminal.KeyEvent) []event.Body {
	t.Helper()
	quit, err := f.b.HandleKey(ev)
	require.NoError(t, err)
	require.False(t, quit)
	return f.drain()
}

func (f *browserFixture) keys(t *testing.T, rs ...rune) []event.Body {
	t.Helper()
	var out []event.Body
	for _, r := range rs {
		out = append(out, f.key(t, runeKey(r))...)
	}
	return out
}

func flatten(bodies []event.Body) []event.UIEvent {
	var out []event.UIEvent
	for _, b := range bodies {
		out = append(out, b.Events...)
	}
	return out
}

func TestBrowser_InitSendsOneBracket(t *testing.T) {
	root := makeTree(t)
	mb := event.NewMailbox(64)
	b := newBrowser(mb.Sender(), 2, true, nil)
	require.NoError(t, b.Init(root))

	f := &browserFixture{mb: mb}
	bodies := f.drain()
	require.NotEmpty(t, bodies)
	for _, body := range bodies {
		assert.Equal(t, event.Queue, body.Mode)
	}
	assert.True(t, bodies[len(bodies)-1].ClosesQueue())

	evs := flatten(bodies)
	assert.Contains(t, evs, event.SetPath{Path: root})
	assert.Contains(t, evs, event.SetShowDetail{Show: true})
	assert.Contains(t, evs, event.InitSelect{Selected: []int{0}})
	for _, ev := range evs {
		if ic, ok := ev.(event.InitColumn); ok {
			require.Len(t, ic.Columns, 1)
			assert.Equal(t, []string{"Docs", "src", "a.txt", "b.txt"}, names(ic.Columns[0]))
		}
	}
	assert.Equal(t, root, b.Dir())
}

func TestBrowser_InitMissingDir(t *testing.T) {
	b := newBrowser(event.NewMailbox(8).Sender(), 1, false, nil)
	assert.Error(t, b.Init(filepath.Join(t.TempDir(), "gone")))
}

func TestBrowser_Move(t *testing.T) {
	f := newFixture(t, 1)

	assert.Equal(t, []event.UIEvent{event.SetSelect{Index: 1}}, flatten(f.keys(t, 'j')))
	assert.Equal(t, []event.UIEvent{event.SetSelect{Index: 3}}, flatten(f.keys(t, 'G')))
	assert.Empty(t, f.keys(t, 'j'), "moving past the end sends nothing")
	assert.Equal(t, []event.UIEvent{event.SetSelect{Index: 0}}, flatten(f.keys(t, 'g')))
	assert.Empty(t, f.key(t, terminal.KeyEvent{Key: terminal.KeyUp}))
}

func TestBrowser_EnterAndBack(t *testing.T) {
	f := newFixture(t, 1)
	src := filepath.Join(f.root, "src")

	f.keys(t, 'j')
	bodies := f.keys(t, 'l')
	require.Len(t, bodies, 1)
	assert.Equal(t, event.Batch, bodies[0].Mode)
	assert.Equal(t, []event.UIEvent{
		event.AddFileList{Items: bodies[0].Events[0].(event.AddFileList).Items, Selected: 0},
		event.SetPath{Path: src},
	}, bodies[0].Events)
	assert.Equal(t, []string{"main.go"}, names(bodies[0].Events[0].(event.AddFileList).Items))
	assert.Equal(t, src, f.b.Dir())

	bodies = f.keys(t, 'h')
	assert.Equal(t, []event.UIEvent{event.RemoveFileList{}, event.SetPath{Path: f.root}}, flatten(bodies))
	assert.Equal(t, []string{src, f.root}, f.chdirTo)
}

func TestBrowser_EnterEmptyDir(t *testing.T) {
	f := newFixture(t, 1)

	evs := flatten(f.keys(t, 'l'))
	require.Len(t, evs, 2)
	add := evs[0].(event.AddFileList)
	assert.Empty(t, add.Items)
	assert.Equal(t, event.NoSelection, add.Selected)
}

func TestBrowser_EnterFileShowsMessage(t *testing.T) {
	f := newFixture(t, 1)

	f.keys(t, 'G')
	evs := flatten(f.keys(t, 'l'))
	assert.Equal(t, []event.UIEvent{event.Message{Text: "b.txt  2.0 kB"}}, evs)
}

func TestBrowser_BackFromRootColumnOpensParent(t *testing.T) {
	f := newFixture(t, 1)
	parent := filepath.Dir(f.root)

	evs := flatten(f.keys(t, 'h'))
	require.Len(t, evs, 3)
	rm := evs[0].(event.RemoveFileList)
	assert.True(t, rm.Replace)
	want := indexOf(rm.Items, filepath.Base(f.root))
	require.GreaterOrEqual(t, want, 0)
	assert.Equal(t, event.SetSelect{Index: want}, evs[1])
	assert.Equal(t, event.SetPath{Path: parent}, evs[2])
}

func TestBrowser_Mark(t *testing.T) {
	f := newFixture(t, 1)

	f.keys(t, 'j', 'j')
	evs := flatten(f.keys(t, ' '))
	assert.Equal(t, []event.UIEvent{event.SetMark{Indices: []int{2}}, event.SetSelect{Index: 3}}, evs)

	evs = flatten(f.keys(t, ' '))
	assert.Equal(t, []event.UIEvent{event.SetMark{Indices: []int{2, 3}}, event.SetSelect{Index: 3}}, evs)

	f.keys(t, 'k')
	evs = flatten(f.keys(t, ' '))
	assert.Equal(t, event.SetMark{Indices: []int{3}}, evs[0])
}

func TestBrowser_Filter(t *testing.T) {
	f := newFixture(t, 1)

	evs := flatten(f.keys(t, '/'))
	assert.Equal(t, []event.UIEvent{
		event.InputEnter{Prompt: "filter"},
		event.InputUpdate{Text: "", Cursor: 0},
	}, evs)

	evs = flatten(f.keys(t, 't', 'x'))
	assert.Equal(t, []event.UIEvent{
		event.InputUpdate{Text: "t", Cursor: 1},
		event.InputUpdate{Text: "tx", Cursor: 2},
	}, evs)

	evs = flatten(f.key(t, terminal.KeyEvent{Key: terminal.KeyLeft}))
	assert.Equal(t, []event.UIEvent{event.InputMove{Cursor: 1}}, evs)

	evs = flatten(f.key(t, terminal.KeyEvent{Key: terminal.KeyEnter}))
	require.Len(t, evs, 5)
	assert.Equal(t, event.InputQuit{}, evs[0])
	assert.Equal(t, []string{"a.txt", "b.txt"}, names(evs[1].(event.RefreshFileItem).Items))
	assert.Equal(t, event.SetSelect{Index: 0}, evs[2])
	assert.Equal(t, event.Message{Text: `filter "tx": 2 of 4`}, evs[4])

	// Keys go back to normal mode.
	assert.Equal(t, []event.UIEvent{event.SetSelect{Index: 1}}, flatten(f.keys(t, 'j')))
}

func TestBrowser_FilterEditing(t *testing.T) {
	f := newFixture(t, 1)
	f.keys(t, '/')

	evs := flatten(f.keys(t, '世', 'a'))
	assert.Equal(t, event.InputUpdate{Text: "世a", Cursor: 3}, evs[1])

	evs = flatten(f.key(t, terminal.KeyEvent{Key: terminal.KeyHome}))
	assert.Equal(t, []event.UIEvent{event.InputMove{Cursor: 0}}, evs)
	assert.Empty(t, f.key(t, terminal.KeyEvent{Key: terminal.KeyBackspace}))

	evs = flatten(f.key(t, terminal.KeyEvent{Key: terminal.KeyDelete}))
	assert.Equal(t, []event.UIEvent{event.InputUpdate{Text: "a", Cursor: 0}}, evs)

	evs = flatten(f.key(t, terminal.KeyEvent{Key: terminal.KeyEscape}))
	assert.Equal(t, []event.UIEvent{event.InputQuit{}}, evs)
}

func TestBrowser_SwitchTab(t *testing.T) {
	f := newFixture(t, 3)

	bodies := f.keys(t, '2')
	require.NotEmpty(t, bodies)
	assert.True(t, bodies[len(bodies)-1].ClosesQueue())
	assert.Equal(t, event.SwitchTab{Index: 1}, bodies[0].Events[0])

	assert.Empty(t, f.keys(t, '2'), "switching to the active tab does nothing")
	assert.Empty(t, f.keys(t, '9'), "tabs past the count are ignored")
}

func TestBrowser_TabsKeepTheirOwnColumns(t *testing.T) {
	f := newFixture(t, 2)

	f.keys(t, 'j', 'l')
	f.keys(t, '2')
	assert.Equal(t, f.root, f.b.Dir())
	f.keys(t, '1')
	assert.Equal(t, filepath.Join(f.root, "src"), f.b.Dir())
}

func TestBrowser_HiddenAndDetail(t *testing.T) {
	f := newFixture(t, 1)

	assert.Equal(t, []event.UIEvent{event.SetShowDetail{Show: true}}, flatten(f.keys(t, 'i')))

	for _, ev := range flatten(f.keys(t, '.')) {
		if ic, ok := ev.(event.InitColumn); ok {
			assert.Contains(t, names(ic.Columns[0]), ".hidden")
		}
	}
}

func TestBrowser_Bookmark(t *testing.T) {
	f := newFixture(t, 1)

	evs := flatten(f.keys(t, 'b'))
	assert.Equal(t, event.SetBookmark{Names: []string{f.root}}, evs[0])

	evs = flatten(f.keys(t, 'b'))
	assert.Equal(t, event.SetBookmark{Names: []string{f.root}}, evs[0], "bookmarks are not duplicated")
}

func TestBrowser_Help(t *testing.T) {
	f := newFixture(t, 1)

	evs := flatten(f.keys(t, '?'))
	require.Len(t, evs, 1)
	assert.Equal(t, keyHints(), evs[0].(event.ShowKeyNav).Hints)
}

func TestBrowser_Quit(t *testing.T) {
	f := newFixture(t, 1)

	quit, err := f.b.HandleKey(runeKey('q'))
	require.NoError(t, err)
	assert.True(t, quit)

	f.keys(t, '/')
	quit, err = f.b.HandleKey(terminal.KeyEvent{Key: terminal.KeyCtrlC})
	require.NoError(t, err)
	assert.True(t, quit)
}

func TestBrowser_Refresh(t *testing.T) {
	f := newFixture(t, 1)
	f.keys(t, 'j')
	require.NoError(t, os.WriteFile(filepath.Join(f.root, "0.txt"), nil, 0o644))

	require.NoError(t, f.b.Refresh(f.root))
	bodies := f.drain()
	require.Len(t, bodies, 2)
	assert.Equal(t, []event.UIEvent{event.StartLoading{}}, bodies[0].Events)

	evs := bodies[1].Events
	assert.Equal(t, []string{"Docs", "src", "0.txt", "a.txt", "b.txt"}, names(evs[0].(event.RefreshFileItem).Items))
	assert.Equal(t, event.SetSelect{Index: 1}, evs[1], "selection follows the name")
	assert.Equal(t, event.StopLoading{}, evs[3])

	require.NoError(t, f.b.Refresh(filepath.Join(f.root, "elsewhere")))
	assert.Empty(t, f.drain())
}

func TestBrowser_ClosedMailbox(t *testing.T) {
	f := newFixture(t, 1)
	f.mb.Close()

	_, err := f.b.HandleKey(runeKey('j'))
	assert.True(t, errors.IsCode(err, errors.ErrCodeMailboxClosed))
}
