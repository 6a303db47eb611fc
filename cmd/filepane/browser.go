package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/odvcencio/filepane/pkg/ui/event"
	"github.com/odvcencio/filepane/pkg/ui/runtime"
	"github.com/odvcencio/filepane/pkg/ui/terminal"
)

// column is one directory listing in the Miller view.
type column struct {
	dir      string
	all      []event.FileItem
	items    []event.FileItem
	selected int
	marked   map[string]bool
	filter   string
}

func newColumn(dir string, all []event.FileItem) *column {
	c := &column{dir: dir, all: all, marked: map[string]bool{}}
	c.applyFilter()
	return c
}

// applyFilter recomputes the visible rows, keeping the selected name
// when it is still visible.
func (c *column) applyFilter() {
	prev := ""
	if c.selected >= 0 && c.selected < len(c.items) {
		prev = c.items[c.selected].Name
	}

	needle := fold(c.filter)
	c.items = c.items[:0:0]
	for _, it := range c.all {
		if needle == "" || strings.Contains(fold(it.Name), needle) {
			c.items = append(c.items, it)
		}
	}

	switch {
	case len(c.items) == 0:
		c.selected = event.NoSelection
	case prev != "" && indexOf(c.items, prev) >= 0:
		c.selected = indexOf(c.items, prev)
	default:
		c.selected = min(max(c.selected, 0), len(c.items)-1)
	}
}

func (c *column) markIndices() []int {
	var out []int
	for i, it := range c.items {
		if c.marked[it.Name] {
			out = append(out, i)
		}
	}
	return out
}

func (c *column) current() (event.FileItem, bool) {
	if c.selected < 0 || c.selected >= len(c.items) {
		return event.FileItem{}, false
	}
	return c.items[c.selected], true
}

type tab struct {
	columns []*column
}

func (t *tab) last() *column {
	return t.columns[len(t.columns)-1]
}

// input is the filter prompt's edit state. cursor indexes runes.
type input struct {
	text   []rune
	cursor int
}

// Browser is the demo keyboard model. It keeps its own copy of what is
// on screen and tells the engine about every change through the
// mailbox. Key handling and directory refreshes may run on different
// goroutines.
type Browser struct {
	mu  sync.Mutex
	tx  event.Sender
	log *slog.Logger

	tabs      []*tab
	active    int
	detail    bool
	hidden    bool
	bookmarks []string
	prompt    *input

	onChdir func(dir string)
}

func newBrowser(tx event.Sender, tabs int, detail bool, log *slog.Logger) *Browser {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Browser{
		tx:     tx,
		log:    log.With(slog.String("component", "browser")),
		tabs:   make([]*tab, max(tabs, 1)),
		detail: detail,
	}
}

// OnChdir registers fn to hear the directory now on display.
func (b *Browser) OnChdir(fn func(dir string)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onChdir = fn
}

// Init opens start in every tab and draws the first state in one
// bracket.
func (b *Browser) Init(start string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	abs, err := filepath.Abs(start)
	if err != nil {
		return err
	}
	items, err := readDir(abs, b.hidden)
	if err != nil {
		return err
	}
	for i := range b.tabs {
		b.tabs[i] = &tab{columns: []*column{newColumn(abs, slices.Clone(items))}}
	}

	if err := b.tx.Queue(event.SetBookmark{Names: b.bookmarks}); err != nil {
		return err
	}
	return b.sendState()
}

// Dir returns the directory of the current column.
func (b *Browser) Dir() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cur().dir
}

func (b *Browser) tab() *tab {
	return b.tabs[b.active]
}

func (b *Browser) cur() *column {
	return b.tab().last()
}

func (b *Browser) chdir() {
	if b.onChdir != nil {
		b.onChdir(b.cur().dir)
	}
}

// sendState redraws the whole active tab as one bracketed update.
func (b *Browser) sendState() error {
	t := b.tab()
	cols := make([][]event.FileItem, len(t.columns))
	sel := make([]int, len(t.columns))
	marks := make([][]int, len(t.columns))
	for i, c := range t.columns {
		cols[i] = c.items
		sel[i] = c.selected
		marks[i] = c.markIndices()
	}

	steps := []event.UIEvent{
		event.SwitchTab{Index: b.active},
		event.SetPath{Path: b.cur().dir},
		event.SetShowDetail{Show: b.detail},
		event.InitColumn{Columns: cols},
		event.InitSelect{Selected: sel},
		event.InitMark{Marked: marks},
	}
	for _, ev := range steps {
		if err := b.tx.Queue(ev); err != nil {
			return err
		}
	}
	return b.tx.EndQueue()
}

// HandleKey applies one key press and reports whether the user asked
// to quit. Errors are delivery failures; filesystem problems are shown
// in the status bar instead.
func (b *Browser) HandleKey(ev terminal.KeyEvent) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.prompt != nil {
		return b.promptKey(ev)
	}

	act, idx := lookup(ev)
	switch act {
	case actionQuit:
		return true, nil
	case actionDown:
		return false, b.moveTo(b.cur().selected + 1)
	case actionUp:
		return false, b.moveTo(b.cur().selected - 1)
	case actionTop:
		return false, b.moveTo(0)
	case actionBottom:
		return false, b.moveTo(len(b.cur().items) - 1)
	case actionEnter:
		return false, b.enter()
	case actionBack:
		return false, b.back()
	case actionMark:
		return false, b.toggleMark()
	case actionDetail:
		b.detail = !b.detail
		return false, b.tx.Send(event.SetShowDetail{Show: b.detail})
	case actionHidden:
		b.hidden = !b.hidden
		return false, b.reloadTab()
	case actionBookmark:
		return false, b.bookmark()
	case actionFilter:
		b.prompt = &input{text: []rune(b.cur().filter)}
		b.prompt.cursor = len(b.prompt.text)
		return false, b.tx.Batch(event.InputEnter{Prompt: "filter"}, b.promptUpdate())
	case actionRefresh:
		return false, b.reload(b.cur())
	case actionHelp:
		return false, b.tx.Send(event.ShowKeyNav{Hints: keyHints()})
	case actionTab:
		return false, b.switchTab(idx)
	}
	return false, nil
}

func (b *Browser) moveTo(i int) error {
	c := b.cur()
	if len(c.items) == 0 {
		return nil
	}
	i = min(max(i, 0), len(c.items)-1)
	if i == c.selected {
		return nil
	}
	c.selected = i
	return b.tx.Send(event.SetSelect{Index: i})
}

func (b *Browser) message(format string, args ...any) error {
	return b.tx.Send(event.Message{Text: fmt.Sprintf(format, args...)})
}

func (b *Browser) enter() error {
	c := b.cur()
	item, ok := c.current()
	if !ok {
		return nil
	}
	if !item.IsDir {
		return b.message("%s  %s", item.Name, item.Size)
	}

	dir := filepath.Join(c.dir, item.Name)
	items, err := readDir(dir, b.hidden)
	if err != nil {
		b.log.Warn("open directory", slog.String("dir", dir), slog.Any("error", err))
		return b.message("cannot open %s: %v", item.Name, err)
	}

	next := newColumn(dir, items)
	t := b.tab()
	t.columns = append(t.columns, next)
	b.chdir()
	return b.tx.Batch(
		event.AddFileList{Items: next.items, Selected: next.selected},
		event.SetPath{Path: dir},
	)
}

func (b *Browser) back() error {
	t := b.tab()
	if len(t.columns) > 1 {
		t.columns = t.columns[:len(t.columns)-1]
		b.chdir()
		return b.tx.Batch(
			event.RemoveFileList{},
			event.SetPath{Path: b.cur().dir},
		)
	}

	c := b.cur()
	parent := filepath.Dir(c.dir)
	if parent == c.dir {
		return nil
	}
	items, err := readDir(parent, b.hidden)
	if err != nil {
		b.log.Warn("open parent", slog.String("dir", parent), slog.Any("error", err))
		return b.message("cannot open %s: %v", parent, err)
	}

	up := newColumn(parent, items)
	if i := indexOf(up.items, filepath.Base(c.dir)); i >= 0 {
		up.selected = i
	}
	t.columns[0] = up
	b.chdir()
	return b.tx.Batch(
		event.RemoveFileList{Items: up.items, Replace: true},
		event.SetSelect{Index: up.selected},
		event.SetPath{Path: parent},
	)
}

func (b *Browser) toggleMark() error {
	c := b.cur()
	item, ok := c.current()
	if !ok {
		return nil
	}
	if c.marked[item.Name] {
		delete(c.marked, item.Name)
	} else {
		c.marked[item.Name] = true
	}
	if c.selected < len(c.items)-1 {
		c.selected++
	}
	return b.tx.Batch(
		event.SetMark{Indices: c.markIndices()},
		event.SetSelect{Index: c.selected},
	)
}

func (b *Browser) bookmark() error {
	dir := b.cur().dir
	if !slices.Contains(b.bookmarks, dir) {
		b.bookmarks = append(b.bookmarks, dir)
	}
	return b.tx.Batch(
		event.SetBookmark{Names: slices.Clone(b.bookmarks)},
		event.Message{Text: "bookmarked " + dir},
	)
}

func (b *Browser) switchTab(i int) error {
	if i < 0 || i >= len(b.tabs) || i == b.active {
		return nil
	}
	b.active = i
	b.chdir()
	return b.sendState()
}

// reload re-reads c from disk, keeping selection, marks and filter by
// name. The spinner runs while the directory is read.
func (b *Browser) reload(c *column) error {
	if err := b.tx.StartLoading(); err != nil {
		return err
	}
	all, err := readDir(c.dir, b.hidden)
	if err != nil {
		b.log.Warn("reload directory", slog.String("dir", c.dir), slog.Any("error", err))
		return b.tx.Batch(
			event.StopLoading{},
			event.Message{Text: fmt.Sprintf("cannot read %s: %v", c.dir, err)},
		)
	}
	c.all = all
	for name := range c.marked {
		if indexOf(all, name) < 0 {
			delete(c.marked, name)
		}
	}
	c.applyFilter()

	if c != b.cur() {
		if err := b.sendState(); err != nil {
			return err
		}
		return b.tx.Send(event.StopLoading{})
	}
	return b.tx.Batch(
		event.RefreshFileItem{Items: c.items},
		event.SetSelect{Index: c.selected},
		event.SetMark{Indices: c.markIndices()},
		event.StopLoading{},
	)
}

// reloadTab re-reads every column of the active tab.
func (b *Browser) reloadTab() error {
	for _, c := range b.tab().columns {
		all, err := readDir(c.dir, b.hidden)
		if err != nil {
			b.log.Warn("reload directory", slog.String("dir", c.dir), slog.Any("error", err))
			continue
		}
		c.all = all
		c.applyFilter()
	}
	return b.sendState()
}

// Refresh reloads the columns of the active tab that show dir. Called
// when the directory changes on disk.
func (b *Browser) Refresh(dir string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, c := range b.tab().columns {
		if c.dir == dir {
			if err := b.reload(c); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *Browser) promptUpdate() event.UIEvent {
	p := b.prompt
	return event.InputUpdate{
		Text:   string(p.text),
		Cursor: runtime.StringWidth(string(p.text[:p.cursor])),
	}
}

func (b *Browser) promptMove() event.UIEvent {
	p := b.prompt
	return event.InputMove{Cursor: runtime.StringWidth(string(p.text[:p.cursor]))}
}

func (b *Browser) promptKey(ev terminal.KeyEvent) (bool, error) {
	p := b.prompt
	switch ev.Key {
	case terminal.KeyCtrlC:
		return true, nil
	case terminal.KeyEscape:
		b.prompt = nil
		return false, b.tx.Send(event.InputQuit{})
	case terminal.KeyEnter:
		b.prompt = nil
		return false, b.applyFilter(string(p.text))
	case terminal.KeyBackspace:
		if p.cursor == 0 {
			return false, nil
		}
		p.text = slices.Delete(p.text, p.cursor-1, p.cursor)
		p.cursor--
		return false, b.tx.Send(b.promptUpdate())
	case terminal.KeyDelete:
		if p.cursor == len(p.text) {
			return false, nil
		}
		p.text = slices.Delete(p.text, p.cursor, p.cursor+1)
		return false, b.tx.Send(b.promptUpdate())
	case terminal.KeyLeft:
		p.cursor = max(p.cursor-1, 0)
		return false, b.tx.Send(b.promptMove())
	case terminal.KeyRight:
		p.cursor = min(p.cursor+1, len(p.text))
		return false, b.tx.Send(b.promptMove())
	case terminal.KeyHome:
		p.cursor = 0
		return false, b.tx.Send(b.promptMove())
	case terminal.KeyEnd:
		p.cursor = len(p.text)
		return false, b.tx.Send(b.promptMove())
	case terminal.KeyRune:
		if ev.Ctrl || ev.Alt {
			return false, nil
		}
		p.text = slices.Insert(p.text, p.cursor, ev.Rune)
		p.cursor++
		return false, b.tx.Send(b.promptUpdate())
	}
	return false, nil
}

func (b *Browser) applyFilter(text string) error {
	c := b.cur()
	c.filter = text
	c.applyFilter()

	msg := fmt.Sprintf("%d of %d", len(c.items), len(c.all))
	if text != "" {
		msg = fmt.Sprintf("filter %q: %s", text, msg)
	}
	return b.tx.Batch(
		event.InputQuit{},
		event.RefreshFileItem{Items: c.items},
		event.SetSelect{Index: c.selected},
		event.SetMark{Indices: c.markIndices()},
		event.Message{Text: msg},
	)
}
