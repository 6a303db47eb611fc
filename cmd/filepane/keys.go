package main

import (
	"github.com/odvcencio/filepane/pkg/ui/event"
	"github.com/odvcencio/filepane/pkg/ui/terminal"
)

type action int

const (
	actionNone action = iota
	actionQuit
	actionDown
	actionUp
	actionTop
	actionBottom
	actionEnter
	actionBack
	actionMark
	actionDetail
	actionHidden
	actionBookmark
	actionFilter
	actionRefresh
	actionHelp
	actionTab
)

// binding maps a key to a normal-mode action. Tab switches carry their
// index in tab.
type binding struct {
	key    terminal.Key
	r      rune
	action action
	tab    int
	hint   string
}

var bindings = []binding{
	{key: terminal.KeyRune, r: 'j', action: actionDown, hint: "down"},
	{key: terminal.KeyDown, action: actionDown},
	{key: terminal.KeyRune, r: 'k', action: actionUp, hint: "up"},
	{key: terminal.KeyUp, action: actionUp},
	{key: terminal.KeyRune, r: 'g', action: actionTop, hint: "top"},
	{key: terminal.KeyHome, action: actionTop},
	{key: terminal.KeyRune, r: 'G', action: actionBottom, hint: "bottom"},
	{key: terminal.KeyEnd, action: actionBottom},
	{key: terminal.KeyRune, r: 'l', action: actionEnter, hint: "open"},
	{key: terminal.KeyRight, action: actionEnter},
	{key: terminal.KeyEnter, action: actionEnter},
	{key: terminal.KeyRune, r: 'h', action: actionBack, hint: "back"},
	{key: terminal.KeyLeft, action: actionBack},
	{key: terminal.KeyBackspace, action: actionBack},
	{key: terminal.KeyRune, r: ' ', action: actionMark, hint: "mark"},
	{key: terminal.KeyRune, r: 'i', action: actionDetail, hint: "detail"},
	{key: terminal.KeyRune, r: '.', action: actionHidden, hint: "hidden"},
	{key: terminal.KeyRune, r: 'b', action: actionBookmark, hint: "bookmark"},
	{key: terminal.KeyRune, r: '/', action: actionFilter, hint: "filter"},
	{key: terminal.KeyCtrlL, action: actionRefresh},
	{key: terminal.KeyRune, r: 'r', action: actionRefresh, hint: "reload"},
	{key: terminal.KeyRune, r: '?', action: actionHelp},
	{key: terminal.KeyRune, r: 'q', action: actionQuit, hint: "quit"},
	{key: terminal.KeyCtrlC, action: actionQuit},
}

// lookup resolves a normal-mode key. Digits 1-9 switch tabs.
func lookup(ev terminal.KeyEvent) (action, int) {
	if ev.Key == terminal.KeyRune && !ev.Ctrl && !ev.Alt && ev.Rune >= '1' && ev.Rune <= '9' {
		return actionTab, int(ev.Rune - '1')
	}
	for _, b := range bindings {
		if b.key != ev.Key {
			continue
		}
		if b.key == terminal.KeyRune && !ev.IsRune(b.r) {
			continue
		}
		return b.action, 0
	}
	return actionNone, 0
}

// keyHints is the key-navigation strip shown by '?'.
func keyHints() []event.KeyHint {
	hints := []event.KeyHint{{Key: "1-9", Description: "tab"}}
	for _, b := range bindings {
		if b.hint == "" {
			continue
		}
		key := string(b.r)
		if b.r == ' ' {
			key = "spc"
		}
		hints = append(hints, event.KeyHint{Key: key, Description: b.hint})
	}
	return hints
}
