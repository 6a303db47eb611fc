package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/odvcencio/filepane/pkg/ui/terminal"
)

func runeKey(r rune) terminal.KeyEvent {
	return terminal.KeyEvent{Key: terminal.KeyRune, Rune: r}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		ev     terminal.KeyEvent
		action action
		tab    int
	}{
		{"vi down", runeKey('j'), actionDown, 0},
		{"arrow up", terminal.KeyEvent{Key: terminal.KeyUp}, actionUp, 0},
		{"enter opens", terminal.KeyEvent{Key: terminal.KeyEnter}, actionEnter, 0},
		{"backspace goes back", terminal.KeyEvent{Key: terminal.KeyBackspace}, actionBack, 0},
		{"space marks", runeKey(' '), actionMark, 0},
		{"first tab", runeKey('1'), actionTab, 0},
		{"ninth tab", runeKey('9'), actionTab, 8},
		{"ctrl-c quits", terminal.KeyEvent{Key: terminal.KeyCtrlC}, actionQuit, 0},
		{"shifted G", runeKey('G'), actionBottom, 0},
		{"alt-j is unbound", terminal.KeyEvent{Key: terminal.KeyRune, Rune: 'j', Alt: true}, actionNone, 0},
		{"zero is unbound", runeKey('0'), actionNone, 0},
		{"unknown key", terminal.KeyEvent{Key: terminal.KeyPageDown}, actionNone, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, tab := lookup(tt.ev)
			assert.Equal(t, tt.action, a)
			assert.Equal(t, tt.tab, tab)
		})
	}
}

func TestKeyHints(t *testing.T) {
	hints := keyHints()

	assert.Equal(t, "1-9", hints[0].Key)
	seen := map[string]string{}
	for _, h := range hints {
		seen[h.Key] = h.Description
	}
	assert.Equal(t, "down", seen["j"])
	assert.Equal(t, "mark", seen["spc"])
	assert.Equal(t, "quit", seen["q"])
	assert.NotContains(t, seen, "?")
}
