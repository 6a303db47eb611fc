// Package backend defines the terminal backend interface for the UI.
// Production runs on tcell; tests run on tcell's simulation screen or a
// gomock double, so frames can be asserted cell by cell.
package backend

import "github.com/odvcencio/filepane/pkg/ui/terminal"

//go:generate mockgen -destination=mock/backend.go -package=mock github.com/odvcencio/filepane/pkg/ui/backend Backend

// Backend is the terminal abstraction layer.
// Only the engine goroutine writes to a Backend; PollEvent may run on
// a separate input goroutine.
type Backend interface {
	// Init enters the alternate screen and raw mode.
	Init() error

	// Fini restores the terminal state.
	Fini()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetContent sets a cell at position (x, y) with the given rune and style.
	// The comb parameter contains combining characters (can be nil).
	SetContent(x, y int, mainc rune, comb []rune, style Style)

	// Show synchronizes the internal buffer to the terminal.
	Show()

	// Sync forces a full redraw on next Show().
	Sync()

	// Clear clears the screen.
	Clear()

	HideCursor()

	// SetCursorPos moves the cursor and makes it visible.
	SetCursorPos(x, y int)

	// PollEvent blocks until an event is available and returns it.
	// Returns nil if the backend is shutting down.
	PollEvent() terminal.Event

	// PostEvent injects an event into the event queue.
	PostEvent(ev terminal.Event) error
}
