package backend

import (
	"sync"

	"github.com/odvcencio/filepane/pkg/errors"
)

// Session is a scoped claim on the terminal. Acquire puts the terminal
// into raw/alternate-screen mode; Release restores it exactly once, no
// matter how many goroutines call it or whether they got there by
// panicking.
type Session struct {
	backend Backend
	once    sync.Once
	onExit  func()
}

// Acquire initializes b and hides the cursor.
func Acquire(b Backend) (*Session, error) {
	if b == nil {
		return nil, errors.New(errors.ErrCodeTerminalInit, "no terminal backend")
	}
	if err := b.Init(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeTerminalInit, "initialize terminal").
			WithRemediation("run filepane from an interactive terminal", "check that TERM is set")
	}
	b.HideCursor()
	return &Session{backend: b}, nil
}

// Backend returns the terminal owned by the session.
func (s *Session) Backend() Backend {
	return s.backend
}

// OnRelease registers fn to run after the terminal has been restored.
// Used to flush logs once the screen is back to normal.
func (s *Session) OnRelease(fn func()) {
	s.onExit = fn
}

// Release restores the terminal. Safe to call more than once.
func (s *Session) Release() {
	s.once.Do(func() {
		s.backend.Fini()
		if s.onExit != nil {
			s.onExit()
		}
	})
}

// Guard is deferred at the top of every goroutine that touches the
// terminal. On panic it restores the terminal before the panic
// continues, so the stack trace lands on a usable screen.
func (s *Session) Guard() {
	if r := recover(); r != nil {
		s.Release()
		panic(r)
	}
}
