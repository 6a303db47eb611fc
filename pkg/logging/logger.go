// Package logging writes filepane's structured logs to a per-session
// JSON lines file. The terminal is in raw mode while filepane runs, so
// nothing is ever logged to stdout or stderr.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/oklog/ulid/v2"
)

const (
	filePrefix = "filepane-"
	fileSuffix = ".jsonl"
)

// Logger is the session logger. Component loggers derived from it
// share the file and the session_id attribute.
type Logger struct {
	*slog.Logger

	sessionID string
	path      string

	mu     sync.Mutex
	file   *os.File
	closed bool
}

// NewSessionID returns a new time-ordered session id.
func NewSessionID() string {
	return ulid.Make().String()
}

// New creates dir if needed and opens <dir>/filepane-<session>.jsonl.
// An empty sessionID gets a fresh ULID.
func New(dir, sessionID string, level slog.Level) (*Logger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	if sessionID == "" {
		sessionID = NewSessionID()
	}

	path := filepath.Join(dir, filePrefix+sessionID+fileSuffix)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open session log: %w", err)
	}

	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level})
	return &Logger{
		Logger:    slog.New(handler).With(slog.String("session_id", sessionID)),
		sessionID: sessionID,
		path:      path,
		file:      file,
	}, nil
}

// Discard returns a logger that drops every record.
func Discard() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}

// Component returns a logger tagged with the component name.
func (l *Logger) Component(name string) *slog.Logger {
	return l.Logger.With(slog.String("component", name))
}

func (l *Logger) SessionID() string {
	return l.sessionID
}

// Path returns the log file path, empty for a discarding logger.
func (l *Logger) Path() string {
	return l.path
}

// Close syncs and closes the log file. Safe to call more than once.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil || l.closed {
		return nil
	}
	l.closed = true
	if err := l.file.Sync(); err != nil {
		l.file.Close()
		return fmt.Errorf("sync session log: %w", err)
	}
	return l.file.Close()
}

// Prune removes all but the newest keep session logs in dir. ULIDs
// sort by creation time, so file names order the sessions.
func Prune(dir string, keep int) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("read log directory: %w", err)
	}

	var logs []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		logs = append(logs, name)
	}
	if len(logs) <= keep {
		return 0, nil
	}
	sort.Strings(logs)

	removed := 0
	for _, name := range logs[:len(logs)-max(keep, 0)] {
		if err := os.Remove(filepath.Join(dir, name)); err != nil && !os.IsNotExist(err) {
			return removed, fmt.Errorf("remove %s: %w", name, err)
		}
		removed++
	}
	return removed, nil
}
