// Package event defines the semantic updates producers send to the
// screen engine, the envelope they travel in, and the bounded mailbox
// that carries them.
package event

import "fmt"

// UIEvent is one semantic update. The set is closed: only types in
// this package implement it.
type UIEvent interface {
	isUIEvent()
}

// NoSelection marks a file list with no selected row.
const NoSelection = -1

// FileItem is one row of a file list, already formatted by the
// producer.
type FileItem struct {
	Name       string
	ModifyTime string
	Mode       string
	Size       string
	IsDir      bool
}

// KeyHint is one entry of the key-navigation strip.
type KeyHint struct {
	Key         string
	Description string
}

// Navigation

// SwitchTab activates tab Index (zero-based).
type SwitchTab struct {
	Index int
}

// SetPath replaces the path indicator text.
type SetPath struct {
	Path string
}

// Bulk state

// InitColumn replaces every file column.
type InitColumn struct {
	Columns [][]FileItem
}

// InitSelect sets the selected row of each column.
type InitSelect struct {
	Selected []int
}

// InitMark sets the marked rows of each column.
type InitMark struct {
	Marked [][]int
}

// Incremental state

// RefreshFileItem replaces the rows of the current (last) column.
type RefreshFileItem struct {
	Items []FileItem
}

// SetSelect moves the selection of the current column.
type SetSelect struct {
	Index int
}

// SetMark replaces the marked rows of the current column.
type SetMark struct {
	Indices []int
}

// AddFileList appends a column after the current one.
type AddFileList struct {
	Items    []FileItem
	Selected int
}

// RemoveFileList drops the current column. When Replace is set the new
// current column's rows are replaced with Items.
type RemoveFileList struct {
	Items   []FileItem
	Replace bool
}

// Transient overlay

// ShowKeyNav shows the key hints on the bottom row for one frame
// after the one that draws them.
type ShowKeyNav struct {
	Hints []KeyHint
}

// InputEnter opens the prompt on the bottom row.
type InputEnter struct {
	Prompt string
}

// InputUpdate replaces the prompt text and cursor column.
type InputUpdate struct {
	Text   string
	Cursor int
}

// InputMove moves the prompt cursor.
type InputMove struct {
	Cursor int
}

// InputQuit closes the prompt.
type InputQuit struct{}

// Message shows text in the status bar until replaced.
type Message struct {
	Text string
}

// Chrome

// SetShowDetail toggles the detailed (modify time, mode, size) view.
type SetShowDetail struct {
	Show bool
}

// SetBookmark replaces the bookmark list.
type SetBookmark struct {
	Names []string
}

// StartLoading starts the status bar spinner.
type StartLoading struct{}

// StopLoading stops the spinner.
type StopLoading struct{}

// Terminal

// Resize reports a new terminal size.
type Resize struct {
	Width, Height int
}

// Bracket

// EndQueue closes a bracketed queue; the engine repaints once.
type EndQueue struct{}

func (SwitchTab) isUIEvent()       {}
func (SetPath) isUIEvent()         {}
func (InitColumn) isUIEvent()      {}
func (InitSelect) isUIEvent()      {}
func (InitMark) isUIEvent()        {}
func (RefreshFileItem) isUIEvent() {}
func (SetSelect) isUIEvent()       {}
func (SetMark) isUIEvent()         {}
func (AddFileList) isUIEvent()     {}
func (RemoveFileList) isUIEvent()  {}
func (ShowKeyNav) isUIEvent()      {}
func (InputEnter) isUIEvent()      {}
func (InputUpdate) isUIEvent()     {}
func (InputMove) isUIEvent()       {}
func (InputQuit) isUIEvent()       {}
func (Message) isUIEvent()         {}
func (SetShowDetail) isUIEvent()   {}
func (SetBookmark) isUIEvent()     {}
func (StartLoading) isUIEvent()    {}
func (StopLoading) isUIEvent()     {}
func (Resize) isUIEvent()          {}
func (EndQueue) isUIEvent()        {}

// Name returns the event's type name, for logs and metric labels.
func Name(ev UIEvent) string {
	switch ev.(type) {
	case SwitchTab:
		return "switch_tab"
	case SetPath:
		return "set_path"
	case InitColumn:
		return "init_column"
	case InitSelect:
		return "init_select"
	case InitMark:
		return "init_mark"
	case RefreshFileItem:
		return "refresh_file_item"
	case SetSelect:
		return "set_select"
	case SetMark:
		return "set_mark"
	case AddFileList:
		return "add_file_list"
	case RemoveFileList:
		return "remove_file_list"
	case ShowKeyNav:
		return "show_key_nav"
	case InputEnter:
		return "input_enter"
	case InputUpdate:
		return "input_update"
	case InputMove:
		return "input_move"
	case InputQuit:
		return "input_quit"
	case Message:
		return "message"
	case SetShowDetail:
		return "set_show_detail"
	case SetBookmark:
		return "set_bookmark"
	case StartLoading:
		return "start_loading"
	case StopLoading:
		return "stop_loading"
	case Resize:
		return "resize"
	case EndQueue:
		return "end_queue"
	case nil:
		return "nil"
	default:
		return fmt.Sprintf("%T", ev)
	}
}
