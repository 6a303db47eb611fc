package event

import (
	"sync"

	"github.com/odvcencio/filepane/pkg/errors"
)

// DefaultCapacity is the mailbox bound used when none is configured.
const DefaultCapacity = 10

// Mailbox is a bounded FIFO of bodies. Any number of producers send
// through Sender handles; exactly one consumer receives.
type Mailbox struct {
	ch        chan Body
	done      chan struct{}
	closeOnce sync.Once
}

// NewMailbox creates a mailbox holding at most capacity pending bodies.
// A capacity below 1 selects DefaultCapacity.
func NewMailbox(capacity int) *Mailbox {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Mailbox{
		ch:   make(chan Body, capacity),
		done: make(chan struct{}),
	}
}

// Sender returns a producer handle. Handles are cheap to copy.
func (m *Mailbox) Sender() Sender {
	return Sender{mb: m}
}

// Receive returns the channel the consumer reads from. It is never
// closed; select on Done alongside it.
func (m *Mailbox) Receive() <-chan Body {
	return m.ch
}

// Done is closed once the consumer has stopped.
func (m *Mailbox) Done() <-chan struct{} {
	return m.done
}

// Close marks the consumer as gone. Pending and future sends fail with
// ErrCodeMailboxClosed. Safe to call more than once.
func (m *Mailbox) Close() {
	m.closeOnce.Do(func() { close(m.done) })
}

// Len returns the number of bodies waiting.
func (m *Mailbox) Len() int {
	return len(m.ch)
}

// Cap returns the mailbox bound.
func (m *Mailbox) Cap() int {
	return cap(m.ch)
}

func (m *Mailbox) closed() bool {
	select {
	case <-m.done:
		return true
	default:
		return false
	}
}

// Sender enqueues bodies into a Mailbox. Sends block while the mailbox
// is full.
type Sender struct {
	mb *Mailbox
}

func closedErr(op string) error {
	return errors.New(errors.ErrCodeMailboxClosed, "ui mailbox is closed").
		WithContext("op", op)
}

func (s Sender) put(op string, b Body) error {
	if s.mb == nil {
		return errors.New(errors.ErrCodeInvalidInput, "sender has no mailbox")
	}
	// A closed mailbox must win over free buffer space.
	if s.mb.closed() {
		return closedErr(op)
	}
	select {
	case s.mb.ch <- b:
		return nil
	case <-s.mb.done:
		return closedErr(op)
	}
}

func (s Sender) putSync(op string, b Body) error {
	b.ack = make(chan struct{}, 1)
	if err := s.put(op, b); err != nil {
		return err
	}
	select {
	case <-b.ack:
		return nil
	case <-s.mb.done:
		// The consumer may have acknowledged just before stopping.
		select {
		case <-b.ack:
			return nil
		default:
		}
		return closedErr(op)
	}
}

// Send enqueues a single event and returns without waiting.
func (s Sender) Send(ev UIEvent) error {
	return s.put("send", Body{Mode: Single, Events: []UIEvent{ev}})
}

// SendSync enqueues a single event and waits until it has been applied.
func (s Sender) SendSync(ev UIEvent) error {
	return s.putSync("send_sync", Body{Mode: Single, Events: []UIEvent{ev}})
}

// Batch enqueues events that are applied together and painted once.
func (s Sender) Batch(evs ...UIEvent) error {
	return s.put("batch", Body{Mode: Batch, Events: evs})
}

// BatchSync is Batch that waits until the events have been applied.
func (s Sender) BatchSync(evs ...UIEvent) error {
	return s.putSync("batch_sync", Body{Mode: Batch, Events: evs})
}

// Queue enqueues one step of a bracketed update. Nothing is painted
// until EndQueue.
func (s Sender) Queue(ev UIEvent) error {
	return s.put("queue", Body{Mode: Queue, Events: []UIEvent{ev}})
}

// QueueSync is Queue that waits until the step has been applied.
func (s Sender) QueueSync(ev UIEvent) error {
	return s.putSync("queue_sync", Body{Mode: Queue, Events: []UIEvent{ev}})
}

// EndQueue closes a bracket; the engine paints once.
func (s Sender) EndQueue() error {
	return s.put("end_queue", Body{Mode: Queue, Events: []UIEvent{EndQueue{}}})
}

// EndQueueSync closes a bracket and waits for the frame to be drawn.
func (s Sender) EndQueueSync() error {
	return s.putSync("end_queue_sync", Body{Mode: Queue, Events: []UIEvent{EndQueue{}}})
}

// StartLoading starts the status bar spinner.
func (s Sender) StartLoading() error {
	return s.Send(StartLoading{})
}
