package event

// Mode tells the engine how to treat a Body.
type Mode int

const (
	// Single carries one event and repaints after it.
	Single Mode = iota
	// Batch carries several events applied together, then repaints once.
	Batch
	// Queue carries one event of a bracketed sequence; nothing is
	// repainted until the bracket is closed by EndQueue.
	Queue
)

func (m Mode) String() string {
	switch m {
	case Single:
		return "single"
	case Batch:
		return "batch"
	case Queue:
		return "queue"
	default:
		return "unknown"
	}
}

// Body is the envelope a producer sends. A non-nil ack is signalled
// once the events have been applied.
type Body struct {
	Mode   Mode
	Events []UIEvent

	ack chan struct{}
}

// Acknowledge releases a producer blocked in a sync send. It is a
// no-op for fire-and-forget bodies and never blocks.
func (b Body) Acknowledge() {
	if b.ack == nil {
		return
	}
	select {
	case b.ack <- struct{}{}:
	default:
	}
}

// Synchronous reports whether a producer is waiting on this body.
func (b Body) Synchronous() bool {
	return b.ack != nil
}

// ClosesQueue reports whether the body carries EndQueue.
func (b Body) ClosesQueue() bool {
	for _, ev := range b.Events {
		if _, ok := ev.(EndQueue); ok {
			return true
		}
	}
	return false
}
