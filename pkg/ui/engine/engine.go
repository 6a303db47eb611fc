// Package engine owns the screen. A single goroutine drains the event
// mailbox, applies each body to the pane tree and repaints, honoring
// bracketed queues and acknowledging synchronous senders.
package engine

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/odvcencio/filepane/pkg/errors"
	"github.com/odvcencio/filepane/pkg/ui/backend"
	"github.com/odvcencio/filepane/pkg/ui/event"
	"github.com/odvcencio/filepane/pkg/ui/panes"
	"github.com/odvcencio/filepane/pkg/ui/runtime"
	"github.com/odvcencio/filepane/pkg/ui/theme"
)

const tracerName = "github.com/odvcencio/filepane/pkg/ui/engine"

// Config configures an Engine. Session is required.
type Config struct {
	Session *backend.Session

	Tabs        int
	ColumnWidth int
	ShowDetail  bool
	Theme       *theme.Theme

	// TickRate drives the spinner. Zero disables ticking.
	TickRate time.Duration

	// MailboxCapacity bounds pending bodies; below 1 selects
	// event.DefaultCapacity.
	MailboxCapacity int

	Logger *slog.Logger
	Tracer trace.Tracer
}

// Engine is the single consumer of the UI mailbox and the only writer
// to the terminal.
type Engine struct {
	session *backend.Session
	backend backend.Backend
	mailbox *event.Mailbox

	// mu guards the tree and canvas. The loop holds it while handling
	// a body or a tick; Inspect takes it to read state.
	mu      sync.Mutex
	main    *panes.Main
	canvas  *runtime.Canvas
	inQueue bool

	tickRate time.Duration
	frames   atomic.Uint64

	log    *slog.Logger
	tracer trace.Tracer
}

// New builds the screen tree sized to the session's terminal and
// returns the engine with a sender for producers.
func New(cfg Config) (*Engine, event.Sender, error) {
	if cfg.Session == nil {
		return nil, event.Sender{}, errors.New(errors.ErrCodeInvalidInput, "engine needs a terminal session")
	}
	th := cfg.Theme
	if th == nil {
		th = theme.Default()
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}

	b := cfg.Session.Backend()
	w, h := b.Size()
	size := runtime.Size{Width: w, Height: h}

	e := &Engine{
		session: cfg.Session,
		backend: b,
		mailbox: event.NewMailbox(cfg.MailboxCapacity),
		main: panes.NewMain(panes.Options{
			Tabs:        cfg.Tabs,
			ColumnWidth: cfg.ColumnWidth,
			ShowDetail:  cfg.ShowDetail,
			Theme:       th,
		}, size),
		canvas:   runtime.NewCanvas(w, h, th.Screen),
		tickRate: cfg.TickRate,
		log:      log.With(slog.String("component", "engine")),
		tracer:   tracer,
	}
	return e, e.mailbox.Sender(), nil
}

// Sender returns another producer handle.
func (e *Engine) Sender() event.Sender {
	return e.mailbox.Sender()
}

// Frames returns the number of frames drawn so far.
func (e *Engine) Frames() uint64 {
	return e.frames.Load()
}

// Inspect runs fn with the screen tree while the loop is idle. Use it
// after a synchronous send to read back state the engine derived, such
// as a clamped selection.
func (e *Engine) Inspect(fn func(m *panes.Main)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.main)
}

// Run draws the first frame, then handles bodies and ticks until ctx
// is done. The mailbox is closed on return so blocked producers fail
// instead of hanging. A panic restores the terminal before it
// propagates.
func (e *Engine) Run(ctx context.Context) error {
	defer e.session.Guard()
	defer e.mailbox.Close()

	e.log.Info("engine started",
		slog.Int("width", e.canvas.Size().Width),
		slog.Int("height", e.canvas.Size().Height),
		slog.Duration("tick_rate", e.tickRate),
	)

	e.mu.Lock()
	e.frame(ctx)
	e.mu.Unlock()

	var tick <-chan time.Time
	if e.tickRate > 0 {
		t := time.NewTicker(e.tickRate)
		defer t.Stop()
		tick = t.C
	}

	for {
		select {
		case <-ctx.Done():
			e.log.Info("engine stopped", slog.Uint64("frames", e.Frames()))
			return nil
		case b := <-e.mailbox.Receive():
			metricMailboxDepth.Set(float64(e.mailbox.Len()))
			e.mu.Lock()
			e.handle(ctx, b)
			e.mu.Unlock()
		case <-tick:
			e.mu.Lock()
			if !e.inQueue && e.main.Tick() {
				e.frame(ctx)
			}
			e.mu.Unlock()
		}
	}
}

// handle applies one body. Single and Batch bodies repaint after
// acknowledging unless a bracket is open; Queue bodies open a bracket
// and stay off screen; a body carrying EndQueue closes the bracket and
// repaints before acknowledging.
func (e *Engine) handle(ctx context.Context, b event.Body) {
	ctx, span := e.tracer.Start(ctx, "engine.body", trace.WithAttributes(
		attribute.String("mode", b.Mode.String()),
		attribute.Int("events", len(b.Events)),
		attribute.Bool("sync", b.Synchronous()),
	))
	defer span.End()

	metricBodies.WithLabelValues(b.Mode.String()).Inc()
	e.log.Debug("handle body",
		slog.String("mode", b.Mode.String()),
		slog.Int("events", len(b.Events)),
		slog.Bool("in_queue", e.inQueue),
	)

	e.apply(b.Events)

	switch {
	case b.ClosesQueue():
		e.inQueue = false
		e.frame(ctx)
		b.Acknowledge()
	case b.Mode == event.Queue:
		b.Acknowledge()
		e.inQueue = true
	default:
		b.Acknowledge()
		if !e.inQueue {
			e.frame(ctx)
		}
	}
}

func (e *Engine) apply(evs []event.UIEvent) {
	for _, ev := range evs {
		name := event.Name(ev)
		if rs, ok := ev.(event.Resize); ok {
			e.canvas.Resize(rs.Width, rs.Height)
			e.backend.Sync()
		}
		if !e.main.Apply(e.canvas, ev) {
			e.log.Warn("unhandled event", slog.String("event", name))
			continue
		}
		metricEvents.WithLabelValues(name).Inc()
	}
}

// frame lays the tree out at the canvas size, repaints it from a blank
// canvas and flushes the cells that changed.
func (e *Engine) frame(ctx context.Context) {
	_, span := e.tracer.Start(ctx, "engine.frame")
	defer span.End()
	start := time.Now()

	e.main.BeforeFrame()
	e.main.Resize(e.canvas.Size())
	e.main.Layout()
	e.canvas.Bounds().Erase(e.canvas)
	e.main.Paint(e.canvas)
	cells := e.canvas.Flush(e.backend)
	e.backend.Show()

	n := e.frames.Add(1)
	elapsed := time.Since(start)
	metricFrames.Inc()
	metricCells.Add(float64(cells))
	metricFrameDuration.Observe(elapsed.Seconds())
	span.SetAttributes(
		attribute.Int64("frame", int64(n)),
		attribute.Int("cells", cells),
	)
	e.log.Debug("frame", slog.Uint64("frame", n), slog.Int("cells", cells), slog.Duration("elapsed", elapsed))
}
