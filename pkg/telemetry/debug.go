package telemetry

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Status is reported by /healthz.
type Status struct {
	SessionID string `json:"session_id,omitempty"`
	Frames    uint64 `json:"frames"`
	Uptime    string `json:"uptime"`
}

// DebugServer serves /metrics and /healthz on a loopback address.
type DebugServer struct {
	addr     string
	gatherer prometheus.Gatherer
	status   func() Status
	log      *slog.Logger
	started  time.Time

	httpServer *http.Server
}

// DebugOptions configures NewDebugServer. Gatherer defaults to the
// default Prometheus registry; Status may be nil.
type DebugOptions struct {
	Addr     string
	Gatherer prometheus.Gatherer
	Status   func() Status
	Logger   *slog.Logger
}

func NewDebugServer(opts DebugOptions) *DebugServer {
	g := opts.Gatherer
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &DebugServer{
		addr:     opts.Addr,
		gatherer: g,
		status:   opts.Status,
		log:      log.With(slog.String("component", "debug")),
		started:  time.Now(),
	}
}

// Handler returns the router.
func (s *DebugServer) Handler() http.Handler {
	router := chi.NewRouter()
	router.Get("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}).ServeHTTP)
	router.Get("/healthz", s.handleHealthz)
	return router
}

func (s *DebugServer) handleHealthz(w http.ResponseWriter, r *http.Request) {
	var st Status
	if s.status != nil {
		st = s.status()
	}
	st.Uptime = time.Since(s.started).Truncate(time.Second).String()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(st); err != nil {
		s.log.Warn("write healthz", slog.Any("error", err))
	}
}

// Run listens on the configured address and serves until ctx is done.
func (s *DebugServer) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully.
func (s *DebugServer) Serve(ctx context.Context, ln net.Listener) error {
	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       2 * time.Minute,
		MaxHeaderBytes:    1 << 20,
	}

	serverErr := make(chan error, 1)
	go func() {
		s.log.Info("serving debug endpoint", slog.String("addr", ln.Addr().String()))
		if err := s.httpServer.Serve(ln); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	case err := <-serverErr:
		return err
	}
}
