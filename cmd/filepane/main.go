// Command filepane is a terminal file manager. It wires the rendering
// engine to a small directory browser: a key reader, a directory
// watcher and an optional local metrics endpoint.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/odvcencio/filepane/pkg/config"
	"github.com/odvcencio/filepane/pkg/logging"
	"github.com/odvcencio/filepane/pkg/telemetry"
	"github.com/odvcencio/filepane/pkg/ui/backend"
	tcellbackend "github.com/odvcencio/filepane/pkg/ui/backend/tcell"
	"github.com/odvcencio/filepane/pkg/ui/engine"
	"github.com/odvcencio/filepane/pkg/ui/event"
	"github.com/odvcencio/filepane/pkg/ui/terminal"
	"github.com/odvcencio/filepane/pkg/ui/theme"
)

// Version information - set via ldflags during build
var (
	version = "0.1.0-dev"
	commit  = "unknown"
)

const (
	tracerName = "github.com/odvcencio/filepane"
	keepLogs   = 20
)

// errQuit stops the run group when the user quits.
var errQuit = errors.New("quit")

type options struct {
	configPath  string
	debugAddr   string
	tabs        int
	detail      bool
	showVersion bool
	dir         string

	set map[string]bool
}

func parseOptions(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("filepane", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "", "path to a config file")
	fs.StringVar(&opts.debugAddr, "debug-addr", "", "serve /metrics and /healthz on this loopback address")
	fs.IntVar(&opts.tabs, "tabs", 0, "number of tabs")
	fs.BoolVar(&opts.detail, "detail", false, "start in the detailed view")
	fs.BoolVar(&opts.showVersion, "version", false, "print the version and exit")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: filepane [flags] [dir]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	opts.set = map[string]bool{}
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })

	switch fs.NArg() {
	case 0:
		opts.dir = "."
	case 1:
		opts.dir = fs.Arg(0)
	default:
		return opts, fmt.Errorf("expected at most one directory, got %d arguments", fs.NArg())
	}
	return opts, nil
}

// apply layers the command line over the loaded configuration.
func (o options) apply(cfg *config.Config) error {
	if o.set["tabs"] {
		cfg.UI.Tabs = o.tabs
	}
	if o.set["detail"] {
		cfg.UI.ShowDetail = o.detail
	}
	if o.set["debug-addr"] {
		cfg.Debug.Addr = o.debugAddr
	}
	return cfg.Validate()
}

func main() {
	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitConfig)
	}
	if opts.showVersion {
		fmt.Printf("filepane %s (%s)\n", version, commit)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, opts)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCodeForError(err))
	}
}

func run(ctx context.Context, opts options) error {
	if !isInteractiveTerminal() {
		return withExitCode(errors.New("filepane needs an interactive terminal"), exitNoTTY)
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return withExitCode(err, exitConfig)
	}
	if err := opts.apply(cfg); err != nil {
		return withExitCode(err, exitConfig)
	}
	th, err := cfg.Theme()
	if err != nil {
		return withExitCode(err, exitConfig)
	}

	logger, err := logging.New(cfg.LogDir(), "", cfg.LogLevel())
	if err != nil {
		return err
	}
	defer logger.Close()
	log := logger.Component("main")
	if n, err := logging.Prune(cfg.LogDir(), keepLogs); err != nil {
		log.Warn("prune logs", slog.Any("error", err))
	} else if n > 0 {
		log.Debug("pruned logs", slog.Int("removed", n))
	}
	log.Info("starting", slog.String("version", version), slog.String("dir", opts.dir))

	tracer := telemetry.NoopTracer()
	if cfg.Tracing.Enabled {
		tp, err := telemetry.NewTracerProvider(telemetry.TracingOptions{
			Version:   version,
			SessionID: logger.SessionID(),
			File:      cfg.TraceFile(),
		})
		if err != nil {
			return err
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				log.Warn("flush traces", slog.Any("error", err))
			}
		}()
		tracer = tp.Tracer(tracerName)
	}

	screen, err := tcellbackend.New()
	if err != nil {
		return withExitCode(err, exitNoTTY)
	}
	sess, err := backend.Acquire(screen)
	if err != nil {
		return err
	}
	defer sess.Release()

	err = serve(ctx, sess, cfg, th, opts.dir, logger, tracer)
	if err != nil {
		log.Error("stopped", slog.Any("error", err))
	} else {
		log.Info("stopped")
	}
	return err
}

// serve runs the engine, key reader, directory watcher and the
// optional debug endpoint until the user quits, ctx ends or one of
// them fails.
func serve(ctx context.Context, sess *backend.Session, cfg *config.Config, th *theme.Theme, dir string, logger *logging.Logger, tracer trace.Tracer) error {
	eng, tx, err := engine.New(engine.Config{
		Session:         sess,
		Tabs:            cfg.UI.Tabs,
		ColumnWidth:     cfg.UI.ColumnWidth,
		ShowDetail:      cfg.UI.ShowDetail,
		Theme:           th,
		TickRate:        cfg.UI.TickRate,
		MailboxCapacity: cfg.UI.MailboxCapacity,
		Logger:          logger.Logger,
		Tracer:          tracer,
	})
	if err != nil {
		return err
	}

	browser := newBrowser(tx, cfg.UI.Tabs, cfg.UI.ShowDetail, logger.Logger)
	watcher, err := newDirWatcher(defaultRefreshInterval, browser.Refresh, logger.Logger)
	if err != nil {
		return err
	}
	browser.OnChdir(watcher.Watch)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return eng.Run(gctx)
	})
	g.Go(func() error {
		defer sess.Guard()
		if err := browser.Init(dir); err != nil {
			return err
		}
		watcher.Watch(browser.Dir())
		return quiet(gctx, readKeys(gctx, sess.Backend(), browser, tx))
	})
	g.Go(func() error {
		return quiet(gctx, watcher.Run(gctx))
	})
	g.Go(func() error {
		// Wake the key reader so it sees the cancellation.
		<-gctx.Done()
		_ = sess.Backend().PostEvent(terminal.ResizeEvent{})
		return nil
	})
	if cfg.Debug.Addr != "" {
		srv := telemetry.NewDebugServer(telemetry.DebugOptions{
			Addr: cfg.Debug.Addr,
			Status: func() telemetry.Status {
				return telemetry.Status{SessionID: logger.SessionID(), Frames: eng.Frames()}
			},
			Logger: logger.Logger,
		})
		g.Go(func() error {
			return srv.Run(gctx)
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	return nil
}

// readKeys forwards terminal input until the user quits or ctx ends.
func readKeys(ctx context.Context, b backend.Backend, browser *Browser, tx event.Sender) error {
	for {
		ev := b.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return nil
		}
		switch ev := ev.(type) {
		case terminal.ResizeEvent:
			if err := tx.Send(event.Resize{Width: ev.Width, Height: ev.Height}); err != nil {
				return err
			}
		case terminal.KeyEvent:
			quit, err := browser.HandleKey(ev)
			if err != nil {
				return err
			}
			if quit {
				return errQuit
			}
		}
	}
}

// quiet drops delivery errors caused by shutdown.
func quiet(ctx context.Context, err error) error {
	if ctx.Err() != nil && !errors.Is(err, errQuit) {
		return nil
	}
	return err
}
