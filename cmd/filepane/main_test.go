package main

import (
	"context"
	"errors"
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/filepane/pkg/config"
	fperrors "github.com/odvcencio/filepane/pkg/errors"
	"github.com/odvcencio/filepane/pkg/logging"
	"github.com/odvcencio/filepane/pkg/telemetry"
	"github.com/odvcencio/filepane/pkg/ui/backend"
	"github.com/odvcencio/filepane/pkg/ui/backend/sim"
	"github.com/odvcencio/filepane/pkg/ui/event"
	"github.com/odvcencio/filepane/pkg/ui/theme"
)

func TestParseOptions(t *testing.T) {
	opts, err := parseOptions([]string{"-tabs", "3", "-detail", "/srv"})
	require.NoError(t, err)
	assert.Equal(t, "/srv", opts.dir)
	assert.Equal(t, 3, opts.tabs)
	assert.True(t, opts.detail)
	assert.True(t, opts.set["tabs"])
	assert.False(t, opts.set["config"])

	opts, err = parseOptions(nil)
	require.NoError(t, err)
	assert.Equal(t, ".", opts.dir)

	_, err = parseOptions([]string{"a", "b"})
	assert.Error(t, err)

	_, err = parseOptions([]string{"-h"})
	assert.True(t, errors.Is(err, flag.ErrHelp))
}

func TestOptionsApply(t *testing.T) {
	opts, err := parseOptions([]string{"-tabs", "2", "-debug-addr", "127.0.0.1:0"})
	require.NoError(t, err)

	cfg := config.DefaultConfig()
	cfg.UI.ShowDetail = true
	require.NoError(t, opts.apply(cfg))
	assert.Equal(t, 2, cfg.UI.Tabs)
	assert.True(t, cfg.UI.ShowDetail, "unset flags keep the configured value")
	assert.Equal(t, "127.0.0.1:0", cfg.Debug.Addr)

	opts, err = parseOptions([]string{"-tabs", "12"})
	require.NoError(t, err)
	err = opts.apply(config.DefaultConfig())
	assert.True(t, fperrors.IsCode(err, fperrors.ErrCodeConfigInvalid))
}

func TestReadKeys(t *testing.T) {
	screen := sim.New(40, 10)
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)

	mb := event.NewMailbox(64)
	b := newBrowser(mb.Sender(), 1, false, nil)
	require.NoError(t, b.Init(makeTree(t)))

	screen.InjectResize(50, 12)
	screen.InjectKeyRune('j')
	screen.InjectKeyRune('q')

	err := readKeys(context.Background(), screen, b, mb.Sender())
	assert.True(t, errors.Is(err, errQuit))

	f := &browserFixture{mb: mb}
	evs := flatten(f.drain())
	assert.Contains(t, evs, event.Resize{Width: 50, Height: 12})
	assert.Contains(t, evs, event.SetSelect{Index: 1})
}

func TestQuiet(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	boom := errors.New("boom")
	assert.Equal(t, boom, quiet(ctx, boom))
	cancel()
	assert.NoError(t, quiet(ctx, boom))
	assert.Equal(t, errQuit, quiet(ctx, errQuit))
}

func TestServeEndToEnd(t *testing.T) {
	root := makeTree(t)
	screen := sim.New(80, 20)
	sess, err := backend.Acquire(screen)
	require.NoError(t, err)
	t.Cleanup(sess.Release)

	cfg := config.DefaultConfig()
	cfg.UI.Tabs = 2
	cfg.UI.TickRate = 0

	done := make(chan error, 1)
	go func() {
		done <- serve(context.Background(), sess, cfg, theme.Default(), root, logging.Discard(), telemetry.NoopTracer())
	}()

	require.Eventually(t, func() bool {
		return screen.ContainsText("a.txt") && screen.ContainsText(root)
	}, 2*time.Second, 10*time.Millisecond)

	screen.InjectKeyRune('j')
	screen.InjectKeyRune('l')
	require.Eventually(t, func() bool {
		return screen.ContainsText("main.go")
	}, 2*time.Second, 10*time.Millisecond)

	screen.InjectKeyRune('q')
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("serve did not return after quit")
	}
}

func TestServeStopsOnCancel(t *testing.T) {
	screen := sim.New(60, 15)
	sess, err := backend.Acquire(screen)
	require.NoError(t, err)
	t.Cleanup(sess.Release)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, sess, config.DefaultConfig(), theme.Default(), makeTree(t), logging.Discard(), telemetry.NoopTracer())
	}()

	require.Eventually(t, func() bool { return screen.ContainsText("b.txt") }, 2*time.Second, 10*time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
}

func TestServeMissingDir(t *testing.T) {
	screen := sim.New(60, 15)
	sess, err := backend.Acquire(screen)
	require.NoError(t, err)
	t.Cleanup(sess.Release)

	err = serve(context.Background(), sess, config.DefaultConfig(), theme.Default(), "/definitely/not/here", logging.Discard(), telemetry.NoopTracer())
	assert.Error(t, err)
}
