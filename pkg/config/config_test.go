package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/odvcencio/filepane/pkg/config"
	"github.com/odvcencio/filepane/pkg/errors"
	"github.com/odvcencio/filepane/pkg/ui/backend"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) (home, project string) {
	t.Helper()
	home = t.TempDir()
	project = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(project)
	return home, project
}

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if cfg.UI.Tabs != 4 || cfg.UI.ColumnWidth != 30 || cfg.UI.MailboxCapacity != 10 {
		t.Fatalf("unexpected ui defaults: %+v", cfg.UI)
	}
	if cfg.Debug.Addr != "" {
		t.Fatalf("debug endpoint should be off by default, got %q", cfg.Debug.Addr)
	}
}

func TestLoadHierarchy(t *testing.T) {
	home, project := isolate(t)

	writeConfig(t, filepath.Join(home, ".config", "filepane"), `
ui:
  tabs: 6
  column_width: 24
palette:
  directory: blue
`)
	writeConfig(t, filepath.Join(project, ".filepane"), `
ui:
  tabs: 2
logging:
  level: debug
`)
	explicit := writeConfig(t, filepath.Join(t.TempDir(), "explicit"), `
ui:
  tick_rate: 250ms
`)
	t.Setenv("FILEPANE_SHOW_DETAIL", "yes")

	cfg, err := config.Load(explicit)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.UI.Tabs != 2 {
		t.Errorf("tabs = %d, want project value 2", cfg.UI.Tabs)
	}
	if cfg.UI.ColumnWidth != 24 {
		t.Errorf("column width = %d, want user value 24", cfg.UI.ColumnWidth)
	}
	if cfg.UI.TickRate != 250*time.Millisecond {
		t.Errorf("tick rate = %v, want explicit value 250ms", cfg.UI.TickRate)
	}
	if !cfg.UI.ShowDetail {
		t.Error("show detail should come from the environment")
	}
	if cfg.Palette.Directory != "blue" {
		t.Errorf("directory color = %q, want blue", cfg.Palette.Directory)
	}
	if cfg.LogLevel() != slog.LevelDebug {
		t.Errorf("log level = %v, want debug", cfg.LogLevel())
	}
}

func TestLoadWithoutFiles(t *testing.T) {
	isolate(t)

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.Tabs != config.DefaultConfig().UI.Tabs {
		t.Fatalf("expected defaults, got %+v", cfg.UI)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)

	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.IsCode(err, errors.ErrCodeConfigLoad) {
		t.Fatalf("err = %v, want CONFIG_LOAD", err)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	_, project := isolate(t)
	writeConfig(t, filepath.Join(project, ".filepane"), "ui: [tabs\n")

	_, err := config.Load("")
	if !errors.IsCode(err, errors.ErrCodeConfigParse) {
		t.Fatalf("err = %v, want CONFIG_PARSE", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("FILEPANE_TABS", "3")
	t.Setenv("FILEPANE_COLUMN_WIDTH", "40")
	t.Setenv("FILEPANE_TICK_RATE", "50ms")
	t.Setenv("FILEPANE_MAILBOX_CAPACITY", "32")
	t.Setenv("FILEPANE_LOG_LEVEL", "warn")
	t.Setenv("FILEPANE_DEBUG_ADDR", "localhost:9100")

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.Tabs != 3 || cfg.UI.ColumnWidth != 40 || cfg.UI.MailboxCapacity != 32 {
		t.Errorf("ui = %+v", cfg.UI)
	}
	if cfg.UI.TickRate != 50*time.Millisecond {
		t.Errorf("tick rate = %v", cfg.UI.TickRate)
	}
	if cfg.LogLevel() != slog.LevelWarn {
		t.Errorf("log level = %v", cfg.LogLevel())
	}
	if cfg.Debug.Addr != "localhost:9100" {
		t.Errorf("debug addr = %q", cfg.Debug.Addr)
	}
}

func TestEnvOverridesIgnoreGarbage(t *testing.T) {
	isolate(t)
	t.Setenv("FILEPANE_TABS", "many")
	t.Setenv("FILEPANE_SHOW_DETAIL", "perhaps")

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.Tabs != 4 || cfg.UI.ShowDetail {
		t.Fatalf("unparseable values should be ignored: %+v", cfg.UI)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"zero tabs", func(c *config.Config) { c.UI.Tabs = 0 }},
		{"too many tabs", func(c *config.Config) { c.UI.Tabs = 10 }},
		{"narrow column", func(c *config.Config) { c.UI.ColumnWidth = 3 }},
		{"negative tick", func(c *config.Config) { c.UI.TickRate = -time.Second }},
		{"empty mailbox", func(c *config.Config) { c.UI.MailboxCapacity = 0 }},
		{"unknown color", func(c *config.Config) { c.Palette.Marked = "chartreuse" }},
		{"unknown level", func(c *config.Config) { c.Logging.Level = "loud" }},
		{"tracing without file", func(c *config.Config) { c.Tracing.Enabled = true; c.Tracing.File = "" }},
		{"public debug addr", func(c *config.Config) { c.Debug.Addr = "0.0.0.0:9100" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.IsCode(err, errors.ErrCodeConfigInvalid) {
				t.Fatalf("Validate() = %v, want CONFIG_INVALID", err)
			}
		})
	}
}

func TestValidateAcceptsLoopbackAddrs(t *testing.T) {
	for _, addr := range []string{"127.0.0.1:9100", "[::1]:9100", "localhost:0"} {
		cfg := config.DefaultConfig()
		cfg.Debug.Addr = addr
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate(%q) = %v", addr, err)
		}
	}
}

func TestThemeColors(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Palette.Directory = "Bright_Blue"
	cfg.Palette.Background = "default"

	colors, err := cfg.ThemeColors()
	if err != nil {
		t.Fatalf("ThemeColors: %v", err)
	}
	if colors.Directory != backend.ColorBrightBlue {
		t.Errorf("directory = %v, want bright blue", colors.Directory)
	}
	if colors.Background != backend.ColorDefault {
		t.Errorf("background = %v, want default", colors.Background)
	}

	th, err := cfg.Theme()
	if err != nil {
		t.Fatalf("Theme: %v", err)
	}
	if th.Colors != colors {
		t.Errorf("theme palette = %+v, want %+v", th.Colors, colors)
	}
}

func TestPathsExpandHome(t *testing.T) {
	home, _ := isolate(t)
	cfg := config.DefaultConfig()

	if got, want := cfg.LogDir(), filepath.Join(home, ".local", "state", "filepane"); got != want {
		t.Errorf("LogDir() = %q, want %q", got, want)
	}
	cfg.Tracing.File = "/tmp/trace.jsonl"
	if got := cfg.TraceFile(); got != "/tmp/trace.jsonl" {
		t.Errorf("TraceFile() = %q", got)
	}
}
