// Package config loads filepane settings from defaults, YAML files and
// FILEPANE_* environment variables.
package config

import (
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/odvcencio/filepane/pkg/errors"
	"github.com/odvcencio/filepane/pkg/ui/backend"
	"github.com/odvcencio/filepane/pkg/ui/theme"
)

// Config is the complete filepane configuration.
type Config struct {
	UI      UIConfig      `yaml:"ui"`
	Palette PaletteConfig `yaml:"palette"`
	Logging LoggingConfig `yaml:"logging"`
	Tracing TracingConfig `yaml:"tracing"`
	Debug   DebugConfig   `yaml:"debug"`
}

// UIConfig shapes the screen and the update pipeline.
type UIConfig struct {
	Tabs            int           `yaml:"tabs"`
	ShowDetail      bool          `yaml:"show_detail"`
	ColumnWidth     int           `yaml:"column_width"`
	TickRate        time.Duration `yaml:"tick_rate"`
	MailboxCapacity int           `yaml:"mailbox_capacity"`
}

// PaletteConfig names one of the 16 terminal colors (or "default") per
// palette entry.
type PaletteConfig struct {
	Background  string `yaml:"background"`
	Directory   string `yaml:"directory"`
	File        string `yaml:"file"`
	Marked      string `yaml:"marked"`
	StatusFG    string `yaml:"status_fg"`
	StatusBG    string `yaml:"status_bg"`
	ActiveTabFG string `yaml:"active_tab_fg"`
	ActiveTabBG string `yaml:"active_tab_bg"`
}

type LoggingConfig struct {
	Dir   string `yaml:"dir"`
	Level string `yaml:"level"`
}

// TracingConfig enables span export to a JSON lines file.
type TracingConfig struct {
	Enabled bool   `yaml:"enabled"`
	File    string `yaml:"file"`
}

// DebugConfig controls the local metrics endpoint. An empty Addr keeps
// it off.
type DebugConfig struct {
	Addr string `yaml:"addr"`
}

const (
	maxTabs        = 9
	minColumnWidth = 8
)

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Tabs:            4,
			ColumnWidth:     30,
			TickRate:        100 * time.Millisecond,
			MailboxCapacity: 10,
		},
		Palette: PaletteConfig{
			Background:  "black",
			Directory:   "cyan",
			File:        "white",
			Marked:      "yellow",
			StatusFG:    "black",
			StatusBG:    "cyan",
			ActiveTabFG: "black",
			ActiveTabBG: "cyan",
		},
		Logging: LoggingConfig{
			Dir:   "~/.local/state/filepane",
			Level: "info",
		},
		Tracing: TracingConfig{
			File: "~/.local/state/filepane/trace.jsonl",
		},
	}
}

// Load builds the configuration with this precedence, lowest first:
// defaults, ~/.config/filepane/config.yaml, ./.filepane/config.yaml,
// the explicit path (if any), FILEPANE_* environment variables.
// Missing user and project files are skipped; a missing explicit file
// is an error.
func Load(explicit string) (*Config, error) {
	cfg := DefaultConfig()

	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	if home != "" {
		userPath := filepath.Join(home, ".config", "filepane", "config.yaml")
		if err := loadAndMerge(cfg, userPath); err != nil && !os.IsNotExist(err) {
			return nil, wrapLoad(err, userPath)
		}
	}

	projectPath := filepath.Join(".", ".filepane", "config.yaml")
	if err := loadAndMerge(cfg, projectPath); err != nil && !os.IsNotExist(err) {
		return nil, wrapLoad(err, projectPath)
	}

	if explicit != "" {
		if err := loadAndMerge(cfg, explicit); err != nil {
			return nil, wrapLoad(err, explicit)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromPath loads defaults, the given file and the environment,
// skipping the user and project files.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := loadAndMerge(cfg, path); err != nil {
		return nil, wrapLoad(err, path)
	}
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func wrapLoad(err error, path string) error {
	if errors.IsCode(err, errors.ErrCodeConfigParse) {
		return err
	}
	return errors.Wrap(err, errors.ErrCodeConfigLoad, "loading config").WithContext("path", path)
}

func applyEnvOverrides(cfg *Config) {
	if v, ok := envInt("FILEPANE_TABS"); ok {
		cfg.UI.Tabs = v
	}
	if v, ok := envBool("FILEPANE_SHOW_DETAIL"); ok {
		cfg.UI.ShowDetail = v
	}
	if v, ok := envInt("FILEPANE_COLUMN_WIDTH"); ok {
		cfg.UI.ColumnWidth = v
	}
	if v := os.Getenv("FILEPANE_TICK_RATE"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.UI.TickRate = d
		}
	}
	if v, ok := envInt("FILEPANE_MAILBOX_CAPACITY"); ok {
		cfg.UI.MailboxCapacity = v
	}

	if v := os.Getenv("FILEPANE_LOG_DIR"); v != "" {
		cfg.Logging.Dir = v
	}
	if v := os.Getenv("FILEPANE_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}

	if v, ok := envBool("FILEPANE_TRACING"); ok {
		cfg.Tracing.Enabled = v
	}
	if v := os.Getenv("FILEPANE_TRACE_FILE"); v != "" {
		cfg.Tracing.File = v
	}

	if v, ok := os.LookupEnv("FILEPANE_DEBUG_ADDR"); ok {
		cfg.Debug.Addr = v
	}
}

func envBool(key string) (bool, bool) {
	val := os.Getenv(key)
	if val == "" {
		return false, false
	}
	switch strings.ToLower(val) {
	case "1", "true", "yes", "on":
		return true, true
	case "0", "false", "no", "off":
		return false, true
	default:
		return false, false
	}
}

func envInt(key string) (int, bool) {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return 0, false
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, false
	}
	return n, true
}

func isLoopbackBindAddress(addr string) bool {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return false
	}

	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}
	host = strings.TrimSpace(host)
	if host == "" {
		return false
	}
	switch strings.ToLower(host) {
	case "localhost":
		return true
	case "0.0.0.0", "::":
		return false
	default:
		ip := net.ParseIP(host)
		if ip == nil {
			return false
		}
		return ip.IsLoopback()
	}
}

// Validate checks configuration validity.
func (c *Config) Validate() error {
	if c.UI.Tabs < 1 || c.UI.Tabs > maxTabs {
		return invalid("ui.tabs", c.UI.Tabs, fmt.Sprintf("must be between 1 and %d", maxTabs))
	}
	if c.UI.ColumnWidth < minColumnWidth {
		return invalid("ui.column_width", c.UI.ColumnWidth, fmt.Sprintf("must be at least %d", minColumnWidth))
	}
	if c.UI.TickRate < 0 {
		return invalid("ui.tick_rate", c.UI.TickRate, "must not be negative")
	}
	if c.UI.MailboxCapacity < 1 {
		return invalid("ui.mailbox_capacity", c.UI.MailboxCapacity, "must be at least 1")
	}
	if _, err := c.ThemeColors(); err != nil {
		return err
	}
	if _, err := parseLevel(c.Logging.Level); err != nil {
		return invalid("logging.level", c.Logging.Level, "valid: debug, info, warn, error")
	}
	if c.Tracing.Enabled && strings.TrimSpace(c.Tracing.File) == "" {
		return invalid("tracing.file", c.Tracing.File, "required when tracing is enabled")
	}
	if c.Debug.Addr != "" && !isLoopbackBindAddress(c.Debug.Addr) {
		return invalid("debug.addr", c.Debug.Addr, "must bind a loopback address")
	}
	return nil
}

func invalid(field string, value any, reason string) error {
	return errors.Newf(errors.ErrCodeConfigInvalid, "invalid %s: %s", field, reason).
		WithContext("field", field).
		WithContext("value", value)
}

// ThemeColors resolves the palette names.
func (c *Config) ThemeColors() (theme.Colors, error) {
	var out theme.Colors
	entries := []struct {
		field string
		name  string
		dst   *backend.Color
	}{
		{"palette.background", c.Palette.Background, &out.Background},
		{"palette.directory", c.Palette.Directory, &out.Directory},
		{"palette.file", c.Palette.File, &out.File},
		{"palette.marked", c.Palette.Marked, &out.Marked},
		{"palette.status_fg", c.Palette.StatusFG, &out.StatusFG},
		{"palette.status_bg", c.Palette.StatusBG, &out.StatusBG},
		{"palette.active_tab_fg", c.Palette.ActiveTabFG, &out.ActiveTabFG},
		{"palette.active_tab_bg", c.Palette.ActiveTabBG, &out.ActiveTabBG},
	}
	for _, e := range entries {
		color, err := theme.ParseColor(e.name)
		if err != nil {
			return theme.Colors{}, errors.Wrap(err, errors.ErrCodeConfigInvalid, "invalid "+e.field).
				WithContext("field", e.field).
				WithRemediation("use one of the 16 terminal colors, e.g. cyan or bright-blue, or default")
		}
		*e.dst = color
	}
	return out, nil
}

// Theme builds the screen theme from the palette.
func (c *Config) Theme() (*theme.Theme, error) {
	colors, err := c.ThemeColors()
	if err != nil {
		return nil, err
	}
	return theme.New(colors), nil
}

// LogLevel returns the configured slog level.
func (c *Config) LogLevel() slog.Level {
	level, _ := parseLevel(c.Logging.Level)
	return level
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown level %q", s)
}

// LogDir returns the expanded log directory.
func (c *Config) LogDir() string {
	return expandHomeDir(c.Logging.Dir)
}

// TraceFile returns the expanded trace output path.
func (c *Config) TraceFile() string {
	return expandHomeDir(c.Tracing.File)
}

func expandHomeDir(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if path == "~" {
		if home, err := os.UserHomeDir(); err == nil && strings.TrimSpace(home) != "" {
			return home
		}
		return path
	}
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil && strings.TrimSpace(home) != "" {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
