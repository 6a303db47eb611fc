package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/odvcencio/filepane/pkg/errors"
)

// loadAndMerge loads a YAML file and merges it into the config. Read
// errors are returned as-is so callers can test os.IsNotExist.
func loadAndMerge(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var override Config
	if err := yaml.Unmarshal(data, &override); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigParse, "parsing YAML").WithContext("path", path)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigParse, "parsing YAML").WithContext("path", path)
	}

	mergeConfigs(cfg, &override, raw)
	return nil
}

// mergeConfigs merges override into base. Strings replace when
// non-empty; numbers and bools replace when the key is present so a
// file can set them to zero or false.
func mergeConfigs(base, override *Config, raw map[string]any) {
	if override == nil {
		return
	}

	if fieldSet(raw, "ui", "tabs") {
		base.UI.Tabs = override.UI.Tabs
	}
	if fieldSet(raw, "ui", "show_detail") {
		base.UI.ShowDetail = override.UI.ShowDetail
	}
	if fieldSet(raw, "ui", "column_width") {
		base.UI.ColumnWidth = override.UI.ColumnWidth
	}
	if fieldSet(raw, "ui", "tick_rate") {
		base.UI.TickRate = override.UI.TickRate
	}
	if fieldSet(raw, "ui", "mailbox_capacity") {
		base.UI.MailboxCapacity = override.UI.MailboxCapacity
	}

	mergeString(&base.Palette.Background, override.Palette.Background)
	mergeString(&base.Palette.Directory, override.Palette.Directory)
	mergeString(&base.Palette.File, override.Palette.File)
	mergeString(&base.Palette.Marked, override.Palette.Marked)
	mergeString(&base.Palette.StatusFG, override.Palette.StatusFG)
	mergeString(&base.Palette.StatusBG, override.Palette.StatusBG)
	mergeString(&base.Palette.ActiveTabFG, override.Palette.ActiveTabFG)
	mergeString(&base.Palette.ActiveTabBG, override.Palette.ActiveTabBG)

	mergeString(&base.Logging.Dir, override.Logging.Dir)
	mergeString(&base.Logging.Level, override.Logging.Level)

	if fieldSet(raw, "tracing", "enabled") {
		base.Tracing.Enabled = override.Tracing.Enabled
	}
	mergeString(&base.Tracing.File, override.Tracing.File)

	// An explicit empty addr turns the endpoint back off.
	if fieldSet(raw, "debug", "addr") {
		base.Debug.Addr = override.Debug.Addr
	}
}

func mergeString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// fieldSet reports whether the nested key path exists in the raw YAML.
func fieldSet(raw map[string]any, path ...string) bool {
	if len(path) == 0 || raw == nil {
		return false
	}
	current := any(raw)
	for _, key := range path {
		m, ok := current.(map[string]any)
		if !ok {
			return false
		}
		val, ok := m[key]
		if !ok {
			return false
		}
		current = val
	}
	return true
}
