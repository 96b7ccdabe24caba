// Package uiconfig loads optional per-column display overrides from YAML.
// Hosts use it to rename labels or force a plain text control for columns
// whose generated widget gets in the way.
package uiconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Widget override values accepted in the config file.
const (
	WidgetEntry   = "entry"
	WidgetTextBox = "textbox"
)

// ColumnOverride adjusts how one column is presented.
type ColumnOverride struct {
	// Label replaces the generated label text when non-empty.
	Label string `yaml:"label"`
	// Widget forces a plain text control ("entry" or "textbox") instead of
	// the type-derived widget.
	Widget string `yaml:"widget"`
}

// Config is the full override document, keyed by column name.
type Config struct {
	Columns map[string]ColumnOverride `yaml:"columns"`
}

// Parse decodes and validates an override document.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("uiconfig: parse: %w", err)
	}
	for name, override := range cfg.Columns {
		switch override.Widget {
		case "", WidgetEntry, WidgetTextBox:
		default:
			return nil, fmt.Errorf("uiconfig: column %q: unknown widget %q", name, override.Widget)
		}
	}
	return &cfg, nil
}

// Load reads and parses an override file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("uiconfig: read %s: %w", path, err)
	}
	return Parse(data)
}

// For returns the override for a column, if any.
func (c *Config) For(column string) (ColumnOverride, bool) {
	if c == nil || c.Columns == nil {
		return ColumnOverride{}, false
	}
	override, ok := c.Columns[column]
	return override, ok
}
