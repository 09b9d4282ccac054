// Package config handles configuration loading and validation for hop.
package config

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/hop/internal/core/styles"
)

// Built-in action names for keybindings.
const (
	ActionLineUp    = "line_up"
	ActionLineDown  = "line_down"
	ActionMatchNext = "match_next"
	ActionMatchPrev = "match_prev"
	ActionSelect    = "select"
	ActionExit      = "exit"
)

// Actions lists every bindable action in display order.
var Actions = []string{
	ActionLineUp,
	ActionLineDown,
	ActionMatchPrev,
	ActionMatchNext,
	ActionSelect,
	ActionExit,
}

// defaultKeybindings maps actions to their built-in keys.
var defaultKeybindings = map[string][]string{
	ActionLineUp:    {"ctrl+k", "up"},
	ActionLineDown:  {"ctrl+j", "down"},
	ActionMatchPrev: {"ctrl+h", "left"},
	ActionMatchNext: {"ctrl+l", "right"},
	ActionSelect:    {"enter", "esc"},
	ActionExit:      {"ctrl+q", "ctrl+c"},
}

// Config holds the application configuration.
type Config struct {
	Theme string `yaml:"theme"`
	// NormalizeQuery lowercases the typed query before matching. Without it
	// uppercase query characters never match.
	NormalizeQuery *bool               `yaml:"normalize_query"`
	ScrollOff      int                 `yaml:"scrolloff"`
	LineNumbers    bool                `yaml:"line_numbers"`
	Keybindings    map[string][]string `yaml:"keybindings"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	normalize := true
	return Config{
		Theme:          styles.DefaultTheme,
		NormalizeQuery: &normalize,
		ScrollOff:      3,
		LineNumbers:    true,
		Keybindings:    mergeKeybindings(defaultKeybindings, nil),
	}
}

// Load reads and validates configuration from the given path.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg, err := Parse(configPath)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Parse reads configuration from the given path and merges it over the
// defaults without validating it.
func Parse(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	// Merge user keybindings into defaults (user config overrides defaults)
	cfg.Keybindings = mergeKeybindings(defaultKeybindings, cfg.Keybindings)

	cfg.applyDefaults()

	return &cfg, nil
}

// ShouldNormalizeQuery reports whether typed queries are lowercased.
func (c *Config) ShouldNormalizeQuery() bool {
	return c.NormalizeQuery == nil || *c.NormalizeQuery
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.NormalizeQuery == nil {
		c.NormalizeQuery = defaults.NormalizeQuery
	}
}

// mergeKeybindings merges user keybindings into defaults.
// A user entry replaces the default keys for that action.
func mergeKeybindings(defaults, user map[string][]string) map[string][]string {
	result := make(map[string][]string, len(defaults)+len(user))

	for action, keys := range defaults {
		result[action] = append([]string(nil), keys...)
	}

	for action, keys := range user {
		result[action] = append([]string(nil), keys...)
	}

	return result
}

func isValidAction(action string) bool {
	return slices.Contains(Actions, action)
}
