package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/hop/internal/core/styles"
)

// Validate checks that the configuration is valid. Problems are reported
// together as criterio.FieldErrors.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("theme", c.Theme, themeExists),
		validateScrollOff(c.ScrollOff),
		c.validateKeybindings(),
	)
}

// ValidateFile validates the config file at configPath in addition to the
// loaded values. A missing file is not an error.
func (c *Config) ValidateFile(configPath string) error {
	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		c.Validate(),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

func themeExists(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", name, styles.ThemeNames())
	}
	return nil
}

func validateScrollOff(n int) error {
	if n < 0 {
		return criterio.NewFieldErrors("scrolloff", errors.New("must not be negative"))
	}
	return nil
}

// validateKeybindings checks action names and that no key is bound twice.
func (c *Config) validateKeybindings() error {
	var errs criterio.FieldErrorsBuilder

	actions := make([]string, 0, len(c.Keybindings))
	for action := range c.Keybindings {
		actions = append(actions, action)
	}
	slices.Sort(actions)

	owner := make(map[string]string)
	for _, action := range actions {
		field := fmt.Sprintf("keybindings.%s", action)
		keys := c.Keybindings[action]

		if !isValidAction(action) {
			errs = errs.Append(field, fmt.Errorf("unknown action %q (available: %v)", action, Actions))
			continue
		}
		if len(keys) == 0 {
			errs = errs.Append(field, errors.New("at least one key is required"))
			continue
		}

		for i, key := range keys {
			if key == "" {
				errs = errs.Append(fmt.Sprintf("%s[%d]", field, i), errors.New("key cannot be empty"))
				continue
			}
			if prev, ok := owner[key]; ok && prev != action {
				errs = errs.Append(fmt.Sprintf("%s[%d]", field, i), fmt.Errorf("key %q is already bound to %s", key, prev))
				continue
			}
			owner[key] = action
		}
	}

	return errs.ToError()
}
