package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/colonyops/hop/internal/core/config"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// Config is parsed in the Before hook and available to all commands.
	// It is not validated; commands that depend on it call ValidConfig.
	Config *config.Config
}

// ValidConfig returns the parsed config, or an error when it fails validation.
// Without a parsed config it loads ConfigPath directly.
func (f *Flags) ValidConfig() (*config.Config, error) {
	if f.Config == nil {
		cfg, err := config.Load(f.ConfigPath)
		if err != nil {
			return nil, err
		}
		f.Config = cfg
		return cfg, nil
	}
	if err := f.Config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", f.ConfigPath, err)
	}
	return f.Config, nil
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "hop", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/hop/hop.log
// On Linux: $XDG_STATE_HOME/hop/hop.log (defaults to ~/.local/state/hop/hop.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "hop", "hop.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "hop", "hop.log")
	}

	return filepath.Join(home, ".local", "state", "hop", "hop.log")
}
