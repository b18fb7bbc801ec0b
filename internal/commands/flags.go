package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hay-kot/drawer/internal/core/config"
)

// Flags holds the global options shared by every command.
type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// Config is set by LoadConfig in the root Before hook.
	Config *config.Config
}

// LoadConfig reads ConfigPath into Config. A missing file yields the
// defaults.
func (f *Flags) LoadConfig() error {
	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	f.Config = cfg
	return nil
}

// ConfigTarget is the file config init writes.
func (f *Flags) ConfigTarget() string {
	if f.ConfigPath != "" {
		return f.ConfigPath
	}
	return DefaultConfigPath()
}

// DefaultConfigPath is drawer/config.yaml under XDG_CONFIG_HOME, or under
// ~/.config when that is unset.
func DefaultConfigPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "drawer", "config.yaml")
}
