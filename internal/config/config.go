package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mori5600/scoop-gui/internal/scoop"
)

// Seconds is an optional per-operation timeout override. Zero means "keep
// the built-in default".
type Seconds int

// Apply overrides the command's timeout when the value is set.
func (s Seconds) Apply(cmd scoop.Command) scoop.Command {
	if s > 0 {
		cmd.Timeout = time.Duration(s) * time.Second
	}
	return cmd
}

type Timeouts struct {
	Export     Seconds `yaml:"export"`
	Search     Seconds `yaml:"search"`
	Install    Seconds `yaml:"install"`
	Update     Seconds `yaml:"update"`
	UpdateAll  Seconds `yaml:"update_all"`
	Uninstall  Seconds `yaml:"uninstall"`
	Cleanup    Seconds `yaml:"cleanup"`
	CleanupAll Seconds `yaml:"cleanup_all"`
}

type Config struct {
	// Shell overrides PowerShell auto-detection (path or executable name).
	Shell    string   `yaml:"shell"`
	Timeouts Timeouts `yaml:"timeouts"`
}

// DefaultPath is looked up when no -config flag is given. A missing file is
// not an error.
const DefaultPath = "scoop-gui.yaml"

// Load reads the YAML config at path. An empty path means DefaultPath, and
// for DefaultPath a missing file yields the zero config.
func Load(path string) (Config, error) {
	optional := path == ""
	if optional {
		path = DefaultPath
	}

	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	for _, t := range []struct {
		name  string
		value Seconds
	}{
		{"export", c.Timeouts.Export},
		{"search", c.Timeouts.Search},
		{"install", c.Timeouts.Install},
		{"update", c.Timeouts.Update},
		{"update_all", c.Timeouts.UpdateAll},
		{"uninstall", c.Timeouts.Uninstall},
		{"cleanup", c.Timeouts.Cleanup},
		{"cleanup_all", c.Timeouts.CleanupAll},
	} {
		if t.value < 0 {
			return fmt.Errorf("timeouts.%s must not be negative", t.name)
		}
	}
	return nil
}
