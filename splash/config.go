// CLAUDE:SUMMARY Configuration struct, defaults, YAML loader and registry builder for splash resolution.
package splash

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/hazyhaar/splashscreen/horosafe"
)

// Config configures splash resolution.
type Config struct {
	// Resources is the directory holding UI resources (CLI only). Relative
	// paths are taken from the config file's directory.
	Resources string `yaml:"resources"`

	// MaxResourceSize caps the size of an HTML resource (default: 1 MiB).
	// A larger resource fails with ErrResourceRead wrapping
	// horosafe.ErrTooLarge.
	MaxResourceSize int64 `yaml:"max_resource_size"`

	// Sanitize passes rendered HTML through a UGC sanitising policy.
	Sanitize bool `yaml:"sanitize"`

	UIs []UIConfig `yaml:"uis"`

	// Logger for debug messages.
	Logger *slog.Logger `yaml:"-"`
}

// UIConfig declares one UI and its optional splash directive.
type UIConfig struct {
	Name   string     `yaml:"name"`
	Dir    string     `yaml:"dir"`
	Splash *Directive `yaml:"splash"`
}

func (c *Config) defaults() {
	if c.MaxResourceSize <= 0 {
		c.MaxResourceSize = horosafe.MaxResourceSize
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// LoadConfigFile reads a YAML config file.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Resources == "" {
		cfg.Resources = "."
	}
	if !filepath.IsAbs(cfg.Resources) {
		cfg.Resources = filepath.Join(filepath.Dir(path), cfg.Resources)
	}
	return cfg, nil
}

// Registry builds a Registry from the declared UIs, all sharing fsys.
func (c *Config) Registry(fsys fs.FS) (*Registry, error) {
	reg := NewRegistry()
	for i, u := range c.UIs {
		ui := UI{Name: u.Name, Resources: fsys, Dir: u.Dir}
		if err := reg.Register(ui, u.Splash); err != nil {
			return nil, fmt.Errorf("uis[%d]: %w", i, err)
		}
	}
	return reg, nil
}
