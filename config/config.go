package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/boolean-maybe/timeline/notes"
	"github.com/boolean-maybe/timeline/timeline"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of the timeline editor.
type Config struct {
	// MaxHistory bounds the number of retained snapshots.
	MaxHistory int `yaml:"maxHistory"`
	// EnableRedo is a pointer so that an absent key keeps the default.
	EnableRedo *bool `yaml:"enableRedo"`
	// Style is the preview style: dark, light or auto.
	Style string `yaml:"style"`
}

// Default returns the built-in configuration.
func Default() Config {
	opts := timeline.DefaultOptions()
	return Config{
		MaxHistory: opts.MaxHistory,
		EnableRedo: boolPtr(opts.EnableRedo),
		Style:      notes.StyleAuto,
	}
}

func boolPtr(v bool) *bool {
	return &v
}

// Load reads the YAML file at path on top of Default.
// An empty path or a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg.normalize(), nil
}

func (c Config) normalize() Config {
	def := Default()
	if c.MaxHistory <= 0 {
		c.MaxHistory = def.MaxHistory
	}
	if c.EnableRedo == nil {
		c.EnableRedo = def.EnableRedo
	}
	if c.Style == "" {
		c.Style = def.Style
	}
	return c
}

// Options converts the configuration to manager options.
func (c Config) Options() timeline.Options {
	c = c.normalize()
	return timeline.Options{
		MaxHistory: c.MaxHistory,
		EnableRedo: *c.EnableRedo,
	}
}
