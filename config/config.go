// Package config loads the optional trellis.yaml file: window settings and
// the named color styles used by widget rendering.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up by LoadOptional.
const FileName = "trellis.yaml"

// Config represents trellis.yaml.
type Config struct {
	Window WindowConfig           `yaml:"window"`
	Debug  bool                   `yaml:"debug,omitempty"`
	Styles map[string]StyleConfig `yaml:"styles,omitempty"`
}

// WindowConfig contains host window settings.
type WindowConfig struct {
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
	Title  string `yaml:"title,omitempty"`
	TPS    int    `yaml:"tps,omitempty"`
	Vsync  *bool  `yaml:"vsync,omitempty"`
}

// StyleConfig is an ordered list of colors addressed by index.
type StyleConfig struct {
	Colors []Hex `yaml:"colors"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	vsync := true
	return &Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "Trellis",
			TPS:    60,
			Vsync:  &vsync,
		},
		Styles: map[string]StyleConfig{
			DefaultStyle: {Colors: defaultColors()},
		},
	}
}

// Load reads and validates the file at path. Missing fields take their
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// LoadOptional reads trellis.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Parse decodes YAML configuration and fills in defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Window.Width == 0 {
		c.Window.Width = def.Window.Width
	}
	if c.Window.Height == 0 {
		c.Window.Height = def.Window.Height
	}
	if strings.TrimSpace(c.Window.Title) == "" {
		c.Window.Title = def.Window.Title
	}
	if c.Window.TPS == 0 {
		c.Window.TPS = def.Window.TPS
	}
	if c.Window.Vsync == nil {
		c.Window.Vsync = def.Window.Vsync
	}
	if c.Styles == nil {
		c.Styles = make(map[string]StyleConfig)
	}
	if _, ok := c.Styles[DefaultStyle]; !ok {
		c.Styles[DefaultStyle] = def.Styles[DefaultStyle]
	}
}

func (c *Config) validate() error {
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS < 0 {
		return fmt.Errorf("invalid tps %d", c.Window.TPS)
	}
	for name, style := range c.Styles {
		if len(style.Colors) == 0 {
			return fmt.Errorf("style %q has no colors", name)
		}
	}
	return nil
}

// Palette builds the color lookup for the configured styles.
func (c *Config) Palette() *Palette {
	return NewPalette(c.Styles)
}
