package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/digirain/internal/palette"
	"github.com/san-kum/digirain/internal/rain"
)

const (
	DefaultWidth    = 200
	DefaultHeight   = 60
	DefaultDelayMS  = 10
	DefaultRenderer = "tcell"
)

// Renderers lists the accepted values for Config.Renderer.
var Renderers = []string{"ansi", "tcell", "tui", "gui"}

var ErrInvalidConfig = errors.New("config: invalid value")

type Config struct {
	// Width and Height of the grid; 0 means "fit the terminal".
	Width        int         `yaml:"width"`
	Height       int         `yaml:"height"`
	DelayMS      int         `yaml:"delay_ms"`
	Seed         int64       `yaml:"seed"`
	Renderer     string      `yaml:"renderer"`
	Palettes     []string    `yaml:"palettes,omitempty"`
	Colors       []ColorSpec `yaml:"colors,omitempty"`
	FullAlphabet bool        `yaml:"full_alphabet"`
	ScrambleOdds int         `yaml:"scramble_odds"`
	SwitchFactor int         `yaml:"switch_factor"`
}

func DefaultConfig() *Config {
	return &Config{
		DelayMS:      DefaultDelayMS,
		Renderer:     DefaultRenderer,
		Palettes:     []string{"green"},
		ScrambleOdds: rain.DefaultScrambleOdds,
		SwitchFactor: rain.DefaultSwitchFactor,
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path on top of a copy of base; fields absent from the file
// keep base's values. Colors and palettes are one setting: a file naming
// only one of them drops the other from base.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var keys map[string]yaml.Node
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return nil, err
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	_, hasColors := keys["colors"]
	_, hasPalettes := keys["palettes"]
	switch {
	case hasColors && !hasPalettes:
		cfg.Palettes = nil
	case hasPalettes && !hasColors:
		cfg.Colors = nil
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clone returns a deep copy, so presets can be applied without aliasing.
func (c *Config) Clone() *Config {
	out := *c
	out.Palettes = append([]string(nil), c.Palettes...)
	out.Colors = append([]ColorSpec(nil), c.Colors...)
	return &out
}

func (c *Config) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.DelayMS < 0 {
		return fmt.Errorf("%w: delay_ms must not be negative, got %d", ErrInvalidConfig, c.DelayMS)
	}
	if c.ScrambleOdds < 1 || c.SwitchFactor < 1 {
		return fmt.Errorf("%w: scramble_odds and switch_factor must be at least 1", ErrInvalidConfig)
	}
	if !validRenderer(c.Renderer) {
		return fmt.Errorf("%w: renderer %q (available: %v)", ErrInvalidConfig, c.Renderer, Renderers)
	}
	_, err := c.Palette()
	return err
}

// Palette resolves the colour triples to run with: explicit colors first,
// then the named palettes.
func (c *Config) Palette() ([]rain.ColorTriple, error) {
	out := make([]rain.ColorTriple, 0, len(c.Colors)+len(c.Palettes))
	for _, spec := range c.Colors {
		out = append(out, spec.Triple())
	}
	named, err := palette.Sets(c.Palettes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	out = append(out, named...)
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no palettes or colors configured", ErrInvalidConfig)
	}
	return out, nil
}

func (c *Config) Delay() time.Duration {
	return time.Duration(c.DelayMS) * time.Millisecond
}

// Options translates the engine settings into rain options. A zero seed
// leaves the engine randomly seeded.
func (c *Config) Options() []rain.Option {
	opts := []rain.Option{
		rain.WithScrambleOdds(c.ScrambleOdds),
		rain.WithSwitchFactor(c.SwitchFactor),
	}
	if c.Seed != 0 {
		opts = append(opts, rain.WithSeed(c.Seed))
	}
	if c.FullAlphabet {
		opts = append(opts, rain.WithFullAlphabet())
	}
	return opts
}

// Size returns the configured grid size, filling zero dimensions from the
// detected terminal size, or the classic 200x60 when detection failed.
func (c *Config) Size(termW, termH int) (int, int) {
	w, h := c.Width, c.Height
	if w == 0 {
		w = termW
	}
	if h == 0 {
		h = termH
	}
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return w, h
}

func validRenderer(name string) bool {
	for _, r := range Renderers {
		if r == name {
			return true
		}
	}
	return false
}
