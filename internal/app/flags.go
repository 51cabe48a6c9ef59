package app

import (
	"errors"
	"flag"
	"fmt"
)

// Config represents the viewer's command-line parameters. Scene parameters
// are bound separately by scene.Config.Bind.
type Config struct {
	Preset   string
	TPS      int
	HUDWidth int
	Rate     int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Preset: "", TPS: 60, HUDWidth: 260, Rate: 30}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Preset, "preset", c.Preset, "named parameter preset applied before other flags")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "control panel width in pixels (0 hides it)")
	fs.IntVar(&c.Rate, "rate", c.Rate, "maximum recomputes per second while editing")
}

// Validate rejects values the viewer cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.TPS))
	}
	if c.HUDWidth < 0 {
		errs = append(errs, fmt.Errorf("hud width must not be negative, got %d", c.HUDWidth))
	}
	if c.Rate <= 0 {
		errs = append(errs, fmt.Errorf("rate must be positive, got %d", c.Rate))
	}
	return errors.Join(errs...)
}
