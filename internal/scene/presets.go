package scene

import (
	"fmt"
	"sort"

	"isofield/pkg/core"
)

// presets tweak the default configuration into a named look.
var presets = map[string]func(*Config){
	"default": func(*Config) {},
	"islands": func(c *Config) {
		c.Noise.Octaves = 5
		c.Noise.Persistence = 0.45
		c.Noise.BaseScale = 0.004
		c.Threshold = 55
		c.GridStep = 10
		c.Layers.Threshold = true
		c.BelowColor = "#1b3a6b"
		c.AboveColor = "#3f7f3a"
	},
	"coastline": func(c *Config) {
		c.Noise.Octaves = 8
		c.Noise.Lacunarity = 2.2
		c.Noise.Persistence = 0.55
		c.Noise.BaseScale = 0.003
		c.Threshold = 50
		c.GridStep = 6
	},
	"fine": func(c *Config) {
		c.Noise.BaseScale = 0.01
		c.GridStep = 5
		c.Threshold = 50
	},
	"blobs": func(c *Config) {
		c.Noise.Octaves = 1
		c.Noise.BaseScale = 0.008
		c.Threshold = 50
		c.GridStep = 10
		c.Layers.CrossingPoints = true
	},
}

// Presets lists the available preset names in sorted order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyPreset overwrites cfg with the named preset on top of the defaults,
// keeping the canvas size and seed.
func ApplyPreset(cfg *Config, name string) error {
	apply, ok := presets[name]
	if !ok {
		if hint, found := core.Suggest(name, Presets()); found {
			return fmt.Errorf("unknown preset %q (did you mean %q?)", name, hint)
		}
		return fmt.Errorf("unknown preset %q", name)
	}
	next := DefaultConfig()
	next.Width, next.Height = cfg.Width, cfg.Height
	next.Seed = cfg.Seed
	apply(&next)
	*cfg = next
	return nil
}
