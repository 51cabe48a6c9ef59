package scene

import (
	"errors"
	"flag"
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"

	"isofield/pkg/core"
	"isofield/pkg/noise"
)

// Display scale shared by sampled values and the threshold.
const (
	DisplayMin = 0.0
	DisplayMax = 100.0
)

// Layers toggles the optional overlays drawn on top of the grayscale field.
type Layers struct {
	Threshold      bool
	SamplePoints   bool
	CrossingPoints bool
	Lines          bool
}

// Config holds every input of one scene computation.
type Config struct {
	Width    int
	Height   int
	GridStep int

	// Threshold is on the display scale [DisplayMin, DisplayMax].
	Threshold float64

	// OffsetX/OffsetY translate pixel coordinates before sampling (panning).
	OffsetX float64
	OffsetY float64

	Noise     noise.Params
	Primitive string
	Seed      int64

	BelowColor string
	AboveColor string
	// Opacity of the threshold overlay in percent.
	Opacity float64

	Layers Layers
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:      400,
		Height:     400,
		GridStep:   40,
		Threshold:  25,
		Noise:      noise.DefaultParams(),
		Primitive:  "simplex",
		Seed:       noise.DefaultSeed,
		BelowColor: "#000000",
		AboveColor: "#808080",
		Opacity:    70,
		Layers:     Layers{Lines: true},
	}
}

// Validate rejects configurations the pipeline cannot evaluate. Degenerate
// sizes are allowed; they simply produce empty output.
func (c Config) Validate() error {
	if err := c.Noise.Validate(); err != nil {
		return err
	}
	if c.GridStep < 1 {
		return fmt.Errorf("grid step must be >= 1, got %d", c.GridStep)
	}
	if _, err := noise.Lookup(c.Primitive, c.Seed); err != nil {
		return err
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet. Flag names are
// the same keys FromMap and Apply accept.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "canvas width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "canvas height in pixels")
	fs.IntVar(&c.GridStep, "grid", c.GridStep, "marching squares grid step in pixels")
	fs.Float64Var(&c.Threshold, "threshold", c.Threshold, "iso threshold on the 0-100 display scale")
	fs.Float64Var(&c.OffsetX, "offset_x", c.OffsetX, "horizontal pan offset in pixels")
	fs.Float64Var(&c.OffsetY, "offset_y", c.OffsetY, "vertical pan offset in pixels")
	fs.IntVar(&c.Noise.Octaves, "octaves", c.Noise.Octaves, "noise octaves (1-8)")
	fs.Float64Var(&c.Noise.Lacunarity, "lacunarity", c.Noise.Lacunarity, "per-octave frequency multiplier (1-4)")
	fs.Float64Var(&c.Noise.Persistence, "persistence", c.Noise.Persistence, "per-octave amplitude multiplier (0-1)")
	fs.Float64Var(&c.Noise.BaseScale, "base_scale", c.Noise.BaseScale, "pixel to noise space scale")
	fs.StringVar(&c.Primitive, "primitive", c.Primitive, "coherent noise primitive ("+strings.Join(noise.Names(), ", ")+")")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "primitive seed")
	fs.StringVar(&c.BelowColor, "below", c.BelowColor, "threshold overlay color below the threshold")
	fs.StringVar(&c.AboveColor, "above", c.AboveColor, "threshold overlay color at or above the threshold")
	fs.Float64Var(&c.Opacity, "opacity", c.Opacity, "threshold overlay opacity in percent")
	fs.BoolVar(&c.Layers.Threshold, "show_threshold", c.Layers.Threshold, "draw the threshold overlay")
	fs.BoolVar(&c.Layers.SamplePoints, "show_samples", c.Layers.SamplePoints, "draw grid sample points")
	fs.BoolVar(&c.Layers.CrossingPoints, "show_crossings", c.Layers.CrossingPoints, "draw edge crossing markers")
	fs.BoolVar(&c.Layers.Lines, "show_lines", c.Layers.Lines, "draw traced contour paths")
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). A "preset" key is applied first; unparsable values are ignored and
// numeric values are clamped to the interactive ranges.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["preset"]; ok {
		_ = ApplyPreset(&c, v)
	}
	for key, value := range cfg {
		if key == "preset" {
			continue
		}
		c.set(key, value)
	}
	return c
}

// Keys lists every key accepted by FromMap and Apply, sorted. The short
// forms "w" and "h" are also accepted for width and height.
func Keys() []string {
	keys := []string{"preset", "width", "height", "seed", "primitive", "below", "above", "offset_x", "offset_y"}
	for _, c := range controls {
		keys = append(keys, c.Key)
	}
	sort.Strings(keys)
	return keys
}

// Apply sets each key to its textual value in key order. A "preset" key is
// applied first. Unknown keys and unparsable values are collected into one
// error; the remaining keys are still applied.
func (c *Config) Apply(overrides map[string]string) error {
	var errs []error
	if name, ok := overrides["preset"]; ok {
		if err := ApplyPreset(c, name); err != nil {
			errs = append(errs, err)
		}
	}
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		if k != "preset" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	known := Keys()
	for _, k := range keys {
		if c.set(k, overrides[k]) {
			continue
		}
		if !slices.Contains(known, k) {
			if guess, ok := core.Suggest(k, known); ok {
				errs = append(errs, fmt.Errorf("unknown key %q (did you mean %q?)", k, guess))
			} else {
				errs = append(errs, fmt.Errorf("unknown key %q", k))
			}
			continue
		}
		errs = append(errs, fmt.Errorf("invalid value %q for %s", overrides[k], k))
	}
	return errors.Join(errs...)
}

// set applies one textual override. It reports whether the key was known and
// the value parsed.
func (c *Config) set(key, value string) bool {
	switch key {
	case "width", "w":
		if parsed, err := strconv.Atoi(value); err == nil && parsed >= 0 {
			c.Width = parsed
			return true
		}
	case "height", "h":
		if parsed, err := strconv.Atoi(value); err == nil && parsed >= 0 {
			c.Height = parsed
			return true
		}
	case "seed":
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			c.Seed = parsed
			return true
		}
	case "primitive":
		if _, err := noise.Lookup(value, c.Seed); err == nil {
			c.Primitive = value
			return true
		}
	case "below":
		c.BelowColor = value
		return true
	case "above":
		c.AboveColor = value
		return true
	case "show_threshold", "show_samples", "show_crossings", "show_lines":
		if parsed, err := strconv.ParseBool(value); err == nil {
			c.setToggle(key, parsed)
			return true
		}
	default:
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return false
		}
		return c.setNumber(key, parsed)
	}
	return false
}

func (c *Config) setToggle(key string, on bool) {
	switch key {
	case "show_threshold":
		c.Layers.Threshold = on
	case "show_samples":
		c.Layers.SamplePoints = on
	case "show_crossings":
		c.Layers.CrossingPoints = on
	case "show_lines":
		c.Layers.Lines = on
	}
}

// setNumber applies a clamped numeric value for any control key.
func (c *Config) setNumber(key string, v float64) bool {
	if ctrl, ok := controlByKey[key]; ok {
		v = ctrl.Clamp(v)
	}
	switch key {
	case "grid":
		c.GridStep = int(v)
	case "threshold":
		c.Threshold = v
	case "offset_x":
		c.OffsetX = v
	case "offset_y":
		c.OffsetY = v
	case "octaves":
		c.Noise.Octaves = int(v)
	case "lacunarity":
		c.Noise.Lacunarity = v
	case "persistence":
		c.Noise.Persistence = v
	case "base_scale":
		c.Noise.BaseScale = v
	case "opacity":
		c.Opacity = v
	case "show_threshold", "show_samples", "show_crossings", "show_lines":
		c.setToggle(key, v != 0)
	default:
		return false
	}
	return true
}
