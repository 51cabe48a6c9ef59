// Package scene wires the noise field and the contour pipeline to a single
// configuration and recomputes every output from scratch on demand.
package scene

import (
	"fmt"
	"math"

	icore "isofield/internal/core"
	"isofield/pkg/contour"
	"isofield/pkg/core"
	"isofield/pkg/noise"
)

// Result holds the outputs of one computation. It is never mutated after
// Build returns, except for Rasterize filling Raster.
type Result struct {
	Config Config

	Field  noise.Field
	Sample contour.SampleFunc
	Grid   *contour.Grid
	Cells  *contour.CellGraph
	Paths  []contour.Path

	// Raster holds raw [-1, 1] field values per pixel once Rasterize ran.
	Raster *icore.FloatGrid
}

// Build runs noise -> grid -> cells -> paths for cfg using prim.
func Build(cfg Config, prim noise.Primitive) (*Result, error) {
	if err := cfg.Noise.Validate(); err != nil {
		return nil, err
	}
	if cfg.GridStep < 1 {
		return nil, fmt.Errorf("grid step must be >= 1, got %d", cfg.GridStep)
	}
	field, err := noise.NewField(prim, cfg.Noise)
	if err != nil {
		return nil, err
	}
	sample := PixelSampler(field, cfg.OffsetX, cfg.OffsetY)
	grid := contour.BuildGrid(float64(cfg.Width), float64(cfg.Height), float64(cfg.GridStep), sample)
	cells := contour.BuildCells(grid, cfg.Threshold)
	return &Result{
		Config: cfg,
		Field:  field,
		Sample: sample,
		Grid:   grid,
		Cells:  cells,
		Paths:  contour.TracePaths(cells),
	}, nil
}

// PixelSampler wraps field for pixel coordinates: the pan offset is applied
// first and the value is rescaled onto the display scale.
func PixelSampler(field noise.Field, offsetX, offsetY float64) contour.SampleFunc {
	return contour.Rescale(contour.Offset(contour.FromField(field), offsetX, offsetY), DisplayMin, DisplayMax)
}

// Rasterize evaluates the raw field at every pixel of the canvas.
func (r *Result) Rasterize() {
	cfg := r.Config
	r.Raster = icore.NewFloatGrid(cfg.Width, cfg.Height)
	r.Raster.Fill(func(x, y int) float64 {
		return r.Field(core.Point{X: float64(x) + cfg.OffsetX, Y: float64(y) + cfg.OffsetY})
	})
}

// Summary reports path statistics of the result.
func (r *Result) Summary() contour.Summary { return contour.Summarize(r.Paths) }

// Scene is the interactive model: a config plus the latest result.
type Scene struct {
	cfg    Config
	prim   noise.Primitive
	primID string
	primSd int64

	result *Result
}

// New validates cfg and returns a scene. Nothing is computed until
// Recompute is called.
func New(cfg Config) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Scene{cfg: cfg}, nil
}

// Name identifies the model.
func (s *Scene) Name() string { return "isofield" }

// Size returns the canvas dimensions.
func (s *Scene) Size() icore.Size { return icore.Size{W: s.cfg.Width, H: s.cfg.Height} }

// Config returns a copy of the current configuration.
func (s *Scene) Config() Config { return s.cfg }

// Result returns the latest computation, or nil before the first Recompute.
func (s *Scene) Result() *Result { return s.result }

// SetConfig replaces the configuration after validating it.
func (s *Scene) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.cfg = cfg
	return nil
}

// Recompute rebuilds every output, including the pixel raster, from the
// current configuration.
func (s *Scene) Recompute() error {
	prim, err := s.primitive()
	if err != nil {
		return err
	}
	res, err := Build(s.cfg, prim)
	if err != nil {
		return err
	}
	res.Rasterize()
	s.result = res
	return nil
}

func (s *Scene) primitive() (noise.Primitive, error) {
	if s.prim != nil && s.primID == s.cfg.Primitive && s.primSd == s.cfg.Seed {
		return s.prim, nil
	}
	prim, err := noise.Lookup(s.cfg.Primitive, s.cfg.Seed)
	if err != nil {
		return nil, err
	}
	s.prim, s.primID, s.primSd = prim, s.cfg.Primitive, s.cfg.Seed
	return prim, nil
}

// Pan drags the view by (dx, dy) pixels: content follows the pointer.
func (s *Scene) Pan(dx, dy float64) {
	s.cfg.OffsetX -= dx
	s.cfg.OffsetY -= dy
}

// ResetPan returns to the origin.
func (s *Scene) ResetPan() {
	s.cfg.OffsetX, s.cfg.OffsetY = 0, 0
}

// Resize changes the canvas size and reports whether it differs from the
// previous one. Negative sizes are treated as zero.
func (s *Scene) Resize(w, h int) bool {
	w, h = max(w, 0), max(h, 0)
	if w == s.cfg.Width && h == s.cfg.Height {
		return false
	}
	s.cfg.Width, s.cfg.Height = w, h
	return true
}

// Reseed switches the primitive seed.
func (s *Scene) Reseed(seed int64) { s.cfg.Seed = seed }

// Parameters exposes the configuration snapshot for the HUD.
func (s *Scene) Parameters() icore.ParameterSnapshot { return s.cfg.Parameters() }

// ParameterControls lists HUD-adjustable values.
func (s *Scene) ParameterControls() []icore.ParameterControl {
	out := make([]icore.ParameterControl, len(controls))
	copy(out, controls)
	return out
}

// SetParameter applies a clamped HUD adjustment.
func (s *Scene) SetParameter(key string, value float64) bool {
	if math.IsNaN(value) {
		return false
	}
	if _, ok := controlByKey[key]; !ok {
		return false
	}
	return s.cfg.setNumber(key, value)
}
