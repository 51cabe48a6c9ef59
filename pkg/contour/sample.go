package contour

import (
	"isofield/pkg/core"
	"isofield/pkg/noise"
)

// SampleFunc maps a lattice point to the value stored in the grid.
type SampleFunc func(p core.Point) float64

// FromField adapts a noise field to a SampleFunc.
func FromField(f noise.Field) SampleFunc {
	if f == nil {
		return nil
	}
	return SampleFunc(f)
}

// Offset translates points by (dx, dy) before sampling. It is how panning is
// applied: the lattice stays put while the field slides beneath it.
func Offset(fn SampleFunc, dx, dy float64) SampleFunc {
	if fn == nil {
		return nil
	}
	if dx == 0 && dy == 0 {
		return fn
	}
	return func(p core.Point) float64 {
		return fn(core.Point{X: p.X + dx, Y: p.Y + dy})
	}
}

// Rescale maps the raw [-1, 1] field range linearly onto [lo, hi]. The
// threshold handed to BuildCells must use the same scale.
func Rescale(fn SampleFunc, lo, hi float64) SampleFunc {
	if fn == nil {
		return nil
	}
	return func(p core.Point) float64 {
		return lo + (fn(p)+1)/2*(hi-lo)
	}
}
