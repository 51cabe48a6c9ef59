// Package noise synthesizes a fractal (multi-octave) scalar field on the plane
// from a coherent-noise primitive.
package noise

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"isofield/pkg/core"
)

// ErrInvalidParams is returned when fractal parameters cannot produce a
// defined value.
var ErrInvalidParams = errors.New("invalid fractal noise params")

// DefaultSeed seeds the process-wide primitive used by Evaluate.
const DefaultSeed int64 = 1337

// Params controls how octaves are layered. Values are passed by value and
// never modified.
type Params struct {
	Octaves     int
	Lacunarity  float64
	Persistence float64
	BaseScale   float64
}

// DefaultParams mirrors the interactive tool's startup values.
func DefaultParams() Params {
	return Params{Octaves: 4, Lacunarity: 2, Persistence: 0.5, BaseScale: 0.005}
}

// Validate reports whether the params define a normalizable octave sum.
func (p Params) Validate() error {
	if p.Octaves < 1 {
		return fmt.Errorf("%w: octaves must be >= 1, got %d", ErrInvalidParams, p.Octaves)
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"lacunarity", p.Lacunarity},
		{"persistence", p.Persistence},
		{"base scale", p.BaseScale},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidParams, f.name, f.v)
		}
	}
	return nil
}

// Primitive is a coherent-noise source returning values in roughly [-1, 1].
// Implementations must be deterministic and safe for concurrent use.
type Primitive interface {
	Eval2(x, y float64) float64
}

// Field maps a plane point to a fractal noise value.
type Field func(p core.Point) float64

// Fractal layers octaves of a primitive.
type Fractal struct {
	Primitive Primitive
}

// Evaluate returns the normalized octave sum at p.
func (f Fractal) Evaluate(p core.Point, params Params) (float64, error) {
	if err := params.Validate(); err != nil {
		return 0, err
	}
	return sumOctaves(f.Primitive, p, params), nil
}

// NewField validates params once and returns a closure evaluating the
// fractal sum for prim.
func NewField(prim Primitive, params Params) (Field, error) {
	if prim == nil {
		return nil, errors.New("noise: nil primitive")
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return func(p core.Point) float64 {
		return sumOctaves(prim, p, params)
	}, nil
}

var (
	defaultOnce sync.Once
	defaultPrim Primitive
)

// Default returns the process-wide primitive shared by Evaluate.
func Default() Primitive {
	defaultOnce.Do(func() {
		defaultPrim = NewSimplex(DefaultSeed)
	})
	return defaultPrim
}

// Evaluate computes the fractal value at p using the process-wide primitive.
// Identical arguments always yield bit-identical results.
func Evaluate(p core.Point, params Params) (float64, error) {
	return Fractal{Primitive: Default()}.Evaluate(p, params)
}

// sumOctaves assumes params were validated.
func sumOctaves(prim Primitive, p core.Point, params Params) float64 {
	amplitude := 1.0
	frequency := 1.0
	sum := 0.0
	amplitudeSum := 0.0

	first := 0.0
	uniform := true
	for i := 0; i < params.Octaves; i++ {
		s := params.BaseScale * frequency
		v := prim.Eval2(p.X*s, p.Y*s)
		if i == 0 {
			first = v
		} else if v != first {
			uniform = false
		}
		sum += amplitude * v
		amplitudeSum += amplitude
		amplitude *= params.Persistence
		frequency *= params.Lacunarity
	}
	// When every octave sampled the same value c the weighted mean is exactly
	// c for any c and any weights. sum/amplitudeSum would only round-trip for
	// values and weights whose products happen to be exact in binary.
	if uniform {
		return first
	}
	return sum / amplitudeSum
}
