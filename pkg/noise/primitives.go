package noise

import (
	"fmt"
	"sort"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"

	"isofield/pkg/core"
)

// NewSimplex returns an OpenSimplex primitive for the given seed.
func NewSimplex(seed int64) Primitive {
	return opensimplex.New(seed)
}

type perlinPrimitive struct {
	p *perlin.Perlin
}

// NewPerlin returns a single-layer classic Perlin primitive. Layering is left
// to Fractal so both primitives honour the same octave parameters.
func NewPerlin(seed int64) Primitive {
	return perlinPrimitive{p: perlin.NewPerlin(2, 2, 1, seed)}
}

func (p perlinPrimitive) Eval2(x, y float64) float64 { return p.p.Noise2D(x, y) }

// Constant always returns its value. It is the stub used to check the
// normalization of the octave sum.
type Constant float64

// Eval2 implements Primitive.
func (c Constant) Eval2(float64, float64) float64 { return float64(c) }

// PrimitiveFactory builds a primitive from a seed.
type PrimitiveFactory func(seed int64) Primitive

var primitives = map[string]PrimitiveFactory{}

// Register adds a primitive factory under name.
func Register(name string, f PrimitiveFactory) {
	if name == "" || f == nil {
		return
	}
	primitives[name] = f
}

// Names lists registered primitives in sorted order.
func Names() []string {
	names := make([]string, 0, len(primitives))
	for name := range primitives {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup builds the named primitive.
func Lookup(name string, seed int64) (Primitive, error) {
	f, ok := primitives[name]
	if !ok {
		if hint, found := core.Suggest(name, Names()); found {
			return nil, fmt.Errorf("unknown primitive %q (did you mean %q?)", name, hint)
		}
		return nil, fmt.Errorf("unknown primitive %q", name)
	}
	return f(seed), nil
}

func init() {
	Register("simplex", NewSimplex)
	Register("perlin", NewPerlin)
}
