package noise

import (
	"errors"
	"math"
	"testing"

	"isofield/pkg/core"
)

func TestEvaluateDeterministic(t *testing.T) {
	params := Params{Octaves: 1, Lacunarity: 2, Persistence: 0.5, BaseScale: 0.01}
	p := core.Pt(10, 20)

	a, err := Evaluate(p, params)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	b, err := Evaluate(p, params)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if math.Float64bits(a) != math.Float64bits(b) {
		t.Fatalf("expected bit-identical results, got %v and %v", a, b)
	}
}

func TestEvaluateRejectsZeroOctaves(t *testing.T) {
	for _, octaves := range []int{0, -3} {
		params := DefaultParams()
		params.Octaves = octaves
		v, err := Evaluate(core.Pt(1, 1), params)
		if !errors.Is(err, ErrInvalidParams) {
			t.Fatalf("octaves=%d: expected ErrInvalidParams, got %v", octaves, err)
		}
		if v != 0 {
			t.Fatalf("octaves=%d: expected zero value alongside error, got %v", octaves, v)
		}
	}
}

func TestValidateRejectsNonFinite(t *testing.T) {
	params := DefaultParams()
	params.BaseScale = math.NaN()
	if err := params.Validate(); !errors.Is(err, ErrInvalidParams) {
		t.Fatalf("expected NaN base scale to be rejected, got %v", err)
	}
	params = DefaultParams()
	params.Lacunarity = math.Inf(1)
	if err := params.Validate(); !errors.Is(err, ErrInvalidParams) {
		t.Fatalf("expected infinite lacunarity to be rejected, got %v", err)
	}
}

func TestConstantPrimitiveIsFixedPoint(t *testing.T) {
	f := Fractal{Primitive: Constant(1.0)}
	got, err := f.Evaluate(core.Pt(3, 4), Params{Octaves: 3, Lacunarity: 2, Persistence: 0.5, BaseScale: 0.01})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if got != 1.0 {
		t.Fatalf("expected exactly 1.0, got %v", got)
	}

	rng := core.NewRNG(7)
	for i := 0; i < 500; i++ {
		c := rng.Float64In(-1, 1)
		params := Params{
			Octaves:     rng.IntIn(1, 8),
			Lacunarity:  rng.Float64In(1, 4),
			Persistence: rng.Float64In(0, 1),
			BaseScale:   rng.Float64In(0.0001, 1),
		}
		p := rng.PointIn(1000, 1000)
		got, err := Fractal{Primitive: Constant(c)}.Evaluate(p, params)
		if err != nil {
			t.Fatalf("evaluate %+v: %v", params, err)
		}
		if got != c {
			t.Fatalf("params %+v: expected %v, got %v", params, c, got)
		}
	}
}

func TestEvaluateBounded(t *testing.T) {
	rng := core.NewRNG(42)
	for _, name := range Names() {
		prim, err := Lookup(name, 99)
		if err != nil {
			t.Fatalf("lookup %s: %v", name, err)
		}
		for i := 0; i < 2000; i++ {
			params := Params{
				Octaves:     rng.IntIn(1, 8),
				Lacunarity:  rng.Float64In(1, 4),
				Persistence: rng.Float64In(0, 1),
				BaseScale:   rng.Float64In(0.0001, 1),
			}
			field, err := NewField(prim, params)
			if err != nil {
				t.Fatalf("new field: %v", err)
			}
			v := field(rng.PointIn(800, 600))
			if v < -1-1e-9 || v > 1+1e-9 {
				t.Fatalf("%s: value %v out of range for %+v", name, v, params)
			}
		}
	}
}

// countingPrimitive records the sample coordinates it receives.
type countingPrimitive struct {
	xs []float64
}

func (c *countingPrimitive) Eval2(x, y float64) float64 {
	c.xs = append(c.xs, x)
	return 0
}

func TestOctaveFrequencies(t *testing.T) {
	prim := &countingPrimitive{}
	params := Params{Octaves: 4, Lacunarity: 2, Persistence: 0.5, BaseScale: 0.5}
	if _, err := (Fractal{Primitive: prim}).Evaluate(core.Pt(2, 0), params); err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	want := []float64{1, 2, 4, 8}
	if len(prim.xs) != len(want) {
		t.Fatalf("expected %d octaves sampled, got %d", len(want), len(prim.xs))
	}
	for i := range want {
		if math.Abs(prim.xs[i]-want[i]) > 1e-12 {
			t.Fatalf("octave %d sampled at x=%v, expected %v", i, prim.xs[i], want[i])
		}
	}
}

func TestZeroPersistenceUsesFirstOctaveOnly(t *testing.T) {
	prim := NewSimplex(5)
	params := Params{Octaves: 6, Lacunarity: 3, Persistence: 0, BaseScale: 0.02}
	field, err := NewField(prim, params)
	if err != nil {
		t.Fatalf("new field: %v", err)
	}
	p := core.Pt(17, 31)
	want := prim.Eval2(p.X*0.02, p.Y*0.02)
	if got := field(p); math.Abs(got-want) > 1e-12 {
		t.Fatalf("expected first octave %v, got %v", want, got)
	}
}

func TestLookupSuggestsName(t *testing.T) {
	if _, err := Lookup("simplx", 1); err == nil {
		t.Fatal("expected unknown primitive error")
	} else if got := err.Error(); got != `unknown primitive "simplx" (did you mean "simplex"?)` {
		t.Fatalf("unexpected error text %q", got)
	}
	if _, err := Lookup("perlin", 1); err != nil {
		t.Fatalf("perlin lookup: %v", err)
	}
}

func TestNewFieldRejectsNilPrimitive(t *testing.T) {
	if _, err := NewField(nil, DefaultParams()); err == nil {
		t.Fatal("expected error for nil primitive")
	}
}
