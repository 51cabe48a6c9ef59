package core

import (
	"testing"
	"time"
)

func TestRecomputeGateRateLimits(t *testing.T) {
	clock := time.Unix(100, 0)
	g := NewRecomputeGate(10)
	g.now = func() time.Time { return clock }

	if !g.Ready() {
		t.Fatal("a new gate should request the initial compute")
	}
	if g.Ready() {
		t.Fatal("gate must stay closed until marked dirty")
	}

	g.MarkDirty()
	clock = clock.Add(50 * time.Millisecond)
	if g.Ready() {
		t.Fatal("gate opened before the interval elapsed")
	}
	if !g.Dirty() {
		t.Fatal("pending request was dropped")
	}
	clock = clock.Add(60 * time.Millisecond)
	if !g.Ready() {
		t.Fatal("gate should open once the interval elapsed")
	}
	if g.Dirty() {
		t.Fatal("Ready should clear the pending request")
	}
}

func TestFloatGridFill(t *testing.T) {
	g := NewFloatGrid(7, 5)
	g.Fill(func(x, y int) float64 { return float64(10*y + x) })
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if got := g.At(x, y); got != float64(10*y+x) {
				t.Fatalf("(%d,%d) = %v", x, y, got)
			}
		}
	}
	empty := NewFloatGrid(0, 3)
	empty.Fill(func(int, int) float64 { t.Fatal("fill on empty grid called fn"); return 0 })
	if len(empty.Values()) != 0 {
		t.Fatal("expected no values")
	}
}

func TestParameterControlClamp(t *testing.T) {
	ctrl := ParameterControl{Type: ParamTypeInt, Min: 1, Max: 8, HasMin: true, HasMax: true}
	if got := ctrl.Clamp(3.6); got != 4 {
		t.Fatalf("expected rounding to 4, got %v", got)
	}
	if got := ctrl.Clamp(12); got != 8 {
		t.Fatalf("expected clamp to 8, got %v", got)
	}
	if got := ctrl.Clamp(-2); got != 1 {
		t.Fatalf("expected clamp to 1, got %v", got)
	}
	f := ParameterControl{Type: ParamTypeFloat, Min: 0, HasMin: true}
	if got := f.Clamp(0.25); got != 0.25 {
		t.Fatalf("float control should not round, got %v", got)
	}
}

func TestSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{{Key: "octaves", Type: ParamTypeInt, Value: "4"}}},
		{Name: "B", Params: []Parameter{{Key: "lines", Type: ParamTypeBool, Value: "true"}}},
	}}
	p, ok := snap.Lookup("lines")
	if !ok {
		t.Fatal("expected lines parameter")
	}
	if v, ok := p.Float(); !ok || v != 1 {
		t.Fatalf("expected bool to read as 1, got %v %v", v, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("unexpected parameter")
	}
}
