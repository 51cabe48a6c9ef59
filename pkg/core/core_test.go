package core

import (
	"math"
	"testing"
)

func TestSuggest(t *testing.T) {
	names := []string{"coastline", "default", "islands", "blobs"}
	cases := map[string]string{
		"isalnds": "islands",
		"coast":   "coastline",
		"Default": "default",
		"blob":    "blobs",
		"defualt": "default",
	}
	for in, want := range cases {
		got, ok := Suggest(in, names)
		if !ok || got != want {
			t.Fatalf("Suggest(%q) = %q,%v; expected %q", in, got, ok, want)
		}
	}
	if got, ok := Suggest("volcano", names); ok {
		t.Fatalf("expected no suggestion, got %q", got)
	}
	if _, ok := Suggest("", names); ok {
		t.Fatal("empty input must not match")
	}
}

func TestRNGDeterministicRanges(t *testing.T) {
	a, b := NewRNG(9), NewRNG(9)
	for i := 0; i < 100; i++ {
		x, y := a.Float64In(2, 5), b.Float64In(2, 5)
		if x != y {
			t.Fatal("same seed produced different streams")
		}
		if x < 2 || x >= 5 {
			t.Fatalf("Float64In out of range: %v", x)
		}
		n := a.IntIn(1, 3)
		b.IntIn(1, 3)
		if n < 1 || n > 3 {
			t.Fatalf("IntIn out of range: %d", n)
		}
	}
}

func TestPointHelpers(t *testing.T) {
	p := Lerp(Pt(0, 0), Pt(10, 20), 0.25)
	if p != Pt(2.5, 5) {
		t.Fatalf("lerp = %+v", p)
	}
	if d := Pt(0, 0).Dist(Pt(3, 4)); d != 5 {
		t.Fatalf("dist = %v", d)
	}
	if !Pt(1, 1).Near(Pt(1+1e-12, 1), 1e-9) || Pt(1, 1).Near(Pt(1.1, 1), 1e-9) {
		t.Fatal("Near misbehaves")
	}
	if q := Pt(1, 2).Add(Pt(3, 4)).Sub(Pt(1, 1)).Scale(2); math.Abs(q.X-6) > 0 || q.Y != 10 {
		t.Fatalf("arithmetic = %+v", q)
	}
}
