package contour

import (
	"testing"

	"isofield/pkg/core"
	"isofield/pkg/noise"
)

func TestSaddleClassification(t *testing.T) {
	g := FromValues([][]float64{{10, 90}, {90, 10}}, 1)
	cg := BuildCells(g, 50)
	if cg.Len() != 1 {
		t.Fatalf("expected one square, got %d", cg.Len())
	}
	sq := cg.Square(0, 0)
	if !sq.Saddle {
		t.Fatal("expected saddle square")
	}
	if sq.SaddleConnection {
		t.Fatal("expected saddleConnection=false when top-left is below threshold")
	}

	want := map[Side]core.Point{
		Top:    core.Pt(0.5, 0),
		Right:  core.Pt(1, 0.5),
		Bottom: core.Pt(0.5, 1),
		Left:   core.Pt(0, 0.5),
	}
	for side, p := range want {
		e := cg.Edges[sq.Edge(side)]
		if !e.HasCrossing {
			t.Fatalf("%s edge has no crossing", side)
		}
		if !e.Crossing.Near(p, 1e-12) {
			t.Fatalf("%s crossing at %+v, expected %+v", side, e.Crossing, p)
		}
	}

	flipped := BuildCells(FromValues([][]float64{{90, 10}, {10, 90}}, 1), 50)
	if sq := flipped.Square(0, 0); !sq.Saddle || !sq.SaddleConnection {
		t.Fatalf("expected saddle with connection=true, got %+v", sq)
	}
}

func TestSaddleDeterministic(t *testing.T) {
	values := [][]float64{{61, 12}, {3, 77}}
	first := BuildCells(FromValues(values, 4), 40).Square(0, 0)
	for i := 0; i < 20; i++ {
		again := BuildCells(FromValues(values, 4), 40).Square(0, 0)
		if again != first {
			t.Fatalf("run %d: square %+v differs from %+v", i, again, first)
		}
	}
}

func TestNonSaddlePatterns(t *testing.T) {
	cases := [][][]float64{
		{{10, 10}, {10, 90}},
		{{90, 90}, {10, 10}},
		{{90, 10}, {90, 10}},
		{{90, 90}, {90, 10}},
		{{10, 10}, {10, 10}},
		{{90, 90}, {90, 90}},
	}
	for _, values := range cases {
		if sq := BuildCells(FromValues(values, 1), 50).Square(0, 0); sq.Saddle {
			t.Fatalf("%v classified as saddle", values)
		}
	}
}

func TestEdgesSharedBetweenNeighbours(t *testing.T) {
	field, err := noise.NewField(noise.NewSimplex(21), noise.DefaultParams())
	if err != nil {
		t.Fatalf("field: %v", err)
	}
	g := BuildGrid(200, 150, 10, Rescale(FromField(field), 0, 100))
	cg := BuildCells(g, 50)
	if cg.Rows != g.Rows-1 || cg.Cols != g.Cols-1 {
		t.Fatalf("cell graph %dx%d for grid %dx%d", cg.Rows, cg.Cols, g.Rows, g.Cols)
	}
	if want := g.Rows*(g.Cols-1) + (g.Rows-1)*g.Cols; len(cg.Edges) != want {
		t.Fatalf("expected %d edges, got %d", want, len(cg.Edges))
	}

	refs := make([]int, len(cg.Edges))
	for r := 0; r < cg.Rows; r++ {
		for c := 0; c < cg.Cols; c++ {
			sq := cg.Square(r, c)
			if c+1 < cg.Cols && sq.Edge(Right) != cg.Square(r, c+1).Edge(Left) {
				t.Fatalf("(%d,%d) right edge not shared with right neighbour", r, c)
			}
			if r+1 < cg.Rows && sq.Edge(Bottom) != cg.Square(r+1, c).Edge(Top) {
				t.Fatalf("(%d,%d) bottom edge not shared with lower neighbour", r, c)
			}
			idx := cg.Index(r, c)
			for _, edge := range sq.Edges {
				refs[edge]++
				e := cg.Edges[edge]
				if e.Cells[0] != idx && e.Cells[1] != idx {
					t.Fatalf("edge %d does not point back at square %d", edge, idx)
				}
			}
		}
	}
	for i, e := range cg.Edges {
		adjacent := 0
		for _, c := range e.Cells {
			if c != NoCell {
				adjacent++
			}
		}
		if adjacent == 0 || adjacent > 2 || refs[i] != adjacent {
			t.Fatalf("edge %d referenced %d times with %d adjacent cells", i, refs[i], adjacent)
		}
	}
}

func TestCrossingInterpolation(t *testing.T) {
	g := FromValues([][]float64{{0, 100}, {0, 100}}, 10)
	cg := BuildCells(g, 25)
	sq := cg.Square(0, 0)
	top := cg.Edges[sq.Edge(Top)]
	if !top.HasCrossing || !top.Crossing.Near(core.Pt(2.5, 0), 1e-12) {
		t.Fatalf("top crossing %+v (has=%v), expected (2.5,0)", top.Crossing, top.HasCrossing)
	}
	if cg.Edges[sq.Edge(Left)].HasCrossing || cg.Edges[sq.Edge(Right)].HasCrossing {
		t.Fatal("edges with both endpoints on one side must not cross")
	}
	if got := cg.CrossingCount(); got != 2 {
		t.Fatalf("expected 2 crossings, got %d", got)
	}
}

func TestCrossingAtThresholdValue(t *testing.T) {
	// A sample exactly on the threshold counts as inside, so the crossing
	// lands on that sample.
	g := FromValues([][]float64{{50, 0}, {50, 0}}, 1)
	cg := BuildCells(g, 50)
	top := cg.Edges[cg.Square(0, 0).Edge(Top)]
	if !top.HasCrossing || !top.Crossing.Near(core.Pt(0, 0), 1e-12) {
		t.Fatalf("expected crossing at the on-threshold sample, got %+v", top)
	}
}

func TestThresholdAboveRangeHasNoCrossings(t *testing.T) {
	field, err := noise.NewField(noise.NewSimplex(8), noise.DefaultParams())
	if err != nil {
		t.Fatalf("field: %v", err)
	}
	g := BuildGrid(160, 160, 16, Rescale(FromField(field), 0, 100))
	_, hi, _ := g.Range()
	cg := BuildCells(g, hi+1)
	if cg.Len() == 0 {
		t.Fatal("expected squares")
	}
	if n := cg.CrossingCount(); n != 0 {
		t.Fatalf("expected no crossings, got %d", n)
	}
	if paths := TracePaths(cg); len(paths) != 0 {
		t.Fatalf("expected no paths, got %d", len(paths))
	}
}

func TestBuildCellsNeedsTwoByTwo(t *testing.T) {
	for _, values := range [][][]float64{
		{{1, 2, 3}},
		{{1}, {2}, {3}},
		{},
	} {
		if cg := BuildCells(FromValues(values, 1), 1.5); cg.Len() != 0 || len(cg.Edges) != 0 {
			t.Fatalf("%v: expected empty graph", values)
		}
	}
}
