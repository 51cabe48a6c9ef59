package contour

import (
	"github.com/dgravesa/go-parallel/parallel"

	"isofield/pkg/core"
)

// NoCell marks an absent neighbour in Edge.Cells.
const NoCell = -1

// Side names the edges of a square in tracing scan order.
type Side int

const (
	Top Side = iota
	Right
	Bottom
	Left
)

func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	default:
		return "side?"
	}
}

// Edge is one side of a unit cell, shared by the one or two cells that touch
// it. A and B index the bounding samples in the grid; Cells holds the
// adjacent square indices (above/left first), NoCell when absent.
type Edge struct {
	A, B        int
	Cells       [2]int
	Crossing    core.Point
	HasCrossing bool
}

// Square is a grid cell referencing its four shared edges by index.
// SaddleConnection is only meaningful when Saddle is set: true pairs
// top with right and bottom with left, false pairs top with left and bottom
// with right.
type Square struct {
	Edges            [4]int
	Saddle           bool
	SaddleConnection bool
}

// Edge returns the edge index on side s.
func (sq Square) Edge(s Side) int { return sq.Edges[s] }

// CellGraph is the arena holding every edge and square of a grid. Horizontal
// edges come first, then vertical edges. Squares are row-major.
type CellGraph struct {
	Rows, Cols int
	Threshold  float64
	Edges      []Edge
	Squares    []Square
}

// BuildCells builds the square graph of g against threshold. Each edge, and
// therefore each crossing point, exists exactly once and is referenced by
// index from both adjacent squares. Grids smaller than 2x2 yield an empty
// graph.
func BuildCells(g *Grid, threshold float64) *CellGraph {
	cg := &CellGraph{Threshold: threshold}
	if g.Empty() || g.Rows < 2 || g.Cols < 2 {
		return cg
	}
	R, C := g.Rows, g.Cols
	cg.Rows, cg.Cols = R-1, C-1

	horizontal := R * (C - 1)
	vertical := (R - 1) * C
	cg.Edges = make([]Edge, horizontal+vertical)

	// Edges and crossings first. Squares only read them, so this pass must
	// finish before the next one starts.
	parallel.For(len(cg.Edges), func(i, _ int) {
		var e Edge
		if i < horizontal {
			r, c := i/(C-1), i%(C-1)
			e = Edge{A: g.Index(r, c), B: g.Index(r, c+1), Cells: [2]int{NoCell, NoCell}}
			if r > 0 {
				e.Cells[0] = (r-1)*cg.Cols + c
			}
			if r < cg.Rows {
				e.Cells[1] = r*cg.Cols + c
			}
		} else {
			j := i - horizontal
			r, c := j/C, j%C
			e = Edge{A: g.Index(r, c), B: g.Index(r+1, c), Cells: [2]int{NoCell, NoCell}}
			if c > 0 {
				e.Cells[0] = r*cg.Cols + c - 1
			}
			if c < cg.Cols {
				e.Cells[1] = r*cg.Cols + c
			}
		}
		e.Crossing, e.HasCrossing = crossing(g.Points[e.A], g.Points[e.B], threshold)
		cg.Edges[i] = e
	})

	cg.Squares = make([]Square, cg.Rows*cg.Cols)
	parallel.For(len(cg.Squares), func(i, _ int) {
		r, c := i/cg.Cols, i%cg.Cols
		sq := Square{Edges: [4]int{
			Top:    r*(C-1) + c,
			Right:  horizontal + r*C + c + 1,
			Bottom: (r+1)*(C-1) + c,
			Left:   horizontal + r*C + c,
		}}
		tl := Inside(g.At(r, c).Value, threshold)
		tr := Inside(g.At(r, c+1).Value, threshold)
		bl := Inside(g.At(r+1, c).Value, threshold)
		br := Inside(g.At(r+1, c+1).Value, threshold)
		if tl == br && tr == bl && tl != tr {
			sq.Saddle = true
			// Heuristic: the high diagonal is always joined.
			sq.SaddleConnection = tl
		}
		cg.Squares[i] = sq
	})
	return cg
}

// crossing interpolates where the threshold is met between a and b.
func crossing(a, b SamplePoint, threshold float64) (core.Point, bool) {
	if Inside(a.Value, threshold) == Inside(b.Value, threshold) {
		return core.Point{}, false
	}
	if a.Value == b.Value {
		return core.Point{}, false
	}
	t := (threshold - a.Value) / (b.Value - a.Value)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return core.Lerp(a.Point, b.Point, t), true
}

// Len returns the number of squares.
func (cg *CellGraph) Len() int {
	if cg == nil {
		return 0
	}
	return len(cg.Squares)
}

// Index returns the square index of (row, col).
func (cg *CellGraph) Index(row, col int) int { return row*cg.Cols + col }

// Square returns the square at (row, col).
func (cg *CellGraph) Square(row, col int) Square { return cg.Squares[cg.Index(row, col)] }

// Across returns the square on the other side of edge from cell, or NoCell.
func (cg *CellGraph) Across(edge, cell int) int {
	e := cg.Edges[edge]
	switch cell {
	case e.Cells[0]:
		return e.Cells[1]
	case e.Cells[1]:
		return e.Cells[0]
	default:
		return NoCell
	}
}

// CrossingCount returns the number of edges carrying a crossing point.
func (cg *CellGraph) CrossingCount() int {
	if cg == nil {
		return 0
	}
	n := 0
	for _, e := range cg.Edges {
		if e.HasCrossing {
			n++
		}
	}
	return n
}

// Crossings returns every crossing point in edge order, for marker rendering.
func (cg *CellGraph) Crossings() []core.Point {
	if cg == nil {
		return nil
	}
	var pts []core.Point
	for _, e := range cg.Edges {
		if e.HasCrossing {
			pts = append(pts, e.Crossing)
		}
	}
	return pts
}

// SaddleCount returns the number of ambiguous squares.
func (cg *CellGraph) SaddleCount() int {
	if cg == nil {
		return 0
	}
	n := 0
	for _, sq := range cg.Squares {
		if sq.Saddle {
			n++
		}
	}
	return n
}
