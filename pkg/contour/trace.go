package contour

import (
	"slices"

	"isofield/pkg/core"
)

// Path is an ordered run of crossing points. A closed path repeats its first
// point at the end.
type Path struct {
	Points []core.Point
	Closed bool
}

// Length returns the polyline length of the path.
func (p Path) Length() float64 {
	total := 0.0
	for i := 1; i < len(p.Points); i++ {
		total += p.Points[i-1].Dist(p.Points[i])
	}
	return total
}

// TracePaths walks the crossing edges of cg and assembles them into paths.
// Every edge with a crossing ends up in exactly one path. The graph is not
// modified, so tracing the same graph twice yields the same result; a single
// call must still not share its graph with a concurrent trace of a graph
// that is being rebuilt.
func TracePaths(cg *CellGraph) []Path {
	if cg.Len() == 0 {
		return nil
	}
	t := newTracer(cg)
	return t.run()
}

// tracer owns the visited set for one run.
type tracer struct {
	cg      *CellGraph
	visited []bool
	visits  int
}

func newTracer(cg *CellGraph) *tracer {
	return &tracer{cg: cg, visited: make([]bool, len(cg.Edges))}
}

func (t *tracer) run() []Path {
	var paths []Path
	for cell, sq := range t.cg.Squares {
		for _, edge := range sq.Edges {
			if !t.cg.Edges[edge].HasCrossing || t.visited[edge] {
				continue
			}
			paths = append(paths, t.trace(edge, cell))
		}
	}
	return paths
}

func (t *tracer) mark(edge int) {
	t.visited[edge] = true
	t.visits++
}

// trace follows the contour through start, first into cell and then, if
// that walk runs into a boundary, backwards through the square on the other
// side of start.
func (t *tracer) trace(start, cell int) Path {
	t.mark(start)
	pts := []core.Point{t.cg.Edges[start].Crossing}

	forward, closed := t.walk(start, cell, start, true)
	pts = append(pts, forward...)
	if closed {
		return Path{Points: pts, Closed: true}
	}

	if other := t.cg.Across(start, cell); other != NoCell {
		backward, _ := t.walk(start, other, start, false)
		if len(backward) > 0 {
			slices.Reverse(backward)
			pts = append(backward, pts...)
		}
	}
	return Path{Points: pts}
}

// walk steps square to square starting in cell, having entered through
// entry. It reports closed when the walk arrives back at start.
func (t *tracer) walk(entry, cell, start int, allowClose bool) ([]core.Point, bool) {
	var pts []core.Point
	for cell != NoCell {
		next, ok := t.next(cell, entry, start, allowClose)
		if !ok {
			return pts, false
		}
		pts = append(pts, t.cg.Edges[next].Crossing)
		if next == start {
			return pts, true
		}
		t.mark(next)
		entry = next
		cell = t.cg.Across(next, cell)
	}
	return pts, false
}

func (t *tracer) available(edge, start int, allowClose bool) bool {
	if !t.visited[edge] {
		return true
	}
	return allowClose && edge == start
}

// next picks the exit edge of cell for a walk that entered through entry.
func (t *tracer) next(cell, entry, start int, allowClose bool) (int, bool) {
	sq := t.cg.Squares[cell]
	if sq.Saddle {
		side := slices.Index(sq.Edges[:], entry)
		if side < 0 {
			return 0, false
		}
		exit := sq.Edges[saddlePartner(Side(side), sq.SaddleConnection)]
		if !t.available(exit, start, allowClose) {
			return 0, false
		}
		return exit, true
	}

	found := -1
	for _, edge := range sq.Edges {
		if edge == entry || !t.cg.Edges[edge].HasCrossing || !t.available(edge, start, allowClose) {
			continue
		}
		if found >= 0 {
			// Ambiguous without being a saddle; treat as a dead end.
			return 0, false
		}
		found = edge
	}
	return found, found >= 0
}

// saddlePartner returns the side paired with s in a saddle square. The same
// pairing is used regardless of which side the walk came from, so the two
// segments of a saddle never cross.
func saddlePartner(s Side, connection bool) Side {
	if connection {
		switch s {
		case Top:
			return Right
		case Right:
			return Top
		case Bottom:
			return Left
		default:
			return Bottom
		}
	}
	switch s {
	case Top:
		return Left
	case Left:
		return Top
	case Bottom:
		return Right
	default:
		return Bottom
	}
}

// Summary aggregates a path set for reporting.
type Summary struct {
	Paths  int
	Closed int
	Open   int
	Points int
	Length float64
}

// Summarize collects counts and total length over paths.
func Summarize(paths []Path) Summary {
	var s Summary
	for _, p := range paths {
		s.Paths++
		if p.Closed {
			s.Closed++
		} else {
			s.Open++
		}
		s.Points += len(p.Points)
		s.Length += p.Length()
	}
	return s
}
