// Package contour extracts iso-threshold polylines from a sampled scalar
// field using marching squares.
//
// The pipeline is BuildGrid -> BuildCells -> TracePaths. Grids and cell graphs
// are immutable once built; tracing keeps its traversal state locally so a
// graph may be traced any number of times.
package contour

import (
	"math"

	"github.com/dgravesa/go-parallel/parallel"

	"isofield/pkg/core"
)

// SamplePoint is one lattice sample.
type SamplePoint struct {
	Point core.Point
	Value float64
}

// Inside is the project-wide classification rule: a sample is inside the
// region when its value is at or above the threshold.
func Inside(value, threshold float64) bool { return value >= threshold }

// Grid stores lattice samples in row-major order. Rows and Cols count lattice
// points, so a grid with samples has Rows-1 by Cols-1 cells.
type Grid struct {
	Rows, Cols int
	Step       float64
	Points     []SamplePoint
}

// BuildGrid samples fn on a lattice covering width x height with the given
// spacing. The last row and column may lie past width/height so the whole
// area is covered. Non-positive dimensions or step yield an empty grid.
//
// Samples are evaluated in parallel; fn must be safe for concurrent use.
func BuildGrid(width, height, step float64, fn SampleFunc) *Grid {
	if width <= 0 || height <= 0 || step <= 0 || fn == nil {
		return &Grid{Step: step}
	}
	cols := int(math.Ceil(width/step)) + 1
	rows := int(math.Ceil(height/step)) + 1
	g := &Grid{Rows: rows, Cols: cols, Step: step, Points: make([]SamplePoint, rows*cols)}

	parallel.For(rows, func(row, _ int) {
		base := row * cols
		for col := 0; col < cols; col++ {
			p := core.Point{X: float64(col) * step, Y: float64(row) * step}
			g.Points[base+col] = SamplePoint{Point: p, Value: fn(p)}
		}
	})
	return g
}

// FromValues builds a grid from explicit row-major values, placing lattice
// point (row, col) at (col*step, row*step). Ragged input is truncated to the
// shortest row.
func FromValues(values [][]float64, step float64) *Grid {
	if len(values) == 0 {
		return &Grid{Step: step}
	}
	cols := len(values[0])
	for _, row := range values {
		if len(row) < cols {
			cols = len(row)
		}
	}
	if cols == 0 {
		return &Grid{Step: step}
	}
	rows := len(values)
	g := &Grid{Rows: rows, Cols: cols, Step: step, Points: make([]SamplePoint, rows*cols)}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.Points[r*cols+c] = SamplePoint{
				Point: core.Point{X: float64(c) * step, Y: float64(r) * step},
				Value: values[r][c],
			}
		}
	}
	return g
}

// Empty reports whether the grid holds no samples.
func (g *Grid) Empty() bool { return g == nil || len(g.Points) == 0 }

// Index returns the linear index of lattice point (row, col).
func (g *Grid) Index(row, col int) int { return row*g.Cols + col }

// At returns the sample at (row, col).
func (g *Grid) At(row, col int) SamplePoint { return g.Points[g.Index(row, col)] }

// Mask classifies every sample against threshold using Inside.
func (g *Grid) Mask(threshold float64) []bool {
	if g.Empty() {
		return nil
	}
	mask := make([]bool, len(g.Points))
	for i, sp := range g.Points {
		mask[i] = Inside(sp.Value, threshold)
	}
	return mask
}

// Range returns the minimum and maximum sampled values. ok is false for an
// empty grid.
func (g *Grid) Range() (lo, hi float64, ok bool) {
	if g.Empty() {
		return 0, 0, false
	}
	lo, hi = g.Points[0].Value, g.Points[0].Value
	for _, sp := range g.Points[1:] {
		lo = math.Min(lo, sp.Value)
		hi = math.Max(hi, sp.Value)
	}
	return lo, hi, true
}
