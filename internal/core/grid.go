package core

import "github.com/dgravesa/go-parallel/parallel"

// FloatGrid stores a 2D raster of float values in row-major order.
type FloatGrid struct {
	W, H int
	data []float64
}

// NewFloatGrid allocates a grid with the given dimensions. Non-positive
// dimensions produce an empty grid.
func NewFloatGrid(w, h int) *FloatGrid {
	if w <= 0 || h <= 0 {
		return &FloatGrid{}
	}
	return &FloatGrid{W: w, H: h, data: make([]float64, w*h)}
}

// Values exposes the backing slice so callers can read/write values directly.
func (g *FloatGrid) Values() []float64 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *FloatGrid) Index(x, y int) int { return y*g.W + x }

// At returns the value at (x, y).
func (g *FloatGrid) At(x, y int) float64 { return g.data[g.Index(x, y)] }

// Fill evaluates fn for every pixel, one row per parallel task. fn must be
// safe for concurrent use.
func (g *FloatGrid) Fill(fn func(x, y int) float64) {
	if g.W == 0 || g.H == 0 {
		return
	}
	parallel.For(g.H, func(y, _ int) {
		row := g.data[y*g.W : (y+1)*g.W]
		for x := range row {
			row[x] = fn(x, y)
		}
	})
}
