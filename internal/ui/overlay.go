//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"isofield/internal/scene"
	"isofield/pkg/contour"
)

// Overlay draws the vector layers of a scene result: sample points,
// crossing markers and contour paths.
type Overlay struct {
	closed   color.Color
	open     color.Color
	inside   color.Color
	outside  color.Color
	crossing color.Color

	lineWidth float32
	radius    float32
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	return &Overlay{
		closed:    color.NRGBA{R: 255, G: 59, B: 48, A: 255},
		open:      color.NRGBA{R: 10, G: 132, B: 255, A: 255},
		inside:    color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		outside:   color.NRGBA{R: 60, G: 60, B: 60, A: 255},
		crossing:  color.NRGBA{R: 255, G: 204, B: 0, A: 255},
		lineWidth: 2,
		radius:    2.5,
	}
}

// Draw paints the layers enabled in the result's config.
func (o *Overlay) Draw(screen *ebiten.Image, res *scene.Result) {
	if o == nil || res == nil {
		return
	}
	layers := res.Config.Layers
	if layers.SamplePoints {
		o.drawSamples(screen, res.Grid, res.Config.Threshold)
	}
	if layers.CrossingPoints {
		for _, p := range res.Cells.Crossings() {
			vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), o.radius, o.crossing, true)
		}
	}
	if layers.Lines {
		o.drawPaths(screen, res.Paths)
	}
}

func (o *Overlay) drawSamples(screen *ebiten.Image, grid *contour.Grid, threshold float64) {
	if grid.Empty() {
		return
	}
	for _, sp := range grid.Points {
		clr := o.outside
		if contour.Inside(sp.Value, threshold) {
			clr = o.inside
		}
		vector.DrawFilledCircle(screen, float32(sp.Point.X), float32(sp.Point.Y), o.radius, clr, true)
	}
}

func (o *Overlay) drawPaths(screen *ebiten.Image, paths []contour.Path) {
	for _, p := range paths {
		clr := o.open
		if p.Closed {
			clr = o.closed
		}
		for i := 1; i < len(p.Points); i++ {
			a, b := p.Points[i-1], p.Points[i]
			vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), o.lineWidth, clr, true)
		}
	}
}
