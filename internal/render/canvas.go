package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"

	icore "isofield/internal/core"
	"isofield/internal/scene"
	"isofield/pkg/contour"
	"isofield/pkg/core"
)

// Style holds the colors and sizes used for vector overlays.
type Style struct {
	ClosedColor   color.Color
	OpenColor     color.Color
	InsideColor   color.Color
	OutsideColor  color.Color
	CrossingColor color.Color

	LineWidth   float64
	PointRadius float64
}

// DefaultStyle draws closed contours in red and open ones in blue.
func DefaultStyle() Style {
	return Style{
		ClosedColor:   color.NRGBA{R: 255, G: 59, B: 48, A: 255},
		OpenColor:     color.NRGBA{R: 10, G: 132, B: 255, A: 255},
		InsideColor:   color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		OutsideColor:  color.NRGBA{R: 60, G: 60, B: 60, A: 255},
		CrossingColor: color.NRGBA{R: 255, G: 204, B: 0, A: 255},
		LineWidth:     2,
		PointRadius:   2.5,
	}
}

// Canvas is an offscreen drawing surface for headless rendering.
type Canvas struct {
	dc    *gg.Context
	style Style
	w, h  int
}

// NewCanvas allocates a canvas. gg needs at least one pixel, so empty sizes
// are bumped to 1x1.
func NewCanvas(w, h int, style Style) *Canvas {
	cw, ch := max(w, 1), max(h, 1)
	return &Canvas{dc: gg.NewContext(cw, ch), style: style, w: cw, h: ch}
}

// DrawGrayscale paints the raw field as gray levels.
func (c *Canvas) DrawGrayscale(raster *icore.FloatGrid) {
	if raster == nil || raster.W == 0 || raster.H == 0 {
		return
	}
	img := image.NewNRGBA(image.Rect(0, 0, raster.W, raster.H))
	FillGrayscale(img.Pix, raster)
	c.dc.DrawImage(img, 0, 0)
}

// DrawThreshold blends a two-color region fill over the canvas.
func (c *Canvas) DrawThreshold(raster *icore.FloatGrid, threshold float64, below, above color.Color, opacity float64) {
	if raster == nil || raster.W == 0 || raster.H == 0 {
		return
	}
	img := image.NewNRGBA(image.Rect(0, 0, raster.W, raster.H))
	FillThreshold(img.Pix, raster, threshold, below, above, opacity)
	c.dc.DrawImage(img, 0, 0)
}

// DrawSamples marks every lattice point, colored by its inside state.
func (c *Canvas) DrawSamples(grid *contour.Grid, threshold float64) {
	if grid.Empty() {
		return
	}
	mask := grid.Mask(threshold)
	for i, sp := range grid.Points {
		c.dc.DrawCircle(sp.Point.X, sp.Point.Y, c.style.PointRadius)
		if mask[i] {
			c.dc.SetColor(c.style.InsideColor)
		} else {
			c.dc.SetColor(c.style.OutsideColor)
		}
		c.dc.Fill()
	}
}

// DrawCrossings marks each edge crossing.
func (c *Canvas) DrawCrossings(points []core.Point) {
	if len(points) == 0 {
		return
	}
	c.dc.SetColor(c.style.CrossingColor)
	for _, p := range points {
		c.dc.DrawCircle(p.X, p.Y, c.style.PointRadius)
	}
	c.dc.Fill()
}

// DrawPaths strokes every path; closed and open paths use different colors.
func (c *Canvas) DrawPaths(paths []contour.Path) {
	c.dc.SetLineWidth(c.style.LineWidth)
	c.dc.SetLineCapRound()
	c.dc.SetLineJoinRound()
	for _, p := range paths {
		if len(p.Points) < 2 {
			continue
		}
		c.dc.NewSubPath()
		c.dc.MoveTo(p.Points[0].X, p.Points[0].Y)
		for _, pt := range p.Points[1:] {
			c.dc.LineTo(pt.X, pt.Y)
		}
		if p.Closed {
			c.dc.ClosePath()
			c.dc.SetColor(c.style.ClosedColor)
		} else {
			c.dc.SetColor(c.style.OpenColor)
		}
		c.dc.Stroke()
	}
}

// Image returns the rendered image.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

// SavePNG writes the canvas to path.
func (c *Canvas) SavePNG(path string) error { return c.dc.SavePNG(path) }

// DrawResult composes the layers enabled in the result's config: grayscale
// field, threshold overlay, sample points, crossing markers, then paths.
func DrawResult(res *scene.Result, style Style) *Canvas {
	cfg := res.Config
	c := NewCanvas(cfg.Width, cfg.Height, style)
	if res.Raster == nil {
		res.Rasterize()
	}
	c.DrawGrayscale(res.Raster)
	if cfg.Layers.Threshold {
		c.DrawThreshold(res.Raster, cfg.Threshold, ParseHexColor(cfg.BelowColor), ParseHexColor(cfg.AboveColor), cfg.Opacity)
	}
	if cfg.Layers.SamplePoints {
		c.DrawSamples(res.Grid, cfg.Threshold)
	}
	if cfg.Layers.CrossingPoints {
		c.DrawCrossings(res.Cells.Crossings())
	}
	if cfg.Layers.Lines {
		c.DrawPaths(res.Paths)
	}
	return c
}
