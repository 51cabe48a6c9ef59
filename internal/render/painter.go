//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	icore "isofield/internal/core"
)

// FieldPainter keeps GPU images of the grayscale field and of the threshold
// region fill, refreshed whenever a new raster is uploaded.
type FieldPainter struct {
	w, h      int
	gray      *ebiten.Image
	threshold *ebiten.Image
	buf       []byte
}

// NewFieldPainter allocates a painter for a w*h raster.
func NewFieldPainter(w, h int) *FieldPainter {
	w, h = max(w, 1), max(h, 1)
	return &FieldPainter{
		w:         w,
		h:         h,
		gray:      ebiten.NewImage(w, h),
		threshold: ebiten.NewImage(w, h),
		buf:       make([]byte, 4*w*h),
	}
}

// Upload refreshes both images from raster. The threshold image is written
// opaque; opacity is applied at draw time since ebiten expects
// premultiplied pixels.
func (fp *FieldPainter) Upload(raster *icore.FloatGrid, threshold float64, below, above color.Color) {
	if raster == nil || raster.W != fp.w || raster.H != fp.h {
		return
	}
	FillGrayscale(fp.buf, raster)
	fp.gray.WritePixels(fp.buf)
	FillThreshold(fp.buf, raster, threshold, below, above, 100)
	fp.threshold.WritePixels(fp.buf)
}

// Draw paints the grayscale field and, when opacity > 0, the threshold fill.
func (fp *FieldPainter) Draw(dst *ebiten.Image, showThreshold bool, opacity float64) {
	dst.DrawImage(fp.gray, nil)
	if !showThreshold || opacity <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(float32(opacity / 100))
	dst.DrawImage(fp.threshold, op)
}

// Size returns the dimensions of the underlying images.
func (fp *FieldPainter) Size() (int, int) { return fp.w, fp.h }
