package render

import (
	"image/color"
	"math"
	"regexp"
	"strconv"

	"github.com/dgravesa/go-parallel/parallel"

	icore "isofield/internal/core"
	"isofield/pkg/contour"
)

// Gray maps a raw field value in [-1, 1] to a gray level.
func Gray(value float64) uint8 {
	g := math.Floor((value + 1) / 2 * 255)
	if g < 0 {
		return 0
	}
	if g > 255 {
		return 255
	}
	return uint8(g)
}

// Percent maps a raw field value onto the 0-100 display scale.
func Percent(value float64) float64 { return (value + 1) / 2 * 100 }

// FillGrayscale writes opaque gray RGBA pixels for every raster value.
func FillGrayscale(buf []byte, raster *icore.FloatGrid) {
	values := raster.Values()
	if len(buf) < 4*len(values) {
		return
	}
	forRows(raster, func(i int) {
		g := Gray(values[i])
		base := i * 4
		buf[base+0] = g
		buf[base+1] = g
		buf[base+2] = g
		buf[base+3] = 255
	})
}

// FillThreshold writes below/above colors into buf depending on whether each
// value reaches threshold on the display scale. opacity is a percentage
// applied to the alpha channel; the output is non-premultiplied.
func FillThreshold(buf []byte, raster *icore.FloatGrid, threshold float64, below, above color.Color, opacity float64) {
	values := raster.Values()
	if len(buf) < 4*len(values) {
		return
	}
	lo := toNRGBA(below)
	hi := toNRGBA(above)
	alpha := uint8(math.Round(math.Max(0, math.Min(100, opacity)) / 100 * 255))
	forRows(raster, func(i int) {
		col := lo
		if contour.Inside(Percent(values[i]), threshold) {
			col = hi
		}
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = uint8(uint16(col.A) * uint16(alpha) / 255)
	})
}

// forRows runs fn for every pixel index, one raster row per parallel task.
func forRows(raster *icore.FloatGrid, fn func(i int)) {
	if raster.W == 0 || raster.H == 0 {
		return
	}
	parallel.For(raster.H, func(y, _ int) {
		for i := y * raster.W; i < (y+1)*raster.W; i++ {
			fn(i)
		}
	})
}

func toNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{A: 255}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

var hexColor = regexp.MustCompile(`(?i)^#?([a-f\d]{2})([a-f\d]{2})([a-f\d]{2})$`)

// ParseHexColor parses "#rrggbb" (the leading '#' is optional). Anything else
// yields opaque black.
func ParseHexColor(s string) color.NRGBA {
	m := hexColor.FindStringSubmatch(s)
	if m == nil {
		return color.NRGBA{A: 255}
	}
	channel := func(h string) uint8 {
		v, _ := strconv.ParseUint(h, 16, 8)
		return uint8(v)
	}
	return color.NRGBA{R: channel(m[1]), G: channel(m[2]), B: channel(m[3]), A: 255}
}
