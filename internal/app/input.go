package app

import (
	icore "isofield/internal/core"
)

// layerKeys maps the number keys 1-4 to layer toggles.
var layerKeys = [...]string{"show_threshold", "show_samples", "show_crossings", "show_lines"}

// dragTracker turns pointer samples into pan deltas. A drag only starts
// inside the canvas; once started it keeps tracking over the HUD.
type dragTracker struct {
	active bool
	x, y   int
}

// move consumes one pointer sample and reports the delta since the last one.
func (d *dragTracker) move(pressed bool, x, y int, inCanvas bool) (dx, dy int, moved bool) {
	if !pressed {
		d.active = false
		return 0, 0, false
	}
	if !d.active {
		if !inCanvas {
			return 0, 0, false
		}
		d.active, d.x, d.y = true, x, y
		return 0, 0, false
	}
	dx, dy = x-d.x, y-d.y
	d.x, d.y = x, y
	return dx, dy, dx != 0 || dy != 0
}

type parameterModel interface {
	icore.ParameterSetter
	Parameters() icore.ParameterSnapshot
}

// toggleLayer flips the layer bound to number key n (1-based).
func toggleLayer(m parameterModel, n int) bool {
	if n < 1 || n > len(layerKeys) {
		return false
	}
	key := layerKeys[n-1]
	param, ok := m.Parameters().Lookup(key)
	if !ok {
		return false
	}
	v, ok := param.Float()
	if !ok {
		return false
	}
	return m.SetParameter(key, 1-v)
}

// canvasSize returns the field area of a window of the given outside size,
// with the HUD panel taking hudWidth on the right. ok is false while the
// window is too small to hold any canvas.
func canvasSize(outsideW, outsideH, hudWidth int) (w, h int, ok bool) {
	w, h = outsideW-max(hudWidth, 0), outsideH
	return w, h, w > 0 && h > 0
}

// nudge adds delta to a numeric parameter.
func nudge(m parameterModel, key string, delta float64) bool {
	param, ok := m.Parameters().Lookup(key)
	if !ok {
		return false
	}
	v, ok := param.Float()
	if !ok {
		return false
	}
	return m.SetParameter(key, v+delta)
}
