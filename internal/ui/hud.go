//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"isofield/internal/core"
)

// Model is what the HUD needs from the scene it controls.
type Model interface {
	core.Model
	core.ParameterControlsProvider
	core.ParameterSetter
	Parameters() core.ParameterSnapshot
}

// HUD renders the parameter panel to the right of the canvas.
type HUD struct {
	model      Model
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls     []controlState
	headers      []groupHeader
	laidOut      bool
	panelOffsetX int
	title        string
}

// groupHeader is a section title drawn above the controls of one snapshot
// group.
type groupHeader struct {
	name     string
	baseline int
}

// NewHUD constructs a HUD for model with the given panel width.
func NewHUD(model Model, width int) *HUD {
	width = max(width, 0)
	h := &HUD{model: model, width: width, title: buildTitle(model)}
	if model != nil {
		for _, ctrl := range model.ParameterControls() {
			h.controls = append(h.controls, controlState{control: ctrl, label: "--"})
		}
	}
	return h
}

// Update refreshes displayed values and applies clicks on the +/- buttons.
// It reports whether a parameter changed.
func (h *HUD) Update(panelOffsetX int) bool {
	if h == nil || h.model == nil {
		return false
	}
	h.panelOffsetX = panelOffsetX
	h.snapshot = h.model.Parameters()
	if !h.laidOut {
		h.layout()
		h.laidOut = true
	}
	h.refreshValues()
	return h.handleInput()
}

// Draw paints the panel at offsetX, scaled to the canvas height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 || h.model == nil {
		return
	}
	scale = max(scale, 1)
	height := h.model.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(model Model) string {
	if model == nil || model.Name() == "" {
		return "Controls"
	}
	name := model.Name()
	return fmt.Sprintf("%s%s controls", strings.ToUpper(name[:1]), name[1:])
}

func (h *HUD) refreshValues() {
	for i := range h.controls {
		st := &h.controls[i]
		param, ok := h.snapshot.Lookup(st.control.Key)
		if !ok {
			st.hasValue, st.label = false, "--"
			continue
		}
		v, ok := param.Float()
		if !ok {
			st.hasValue, st.label = false, "--"
			continue
		}
		st.value, st.hasValue = v, true
		st.label = formatValue(st.control, v)
	}
}

func (h *HUD) handleInput() bool {
	if len(h.controls) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return false
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		st := &h.controls[i]
		if !st.hasValue {
			continue
		}
		if pointInRect(px, my, st.minusRect) {
			return h.adjust(st, -1)
		}
		if pointInRect(px, my, st.plusRect) {
			return h.adjust(st, 1)
		}
	}
	return false
}

// target returns the value one step in direction, clamped to the control's
// bounds. Toggles flip between 0 and 1 regardless of direction.
func target(st *controlState, direction int) float64 {
	ctrl := st.control
	if ctrl.Type == core.ParamTypeBool {
		if st.value >= 0.5 {
			return 0
		}
		return 1
	}
	step := ctrl.Step
	if step <= 0 {
		step = 1
	}
	return ctrl.Clamp(st.value + float64(direction)*step)
}

func (h *HUD) adjust(st *controlState, direction int) bool {
	next := target(st, direction)
	if math.Abs(next-st.value) < 1e-9 {
		return false
	}
	if !h.model.SetParameter(st.control.Key, next) {
		return false
	}
	st.value = next
	st.label = formatValue(st.control, next)
	return true
}

func canAdjust(st *controlState, direction int) bool {
	if !st.hasValue {
		return false
	}
	return math.Abs(target(st, direction)-st.value) >= 1e-9
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	if len(h.controls) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, headerY+infoSpacing, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		return
	}
	for _, hdr := range h.headers {
		text.Draw(h.panel, strings.ToUpper(hdr.name), face, panelPadding, hdr.baseline, color.RGBA{R: 120, G: 150, B: 200, A: 255})
	}
	for i := range h.controls {
		st := &h.controls[i]
		baseline := st.top + labelBaseline
		text.Draw(h.panel, st.control.Label, face, panelPadding, baseline, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if !st.hasValue {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		bounds := text.BoundString(face, st.label)
		valueX := st.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, st.label, face, valueX, baseline, valueColor)

		if st.control.Type == core.ParamTypeBool {
			h.drawButton(st.minusRect, "", false)
			h.drawButton(st.plusRect, "*", st.hasValue)
			continue
		}
		h.drawButton(st.minusRect, "-", canAdjust(st, -1))
		h.drawButton(st.plusRect, "+", canAdjust(st, 1))
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	vector.DrawFilledRect(h.panel, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)
	if label == "" {
		return
	}
	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	text.Draw(h.panel, label, face, rect.Min.X+(rect.Dx()-b.Dx())/2, rect.Min.Y+(rect.Dy()+b.Dy())/2, fg)
}

// layout stacks the controls under the snapshot group they belong to, in
// snapshot order. Controls missing from the snapshot go last.
func (h *HUD) layout() {
	placed := make([]bool, len(h.controls))
	y := controlsTop
	place := func(i int) {
		plusX := h.width - panelPadding - buttonSize
		buttonY := y + (rowHeight-buttonSize)/2
		st := &h.controls[i]
		st.top = y
		st.plusRect = image.Rect(plusX, buttonY, plusX+buttonSize, buttonY+buttonSize)
		st.minusRect = st.plusRect.Sub(image.Pt(buttonSize+buttonGap, 0))
		placed[i] = true
		y += rowHeight
	}
	for _, group := range h.snapshot.Groups {
		header := groupHeader{name: group.Name, baseline: y + groupBaseline}
		start := y
		y += groupHeight
		for _, p := range group.Params {
			for i := range h.controls {
				if !placed[i] && h.controls[i].control.Key == p.Key {
					place(i)
				}
			}
		}
		if y == start+groupHeight {
			y = start
			continue
		}
		h.headers = append(h.headers, header)
	}
	for i := range h.controls {
		if !placed[i] {
			place(i)
		}
	}
}

func formatValue(ctrl core.ParameterControl, v float64) string {
	switch ctrl.Type {
	case core.ParamTypeBool:
		if v >= 0.5 {
			return "on"
		}
		return "off"
	case core.ParamTypeInt:
		return strconv.Itoa(int(math.Round(v)))
	}
	precision := 1
	switch {
	case ctrl.Step < 0.001:
		precision = 4
	case ctrl.Step < 0.01:
		precision = 3
	case ctrl.Step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

type controlState struct {
	control  core.ParameterControl
	label    string
	value    float64
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	rowHeight      = 26
	groupHeight    = 22
	groupBaseline  = 16
	buttonSize     = 20
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 18
	infoSpacing    = 36
	controlsTop    = panelPadding + headerBaseline + 8
)
