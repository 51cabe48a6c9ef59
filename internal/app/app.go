//go:build ebiten

package app

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	icore "isofield/internal/core"
	"isofield/internal/render"
	"isofield/internal/scene"
	"isofield/internal/ui"
	"isofield/pkg/core"
)

// Game adapts a scene to the ebiten.Game interface.
type Game struct {
	scene   *scene.Scene
	painter *render.FieldPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	gate    *icore.RecomputeGate
	rng     *core.RNG

	hudWidth int
	drag     dragTracker
}

// New constructs a Game for the provided scene.
func New(s *scene.Scene, cfg *Config) *Game {
	size := s.Size()
	return &Game{
		scene:    s,
		painter:  render.NewFieldPainter(size.W, size.H),
		overlay:  ui.NewOverlay(),
		hud:      ui.NewHUD(s, cfg.HUDWidth),
		gate:     icore.NewRecomputeGate(cfg.Rate),
		rng:      core.NewRNG(s.Config().Seed),
		hudWidth: cfg.HUDWidth,
	}
}

// Reset reseeds the primitive and schedules a recompute.
func (g *Game) Reset(seed int64) {
	g.scene.Reseed(seed)
	g.gate.MarkDirty()
}

// Update handles input and recomputes the scene when parameters changed.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.handleKeys() {
		g.gate.MarkDirty()
	}
	size := g.scene.Size()
	if g.hud.Update(size.W) {
		g.gate.MarkDirty()
	}

	mx, my := ebiten.CursorPosition()
	inCanvas := mx >= 0 && mx < size.W && my >= 0 && my < size.H
	if dx, dy, ok := g.drag.move(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), mx, my, inCanvas); ok {
		g.scene.Pan(float64(dx), float64(dy))
		g.gate.MarkDirty()
	}

	if g.gate.Ready() {
		g.recompute()
	}
	return nil
}

func (g *Game) handleKeys() bool {
	changed := false
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.scene.ResetPan()
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.scene.Reseed(g.rng.Int64())
		changed = true
	}
	if repeating(ebiten.KeyUp) {
		changed = nudge(g.scene, "threshold", 1) || changed
	}
	if repeating(ebiten.KeyDown) {
		changed = nudge(g.scene, "threshold", -1) || changed
	}
	for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4} {
		if inpututil.IsKeyJustPressed(key) {
			changed = toggleLayer(g.scene, i+1) || changed
		}
	}
	return changed
}

// repeating fires on press and then every few ticks while held.
func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d > 20 && d%3 == 0)
}

func (g *Game) recompute() {
	if err := g.scene.Recompute(); err != nil {
		log.Printf("recompute: %v", err)
		return
	}
	res := g.scene.Result()
	cfg := res.Config
	if w, h := g.painter.Size(); w != res.Raster.W || h != res.Raster.H {
		g.painter = render.NewFieldPainter(res.Raster.W, res.Raster.H)
	}
	g.painter.Upload(res.Raster, cfg.Threshold, render.ParseHexColor(cfg.BelowColor), render.ParseHexColor(cfg.AboveColor))
}

// Draw renders the field, the vector overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	res := g.scene.Result()
	if res == nil {
		return
	}
	g.painter.Draw(screen, res.Config.Layers.Threshold, res.Config.Opacity)
	g.overlay.Draw(screen, res)
	g.hud.Draw(screen, g.scene.Size().W, 1)
}

// Layout follows the window size: the canvas takes whatever the HUD leaves
// and the scene is recomputed at the new size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if w, h, ok := canvasSize(outsideWidth, outsideHeight, g.hudWidth); ok && g.scene.Resize(w, h) {
		g.gate.MarkDirty()
	}
	s := g.scene.Size()
	return s.W + g.hudWidth, s.H
}
