//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"isofield/internal/app"
	"isofield/internal/scene"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	sceneCfg := scene.DefaultConfig()
	sceneCfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.Preset != "" {
		if err := scene.ApplyPreset(&sceneCfg, cfg.Preset); err != nil {
			log.Fatalf("%v", err)
		}
		if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
			log.Fatalf("%v", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("%v", err)
	}

	s, err := scene.New(sceneCfg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if err := s.Recompute(); err != nil {
		log.Fatalf("recompute: %v", err)
	}

	game := app.New(s, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("isofield - " + sceneCfg.Primitive)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
