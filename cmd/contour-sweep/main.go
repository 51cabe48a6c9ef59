package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"
	"time"

	"isofield/internal/scene"
	"isofield/pkg/core"
	"isofield/pkg/noise"
)

func main() {
	cfg := scene.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	preset := flag.String("preset", "", "preset applied before other flags ("+strings.Join(scene.Presets(), ", ")+")")
	from := flag.Float64("from", 5, "first threshold")
	to := flag.Float64("to", 95, "last threshold")
	step := flag.Float64("step", 5, "threshold increment")
	random := flag.Int("random", 0, "additional random fractal parameter sets")
	rngSeed := flag.Int64("rng_seed", 1, "seed for the random parameter sets")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	by := flag.String("rank", "closed", "metric to rank by ("+strings.Join(metricNames(), ", ")+")")
	top := flag.Int("top", 10, "rows to print")
	flag.Parse()

	if *preset != "" {
		if err := scene.ApplyPreset(&cfg, *preset); err != nil {
			log.Fatalf("%v", err)
		}
		// Explicit flags win over the preset.
		if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
			log.Fatalf("%v", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("%v", err)
	}
	if _, ok := metrics[*by]; !ok {
		log.Fatalf("%v", rank(nil, *by))
	}

	prim, err := noise.Lookup(cfg.Primitive, cfg.Seed)
	if err != nil {
		log.Fatalf("%v", err)
	}
	params := append([]noise.Params{cfg.Noise}, randomParams(core.NewRNG(*rngSeed), *random, cfg.Noise)...)
	levels := thresholds(*from, *to, *step)

	start := time.Now()
	sets, err := sampleSets(cfg, prim, params)
	if err != nil {
		log.Fatalf("%v", err)
	}
	log.Printf("sampled %d field(s) in %s", len(sets), time.Since(start).Round(time.Millisecond))

	fmt.Printf("Sweeping %d thresholds x %d parameter sets (%d workers, %s primitive, grid %d)\n",
		len(levels), len(sets), *workers, cfg.Primitive, cfg.GridStep)

	all := sweep(sets, levels, *workers)
	if err := rank(all, *by); err != nil {
		log.Fatalf("%v", err)
	}
	elapsed := time.Since(start)

	fmt.Printf("\nTop %d by %s (elapsed %s):\n", min(*top, len(all)), *by, elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < *top; i++ {
		res := all[i]
		fmt.Printf("%2d) threshold=%5.1f paths=%d closed=%d open=%d points=%d length=%.1f crossings=%d saddles=%d params=%s\n",
			i+1, res.threshold, res.summary.Paths, res.summary.Closed, res.summary.Open, res.summary.Points,
			res.summary.Length, res.crossings, res.saddles, res.set)
	}
}
