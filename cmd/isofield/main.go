package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	icore "isofield/internal/core"
	"isofield/internal/render"
	"isofield/internal/scene"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("isofield: ")

	cfg, opts, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatalf("%v", err)
	}

	s, err := scene.New(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if err := s.Recompute(); err != nil {
		log.Fatalf("recompute: %v", err)
	}
	res := s.Result()

	if opts.dump {
		dumpSnapshot(os.Stdout, s.Parameters())
	}
	report(res)

	if opts.out != "" {
		if err := render.DrawResult(res, render.DefaultStyle()).SavePNG(opts.out); err != nil {
			log.Fatalf("write %s: %v", opts.out, err)
		}
		log.Printf("wrote %s (%dx%d)", opts.out, cfg.Width, cfg.Height)
	}
}

func report(res *scene.Result) {
	sum := res.Summary()
	log.Printf("grid %dx%d points, %d crossings, %d saddles",
		res.Grid.Cols, res.Grid.Rows, res.Cells.CrossingCount(), res.Cells.SaddleCount())
	log.Printf("%d paths (%d closed, %d open), %d points, length %.1f px",
		sum.Paths, sum.Closed, sum.Open, sum.Points, sum.Length)
	if lo, hi, ok := res.Grid.Range(); ok {
		log.Printf("sampled range [%.2f, %.2f], threshold %.2f", lo, hi, res.Config.Threshold)
	}
}

func dumpSnapshot(w io.Writer, snap icore.ParameterSnapshot) {
	for _, group := range snap.Groups {
		fmt.Fprintf(w, "[%s]\n", group.Name)
		for _, p := range group.Params {
			fmt.Fprintf(w, "  %-16s %s\n", p.Key, p.Value)
		}
	}
}
