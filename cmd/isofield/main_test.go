package main

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"strings"
	"testing"

	"isofield/internal/scene"
)

func TestParseArgsFlagsOverridePreset(t *testing.T) {
	cfg, opts, err := parseArgs([]string{"-threshold", "70", "-preset", "islands", "-out", "x.png"}, io.Discard)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Threshold != 70 {
		t.Fatalf("explicit flag lost to preset: threshold %v", cfg.Threshold)
	}
	if cfg.Noise.Octaves != 5 || cfg.GridStep != 10 {
		t.Fatalf("preset not applied: %+v", cfg)
	}
	if opts.out != "x.png" || opts.preset != "islands" {
		t.Fatalf("unexpected options %+v", opts)
	}
}

func TestParseArgsSetOverrides(t *testing.T) {
	cfg, _, err := parseArgs([]string{"-set", "opacity=40", "-set", "show_samples=true"}, io.Discard)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Opacity != 40 || !cfg.Layers.SamplePoints {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestParseArgsErrors(t *testing.T) {
	cases := [][]string{
		{"-preset", "islnds"},
		{"-set", "nokey"},
		{"-set", "treshold=3"},
		{"-octaves", "0"},
		{"-primitive", "worley"},
		{"stray"},
	}
	for _, args := range cases {
		if _, _, err := parseArgs(args, io.Discard); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}

func TestParseArgsHelp(t *testing.T) {
	var buf bytes.Buffer
	_, _, err := parseArgs([]string{"-h"}, &buf)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected ErrHelp, got %v", err)
	}
	if !strings.Contains(buf.String(), "-threshold") {
		t.Fatalf("usage not written: %q", buf.String())
	}
}

func TestDumpSnapshot(t *testing.T) {
	var buf bytes.Buffer
	dumpSnapshot(&buf, scene.DefaultConfig().Parameters())
	out := buf.String()
	for _, want := range []string{"[Fractal]", "octaves", "threshold", "25"} {
		if !strings.Contains(out, want) {
			t.Fatalf("dump missing %q:\n%s", want, out)
		}
	}
}
