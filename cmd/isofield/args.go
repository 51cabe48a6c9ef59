package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"isofield/internal/scene"
)

type options struct {
	preset string
	out    string
	dump   bool
	sets   overrides
}

// overrides collects repeated -set key=value flags.
type overrides map[string]string

func (o overrides) String() string {
	parts := make([]string, 0, len(o))
	for k, v := range o {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

func (o overrides) Set(s string) error {
	key, value, ok := strings.Cut(s, "=")
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", s)
	}
	o[strings.TrimSpace(key)] = strings.TrimSpace(value)
	return nil
}

func newFlagSet(cfg *scene.Config, opts *options, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("isofield", flag.ContinueOnError)
	fs.SetOutput(output)
	cfg.Bind(fs)
	fs.StringVar(&opts.preset, "preset", opts.preset, "preset applied before other flags ("+strings.Join(scene.Presets(), ", ")+")")
	fs.StringVar(&opts.out, "out", opts.out, "write the rendered scene to this PNG file")
	fs.BoolVar(&opts.dump, "dump", opts.dump, "print the parameter snapshot")
	fs.Var(opts.sets, "set", "key=value override, repeatable (keys: "+strings.Join(scene.Keys(), ", ")+")")
	return fs
}

// parseArgs resolves the configuration in two passes: the first finds the
// preset, the second parses every flag again on top of it so explicit flags
// win over the preset.
func parseArgs(args []string, output io.Writer) (scene.Config, options, error) {
	probeCfg := scene.DefaultConfig()
	probe := options{sets: overrides{}}
	if err := newFlagSet(&probeCfg, &probe, io.Discard).Parse(args); err != nil {
		// Report through the real flag set so usage goes to output.
		cfg := scene.DefaultConfig()
		opts := options{sets: overrides{}}
		return cfg, opts, newFlagSet(&cfg, &opts, output).Parse(args)
	}

	cfg := scene.DefaultConfig()
	if probe.preset != "" {
		if err := scene.ApplyPreset(&cfg, probe.preset); err != nil {
			return cfg, probe, err
		}
	}
	opts := options{sets: overrides{}}
	fs := newFlagSet(&cfg, &opts, output)
	if err := fs.Parse(args); err != nil {
		return cfg, opts, err
	}
	if fs.NArg() > 0 {
		return cfg, opts, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if err := cfg.Apply(opts.sets); err != nil {
		return cfg, opts, err
	}
	return cfg, opts, cfg.Validate()
}
