package main

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"isofield/internal/scene"
	"isofield/pkg/contour"
	"isofield/pkg/core"
	"isofield/pkg/noise"
)

// fieldSet is one fractal configuration; every threshold job for it shares
// the same sampled grid.
type fieldSet struct {
	id     int
	params noise.Params
	grid   *contour.Grid
}

func (f fieldSet) String() string {
	return fmt.Sprintf("oct=%d lac=%.2f pers=%.2f scale=%.4f",
		f.params.Octaves, f.params.Lacunarity, f.params.Persistence, f.params.BaseScale)
}

type job struct {
	set       *fieldSet
	threshold float64
}

type scenarioResult struct {
	set       *fieldSet
	threshold float64
	summary   contour.Summary
	crossings int
	saddles   int
}

// metrics the table can be ranked by.
var metrics = map[string]func(scenarioResult) float64{
	"closed":    func(r scenarioResult) float64 { return float64(r.summary.Closed) },
	"open":      func(r scenarioResult) float64 { return float64(r.summary.Open) },
	"paths":     func(r scenarioResult) float64 { return float64(r.summary.Paths) },
	"length":    func(r scenarioResult) float64 { return r.summary.Length },
	"crossings": func(r scenarioResult) float64 { return float64(r.crossings) },
	"saddles":   func(r scenarioResult) float64 { return float64(r.saddles) },
}

func metricNames() []string {
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// thresholds lists from, from+step, ... up to and including to.
func thresholds(from, to, step float64) []float64 {
	if step <= 0 || to < from {
		return []float64{from}
	}
	n := int(math.Floor((to-from)/step+1e-9)) + 1
	out := make([]float64, n)
	for i := range out {
		out[i] = from + float64(i)*step
	}
	return out
}

// randomParams draws n fractal configurations inside the interactive ranges,
// keeping the base scale of base.
func randomParams(rng *core.RNG, n int, base noise.Params) []noise.Params {
	out := make([]noise.Params, n)
	for i := range out {
		out[i] = noise.Params{
			Octaves:     rng.IntIn(1, 8),
			Lacunarity:  rng.Float64In(1.5, 3),
			Persistence: rng.Float64In(0.25, 0.75),
			BaseScale:   base.BaseScale,
		}
	}
	return out
}

// sampleSets builds one grid per parameter set using cfg's canvas and pan.
func sampleSets(cfg scene.Config, prim noise.Primitive, params []noise.Params) ([]*fieldSet, error) {
	sets := make([]*fieldSet, 0, len(params))
	for i, p := range params {
		field, err := noise.NewField(prim, p)
		if err != nil {
			return nil, fmt.Errorf("set %d: %w", i, err)
		}
		sample := scene.PixelSampler(field, cfg.OffsetX, cfg.OffsetY)
		grid := contour.BuildGrid(float64(cfg.Width), float64(cfg.Height), float64(cfg.GridStep), sample)
		sets = append(sets, &fieldSet{id: i, params: p, grid: grid})
	}
	return sets, nil
}

func runScenario(j job) scenarioResult {
	cells := contour.BuildCells(j.set.grid, j.threshold)
	paths := contour.TracePaths(cells)
	return scenarioResult{
		set:       j.set,
		threshold: j.threshold,
		summary:   contour.Summarize(paths),
		crossings: cells.CrossingCount(),
		saddles:   cells.SaddleCount(),
	}
}

// sweep fans jobs out to workers and collects every result.
func sweep(sets []*fieldSet, levels []float64, workers int) []scenarioResult {
	workers = max(workers, 1)
	jobs := make(chan job)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- runScenario(j)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, set := range sets {
			for _, level := range levels {
				jobs <- job{set: set, threshold: level}
			}
		}
		close(jobs)
	}()

	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}
	return all
}

// rank sorts results by metric, highest first. Ties keep set and threshold
// order so the output is stable across runs.
func rank(results []scenarioResult, metric string) error {
	score, ok := metrics[metric]
	if !ok {
		if hint, found := core.Suggest(metric, metricNames()); found {
			return fmt.Errorf("unknown metric %q (did you mean %q?)", metric, hint)
		}
		return fmt.Errorf("unknown metric %q", metric)
	}
	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if sa, sb := score(a), score(b); sa != sb {
			return sa > sb
		}
		if a.set.id != b.set.id {
			return a.set.id < b.set.id
		}
		return a.threshold < b.threshold
	})
	return nil
}
