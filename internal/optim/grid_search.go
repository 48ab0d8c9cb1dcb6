// Package optim searches parameter grids for the values that optimise one
// of an experiment's readings.
package optim

import (
	"context"
	"fmt"
	"maps"
	"math"
	"runtime"
	"sync"

	"github.com/san-kum/vlab/internal/lab"
)

// GridSearch evaluates every combination of the given parameter values.
type GridSearch struct {
	paramNames []string
	ranges     [][]float64
	// Workers bounds parallelism; zero uses GOMAXPROCS.
	Workers int
}

func NewGridSearch(params []string, ranges [][]float64) *GridSearch {
	return &GridSearch{paramNames: params, ranges: ranges}
}

// Linspace returns n evenly spaced values covering [lo, hi].
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}

// Best is the winning combination. Params holds stored values, which may
// differ from the requested grid point after snapping and clamping.
type Best struct {
	Params    map[string]float64
	Value     float64
	Evaluated int
}

// Build returns a fresh instance. Each worker builds its own, since
// instances are single-owner.
type Build func() (lab.Instance, error)

// Search finds the combination with the smallest value of the named reading,
// or the largest when maximize is set. Ties keep the earliest combination.
func (g *GridSearch) Search(ctx context.Context, build Build, reading string, maximize bool) (Best, error) {
	if len(g.paramNames) != len(g.ranges) {
		return Best{}, fmt.Errorf("grid: %d params but %d ranges", len(g.paramNames), len(g.ranges))
	}
	combos := g.combinations()
	if len(combos) == 0 {
		return Best{}, fmt.Errorf("grid: empty range")
	}

	workers := g.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, len(combos))

	type outcome struct {
		params map[string]float64
		value  float64
		err    error
	}
	results := make([]outcome, len(combos))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			inst, err := build()
			for idx := range jobs {
				if err != nil {
					results[idx].err = err
					continue
				}
				results[idx].params, results[idx].value, results[idx].err = evaluate(inst, combos[idx], reading)
			}
		}()
	}

feed:
	for i := range combos {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return Best{}, err
	}

	best := Best{Value: math.Inf(1), Evaluated: len(combos)}
	if maximize {
		best.Value = math.Inf(-1)
	}
	for _, r := range results {
		if r.err != nil {
			return Best{}, r.err
		}
		if math.IsNaN(r.value) {
			continue
		}
		if best.Params == nil || (maximize && r.value > best.Value) || (!maximize && r.value < best.Value) {
			best.Params, best.Value = r.params, r.value
		}
	}
	if best.Params == nil {
		return Best{}, fmt.Errorf("grid: reading %q was never finite", reading)
	}
	return best, nil
}

func evaluate(inst lab.Instance, combo map[string]float64, reading string) (map[string]float64, float64, error) {
	inst.ResetParams()
	if err := inst.SetAll(combo); err != nil {
		return nil, 0, err
	}
	params := inst.Params()
	stored := make(map[string]float64, len(combo))
	for name := range combo {
		stored[name] = params.Get(name)
	}
	for _, r := range inst.Readout() {
		if r.Label == reading {
			return stored, r.Value, nil
		}
	}
	return nil, 0, fmt.Errorf("grid: %s has no reading %q", inst.Info().ID, reading)
}

func (g *GridSearch) combinations() []map[string]float64 {
	out := []map[string]float64{{}}
	for i, name := range g.paramNames {
		next := make([]map[string]float64, 0, len(out)*len(g.ranges[i]))
		for _, base := range out {
			for _, v := range g.ranges[i] {
				c := maps.Clone(base)
				c[name] = v
				next = append(next, c)
			}
		}
		out = next
	}
	return out
}
