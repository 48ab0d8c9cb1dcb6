package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/vlab/internal/lab"
	"github.com/san-kum/vlab/internal/optim"
	"github.com/spf13/cobra"
)

func optimize(cmd *cobra.Command, args []string) error {
	names := make([]string, 0, len(varies))
	ranges := make([][]float64, 0, len(varies))
	for _, v := range varies {
		name, values, err := parseVary(v)
		if err != nil {
			return err
		}
		names = append(names, name)
		ranges = append(ranges, values)
	}

	// fail fast on bad flags
	probe, err := newInstance(args)
	if err != nil {
		return err
	}
	base := probe.Params().Values()

	g := optim.NewGridSearch(names, ranges)
	start := time.Now()
	best, err := g.Search(cmd.Context(), func() (lab.Instance, error) {
		inst, err := newInstance(args)
		if err != nil {
			return nil, err
		}
		return &baseline{Instance: inst, values: base}, nil
	}, readingName, maximize)
	if err != nil {
		return err
	}

	goal := "minimum"
	if maximize {
		goal = "maximum"
	}
	fmt.Printf("%s %s: %.6g (%d combinations in %v)\n", goal, readingName, best.Value, best.Evaluated, time.Since(start).Round(time.Millisecond))
	fmt.Printf("at: %s\n", formatValues(best.Params))
	return nil
}

// baseline restores the configured parameters, rather than the defaults,
// whenever the search resets an instance.
type baseline struct {
	lab.Instance
	values map[string]float64
}

func (b *baseline) ResetParams() {
	b.Instance.ResetParams()
	b.Instance.SetAll(b.values)
}

// parseVary reads name=min:max:n.
func parseVary(s string) (string, []float64, error) {
	name, spec, ok := strings.Cut(s, "=")
	parts := strings.Split(spec, ":")
	if !ok || name == "" || len(parts) != 3 {
		return "", nil, fmt.Errorf("invalid --vary %q: want name=min:max:n", s)
	}
	lo, err1 := strconv.ParseFloat(parts[0], 64)
	hi, err2 := strconv.ParseFloat(parts[1], 64)
	n, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil || n < 1 {
		return "", nil, fmt.Errorf("invalid --vary %q: want name=min:max:n", s)
	}
	return name, optim.Linspace(lo, hi, n), nil
}
