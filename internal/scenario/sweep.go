package scenario

import (
	"fmt"

	"github.com/san-kum/vlab/internal/lab"
)

// Vary steps one parameter across [Min, Max] in Steps evenly spaced values.
type Vary struct {
	Param string  `yaml:"param"`
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
	Steps int     `yaml:"steps"`
}

// SweepResult holds the readouts observed at one parameter value.
type SweepResult struct {
	Value    float64
	Readings []lab.Reading
}

// RunSweep sets the varied parameter to each value in turn and records the
// readouts at simulated time t. Value is the stored value after clamping, so
// requests beyond the parameter's bounds repeat the boundary value. Every
// parameter is restored afterwards, including dependents the sweep clamped.
func RunSweep(inst lab.Instance, v Vary, t float64) (results []SweepResult, err error) {
	params := inst.Params()
	if !params.Has(v.Param) {
		return nil, &lab.ParamError{Name: v.Param, Wrapped: lab.ErrUnknownParam}
	}
	if v.Steps < 2 {
		return nil, fmt.Errorf("vary %s: need at least 2 steps, got %d", v.Param, v.Steps)
	}
	snapshot := params.Values()
	defer func() {
		if rerr := inst.SetAll(snapshot); err == nil && rerr != nil {
			err = fmt.Errorf("vary %s: restore: %w", v.Param, rerr)
		}
	}()

	step := (v.Max - v.Min) / float64(v.Steps-1)
	results = make([]SweepResult, 0, v.Steps)
	for i := 0; i < v.Steps; i++ {
		stored, serr := inst.Set(v.Param, v.Min+float64(i)*step)
		if serr != nil {
			return results, serr
		}
		inst.Seek(t)
		results = append(results, SweepResult{Value: stored, Readings: inst.Readout()})
	}
	return results, nil
}
