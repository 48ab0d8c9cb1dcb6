package lab

import (
	"fmt"
	"math"
)

// ParamSpec declares one adjustable input and its slider constraints.
type ParamSpec struct {
	Name    string
	Label   string
	Unit    string
	Min     float64
	Max     float64
	Step    float64
	Default float64
}

// Clamp snaps v to the spec's step grid and clamps it to [Min, Max].
func (s ParamSpec) Clamp(v float64) float64 {
	if s.Step > 0 {
		v = s.Min + math.Round((v-s.Min)/s.Step)*s.Step
		// keep values like 0.1+0.2 printable as 0.3
		v = roundTo(v, decimals(s.Step))
	}
	if v < s.Min {
		v = s.Min
	}
	if v > s.Max {
		v = s.Max
	}
	return v
}

// ParameterSet holds the current values of one experiment instance.
// Every stored value lies within its spec bounds.
type ParameterSet struct {
	specs  []ParamSpec
	values map[string]float64
}

func NewParameterSet(specs []ParamSpec) ParameterSet {
	p := ParameterSet{
		specs:  make([]ParamSpec, len(specs)),
		values: make(map[string]float64, len(specs)),
	}
	copy(p.specs, specs)
	for _, s := range specs {
		p.values[s.Name] = s.Clamp(s.Default)
	}
	return p
}

// Get returns the value of name, or 0 for an undeclared name.
func (p ParameterSet) Get(name string) float64 {
	return p.values[name]
}

func (p ParameterSet) Has(name string) bool {
	_, ok := p.values[name]
	return ok
}

// Spec returns the declaration for name.
func (p ParameterSet) Spec(name string) (ParamSpec, bool) {
	for _, s := range p.specs {
		if s.Name == name {
			return s, true
		}
	}
	return ParamSpec{}, false
}

func (p ParameterSet) Specs() []ParamSpec {
	out := make([]ParamSpec, len(p.specs))
	copy(out, p.specs)
	return out
}

// Set stores v for name after snapping and clamping, and returns the stored value.
func (p *ParameterSet) Set(name string, v float64) (float64, error) {
	spec, ok := p.Spec(name)
	if !ok {
		return 0, &ParamError{Name: name, Value: v, Wrapped: ErrUnknownParam}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return p.values[name], &ParamError{Name: name, Value: v, Wrapped: ErrInvalidValue}
	}
	v = spec.Clamp(v)
	p.values[name] = v
	return v, nil
}

// Bound clamps name into [lo, hi] intersected with its declared bounds and
// keeps it on the step grid, rounding down unless that would drop below lo.
// Used for parameters whose range depends on other parameters.
func (p *ParameterSet) Bound(name string, lo, hi float64) float64 {
	spec, ok := p.Spec(name)
	if !ok {
		return 0
	}
	v := p.values[name]
	lo = math.Max(lo, spec.Min)
	hi = math.Min(hi, spec.Max)
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	if spec.Step > 0 {
		n := (v - spec.Min) / spec.Step
		snapped := spec.snap(math.Floor(n + 1e-9))
		if snapped < lo {
			if up := spec.snap(math.Ceil(n - 1e-9)); up <= spec.Max {
				snapped = up
			}
		}
		v = snapped
	}
	p.values[name] = v
	return v
}

func (s ParamSpec) snap(steps float64) float64 {
	return roundTo(s.Min+steps*s.Step, decimals(s.Step))
}

// Reset restores every value to its default.
func (p *ParameterSet) Reset() {
	for _, s := range p.specs {
		p.values[s.Name] = s.Clamp(s.Default)
	}
}

// Values returns a copy of the current values.
func (p ParameterSet) Values() map[string]float64 {
	out := make(map[string]float64, len(p.values))
	for k, v := range p.values {
		out[k] = v
	}
	return out
}

// Clone returns an independent copy.
func (p ParameterSet) Clone() ParameterSet {
	c := ParameterSet{specs: p.Specs(), values: p.Values()}
	return c
}

func (p ParameterSet) String() string {
	s := ""
	for i, spec := range p.specs {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%s=%g", spec.Name, p.values[spec.Name])
	}
	return s
}

func decimals(step float64) int {
	n := 0
	for n < 10 && math.Abs(step-math.Round(step)) > 1e-9 {
		step *= 10
		n++
	}
	return n
}

func roundTo(v float64, n int) float64 {
	f := math.Pow(10, float64(n))
	return math.Round(v*f) / f
}
