package experiment

import (
	"fmt"

	"github.com/san-kum/vlab/internal/lab"
	"github.com/san-kum/vlab/internal/physics"
)

type FreeFall struct{}

func (FreeFall) Info() lab.Info {
	return lab.Info{
		ID:          "free-fall",
		Title:       "Free Fall Motion",
		Description: "Study the motion of objects falling under the influence of gravity.",
		Category:    "Physics",
		Difficulty:  lab.Beginner,
		Popularity:  90,
	}
}

func (FreeFall) Specs() []lab.ParamSpec {
	return []lab.ParamSpec{
		{Name: "height", Label: "Height", Unit: "m", Min: 1, Max: 200, Step: 1, Default: 100},
		{Name: "gravity", Label: "Gravity", Unit: "m/s²", Min: 1, Max: 20, Step: 0.1, Default: 9.8},
		{Name: "mass", Label: "Mass", Unit: "kg", Min: 0.1, Max: 10, Step: 0.1, Default: 1},
		{Name: "air_resistance", Label: "Air Resistance", Min: 0, Max: 1, Step: 0.01, Default: 0},
	}
}

func (FreeFall) Policy() lab.ResetPolicy {
	return lab.ResetPolicy{OnChange: lab.ZeroAlways}
}

func (FreeFall) model(p lab.ParameterSet) *physics.FreeFall {
	return &physics.FreeFall{
		Height:        p.Get("height"),
		Gravity:       p.Get("gravity"),
		Mass:          p.Get("mass"),
		AirResistance: p.Get("air_resistance"),
	}
}

func (d FreeFall) Evaluate(p lab.ParameterSet, t float64) physics.FallState {
	return d.model(p).At(t)
}

// Sweeps samples 51 points from release to impact.
func (d FreeFall) Sweeps(p lab.ParameterSet) []lab.Sweep {
	m := d.model(p)
	return []lab.Sweep{{
		Label:  "motion",
		XName:  "time",
		YNames: []string{"position", "velocity"},
		Start:  0,
		Step:   m.FallTime() / 50,
		Count:  51,
		Eval: func(t float64) ([]float64, bool) {
			return []float64{m.Position(t), m.Velocity(t)}, true
		},
	}}
}

func (d FreeFall) Readout(p lab.ParameterSet, out physics.FallState) []lab.Reading {
	m := d.model(p)
	return []lab.Reading{
		{Label: "Time", Value: out.Time, Unit: "s", Prec: 2},
		{Label: "Height", Value: out.Position, Unit: "m", Prec: 2},
		{Label: "Velocity", Value: out.Velocity, Unit: "m/s", Prec: 2},
		{Label: "Time to fall", Value: m.FallTime(), Unit: "s", Prec: 2},
		{Label: "Final velocity", Value: m.FinalVelocity(), Unit: "m/s", Prec: 2},
	}
}

func (FreeFall) Draw(s lab.Surface, p lab.ParameterSet, out physics.FallState) {
	w, h := s.Size()
	top, ground := frac(h, 0.1), frac(h, 0.9)
	s.Line(0, ground, w-1, ground)

	r := max(h/25, 2)
	y := ground - r
	if hgt := p.Get("height"); hgt > 0 {
		y = ground - r - int(float64(ground-top-r)*clampUnit(out.Position/hgt))
	}
	s.Circle(frac(w, 0.5), y, r, true)

	s.Text(2, 2, fmt.Sprintf("Height: %.0fm", p.Get("height")))
	if out.Landed {
		s.Text(2, ground+2, "Ground Level")
	}
}
