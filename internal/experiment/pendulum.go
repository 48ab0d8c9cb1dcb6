package experiment

import (
	"fmt"

	"github.com/san-kum/vlab/internal/lab"
	"github.com/san-kum/vlab/internal/physics"
)

type Pendulum struct{}

func (Pendulum) Info() lab.Info {
	return lab.Info{
		ID:          "simple-pendulum",
		Title:       "Simple Pendulum",
		Description: "Explore the oscillatory motion of a simple pendulum and discover how its period relates to its length.",
		Category:    "Physics",
		Difficulty:  lab.Beginner,
		Popularity:  95,
	}
}

func (Pendulum) Specs() []lab.ParamSpec {
	return []lab.ParamSpec{
		{Name: "length", Label: "Length", Unit: "m", Min: 0.1, Max: 2, Step: 0.01, Default: 1},
		{Name: "gravity", Label: "Gravity", Unit: "m/s²", Min: 1, Max: 20, Step: 0.1, Default: 9.8},
		{Name: "angle", Label: "Initial Angle", Unit: "°", Min: -30, Max: 30, Step: 1, Default: 15},
		{Name: "damping", Label: "Damping", Unit: "1/s", Min: 0, Max: 1, Step: 0.01, Default: 0.1},
	}
}

// Policy zeroes the clock when paused, and on any edit made while stopped.
func (Pendulum) Policy() lab.ResetPolicy {
	return lab.ResetPolicy{ZeroOnPause: true, OnChange: lab.ZeroWhenStopped}
}

func (Pendulum) model(p lab.ParameterSet) *physics.Pendulum {
	return &physics.Pendulum{
		Length:    p.Get("length"),
		Gravity:   p.Get("gravity"),
		Amplitude: physics.Radians(p.Get("angle")),
		Damping:   p.Get("damping"),
	}
}

func (d Pendulum) Evaluate(p lab.ParameterSet, t float64) physics.PendulumState {
	return d.model(p).At(t)
}

func (d Pendulum) Sweeps(p lab.ParameterSet) []lab.Sweep {
	m := d.model(p)
	return []lab.Sweep{{
		Label:  "motion",
		XName:  "time",
		YNames: []string{"angle", "velocity"},
		Start:  0,
		Step:   0.1,
		Count:  lab.SweepTo(0, 10, 0.1),
		Eval: func(t float64) ([]float64, bool) {
			return []float64{physics.Degrees(m.Angle(t)), physics.Degrees(m.AngularVelocity(t))}, true
		},
	}}
}

func (d Pendulum) Readout(p lab.ParameterSet, out physics.PendulumState) []lab.Reading {
	return []lab.Reading{
		{Label: "Time", Value: out.Time, Unit: "s", Prec: 1},
		{Label: "Period", Value: d.model(p).Period(), Unit: "s", Prec: 3},
		{Label: "Angle", Value: physics.Degrees(out.Angle), Unit: "°", Prec: 2},
		{Label: "Velocity", Value: physics.Degrees(out.Velocity), Unit: "°/s", Prec: 2},
	}
}

// Draw hangs the rod from a pivot at 20% of the height; one metre spans a
// quarter of the surface height.
func (Pendulum) Draw(s lab.Surface, p lab.ParameterSet, out physics.PendulumState) {
	w, h := s.Size()
	px, py := frac(w, 0.5), frac(h, 0.2)
	scale := float64(h) / 4

	s.Line(px-w/8, py, px+w/8, py)
	s.Circle(px, py, max(h/80, 1), true)

	bx := px + int(out.X*scale)
	by := py + int(out.Y*scale)
	s.Line(px, py, bx, by)
	s.Circle(bx, by, max(h/20, 2), true)

	s.Text(2, 2, fmt.Sprintf("Time: %.1fs", out.Time))
}
