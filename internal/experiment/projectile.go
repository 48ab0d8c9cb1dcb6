package experiment

import (
	"fmt"
	"math"

	"github.com/san-kum/vlab/internal/lab"
	"github.com/san-kum/vlab/internal/physics"
)

type Projectile struct{}

func (Projectile) Info() lab.Info {
	return lab.Info{
		ID:          "projectile",
		Title:       "Projectile Motion",
		Description: "Examine the path of a projectile and explore factors that affect its trajectory.",
		Category:    "Physics",
		Difficulty:  lab.Intermediate,
		Popularity:  85,
	}
}

func (Projectile) Specs() []lab.ParamSpec {
	return []lab.ParamSpec{
		{Name: "velocity", Label: "Initial Velocity", Unit: "m/s", Min: 5, Max: 50, Step: 1, Default: 20},
		{Name: "angle", Label: "Launch Angle", Unit: "°", Min: 0, Max: 90, Step: 1, Default: 45},
		{Name: "height", Label: "Initial Height", Unit: "m", Min: 0, Max: 50, Step: 1, Default: 0},
		{Name: "gravity", Label: "Gravity", Unit: "m/s²", Min: 1, Max: 20, Step: 0.1, Default: 9.8},
	}
}

func (Projectile) Policy() lab.ResetPolicy {
	return lab.ResetPolicy{OnChange: lab.ZeroAlways}
}

func (Projectile) model(p lab.ParameterSet) *physics.Projectile {
	return &physics.Projectile{
		Speed:   p.Get("velocity"),
		Angle:   physics.Radians(p.Get("angle")),
		Height:  p.Get("height"),
		Gravity: p.Get("gravity"),
	}
}

func (d Projectile) Evaluate(p lab.ParameterSet, t float64) physics.ProjectileState {
	return d.model(p).At(t)
}

// groundTol absorbs rounding at the landing sample.
const groundTol = 1e-9

// Sweeps samples up to 101 points over the flight and stops at the first
// sample below ground.
func (d Projectile) Sweeps(p lab.ParameterSet) []lab.Sweep {
	m := d.model(p)
	count := 101
	if m.FlightTime() <= 0 {
		// horizontal launch from the ground never leaves it
		count = 1
	}
	return []lab.Sweep{{
		Label:  "trajectory",
		XName:  "time",
		YNames: []string{"x", "y"},
		Start:  0,
		Step:   m.FlightTime() / 100,
		Count:  count,
		Eval: func(t float64) ([]float64, bool) {
			x, y := m.Position(t)
			if y < -groundTol {
				return nil, false
			}
			return []float64{x, math.Max(y, 0)}, true
		},
	}}
}

func (d Projectile) Readout(p lab.ParameterSet, out physics.ProjectileState) []lab.Reading {
	m := d.model(p)
	return []lab.Reading{
		{Label: "Time", Value: out.Time, Unit: "s", Prec: 2},
		{Label: "Time of Flight", Value: m.FlightTime(), Unit: "s", Prec: 2},
		{Label: "Range", Value: m.Range(), Unit: "m", Prec: 2},
		{Label: "Max Height", Value: m.MaxHeight(), Unit: "m", Prec: 2},
	}
}

func (d Projectile) Draw(s lab.Surface, p lab.ParameterSet, out physics.ProjectileState) {
	w, h := s.Size()
	left, right := frac(w, 0.05), frac(w, 0.95)
	top, ground := frac(h, 0.1), frac(h, 0.9)
	s.Line(0, ground, w-1, ground)

	m := d.model(p)
	span := math.Max(m.Range(), 1)
	rise := math.Max(m.MaxHeight(), 1)
	toScreen := func(x, y float64) (int, int) {
		return left + int(float64(right-left)*x/span), ground - int(float64(ground-top)*y/rise)
	}

	const segments = 40
	tf := m.FlightTime()
	px, py := toScreen(m.Position(0))
	for i := 1; i <= segments; i++ {
		x, y := m.Position(tf * float64(i) / segments)
		nx, ny := toScreen(x, math.Max(y, 0))
		s.Line(px, py, nx, ny)
		px, py = nx, ny
	}

	bx, by := toScreen(out.X, out.Y)
	s.Circle(bx, by, max(h/40, 2), true)
	s.Text(2, 2, fmt.Sprintf("Range: %.2fm", m.Range()))
}
