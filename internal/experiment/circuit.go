package experiment

import (
	"fmt"

	"github.com/san-kum/vlab/internal/lab"
	"github.com/san-kum/vlab/internal/physics"
)

type Circuit struct{}

func (Circuit) Info() lab.Info {
	return lab.Info{
		ID:          "circuit",
		Title:       "Circuit Analysis",
		Description: "Verify Ohm's Law and Kirchhoff's Laws through interactive circuit experiments.",
		Category:    "Electrical Engineering",
		Difficulty:  lab.Beginner,
		Popularity:  90,
	}
}

func (Circuit) Specs() []lab.ParamSpec {
	return []lab.ParamSpec{
		{Name: "voltage", Label: "Voltage", Unit: "V", Min: 0, Max: 24, Step: 0.1, Default: 12},
		{Name: "resistance", Label: "Resistance", Unit: "Ω", Min: 10, Max: 1000, Step: 10, Default: 100},
	}
}

func (Circuit) Policy() lab.ResetPolicy { return lab.ResetPolicy{} }

func (Circuit) Evaluate(p lab.ParameterSet, _ float64) physics.Circuit {
	return physics.Circuit{Voltage: p.Get("voltage"), Resistance: p.Get("resistance")}
}

// Sweeps tabulates current and power against source voltage at the chosen
// resistance.
func (Circuit) Sweeps(p lab.ParameterSet) []lab.Sweep {
	c := physics.Circuit{Resistance: p.Get("resistance")}
	return []lab.Sweep{{
		Label:  "ohms law",
		XName:  "voltage",
		YNames: []string{"current", "power"},
		Start:  0,
		Step:   0.5,
		Count:  lab.SweepTo(0, 20, 0.5),
		Eval: func(v float64) ([]float64, bool) {
			c.Voltage = v
			return []float64{c.Current(), c.Power()}, true
		},
	}}
}

func (Circuit) Readout(_ lab.ParameterSet, out physics.Circuit) []lab.Reading {
	return []lab.Reading{
		{Label: "Voltage", Value: out.Voltage, Unit: "V", Prec: 1},
		{Label: "Resistance", Value: out.Resistance, Unit: "Ω", Prec: 0},
		{Label: "Current", Value: out.Current(), Unit: "A", Prec: 3},
		{Label: "Power", Value: out.Power(), Unit: "W", Prec: 3},
	}
}

func (Circuit) Draw(s lab.Surface, _ lab.ParameterSet, out physics.Circuit) {
	w, h := s.Size()
	x0, x1 := frac(w, 0.15), frac(w, 0.85)
	y0, y1 := frac(h, 0.25), frac(h, 0.75)
	cell := max(h/10, 3)
	r0, r1 := frac(w, 0.35), frac(w, 0.65)

	s.Line(x0, y0, r0, y0)
	zigzag(s, r0, r1, y0, cell/2+1)
	s.Line(r1, y0, x1, y0)
	s.Line(x1, y0, x1, y1)
	s.Line(x1, y1, x0, y1)
	s.Line(x0, y1, x0, (y0+y1)/2+cell)
	s.Line(x0, (y0+y1)/2-cell, x0, y0)
	battery(s, x0, (y0+y1)/2, cell)

	s.Text(2, 2, fmt.Sprintf("I = %.3f A", out.Current()))
	s.Text(2, y1+cell, fmt.Sprintf("P = %.3f W", out.Power()))
}
