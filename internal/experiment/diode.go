package experiment

import (
	"fmt"

	"github.com/san-kum/vlab/internal/lab"
	"github.com/san-kum/vlab/internal/physics"
)

type Diode struct{}

func (Diode) Info() lab.Info {
	return lab.Info{
		ID:          "diode",
		Title:       "Diode Characteristics",
		Description: "Study the voltage-current characteristics of semiconductor diodes.",
		Category:    "Electrical Engineering",
		Difficulty:  lab.Intermediate,
		Popularity:  80,
	}
}

func (Diode) Specs() []lab.ParamSpec {
	return []lab.ParamSpec{
		{Name: "voltage", Label: "Voltage", Unit: "V", Min: -5, Max: 1, Step: 0.01, Default: 0.7},
		{Name: "temperature", Label: "Temperature", Unit: "K", Min: 250, Max: 400, Step: 1, Default: 300},
	}
}

func (Diode) Policy() lab.ResetPolicy { return lab.ResetPolicy{} }

func (Diode) Evaluate(p lab.ParameterSet, _ float64) physics.Diode {
	return physics.Diode{Voltage: p.Get("voltage"), Temperature: p.Get("temperature")}
}

func (Diode) Sweeps(lab.ParameterSet) []lab.Sweep {
	current := func(v float64) ([]float64, bool) {
		return []float64{physics.Current(v)}, true
	}
	return []lab.Sweep{
		{
			Label:  "forward bias",
			XName:  "voltage",
			YNames: []string{"current"},
			Start:  0,
			Step:   0.01,
			Count:  lab.SweepTo(0, 1, 0.01),
			Eval:   current,
		},
		{
			Label:  "reverse bias",
			XName:  "voltage",
			YNames: []string{"current"},
			Start:  physics.DiodeReverseLimit,
			Step:   0.1,
			Count:  lab.SweepTo(physics.DiodeReverseLimit, -0.1, 0.1),
			Eval:   current,
		},
	}
}

func (Diode) Readout(_ lab.ParameterSet, out physics.Diode) []lab.Reading {
	return []lab.Reading{
		{Label: "Voltage", Value: out.Voltage, Unit: "V", Prec: 2},
		{Label: "Current", Value: out.Current(), Unit: "A", Prec: -1},
		{Label: "Temperature", Value: out.Temperature, Unit: "K", Prec: 0},
		{Label: "Thermal voltage", Value: out.ThermalVoltage() * 1000, Unit: "mV", Prec: 2},
	}
}

// Draw renders a source, the diode symbol and the loop; arrows mark
// conduction.
func (Diode) Draw(s lab.Surface, _ lab.ParameterSet, out physics.Diode) {
	w, h := s.Size()
	x0, x1 := frac(w, 0.15), frac(w, 0.85)
	y0, y1 := frac(h, 0.25), frac(h, 0.75)
	mid := frac(w, 0.5)
	tri := max(h/10, 3)

	s.Line(x0, y0, mid-tri, y0)
	s.Line(mid+tri, y0, x1, y0)
	s.Line(x1, y0, x1, y1)
	s.Line(x1, y1, x0, y1)
	s.Line(x0, y1, x0, (y0+y1)/2+tri)
	s.Line(x0, (y0+y1)/2-tri, x0, y0)
	battery(s, x0, (y0+y1)/2, tri)

	// anode on the left, bar at the cathode
	s.Line(mid-tri, y0-tri, mid-tri, y0+tri)
	s.Line(mid-tri, y0-tri, mid+tri, y0)
	s.Line(mid-tri, y0+tri, mid+tri, y0)
	s.Line(mid+tri, y0-tri, mid+tri, y0+tri)

	if out.Conducting() {
		ax := frac(w, 0.7)
		s.Line(ax-tri, y1-tri/2, ax, y1)
		s.Line(ax-tri, y1+tri/2, ax, y1)
	}
	s.Text(2, 2, fmt.Sprintf("I = %.3e A", out.Current()))
}
