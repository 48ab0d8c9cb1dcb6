package experiment

import (
	"fmt"

	"github.com/san-kum/vlab/internal/lab"
	"github.com/san-kum/vlab/internal/physics"
)

type EnergyGap struct{}

func (EnergyGap) Info() lab.Info {
	return lab.Info{
		ID:          "energy-gap",
		Title:       "Energy Gap of P-N Junction Diode",
		Description: "Measure the energy gap of a P-N junction diode and understand semiconductor principles.",
		Category:    "Physics",
		Difficulty:  lab.Advanced,
		Popularity:  75,
	}
}

func (EnergyGap) Specs() []lab.ParamSpec {
	return []lab.ParamSpec{
		{Name: "temperature", Label: "Temperature", Unit: "K", Min: 250, Max: 400, Step: 1, Default: 300},
		{Name: "voltage", Label: "Voltage", Unit: "V", Min: 0, Max: 1.5, Step: 0.01, Default: 0.7},
	}
}

func (EnergyGap) Policy() lab.ResetPolicy { return lab.ResetPolicy{} }

func (EnergyGap) Evaluate(p lab.ParameterSet, _ float64) physics.EnergyGap {
	return physics.EnergyGap{Temperature: p.Get("temperature"), Voltage: p.Get("voltage")}
}

func (EnergyGap) Sweeps(lab.ParameterSet) []lab.Sweep {
	return []lab.Sweep{{
		Label:  "iv",
		XName:  "voltage",
		YNames: []string{"current", "log current"},
		Start:  0,
		Step:   0.05,
		Count:  lab.SweepTo(0, 1.5, 0.05),
		Eval: func(v float64) ([]float64, bool) {
			return []float64{physics.Current(v), physics.LogCurrent(v)}, true
		},
	}}
}

func (EnergyGap) Readout(_ lab.ParameterSet, out physics.EnergyGap) []lab.Reading {
	return []lab.Reading{
		{Label: "Energy gap", Value: out.Gap(), Unit: "eV", Prec: 2},
		{Label: "Current", Value: out.Current(), Unit: "A", Prec: -1},
		{Label: "kT", Value: out.ThermalEnergy(), Unit: "eV", Prec: 4},
	}
}

// Draw is a band diagram: conduction band above, valence band below, the gap
// between them labelled.
func (EnergyGap) Draw(s lab.Surface, _ lab.ParameterSet, out physics.EnergyGap) {
	w, h := s.Size()
	x0, x1 := frac(w, 0.1), frac(w, 0.9)
	cb, vb := frac(h, 0.25), frac(h, 0.75)

	s.Line(x0, cb, x1, cb)
	s.Line(x0, vb, x1, vb)

	mid := frac(w, 0.5)
	s.Line(mid, cb+2, mid, vb-2)
	s.Text(x0, cb-h/10, "Conduction band")
	s.Text(x0, vb+h/20, "Valence band")
	s.Text(mid+4, (cb+vb)/2, fmt.Sprintf("Eg = %.2f eV", out.Gap()))
}
