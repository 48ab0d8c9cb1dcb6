package experiment

import (
	"fmt"

	"github.com/san-kum/vlab/internal/lab"
	"github.com/san-kum/vlab/internal/physics"
)

type Titration struct{}

func (Titration) Info() lab.Info {
	return lab.Info{
		ID:          "titration",
		Title:       "Titration",
		Description: "Perform acid-base titrations and determine the concentration of unknown solutions.",
		Category:    "Chemistry",
		Difficulty:  lab.Intermediate,
		Popularity:  75,
	}
}

// Specs caps volume at the widest reachable range; Constrain narrows it to
// twice the equivalence volume.
func (Titration) Specs() []lab.ParamSpec {
	return []lab.ParamSpec{
		{Name: "volume", Label: "Titrant Added", Unit: "mL", Min: 0, Max: 1000, Step: 0.1, Default: 0},
		{Name: "concentration", Label: "Base Concentration", Unit: "M", Min: 0.01, Max: 1, Step: 0.01, Default: 0.1},
		{Name: "analyte", Label: "Analyte Volume", Unit: "mL", Min: 10, Max: 50, Step: 1, Default: 25},
	}
}

func (Titration) Policy() lab.ResetPolicy { return lab.ResetPolicy{} }

func (Titration) model(p lab.ParameterSet) *physics.Titration {
	return &physics.Titration{Concentration: p.Get("concentration"), Analyte: p.Get("analyte")}
}

func (d Titration) Constrain(p *lab.ParameterSet) {
	p.Bound("volume", 0, 2*d.model(*p).EquivalenceVolume())
}

func (d Titration) Evaluate(p lab.ParameterSet, _ float64) physics.TitrationState {
	return d.model(p).At(p.Get("volume"))
}

func (d Titration) Sweeps(p lab.ParameterSet) []lab.Sweep {
	m := d.model(p)
	return []lab.Sweep{{
		Label:  "titration",
		XName:  "volume",
		YNames: []string{"pH"},
		Start:  0,
		Step:   0.5,
		Count:  lab.SweepTo(0, 2*m.EquivalenceVolume(), 0.5),
		Eval: func(v float64) ([]float64, bool) {
			return []float64{m.PH(v)}, true
		},
	}}
}

func (Titration) Readout(_ lab.ParameterSet, out physics.TitrationState) []lab.Reading {
	return []lab.Reading{
		{Label: "Volume added", Value: out.Added, Unit: "mL", Prec: 1},
		{Label: "pH", Value: out.PH, Prec: 2},
		{Label: "Equivalence volume", Value: out.Equivalence, Unit: "mL", Prec: 1},
	}
}

// Draw shows a burette over a flask whose fill tracks progress to equivalence.
func (Titration) Draw(s lab.Surface, _ lab.ParameterSet, out physics.TitrationState) {
	w, h := s.Size()
	cx := frac(w, 0.5)
	bw := max(w/30, 2)

	bTop, bBot := frac(h, 0.05), frac(h, 0.4)
	rect(s, cx-bw, bTop, cx+bw, bBot)
	s.Line(cx, bBot, cx, bBot+h/20)

	fTop, fBot := frac(h, 0.5), frac(h, 0.95)
	neck := max(w/20, 2)
	base := max(w/6, 4)
	s.Line(cx-neck, fTop, cx-base, fBot)
	s.Line(cx+neck, fTop, cx+base, fBot)
	s.Line(cx-base, fBot, cx+base, fBot)

	level := fBot - int(float64(fBot-fTop)*clampUnit(out.Fill))
	for y := fBot - 1; y >= level && y > fTop; y -= 2 {
		// half-width of the flask at this row
		half := neck + (base-neck)*(y-fTop)/max(fBot-fTop, 1)
		s.Line(cx-half+1, y, cx+half-1, y)
	}

	s.Text(2, 2, fmt.Sprintf("pH: %.2f", out.PH))
}
