package physics

import "math"

// AcidMolarity is the fixed analyte concentration in mol/L.
const AcidMolarity = 0.1

// Titration is a strong monoprotic acid titrated with a strong base.
// Volumes are in mL.
type Titration struct {
	Concentration float64 // titrant, mol/L
	Analyte       float64 // mL
}

func NewTitration() *Titration {
	return &Titration{Concentration: 0.1, Analyte: 25}
}

// EquivalenceVolume is Vₐ·0.1/C.
func (ti *Titration) EquivalenceVolume() float64 {
	return ti.Analyte * AcidMolarity / ti.Concentration
}

// Moles returns the acid present and the base delivered after added mL.
func (ti *Titration) Moles(added float64) (acid, base float64) {
	return ti.Analyte / 1000 * AcidMolarity, added / 1000 * ti.Concentration
}

// PH after adding the given volume of titrant. Mole counts equal to a
// relative 1e-9 are treated as the equivalence point.
func (ti *Titration) PH(added float64) float64 {
	acid, base := ti.Moles(added)
	total := (ti.Analyte + added) / 1000
	if math.Abs(acid-base) <= 1e-9*math.Max(acid, base) {
		return 7
	}
	if base < acid {
		return -math.Log10((acid - base) / total)
	}
	pOH := -math.Log10((base - acid) / total)
	return 14 - pOH
}

// Fill is the delivered fraction of the equivalence volume, capped at 1.
func (ti *Titration) Fill(added float64) float64 {
	return math.Min(added/ti.EquivalenceVolume(), 1)
}

type TitrationState struct {
	Added       float64 // mL
	PH          float64
	Fill        float64
	Equivalence float64 // mL
}

func (ti *Titration) At(added float64) TitrationState {
	return TitrationState{
		Added:       added,
		PH:          ti.PH(added),
		Fill:        ti.Fill(added),
		Equivalence: ti.EquivalenceVolume(),
	}
}
