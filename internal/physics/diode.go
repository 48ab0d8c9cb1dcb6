package physics

import "math"

const (
	DiodeScale        = 1e-12 // A, k
	DiodeSlope        = 38.7  // 1/V, α
	DiodeForward      = 0.7   // V, V_f
	DiodeThreshold    = 0.6   // V
	DiodeReverse      = -1e-9 // A
	DiodeReverseLimit = -5.0  // V
)

// Diode is the simplified silicon characteristic. Temperature is displayed
// but does not enter the current law.
type Diode struct {
	Voltage     float64 // V
	Temperature float64 // K
}

func NewDiode() *Diode {
	return &Diode{Voltage: 0.7, Temperature: 300}
}

// Current returns I(V): exponential above the threshold, a floor below it,
// and a constant leakage in reverse bias.
func Current(v float64) float64 {
	switch {
	case v < 0:
		return DiodeReverse
	case v > DiodeThreshold:
		return DiodeScale * math.Exp(DiodeSlope*(v-DiodeForward))
	default:
		return DiodeScale
	}
}

func (d *Diode) Current() float64 { return Current(d.Voltage) }

// Conducting reports forward bias past the threshold.
func (d *Diode) Conducting() bool { return d.Voltage > DiodeThreshold }

// ThermalVoltage is kT/q at the diode temperature.
func (d *Diode) ThermalVoltage() float64 {
	return Boltzmann * d.Temperature / Charge
}

const (
	Boltzmann = 1.380649e-23    // J/K
	Charge    = 1.602176634e-19 // C
)
