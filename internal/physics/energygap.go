package physics

import "math"

// SiliconGap is the silicon band gap at room temperature, in eV.
const SiliconGap = 1.12

// EnergyGap models the forward characteristic of a silicon junction used to
// estimate its band gap.
type EnergyGap struct {
	Temperature float64 // K
	Voltage     float64 // V
}

func NewEnergyGap() *EnergyGap {
	return &EnergyGap{Temperature: 300, Voltage: 0.7}
}

func (e *EnergyGap) Gap() float64 { return SiliconGap }

func (e *EnergyGap) Current() float64 { return Current(e.Voltage) }

// LogCurrent is log10 of the absolute current.
func (e *EnergyGap) LogCurrent() float64 {
	return LogCurrent(e.Voltage)
}

func LogCurrent(v float64) float64 {
	return math.Log10(math.Abs(Current(v)))
}

// ThermalEnergy is kT in eV.
func (e *EnergyGap) ThermalEnergy() float64 {
	return Boltzmann * e.Temperature / Charge
}
