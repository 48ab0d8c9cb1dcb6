package physics

import "math"

// FreeFall is a drop from rest under constant gravity.
//
// Mass and AirResistance are carried for display only: the kinematics are
// drag-free and mass-independent.
type FreeFall struct {
	Height        float64 // m
	Gravity       float64 // m/s²
	Mass          float64 // kg
	AirResistance float64
}

func NewFreeFall() *FreeFall {
	return &FreeFall{
		Height:  100,
		Gravity: 9.8,
		Mass:    1,
	}
}

// FallTime is √(2h/g).
func (f *FreeFall) FallTime() float64 {
	return math.Sqrt(2 * f.Height / f.Gravity)
}

// FinalVelocity is the speed at impact, g·t_f.
func (f *FreeFall) FinalVelocity() float64 {
	return f.Gravity * f.FallTime()
}

// Position is the height above ground, clamped at zero.
func (f *FreeFall) Position(t float64) float64 {
	return math.Max(0, f.Height-0.5*f.Gravity*t*t)
}

// Velocity is g·t, held at the impact speed once landed.
func (f *FreeFall) Velocity(t float64) float64 {
	return f.Gravity * math.Min(t, f.FallTime())
}

type FallState struct {
	Time     float64
	Position float64
	Velocity float64
	Landed   bool
}

func (f *FreeFall) At(t float64) FallState {
	return FallState{
		Time:     t,
		Position: f.Position(t),
		Velocity: f.Velocity(t),
		Landed:   t >= f.FallTime(),
	}
}
