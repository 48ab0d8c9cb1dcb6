package physics

import "math"

type Pendulum struct {
	Length    float64 // m
	Gravity   float64 // m/s²
	Amplitude float64 // rad
	Damping   float64 // 1/s
}

func NewPendulum() *Pendulum {
	return &Pendulum{
		Length:    1.0,
		Gravity:   9.8,
		Amplitude: Radians(15),
		Damping:   0.1,
	}
}

// Omega is the natural angular frequency √(g/L).
func (p *Pendulum) Omega() float64 {
	return math.Sqrt(p.Gravity / p.Length)
}

// Period is 2π√(L/g), independent of damping.
func (p *Pendulum) Period() float64 {
	return 2 * math.Pi * math.Sqrt(p.Length/p.Gravity)
}

func (p *Pendulum) Angle(t float64) float64 {
	return p.Amplitude * math.Cos(p.Omega()*t) * math.Exp(-p.Damping*t)
}

// AngularVelocity is the envelope-free derivative term -θ₀ω sin(ωt) e^(-dt).
func (p *Pendulum) AngularVelocity(t float64) float64 {
	w := p.Omega()
	return -p.Amplitude * w * math.Sin(w*t) * math.Exp(-p.Damping*t)
}

// Bob returns the bob offset from the pivot in metres, y positive downwards.
func (p *Pendulum) Bob(t float64) (x, y float64) {
	th := p.Angle(t)
	return p.Length * math.Sin(th), p.Length * math.Cos(th)
}

type PendulumState struct {
	Time     float64
	Angle    float64 // rad
	Velocity float64 // rad/s
	X, Y     float64
}

func (p *Pendulum) At(t float64) PendulumState {
	x, y := p.Bob(t)
	return PendulumState{
		Time:     t,
		Angle:    p.Angle(t),
		Velocity: p.AngularVelocity(t),
		X:        x,
		Y:        y,
	}
}

func Radians(deg float64) float64 { return deg * math.Pi / 180 }
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }
