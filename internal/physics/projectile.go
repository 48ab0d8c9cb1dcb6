package physics

import "math"

type Projectile struct {
	Speed   float64 // m/s
	Angle   float64 // rad
	Height  float64 // m
	Gravity float64 // m/s²
}

func NewProjectile() *Projectile {
	return &Projectile{
		Speed:   20,
		Angle:   Radians(45),
		Gravity: 9.8,
	}
}

func (p *Projectile) Components() (vx, vy float64) {
	return p.Speed * math.Cos(p.Angle), p.Speed * math.Sin(p.Angle)
}

// FlightTime is (v_y + √(v_y² + 2gh)) / g.
func (p *Projectile) FlightTime() float64 {
	_, vy := p.Components()
	return (vy + math.Sqrt(vy*vy+2*p.Gravity*p.Height)) / p.Gravity
}

func (p *Projectile) Range() float64 {
	vx, _ := p.Components()
	return vx * p.FlightTime()
}

// MaxHeight is the apex above ground, h + v_y²/2g.
func (p *Projectile) MaxHeight() float64 {
	_, vy := p.Components()
	return p.Height + vy*vy/(2*p.Gravity)
}

func (p *Projectile) Position(t float64) (x, y float64) {
	vx, vy := p.Components()
	return vx * t, p.Height + vy*t - 0.5*p.Gravity*t*t
}

type ProjectileState struct {
	Time float64
	X, Y float64
}

// At clamps t to the flight time so the state never goes below ground.
func (p *Projectile) At(t float64) ProjectileState {
	t = math.Min(t, p.FlightTime())
	x, y := p.Position(t)
	return ProjectileState{Time: t, X: x, Y: math.Max(y, 0)}
}
