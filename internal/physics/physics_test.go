package physics

import (
	"math"
	"testing"
)

func approx(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestPendulumPeriod(t *testing.T) {
	p := NewPendulum()
	if got := p.Period(); !approx(got, 2.007, 1e-3) {
		t.Errorf("expected period 2.007, got %.4f", got)
	}

	half := p.Period() / 2
	want := -p.Amplitude * math.Exp(-p.Damping*half)
	if got := p.Angle(half); !approx(got, want, 1e-12) {
		t.Errorf("half-period angle: got %.6f, expected %.6f", got, want)
	}
}

func TestPendulumPeriodMonotonic(t *testing.T) {
	prev := 0.0
	for l := 0.1; l <= 2.0; l += 0.1 {
		p := &Pendulum{Length: l, Gravity: 9.8}
		if T := p.Period(); T <= prev {
			t.Fatalf("period not increasing in length at L=%.1f", l)
		} else {
			prev = T
		}
	}

	prev = math.Inf(1)
	for g := 1.0; g <= 20; g += 0.5 {
		p := &Pendulum{Length: 1, Gravity: g}
		if T := p.Period(); T >= prev {
			t.Fatalf("period not decreasing in gravity at g=%.1f", g)
		} else {
			prev = T
		}
	}
}

func TestPendulumVelocityIsDerivative(t *testing.T) {
	p := NewPendulum()
	p.Damping = 0
	h := 1e-6
	for _, ts := range []float64{0.1, 0.7, 1.3} {
		numeric := (p.Angle(ts+h) - p.Angle(ts-h)) / (2 * h)
		if !approx(p.AngularVelocity(ts), numeric, 1e-6) {
			t.Errorf("t=%.1f: analytic %.6f, numeric %.6f", ts, p.AngularVelocity(ts), numeric)
		}
	}
}

func TestPendulumBob(t *testing.T) {
	p := NewPendulum()
	x, y := p.Bob(0)
	if !approx(x*x+y*y, p.Length*p.Length, 1e-12) {
		t.Error("bob should stay on the rod")
	}
	if x <= 0 {
		t.Error("positive amplitude should swing right at t=0")
	}
}

func TestFreeFall(t *testing.T) {
	f := NewFreeFall()
	if got := f.FallTime(); !approx(got, 4.515, 0.01) {
		t.Errorf("expected fall time 4.515, got %.4f", got)
	}
	if got := f.FinalVelocity(); !approx(got, 44.25, 0.05) {
		t.Errorf("expected final velocity 44.25, got %.4f", got)
	}
	if got := f.Position(f.FallTime()); !approx(got, 0, 1e-9) {
		t.Errorf("expected ground at t_f, got %g", got)
	}
}

func TestFreeFallNonIncreasing(t *testing.T) {
	f := NewFreeFall()
	prev := math.Inf(1)
	for ts := 0.0; ts <= 10; ts += 0.05 {
		y := f.Position(ts)
		if y > prev {
			t.Fatalf("height rose at t=%.2f", ts)
		}
		if y < 0 {
			t.Fatalf("height below ground at t=%.2f", ts)
		}
		prev = y
	}
}

func TestFreeFallIgnoresMass(t *testing.T) {
	a := NewFreeFall()
	b := NewFreeFall()
	b.Mass = 10
	b.AirResistance = 1
	if a.FallTime() != b.FallTime() || a.Position(2) != b.Position(2) {
		t.Error("mass and air resistance must not change the kinematics")
	}
}

func TestProjectileMaxRange(t *testing.T) {
	p := NewProjectile()
	p.Angle = Radians(45)
	best := p.Range()
	for deg := 0.0; deg <= 90; deg++ {
		p.Angle = Radians(deg)
		if r := p.Range(); r > best+1e-9 {
			t.Errorf("range at %.0f° (%.4f) exceeds range at 45° (%.4f)", deg, r, best)
		}
	}
}

func TestProjectileFlight(t *testing.T) {
	p := &Projectile{Speed: 20, Angle: Radians(30), Height: 10, Gravity: 9.8}
	_, y := p.Position(p.FlightTime())
	if !approx(y, 0, 1e-9) {
		t.Errorf("expected landing at t_f, got y=%g", y)
	}

	_, vy := p.Components()
	apex := vy / p.Gravity
	if _, y := p.Position(apex); !approx(y, p.MaxHeight(), 1e-9) {
		t.Errorf("apex %g != max height %g", y, p.MaxHeight())
	}

	if s := p.At(100); !approx(s.Y, 0, 1e-9) || !approx(s.X, p.Range(), 1e-9) {
		t.Errorf("state after landing should rest at range, got %+v", s)
	}
}

func TestDiodeCurrent(t *testing.T) {
	tests := []struct {
		v    float64
		want float64
	}{
		{0.7, 1e-12},
		{0.6, 1e-12},
		{0.3, 1e-12},
		{0, 1e-12},
		{-0.1, -1e-9},
		{-5, -1e-9},
	}
	for _, tt := range tests {
		if got := Current(tt.v); !approx(got, tt.want, 1e-24) {
			t.Errorf("I(%.2f) = %g, expected %g", tt.v, got, tt.want)
		}
	}

	// the exponential branch starts below the 1e-12 floor just past 0.6,
	// so monotonicity holds from the first exponential sample on
	prev := Current(0.61)
	for v := 0.62; v <= 1.0; v += 0.01 {
		i := Current(v)
		if i <= prev {
			t.Fatalf("current not increasing at V=%.2f", v)
		}
		prev = i
	}
}

func TestCircuit(t *testing.T) {
	c := NewCircuit()
	if got := c.Current(); !approx(got, 0.12, 1e-12) {
		t.Errorf("expected 0.12 A, got %g", got)
	}
	if got := c.Power(); !approx(got, 1.44, 1e-12) {
		t.Errorf("expected 1.44 W, got %g", got)
	}
}

func TestTitrationEquivalence(t *testing.T) {
	tests := []struct {
		conc    float64
		analyte float64
	}{
		{0.1, 25},
		{0.3, 25},
		{0.07, 13},
		{1, 50},
	}
	for _, tt := range tests {
		ti := &Titration{Concentration: tt.conc, Analyte: tt.analyte}
		veq := ti.EquivalenceVolume()
		if !approx(veq, tt.analyte*0.1/tt.conc, 1e-12) {
			t.Errorf("V_eq mismatch for C=%g", tt.conc)
		}
		if got := ti.PH(veq); got != 7 {
			t.Errorf("C=%g Va=%g: pH at equivalence = %g", tt.conc, tt.analyte, got)
		}
	}
}

func TestTitrationCurve(t *testing.T) {
	ti := NewTitration()
	veq := ti.EquivalenceVolume()

	if got := ti.PH(0); !approx(got, 1, 1e-9) {
		t.Errorf("expected initial pH 1 for 0.1 M acid, got %g", got)
	}

	prev := ti.PH(0)
	for v := 0.5; v < 2*veq; v += 0.5 {
		ph := ti.PH(v)
		if ph <= prev {
			t.Fatalf("pH not rising at %.1f mL (%.4f <= %.4f)", v, ph, prev)
		}
		if v < veq && ph >= 7 {
			t.Fatalf("acid side reached pH %.2f at %.1f mL", ph, v)
		}
		if v > veq && ph <= 7 {
			t.Fatalf("base side below pH 7 at %.1f mL", v)
		}
		prev = ph
	}
}

func TestEnergyGap(t *testing.T) {
	e := NewEnergyGap()
	if e.Gap() != 1.12 {
		t.Errorf("expected silicon gap 1.12 eV, got %g", e.Gap())
	}
	if got := e.LogCurrent(); !approx(got, -12, 1e-9) {
		t.Errorf("expected log current -12 at 0.7 V, got %g", got)
	}
	if got := e.ThermalEnergy(); !approx(got, 0.02585, 1e-4) {
		t.Errorf("expected kT ≈ 0.0259 eV at 300 K, got %g", got)
	}
}
