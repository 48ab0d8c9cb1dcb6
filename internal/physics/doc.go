// Package physics provides the closed-form models behind each experiment.
//
// Every model is a plain struct of physical parameters with pure methods that
// evaluate observables at one value of the independent variable (time or
// voltage). Nothing here integrates numerically or keeps state:
//
//   - [Pendulum]: damped small-angle oscillation
//   - [FreeFall]: constant-g drop from rest
//   - [Projectile]: launch from a height with no drag
//   - [Diode]: piecewise exponential I-V characteristic
//   - [Circuit]: Ohm's law and dissipated power
//   - [Titration]: strong acid titrated with strong base
//   - [EnergyGap]: silicon junction I-V with band-gap readout
//
// Parameters are expected within the experiment bounds; no model guards
// against zero lengths, gravities or resistances.
//
//	p := physics.NewPendulum()
//	p.Length = 2
//	fmt.Println(p.Period())
package physics
