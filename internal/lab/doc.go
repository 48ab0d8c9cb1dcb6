// Package lab provides the parametric simulation engine shared by every experiment.
//
// An experiment is described by a [Definition]: a set of bounded parameters
// ([ParamSpec]), a closed-form model evaluated at one value of the independent
// variable, the sweeps that tabulate that model into chart series, a clock
// [ResetPolicy], and a diagram renderer drawing onto a [Surface].
//
//   - [ParameterSet]: bounded, step-quantised parameter values
//   - [Sweep] and [Generate]: fixed-step tabulation into a [SeriesSet]
//   - [Clock]: wall-clock driven simulation time (idle, running, paused)
//   - [Scheduler]: recurring frame callback with explicit Start/Stop
//   - [Experiment]: one live instance binding all of the above
//
// # Example
//
//	exp := lab.New[physics.PendulumState](experiment.Pendulum{})
//	exp.Set("length", 2.0)
//	series := exp.Series()
//	exp.Play()
//	exp.Tick(time.Now())
//
// # Thread Safety
//
// Experiment, ParameterSet and Clock are single-owner values. They are meant to be
// mutated from one goroutine (the frame loop); a [TickerScheduler] callback runs on
// the scheduler goroutine, so callers sharing an Experiment with it must serialise.
package lab
