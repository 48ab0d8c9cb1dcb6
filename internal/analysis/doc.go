// Package analysis derives summary quantities from generated series.
//
//   - [DominantPeriod]: FFT peak of a uniformly sampled column
//   - [CrossingPeriod]: mean spacing of upward zero crossings
//   - [Portrait]: two columns plotted against each other
//   - [Summarize]: min, max and mean of a column
//
// For the pendulum both period estimates should approach 2π√(L/g):
//
//	ser, _ := inst.Series().Get("motion")
//	T, err := analysis.DominantPeriod(ser, 0)
package analysis
