package analysis

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/san-kum/vlab/internal/lab"
)

// padFactor zero-pads samples to sharpen the spectral peak location.
const padFactor = 8

// PowerSpectrum returns the magnitude of the first half of the spectrum of
// data with its mean removed.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}
	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(len(data))

	n := nextPow2(len(data) * padFactor)
	buf := make([]float64, n)
	for i, v := range data {
		buf[i] = v - mean
	}

	spec := fft.FFTReal(buf)
	ps := make([]float64, n/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spec[i])
	}
	return ps
}

// DominantFrequency returns the strongest non-zero frequency of uniformly
// spaced samples taken every dx.
func DominantFrequency(data []float64, dx float64) (float64, error) {
	if len(data) < 4 || dx <= 0 {
		return 0, fmt.Errorf("dominant frequency: %w", lab.ErrEmptySeries)
	}
	ps := PowerSpectrum(data)
	best := 1
	for k := 2; k < len(ps); k++ {
		if ps[k] > ps[best] {
			best = k
		}
	}
	if ps[best] == 0 {
		return 0, fmt.Errorf("dominant frequency: flat signal")
	}
	n := nextPow2(len(data) * padFactor)
	return float64(best) / (float64(n) * dx), nil
}

// DominantPeriod estimates the period of column col of a uniformly sampled
// series.
func DominantPeriod(ser lab.Series, col int) (float64, error) {
	if len(ser.Points) < 4 {
		return 0, fmt.Errorf("%s: %w", ser.Label, lab.ErrEmptySeries)
	}
	if col < 0 || col >= len(ser.YNames) {
		return 0, fmt.Errorf("%s: no column %d", ser.Label, col)
	}
	dx := ser.Points[1].X - ser.Points[0].X
	f, err := DominantFrequency(ser.Ys(col), dx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ser.Label, err)
	}
	return 1 / f, nil
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// Stats summarises one column.
type Stats struct {
	Min, Max, Mean float64
	ArgMin, ArgMax float64
}

func Summarize(ser lab.Series, col int) (Stats, error) {
	if len(ser.Points) == 0 {
		return Stats{}, fmt.Errorf("%s: %w", ser.Label, lab.ErrEmptySeries)
	}
	s := Stats{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, p := range ser.Points {
		if col < 0 || col >= len(p.Y) {
			return Stats{}, fmt.Errorf("%s: no column %d", ser.Label, col)
		}
		v := p.Y[col]
		s.Mean += v
		if v < s.Min {
			s.Min, s.ArgMin = v, p.X
		}
		if v > s.Max {
			s.Max, s.ArgMax = v, p.X
		}
	}
	s.Mean /= float64(len(ser.Points))
	return s, nil
}
