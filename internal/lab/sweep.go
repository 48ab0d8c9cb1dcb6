package lab

// Sweep tabulates a model over a fixed-step range of its independent variable.
//
// Point i is evaluated at Start + i*Step for i in [0, Count). Eval returns the
// dependent values for x, or ok=false to end the sweep early (for example the
// first sample below ground in a trajectory).
type Sweep struct {
	Label  string
	XName  string
	YNames []string
	Start  float64
	Step   float64
	Count  int
	Eval   func(x float64) (ys []float64, ok bool)
}

// SweepTo builds the Count for an inclusive range [start, end] at step.
// A zero or negative step yields a single point at start.
func SweepTo(start, end, step float64) int {
	if step <= 0 || end < start {
		return 1
	}
	// tolerate float error so that 0..10 step 0.1 includes 10
	return int((end-start)/step+1e-9) + 1
}

// Generate evaluates every sweep from scratch. Points with non-finite values
// are omitted.
func Generate(sweeps []Sweep) SeriesSet {
	set := NewSeriesSet()
	for _, sw := range sweeps {
		set.add(run(sw))
	}
	return set
}

func run(sw Sweep) Series {
	ser := Series{
		Label:  sw.Label,
		XName:  sw.XName,
		YNames: append([]string(nil), sw.YNames...),
		Points: make([]DataPoint, 0, max(sw.Count, 0)),
	}
	if sw.Eval == nil {
		return ser
	}
	for i := 0; i < sw.Count; i++ {
		x := sw.Start + float64(i)*sw.Step
		if sw.Step > 0 {
			x = roundTo(x, decimals(sw.Step)+1)
		}
		ys, ok := sw.Eval(x)
		if !ok {
			break
		}
		pt := DataPoint{X: x, Y: append([]float64(nil), ys...)}
		if !pt.IsFinite() {
			continue
		}
		ser.Points = append(ser.Points, pt)
	}
	return ser
}
