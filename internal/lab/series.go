package lab

import "math"

// DataPoint is one row of a series: the independent variable and its dependent values.
type DataPoint struct {
	X float64
	Y []float64
}

// IsFinite reports whether every coordinate is a finite number.
func (d DataPoint) IsFinite() bool {
	if math.IsNaN(d.X) || math.IsInf(d.X, 0) {
		return false
	}
	for _, v := range d.Y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Series is an ordered (ascending X) sequence of points sharing one column layout.
type Series struct {
	Label  string
	XName  string
	YNames []string
	Points []DataPoint
}

// Column returns the index of a dependent column, or -1.
func (s Series) Column(name string) int {
	for i, n := range s.YNames {
		if n == name {
			return i
		}
	}
	return -1
}

// Xs returns the independent variable values.
func (s Series) Xs() []float64 {
	xs := make([]float64, len(s.Points))
	for i, p := range s.Points {
		xs[i] = p.X
	}
	return xs
}

// Ys returns dependent column col.
func (s Series) Ys(col int) []float64 {
	ys := make([]float64, len(s.Points))
	for i, p := range s.Points {
		if col >= 0 && col < len(p.Y) {
			ys[i] = p.Y[col]
		}
	}
	return ys
}

// SeriesSet is the ordered set of series produced by one generation pass.
type SeriesSet struct {
	order []string
	byKey map[string]Series
}

func NewSeriesSet(series ...Series) SeriesSet {
	s := SeriesSet{byKey: make(map[string]Series, len(series))}
	for _, ser := range series {
		s.add(ser)
	}
	return s
}

func (s *SeriesSet) add(ser Series) {
	if s.byKey == nil {
		s.byKey = make(map[string]Series)
	}
	if _, ok := s.byKey[ser.Label]; !ok {
		s.order = append(s.order, ser.Label)
	}
	s.byKey[ser.Label] = ser
}

// Labels returns series labels in generation order.
func (s SeriesSet) Labels() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

func (s SeriesSet) Get(label string) (Series, bool) {
	ser, ok := s.byKey[label]
	return ser, ok
}

// All returns every series in generation order.
func (s SeriesSet) All() []Series {
	out := make([]Series, 0, len(s.order))
	for _, l := range s.order {
		out = append(out, s.byKey[l])
	}
	return out
}

func (s SeriesSet) Len() int { return len(s.order) }
