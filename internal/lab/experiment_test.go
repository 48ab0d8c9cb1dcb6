package lab_test

import (
	"errors"
	"math"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/vlab/internal/lab"
)

// ramp is a minimal definition: y = rate * x, with "limit" bounded by rate.
type ramp struct{ policy lab.ResetPolicy }

func (ramp) Info() lab.Info { return lab.Info{ID: "ramp", Title: "Ramp"} }

func (ramp) Specs() []lab.ParamSpec {
	return []lab.ParamSpec{
		{Name: "rate", Min: 1, Max: 10, Step: 1, Default: 2},
		{Name: "limit", Min: 0, Max: 100, Step: 1, Default: 5},
	}
}

func (r ramp) Policy() lab.ResetPolicy { return r.policy }

func (ramp) Evaluate(p lab.ParameterSet, t float64) float64 { return p.Get("rate") * t }

func (ramp) Sweeps(p lab.ParameterSet) []lab.Sweep {
	rate := p.Get("rate")
	return []lab.Sweep{{
		Label: "line", XName: "x", YNames: []string{"y"},
		Start: 0, Step: 1, Count: lab.SweepTo(0, 4, 1),
		Eval: func(x float64) ([]float64, bool) { return []float64{rate * x}, true },
	}}
}

func (ramp) Readout(_ lab.ParameterSet, y float64) []lab.Reading {
	return []lab.Reading{{Label: "y", Value: y, Prec: 1}}
}

func (ramp) Draw(s lab.Surface, _ lab.ParameterSet, y float64) { s.Set(int(y), 0) }

func (ramp) Constrain(p *lab.ParameterSet) { p.Bound("limit", 0, 10*p.Get("rate")) }

type dots struct{ set [][2]int }

func (d *dots) Size() (int, int) { return 100, 100 }
func (d *dots) Clear()           { d.set = nil }
func (d *dots) Set(x, y int)     { d.set = append(d.set, [2]int{x, y}) }
func (d *dots) Line(x0, y0, x1, y1 int)         {}
func (d *dots) Circle(cx, cy, r int, fill bool) {}
func (d *dots) Text(x, y int, s string)         {}

var _ = Describe("Experiment", func() {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	It("generates series on construction", func() {
		e := lab.New[float64](ramp{})
		ser, ok := e.Series().Get("line")
		Expect(ok).To(BeTrue())
		Expect(ser.Ys(0)).To(Equal([]float64{0, 2, 4, 6, 8}))
	})

	It("regenerates series on every edit", func() {
		e := lab.New[float64](ramp{})
		stored, err := e.Set("rate", 3.4)
		Expect(err).NotTo(HaveOccurred())
		Expect(stored).To(Equal(3.0))
		ser, _ := e.Series().Get("line")
		Expect(ser.Ys(0)).To(Equal([]float64{0, 3, 6, 9, 12}))
	})

	It("constrains dependent parameters", func() {
		e := lab.New[float64](ramp{})
		_, _ = e.Set("limit", 80)
		Expect(e.Params().Get("limit")).To(Equal(20.0))
		_, _ = e.Set("rate", 1)
		Expect(e.Params().Get("limit")).To(Equal(10.0))
	})

	It("returns errors without touching state", func() {
		e := lab.New[float64](ramp{})
		_, err := e.Set("nope", 1)
		Expect(errors.Is(err, lab.ErrUnknownParam)).To(BeTrue())
		Expect(e.SetAll(map[string]float64{"rate": 4, "nope": 1})).To(MatchError(lab.ErrUnknownParam))
		Expect(e.Params().Get("rate")).To(Equal(2.0))

		Expect(e.SetAll(map[string]float64{"rate": 4, "limit": math.Inf(1)})).To(MatchError(lab.ErrInvalidValue))
		Expect(e.Params().Get("rate")).To(Equal(2.0))
	})

	It("constrains a batch edit against its final values and publishes once", func() {
		e := lab.New[float64](ramp{})
		published := 0
		cancel := e.Subscribe(func(lab.Snapshot) { published++ })
		defer cancel()

		Expect(e.SetAll(map[string]float64{"limit": 40, "rate": 5})).To(Succeed())
		Expect(e.Params().Get("limit")).To(Equal(40.0))
		Expect(published).To(Equal(1))

		Expect(e.SetAll(map[string]float64{"limit": 40, "rate": 5})).To(Succeed())
		Expect(published).To(Equal(1))
	})

	It("applies the reset policy on edits", func() {
		e := lab.New[float64](ramp{policy: lab.ResetPolicy{OnChange: lab.ZeroAlways}})
		e.Play()
		e.Tick(t0)
		e.Tick(t0.Add(time.Second))
		Expect(e.Time()).To(BeNumerically("~", 1, 1e-9))

		_, _ = e.Set("rate", 5)
		Expect(e.Time()).To(Equal(0.0))
		Expect(e.Phase()).To(Equal(lab.Running))
	})

	It("evaluates readouts and diagrams at the clock time", func() {
		e := lab.New[float64](ramp{})
		e.Seek(3)
		Expect(e.Output()).To(Equal(6.0))
		Expect(e.Readout()[0].Format()).To(Equal("y: 6.0"))

		d := &dots{set: [][2]int{{9, 9}}}
		e.Draw(d)
		Expect(d.set).To(Equal([][2]int{{6, 0}}))
	})

	It("publishes snapshots to subscribers", func() {
		e := lab.New[float64](ramp{})
		var got []lab.Snapshot
		cancel := e.Subscribe(func(s lab.Snapshot) { got = append(got, s) })
		e.Play()
		e.Tick(t0)
		e.Tick(t0.Add(500 * time.Millisecond))
		cancel()
		e.Pause()

		Expect(got).To(HaveLen(3))
		Expect(got[2].Time).To(BeNumerically("~", 0.5, 1e-9))
		Expect(got[2].ID).To(Equal("ramp"))
	})

	It("does not advance after pause", func() {
		e := lab.New[float64](ramp{})
		e.Play()
		e.Tick(t0)
		e.Tick(t0.Add(time.Second))
		e.Pause()
		e.Tick(t0.Add(5 * time.Second))
		Expect(e.Time()).To(BeNumerically("~", 1, 1e-9))
	})
})

var _ = Describe("Reading", func() {
	It("formats fixed and scientific values", func() {
		Expect(lab.Reading{Label: "I", Value: 0.12, Unit: "A", Prec: 3}.Format()).To(Equal("I: 0.120 A"))
		Expect(lab.Reading{Label: "I", Value: 1e-12, Unit: "A", Prec: -1}.Format()).To(Equal("I: 1.000e-12 A"))
	})
})
