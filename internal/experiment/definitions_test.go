package experiment_test

import (
	"math"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/vlab/internal/experiment"
	"github.com/san-kum/vlab/internal/lab"
)

// recorder is a Surface that counts primitives and keeps text.
type recorder struct {
	w, h  int
	marks int
	text  []string
}

func (r *recorder) Size() (int, int)               { return r.w, r.h }
func (r *recorder) Clear()                         { r.marks, r.text = 0, nil }
func (r *recorder) Set(x, y int)                   { r.marks++ }
func (r *recorder) Line(x0, y0, x1, y1 int)        { r.marks++ }
func (r *recorder) Circle(cx, cy, rad int, f bool) { r.marks++ }
func (r *recorder) Text(x, y int, s string)        { r.text = append(r.text, s) }

func series(inst lab.Instance, label string) lab.Series {
	ser, ok := inst.Series().Get(label)
	Expect(ok).To(BeTrue(), "missing series %q", label)
	return ser
}

var _ = Describe("Definitions", func() {
	reg := experiment.NewRegistry()
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	newInst := func(id string) lab.Instance {
		inst, err := reg.New(id)
		Expect(err).NotTo(HaveOccurred())
		return inst
	}

	DescribeTable("series shape",
		func(id, label string, points int, columns []string) {
			ser := series(newInst(id), label)
			Expect(ser.Points).To(HaveLen(points))
			Expect(ser.YNames).To(Equal(columns))
		},
		Entry("pendulum", "simple-pendulum", "motion", 101, []string{"angle", "velocity"}),
		Entry("free fall", "free-fall", "motion", 51, []string{"position", "velocity"}),
		Entry("projectile", "projectile", "trajectory", 101, []string{"x", "y"}),
		Entry("diode forward", "diode", "forward bias", 101, []string{"current"}),
		Entry("diode reverse", "diode", "reverse bias", 50, []string{"current"}),
		Entry("circuit", "circuit", "ohms law", 41, []string{"current", "power"}),
		Entry("titration", "titration", "titration", 101, []string{"pH"}),
		Entry("energy gap", "energy-gap", "iv", 31, []string{"current", "log current"}),
	)

	It("produces identical series from unchanged parameters", func() {
		for _, id := range reg.IDs() {
			a, b := newInst(id), newInst(id)
			Expect(a.Series().All()).To(Equal(b.Series().All()), id)
		}
	})

	It("keeps pendulum readings at the period", func() {
		inst := newInst("simple-pendulum")
		ser := series(inst, "motion")
		Expect(ser.Points[0].Y[0]).To(BeNumerically("~", 15, 1e-9))
		Expect(ser.Points[0].Y[1]).To(BeNumerically("~", 0, 1e-9))
		Expect(inst.Readout()[1].Value).To(BeNumerically("~", 2.007, 1e-3))
	})

	It("ends the free-fall series on the ground", func() {
		ser := series(newInst("free-fall"), "motion")
		last := ser.Points[len(ser.Points)-1]
		Expect(last.Y[0]).To(BeNumerically("~", 0, 1e-9))
		Expect(last.Y[1]).To(BeNumerically("~", 44.27, 0.01))
	})

	It("keeps projectile samples above ground", func() {
		inst := newInst("projectile")
		_, _ = inst.Set("height", 30)
		_, _ = inst.Set("angle", 20)
		for _, pt := range series(inst, "trajectory").Points {
			Expect(pt.Y[1]).To(BeNumerically(">=", 0))
		}
	})

	It("degenerates to one point for a flat launch from the ground", func() {
		inst := newInst("projectile")
		_, _ = inst.Set("angle", 0)
		Expect(series(inst, "trajectory").Points).To(HaveLen(1))
	})

	It("bounds titrant volume by the equivalence volume", func() {
		inst := newInst("titration")
		stored, err := inst.Set("volume", 80)
		Expect(err).NotTo(HaveOccurred())
		Expect(stored).To(Equal(50.0))

		_, _ = inst.Set("volume", 25)
		Expect(inst.Readout()[1].Value).To(Equal(7.0))

		_, _ = inst.Set("concentration", 0.5)
		Expect(inst.Params().Get("volume")).To(BeNumerically("~", 10, 1e-9))
	})

	It("bounds titrant volume by the final concentration in a batch edit", func() {
		inst := newInst("titration")
		Expect(inst.SetAll(map[string]float64{"concentration": 0.05, "volume": 80})).To(Succeed())
		Expect(inst.Params().Get("concentration")).To(Equal(0.05))
		Expect(inst.Params().Get("volume")).To(Equal(80.0))

		Expect(inst.SetAll(map[string]float64{"concentration": 0.5, "volume": 80})).To(Succeed())
		Expect(inst.Params().Get("volume")).To(BeNumerically("~", 10, 1e-9))
	})

	It("reports circuit current and power", func() {
		r := newInst("circuit").Readout()
		Expect(r[2].Value).To(BeNumerically("~", 0.12, 1e-12))
		Expect(r[3].Value).To(BeNumerically("~", 1.44, 1e-12))
	})

	It("reports the diode boundary current", func() {
		r := newInst("diode").Readout()
		Expect(r[1].Value).To(BeNumerically("~", 1e-12, 1e-24))
		Expect(r[1].Format()).To(Equal("Current: 1.000e-12 A"))
	})

	Describe("reset policies", func() {
		run := func(inst lab.Instance, secs float64) {
			inst.Play()
			inst.Tick(t0)
			inst.Tick(t0.Add(time.Duration(secs * float64(time.Second))))
		}

		It("zeroes the pendulum on pause", func() {
			inst := newInst("simple-pendulum")
			run(inst, 1.5)
			inst.Pause()
			Expect(inst.Phase()).To(Equal(lab.Idle))
			Expect(inst.Time()).To(Equal(0.0))
		})

		It("keeps pendulum time through edits while running", func() {
			inst := newInst("simple-pendulum")
			run(inst, 1.5)
			_, _ = inst.Set("length", 1.2)
			Expect(inst.Time()).To(BeNumerically("~", 1.5, 1e-9))
		})

		It("restarts free fall on edits", func() {
			inst := newInst("free-fall")
			run(inst, 2)
			inst.Pause()
			Expect(inst.Time()).To(BeNumerically("~", 2, 1e-9))
			_, _ = inst.Set("height", 50)
			Expect(inst.Time()).To(Equal(0.0))
			Expect(inst.Phase()).To(Equal(lab.Idle))
		})

		It("keeps time for static experiments", func() {
			inst := newInst("circuit")
			run(inst, 2)
			_, _ = inst.Set("voltage", 3)
			Expect(inst.Time()).To(BeNumerically("~", 2, 1e-9))
		})
	})

	It("draws every diagram within bounds", func() {
		for _, id := range reg.IDs() {
			inst := newInst(id)
			inst.Seek(0.8)
			r := &recorder{w: 160, h: 96}
			inst.Draw(r)
			Expect(r.marks).To(BeNumerically(">", 0), id)
			Expect(r.text).NotTo(BeEmpty(), id)
		}
	})

	It("labels the pendulum frame with the clock time", func() {
		inst := newInst("simple-pendulum")
		inst.Seek(1.3)
		r := &recorder{w: 100, h: 80}
		inst.Draw(r)
		Expect(strings.Join(r.text, "\n")).To(ContainSubstring("Time: 1.3s"))
	})

	It("never emits non-finite points", func() {
		for _, id := range reg.IDs() {
			for _, ser := range newInst(id).Series().All() {
				for _, pt := range ser.Points {
					for _, y := range pt.Y {
						Expect(math.IsNaN(y) || math.IsInf(y, 0)).To(BeFalse())
					}
				}
			}
		}
	})
})
