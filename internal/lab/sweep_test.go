package lab_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/vlab/internal/lab"
)

var _ = Describe("Generate", func() {
	square := func(x float64) ([]float64, bool) { return []float64{x * x}, true }

	It("counts inclusive ranges", func() {
		Expect(lab.SweepTo(0, 10, 0.1)).To(Equal(101))
		Expect(lab.SweepTo(0, 20, 0.5)).To(Equal(41))
		Expect(lab.SweepTo(0, 0, 0)).To(Equal(1))
	})

	It("evaluates at start + i*step", func() {
		set := lab.Generate([]lab.Sweep{{Label: "sq", XName: "x", YNames: []string{"y"}, Start: 0, Step: 0.1, Count: 101, Eval: square}})
		ser, ok := set.Get("sq")
		Expect(ok).To(BeTrue())
		Expect(ser.Points).To(HaveLen(101))
		Expect(ser.Points[100].X).To(BeNumerically("~", 10, 1e-9))
		Expect(ser.Points[30].X).To(Equal(3.0))
	})

	It("stops when eval declines", func() {
		set := lab.Generate([]lab.Sweep{{Label: "s", Start: 0, Step: 1, Count: 10, Eval: func(x float64) ([]float64, bool) {
			return []float64{x}, x < 4
		}}})
		ser, _ := set.Get("s")
		Expect(ser.Points).To(HaveLen(4))
	})

	It("omits non-finite points", func() {
		set := lab.Generate([]lab.Sweep{{Label: "log", Start: -1, Step: 1, Count: 3, Eval: func(x float64) ([]float64, bool) {
			return []float64{math.Log(x)}, true
		}}})
		ser, _ := set.Get("log")
		Expect(ser.Points).To(HaveLen(1))
		Expect(ser.Points[0].X).To(Equal(1.0))
	})

	It("is idempotent", func() {
		sw := []lab.Sweep{{Label: "sq", Start: 0, Step: 0.25, Count: 9, Eval: square}}
		Expect(lab.Generate(sw).All()).To(Equal(lab.Generate(sw).All()))
	})

	It("keeps sweep order", func() {
		set := lab.Generate([]lab.Sweep{
			{Label: "b", Count: 1, Eval: square},
			{Label: "a", Count: 1, Eval: square},
		})
		Expect(set.Labels()).To(Equal([]string{"b", "a"}))
		Expect(set.Len()).To(Equal(2))
	})
})
