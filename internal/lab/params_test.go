package lab_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/vlab/internal/lab"
)

var lengthSpec = lab.ParamSpec{Name: "length", Label: "Length", Unit: "m", Min: 0.1, Max: 2, Step: 0.01, Default: 1}

var _ = Describe("ParameterSet", func() {
	var p lab.ParameterSet

	BeforeEach(func() {
		p = lab.NewParameterSet([]lab.ParamSpec{
			lengthSpec,
			{Name: "angle", Min: -30, Max: 30, Step: 1, Default: 15},
		})
	})

	It("starts at defaults", func() {
		Expect(p.Get("length")).To(Equal(1.0))
		Expect(p.Get("angle")).To(Equal(15.0))
	})

	DescribeTable("clamps and snaps",
		func(name string, in, want float64) {
			got, err := p.Set(name, in)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(BeNumerically("~", want, 1e-12))
			Expect(p.Get(name)).To(Equal(got))
		},
		Entry("above max", "length", 5.0, 2.0),
		Entry("below min", "length", -1.0, 0.1),
		Entry("between steps", "length", 1.234, 1.23),
		Entry("rounds half up", "angle", 12.6, 13.0),
		Entry("negative bound", "angle", -100.0, -30.0),
	)

	It("rejects unknown names", func() {
		_, err := p.Set("mass", 1)
		Expect(errors.Is(err, lab.ErrUnknownParam)).To(BeTrue())

		var pe *lab.ParamError
		Expect(errors.As(err, &pe)).To(BeTrue())
		Expect(pe.Name).To(Equal("mass"))
	})

	It("rejects NaN and keeps the previous value", func() {
		_, err := p.Set("length", math.NaN())
		Expect(err).To(MatchError(lab.ErrInvalidValue))
		Expect(p.Get("length")).To(Equal(1.0))
	})

	It("bounds dependent parameters", func() {
		_, _ = p.Set("angle", 25)
		Expect(p.Bound("angle", 0, 10)).To(Equal(10.0))
		Expect(p.Get("angle")).To(Equal(10.0))
	})

	It("keeps bounded values on the step grid", func() {
		_, _ = p.Set("angle", 25)
		Expect(p.Bound("angle", 0, 16.666)).To(Equal(16.0))

		_, _ = p.Set("length", 1.9)
		Expect(p.Bound("length", 0, 1.2345)).To(Equal(1.23))

		_, _ = p.Set("angle", -30)
		Expect(p.Bound("angle", 4.2, 30)).To(Equal(5.0))
	})

	It("resets to defaults", func() {
		_, _ = p.Set("length", 1.5)
		p.Reset()
		Expect(p.Get("length")).To(Equal(1.0))
	})

	It("clones independently", func() {
		c := p.Clone()
		_, _ = c.Set("length", 0.5)
		Expect(p.Get("length")).To(Equal(1.0))
	})

	It("keeps every value within bounds", func() {
		for _, v := range []float64{-1e9, -0.3, 0, 0.099, 0.7777, 1.995, 2.0001, 1e9} {
			got, err := p.Set("length", v)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(BeNumerically(">=", lengthSpec.Min))
			Expect(got).To(BeNumerically("<=", lengthSpec.Max))
		}
	})
})
