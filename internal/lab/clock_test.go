package lab_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/vlab/internal/lab"
)

var _ = Describe("Clock", func() {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	at := func(sec float64) time.Time { return t0.Add(time.Duration(sec * float64(time.Second))) }

	It("does not advance while idle", func() {
		c := lab.NewClock(lab.ResetPolicy{})
		Expect(c.Advance(at(5))).To(Equal(0.0))
		Expect(c.Phase()).To(Equal(lab.Idle))
	})

	It("uses wall deltas and records the first frame only", func() {
		c := lab.NewClock(lab.ResetPolicy{})
		c.Play()
		Expect(c.Advance(at(0))).To(Equal(0.0))
		Expect(c.Advance(at(0.5))).To(BeNumerically("~", 0.5, 1e-9))
		Expect(c.Advance(at(1.5))).To(BeNumerically("~", 1.5, 1e-9))
	})

	It("never counts paused time", func() {
		c := lab.NewClock(lab.ResetPolicy{})
		c.Play()
		c.Advance(at(0))
		c.Advance(at(1))
		c.Pause()
		Expect(c.Phase()).To(Equal(lab.Paused))
		Expect(c.Advance(at(10))).To(BeNumerically("~", 1, 1e-9))

		c.Play()
		c.Advance(at(20))
		Expect(c.Advance(at(20.25))).To(BeNumerically("~", 1.25, 1e-9))
	})

	It("ignores backwards timestamps", func() {
		c := lab.NewClock(lab.ResetPolicy{})
		c.Play()
		c.Advance(at(2))
		Expect(c.Advance(at(1))).To(Equal(0.0))
	})

	It("zeroes on pause when configured", func() {
		c := lab.NewClock(lab.ResetPolicy{ZeroOnPause: true})
		c.Play()
		c.Advance(at(0))
		c.Advance(at(3))
		c.Pause()
		Expect(c.Phase()).To(Equal(lab.Idle))
		Expect(c.Time()).To(Equal(0.0))
	})

	It("resets from any phase", func() {
		c := lab.NewClock(lab.ResetPolicy{})
		c.Play()
		c.Advance(at(0))
		c.Advance(at(2))
		c.Reset()
		Expect(c.Phase()).To(Equal(lab.Idle))
		Expect(c.Time()).To(Equal(0.0))
	})

	DescribeTable("parameter change",
		func(policy lab.ChangeReset, run bool, wantTime float64, wantPhase lab.Phase) {
			c := lab.NewClock(lab.ResetPolicy{OnChange: policy})
			c.Play()
			c.Advance(at(0))
			c.Advance(at(2))
			if !run {
				c.Pause()
			}
			c.ParamChanged()
			Expect(c.Time()).To(BeNumerically("~", wantTime, 1e-9))
			Expect(c.Phase()).To(Equal(wantPhase))
		},
		Entry("keep while running", lab.KeepTime, true, 2.0, lab.Running),
		Entry("keep while paused", lab.KeepTime, false, 2.0, lab.Paused),
		Entry("zero-when-stopped while running", lab.ZeroWhenStopped, true, 2.0, lab.Running),
		Entry("zero-when-stopped while paused", lab.ZeroWhenStopped, false, 0.0, lab.Idle),
		Entry("zero-always while running", lab.ZeroAlways, true, 0.0, lab.Running),
		Entry("zero-always while paused", lab.ZeroAlways, false, 0.0, lab.Idle),
	)

	It("seeks without running", func() {
		c := lab.NewClock(lab.ResetPolicy{})
		c.Seek(2.5)
		Expect(c.Time()).To(Equal(2.5))
		Expect(c.Phase()).To(Equal(lab.Paused))
		c.Seek(-1)
		Expect(c.Phase()).To(Equal(lab.Idle))
	})
})
