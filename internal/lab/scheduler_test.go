package lab_test

import (
	"context"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/vlab/internal/lab"
)

var _ = Describe("TickerScheduler", func() {
	It("delivers frames until stopped", func() {
		s := lab.NewTickerScheduler(200)
		var n atomic.Int64
		s.Start(context.Background(), func(time.Time) { n.Add(1) })
		Eventually(n.Load).Should(BeNumerically(">=", 3))

		s.Stop()
		Expect(s.Active()).To(BeFalse())
		after := n.Load()
		Consistently(n.Load, 50*time.Millisecond).Should(Equal(after))
	})

	It("stops on context cancellation", func() {
		s := lab.NewTickerScheduler(200)
		ctx, cancel := context.WithCancel(context.Background())
		var n atomic.Int64
		s.Start(ctx, func(time.Time) { n.Add(1) })
		Eventually(n.Load).Should(BeNumerically(">=", 1))
		cancel()
		time.Sleep(20 * time.Millisecond)
		after := n.Load()
		Consistently(n.Load, 50*time.Millisecond).Should(Equal(after))
		s.Stop()
	})

	It("allows repeated Stop", func() {
		s := lab.NewTickerScheduler(0)
		Expect(s.Interval()).To(Equal(time.Second / 60))
		s.Stop()
		s.Start(context.Background(), func(time.Time) {})
		s.Stop()
		s.Stop()
		Expect(s.Active()).To(BeFalse())
	})
})
