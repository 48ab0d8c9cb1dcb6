package lab

import (
	"context"
	"sync"
	"time"
)

// Scheduler delivers a recurring frame callback between Start and Stop.
type Scheduler interface {
	Start(ctx context.Context, tick func(now time.Time))
	Stop()
}

// TickerScheduler is a Scheduler backed by a time.Ticker goroutine.
// Cancelling ctx has the same effect as Stop.
type TickerScheduler struct {
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewTickerScheduler(fps int) *TickerScheduler {
	if fps <= 0 {
		fps = 60
	}
	return &TickerScheduler{interval: time.Second / time.Duration(fps)}
}

func (s *TickerScheduler) Interval() time.Duration { return s.interval }

// Start begins delivering frames. A running scheduler is stopped first so
// there is never more than one callback chain.
func (s *TickerScheduler) Start(ctx context.Context, tick func(now time.Time)) {
	s.Stop()

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	s.mu.Lock()
	s.cancel = cancel
	s.done = done
	s.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				// a stop that raced with the tick wins
				if ctx.Err() != nil {
					return
				}
				tick(now)
			}
		}
	}()
}

// Stop cancels the pending frame and waits for the loop to exit. Safe to call
// more than once.
func (s *TickerScheduler) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Active reports whether a callback chain is scheduled.
func (s *TickerScheduler) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}
