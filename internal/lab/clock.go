package lab

import (
	"log/slog"
	"time"
)

// Phase is the clock's run state.
type Phase int

const (
	Idle Phase = iota
	Running
	Paused
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "idle"
	}
}

// ChangeReset selects what a parameter edit does to the clock.
type ChangeReset int

const (
	// KeepTime leaves the clock untouched.
	KeepTime ChangeReset = iota
	// ZeroWhenStopped returns a non-running clock to idle.
	ZeroWhenStopped
	// ZeroAlways rewinds to zero; a running clock keeps running from zero.
	ZeroAlways
)

func (c ChangeReset) String() string {
	switch c {
	case ZeroWhenStopped:
		return "zero-when-stopped"
	case ZeroAlways:
		return "zero-always"
	default:
		return "keep"
	}
}

// ResetPolicy is an experiment's clock behaviour on pause and on parameter edits.
type ResetPolicy struct {
	ZeroOnPause bool
	OnChange    ChangeReset
}

// Clock is a simulation time driven by measured wall-clock deltas.
// Time advances only while running, and only through Advance.
type Clock struct {
	phase   Phase
	t       float64
	last    time.Time
	hasLast bool
	policy  ResetPolicy
	logger  *slog.Logger
}

func NewClock(policy ResetPolicy) *Clock {
	return &Clock{policy: policy, logger: discardLogger}
}

func (c *Clock) Phase() Phase             { return c.phase }
func (c *Clock) Time() float64            { return c.t }
func (c *Clock) Running() bool            { return c.phase == Running }
func (c *Clock) Policy() ResetPolicy      { return c.policy }
func (c *Clock) setLogger(l *slog.Logger) { c.logger = l }

// Play starts or resumes. The next Advance only records its timestamp.
func (c *Clock) Play() {
	if c.phase == Running {
		return
	}
	c.transition(Running)
	c.hasLast = false
}

// Pause stops advancing. Time is kept unless the policy zeroes on pause.
func (c *Clock) Pause() {
	if c.phase != Running {
		return
	}
	c.hasLast = false
	if c.policy.ZeroOnPause {
		c.t = 0
		c.transition(Idle)
		return
	}
	c.transition(Paused)
}

// Toggle switches between running and not running.
func (c *Clock) Toggle() {
	if c.phase == Running {
		c.Pause()
	} else {
		c.Play()
	}
}

// Reset returns to idle at time zero.
func (c *Clock) Reset() {
	c.t = 0
	c.hasLast = false
	c.transition(Idle)
}

// Seek places the clock at t without running it.
func (c *Clock) Seek(t float64) {
	if t < 0 {
		t = 0
	}
	c.hasLast = false
	c.t = t
	if t == 0 {
		c.transition(Idle)
		return
	}
	c.transition(Paused)
}

// Advance adds the wall time elapsed since the previous frame and returns the
// new simulation time. Non-running clocks and backwards timestamps add nothing.
func (c *Clock) Advance(now time.Time) float64 {
	if c.phase != Running {
		return c.t
	}
	if c.hasLast {
		if dt := now.Sub(c.last).Seconds(); dt > 0 {
			c.t += dt
		}
	}
	c.last = now
	c.hasLast = true
	return c.t
}

// ParamChanged applies the policy for a parameter edit.
func (c *Clock) ParamChanged() {
	switch c.policy.OnChange {
	case ZeroAlways:
		c.t = 0
		c.hasLast = false
		if c.phase == Paused {
			c.transition(Idle)
		}
	case ZeroWhenStopped:
		if c.phase != Running {
			c.t = 0
			c.transition(Idle)
		}
	}
}

func (c *Clock) transition(to Phase) {
	if c.phase == to {
		return
	}
	c.logger.Debug("clock transition", "from", c.phase, "to", to, "t", c.t)
	c.phase = to
}
