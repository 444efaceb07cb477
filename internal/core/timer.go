package core

import "time"

// FixedStep reports when a fixed interval has elapsed. The app uses it to
// throttle the debug readout to a steady rate independent of the frame rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep firing hz times per second. The first
// call to ShouldStep always fires.
func NewFixedStep(hz int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetRate(hz)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the firing rate. Non-positive rates fall back to 1 Hz.
func (f *FixedStep) SetRate(hz int) {
	if hz <= 0 {
		hz = 1
	}
	f.step = time.Second / time.Duration(hz)
}

// ShouldStep reports whether a full interval has accumulated since the last
// time it returned true.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator >= f.step {
			f.accumulator = 0
		}
		return true
	}
	return false
}

// FrameClock measures the wall time between consecutive frames.
type FrameClock struct {
	last time.Time
	now  func() time.Time
}

// NewFrameClock returns a clock whose first Tick reports zero elapsed time.
func NewFrameClock() *FrameClock {
	return &FrameClock{now: time.Now}
}

// Tick returns the seconds elapsed since the previous Tick and the matching
// instantaneous frame rate (zero when no time has passed).
func (c *FrameClock) Tick() (dt, fps float32) {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0, 0
	}
	dt = float32(now.Sub(c.last).Seconds())
	c.last = now
	if dt > 0 {
		fps = 1 / dt
	}
	return dt, fps
}
