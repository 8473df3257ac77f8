package core

import "time"

// Clock produces the monotonic time and frame counter handed to the evaluator
// once per display refresh.
type Clock struct {
	elapsed time.Duration
	frames  uint64
}

// Advance moves the clock forward by dt, counts one frame and returns the
// frame to render. Negative durations are treated as zero so time never runs
// backwards.
func (c *Clock) Advance(dt time.Duration) Frame {
	if dt > 0 {
		c.elapsed += dt
	}
	c.frames++
	return c.Frame()
}

// Frame reports the current frame without advancing.
func (c *Clock) Frame() Frame {
	return Frame{Time: c.elapsed.Seconds(), Index: c.frames}
}

// Reset rewinds the clock to zero.
func (c *Clock) Reset() {
	c.elapsed = 0
	c.frames = 0
}

// FixedStep helps run updates at a steady ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// FrameDuration returns the duration of a single tick at tps, defaulting to 60.
func FrameDuration(tps int) time.Duration {
	if tps <= 0 {
		tps = 60
	}
	return time.Second / time.Duration(tps)
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	f.step = FrameDuration(tps)
}

// Step returns the configured tick duration.
func (f *FixedStep) Step() time.Duration { return f.step }

// ShouldStep reports whether the caller should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
