package core

import "time"

// FixedStep decouples irregular frame delivery from a constant simulation
// rate. Each Advance call adds the wall time elapsed since the previous call
// to an accumulator and runs one tick per whole step it holds.
//
// FixedStep knows nothing about how frames are scheduled: the platform feeds
// it timestamps, and tests feed it synthetic ones.
type FixedStep struct {
	// Step is the simulated duration of one tick.
	Step time.Duration

	// MaxFrame caps the elapsed time credited by a single Advance call.
	// Zero disables the cap.
	MaxFrame time.Duration

	tick    func()
	last    time.Time
	acc     time.Duration
	started bool
	ticks   uint64
}

// NewFixedStep creates a clock running tick at rate ticks per second.
// A non-positive rate falls back to 60.
func NewFixedStep(rate int, tick func()) *FixedStep {
	if rate <= 0 {
		rate = 60
	}
	return &FixedStep{
		Step: time.Second / time.Duration(rate),
		tick: tick,
	}
}

// Start primes the clock at now and drops any accumulated time.
func (c *FixedStep) Start(now time.Time) {
	c.last = now
	c.acc = 0
	c.started = true
}

// Advance credits the time since the last call and runs every whole tick it
// covers. It returns the number of ticks run, which may be zero. The first
// call on an unstarted clock only primes it.
func (c *FixedStep) Advance(now time.Time) int {
	if !c.started {
		c.Start(now)
		return 0
	}

	elapsed := now.Sub(c.last)
	c.last = now
	if elapsed < 0 {
		elapsed = 0
	}
	if c.MaxFrame > 0 && elapsed > c.MaxFrame {
		elapsed = c.MaxFrame
	}
	c.acc += elapsed

	n := 0
	for c.acc >= c.Step {
		if c.tick != nil {
			c.tick()
		}
		c.acc -= c.Step
		c.ticks++
		n++
	}
	return n
}

// Accumulated returns the time carried over towards the next tick.
func (c *FixedStep) Accumulated() time.Duration {
	return c.acc
}

// Ticks returns the total number of ticks run since creation.
func (c *FixedStep) Ticks() uint64 {
	return c.ticks
}
