package core

import (
	"testing"
	"time"
)

func TestFixedStepFirstAdvancePrimes(t *testing.T) {
	ticks := 0
	c := NewFixedStep(60, func() { ticks++ })
	base := time.Unix(1000, 0)

	if n := c.Advance(base); n != 0 {
		t.Errorf("first Advance ran %d ticks, expected 0", n)
	}
	if ticks != 0 {
		t.Errorf("tick called %d times on priming", ticks)
	}
}

func TestFixedStepRunsWholeTicks(t *testing.T) {
	ticks := 0
	c := NewFixedStep(60, func() { ticks++ })
	base := time.Unix(1000, 0)
	c.Start(base)

	// Early callback: less than one step elapsed.
	if n := c.Advance(base.Add(5 * time.Millisecond)); n != 0 {
		t.Errorf("early Advance ran %d ticks", n)
	}

	// Delayed callback: 50ms covers three steps in total.
	if n := c.Advance(base.Add(50 * time.Millisecond)); n != 3 {
		t.Errorf("delayed Advance ran %d ticks, expected 3", n)
	}
	if ticks != 3 {
		t.Errorf("tick count = %d, expected 3", ticks)
	}

	want := 50*time.Millisecond - 3*c.Step
	if c.Accumulated() != want {
		t.Errorf("Accumulated() = %v, expected %v", c.Accumulated(), want)
	}
}

func TestFixedStepJitterKeepsRate(t *testing.T) {
	ticks := 0
	c := NewFixedStep(60, func() { ticks++ })
	base := time.Unix(0, 0)
	c.Start(base)

	// Irregular frame gaps that add up to one second plus a margin.
	gaps := []time.Duration{7, 33, 16, 2, 50, 17, 15, 1, 40}
	now := base
	for now.Sub(base) < time.Second+time.Millisecond {
		for _, g := range gaps {
			now = now.Add(g * time.Millisecond)
			c.Advance(now)
		}
	}

	expected := int(now.Sub(base) / c.Step)
	if ticks != expected {
		t.Errorf("ran %d ticks over %v, expected %d", ticks, now.Sub(base), expected)
	}
	if c.Ticks() != uint64(ticks) {
		t.Errorf("Ticks() = %d, expected %d", c.Ticks(), ticks)
	}
}

func TestFixedStepMaxFrame(t *testing.T) {
	ticks := 0
	c := NewFixedStep(60, func() { ticks++ })
	c.MaxFrame = 100 * time.Millisecond
	base := time.Unix(0, 0)
	c.Start(base)

	c.Advance(base.Add(10 * time.Second))
	if ticks != int(c.MaxFrame/c.Step) {
		t.Errorf("MaxFrame not applied: ran %d ticks", ticks)
	}
}

func TestFixedStepIgnoresBackwardsTime(t *testing.T) {
	c := NewFixedStep(60, nil)
	base := time.Unix(100, 0)
	c.Start(base)

	if n := c.Advance(base.Add(-time.Second)); n != 0 {
		t.Errorf("backwards timestamp ran %d ticks", n)
	}
	if c.Accumulated() != 0 {
		t.Errorf("backwards timestamp accumulated %v", c.Accumulated())
	}
}
