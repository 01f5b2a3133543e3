package sway

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Clock is the only time source the action core reads. Now is a monotonic
// reading in seconds; DeltaTime is the length of the current frame.
type Clock interface {
	Now() float64
	DeltaTime() float64
}

// Ticker is a Clock the frame driver advances once per frame. Reset drops
// any pending delta so the next frame does not see time that elapsed while
// the game was paused.
type Ticker interface {
	Clock
	Tick()
	Reset()
}

// FixedClock advances by a constant step per Tick. It is deterministic and
// is what tests inject to replay frames exactly.
type FixedClock struct {
	step  float64
	now   float64
	delta float64
}

// NewFixedClock returns a clock that advances step seconds per Tick.
// Non-positive steps fall back to 1/60.
func NewFixedClock(step float64) *FixedClock {
	if step <= 0 {
		step = 1.0 / 60
	}
	return &FixedClock{step: step}
}

// Now returns the accumulated time in seconds.
func (c *FixedClock) Now() float64 { return c.now }

// DeltaTime returns the step of the last Tick, or 0 before the first Tick
// and right after Reset.
func (c *FixedClock) DeltaTime() float64 { return c.delta }

// Step returns the configured step.
func (c *FixedClock) Step() float64 { return c.step }

// Tick advances the clock by one step.
func (c *FixedClock) Tick() {
	c.delta = c.step
	c.now += c.step
}

// Advance moves the clock forward by d seconds as a single frame.
func (c *FixedClock) Advance(d float64) {
	if d < 0 {
		d = 0
	}
	c.delta = d
	c.now += d
}

// Reset zeroes the pending delta. Now keeps its value.
func (c *FixedClock) Reset() { c.delta = 0 }

// TPSClock is a FixedClock whose step follows ebiten's current TPS, the same
// 1/TPS step ebiten uses for its own Update cadence.
type TPSClock struct {
	FixedClock
}

// NewTPSClock returns a clock stepping 1/ebiten.TPS() per Tick.
func NewTPSClock() *TPSClock {
	return &TPSClock{FixedClock: FixedClock{step: tpsStep()}}
}

// Tick re-reads ebiten's TPS and advances by one step.
func (c *TPSClock) Tick() {
	c.step = tpsStep()
	c.FixedClock.Tick()
}

func tpsStep() float64 {
	tps := ebiten.TPS()
	if tps <= 0 {
		return 1.0 / ebiten.DefaultTPS
	}
	return 1.0 / float64(tps)
}

// defaultMaxDelta caps a single RealClock frame so a debugger stop or a long
// hitch does not fast-forward every animation.
const defaultMaxDelta = 0.25

// RealClock measures variable frame deltas from a time source. Time spent
// paused is excluded from both Now and DeltaTime.
type RealClock struct {
	// MaxDelta caps a single frame's delta in seconds. Zero disables the cap.
	MaxDelta float64

	source  func() time.Time
	last    time.Time
	elapsed float64
	delta   float64
	paused  bool
}

// NewRealClock returns a clock reading time.Now.
func NewRealClock() *RealClock {
	return NewRealClockWithSource(time.Now)
}

// NewRealClockWithSource returns a clock reading the given time source.
// Tests inject a fake source to drive variable-step frames deterministically.
func NewRealClockWithSource(source func() time.Time) *RealClock {
	now := source()
	return &RealClock{
		MaxDelta: defaultMaxDelta,
		source:   source,
		last:     now,
	}
}

// Now returns the unpaused seconds elapsed since the clock was created.
func (c *RealClock) Now() float64 { return c.elapsed }

// DeltaTime returns the length of the last ticked frame.
func (c *RealClock) DeltaTime() float64 { return c.delta }

// Tick samples the time source and computes the frame delta.
func (c *RealClock) Tick() {
	now := c.source()
	if c.paused {
		c.last = now
		c.delta = 0
		return
	}
	d := now.Sub(c.last).Seconds()
	c.last = now
	if d < 0 {
		d = 0
	}
	if c.MaxDelta > 0 && d > c.MaxDelta {
		d = c.MaxDelta
	}
	c.delta = d
	c.elapsed += d
}

// Reset drops the pending delta and restarts frame measurement from now.
func (c *RealClock) Reset() {
	c.last = c.source()
	c.delta = 0
}

// Pause freezes the clock. Ticks while paused report a zero delta.
func (c *RealClock) Pause() {
	c.paused = true
	c.delta = 0
}

// Resume unfreezes the clock without reporting the paused span.
func (c *RealClock) Resume() {
	if !c.paused {
		return
	}
	c.paused = false
	c.Reset()
}

// IsPaused reports whether the clock is paused.
func (c *RealClock) IsPaused() bool { return c.paused }
