package sway

import (
	"errors"
	"math"
)

// ErrNotReversible is returned (wrapped) by Reverse for actions whose inverse
// is undefined: the -To kinds, whose delta depends on the target at bind
// time, and Custom.
var ErrNotReversible = errors.New("not reversible")

// Action is a unit of timed work bound to one target actor.
//
// Lifecycle: an action is created detached, bound with StartWithTarget (or
// Manager.Add), updated once per frame while running and not done, and then
// finishes either naturally or through Stop. Done is sticky until Reset.
//
// The set of actions is closed: Tween (with its kinds), Sequence, Spawn and
// Loop. Use Custom for bespoke per-frame behavior.
type Action interface {
	// Name returns the optional, non-unique name used by manager filters.
	Name() string
	SetName(name string)

	// Target returns the bound actor, or nil before the first bind.
	Target() Actor

	IsRunning() bool
	IsDone() bool

	// StartedAt is the clock reading taken at the last bind, init, Reset
	// or Resume. Zero when no clock is attached.
	StartedAt() float64

	// StartWithTarget binds the action to target and resets its timing.
	// Panics if target is nil or the action is bound and not yet done.
	StartWithTarget(target Actor)

	// Update advances the action by dt seconds. It does nothing unless the
	// action is running and not done. Negative and non-finite dt count as 0. The first call after a bind or Reset
	// captures start values from the target.
	Update(dt float64)

	// Pause suspends updates without finishing the action.
	Pause()
	// Resume continues a paused action and re-stamps StartedAt.
	Resume()
	// Stop finishes the action immediately. The done callback is not called.
	Stop()
	// Reset clears done and initialized so the action runs again against
	// the same target. Name and target are kept.
	Reset()

	// SetDoneCallback registers fn to run when the action completes
	// naturally.
	SetDoneCallback(fn func(Action))
	// RemoveTargetWhenDone detaches the target from its parent on natural
	// completion, when the target supports it.
	RemoveTargetWhenDone()

	// Clone returns an unbound copy with the same configuration.
	Clone() Action
	// Reverse returns an unbound action that undoes this one, or an error
	// wrapping ErrNotReversible. Name and completion options carry over.
	Reverse() (Action, error)

	core() *actionCore
	init()
	advance(dt float64) float64
	children() []Action
}

// actionCore is the state every action shares. Concrete actions embed it
// and supply init, advance, Reset, Clone and Reverse.
type actionCore struct {
	name        string
	running     bool
	done        bool
	initialized bool
	target      Actor
	startedAt   float64
	clock       Clock

	onDone       func(Action)
	detachTarget bool
}

func (c *actionCore) core() *actionCore { return c }

func (c *actionCore) children() []Action { return nil }

func (c *actionCore) Name() string { return c.name }

func (c *actionCore) SetName(name string) { c.name = name }

func (c *actionCore) Target() Actor { return c.target }

func (c *actionCore) IsRunning() bool { return c.running }

func (c *actionCore) IsDone() bool { return c.done }

func (c *actionCore) StartedAt() float64 { return c.startedAt }

func (c *actionCore) Pause() { c.running = false }

func (c *actionCore) Resume() {
	c.running = true
	c.startedAt = c.now()
}

func (c *actionCore) Stop() { c.done = true }

func (c *actionCore) SetDoneCallback(fn func(Action)) { c.onDone = fn }

func (c *actionCore) RemoveTargetWhenDone() { c.detachTarget = true }

func (c *actionCore) now() float64 {
	if c.clock == nil {
		return 0
	}
	return c.clock.Now()
}

// reset rewinds the shared state. Concrete Reset methods call it first.
func (c *actionCore) reset() {
	c.initialized = false
	c.done = false
	c.startedAt = c.now()
}

// copyOptions carries name and completion options over to a clone.
func (c *actionCore) copyOptions(dst *actionCore) {
	dst.name = c.name
	dst.onDone = c.onDone
	dst.detachTarget = c.detachTarget
}

// startWithTarget is the checked bind behind every StartWithTarget.
func startWithTarget(a Action, target Actor) {
	if target == nil {
		panic("sway: cannot start action with nil target")
	}
	c := a.core()
	if c.target != nil && !c.done {
		panic("sway: action is already bound to a target; Stop it or use Clone")
	}
	bind(a, target, c.clock)
}

// bind attaches a to target without the rebind check. Composites use it to
// (re)start children they own.
func bind(a Action, target Actor, clock Clock) {
	c := a.core()
	if clock != nil {
		attachClock(a, clock)
	}
	c.target = target
	c.running = true
	a.Reset()
}

// attachClock sets the clock on a and every descendant.
func attachClock(a Action, clock Clock) {
	a.core().clock = clock
	for _, child := range a.children() {
		attachClock(child, clock)
	}
}

// update runs one tick of a and returns the time left over if a finished
// during this tick. Composites use the leftover to start the next child
// without losing part of the frame.
func update(a Action, dt float64) float64 {
	c := a.core()
	if !c.running || c.done {
		return 0
	}
	if c.target == nil {
		panic("sway: update on action with no target")
	}
	if c.target.IsDisposed() {
		c.done = true
		return 0
	}
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}
	if !c.initialized {
		c.initialized = true
		c.startedAt = c.now()
		a.init()
	}
	left := a.advance(dt)
	if c.done {
		c.complete(a)
	}
	return left
}

// complete fires the completion options once a finished naturally.
func (c *actionCore) complete(a Action) {
	if c.detachTarget {
		if d, ok := c.target.(detacher); ok {
			d.RemoveFromParent()
		}
	}
	if c.onDone != nil {
		c.onDone(a)
	}
}
