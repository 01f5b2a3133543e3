package sway

import "math"

// Task calls a function every interval seconds. It animates nothing, so it
// can run without an actor: register it with Manager.AddTask, or place it in
// a Sequence or Spawn like any other action, where it shares the
// composite's target.
//
// The function runs at most once per update; a frame longer than the
// interval carries the excess into the next update.
type Task struct {
	actionCore
	fn       func()
	interval float64
	times    int
	count    int
	elapsed  float64
}

// NewTask creates a task calling fn every interval seconds, times times.
// Negative times repeats until the task is stopped; zero finishes without
// calling fn. A non-positive interval calls fn on every update. Panics if fn
// is nil.
func NewTask(interval float64, times int, fn func()) *Task {
	if fn == nil {
		panic("sway: nil task func")
	}
	if interval < 0 || math.IsNaN(interval) {
		interval = 0
	}
	return &Task{fn: fn, interval: interval, times: times}
}

// Interval returns the period in seconds.
func (t *Task) Interval() float64 { return t.interval }

// Times returns the configured run count, negative for unlimited.
func (t *Task) Times() int { return t.times }

// Count returns how many times fn ran since the last bind or Reset.
func (t *Task) Count() int { return t.count }

// Target returns the bound actor, or nil for tasks added with AddTask.
func (t *Task) Target() Actor {
	if _, ok := t.target.(taskHost); ok {
		return nil
	}
	return t.target
}

// StartWithTarget binds t to target. See Action.
func (t *Task) StartWithTarget(target Actor) { startWithTarget(t, target) }

// Update advances t by dt seconds. See Action.
func (t *Task) Update(dt float64) { update(t, dt) }

// Reset rewinds the run count and the interval timer.
func (t *Task) Reset() {
	t.reset()
	t.count = 0
	t.elapsed = 0
}

func (t *Task) init() {
	t.count = 0
	t.elapsed = 0
	if t.times == 0 {
		t.done = true
	}
}

func (t *Task) advance(dt float64) float64 {
	if t.done {
		return dt
	}
	t.elapsed += dt
	if t.elapsed+completionEpsilon < t.interval {
		return 0
	}
	t.elapsed = math.Max(t.elapsed-t.interval, 0)
	t.count++
	t.fn()
	if t.times >= 0 && t.count >= t.times {
		t.done = true
		return math.Min(t.elapsed, dt)
	}
	return 0
}

// Clone returns an unbound task with the same function and schedule.
func (t *Task) Clone() Action {
	c := NewTask(t.interval, t.times, t.fn)
	t.copyOptions(&c.actionCore)
	return c
}

// Reverse returns a clone; a timer runs the same way in both directions.
func (t *Task) Reverse() (Action, error) {
	return t.Clone(), nil
}

// taskHost is the stand-in target of tasks registered with AddTask. It is
// never disposed and ignores writes.
type taskHost struct{}

func (taskHost) Position() Vec2 { return Vec2{} }
func (taskHost) SetPosition(Vec2) {}
func (taskHost) Scale() Vec2 { return Vec2{1, 1} }
func (taskHost) SetScale(Vec2) {}
func (taskHost) Angle() float64 { return 0 }
func (taskHost) SetAngle(float64) {}
func (taskHost) Opacity() float64 { return 1 }
func (taskHost) SetOpacity(float64) {}
func (taskHost) IsDisposed() bool { return false }
