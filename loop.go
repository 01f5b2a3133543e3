package sway

// Loop repeats one action. Times < 0 repeats forever; times == 0 finishes
// without running the action.
type Loop struct {
	actionCore
	action Action
	times  int
	count  int
	onLoop func(count int)
}

// NewLoop repeats a the given number of times. Panics if a is nil.
func NewLoop(a Action, times int) *Loop {
	if a == nil {
		panic("sway: nil action in loop")
	}
	return &Loop{action: a, times: times}
}

// Forever repeats a until it is stopped.
func Forever(a Action) *Loop { return NewLoop(a, -1) }

// Action returns the wrapped action.
func (l *Loop) Action() Action { return l.action }

// Times returns the configured repeat count, negative for infinite.
func (l *Loop) Times() int { return l.times }

// Count returns the number of completed cycles since the last bind or Reset.
func (l *Loop) Count() int { return l.count }

// SetLoopCallback registers fn to run after every completed cycle with the
// number of cycles completed so far.
func (l *Loop) SetLoopCallback(fn func(count int)) { l.onLoop = fn }

// IsRunning reports whether the wrapped action is running.
func (l *Loop) IsRunning() bool { return l.action.IsRunning() }

// Pause pauses the loop and the wrapped action.
func (l *Loop) Pause() {
	l.actionCore.Pause()
	l.action.Pause()
}

// Resume resumes the loop and the wrapped action.
func (l *Loop) Resume() {
	l.actionCore.Resume()
	l.action.Resume()
}

// StartWithTarget binds l to target. See Action.
func (l *Loop) StartWithTarget(target Actor) { startWithTarget(l, target) }

// Update advances the wrapped action by dt seconds. See Action.
func (l *Loop) Update(dt float64) { update(l, dt) }

// Reset rewinds the cycle count and resets the wrapped action.
func (l *Loop) Reset() {
	l.reset()
	l.count = 0
	l.action.Reset()
}

func (l *Loop) children() []Action { return []Action{l.action} }

func (l *Loop) init() {
	l.count = 0
	if l.times == 0 {
		l.done = true
		return
	}
	bind(l.action, l.target, l.clock)
}

// advance restarts the wrapped action in place after each cycle. Leftover
// time carries into the next cycle only when the cycle consumed some of the
// frame, so a zero-length action repeats at most once per frame.
func (l *Loop) advance(dt float64) float64 {
	if l.done {
		return dt
	}
	for {
		left := update(l.action, dt)
		if !l.action.IsDone() {
			return 0
		}
		l.count++
		if l.onLoop != nil {
			l.onLoop(l.count)
		}
		if l.times >= 0 && l.count >= l.times {
			l.done = true
			return left
		}
		l.action.Reset()
		if left <= 0 || left >= dt {
			return 0
		}
		dt = left
	}
}

// Clone clones the wrapped action.
func (l *Loop) Clone() Action {
	c := NewLoop(l.action.Clone(), l.times)
	c.onLoop = l.onLoop
	l.copyOptions(&c.actionCore)
	return c
}

// Reverse loops the reversed wrapped action.
func (l *Loop) Reverse() (Action, error) {
	r, err := l.action.Reverse()
	if err != nil {
		return nil, err
	}
	rl := NewLoop(r, l.times)
	rl.onLoop = l.onLoop
	l.copyOptions(&rl.actionCore)
	return rl, nil
}
