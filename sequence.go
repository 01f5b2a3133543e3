package sway

// Sequence runs its actions one after another against the sequence's target.
// The sequence owns its children; do not register them with a Manager or
// share them with another composite.
type Sequence struct {
	actionCore
	actions []Action
	index   int
}

// NewSequence creates a sequence of actions. Panics on a nil action.
func NewSequence(actions ...Action) *Sequence {
	for _, a := range actions {
		if a == nil {
			panic("sway: nil action in sequence")
		}
	}
	return &Sequence{actions: actions}
}

// Actions returns the children. The returned slice MUST NOT be mutated.
func (s *Sequence) Actions() []Action { return s.actions }

// Index returns the position of the active child. It equals len(Actions())
// once the sequence is done.
func (s *Sequence) Index() int { return s.index }

// StartWithTarget binds s to target. See Action.
func (s *Sequence) StartWithTarget(target Actor) { startWithTarget(s, target) }

// Update advances the active child by dt seconds. See Action.
func (s *Sequence) Update(dt float64) { update(s, dt) }

// Reset rewinds the cursor and resets every child.
func (s *Sequence) Reset() {
	s.reset()
	s.index = 0
	for _, a := range s.actions {
		a.Reset()
	}
}

func (s *Sequence) children() []Action { return s.actions }

func (s *Sequence) init() {
	s.index = 0
	if len(s.actions) > 0 {
		bind(s.actions[0], s.target, s.clock)
	}
}

// advance feeds dt to the active child. When a child finishes mid-frame the
// next one starts at once with the leftover, so a zero-length step does not
// cost a frame.
func (s *Sequence) advance(dt float64) float64 {
	for s.index < len(s.actions) {
		cur := s.actions[s.index]
		left := update(cur, dt)
		if !cur.IsDone() {
			return 0
		}
		s.index++
		if s.index < len(s.actions) {
			bind(s.actions[s.index], s.target, s.clock)
		}
		dt = left
	}
	s.done = true
	return dt
}

// Clone deep-clones every child.
func (s *Sequence) Clone() Action {
	actions := make([]Action, len(s.actions))
	for i, a := range s.actions {
		actions[i] = a.Clone()
	}
	c := NewSequence(actions...)
	s.copyOptions(&c.actionCore)
	return c
}

// Reverse returns a sequence of the reversed children in reverse order. It
// fails as a whole if any child cannot be reversed.
func (s *Sequence) Reverse() (Action, error) {
	n := len(s.actions)
	actions := make([]Action, n)
	for i, a := range s.actions {
		r, err := a.Reverse()
		if err != nil {
			return nil, err
		}
		actions[n-1-i] = r
	}
	r := NewSequence(actions...)
	s.copyOptions(&r.actionCore)
	return r, nil
}
