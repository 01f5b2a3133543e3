package sway

// Spawn runs its actions in parallel against the spawn's target and finishes
// when all of them have. Children that finish early stop receiving updates.
//
// Children update in insertion order. The list is snapshotted at the start
// of each update; a child added during an update (from a callback, say) is
// bound right away and first updates on the next frame.
type Spawn struct {
	actionCore
	actions []Action
}

// NewSpawn creates a parallel group. Panics on a nil action.
func NewSpawn(actions ...Action) *Spawn {
	for _, a := range actions {
		if a == nil {
			panic("sway: nil action in spawn")
		}
	}
	return &Spawn{actions: actions}
}

// Actions returns the children. The returned slice MUST NOT be mutated.
func (s *Spawn) Actions() []Action { return s.actions }

// Add appends a child. If the spawn is already running, the child is bound
// to the spawn's target immediately; in-flight children are unaffected.
func (s *Spawn) Add(a Action) {
	if a == nil {
		panic("sway: nil action in spawn")
	}
	s.actions = append(s.actions, a)
	if s.initialized && !s.done {
		bind(a, s.target, s.clock)
	}
}

// StartWithTarget binds s to target. See Action.
func (s *Spawn) StartWithTarget(target Actor) { startWithTarget(s, target) }

// Update advances every unfinished child by dt seconds. See Action.
func (s *Spawn) Update(dt float64) { update(s, dt) }

// Reset resets every child.
func (s *Spawn) Reset() {
	s.reset()
	for _, a := range s.actions {
		a.Reset()
	}
}

func (s *Spawn) children() []Action { return s.actions }

func (s *Spawn) init() {
	for _, a := range s.actions {
		bind(a, s.target, s.clock)
	}
}

func (s *Spawn) advance(dt float64) float64 {
	snapshot := s.actions
	leftover := dt
	for _, a := range snapshot {
		if a.IsDone() {
			continue
		}
		left := update(a, dt)
		if a.IsDone() && left < leftover {
			leftover = left
		}
	}
	for _, a := range s.actions {
		if !a.IsDone() {
			return 0
		}
	}
	s.done = true
	return leftover
}

// Clone deep-clones every child.
func (s *Spawn) Clone() Action {
	actions := make([]Action, len(s.actions))
	for i, a := range s.actions {
		actions[i] = a.Clone()
	}
	c := NewSpawn(actions...)
	s.copyOptions(&c.actionCore)
	return c
}

// Reverse reverses every child. It fails as a whole if any child cannot be
// reversed.
func (s *Spawn) Reverse() (Action, error) {
	actions := make([]Action, len(s.actions))
	for i, a := range s.actions {
		r, err := a.Reverse()
		if err != nil {
			return nil, err
		}
		actions[i] = r
	}
	r := NewSpawn(actions...)
	s.copyOptions(&r.actionCore)
	return r, nil
}
