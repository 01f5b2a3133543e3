package sway

// ActionEventType identifies a manager lifecycle event.
type ActionEventType uint8

const (
	ActionAdded   ActionEventType = iota // registered with Manager.Add
	ActionDone                           // swept after finishing or being stopped
	ActionRemoved                        // dropped by Remove, RemoveWhere or Clear
)

// String returns the event name.
func (t ActionEventType) String() string {
	switch t {
	case ActionAdded:
		return "added"
	case ActionDone:
		return "done"
	case ActionRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// ActionEvent describes a change in the manager's live set.
type ActionEvent struct {
	Type   ActionEventType
	Name   string
	Action Action
	Target Actor
}

// EventSink receives manager lifecycle events. See the ecs sub-package for a
// Donburi-backed implementation.
type EventSink interface {
	EmitEvent(event ActionEvent)
}

// Filter selects actions for the bulk operations of a Manager.
type Filter func(a Action) bool

// Named matches actions with the given name.
func Named(name string) Filter {
	return func(a Action) bool { return a.Name() == name }
}

// Targeting matches actions bound to target.
func Targeting(target Actor) Filter {
	return func(a Action) bool { return a.Target() == target }
}

// InSubtree matches actions whose target is root or one of its descendants.
func InSubtree(root *Node) Filter {
	return func(a Action) bool {
		n, ok := a.Target().(*Node)
		return ok && n != nil && isAncestor(root, n)
	}
}

// IsTask matches Task actions.
func IsTask(a Action) bool {
	_, ok := a.(*Task)
	return ok
}

// TaskNamed matches tasks with the given name, leaving actions that share
// the name alone.
func TaskNamed(name string) Filter {
	return func(a Action) bool { return IsTask(a) && a.Name() == name }
}

// Manager owns the live set of actions and updates them once per frame.
// Actions are held by identity in registration order; names may repeat.
//
// There is no global manager: create one per stage (or per scene) and drop
// it, or Clear it, on teardown.
type Manager struct {
	clock   Clock
	actions []Action
	live    map[Action]struct{}
	buf     []Action
	sink    EventSink
	debug   bool
}

// NewManager creates a manager reading clock for action timestamps. A nil
// clock leaves StartedAt at zero.
func NewManager(clock Clock) *Manager {
	return &Manager{
		clock: clock,
		live:  make(map[Action]struct{}),
	}
}

// Clock returns the manager's clock.
func (m *Manager) Clock() Clock { return m.clock }

// SetEventSink sets the optional lifecycle event bridge.
func (m *Manager) SetEventSink(sink EventSink) { m.sink = sink }

// SetDebugMode enables per-frame stats and action count warnings through
// the package logger.
func (m *Manager) SetDebugMode(enabled bool) { m.debug = enabled }

// Add binds a to target and registers it. Adding an action that is already
// registered and still running is a no-op. Adding one that is registered
// but done (typically from its own done callback, before the sweep) rebinds
// it to target and restarts it in place; it stays in the live set, so no
// events are emitted. Panics if a or target is nil, or if a is bound
// elsewhere and still running.
func (m *Manager) Add(a Action, target Actor) Action {
	if a == nil {
		panic("sway: cannot add nil action")
	}
	if _, ok := m.live[a]; ok {
		if a.IsDone() {
			a.StartWithTarget(target)
		}
		return a
	}
	if m.clock != nil {
		attachClock(a, m.clock)
	}
	a.StartWithTarget(target)
	m.actions = append(m.actions, a)
	m.live[a] = struct{}{}
	m.emit(ActionAdded, a)
	if m.debug {
		debugCheckActionCount(len(m.actions))
	}
	return a
}

// AddTask registers a target-less task calling fn every interval seconds,
// times times (negative repeats until stopped). Select tasks for the bulk
// operations with TaskNamed or IsTask: PauseWhere and StartWhere suspend and
// resume them, StopWhere ends them, RemoveWhere drops them at once.
func (m *Manager) AddTask(name string, interval float64, times int, fn func()) *Task {
	t := NewTask(interval, times, fn)
	t.SetName(name)
	m.Add(t, taskHost{})
	return t
}

// Remove unregisters a without changing its state.
func (m *Manager) Remove(a Action) {
	m.RemoveWhere(func(x Action) bool { return x == a })
}

// Contains reports whether a is registered.
func (m *Manager) Contains(a Action) bool {
	_, ok := m.live[a]
	return ok
}

// Len returns the number of registered actions.
func (m *Manager) Len() int { return len(m.actions) }

// Actions returns the registered actions in registration order. The returned
// slice MUST NOT be mutated.
func (m *Manager) Actions() []Action { return m.actions }

// Update advances every running, unfinished action by dt seconds in
// registration order, then drops the ones that are done. Actions added
// during the update first run on the next frame; actions removed during it
// are skipped.
func (m *Manager) Update(dt float64) {
	if len(m.actions) == 0 {
		return
	}
	m.buf = append(m.buf[:0], m.actions...)
	updated := 0
	for _, a := range m.buf {
		if _, ok := m.live[a]; !ok {
			continue
		}
		c := a.core()
		if !c.running || c.done {
			continue
		}
		a.Update(dt)
		updated++
	}
	clear(m.buf)
	m.buf = m.buf[:0]

	finished := m.sweep()
	if m.debug {
		debugLogTick(len(m.actions), updated, finished)
	}
}

// sweep drops done actions and returns how many it dropped.
func (m *Manager) sweep() int {
	n := 0
	for _, a := range m.actions {
		if a.IsDone() {
			delete(m.live, a)
			m.emit(ActionDone, a)
			continue
		}
		m.actions[n] = a
		n++
	}
	dropped := len(m.actions) - n
	clear(m.actions[n:])
	m.actions = m.actions[:n]
	return dropped
}

// Find returns the registered actions matching f.
func (m *Manager) Find(f Filter) []Action {
	var out []Action
	for _, a := range m.actions {
		if f(a) {
			out = append(out, a)
		}
	}
	return out
}

// StartWhere resumes matching actions.
func (m *Manager) StartWhere(f Filter) {
	for _, a := range m.actions {
		if f(a) {
			a.Resume()
		}
	}
}

// PauseWhere pauses matching actions.
func (m *Manager) PauseWhere(f Filter) {
	for _, a := range m.actions {
		if f(a) {
			a.Pause()
		}
	}
}

// StopWhere stops matching actions. They are dropped on the next Update.
func (m *Manager) StopWhere(f Filter) {
	for _, a := range m.actions {
		if f(a) {
			a.Stop()
		}
	}
}

// RemoveWhere unregisters matching actions immediately.
func (m *Manager) RemoveWhere(f Filter) {
	n := 0
	for _, a := range m.actions {
		if f(a) {
			delete(m.live, a)
			m.emit(ActionRemoved, a)
			continue
		}
		m.actions[n] = a
		n++
	}
	clear(m.actions[n:])
	m.actions = m.actions[:n]
}

func all(Action) bool { return true }

// StartAll resumes every action.
func (m *Manager) StartAll() { m.StartWhere(all) }

// PauseAll pauses every action.
func (m *Manager) PauseAll() { m.PauseWhere(all) }

// StopAll stops every action.
func (m *Manager) StopAll() { m.StopWhere(all) }

// Clear unregisters every action. Use it on scene teardown.
func (m *Manager) Clear() { m.RemoveWhere(all) }

// ResetAll re-stamps StartedAt on every action and its children without
// rewinding progress. Call it after the clock was reset or unpaused so no
// action measures time across the gap.
func (m *Manager) ResetAll() {
	if m.clock == nil {
		return
	}
	now := m.clock.Now()
	for _, a := range m.actions {
		restamp(a, now)
	}
}

func restamp(a Action, now float64) {
	a.core().startedAt = now
	for _, child := range a.children() {
		restamp(child, now)
	}
}

func (m *Manager) emit(t ActionEventType, a Action) {
	if m.sink == nil {
		return
	}
	m.sink.EmitEvent(ActionEvent{Type: t, Name: a.Name(), Action: a, Target: a.Target()})
}
