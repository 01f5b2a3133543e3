package sway

import "github.com/hajimehoshi/ebiten/v2"

// Stage is the per-frame driver: it owns the node tree root, the clock and
// the action manager. Call Update once per frame, or hand the stage to Run.
type Stage struct {
	root    *Node
	clock   Ticker
	actions *Manager
	paused  bool

	// ClearColor fills the screen before DrawFunc runs under Run.
	ClearColor Color

	updateFn func() error
	drawFn   func(screen *ebiten.Image)
}

// NewStage creates a stage driven by clock. A nil clock uses a TPSClock.
func NewStage(clock Ticker) *Stage {
	if clock == nil {
		clock = NewTPSClock()
	}
	return &Stage{
		root:       NewNode("root"),
		clock:      clock,
		actions:    NewManager(clock),
		ClearColor: ColorBlack,
	}
}

// Root returns the stage's root node.
func (s *Stage) Root() *Node { return s.root }

// Clock returns the stage's clock.
func (s *Stage) Clock() Ticker { return s.clock }

// Actions returns the stage's action manager.
func (s *Stage) Actions() *Manager { return s.actions }

// RunAction binds a to target and registers it with the stage's manager.
func (s *Stage) RunAction(target Actor, a Action) Action {
	return s.actions.Add(a, target)
}

// SetUpdateFunc sets a hook called at the end of every unpaused Update.
func (s *Stage) SetUpdateFunc(fn func() error) { s.updateFn = fn }

// SetDrawFunc sets the draw hook used by Run. Rendering nodes is up to the
// caller.
func (s *Stage) SetDrawFunc(fn func(screen *ebiten.Image)) { s.drawFn = fn }

// SetDebugMode enables disposed-node panics in tree operations and manager
// debug logging.
func (s *Stage) SetDebugMode(enabled bool) {
	globalDebug = enabled
	s.actions.SetDebugMode(enabled)
}

// Update ticks the clock and advances every action by the clock's delta.
// Does nothing while paused.
func (s *Stage) Update() error {
	if s.paused {
		return nil
	}
	s.clock.Tick()
	s.actions.Update(s.clock.DeltaTime())
	if s.updateFn != nil {
		return s.updateFn()
	}
	return nil
}

// Pause freezes the stage. Actions keep their progress.
func (s *Stage) Pause() { s.paused = true }

// Resume unfreezes the stage, dropping the clock's pending delta and
// re-stamping every action so the paused span is not replayed.
func (s *Stage) Resume() {
	if !s.paused {
		return
	}
	s.paused = false
	s.clock.Reset()
	s.actions.ResetAll()
}

// IsPaused reports whether the stage is paused.
func (s *Stage) IsPaused() bool { return s.paused }

// Close unregisters every action and disposes the node tree.
func (s *Stage) Close() {
	s.actions.Clear()
	s.root.Dispose()
}
