package sway

import (
	"errors"
	"math"
	"testing"
)

func TestLoopRepeatsTimes(t *testing.T) {
	node := NewNode("loop")
	l := NewLoop(MoveBy(1, Vec2{X: 10}), 3)
	var counts []int
	l.SetLoopCallback(func(n int) { counts = append(counts, n) })
	l.StartWithTarget(node)

	for i := 0; i < 5; i++ {
		l.Update(0.5)
	}
	if l.IsDone() {
		t.Fatal("loop finished early")
	}
	l.Update(0.5)
	if !l.IsDone() {
		t.Fatal("expected done after three cycles")
	}
	if node.X != 30 {
		t.Errorf("X = %v, want 30", node.X)
	}
	if l.Count() != 3 || len(counts) != 3 || counts[2] != 3 {
		t.Errorf("Count=%d callbacks=%v", l.Count(), counts)
	}
}

func TestLoopCarriesLeftoverIntoNextCycle(t *testing.T) {
	node := NewNode("carry")
	l := NewLoop(MoveBy(1, Vec2{X: 10}), 2)
	l.StartWithTarget(node)

	l.Update(0.75)
	l.Update(0.75)
	if l.Count() != 1 {
		t.Fatalf("Count = %d, want 1", l.Count())
	}
	if node.X != 15 {
		t.Errorf("X = %v, want 15", node.X)
	}
}

func TestLoopForeverNeverFinishes(t *testing.T) {
	node := NewNode("forever")
	l := Forever(NewSequence(MoveBy(0.5, Vec2{X: 1}), MoveBy(0.5, Vec2{X: -1})))
	l.StartWithTarget(node)

	for i := 0; i < 10000; i++ {
		l.Update(0.1)
	}
	if l.IsDone() {
		t.Fatal("infinite loop reported done")
	}
	if !l.IsRunning() {
		t.Error("infinite loop should keep running")
	}
	if c := l.Count(); c < 990 || c > 1001 {
		t.Errorf("Count = %d, want about 1000", c)
	}
}

func TestLoopZeroDurationDoesNotHang(t *testing.T) {
	calls := 0
	l := Forever(Call(func() { calls++ }))
	l.StartWithTarget(NewNode("spin"))
	l.Update(1)
	l.Update(1)
	if calls != 2 {
		t.Errorf("calls = %d, want one per frame", calls)
	}
}

func TestLoopTimesZero(t *testing.T) {
	calls := 0
	l := NewLoop(Call(func() { calls++ }), 0)
	l.StartWithTarget(NewNode("zero"))
	l.Update(1)
	if !l.IsDone() || calls != 0 {
		t.Errorf("done=%v calls=%d, want done without running", l.IsDone(), calls)
	}
}

func TestLoopIsRunningFollowsInner(t *testing.T) {
	inner := Delay(1)
	l := Forever(inner)
	if l.IsRunning() {
		t.Error("unbound loop should not be running")
	}
	l.StartWithTarget(NewNode("running"))
	l.Update(0.1)
	if !l.IsRunning() {
		t.Error("expected running")
	}
	l.Pause()
	if l.IsRunning() || inner.IsRunning() {
		t.Error("Pause should reach the wrapped action")
	}
	l.Resume()
	if !l.IsRunning() {
		t.Error("expected running after Resume")
	}
}

func TestLoopStop(t *testing.T) {
	node := NewNode("stop")
	l := Forever(MoveBy(1, Vec2{X: 1}))
	l.StartWithTarget(node)
	l.Update(0.5)
	l.Stop()
	l.Update(0.5)
	if !l.IsDone() || node.X != 0.5 {
		t.Errorf("done=%v X=%v, want done at 0.5", l.IsDone(), node.X)
	}
}

func TestLoopReverseAndClone(t *testing.T) {
	l := NewLoop(MoveBy(1, Vec2{X: 2}), 2)
	r, err := l.Reverse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rl := r.(*Loop)
	if rl.Times() != 2 {
		t.Errorf("Times = %d, want 2", rl.Times())
	}

	node := NewNode("rt")
	l.StartWithTarget(node)
	for !l.IsDone() {
		l.Update(0.5)
	}
	r.StartWithTarget(node)
	for !r.IsDone() {
		r.Update(0.5)
	}
	if node.X != 0 {
		t.Errorf("X = %v, want 0", node.X)
	}

	c := l.Clone().(*Loop)
	if c.Action() == l.Action() || c.Times() != 2 {
		t.Error("clone should copy times and clone the wrapped action")
	}

	captureLog(t)
	if _, err := Forever(Custom(1, nil)).Reverse(); !errors.Is(err, ErrNotReversible) {
		t.Errorf("err = %v, want ErrNotReversible", err)
	}
}

func TestLoopNonFiniteDeltaDoesNotHang(t *testing.T) {
	node := NewNode("nan")
	l := Forever(MoveBy(1, Vec2{X: 10}))
	l.StartWithTarget(node)

	l.Update(math.NaN())
	l.Update(math.Inf(1))
	l.Update(math.Inf(-1))
	if l.IsDone() || l.Count() != 0 || node.X != 0 {
		t.Fatalf("non-finite dt advanced the loop: done=%v Count=%d X=%v", l.IsDone(), l.Count(), node.X)
	}

	l.Update(0.5)
	if node.X != 5 {
		t.Errorf("X = %v, want 5", node.X)
	}
}

func TestLoopReverseKeepsCallbacks(t *testing.T) {
	cycles, done := 0, 0
	l := NewLoop(MoveBy(1, Vec2{X: 1}), 2)
	l.SetLoopCallback(func(int) { cycles++ })
	l.SetDoneCallback(func(Action) { done++ })

	r, err := l.Reverse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r.StartWithTarget(NewNode("rev"))
	r.Update(1)
	r.Update(1)
	if cycles != 2 || done != 1 {
		t.Errorf("cycles=%d done=%d, want 2 and 1", cycles, done)
	}
}
