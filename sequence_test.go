package sway

import (
	"errors"
	"math"
	"testing"
)

func TestSequenceRunsInOrder(t *testing.T) {
	node := NewNode("seq")
	s := NewSequence(MoveBy(1, Vec2{X: 10}), MoveBy(1, Vec2{Y: 10}))
	s.StartWithTarget(node)

	for i := 0; i < 3; i++ {
		s.Update(0.5)
	}
	if s.IsDone() {
		t.Fatal("sequence finished early")
	}
	if s.Index() != 1 {
		t.Errorf("Index = %d, want 1", s.Index())
	}
	if node.X != 10 || math.Abs(node.Y-5) > 1e-9 {
		t.Errorf("after 1.5s = (%v, %v), want (10, 5)", node.X, node.Y)
	}

	s.Update(0.5)
	if !s.IsDone() {
		t.Fatal("expected done after 2s")
	}
	if s.Index() != 2 {
		t.Errorf("Index = %d, want 2", s.Index())
	}
	if node.X != 10 || node.Y != 10 {
		t.Errorf("end = (%v, %v), want (10, 10)", node.X, node.Y)
	}
}

func TestSequenceCarriesLeftoverTime(t *testing.T) {
	node := NewNode("leftover")
	calls := 0
	s := NewSequence(Call(func() { calls++ }), MoveBy(1, Vec2{X: 10}))
	s.StartWithTarget(node)

	s.Update(0.5)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if math.Abs(node.X-5) > 1e-9 {
		t.Errorf("X = %v, want 5: the instant step should not cost a frame", node.X)
	}

	// Overshooting the first child starts the second with the remainder.
	node2 := NewNode("overshoot")
	s2 := NewSequence(MoveBy(0.5, Vec2{X: 10}), MoveBy(1, Vec2{Y: 10}))
	s2.StartWithTarget(node2)
	s2.Update(0.75)
	if node2.X != 10 || math.Abs(node2.Y-2.5) > 1e-9 {
		t.Errorf("after 0.75s = (%v, %v), want (10, 2.5)", node2.X, node2.Y)
	}
}

func TestSequenceAllInstant(t *testing.T) {
	node := NewNode("instant")
	order := ""
	s := NewSequence(
		Call(func() { order += "a" }),
		Call(func() { order += "b" }),
		Call(func() { order += "c" }),
	)
	s.StartWithTarget(node)
	s.Update(0)
	if !s.IsDone() || order != "abc" {
		t.Errorf("done=%v order=%q, want done and \"abc\"", s.IsDone(), order)
	}
}

func TestEmptySequenceFinishes(t *testing.T) {
	s := NewSequence()
	s.StartWithTarget(NewNode("empty"))
	s.Update(0)
	if !s.IsDone() {
		t.Error("empty sequence should finish on first update")
	}
}

func TestSequenceNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewSequence(Delay(1), nil)
}

func TestSequenceReverse(t *testing.T) {
	s := NewSequence(MoveBy(1, Vec2{X: 10}), FadeBy(1, -0.5))
	s.SetName("walk")

	r, err := s.Reverse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rs := r.(*Sequence)
	if rs.Name() != "walk" {
		t.Errorf("Name = %q, want walk", rs.Name())
	}
	if k := rs.Actions()[0].(*Tween).Kind(); k != "fadeBy" {
		t.Errorf("first reversed child = %s, want fadeBy", k)
	}
	if k := rs.Actions()[1].(*Tween).Kind(); k != "moveBy" {
		t.Errorf("second reversed child = %s, want moveBy", k)
	}

	node := NewNode("rt")
	s.StartWithTarget(node)
	for !s.IsDone() {
		s.Update(0.25)
	}
	r.StartWithTarget(node)
	for !r.IsDone() {
		r.Update(0.25)
	}
	if node.X != 0 || node.Alpha != 1 {
		t.Errorf("after round trip X=%v Alpha=%v, want 0 and 1", node.X, node.Alpha)
	}
}

func TestSequenceReverseFailsAsWhole(t *testing.T) {
	captureLog(t)
	s := NewSequence(MoveBy(1, Vec2{X: 1}), FadeTo(1, 0))
	r, err := s.Reverse()
	if r != nil || !errors.Is(err, ErrNotReversible) {
		t.Errorf("Reverse = %v, %v; want nil, ErrNotReversible", r, err)
	}
}

func TestSequenceCloneIsIndependent(t *testing.T) {
	s := NewSequence(MoveBy(1, Vec2{X: 10}), RotateBy(1, 2))
	c := s.Clone().(*Sequence)
	if c.Actions()[0] == s.Actions()[0] {
		t.Fatal("clone should not share children")
	}

	n1 := NewNode("n1")
	n2 := NewNode("n2")
	s.StartWithTarget(n1)
	c.StartWithTarget(n2)
	s.Update(2)
	if n2.X != 0 {
		t.Error("updating the original moved the clone's target")
	}
	c.Update(1)
	if n2.X != 10 || n2.Rotation != 0 {
		t.Errorf("clone after 1s: X=%v Rotation=%v", n2.X, n2.Rotation)
	}
}

func TestSequenceResetReplays(t *testing.T) {
	node := NewNode("reset")
	s := NewSequence(MoveBy(1, Vec2{X: 10}), MoveBy(1, Vec2{X: -5}))
	s.StartWithTarget(node)
	s.Update(1)
	s.Update(1)
	if !s.IsDone() || node.X != 5 {
		t.Fatalf("first run: done=%v X=%v", s.IsDone(), node.X)
	}

	s.Reset()
	if s.IsDone() || s.Index() != 0 {
		t.Fatal("Reset should rewind the sequence")
	}
	s.Update(1)
	s.Update(1)
	if node.X != 10 {
		t.Errorf("second run X = %v, want 10", node.X)
	}
}

func TestSequenceChildrenShareTarget(t *testing.T) {
	node := NewNode("shared")
	a := Delay(0.1)
	b := Delay(0.1)
	s := NewSequence(a, b)
	s.StartWithTarget(node)
	s.Update(0.1)
	if a.Target() != node || b.Target() != node {
		t.Error("children should be bound to the sequence target")
	}
}

func TestSequenceNonFiniteDelta(t *testing.T) {
	node := NewNode("nan")
	s := NewSequence(MoveBy(1, Vec2{X: 10}), MoveBy(1, Vec2{X: 10}))
	s.StartWithTarget(node)
	s.Update(math.NaN())
	if s.IsDone() || s.Index() != 0 || node.X != 0 {
		t.Errorf("NaN dt advanced the sequence: done=%v Index=%d X=%v", s.IsDone(), s.Index(), node.X)
	}
}

func TestSequenceReverseKeepsCompletionOptions(t *testing.T) {
	parent := NewNode("parent")
	child := NewNode("child")
	parent.AddChild(child)

	done := 0
	s := NewSequence(MoveBy(0.5, Vec2{X: 1}), FadeBy(0.5, -0.5))
	s.SetDoneCallback(func(Action) { done++ })
	s.RemoveTargetWhenDone()

	r, err := s.Reverse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r.StartWithTarget(child)
	r.Update(1)
	if !r.IsDone() || done != 1 || child.Parent != nil {
		t.Errorf("done=%v callbacks=%d parent=%v", r.IsDone(), done, child.Parent)
	}
}
