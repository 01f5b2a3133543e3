package sway

import (
	"fmt"
	"math"
)

// completionEpsilon absorbs float drift when frame deltas are summed, so ten
// 0.1s frames finish a 1s tween.
const completionEpsilon = 1e-9

// Tween is an action that interpolates one property of its target over a
// duration. What it animates is decided by its kind, picked by the
// constructor (MoveBy, ScaleTo, FadeIn, Custom, ...).
type Tween struct {
	actionCore
	duration float64
	elapsed  float64
	ease     EaseFunc
	kind     tweenKind
}

// tweenKind is the per-property behavior of a Tween: capture start values at
// init, write the eased value, and build clones and inverses.
type tweenKind interface {
	kindName() string
	init(target Actor)
	apply(target Actor, percent float64)
	clone() tweenKind
	reverse() (tweenKind, error)
}

func newTween(duration float64, kind tweenKind) *Tween {
	t := &Tween{kind: kind}
	t.SetDuration(duration)
	return t
}

// Duration returns the tween length in seconds.
func (t *Tween) Duration() float64 { return t.duration }

// SetDuration sets the tween length. Negative values are treated as zero,
// which completes the tween on its first update.
func (t *Tween) SetDuration(d float64) {
	if d < 0 || math.IsNaN(d) {
		d = 0
	}
	t.duration = d
}

// Elapsed returns the time accumulated since the last bind or Reset.
func (t *Tween) Elapsed() float64 { return t.elapsed }

// Ease returns the easing function, Linear when none was set.
func (t *Tween) Ease() EaseFunc {
	if t.ease == nil {
		return Linear
	}
	return t.ease
}

// SetEase sets the easing function and returns t for chaining.
func (t *Tween) SetEase(fn EaseFunc) *Tween {
	t.ease = fn
	return t
}

// Kind returns the kind name, e.g. "moveBy" or "fadeTo".
func (t *Tween) Kind() string { return t.kind.kindName() }

// StartWithTarget binds t to target. See Action.
func (t *Tween) StartWithTarget(target Actor) { startWithTarget(t, target) }

// Update advances t by dt seconds. See Action.
func (t *Tween) Update(dt float64) { update(t, dt) }

// Reset rewinds t so it runs again from the target's current state.
func (t *Tween) Reset() {
	t.reset()
	t.elapsed = 0
}

func (t *Tween) init() {
	t.elapsed = 0
	t.kind.init(t.target)
}

func (t *Tween) advance(dt float64) float64 {
	t.elapsed += dt
	if t.elapsed+completionEpsilon < t.duration {
		t.kind.apply(t.target, t.Ease()(t.elapsed/t.duration))
		return 0
	}
	t.kind.apply(t.target, 1)
	t.done = true
	return math.Max(t.elapsed-t.duration, 0)
}

// Clone returns an unbound copy. -To kinds keep their absolute goal.
func (t *Tween) Clone() Action {
	c := newTween(t.duration, t.kind.clone())
	c.ease = t.ease
	t.copyOptions(&c.actionCore)
	return c
}

// Reverse returns the inverse tween. -To kinds and Custom cannot be
// reversed: the error wraps ErrNotReversible and a diagnostic is logged.
func (t *Tween) Reverse() (Action, error) {
	k, err := t.kind.reverse()
	if err != nil {
		log().Error("sway: reverse not supported", "kind", t.kind.kindName(), "name", t.name)
		return nil, fmt.Errorf("sway: reverse %s: %w", t.kind.kindName(), err)
	}
	r := newTween(t.duration, k)
	r.ease = t.ease
	t.copyOptions(&r.actionCore)
	return r, nil
}

// --- Constructors ---

// MoveBy moves the target by delta over duration seconds.
func MoveBy(duration float64, delta Vec2) *Tween {
	return newTween(duration, &moveKind{delta: delta})
}

// MoveTo moves the target to dest. The displacement is measured when the
// tween first updates.
func MoveTo(duration float64, dest Vec2) *Tween {
	return newTween(duration, &moveKind{goal: dest, absolute: true})
}

// JumpBy moves the target by delta while hopping jumps times, each hop
// peaking height units above the straight path (towards -Y). Negative jump
// counts are treated as zero, a plain move.
func JumpBy(duration float64, delta Vec2, height float64, jumps int) *Tween {
	return newTween(duration, &jumpKind{moveKind: moveKind{delta: delta}, height: height, jumps: max(jumps, 0)})
}

// JumpTo is JumpBy towards an absolute destination.
func JumpTo(duration float64, dest Vec2, height float64, jumps int) *Tween {
	return newTween(duration, &jumpKind{moveKind: moveKind{goal: dest, absolute: true}, height: height, jumps: max(jumps, 0)})
}

// ScaleBy adds (dx, dy) to the target's scale.
func ScaleBy(duration, dx, dy float64) *Tween {
	return newTween(duration, &scaleKind{delta: Vec2{dx, dy}})
}

// ScaleTo scales the target to (sx, sy).
func ScaleTo(duration, sx, sy float64) *Tween {
	return newTween(duration, &scaleKind{goal: Vec2{sx, sy}, absolute: true})
}

// RotateBy rotates the target by radians.
func RotateBy(duration, radians float64) *Tween {
	return newTween(duration, &scalarKind{prop: propAngle, delta: radians})
}

// RotateTo rotates the target to an absolute angle in radians.
func RotateTo(duration, radians float64) *Tween {
	return newTween(duration, &scalarKind{prop: propAngle, goal: radians, absolute: true})
}

// FadeBy adds delta to the target's opacity.
func FadeBy(duration, delta float64) *Tween {
	return newTween(duration, &scalarKind{prop: propOpacity, delta: delta})
}

// FadeTo fades the target to an absolute opacity.
func FadeTo(duration, opacity float64) *Tween {
	return newTween(duration, &scalarKind{prop: propOpacity, goal: opacity, absolute: true})
}

// FadeIn fades the target to full opacity.
func FadeIn(duration float64) *Tween { return FadeTo(duration, 1) }

// FadeOut fades the target to zero opacity.
func FadeOut(duration float64) *Tween { return FadeTo(duration, 0) }

// Custom calls fn every update with the eased progress in [0, 1]. It carries
// no value of its own and cannot be reversed.
func Custom(duration float64, fn func(target Actor, percent float64)) *Tween {
	return newTween(duration, &customKind{fn: fn})
}

// Delay does nothing for duration seconds. Useful inside a Sequence.
func Delay(duration float64) *Tween {
	return newTween(duration, delayKind{})
}

// Call runs fn once when it starts and finishes in the same update.
func Call(fn func()) *Tween {
	return newTween(0, &callKind{fn: fn})
}

// --- Kinds ---

// moveKind tracks the last position it wrote so that movement applied to the
// target by someone else between frames is folded into its start point
// instead of being overwritten.
type moveKind struct {
	delta    Vec2
	goal     Vec2
	absolute bool
	start    Vec2
	prev     Vec2
}

func (k *moveKind) kindName() string {
	if k.absolute {
		return "moveTo"
	}
	return "moveBy"
}

func (k *moveKind) init(target Actor) {
	k.start = target.Position()
	k.prev = k.start
	if k.absolute {
		k.delta = k.goal.Sub(k.start)
	}
}

func (k *moveKind) apply(target Actor, percent float64) {
	k.step(target, k.delta.Mul(percent))
}

// step moves the target to start+offset after absorbing external movement.
func (k *moveKind) step(target Actor, offset Vec2) {
	k.start = k.start.Add(target.Position().Sub(k.prev))
	next := k.start.Add(offset)
	target.SetPosition(next)
	k.prev = next
}

func (k *moveKind) clone() tweenKind {
	return &moveKind{delta: k.delta, goal: k.goal, absolute: k.absolute}
}

func (k *moveKind) reverse() (tweenKind, error) {
	if k.absolute {
		return nil, ErrNotReversible
	}
	return &moveKind{delta: k.delta.Mul(-1)}, nil
}

type jumpKind struct {
	moveKind
	height float64
	jumps  int
}

func (k *jumpKind) kindName() string {
	if k.absolute {
		return "jumpTo"
	}
	return "jumpBy"
}

func (k *jumpKind) apply(target Actor, percent float64) {
	frac := math.Mod(percent*float64(k.jumps), 1)
	hop := k.height * 4 * frac * (1 - frac)
	offset := k.delta.Mul(percent)
	offset.Y -= hop
	k.step(target, offset)
}

func (k *jumpKind) clone() tweenKind {
	return &jumpKind{
		moveKind: moveKind{delta: k.delta, goal: k.goal, absolute: k.absolute},
		height:   k.height,
		jumps:    k.jumps,
	}
}

func (k *jumpKind) reverse() (tweenKind, error) {
	if k.absolute {
		return nil, ErrNotReversible
	}
	return &jumpKind{moveKind: moveKind{delta: k.delta.Mul(-1)}, height: k.height, jumps: k.jumps}, nil
}

type scaleKind struct {
	delta    Vec2
	goal     Vec2
	absolute bool
	start    Vec2
}

func (k *scaleKind) kindName() string {
	if k.absolute {
		return "scaleTo"
	}
	return "scaleBy"
}

func (k *scaleKind) init(target Actor) {
	k.start = target.Scale()
	if k.absolute {
		k.delta = k.goal.Sub(k.start)
	}
}

func (k *scaleKind) apply(target Actor, percent float64) {
	target.SetScale(k.start.Add(k.delta.Mul(percent)))
}

func (k *scaleKind) clone() tweenKind {
	return &scaleKind{delta: k.delta, goal: k.goal, absolute: k.absolute}
}

func (k *scaleKind) reverse() (tweenKind, error) {
	if k.absolute {
		return nil, ErrNotReversible
	}
	return &scaleKind{delta: k.delta.Mul(-1)}, nil
}

// scalarProp selects the single-value property a scalarKind animates.
type scalarProp uint8

const (
	propAngle   scalarProp = iota // Actor.Angle / SetAngle
	propOpacity                   // Actor.Opacity / SetOpacity
)

// scalarKind animates rotation or opacity; the two only differ in the
// accessor pair they use.
type scalarKind struct {
	prop     scalarProp
	delta    float64
	goal     float64
	absolute bool
	start    float64
}

func (k *scalarKind) kindName() string {
	switch {
	case k.prop == propAngle && k.absolute:
		return "rotateTo"
	case k.prop == propAngle:
		return "rotateBy"
	case k.absolute:
		return "fadeTo"
	default:
		return "fadeBy"
	}
}

func (k *scalarKind) get(target Actor) float64 {
	if k.prop == propAngle {
		return target.Angle()
	}
	return target.Opacity()
}

func (k *scalarKind) set(target Actor, v float64) {
	if k.prop == propAngle {
		target.SetAngle(v)
		return
	}
	target.SetOpacity(v)
}

func (k *scalarKind) init(target Actor) {
	k.start = k.get(target)
	if k.absolute {
		k.delta = k.goal - k.start
	}
}

func (k *scalarKind) apply(target Actor, percent float64) {
	k.set(target, k.start+k.delta*percent)
}

func (k *scalarKind) clone() tweenKind {
	return &scalarKind{prop: k.prop, delta: k.delta, goal: k.goal, absolute: k.absolute}
}

func (k *scalarKind) reverse() (tweenKind, error) {
	if k.absolute {
		return nil, ErrNotReversible
	}
	return &scalarKind{prop: k.prop, delta: -k.delta}, nil
}

type customKind struct {
	fn func(target Actor, percent float64)
}

func (k *customKind) kindName() string { return "custom" }

func (k *customKind) init(Actor) {}

func (k *customKind) apply(target Actor, percent float64) {
	if k.fn != nil {
		k.fn(target, percent)
	}
}

func (k *customKind) clone() tweenKind { return &customKind{fn: k.fn} }

func (k *customKind) reverse() (tweenKind, error) { return nil, ErrNotReversible }

type delayKind struct{}

func (delayKind) kindName() string { return "delay" }

func (delayKind) init(Actor) {}

func (delayKind) apply(Actor, float64) {}

func (delayKind) clone() tweenKind { return delayKind{} }

func (delayKind) reverse() (tweenKind, error) { return delayKind{}, nil }

type callKind struct {
	fn func()
}

func (k *callKind) kindName() string { return "call" }

func (k *callKind) init(Actor) {
	if k.fn != nil {
		k.fn()
	}
}

func (k *callKind) apply(Actor, float64) {}

func (k *callKind) clone() tweenKind { return &callKind{fn: k.fn} }

func (k *callKind) reverse() (tweenKind, error) { return &callKind{fn: k.fn}, nil }
