package sway

// Actor is the surface an action reads and writes. Actions hold actors by
// non-owning reference: the scene graph owns their lifetime, and an action
// whose actor reports IsDisposed finishes without touching it again.
type Actor interface {
	Position() Vec2
	SetPosition(p Vec2)
	Scale() Vec2
	SetScale(s Vec2)
	Angle() float64
	SetAngle(radians float64)
	Opacity() float64
	SetOpacity(alpha float64)
	IsDisposed() bool
}

// detacher is implemented by actors that can be removed from their parent.
// Used by Action.RemoveTargetWhenDone.
type detacher interface {
	RemoveFromParent()
}
