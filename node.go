package sway

// nodeIDCounter is a plain counter (no atomic: sway is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the stock Actor: a named element in a parent/child tree carrying
// the transform properties actions animate. Rendering and hit testing are
// left to the caller; Dirty reports whether an action (or anything else
// going through the setters) changed the transform since ClearDirty.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64 // radians
	Alpha    float64

	Visible bool

	// Metadata
	UserData any

	dirty    bool
	disposed bool
}

// NewNode creates a node with identity scale, full opacity, and a fresh ID.
func NewNode(name string) *Node {
	return &Node{
		ID:      nextNodeID(),
		Name:    name,
		ScaleX:  1,
		ScaleY:  1,
		Alpha:   1,
		Visible: true,
		dirty:   true,
	}
}

// --- Actor ---

// Position returns (X, Y).
func (n *Node) Position() Vec2 { return Vec2{n.X, n.Y} }

// SetPosition sets X and Y and marks the node dirty.
func (n *Node) SetPosition(p Vec2) {
	n.X, n.Y = p.X, p.Y
	n.dirty = true
}

// Scale returns (ScaleX, ScaleY).
func (n *Node) Scale() Vec2 { return Vec2{n.ScaleX, n.ScaleY} }

// SetScale sets ScaleX and ScaleY and marks the node dirty.
func (n *Node) SetScale(s Vec2) {
	n.ScaleX, n.ScaleY = s.X, s.Y
	n.dirty = true
}

// Angle returns Rotation in radians.
func (n *Node) Angle() float64 { return n.Rotation }

// SetAngle sets Rotation and marks the node dirty.
func (n *Node) SetAngle(radians float64) {
	n.Rotation = radians
	n.dirty = true
}

// Opacity returns Alpha.
func (n *Node) Opacity() float64 { return n.Alpha }

// SetOpacity sets Alpha and marks the node dirty.
func (n *Node) SetOpacity(alpha float64) {
	n.Alpha = alpha
	n.dirty = true
}

// MarkDirty flags the node's transform as changed. Call it after writing the
// exported transform fields directly.
func (n *Node) MarkDirty() { n.dirty = true }

// Dirty reports whether the transform changed since the last ClearDirty.
func (n *Node) Dirty() bool { return n.dirty }

// ClearDirty resets the dirty flag, typically once the renderer has consumed
// the new transform.
func (n *Node) ClearDirty() { n.dirty = false }

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil, disposed, or an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("sway: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("sway: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("sway: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants. Actions bound to any of them
// stop on their next update.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
