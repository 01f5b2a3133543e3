package sway

import "testing"

// --- Constructor defaults ---

func TestNewNodeDefaults(t *testing.T) {
	n := NewNode("test")
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if n.Name != "test" {
		t.Errorf("Name = %q, want %q", n.Name, "test")
	}
	if n.ScaleX != 1 || n.ScaleY != 1 {
		t.Errorf("Scale = (%v, %v), want (1, 1)", n.ScaleX, n.ScaleY)
	}
	if n.Alpha != 1 {
		t.Errorf("Alpha = %v, want 1", n.Alpha)
	}
	if !n.Visible {
		t.Error("Visible should be true")
	}
	if !n.Dirty() {
		t.Error("new node should start dirty")
	}
	if n.Parent != nil || n.NumChildren() != 0 {
		t.Error("new node should have no parent and no children")
	}
}

func TestUniqueIDs(t *testing.T) {
	seen := make(map[uint32]bool)
	for i := 0; i < 100; i++ {
		n := NewNode("n")
		if seen[n.ID] {
			t.Fatalf("duplicate ID %d", n.ID)
		}
		seen[n.ID] = true
	}
}

// --- Actor ---

func TestNodeActorAccessors(t *testing.T) {
	n := NewNode("actor")
	var a Actor = n

	a.SetPosition(Vec2{3, 4})
	a.SetScale(Vec2{2, 0.5})
	a.SetAngle(1.25)
	a.SetOpacity(0.3)

	if a.Position() != (Vec2{3, 4}) || n.X != 3 || n.Y != 4 {
		t.Errorf("Position = %v", a.Position())
	}
	if a.Scale() != (Vec2{2, 0.5}) {
		t.Errorf("Scale = %v", a.Scale())
	}
	if a.Angle() != 1.25 || n.Rotation != 1.25 {
		t.Errorf("Angle = %v", a.Angle())
	}
	if a.Opacity() != 0.3 || n.Alpha != 0.3 {
		t.Errorf("Opacity = %v", a.Opacity())
	}
}

func TestSettersMarkDirty(t *testing.T) {
	setters := map[string]func(n *Node){
		"position": func(n *Node) { n.SetPosition(Vec2{1, 1}) },
		"scale":    func(n *Node) { n.SetScale(Vec2{2, 2}) },
		"angle":    func(n *Node) { n.SetAngle(1) },
		"opacity":  func(n *Node) { n.SetOpacity(0.5) },
		"mark":     func(n *Node) { n.MarkDirty() },
	}
	for name, set := range setters {
		n := NewNode(name)
		n.ClearDirty()
		set(n)
		if !n.Dirty() {
			t.Errorf("%s: node not dirty", name)
		}
	}
}

// --- Tree manipulation ---

func TestAddChildBasic(t *testing.T) {
	parent := NewNode("parent")
	child := NewNode("child")
	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("child.Parent should be parent")
	}
	if parent.NumChildren() != 1 || parent.Children()[0] != child {
		t.Error("parent should contain child")
	}
}

func TestAddChildReparent(t *testing.T) {
	p1 := NewNode("p1")
	p2 := NewNode("p2")
	child := NewNode("child")

	p1.AddChild(child)
	p2.AddChild(child)

	if child.Parent != p2 {
		t.Error("child.Parent should be p2")
	}
	if p1.NumChildren() != 0 {
		t.Errorf("p1 children = %d, want 0", p1.NumChildren())
	}
	if p2.NumChildren() != 1 {
		t.Errorf("p2 children = %d, want 1", p2.NumChildren())
	}
}

func TestAddChildPanics(t *testing.T) {
	root := NewNode("root")
	mid := NewNode("mid")
	leaf := NewNode("leaf")
	root.AddChild(mid)
	mid.AddChild(leaf)

	cases := map[string]func(){
		"nil":   func() { root.AddChild(nil) },
		"self":  func() { root.AddChild(root) },
		"cycle": func() { leaf.AddChild(root) },
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			fn()
		})
	}
}

func TestRemoveChild(t *testing.T) {
	parent := NewNode("parent")
	a := NewNode("a")
	b := NewNode("b")
	c := NewNode("c")
	parent.AddChild(a)
	parent.AddChild(b)
	parent.AddChild(c)

	parent.RemoveChild(b)
	if b.Parent != nil {
		t.Error("removed child should have nil parent")
	}
	kids := parent.Children()
	if len(kids) != 2 || kids[0] != a || kids[1] != c {
		t.Errorf("children after remove = %v", kids)
	}
}

func TestRemoveChildWrongParentPanic(t *testing.T) {
	p1 := NewNode("p1")
	p2 := NewNode("p2")
	child := NewNode("child")
	p1.AddChild(child)

	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	p2.RemoveChild(child)
}

func TestRemoveFromParent(t *testing.T) {
	parent := NewNode("parent")
	child := NewNode("child")
	parent.AddChild(child)

	child.RemoveFromParent()
	if child.Parent != nil || parent.NumChildren() != 0 {
		t.Error("child should be detached")
	}
	// No-op without a parent.
	child.RemoveFromParent()
}

// --- Disposal ---

func TestDispose(t *testing.T) {
	root := NewNode("root")
	parent := NewNode("parent")
	child := NewNode("child")
	root.AddChild(parent)
	parent.AddChild(child)
	parent.UserData = "data"

	parent.Dispose()

	if !parent.IsDisposed() || !child.IsDisposed() {
		t.Error("dispose should be recursive")
	}
	if root.NumChildren() != 0 {
		t.Error("disposed node should be removed from its parent")
	}
	if parent.ID != 0 || parent.UserData != nil {
		t.Error("disposed node should drop ID and user data")
	}
	if root.IsDisposed() {
		t.Error("root should not be disposed")
	}
}

func TestDisposeIdempotent(t *testing.T) {
	n := NewNode("n")
	n.Dispose()
	n.Dispose()
	if !n.IsDisposed() {
		t.Error("expected disposed")
	}
}
