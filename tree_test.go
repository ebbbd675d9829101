package orrery

import "testing"

// --- Tree structure tests ---

func TestNewIdeaAssignsUniqueIDs(t *testing.T) {
	a := NewIdea("a")
	b := NewIdea("b")
	if a.ID == b.ID {
		t.Errorf("two ideas share id %d", a.ID)
	}
	if a.ID == 0 || b.ID == 0 {
		t.Error("live idea has zero id")
	}
}

func TestAddChild(t *testing.T) {
	root := NewIdea("root")
	child := NewIdea("child")
	root.AddChild(child)

	if child.Parent != root {
		t.Error("child.Parent not set")
	}
	if root.NumChildren() != 1 || root.Children()[0] != child {
		t.Error("child not in root's children")
	}
}

func TestAddChildReparents(t *testing.T) {
	a := NewIdea("a")
	b := NewIdea("b")
	child := NewIdea("child")

	a.AddChild(child)
	b.AddChild(child)

	if child.Parent != b {
		t.Error("child.Parent not updated on reparent")
	}
	if a.NumChildren() != 0 {
		t.Errorf("old parent still has %d children", a.NumChildren())
	}
}

func TestAddChildPanics(t *testing.T) {
	t.Run("nil child", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("AddChild(nil) did not panic")
			}
		}()
		NewIdea("root").AddChild(nil)
	})

	t.Run("cycle", func(t *testing.T) {
		root := NewIdea("root")
		child := NewIdea("child")
		root.AddChild(child)
		defer func() {
			if recover() == nil {
				t.Error("cycle-creating AddChild did not panic")
			}
		}()
		child.AddChild(root)
	})

	t.Run("self", func(t *testing.T) {
		n := NewIdea("n")
		defer func() {
			if recover() == nil {
				t.Error("AddChild(self) did not panic")
			}
		}()
		n.AddChild(n)
	})
}

func TestRemoveChild(t *testing.T) {
	root := NewIdea("root")
	a := NewIdea("a")
	b := NewIdea("b")
	root.AddChild(a)
	root.AddChild(b)

	root.RemoveChild(a)

	if a.Parent != nil {
		t.Error("removed child still has a parent")
	}
	if root.NumChildren() != 1 || root.Children()[0] != b {
		t.Error("remaining children wrong after removal")
	}
}

func TestRemoveFromParent(t *testing.T) {
	root := NewIdea("root")
	child := NewIdea("child")
	root.AddChild(child)

	child.RemoveFromParent()
	if child.Parent != nil || root.NumChildren() != 0 {
		t.Error("RemoveFromParent did not detach the child")
	}

	// No-op on an orphan.
	child.RemoveFromParent()
}

func TestDepth(t *testing.T) {
	root := NewIdea("root")
	mid := NewIdea("mid")
	leaf := NewIdea("leaf")
	root.AddChild(mid)
	mid.AddChild(leaf)

	for i, tc := range []struct {
		n    *Idea
		want int
	}{{root, 0}, {mid, 1}, {leaf, 2}} {
		if got := tc.n.Depth(); got != tc.want {
			t.Errorf("case %d: Depth() = %d, want %d", i, got, tc.want)
		}
	}
}

func TestFind(t *testing.T) {
	root := NewIdea("root")
	mid := NewIdea("mid")
	leaf := NewIdea("leaf")
	root.AddChild(mid)
	mid.AddChild(leaf)

	if got := root.Find(leaf.ID); got != leaf {
		t.Errorf("Find(leaf) = %v, want the leaf", got)
	}
	if got := root.Find(root.ID); got != root {
		t.Error("Find(root id) did not return the root")
	}
	if got := root.Find(999999); got != nil {
		t.Errorf("Find(unknown) = %v, want nil", got)
	}
	// Search is scoped to the receiver's subtree.
	if got := mid.Find(root.ID); got != nil {
		t.Errorf("child-scoped Find found an ancestor: %v", got)
	}
}

func TestDispose(t *testing.T) {
	root := NewIdea("root")
	mid := NewIdea("mid")
	leaf := NewIdea("leaf")
	root.AddChild(mid)
	mid.AddChild(leaf)

	mid.Dispose()

	if root.NumChildren() != 0 {
		t.Error("disposed subtree still attached to root")
	}
	if !mid.IsDisposed() || !leaf.IsDisposed() {
		t.Error("dispose did not cascade to descendants")
	}
	if leaf.Parent != nil || mid.NumChildren() != 0 {
		t.Error("disposed nodes retain links")
	}

	// Double dispose is a no-op.
	mid.Dispose()
}
