package orrery

// --- ID counter ---

// ideaIDCounter is a plain counter; orrery is single-threaded.
var ideaIDCounter uint32

func nextIdeaID() uint32 {
	ideaIDCounter++
	return ideaIDCounter
}

// --- Idea ---

// Idea is a node in the mind-map tree. One idea is centered at a time; its
// children form the visible orbit ring.
type Idea struct {
	ID    uint32
	Label string
	Color Color

	Parent   *Idea
	children []*Idea

	disposed bool
}

// NewIdea creates an idea with the given label and a fresh id.
func NewIdea(label string) *Idea {
	return &Idea{
		ID:    nextIdeaID(),
		Label: label,
		Color: ColorWhite,
	}
}

// AddChild appends child to this idea's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this idea (cycle).
func (n *Idea) AddChild(child *Idea) {
	if child == nil {
		panic("orrery: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("orrery: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from this idea.
// Panics if child.Parent != n.
func (n *Idea) RemoveChild(child *Idea) {
	if child.Parent != n {
		panic("orrery: child's parent is not this idea")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this idea from its parent.
// No-op if this idea has no parent.
func (n *Idea) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated
// by the caller.
func (n *Idea) Children() []*Idea {
	return n.children
}

// NumChildren returns the number of children.
func (n *Idea) NumChildren() int {
	return len(n.children)
}

// Depth returns the number of ancestors above this idea.
func (n *Idea) Depth() int {
	d := 0
	for p := n.Parent; p != nil; p = p.Parent {
		d++
	}
	return d
}

// Find returns the idea with the given id in this subtree, or nil.
func (n *Idea) Find(id uint32) *Idea {
	if n.ID == id {
		return n
	}
	for _, child := range n.children {
		if found := child.Find(id); found != nil {
			return found
		}
	}
	return nil
}

// Dispose removes this idea from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Idea) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Idea) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
}

// IsDisposed returns true if this idea has been disposed.
func (n *Idea) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Idea) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing
// child.Parent. Uses copy+nil to avoid retaining a dangling pointer in the
// backing array.
func (n *Idea) removeChildByPtr(child *Idea) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
