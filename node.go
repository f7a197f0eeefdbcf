package willowkit

// HitShape is a collider region in a node's local coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// nodeIDCounter is a plain counter (not atomic; willowkit is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the scene graph element every helper in this package operates on.
// A single flat struct is used for all node types.
type Node struct {
	// Identity
	ID   uint32
	Name string
	// Tag groups nodes for raycast filtering and lookups.
	Tag  string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local). X and Y are the anchored position: where the pivot
	// sits in the parent's local space.
	X, Y         float64
	ScaleX       float64
	ScaleY       float64
	Rotation     float64
	SkewX, SkewY float64
	PivotX       float64
	PivotY       float64

	// Width and Height override the derived size when non-zero.
	Width, Height float64

	// Visibility & interaction
	Alpha        float64
	Visible      bool
	Interactable bool

	// Ordering
	ZIndex int

	// Metadata
	UserData any

	// Sprite fields (NodeTypeSprite)
	TextureRegion TextureRegion
	Color         Color

	// Hit testing / raycast collider
	HitShape HitShape

	// Internal
	disposed       bool
	childrenSorted bool
	sortedChildren []*Node // reused buffer for ZIndex-sorted traversal order
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Alpha = 1
	n.Color = ColorWhite
	n.Visible = true
	n.childrenSorted = true
}

// NewContainer creates a container node with no size of its own.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewSprite creates a sprite node sized by the given texture region.
func NewSprite(name string, region TextureRegion) *Node {
	n := &Node{Name: name, Type: NodeTypeSprite, TextureRegion: region}
	nodeDefaults(n)
	return n
}

// NewPanel creates an interactable UI rectangle of the given size with a
// matching HitRect collider.
func NewPanel(name string, w, h float64) *Node {
	n := &Node{
		Name:         name,
		Type:         NodeTypePanel,
		Width:        w,
		Height:       h,
		Interactable: true,
		HitShape:     HitRect{Width: w, Height: h},
	}
	nodeDefaults(n)
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("willowkit: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("willowkit: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	n.childrenSorted = false
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("willowkit: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("willowkit: adding child would create a cycle")
	}
	if index < 0 || index > len(n.children) {
		panic("willowkit: child index out of range")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	n.childrenSorted = false
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("willowkit: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	n.childrenSorted = false
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
// Children are NOT disposed.
func (n *Node) RemoveChildren() {
	for _, child := range n.children {
		child.Parent = nil
	}
	n.children = n.children[:0]
	n.childrenSorted = true
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// SetZIndex sets the node's ZIndex and marks the parent's children as unsorted.
func (n *Node) SetZIndex(z int) {
	if n.ZIndex == z {
		return
	}
	n.ZIndex = z
	if n.Parent != nil {
		n.Parent.childrenSorted = false
	}
}

// FindWithTag returns the first node in this subtree (depth-first, including
// n itself) whose Tag equals tag, or nil.
func (n *Node) FindWithTag(tag string) *Node {
	if n.Tag == tag {
		return n
	}
	for _, child := range n.children {
		if found := child.FindWithTag(tag); found != nil {
			return found
		}
	}
	return nil
}

// FindAllWithTag appends every node in this subtree whose Tag equals tag to
// buf and returns the extended slice.
func (n *Node) FindAllWithTag(tag string, buf []*Node) []*Node {
	if n.Tag == tag {
		buf = append(buf, n)
	}
	for _, child := range n.children {
		buf = child.FindAllWithTag(tag, buf)
	}
	return buf
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
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
	n.sortedChildren = nil
	n.Parent = nil
	n.HitShape = nil
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
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

// paintOrder returns the children in ZIndex order, rebuilding the cached
// order when needed. Uses a stable insertion sort: children are few and
// usually already sorted.
func (n *Node) paintOrder() []*Node {
	if n.childrenSorted && n.sortedChildren == nil {
		return n.children
	}
	if !n.childrenSorted || len(n.sortedChildren) != len(n.children) {
		nc := len(n.children)
		if cap(n.sortedChildren) < nc {
			n.sortedChildren = make([]*Node, nc)
		}
		n.sortedChildren = n.sortedChildren[:nc]
		copy(n.sortedChildren, n.children)
		for i := 1; i < nc; i++ {
			key := n.sortedChildren[i]
			j := i - 1
			for j >= 0 && n.sortedChildren[j].ZIndex > key.ZIndex {
				n.sortedChildren[j+1] = n.sortedChildren[j]
				j--
			}
			n.sortedChildren[j+1] = key
		}
		n.childrenSorted = true
	}
	return n.sortedChildren
}
