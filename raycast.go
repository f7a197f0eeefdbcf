package willowkit

// RaycastHit describes one collider under a screen point.
type RaycastHit struct {
	Node *Node
	// Point is the hit position in world space.
	Point Vec2
	// LocalPoint is the hit position in the node's local space.
	LocalPoint Vec2
}

// collectColliders walks the tree in painter order (DFS, ZIndex-sorted),
// appending visible nodes that carry a HitShape to buf. Invisible subtrees
// are skipped.
func collectColliders(n *Node, buf []*Node) []*Node {
	if !n.Visible || n.disposed {
		return buf
	}
	if n.HitShape != nil {
		buf = append(buf, n)
	}
	for _, child := range n.paintOrder() {
		buf = collectColliders(child, buf)
	}
	return buf
}

// RaycastAll casts a ray from the screen point through p into the scene
// under root and returns every collider it intersects, topmost first. When
// tag is non-empty only colliders whose Tag equals tag are returned. In 2D
// the ray reduces to a point query at the projected world position.
func RaycastAll(root *Node, p ScreenProjector, screen Vec2, tag string) []RaycastHit {
	if root == nil {
		return nil
	}
	world := ScreenToWorldPoint(p, screen)
	colliders := collectColliders(root, nil)

	var hits []RaycastHit
	// Reverse painter order: topmost visual node first.
	for i := len(colliders) - 1; i >= 0; i-- {
		n := colliders[i]
		if tag != "" && n.Tag != tag {
			continue
		}
		lx, ly := n.WorldToLocal(world.X, world.Y)
		if n.HitShape.Contains(lx, ly) {
			hits = append(hits, RaycastHit{Node: n, Point: world, LocalPoint: Vec2{lx, ly}})
		}
	}
	return hits
}

// Raycast returns the topmost collider under the screen point, filtered by
// tag when tag is non-empty. ok is false when nothing was hit.
func Raycast(root *Node, p ScreenProjector, screen Vec2, tag string) (hit RaycastHit, ok bool) {
	return topmost(RaycastAll(root, p, screen, tag))
}

// topmost returns the first hit of a RaycastAll result.
func topmost(hits []RaycastHit) (RaycastHit, bool) {
	if len(hits) == 0 {
		return RaycastHit{}, false
	}
	return hits[0], true
}
