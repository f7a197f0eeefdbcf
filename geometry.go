package willowkit

// ScreenProjector maps between screen and world coordinates. *Camera
// implements it. Helpers accept a nil ScreenProjector and treat screen space
// as world space, which is what screen-space UI overlays want.
type ScreenProjector interface {
	ScreenToWorld(sx, sy float64) (wx, wy float64)
	WorldToScreen(wx, wy float64) (sx, sy float64)
}

// RectTransform is a rectangle in a parent-relative anchored coordinate
// system with a pivot. *Node implements it.
type RectTransform interface {
	// Size is the local width and height.
	Size() Vec2
	// Pivot is the pivot point in local pixel coordinates.
	Pivot() Vec2
	// AnchoredPosition is the pivot's position in the parent's local space.
	AnchoredPosition() Vec2
	LocalToWorld(lx, ly float64) (wx, wy float64)
	WorldToLocal(wx, wy float64) (lx, ly float64)
}

// ScreenToWorldPoint projects a screen point into world space.
func ScreenToWorldPoint(p ScreenProjector, screen Vec2) Vec2 {
	if p == nil {
		return screen
	}
	wx, wy := p.ScreenToWorld(screen.X, screen.Y)
	return Vec2{wx, wy}
}

// WorldToScreenPoint projects a world point onto the screen.
func WorldToScreenPoint(p ScreenProjector, world Vec2) Vec2 {
	if p == nil {
		return world
	}
	sx, sy := p.WorldToScreen(world.X, world.Y)
	return Vec2{sx, sy}
}

// WorldCorners returns the rectangle's four corners in world space, in the
// order top-left, top-right, bottom-right, bottom-left.
func WorldCorners(rt RectTransform) [4]Vec2 {
	size := rt.Size()
	var out [4]Vec2
	for i, l := range [4]Vec2{{0, 0}, {size.X, 0}, {size.X, size.Y}, {0, size.Y}} {
		wx, wy := rt.LocalToWorld(l.X, l.Y)
		out[i] = Vec2{wx, wy}
	}
	return out
}

// WorldCenter returns the world-space center of the rectangle: the average of
// its top-left and bottom-right world corners.
func WorldCenter(rt RectTransform) Vec2 {
	c := WorldCorners(rt)
	return c[0].Lerp(c[2], 0.5)
}

// centerOffset is the vector from a rectangle's pivot to its center, in local
// units.
func centerOffset(rt RectTransform) Vec2 {
	return rt.Size().Scale(0.5).Sub(rt.Pivot())
}

// RelativeToRect returns the anchored position `from` would need inside
// `to`'s parent space so that it occupies the same screen location as it
// does now. p projects world space to the screen; nil means the two spaces
// coincide. When from and to share screen position, size, and pivot the
// result is to's current anchored position.
func RelativeToRect(from, to RectTransform, p ScreenProjector) Vec2 {
	pivot := from.Pivot()
	wx, wy := from.LocalToWorld(pivot.X, pivot.Y)
	screen := WorldToScreenPoint(p, Vec2{wx, wy}).Add(centerOffset(from))

	world := ScreenToWorldPoint(p, screen)
	lx, ly := to.WorldToLocal(world.X, world.Y)
	local := Vec2{lx, ly}.Sub(to.Pivot())

	return to.AnchoredPosition().Add(local).Sub(centerOffset(to))
}
