package willowkit

import "testing"

func assertVec(t *testing.T, name string, got, want Vec2) {
	t.Helper()
	assertNear(t, name+".X", got.X, want.X)
	assertNear(t, name+".Y", got.Y, want.Y)
}

// centeredSquare returns a side-2 square whose pivot sits at the world origin.
func centeredSquare() *Node {
	n := NewPanel("square", 2, 2)
	n.SetPivot(1, 1)
	return n
}

func TestWorldCorners(t *testing.T) {
	c := WorldCorners(centeredSquare())
	want := [4]Vec2{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	for i := range c {
		assertVec(t, "corner", c[i], want[i])
	}
}

func TestWorldCenter(t *testing.T) {
	assertVec(t, "centered square", WorldCenter(centeredSquare()), Vec2{})

	parent := NewContainer("parent")
	parent.SetPosition(50, 20)
	parent.SetScale(2, 2)
	child := NewPanel("child", 10, 4)
	parent.AddChild(child)
	assertVec(t, "scaled child", WorldCenter(child), Vec2{60, 24})
}

func TestScreenWorldPointNilProjector(t *testing.T) {
	p := Vec2{12.5, -3}
	assertVec(t, "ScreenToWorldPoint", ScreenToWorldPoint(nil, p), p)
	assertVec(t, "WorldToScreenPoint", WorldToScreenPoint(nil, p), p)
}

func TestScreenWorldPointCamera(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.X, cam.Y = 100, 100
	cam.Zoom = 2

	world := ScreenToWorldPoint(cam, Vec2{400, 300})
	assertVec(t, "viewport center", world, Vec2{100, 100})

	world = ScreenToWorldPoint(cam, Vec2{420, 300})
	assertVec(t, "zoomed offset", world, Vec2{110, 100})

	screen := WorldToScreenPoint(cam, world)
	assertVec(t, "roundtrip", screen, Vec2{420, 300})
}

func TestRelativeToRectIdentity(t *testing.T) {
	n := NewPanel("n", 40, 20)
	n.SetPosition(30, 70)
	n.SetPivot(10, 5)
	assertVec(t, "self", RelativeToRect(n, n, nil), n.AnchoredPosition())

	cam := NewCamera(Rect{Width: 800, Height: 600})
	assertVec(t, "self through camera", RelativeToRect(n, n, cam), n.AnchoredPosition())
}

func TestRelativeToRectSameShape(t *testing.T) {
	from := NewPanel("from", 20, 10)
	from.SetPosition(100, 50)
	to := NewPanel("to", 20, 10)
	to.SetPosition(100, 50)
	assertVec(t, "same placement", RelativeToRect(from, to, nil), Vec2{100, 50})
}

func TestRelativeToRect(t *testing.T) {
	from := NewPanel("from", 20, 10)
	from.SetPosition(100, 50)

	to := NewPanel("to", 200, 200)
	to.SetPosition(10, 10)

	// from's center (110,55) is (100,45) in to's local space. Add to's
	// anchored position and subtract its pivot-to-center offset (100,100).
	assertVec(t, "relative", RelativeToRect(from, to, nil), Vec2{10, -45})
}

func TestSceneRelativeToRect(t *testing.T) {
	s := NewScene()
	n := NewPanel("n", 8, 8)
	n.SetPosition(4, 4)
	assertVec(t, "scene self", s.RelativeToRect(n, n), Vec2{4, 4})
}
