package willowkit

import "testing"

func raycastScene() (root, enemy, ally *Node) {
	root = NewContainer("root")
	enemy = NewContainer("enemy")
	enemy.Tag = "enemy"
	enemy.HitShape = HitRect{Width: 10, Height: 10}
	ally = NewContainer("ally")
	ally.Tag = "ally"
	ally.HitShape = HitCircle{CenterX: 5, CenterY: 5, Radius: 5}
	root.AddChild(enemy)
	root.AddChild(ally)
	return root, enemy, ally
}

func hitNames(hits []RaycastHit) []string {
	names := make([]string, len(hits))
	for i, h := range hits {
		names[i] = h.Node.Name
	}
	return names
}

func TestRaycastAllTopmostFirst(t *testing.T) {
	root, _, _ := raycastScene()
	hits := RaycastAll(root, nil, Vec2{5, 5}, "")
	names := hitNames(hits)
	if len(names) != 2 || names[0] != "ally" || names[1] != "enemy" {
		t.Errorf("hits = %v, want [ally enemy]", names)
	}
}

func TestRaycastAllZIndex(t *testing.T) {
	root, enemy, _ := raycastScene()
	enemy.SetZIndex(5)
	names := hitNames(RaycastAll(root, nil, Vec2{5, 5}, ""))
	if len(names) != 2 || names[0] != "enemy" {
		t.Errorf("hits = %v, want enemy first", names)
	}
}

func TestRaycastTagFilter(t *testing.T) {
	root, enemy, _ := raycastScene()
	hit, ok := Raycast(root, nil, Vec2{5, 5}, "enemy")
	if !ok || hit.Node != enemy {
		t.Fatalf("Raycast(tag enemy) = %v, %v; want enemy", hit.Node, ok)
	}
	if _, ok := Raycast(root, nil, Vec2{5, 5}, "neutral"); ok {
		t.Error("Raycast with unknown tag should miss")
	}
}

func TestRaycastMiss(t *testing.T) {
	root, _, _ := raycastScene()
	hit, ok := Raycast(root, nil, Vec2{50, 50}, "")
	if ok || hit.Node != nil {
		t.Errorf("expected miss, got %v", hit.Node)
	}
	if hits := RaycastAll(nil, nil, Vec2{}, ""); hits != nil {
		t.Errorf("nil root: hits = %v", hits)
	}
}

func TestRaycastSkipsInvisibleAndDisposed(t *testing.T) {
	root, enemy, ally := raycastScene()
	ally.Visible = false
	names := hitNames(RaycastAll(root, nil, Vec2{5, 5}, ""))
	if len(names) != 1 || names[0] != "enemy" {
		t.Errorf("invisible ally: hits = %v, want [enemy]", names)
	}

	enemy.Dispose()
	if hits := RaycastAll(root, nil, Vec2{5, 5}, ""); len(hits) != 0 {
		t.Errorf("after dispose: hits = %v, want none", hitNames(hits))
	}
}

func TestRaycastLocalPoint(t *testing.T) {
	root := NewContainer("root")
	n := NewContainer("n")
	n.SetPosition(100, 100)
	n.SetScale(2, 2)
	n.HitShape = HitRect{Width: 10, Height: 10}
	root.AddChild(n)

	hit, ok := Raycast(root, nil, Vec2{110, 106}, "")
	if !ok {
		t.Fatal("expected hit")
	}
	assertVec(t, "Point", hit.Point, Vec2{110, 106})
	assertVec(t, "LocalPoint", hit.LocalPoint, Vec2{5, 3})
}

func TestSceneRaycastUsesCamera(t *testing.T) {
	s := NewScene()
	n := NewContainer("n")
	n.SetPosition(-5, -5)
	n.HitShape = HitRect{Width: 10, Height: 10}
	s.Root().AddChild(n)

	// Without a camera the screen point is the world point.
	if _, ok := s.Raycast(Vec2{400, 300}, ""); ok {
		t.Error("no camera: expected miss at (400,300)")
	}

	s.NewCamera(Rect{Width: 800, Height: 600})
	hit, ok := s.Raycast(Vec2{400, 300}, "")
	if !ok || hit.Node != n {
		t.Fatal("camera: expected hit on n at viewport center")
	}
	assertVec(t, "LocalPoint", hit.LocalPoint, Vec2{5, 5})
}
