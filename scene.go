package willowkit

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene owns the world tree, the screen-space UI tree, cameras, and the
// pointer source used by the helper queries.
type Scene struct {
	root    *Node
	uiRoot  *Node
	cameras []*Camera
	pointer PointerSource
	debug   bool

	hitBuf   []*Node
	touchBuf []ebiten.TouchID
}

// NewScene creates a new scene with a pre-created root container and the
// Ebitengine pointer source. No UI root is set.
func NewScene() *Scene {
	return &Scene{
		root:    NewContainer("root"),
		pointer: &EbitenPointer{},
	}
}

// Root returns the scene's world root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// SetUIRoot sets the screen-space UI tree used by IsPointerOverUI. The UI
// layer is active while its root is visible and interactable. Pass nil to
// remove it.
func (s *Scene) SetUIRoot(n *Node) {
	s.uiRoot = n
}

// UIRoot returns the UI root, or nil.
func (s *Scene) UIRoot() *Node {
	return s.uiRoot
}

// SetPointerSource replaces the pointer source. nil disables pointer queries.
func (s *Scene) SetPointerSource(p PointerSource) {
	s.pointer = p
}

// Update advances cameras by one tick.
func (s *Scene) Update() {
	s.update(float32(1.0 / float64(ebiten.TPS())))
}

func (s *Scene) update(dt float32) {
	for _, cam := range s.cameras {
		cam.update(dt)
	}
}

// NewCamera creates a camera with the given viewport and adds it to the scene.
// The first camera added is the primary camera.
func (s *Scene) NewCamera(viewport Rect) *Camera {
	cam := NewCamera(viewport)
	s.cameras = append(s.cameras, cam)
	return cam
}

// RemoveCamera removes a camera from the scene.
func (s *Scene) RemoveCamera(cam *Camera) {
	for i, c := range s.cameras {
		if c == cam {
			s.cameras = append(s.cameras[:i], s.cameras[i+1:]...)
			return
		}
	}
}

// Cameras returns the scene's camera list. The returned slice MUST NOT be mutated.
func (s *Scene) Cameras() []*Camera {
	return s.cameras
}

// PrimaryCamera returns the first camera, or nil.
func (s *Scene) PrimaryCamera() *Camera {
	if len(s.cameras) == 0 {
		return nil
	}
	return s.cameras[0]
}

// projector returns the primary camera as a ScreenProjector, or a nil
// interface when there is no camera.
func (s *Scene) projector() ScreenProjector {
	if cam := s.PrimaryCamera(); cam != nil {
		return cam
	}
	return nil
}

// ScreenToWorld converts a screen point to world space through the primary
// camera.
func (s *Scene) ScreenToWorld(screen Vec2) Vec2 {
	return ScreenToWorldPoint(s.projector(), screen)
}

// RaycastAll returns every world collider under the screen point, topmost
// first, filtered by tag when tag is non-empty.
func (s *Scene) RaycastAll(screen Vec2, tag string) []RaycastHit {
	hits := RaycastAll(s.root, s.projector(), screen, tag)
	if s.debug {
		s.debugLogRaycast(screen, tag, len(hits))
	}
	return hits
}

// Raycast returns the topmost world collider under the screen point.
func (s *Scene) Raycast(screen Vec2, tag string) (RaycastHit, bool) {
	return topmost(s.RaycastAll(screen, tag))
}

// RelativeToRect is the package-level RelativeToRect for screen-space UI
// nodes: both rectangles are projected without a camera.
func (s *Scene) RelativeToRect(from, to *Node) Vec2 {
	return RelativeToRect(from, to, nil)
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are printed, and
// raycast queries are logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool
