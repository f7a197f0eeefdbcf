package willowkit

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerSource supplies mouse and touch state for the current frame.
// EbitenPointer reads it from Ebitengine; tests supply their own.
type PointerSource interface {
	CursorPosition() (x, y int)
	AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID
	TouchPosition(id ebiten.TouchID) (x, y int)
	// TouchJustPressed reports whether the touch began this frame.
	TouchJustPressed(id ebiten.TouchID) bool
}

// EbitenPointer is the PointerSource backed by Ebitengine's input state.
// Only valid on the game loop goroutine.
type EbitenPointer struct {
	justPressed []ebiten.TouchID
}

// CursorPosition returns the mouse cursor position in screen pixels.
func (p *EbitenPointer) CursorPosition() (x, y int) {
	return ebiten.CursorPosition()
}

// AppendTouchIDs appends the active touch IDs to ids.
func (p *EbitenPointer) AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID {
	return ebiten.AppendTouchIDs(ids)
}

// TouchPosition returns the position of the given touch in screen pixels.
func (p *EbitenPointer) TouchPosition(id ebiten.TouchID) (x, y int) {
	return ebiten.TouchPosition(id)
}

// TouchJustPressed reports whether the touch began this frame.
func (p *EbitenPointer) TouchJustPressed(id ebiten.TouchID) bool {
	p.justPressed = inpututil.AppendJustPressedTouchIDs(p.justPressed[:0])
	return slices.Contains(p.justPressed, id)
}

// collectInteractable walks the tree in painter order (DFS, ZIndex-sorted),
// appending hit-testable nodes to buf. Skips Visible=false or
// Interactable=false subtrees.
func collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible || !n.Interactable || n.disposed {
		return buf
	}
	if n.HitShape != nil || n.Type != NodeTypeContainer || n.Width != 0 || n.Height != 0 {
		buf = append(buf, n)
	}
	for _, child := range n.paintOrder() {
		buf = collectInteractable(child, buf)
	}
	return buf
}

// uiActive reports whether the UI layer can receive pointer events.
func (s *Scene) uiActive() bool {
	return s.uiRoot != nil && s.uiRoot.Visible && s.uiRoot.Interactable && !s.uiRoot.disposed
}

// UIAt returns the topmost interactable UI node at the screen point, or nil.
// UI nodes live in screen space; no camera is applied.
func (s *Scene) UIAt(sx, sy float64) *Node {
	if !s.uiActive() {
		return nil
	}
	s.hitBuf = collectInteractable(s.uiRoot, s.hitBuf[:0])
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		n := s.hitBuf[i]
		lx, ly := n.WorldToLocal(sx, sy)
		if nodeContainsLocal(n, lx, ly) {
			return n
		}
	}
	return nil
}

// IsPointerOverUI reports whether the pointer is over an interactable UI
// node. It is always false without an active UI root. Only the first touch
// counts, and only in the frame it began; every other frame tests the mouse
// cursor.
func (s *Scene) IsPointerOverUI() bool {
	if !s.uiActive() || s.pointer == nil {
		return false
	}
	s.touchBuf = s.pointer.AppendTouchIDs(s.touchBuf[:0])
	if len(s.touchBuf) > 0 && s.pointer.TouchJustPressed(s.touchBuf[0]) {
		x, y := s.pointer.TouchPosition(s.touchBuf[0])
		return s.UIAt(float64(x), float64(y)) != nil
	}
	x, y := s.pointer.CursorPosition()
	return s.UIAt(float64(x), float64(y)) != nil
}
