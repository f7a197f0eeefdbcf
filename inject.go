package willowkit

import "github.com/hajimehoshi/ebiten/v2"

// ScriptedTouch is one active touch in a PointerFrame.
type ScriptedTouch struct {
	ID    ebiten.TouchID
	X, Y  int
	Began bool // true only in the frame the touch started
}

// PointerFrame is the pointer state for a single frame.
type PointerFrame struct {
	CursorX, CursorY int
	Touches          []ScriptedTouch
}

// ScriptedPointer is a PointerSource that replays queued frames instead of
// reading real devices. Attach it with Scene.SetPointerSource and call
// Advance once per frame. Useful for automated tests and replays.
type ScriptedPointer struct {
	queue   []PointerFrame
	current PointerFrame
}

// Queue appends frames to the replay queue.
func (p *ScriptedPointer) Queue(frames ...PointerFrame) {
	p.queue = append(p.queue, frames...)
}

// QueueCursor queues a frame with the mouse at (x, y) and no touches.
func (p *ScriptedPointer) QueueCursor(x, y int) {
	p.Queue(PointerFrame{CursorX: x, CursorY: y})
}

// QueueTap queues a touch that begins at (x, y), is held for one more
// frame, and is then lifted. Consumes three frames.
func (p *ScriptedPointer) QueueTap(id ebiten.TouchID, x, y int) {
	p.Queue(
		PointerFrame{Touches: []ScriptedTouch{{ID: id, X: x, Y: y, Began: true}}},
		PointerFrame{Touches: []ScriptedTouch{{ID: id, X: x, Y: y}}},
		PointerFrame{},
	)
}

// Advance makes the next queued frame current. Returns false, keeping the
// current frame, when the queue is empty.
func (p *ScriptedPointer) Advance() bool {
	if len(p.queue) == 0 {
		return false
	}
	p.current = p.queue[0]
	copy(p.queue, p.queue[1:])
	p.queue = p.queue[:len(p.queue)-1]
	return true
}

// Pending returns the number of frames still queued.
func (p *ScriptedPointer) Pending() int {
	return len(p.queue)
}

// CursorPosition implements PointerSource.
func (p *ScriptedPointer) CursorPosition() (x, y int) {
	return p.current.CursorX, p.current.CursorY
}

// AppendTouchIDs implements PointerSource.
func (p *ScriptedPointer) AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID {
	for _, t := range p.current.Touches {
		ids = append(ids, t.ID)
	}
	return ids
}

// TouchPosition implements PointerSource.
func (p *ScriptedPointer) TouchPosition(id ebiten.TouchID) (x, y int) {
	if t, ok := p.touch(id); ok {
		return t.X, t.Y
	}
	return 0, 0
}

// TouchJustPressed implements PointerSource.
func (p *ScriptedPointer) TouchJustPressed(id ebiten.TouchID) bool {
	t, ok := p.touch(id)
	return ok && t.Began
}

func (p *ScriptedPointer) touch(id ebiten.TouchID) (ScriptedTouch, bool) {
	for _, t := range p.current.Touches {
		if t.ID == id {
			return t, true
		}
	}
	return ScriptedTouch{}, false
}
