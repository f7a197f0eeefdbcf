package willowkit

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on a Node simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenScale,
// TweenColor) and call Update(dt) each frame. If the target node is
// disposed, the group stops immediately.
//
// There is no global animation manager; users call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Node
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. If the target node has been disposed, Done is set to true and no
// writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

func newTweenGroup(node *Node, duration float32, fn ease.TweenFunc, pairs ...tweenPair) *TweenGroup {
	g := &TweenGroup{count: len(pairs), target: node}
	for i, p := range pairs {
		g.tweens[i] = gween.New(float32(*p.field), float32(p.to), duration, fn)
		g.fields[i] = p.field
	}
	return g
}

type tweenPair struct {
	field *float64
	to    float64
}

// TweenPosition animates node.X and node.Y to the given coordinates.
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(node, duration, fn, tweenPair{&node.X, toX}, tweenPair{&node.Y, toY})
}

// TweenScale animates node.ScaleX and node.ScaleY.
func TweenScale(node *Node, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(node, duration, fn, tweenPair{&node.ScaleX, toSX}, tweenPair{&node.ScaleY, toSY})
}

// TweenAlpha animates node.Alpha.
func TweenAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(node, duration, fn, tweenPair{&node.Alpha, to})
}

// TweenRotation animates node.Rotation (radians).
func TweenRotation(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(node, duration, fn, tweenPair{&node.Rotation, to})
}

// TweenColor animates all four components of node.Color.
func TweenColor(node *Node, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(node, duration, fn,
		tweenPair{&node.Color.R, to.R},
		tweenPair{&node.Color.G, to.G},
		tweenPair{&node.Color.B, to.B},
		tweenPair{&node.Color.A, to.A},
	)
}

// --- Path following ---

// pathSegment is one leg of a PathTween.
type pathSegment struct {
	to       Vec2
	duration float32
	tween    *gween.Tween // progress 0..1 along the leg
}

// PathTween moves a node through a list of waypoints in its parent's space.
// Each leg lasts its length times the PathOptions multiplier, so the whole
// walk takes exactly PathDuration(path, start, opts).
type PathTween struct {
	target   *Node
	from     Vec2
	segments []pathSegment
	index    int
	elapsed  float32
	duration float64
	Done     bool
}

// TweenPath creates a PathTween starting at the node's current anchored
// position. fn eases each leg. Returns ErrEmptyPath when path is empty.
func TweenPath(node *Node, path []Vec2, opts PathOptions, fn ease.TweenFunc) (*PathTween, error) {
	start := node.AnchoredPosition()
	total, err := PathDuration(path, start, opts)
	if err != nil {
		return nil, err
	}

	m := opts.Multiplier()
	pt := &PathTween{target: node, from: start, duration: total}
	prev := start
	for _, wp := range path {
		d := float32(prev.DistanceTo(wp) * m)
		pt.segments = append(pt.segments, pathSegment{
			to:       wp,
			duration: d,
			tween:    gween.New(0, 1, d, fn),
		})
		prev = wp
	}
	return pt, nil
}

// Duration returns the total walk time in seconds.
func (p *PathTween) Duration() float64 {
	return p.duration
}

// Segment returns the index of the waypoint currently being approached.
func (p *PathTween) Segment() int {
	return p.index
}

// Update advances the walk by dt seconds. Time left over after finishing a
// leg carries into the next one.
func (p *PathTween) Update(dt float32) {
	if p.Done {
		return
	}
	if p.target.IsDisposed() {
		p.Done = true
		return
	}

	for dt >= 0 && p.index < len(p.segments) {
		seg := &p.segments[p.index]
		remaining := seg.duration - p.elapsed
		if dt < remaining {
			p.elapsed += dt
			t, _ := seg.tween.Update(dt)
			p.place(p.from.Lerp(seg.to, float64(t)))
			return
		}
		dt -= remaining
		p.place(seg.to)
		p.from = seg.to
		p.elapsed = 0
		p.index++
	}
	p.Done = p.index >= len(p.segments)
}

func (p *PathTween) place(v Vec2) {
	p.target.X = v.X
	p.target.Y = v.Y
}
