package willowkit

// AnimationClip is a named sequence of texture regions played at a fixed
// frame rate.
type AnimationClip struct {
	Name   string
	Frames []TextureRegion
	FPS    float64
	Loop   bool
}

// Length returns the clip duration in seconds, or 0 when FPS is not positive.
func (c AnimationClip) Length() float64 {
	if c.FPS <= 0 {
		return 0
	}
	return float64(len(c.Frames)) / c.FPS
}

// ClipCatalog exposes a set of animation clips. *Animator implements it.
type ClipCatalog interface {
	AnimationClips() []AnimationClip
}

// ClipLength returns the length in seconds of the clip named name in c.
// ok is false when c is nil or holds no such clip.
func ClipLength(c ClipCatalog, name string) (length float64, ok bool) {
	if c == nil {
		return 0, false
	}
	for _, clip := range c.AnimationClips() {
		if clip.Name == name {
			return clip.Length(), true
		}
	}
	return 0, false
}

// Animator plays AnimationClips on a sprite node by swapping its
// TextureRegion. Call Update(dt) each frame; there is no global manager.
type Animator struct {
	target  *Node
	clips   []AnimationClip
	current int
	elapsed float64
	frame   int
	done    bool
}

// NewAnimator creates an animator for target with the given clips. Nothing
// plays until Play is called.
func NewAnimator(target *Node, clips ...AnimationClip) *Animator {
	return &Animator{target: target, clips: clips, current: -1}
}

// AddClip registers a clip, replacing any existing clip with the same name.
func (a *Animator) AddClip(clip AnimationClip) {
	for i := range a.clips {
		if a.clips[i].Name == clip.Name {
			a.clips[i] = clip
			return
		}
	}
	a.clips = append(a.clips, clip)
}

// AnimationClips returns the registered clips. The returned slice MUST NOT be mutated.
func (a *Animator) AnimationClips() []AnimationClip {
	return a.clips
}

// Play restarts playback with the named clip and shows its first frame.
// Returns false, leaving the current state untouched, if no clip has that name.
func (a *Animator) Play(name string) bool {
	for i := range a.clips {
		if a.clips[i].Name == name {
			a.current = i
			a.elapsed = 0
			a.frame = 0
			a.done = false
			a.apply()
			return true
		}
	}
	return false
}

// Current returns the name of the playing clip, or "" when idle.
func (a *Animator) Current() string {
	if a.current < 0 {
		return ""
	}
	return a.clips[a.current].Name
}

// Frame returns the index of the frame currently shown.
func (a *Animator) Frame() int {
	return a.frame
}

// Done reports whether a non-looping clip has reached its last frame, or the
// target node has been disposed.
func (a *Animator) Done() bool {
	return a.done
}

// Update advances playback by dt seconds.
func (a *Animator) Update(dt float32) {
	if a.done || a.current < 0 {
		return
	}
	if a.target != nil && a.target.IsDisposed() {
		a.done = true
		return
	}
	clip := &a.clips[a.current]
	n := len(clip.Frames)
	if n == 0 || clip.FPS <= 0 {
		return
	}

	a.elapsed += float64(dt)
	frame := int(a.elapsed * clip.FPS)
	if clip.Loop {
		frame %= n
	} else if frame >= n {
		frame = n - 1
		a.done = true
	}
	a.frame = frame
	a.apply()
}

func (a *Animator) apply() {
	if a.target == nil || a.current < 0 {
		return
	}
	clip := &a.clips[a.current]
	if a.frame < len(clip.Frames) {
		a.target.TextureRegion = clip.Frames[a.frame]
	}
}
