package willowkit

import "testing"

func testClip(name string, frames int, fps float64, loop bool) AnimationClip {
	clip := AnimationClip{Name: name, FPS: fps, Loop: loop}
	for i := range frames {
		clip.Frames = append(clip.Frames, TextureRegion{X: uint16(i), Width: 8, Height: 8})
	}
	return clip
}

func TestAnimationClipLength(t *testing.T) {
	assertNear(t, "walk", testClip("walk", 6, 12, true).Length(), 0.5)
	assertNear(t, "zero fps", testClip("idle", 6, 0, true).Length(), 0)
	assertNear(t, "no frames", testClip("empty", 0, 12, true).Length(), 0)
}

func TestClipLength(t *testing.T) {
	a := NewAnimator(nil, testClip("walk", 4, 8, true), testClip("die", 3, 6, false))

	got, ok := ClipLength(a, "walk")
	if !ok {
		t.Fatal("walk not found")
	}
	assertNear(t, "walk", got, 0.5)

	got, ok = ClipLength(a, "die")
	if !ok {
		t.Fatal("die not found")
	}
	assertNear(t, "die", got, 0.5)

	if _, ok := ClipLength(a, "Walk"); ok {
		t.Error("lookup should be exact")
	}
	if _, ok := ClipLength(nil, "walk"); ok {
		t.Error("nil catalog should report false")
	}
}

func TestAnimatorAddClipReplaces(t *testing.T) {
	a := NewAnimator(nil, testClip("walk", 4, 8, true))
	a.AddClip(testClip("walk", 8, 8, true))
	a.AddClip(testClip("run", 2, 8, true))
	if n := len(a.AnimationClips()); n != 2 {
		t.Fatalf("clips = %d, want 2", n)
	}
	got, _ := ClipLength(a, "walk")
	assertNear(t, "replaced walk", got, 1)
}

func TestAnimatorLoop(t *testing.T) {
	sprite := NewSprite("hero", TextureRegion{})
	a := NewAnimator(sprite, testClip("walk", 4, 4, true))

	if a.Current() != "" {
		t.Errorf("Current before Play = %q", a.Current())
	}
	a.Update(1) // idle: no-op
	if !a.Play("walk") {
		t.Fatal("Play(walk) = false")
	}
	if sprite.TextureRegion.X != 0 {
		t.Errorf("first frame X = %d, want 0", sprite.TextureRegion.X)
	}

	a.Update(0.5)
	if a.Frame() != 2 || sprite.TextureRegion.X != 2 {
		t.Errorf("after 0.5s: frame %d, region X %d; want 2", a.Frame(), sprite.TextureRegion.X)
	}
	a.Update(0.5)
	if a.Frame() != 0 {
		t.Errorf("after wrap: frame %d, want 0", a.Frame())
	}
	if a.Done() {
		t.Error("looping clip should never be done")
	}
}

func TestAnimatorOneShot(t *testing.T) {
	sprite := NewSprite("hero", TextureRegion{})
	a := NewAnimator(sprite, testClip("die", 2, 2, false))
	a.Play("die")

	a.Update(0.6)
	if a.Frame() != 1 || a.Done() {
		t.Errorf("after 0.6s: frame %d done %v; want 1 false", a.Frame(), a.Done())
	}
	a.Update(0.6)
	if a.Frame() != 1 || !a.Done() {
		t.Errorf("after 1.2s: frame %d done %v; want 1 true", a.Frame(), a.Done())
	}

	// Replaying resets the done state.
	a.Play("die")
	if a.Done() || a.Frame() != 0 {
		t.Error("Play should restart the clip")
	}
}

func TestAnimatorPlayUnknown(t *testing.T) {
	a := NewAnimator(nil, testClip("walk", 4, 4, true))
	a.Play("walk")
	if a.Play("fly") {
		t.Error("Play(fly) = true for unknown clip")
	}
	if a.Current() != "walk" {
		t.Errorf("Current = %q, want walk", a.Current())
	}
}

func TestAnimatorDisposedTarget(t *testing.T) {
	sprite := NewSprite("hero", TextureRegion{})
	a := NewAnimator(sprite, testClip("walk", 4, 4, true))
	a.Play("walk")
	sprite.Dispose()
	a.Update(0.1)
	if !a.Done() {
		t.Error("animator should stop when its target is disposed")
	}
}
