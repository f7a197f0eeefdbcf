// Package willowkit is a set of stateless gameplay helpers for 2D games on
// [Ebitengine].
//
// The helpers work on a small retained scene graph: [Node] trees with
// affine transforms, [Camera] projections, and [HitShape] colliders. Every
// query reads the tree as it is at call time: world transforms and camera
// matrices are composed on demand and nothing runs in the background.
//
// # Random selection
//
// [RandomOne], [RandomOneSeq], [RandomOneExcept], [RandomEnum] and
// [RandomEnumExcept] pick uniformly from a slice, a sequence, or an iota
// enumeration. Pass a seeded *rand.Rand for deterministic results; nil uses
// the math/rand/v2 global generator. Selecting from nothing returns the zero
// value instead of panicking:
//
//	rng := rand.New(rand.NewPCG(1, 2))
//	color := willowkit.RandomOneExcept(rng, palette, hero.Color)
//
// # Paths
//
// [PathDuration] turns a list of waypoints into a travel time. Speed, run
// and jump multipliers come from [PathOptions]; run and jump stack.
// [TweenPath] walks a node along the same path over exactly that time.
//
//	d, err := willowkit.PathDuration(path, start, willowkit.DefaultPathOptions())
//	if errors.Is(err, willowkit.ErrEmptyPath) { ... }
//
// # Coordinates and queries
//
// [ScreenToWorldPoint], [WorldCenter], [WorldCorners] and [RelativeToRect]
// convert between screen, world and rectangle-local space. [Raycast] and
// [RaycastAll] find the colliders under a screen point, optionally
// filtered by [Node.Tag]. [Scene.IsPointerOverUI] reports whether the mouse
// or the first fresh touch is over the scene's UI layer.
//
// # Animation
//
// [Animator] plays frame clips built from an [Atlas]; [ClipLength] looks a
// clip's duration up by name. [TweenGroup] tweens node fields via [gween].
//
// The willowkit/ecs module offers the random and path helpers over a
// [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package willowkit
