// Package ecs adapts willowkit's helpers to a [Donburi] world.
//
// [RandomEntity] and [RandomEntityExcept] pick uniformly among the entities
// matching a query, using the same empty-input rules as
// willowkit.RandomOne: an empty match yields donburi.Null.
// [WaypointDuration] estimates travel time through entities that carry a
// position component.
//
// Usage:
//
//	spawn := ecs.RandomEntity(rng, world, spawnPoints)
//	if spawn != donburi.Null { ... }
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
