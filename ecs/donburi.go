package ecs

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/phanxgames/willowkit"

	"github.com/yohamta/donburi"
)

// ErrInvalidEntity is returned when a waypoint entity is not alive or lacks
// the position component.
var ErrInvalidEntity = errors.New("invalid waypoint entity")

// matching collects every entity the query matches.
func matching(world donburi.World, query *donburi.Query) []donburi.Entity {
	var out []donburi.Entity
	query.Each(world, func(entry *donburi.Entry) {
		out = append(out, entry.Entity())
	})
	return out
}

// RandomEntity returns a uniformly random entity matched by query, or
// donburi.Null (the zero Entity) when nothing matches.
func RandomEntity(r *rand.Rand, world donburi.World, query *donburi.Query) donburi.Entity {
	return willowkit.RandomOne(r, matching(world, query))
}

// RandomEntityExcept is RandomEntity with the given entities excluded.
// Returns donburi.Null when the exclusions cover every match.
func RandomEntityExcept(r *rand.Rand, world donburi.World, query *donburi.Query, except ...donburi.Entity) donburi.Entity {
	return willowkit.RandomOneExcept(r, matching(world, query), except...)
}

// WaypointDuration estimates the travel time from start through the
// positions stored on waypoints, in order. It fails on an empty list or on
// a dead entity or one without pos.
func WaypointDuration(world donburi.World, pos *donburi.ComponentType[willowkit.Vec2],
	waypoints []donburi.Entity, start willowkit.Vec2, opts willowkit.PathOptions) (float64, error) {
	path := make([]willowkit.Vec2, len(waypoints))
	for i, e := range waypoints {
		if !world.Valid(e) {
			return 0, fmt.Errorf("willowkit/ecs: waypoint %d: %w", i, ErrInvalidEntity)
		}
		entry := world.Entry(e)
		if !entry.HasComponent(pos) {
			return 0, fmt.Errorf("willowkit/ecs: waypoint %d has no position: %w", i, ErrInvalidEntity)
		}
		path[i] = *pos.Get(entry)
	}
	return willowkit.PathDuration(path, start, opts)
}
