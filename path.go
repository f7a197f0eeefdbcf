package willowkit

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPath is returned when a path has no waypoints.
	ErrEmptyPath = errors.New("empty path")
	// ErrNilNode is returned when a node path contains a nil entry.
	ErrNilNode = errors.New("nil node")
)

// Default multipliers applied by PathOptions.
const (
	DefaultPathSpeed = 1.0
	DefaultRunSpeed  = 3.0
	DefaultJumpSpeed = 5.0
)

// Distancer is a position that can measure the distance to another of its
// kind. Vec2 and Vec3 implement it.
type Distancer[P any] interface {
	DistanceTo(P) float64
}

// PathOptions configures duration estimation. Multipliers are used exactly
// as given, so start from DefaultPathOptions when building one. Run and Jump
// are independent: when both are set both multipliers apply.
type PathOptions struct {
	Speed     float64
	RunSpeed  float64
	JumpSpeed float64
	Run       bool
	Jump      bool
}

// DefaultPathOptions returns options with every multiplier at its default
// and both flags off.
func DefaultPathOptions() PathOptions {
	return PathOptions{
		Speed:     DefaultPathSpeed,
		RunSpeed:  DefaultRunSpeed,
		JumpSpeed: DefaultJumpSpeed,
	}
}

// Multiplier returns the combined factor applied to a path length.
func (o PathOptions) Multiplier() float64 {
	m := o.Speed
	if o.Run {
		m *= o.RunSpeed
	}
	if o.Jump {
		m *= o.JumpSpeed
	}
	return m
}

// PathLength returns the distance from start to path[0] plus the distance
// between each consecutive pair of waypoints. Returns ErrEmptyPath when path
// is empty.
func PathLength[P Distancer[P]](path []P, start P) (float64, error) {
	if len(path) == 0 {
		return 0, fmt.Errorf("willowkit: path length: %w", ErrEmptyPath)
	}
	total := start.DistanceTo(path[0])
	for i := 1; i < len(path); i++ {
		total += path[i-1].DistanceTo(path[i])
	}
	return total, nil
}

// PathDuration estimates the time to travel from start through every
// waypoint in order: the path length scaled by opts.Multiplier. Returns
// ErrEmptyPath when path is empty.
func PathDuration[P Distancer[P]](path []P, start P, opts PathOptions) (float64, error) {
	length, err := PathLength(path, start)
	if err != nil {
		return 0, err
	}
	return length * opts.Multiplier(), nil
}

// NodePositions returns the current world pivot position of each node.
// Returns ErrNilNode if any entry is nil.
func NodePositions(nodes []*Node) ([]Vec2, error) {
	out := make([]Vec2, len(nodes))
	for i, n := range nodes {
		if n == nil {
			return nil, fmt.Errorf("willowkit: node path index %d: %w", i, ErrNilNode)
		}
		out[i] = n.WorldPosition()
	}
	return out, nil
}

// NodePathDuration is PathDuration over the current world positions of nodes.
func NodePathDuration(nodes []*Node, start Vec2, opts PathOptions) (float64, error) {
	path, err := NodePositions(nodes)
	if err != nil {
		return 0, err
	}
	return PathDuration(path, start, opts)
}
