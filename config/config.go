// Package config holds the typed, validated configuration the core needs to
// construct a world: the arena shape, quadtree capacity/depth, default and
// random radius policy, placement retry bound, and epsilon policy. The
// teacher has no config layer of its own -- its main.go hardcodes
// worldBoundary, numDrivers, moveInterval and searchRadiusX as package-level
// constants -- so this package generalizes that "what must be configurable"
// shape into one validated struct per spec.md §6/§7.
package config

import (
	"errors"
	"fmt"
	"math"

	"ParticleField/arena"
	"ParticleField/geometry"
)

// ArenaShape selects which arena.Arena variant Config.Build constructs.
type ArenaShape struct {
	Circle    *CircleShape
	Rectangle *RectangleShape
}

// CircleShape is the arena_shape=circle(cx,cy,R) configuration option.
type CircleShape struct {
	CenterX, CenterY float64
	Radius           float64
}

// RectangleShape is the arena_shape=rectangle(cx,cy,W,H) configuration
// option.
type RectangleShape struct {
	CenterX, CenterY float64
	Width, Height    float64
}

// RadiusRange is the (min,max) bound for random_radius_range.
type RadiusRange struct {
	Min, Max float64
}

// Config mirrors every option named in spec.md §6.
type Config struct {
	ArenaShape ArenaShape

	LeafCapacity int
	MaxDepth     int // 0 means "derive from arena size and max radius"

	DefaultRadius       float64
	RandomRadiusEnabled bool
	RandomRadiusRange   RadiusRange
	MaxPlacementRetries int
	EpsilonRel          float64
}

// Error is the "Invalid configuration" kind from spec.md §7: construction
// fails and nothing is built.
type Error struct {
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("config: invalid configuration: %s", e.Reason)
}

var errNoArenaShape = errors.New("config: invalid configuration: exactly one of ArenaShape.Circle or ArenaShape.Rectangle must be set")

// maxRadius returns the largest radius this config can ever place, whether
// fixed or drawn from RandomRadiusRange.
func (c Config) maxRadius() float64 {
	if c.RandomRadiusEnabled {
		return math.Max(c.DefaultRadius, c.RandomRadiusRange.Max)
	}
	return c.DefaultRadius
}

// Validate enforces spec.md §7's "Invalid configuration" kind: radius >=
// arena inradius, capacity < 1. Config carries no vision aperture; an
// aperture outside (0,360] is rejected by particle.NewFOV instead. It
// returns a *Error (not a bare error) so callers can distinguish this kind
// specifically, per spec.md §7.
func (c Config) Validate() error {
	if (c.ArenaShape.Circle == nil) == (c.ArenaShape.Rectangle == nil) {
		return &Error{Reason: "exactly one arena shape (circle or rectangle) must be configured"}
	}
	if c.LeafCapacity < 1 {
		return &Error{Reason: fmt.Sprintf("leaf_capacity must be >= 1, got %d", c.LeafCapacity)}
	}
	if c.MaxPlacementRetries < 0 {
		return &Error{Reason: fmt.Sprintf("max_placement_retries must be >= 0, got %d", c.MaxPlacementRetries)}
	}
	if c.EpsilonRel < 0 {
		return &Error{Reason: fmt.Sprintf("epsilon_rel must be >= 0, got %v", c.EpsilonRel)}
	}
	if c.DefaultRadius <= 0 {
		return &Error{Reason: fmt.Sprintf("default_radius must be > 0, got %v", c.DefaultRadius)}
	}
	if c.RandomRadiusEnabled {
		if c.RandomRadiusRange.Min <= 0 || c.RandomRadiusRange.Max < c.RandomRadiusRange.Min {
			return &Error{Reason: fmt.Sprintf("invalid random_radius_range %+v", c.RandomRadiusRange)}
		}
	}

	inRadius, err := c.inRadius()
	if err != nil {
		return err
	}
	if c.maxRadius() >= inRadius {
		return &Error{Reason: fmt.Sprintf("max particle radius %v must be < arena inradius %v", c.maxRadius(), inRadius)}
	}
	return nil
}

func (c Config) inRadius() (float64, error) {
	switch {
	case c.ArenaShape.Circle != nil:
		if c.ArenaShape.Circle.Radius <= 0 {
			return 0, &Error{Reason: "circle arena radius must be > 0"}
		}
		return c.ArenaShape.Circle.Radius, nil
	case c.ArenaShape.Rectangle != nil:
		w, h := c.ArenaShape.Rectangle.Width, c.ArenaShape.Rectangle.Height
		if w <= 0 || h <= 0 {
			return 0, &Error{Reason: "rectangle arena width and height must be > 0"}
		}
		return math.Min(w, h) / 2, nil
	default:
		return 0, errNoArenaShape
	}
}

// derivedMaxDepth computes ceil(log2(arena_min_side/(2*max_radius))) per
// spec.md §6's default, bounding the smallest leaf side to >= 2*max_radius.
func (c Config) derivedMaxDepth() int {
	inRadius, err := c.inRadius()
	if err != nil || c.maxRadius() <= 0 {
		return 8
	}
	minSide := 2 * inRadius
	ratio := minSide / (2 * c.maxRadius())
	if ratio <= 1 {
		return 0
	}
	depth := int(math.Ceil(math.Log2(ratio)))
	if depth < 0 {
		depth = 0
	}
	return depth
}

// Build constructs the arena.Arena this config describes, applying
// defaults (MaxDepth derived when zero). Callers must call Validate first;
// Build does not re-validate.
func (c Config) Build() (arena.Arena, int, int) {
	maxDepth := c.MaxDepth
	if maxDepth == 0 {
		maxDepth = c.derivedMaxDepth()
	}
	capacity := c.LeafCapacity
	if capacity < 1 {
		capacity = 4
	}

	var a arena.Arena
	switch {
	case c.ArenaShape.Circle != nil:
		s := c.ArenaShape.Circle
		a = arena.Circle{Center: geometry.V2{X: s.CenterX, Y: s.CenterY}, Radius: s.Radius}
	case c.ArenaShape.Rectangle != nil:
		s := c.ArenaShape.Rectangle
		a = arena.Rectangle{Center: geometry.V2{X: s.CenterX, Y: s.CenterY}, Width: s.Width, Height: s.Height}
	}
	return a, capacity, maxDepth
}

// Epsilon returns the configured epsilon_rel, or geometry.DefaultEpsilonRel
// when unset.
func (c Config) Epsilon() float64 {
	if c.EpsilonRel > 0 {
		return c.EpsilonRel
	}
	return geometry.DefaultEpsilonRel
}

// Default returns a Config with spec.md §6's defaults applied on top of the
// given arena shape: leaf_capacity=4, default_radius=5,
// max_placement_retries=100, epsilon_rel=1e-9, random radius disabled.
func Default(shape ArenaShape) Config {
	return Config{
		ArenaShape:          shape,
		LeafCapacity:        4,
		DefaultRadius:       5,
		RandomRadiusEnabled: false,
		MaxPlacementRetries: 100,
		EpsilonRel:          geometry.DefaultEpsilonRel,
	}
}
