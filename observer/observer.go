// Package observer replaces the direct canvas.create_* calls scattered
// through the Python source's graphic.py/particle.py/zone.py with a small
// event interface: the core never draws anything, it only reports what
// happened.
package observer

import "ParticleField/geometry"

// GeometryObserver receives notifications of every geometric event the core
// produces. All methods must return quickly; the core calls them
// synchronously from within a tick.
type GeometryObserver interface {
	// DiscDrawn fires when a particle is first placed into the world.
	DiscDrawn(id uint64, center geometry.V2, radius float64)
	// DiscMoved fires once per tick a disc's center actually changes.
	DiscMoved(id uint64, from, to geometry.V2)
	// DiscRemoved fires when a particle leaves the world.
	DiscRemoved(id uint64)
	// QuadrantDrawn fires once for each of the four child quadrants created
	// when a leaf subdivides, carrying the child's center, half-extents and
	// depth. The root quadrant is never reported.
	QuadrantDrawn(bounds geometry.V2, halfWidth, halfHeight float64, depth int)
	// QueryHighlight reports a query's result set: the querying particle's
	// id and the ids it matched. No package in this module calls it;
	// vision.Query returns its hits without reporting them here.
	QueryHighlight(queryingID uint64, matchedIDs []uint64)
	// InvariantViolated fires when the core detects a broken invariant it
	// chose to report rather than panic on (see motion.ErrInvariantViolated).
	InvariantViolated(message string)
	// PlacementExhausted fires when random placement of a disc of the given
	// radius failed to find a non-overlapping spot within the configured
	// retry budget and was skipped (spec.md §4.5, §7's non-fatal
	// "Placement exhausted" kind).
	PlacementExhausted(radius float64, attempts int)
}

// NullObserver discards every event. It is the default observer for tests
// and for core package construction, so the event plumbing never forces a
// caller to wire up logging just to run a tick.
type NullObserver struct{}

func (NullObserver) DiscDrawn(uint64, geometry.V2, float64)                {}
func (NullObserver) DiscMoved(uint64, geometry.V2, geometry.V2)            {}
func (NullObserver) DiscRemoved(uint64)                                    {}
func (NullObserver) QuadrantDrawn(geometry.V2, float64, float64, int)      {}
func (NullObserver) QueryHighlight(uint64, []uint64)                       {}
func (NullObserver) InvariantViolated(string)                              {}
func (NullObserver) PlacementExhausted(float64, int)                       {}

var _ GeometryObserver = NullObserver{}
