// Package particle defines the disc-shaped agents the simulation moves
// around, and the table that owns them. Per the ownership model, the
// quadtree index stores only stable identifiers (ID); the Table is the
// sole place a Particle's full state lives, mirroring the id -> object
// lookup map pattern used alongside a quadtree storing bare identifiers in
// arx-os/arxos's spatial index.
package particle

import (
	"fmt"

	"ParticleField/geometry"
)

// ID is the stable integer handle a particle keeps for its lifetime, and
// the only thing the quadtree index ever stores about it.
type ID uint64

// FOV describes an optional vision cone: a forward range and a full
// aperture angle in degrees, in (0,360].
type FOV struct {
	Range    float64
	Aperture float64
}

// Error is the "Invalid configuration" kind from spec.md §7, scoped to FOV
// construction: an aperture outside (0,360] fails immediately rather than
// silently producing a cone that can never see anything.
type Error struct {
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("particle: invalid configuration: %s", e.Reason)
}

// NewFOV validates and builds a vision cone: visionRange must be > 0 and
// aperture must lie in (0,360], per spec.md §7. Callers that build FOV
// literals directly (e.g. in tests) bypass this check; world construction
// and any config-driven FOV assignment should go through NewFOV instead.
func NewFOV(visionRange, aperture float64) (*FOV, error) {
	if visionRange <= 0 {
		return nil, &Error{Reason: fmt.Sprintf("fov range must be > 0, got %v", visionRange)}
	}
	if aperture <= 0 || aperture > 360 {
		return nil, &Error{Reason: fmt.Sprintf("fov aperture must be in (0,360], got %v", aperture)}
	}
	return &FOV{Range: visionRange, Aperture: aperture}, nil
}

// Particle is a disc with an orientation and an optional vision cone. It
// owns nothing but its own identity and geometry.
type Particle struct {
	ID          ID
	Center      geometry.V2
	Radius      float64
	Orientation float64 // degrees, [0,360)
	FOV         *FOV    // nil when the particle has no vision cone
}

// Facing returns the unit vector the particle currently faces.
func (p Particle) Facing() geometry.V2 {
	return geometry.FromAngle(p.Orientation, 1)
}

// Table owns the authoritative state of every particle, keyed by ID. The
// quadtree index is kept consistent with Table by whoever mutates a
// particle's center (the motion resolver) or removes it.
type Table struct {
	nextID ID
	byID   map[ID]Particle
}

// NewTable creates an empty particle table.
func NewTable() *Table {
	return &Table{byID: make(map[ID]Particle)}
}

// Add assigns a new ID to p and stores it, returning the assigned ID.
func (t *Table) Add(p Particle) ID {
	t.nextID++
	p.ID = t.nextID
	t.byID[p.ID] = p
	return p.ID
}

// Get returns the particle with the given id.
func (t *Table) Get(id ID) (Particle, bool) {
	p, ok := t.byID[id]
	return p, ok
}

// Set overwrites the stored state for an existing id.
func (t *Table) Set(p Particle) {
	t.byID[p.ID] = p
}

// Delete removes a particle from the table.
func (t *Table) Delete(id ID) {
	delete(t.byID, id)
}

// Count returns the number of particles in the table.
func (t *Table) Count() int {
	return len(t.byID)
}

// All returns every particle currently in the table. The order is
// unspecified.
func (t *Table) All() []Particle {
	out := make([]Particle, 0, len(t.byID))
	for _, p := range t.byID {
		out = append(out, p)
	}
	return out
}
