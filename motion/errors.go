package motion

import "errors"

// ErrParticleNotFound is returned by Advance when the requested id is not
// present in the particle table.
var ErrParticleNotFound = errors.New("motion: particle not found")

// ErrInvariantViolated is returned by Advance when the boundary clip cannot
// restore confinement within the arena (spec.md §7, "Invariant violated"
// kind). The tick is aborted and the particle's position is left untouched;
// the same diagnostic is also delivered to the Resolver's Observer via
// InvariantViolated.
var ErrInvariantViolated = errors.New("motion: invariant violated")
