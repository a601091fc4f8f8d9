// Package geometry provides the double-precision 2D primitives the rest of
// the simulation is built on: vectors, segments, and the tolerance policy
// shared by every higher-level shape and algorithm.
package geometry

import "math"

// DefaultEpsilonRel is the relative tolerance used when no epsilon is
// supplied explicitly, matching config.Config's epsilon_rel default.
const DefaultEpsilonRel = 1e-9

// NearlyEqual reports whether a and b are equal within epsRel, applied as
// |a-b| <= epsRel * max(|a|, |b|, 1). This is the single epsilon policy
// mandated in place of the mixed absolute/relative tolerances of the
// original implementation.
func NearlyEqual(a, b, epsRel float64) bool {
	diff := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))
	scale = math.Max(scale, 1)
	return diff <= epsRel*scale
}

// LessOrNearlyEqual reports a < b or a is nearly equal to b.
func LessOrNearlyEqual(a, b, epsRel float64) bool {
	return a < b || NearlyEqual(a, b, epsRel)
}

// GreaterOrNearlyEqual reports a > b or a is nearly equal to b.
func GreaterOrNearlyEqual(a, b, epsRel float64) bool {
	return a > b || NearlyEqual(a, b, epsRel)
}
