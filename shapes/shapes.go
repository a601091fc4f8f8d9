// Package shapes implements the AABB and circle hit tests used both for the
// arena boundary and for the quadtree's quadrant membership tests. The
// source's Circle/Rectangle multiple-inheritance hierarchy (Graphic2D +
// Collider2D) collapses here to two plain structs with the same predicate
// methods; "drawable" is not a shape capability in this core (see
// observer.GeometryObserver).
package shapes

import (
	"math"

	"ParticleField/geometry"
)

// AABB is an axis-aligned bounding box given by its center and half-extents.
type AABB struct {
	Center     geometry.V2
	HalfWidth  float64
	HalfHeight float64
}

// MinX, MaxX, MinY, MaxY return the box's edges.
func (b AABB) MinX() float64 { return b.Center.X - b.HalfWidth }
func (b AABB) MaxX() float64 { return b.Center.X + b.HalfWidth }
func (b AABB) MinY() float64 { return b.Center.Y - b.HalfHeight }
func (b AABB) MaxY() float64 { return b.Center.Y + b.HalfHeight }

// ContainsPoint reports whether p lies within the closed box (within eps).
func (b AABB) ContainsPoint(p geometry.V2, epsRel float64) bool {
	return geometry.GreaterOrNearlyEqual(p.X, b.MinX(), epsRel) &&
		geometry.LessOrNearlyEqual(p.X, b.MaxX(), epsRel) &&
		geometry.GreaterOrNearlyEqual(p.Y, b.MinY(), epsRel) &&
		geometry.LessOrNearlyEqual(p.Y, b.MaxY(), epsRel)
}

// IntersectsAABB reports whether b and other overlap (closed sets, so
// edge-touching boxes intersect).
func (b AABB) IntersectsAABB(other AABB, epsRel float64) bool {
	separated := func(lo, hi float64) bool {
		return lo > hi && !geometry.NearlyEqual(lo, hi, epsRel)
	}
	if separated(other.MinX(), b.MaxX()) || separated(b.MinX(), other.MaxX()) {
		return false
	}
	if separated(other.MinY(), b.MaxY()) || separated(b.MinY(), other.MaxY()) {
		return false
	}
	return true
}

// IntersectsCircle reports whether the closed disc (center, radius)
// overlaps b, including tangency.
func (b AABB) IntersectsCircle(center geometry.V2, radius, epsRel float64) bool {
	closestX := clamp(center.X, b.MinX(), b.MaxX())
	closestY := clamp(center.Y, b.MinY(), b.MaxY())
	dx := center.X - closestX
	dy := center.Y - closestY
	distSq := dx*dx + dy*dy
	return geometry.LessOrNearlyEqual(distSq, radius*radius, epsRel)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Circle is a disc-shaped region, used as both the arena boundary variant
// and a disc-vs-disc collider.
type Circle struct {
	Center geometry.V2
	Radius float64
}

// ContainsPoint reports whether p lies within the closed disc.
func (c Circle) ContainsPoint(p geometry.V2, epsRel float64) bool {
	distSq := c.Center.DistanceSquared(p)
	return geometry.LessOrNearlyEqual(distSq, c.Radius*c.Radius, epsRel)
}

// Collides reports whether c and other touch or overlap (closed test).
func (c Circle) Collides(other Circle, epsRel float64) bool {
	distSq := c.Center.DistanceSquared(other.Center)
	threshold := (c.Radius + other.Radius) * (c.Radius + other.Radius)
	return geometry.LessOrNearlyEqual(distSq, threshold, epsRel)
}

// Overlaps reports whether c and other strictly overlap (tangency excluded).
func (c Circle) Overlaps(other Circle, epsRel float64) bool {
	distSq := c.Center.DistanceSquared(other.Center)
	threshold := (c.Radius + other.Radius) * (c.Radius + other.Radius)
	return distSq < threshold && !geometry.NearlyEqual(distSq, threshold, epsRel)
}

// Confines reports whether other lies entirely within c (within eps).
func (c Circle) Confines(other Circle, epsRel float64) bool {
	distSq := c.Center.DistanceSquared(other.Center)
	diff := c.Radius - other.Radius
	threshold := diff * diff
	if diff < 0 {
		return false
	}
	return geometry.LessOrNearlyEqual(distSq, threshold, epsRel)
}

// DistanceFromCircle returns the surface-to-surface distance between c and
// other (negative when overlapping).
func (c Circle) DistanceFromCircle(other Circle) float64 {
	return c.Center.Distance(other.Center) - c.Radius - other.Radius
}

// AABB returns the bounding box of the disc.
func (c Circle) AABB() AABB {
	return AABB{Center: c.Center, HalfWidth: c.Radius, HalfHeight: c.Radius}
}

// Rectangle is an axis-aligned rectangular region, used as the other arena
// boundary variant.
type Rectangle struct {
	Center        geometry.V2
	Width, Height float64
}

// AABB returns the rectangle's own bounding box.
func (r Rectangle) AABB() AABB {
	return AABB{Center: r.Center, HalfWidth: r.Width / 2, HalfHeight: r.Height / 2}
}

// ContainsPoint reports whether p lies within the closed rectangle.
func (r Rectangle) ContainsPoint(p geometry.V2, epsRel float64) bool {
	return r.AABB().ContainsPoint(p, epsRel)
}

// Collides reports whether circle touches or overlaps r.
func (r Rectangle) Collides(circle Circle, epsRel float64) bool {
	return r.AABB().IntersectsCircle(circle.Center, circle.Radius, epsRel)
}

// Overlaps reports whether circle strictly overlaps r (tangency excluded).
func (r Rectangle) Overlaps(circle Circle, epsRel float64) bool {
	a := r.AABB()
	closestX := clamp(circle.Center.X, a.MinX(), a.MaxX())
	closestY := clamp(circle.Center.Y, a.MinY(), a.MaxY())
	dx := circle.Center.X - closestX
	dy := circle.Center.Y - closestY
	distSq := dx*dx + dy*dy
	return distSq < circle.Radius*circle.Radius && !geometry.NearlyEqual(distSq, circle.Radius*circle.Radius, epsRel)
}

// Confines reports whether circle lies entirely within r (within eps).
func (r Rectangle) Confines(circle Circle, epsRel float64) bool {
	a := r.AABB()
	left := geometry.GreaterOrNearlyEqual(circle.Center.X-circle.Radius, a.MinX(), epsRel)
	right := geometry.LessOrNearlyEqual(circle.Center.X+circle.Radius, a.MaxX(), epsRel)
	top := geometry.GreaterOrNearlyEqual(circle.Center.Y-circle.Radius, a.MinY(), epsRel)
	bottom := geometry.LessOrNearlyEqual(circle.Center.Y+circle.Radius, a.MaxY(), epsRel)
	return left && right && top && bottom
}

// InRadius returns the largest circle radius that still fits entirely
// inside the rectangle (half of the smaller side).
func (r Rectangle) InRadius() float64 {
	return math.Min(r.Width, r.Height) / 2
}
