// Package arena implements the outer boundary shape (circular or
// rectangular) that every particle must stay within: containment tests,
// boundary-clipping a traversal segment, and interior point sampling. The
// source's Shape2D hierarchy collapses per spec.md §9 into two concrete
// types behind one Arena interface, rather than a class hierarchy.
package arena

import (
	"math"

	"ParticleField/geometry"
	"ParticleField/randomsource"
	"ParticleField/shapes"
)

// Arena is the bounded region every particle must stay within.
type Arena interface {
	// AABB returns the arena's own bounding box (I6: the index root must
	// equal this box).
	AABB() shapes.AABB
	// InRadius returns the largest disc radius that can ever fit inside
	// the arena. (config.Validate computes the same bound from the config
	// fields itself and does not call this method.)
	InRadius() float64
	// Confines reports whether circle lies entirely within the arena,
	// within epsilon.
	Confines(circle shapes.Circle, epsilonRel float64) bool
	// ClipTraversal computes the latest point along from->to at which a
	// disc of the given radius remains just inside the arena.
	ClipTraversal(radius float64, from, to geometry.V2, epsilonRel float64) geometry.V2
	// RandomInteriorPoint samples a point such that a disc of the given
	// radius placed there satisfies Confines.
	RandomInteriorPoint(radius float64, src randomsource.Source) geometry.V2
}

// Circle is a circular arena of radius R centered at Center.
type Circle struct {
	Center geometry.V2
	Radius float64
}

// AABB returns the square bounding box (2R x 2R) per I6.
func (c Circle) AABB() shapes.AABB {
	return shapes.AABB{Center: c.Center, HalfWidth: c.Radius, HalfHeight: c.Radius}
}

// InRadius returns the arena's own radius.
func (c Circle) InRadius() float64 {
	return c.Radius
}

// Confines reports whether circle lies entirely within the arena.
func (c Circle) Confines(circle shapes.Circle, epsilonRel float64) bool {
	boundary := shapes.Circle{Center: c.Center, Radius: c.Radius}
	return boundary.Confines(circle, epsilonRel)
}

// ClipTraversal computes the tangent point on the circle of radius
// Radius-radius, choosing the intersection closer to "to", per spec.md
// §4.2.
func (c Circle) ClipTraversal(radius float64, from, to geometry.V2, epsilonRel float64) geometry.V2 {
	effectiveRadius := c.Radius - radius
	d := to.Sub(from)
	f := from.Sub(c.Center)

	a := d.LengthSquared()
	if a == 0 {
		return from
	}
	b := 2 * f.Dot(d)
	cc := f.LengthSquared() - effectiveRadius*effectiveRadius
	discriminant := b*b - 4*a*cc
	if discriminant < 0 {
		// Numerically, the segment should always cross the inner circle
		// when confines() fails; clamp to the nearest point on it.
		dir := from.Sub(c.Center).Normalize()
		return c.Center.Add(dir.Scale(effectiveRadius))
	}
	sqrtDisc := math.Sqrt(discriminant)
	t1 := (-b - sqrtDisc) / (2 * a)
	t2 := (-b + sqrtDisc) / (2 * a)
	p1 := from.Add(d.Scale(t1))
	p2 := from.Add(d.Scale(t2))
	if p1.DistanceSquared(to) <= p2.DistanceSquared(to) {
		return p1
	}
	return p2
}

// RandomInteriorPoint samples x uniformly in [cx-(R-r), cx+(R-r)], then y
// uniformly in the chord at that x, per spec.md §4.2. This is not uniform
// over the disc's area, matching the reference implementation.
func (c Circle) RandomInteriorPoint(radius float64, src randomsource.Source) geometry.V2 {
	effectiveRadius := c.Radius - radius
	x := randomsource.Range(src, c.Center.X-effectiveRadius, c.Center.X+effectiveRadius)
	chordHalf := math.Sqrt(math.Max(0, effectiveRadius*effectiveRadius-(x-c.Center.X)*(x-c.Center.X)))
	y := randomsource.Range(src, c.Center.Y-chordHalf, c.Center.Y+chordHalf)
	return geometry.V2{X: x, Y: y}
}

// Rectangle is a rectangular arena of the given width and height centered
// at Center.
type Rectangle struct {
	Center        geometry.V2
	Width, Height float64
}

// AABB returns the rectangle's own bounding box.
func (r Rectangle) AABB() shapes.AABB {
	return shapes.AABB{Center: r.Center, HalfWidth: r.Width / 2, HalfHeight: r.Height / 2}
}

// InRadius returns half of the rectangle's smaller side.
func (r Rectangle) InRadius() float64 {
	return math.Min(r.Width, r.Height) / 2
}

// Confines reports whether circle lies entirely within the arena.
func (r Rectangle) Confines(circle shapes.Circle, epsilonRel float64) bool {
	boundary := shapes.Rectangle{Center: r.Center, Width: r.Width, Height: r.Height}
	return boundary.Confines(circle, epsilonRel)
}

// ClipTraversal finds which axis-aligned border the traversal segment first
// crosses (on the inset boundary a disc center must stay within), resolving
// the corner case by picking whichever violated border is closer to the
// current (pre-move) center, per spec.md §4.2 and §9's resolved open
// question.
func (r Rectangle) ClipTraversal(radius float64, from, to geometry.V2, epsilonRel float64) geometry.V2 {
	insetMinX := r.Center.X - r.Width/2 + radius
	insetMaxX := r.Center.X + r.Width/2 - radius
	insetMinY := r.Center.Y - r.Height/2 + radius
	insetMaxY := r.Center.Y + r.Height/2 - radius

	type border struct {
		name string
		dist float64
	}
	var violated []border
	if to.X < insetMinX && !geometry.NearlyEqual(to.X, insetMinX, epsilonRel) {
		violated = append(violated, border{"left", math.Abs(from.X - insetMinX)})
	}
	if to.X > insetMaxX && !geometry.NearlyEqual(to.X, insetMaxX, epsilonRel) {
		violated = append(violated, border{"right", math.Abs(from.X - insetMaxX)})
	}
	if to.Y < insetMinY && !geometry.NearlyEqual(to.Y, insetMinY, epsilonRel) {
		violated = append(violated, border{"bottom", math.Abs(from.Y - insetMinY)})
	}
	if to.Y > insetMaxY && !geometry.NearlyEqual(to.Y, insetMaxY, epsilonRel) {
		violated = append(violated, border{"top", math.Abs(from.Y - insetMaxY)})
	}
	if len(violated) == 0 {
		return to
	}
	nearest := violated[0]
	for _, v := range violated[1:] {
		if v.dist < nearest.dist {
			nearest = v
		}
	}

	seg := geometry.NewSegment(from, to)
	switch nearest.name {
	case "left":
		return geometry.V2{X: insetMinX, Y: seg.YAt(insetMinX)}
	case "right":
		return geometry.V2{X: insetMaxX, Y: seg.YAt(insetMaxX)}
	case "bottom":
		return geometry.V2{X: seg.XAt(insetMinY), Y: insetMinY}
	default: // "top"
		return geometry.V2{X: seg.XAt(insetMaxY), Y: insetMaxY}
	}
}

// RandomInteriorPoint samples uniformly in (W-2r)x(H-2r) centered on the
// arena's center, per spec.md §4.2.
func (r Rectangle) RandomInteriorPoint(radius float64, src randomsource.Source) geometry.V2 {
	x := randomsource.Range(src, r.Center.X-(r.Width/2-radius), r.Center.X+(r.Width/2-radius))
	y := randomsource.Range(src, r.Center.Y-(r.Height/2-radius), r.Center.Y+(r.Height/2-radius))
	return geometry.V2{X: x, Y: y}
}
