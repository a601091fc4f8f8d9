// Package quadtree implements the spatial index: quadrants subdivide by
// capacity, a disc is registered in every leaf quadrant it overlaps, and an
// internal node never holds members directly. It generalizes the teacher's
// single-point quadtree/quadtree.go (one owner leaf per point) to the
// multi-membership model spec.md requires for discs with radius.
package quadtree

import (
	"ParticleField/geometry"
	"ParticleField/observer"
	"ParticleField/particle"
	"ParticleField/shapes"
)

// Disc is the lightweight geometric descriptor the index works with: just
// enough to test membership and overlap. The richer particle.Particle
// (orientation, FOV) lives in particle.Table, not here.
type Disc struct {
	ID     particle.ID
	Center geometry.V2
	Radius float64
}

// Circle returns the shapes.Circle for this disc.
func (d Disc) Circle() shapes.Circle {
	return shapes.Circle{Center: d.Center, Radius: d.Radius}
}

// Quadrant is one rectangular region of the index. Exactly one of Children
// or Members is populated (I1): a leaf holds Members, an internal node
// holds Children and an empty Members.
type Quadrant struct {
	Bounds   shapes.AABB
	Depth    int
	Children [4]*Quadrant // order: NW, NE, SW, SE
	Members  map[particle.ID]Disc
}

// IsLeaf reports whether this quadrant is a leaf (I1: has a member set, no
// children).
func (q *Quadrant) IsLeaf() bool {
	return q.Children[0] == nil
}

// newLeaf builds a leaf quadrant covering bounds at depth.
func newLeaf(bounds shapes.AABB, depth int) *Quadrant {
	return &Quadrant{
		Bounds:  bounds,
		Depth:   depth,
		Members: make(map[particle.ID]Disc),
	}
}

// childBounds returns the four child AABBs in NW, NE, SW, SE order. North
// is +Y, matching the teacher's latitude convention in
// quadtree/quadtree.go's subdivide.
func childBounds(b shapes.AABB) [4]shapes.AABB {
	hw := b.HalfWidth / 2
	hh := b.HalfHeight / 2
	cx, cy := b.Center.X, b.Center.Y
	return [4]shapes.AABB{
		{Center: geometry.V2{X: cx - hw, Y: cy + hh}, HalfWidth: hw, HalfHeight: hh}, // NW
		{Center: geometry.V2{X: cx + hw, Y: cy + hh}, HalfWidth: hw, HalfHeight: hh}, // NE
		{Center: geometry.V2{X: cx - hw, Y: cy - hh}, HalfWidth: hw, HalfHeight: hh}, // SW
		{Center: geometry.V2{X: cx + hw, Y: cy - hh}, HalfWidth: hw, HalfHeight: hh}, // SE
	}
}

// subdivide replaces a leaf with four child leaves and re-files its
// existing members into whichever children they overlap (I3), in NW, NE,
// SW, SE order. obs receives a QuadrantDrawn event for each new child leaf,
// per spec.md §6.
func (q *Quadrant) subdivide(epsilonRel float64, obs observer.GeometryObserver) {
	bounds := childBounds(q.Bounds)
	for i, b := range bounds {
		q.Children[i] = newLeaf(b, q.Depth+1)
		obs.QuadrantDrawn(b.Center, b.HalfWidth, b.HalfHeight, q.Depth+1)
	}
	members := q.Members
	q.Members = nil
	for _, d := range members {
		for _, child := range q.Children {
			if child.Bounds.IntersectsCircle(d.Center, d.Radius, epsilonRel) {
				child.Members[d.ID] = d
			}
		}
	}
}
