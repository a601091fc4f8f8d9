package quadtree

import (
	"ParticleField/geometry"
	"ParticleField/shapes"
)

// QuerySector returns every distinct disc stored in a leaf whose AABB could
// contain any point of the oriented circular sector centered at center,
// facing facingDegrees, with the given range and aperture (degrees, in
// (0,360]). Per spec.md §4.1, a leaf qualifies if any of:
//   - it contains center;
//   - it contains either boundary ray's endpoint;
//   - either boundary-ray segment intersects any of its four edges;
//   - any of its corners has angle-from-facing <= aperture/2 and squared
//     distance <= range^2.
func (idx *Index) QuerySector(center geometry.V2, facingDegrees, rng, aperture float64) []Disc {
	facing := geometry.FromAngle(facingDegrees, rng)
	left := facing.Rotate(aperture / 2)
	right := facing.Rotate(-aperture / 2)
	leftEndpoint := center.Add(left)
	rightEndpoint := center.Add(right)
	leftRay := geometry.NewSegment(center, leftEndpoint)
	rightRay := geometry.NewSegment(center, rightEndpoint)

	// Safe over-approximating prefilter: the whole sector lies within the
	// circle of radius rng centered at center, so any quadrant whose AABB
	// misses that circle's bounding box can be pruned outright.
	bbox := shapes.AABB{Center: center, HalfWidth: rng, HalfHeight: rng}

	rangeSq := rng * rng
	halfAperture := aperture / 2

	qualifies := func(q *Quadrant) bool {
		b := q.Bounds
		if b.ContainsPoint(center, idx.epsilonRel) {
			return true
		}
		if b.ContainsPoint(leftEndpoint, idx.epsilonRel) || b.ContainsPoint(rightEndpoint, idx.epsilonRel) {
			return true
		}
		corners := [4]geometry.V2{
			{X: b.MinX(), Y: b.MaxY()}, // NW
			{X: b.MaxX(), Y: b.MaxY()}, // NE
			{X: b.MinX(), Y: b.MinY()}, // SW
			{X: b.MaxX(), Y: b.MinY()}, // SE
		}
		edges := [4]geometry.Segment{
			geometry.NewSegment(corners[0], corners[1]), // north
			geometry.NewSegment(corners[2], corners[3]), // south
			geometry.NewSegment(corners[0], corners[2]), // west
			geometry.NewSegment(corners[1], corners[3]), // east
		}
		for _, edge := range edges {
			if leftRay.Intersects(edge) || rightRay.Intersects(edge) {
				return true
			}
		}
		for _, corner := range corners {
			toCorner := corner.Sub(center)
			angle := geometry.AngleBetween(facing, toCorner)
			if geometry.LessOrNearlyEqual(angle, halfAperture, idx.epsilonRel) &&
				geometry.LessOrNearlyEqual(toCorner.LengthSquared(), rangeSq, idx.epsilonRel) {
				return true
			}
		}
		return false
	}

	var leaves []*Quadrant
	var walk func(node *Quadrant)
	walk = func(node *Quadrant) {
		if !node.Bounds.IntersectsAABB(bbox, idx.epsilonRel) {
			return
		}
		if node.IsLeaf() {
			if qualifies(node) {
				leaves = append(leaves, node)
			}
			return
		}
		for _, child := range node.Children {
			walk(child)
		}
	}
	walk(idx.root)

	return collect(func(visit func(*Quadrant)) {
		for _, leaf := range leaves {
			visit(leaf)
		}
	})
}
