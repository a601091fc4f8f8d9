package quadtree

import (
	"ParticleField/geometry"
	"ParticleField/observer"
	"ParticleField/particle"
	"ParticleField/shapes"
)

// InsertResult reports the outcome of a non-overlapping insertion attempt.
type InsertResult int

const (
	// Accepted means the disc was filed into the index.
	Accepted InsertResult = iota
	// Rejected means allow_overlap was false and an existing member
	// strictly overlapped the candidate disc; the index was not mutated.
	Rejected
)

// Index is the quadtree spatial index described in spec.md §4.1. It owns
// the tree of Quadrants; discs are referenced by particle.ID only (see
// particle.Table for the owning store).
type Index struct {
	root       *Quadrant
	capacity   int
	maxDepth   int
	epsilonRel float64
	observer   observer.GeometryObserver
}

// NewIndex builds an index whose root quadrant exactly covers bounds (I6).
// obs receives a QuadrantDrawn event per spec.md §6 every time a leaf
// subdivides into four children; a nil obs defaults to observer.NullObserver.
func NewIndex(bounds shapes.AABB, capacity, maxDepth int, epsilonRel float64, obs observer.GeometryObserver) *Index {
	if capacity < 1 {
		capacity = 1
	}
	if epsilonRel <= 0 {
		epsilonRel = geometry.DefaultEpsilonRel
	}
	if obs == nil {
		obs = observer.NullObserver{}
	}
	return &Index{
		root:       newLeaf(bounds, 0),
		capacity:   capacity,
		maxDepth:   maxDepth,
		epsilonRel: epsilonRel,
		observer:   obs,
	}
}

// Root returns the root quadrant, mainly for property-test introspection of
// I1/I2/P7.
func (idx *Index) Root() *Quadrant {
	return idx.root
}

// Insert files d into every leaf whose AABB intersects its closed disc,
// subdividing along the way. When allowOverlap is false, it first checks
// whether any current member of a candidate leaf strictly overlaps d; if
// so, nothing is mutated and Rejected is returned.
func (idx *Index) Insert(d Disc, allowOverlap bool) InsertResult {
	if !allowOverlap && idx.overlapsAny(d) {
		return Rejected
	}
	idx.insertInto(idx.root, d)
	return Accepted
}

func (idx *Index) overlapsAny(d Disc) bool {
	found := false
	idx.walkIntersecting(idx.root, d.Center, d.Radius, func(leaf *Quadrant) {
		if found {
			return
		}
		for _, other := range leaf.Members {
			if other.ID == d.ID {
				continue
			}
			if d.Circle().Overlaps(other.Circle(), idx.epsilonRel) {
				found = true
				return
			}
		}
	})
	return found
}

func (idx *Index) insertInto(node *Quadrant, d Disc) {
	if !node.Bounds.IntersectsCircle(d.Center, d.Radius, idx.epsilonRel) {
		return
	}
	if node.IsLeaf() {
		node.Members[d.ID] = d
		if len(node.Members) > idx.capacity && node.Depth < idx.maxDepth {
			node.subdivide(idx.epsilonRel, idx.observer)
		}
		return
	}
	for _, child := range node.Children {
		idx.insertInto(child, d)
	}
}

// Remove removes d from every leaf membership set it appears in. It does
// not un-subdivide (P7: subdivision is permanent).
func (idx *Index) Remove(d Disc) {
	idx.removeFrom(idx.root, d)
}

func (idx *Index) removeFrom(node *Quadrant, d Disc) {
	if !node.Bounds.IntersectsCircle(d.Center, d.Radius, idx.epsilonRel) {
		return
	}
	if node.IsLeaf() {
		delete(node.Members, d.ID)
		return
	}
	for _, child := range node.Children {
		idx.removeFrom(child, d)
	}
}

// walkIntersecting calls visit on every leaf whose AABB intersects the
// closed disc (center, radius).
func (idx *Index) walkIntersecting(node *Quadrant, center geometry.V2, radius float64, visit func(*Quadrant)) {
	if !node.Bounds.IntersectsCircle(center, radius, idx.epsilonRel) {
		return
	}
	if node.IsLeaf() {
		visit(node)
		return
	}
	for _, child := range node.Children {
		idx.walkIntersecting(child, center, radius, visit)
	}
}

// collect flattens the members of a set of visited leaves into a
// deduplicated slice of Discs, matching the teacher's Query, which returns
// flattened points rather than raw leaf references.
func collect(visit func(func(*Quadrant))) []Disc {
	seen := make(map[particle.ID]Disc)
	visit(func(leaf *Quadrant) {
		for id, d := range leaf.Members {
			seen[id] = d
		}
	})
	out := make([]Disc, 0, len(seen))
	for _, d := range seen {
		out = append(out, d)
	}
	return out
}

// QueryCircleMembers returns every distinct disc stored in a leaf whose
// AABB overlaps d's closed disc (this includes d itself, if present).
func (idx *Index) QueryCircleMembers(d Disc) []Disc {
	return collect(func(visit func(*Quadrant)) {
		idx.walkIntersecting(idx.root, d.Center, d.Radius, visit)
	})
}

// QuerySweptCorridor returns every distinct disc stored in a leaf whose
// AABB intersects the bounding box of segment ab grown by r on every side,
// which is the exact bounding box of a disc of radius r swept along ab.
// For a diagonal ab this box does not cover the square-cut corners of the
// rectangle of length |b-a|+2r and half-width r around ab, so a leaf that
// meets only those corners is not visited. The motion resolver applies the
// exact geometric tests to whatever candidates come back.
func (idx *Index) QuerySweptCorridor(a, b geometry.V2, r float64) []Disc {
	box := corridorAABB(a, b, r)
	return collect(func(visit func(*Quadrant)) {
		idx.walkIntersectingAABB(idx.root, box, visit)
	})
}

func corridorAABB(a, b geometry.V2, r float64) shapes.AABB {
	minX, maxX := minMax(a.X, b.X)
	minY, maxY := minMax(a.Y, b.Y)
	return shapes.AABB{
		Center:     geometry.V2{X: (minX + maxX) / 2, Y: (minY + maxY) / 2},
		HalfWidth:  (maxX-minX)/2 + r,
		HalfHeight: (maxY-minY)/2 + r,
	}
}

func minMax(x, y float64) (float64, float64) {
	if x < y {
		return x, y
	}
	return y, x
}

func (idx *Index) walkIntersectingAABB(node *Quadrant, box shapes.AABB, visit func(*Quadrant)) {
	if !node.Bounds.IntersectsAABB(box, idx.epsilonRel) {
		return
	}
	if node.IsLeaf() {
		visit(node)
		return
	}
	for _, child := range node.Children {
		idx.walkIntersectingAABB(child, box, visit)
	}
}
