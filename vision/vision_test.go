package vision

import (
	"testing"

	"ParticleField/geometry"
	"ParticleField/particle"
	"ParticleField/quadtree"
	"ParticleField/shapes"
)

func TestQuery_S6_VisibleSetMatchesCone(t *testing.T) {
	// S6: disc at (0,0) facing 0 with fov=(range=100, aperture=90). Targets
	// at (50,0), (30,40), (-50,0), (120,0). Expected visible = {(50,0),
	// (30,40)}; (-50,0) is behind, (120,0) is beyond range.
	bounds := shapes.AABB{Center: geometry.V2{}, HalfWidth: 200, HalfHeight: 200}
	idx := quadtree.NewIndex(bounds, 4, 8, geometry.DefaultEpsilonRel, nil)
	table := particle.NewTable()

	observer := particle.Particle{
		Center:      geometry.V2{X: 0, Y: 0},
		Radius:      1,
		Orientation: 0,
		FOV:         &particle.FOV{Range: 100, Aperture: 90},
	}
	observer.ID = table.Add(observer)
	idx.Insert(quadtree.Disc{ID: observer.ID, Center: observer.Center, Radius: observer.Radius}, true)

	positions := []geometry.V2{
		{X: 50, Y: 0},
		{X: 30, Y: 40},
		{X: -50, Y: 0},
		{X: 120, Y: 0},
	}
	ids := make(map[geometry.V2]particle.ID)
	for _, pos := range positions {
		p := particle.Particle{Center: pos, Radius: 10}
		id := table.Add(p)
		ids[pos] = id
		idx.Insert(quadtree.Disc{ID: id, Center: pos, Radius: 10}, true)
	}

	hits := Query(idx, table, observer, geometry.DefaultEpsilonRel)

	visible := make(map[particle.ID]bool)
	for _, h := range hits {
		visible[h.Target.ID] = true
	}

	if !visible[ids[positions[0]]] {
		t.Error("expected (50,0) to be visible")
	}
	if !visible[ids[positions[1]]] {
		t.Error("expected (30,40) to be visible")
	}
	if visible[ids[positions[2]]] {
		t.Error("expected (-50,0) to be hidden (behind)")
	}
	if visible[ids[positions[3]]] {
		t.Error("expected (120,0) to be hidden (beyond range)")
	}
}

func TestQuery_NoFOVReturnsNil(t *testing.T) {
	bounds := shapes.AABB{Center: geometry.V2{}, HalfWidth: 100, HalfHeight: 100}
	idx := quadtree.NewIndex(bounds, 4, 8, geometry.DefaultEpsilonRel, nil)
	table := particle.NewTable()
	p := particle.Particle{Center: geometry.V2{}, Radius: 1}
	p.ID = table.Add(p)

	if got := Query(idx, table, p, geometry.DefaultEpsilonRel); got != nil {
		t.Errorf("expected nil for a particle with no FOV, got %v", got)
	}
}

func TestQuery_ResultsSortedDescendingBySurfaceDistance(t *testing.T) {
	bounds := shapes.AABB{Center: geometry.V2{}, HalfWidth: 200, HalfHeight: 200}
	idx := quadtree.NewIndex(bounds, 4, 8, geometry.DefaultEpsilonRel, nil)
	table := particle.NewTable()

	observer := particle.Particle{
		Center: geometry.V2{},
		Radius: 1,
		FOV:    &particle.FOV{Range: 100, Aperture: 180},
	}
	observer.ID = table.Add(observer)
	idx.Insert(quadtree.Disc{ID: observer.ID, Center: observer.Center, Radius: observer.Radius}, true)

	near := particle.Particle{Center: geometry.V2{X: 20, Y: 0}, Radius: 1}
	far := particle.Particle{Center: geometry.V2{X: 60, Y: 0}, Radius: 1}
	nearID := table.Add(near)
	farID := table.Add(far)
	idx.Insert(quadtree.Disc{ID: nearID, Center: near.Center, Radius: 1}, true)
	idx.Insert(quadtree.Disc{ID: farID, Center: far.Center, Radius: 1}, true)

	hits := Query(idx, table, observer, geometry.DefaultEpsilonRel)
	if len(hits) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(hits))
	}
	if hits[0].Target.ID != farID || hits[1].Target.ID != nearID {
		t.Errorf("expected descending order by surface distance, got %+v", hits)
	}
}
