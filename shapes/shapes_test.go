package shapes

import (
	"testing"

	"ParticleField/geometry"
)

func TestCirclePredicates(t *testing.T) {
	eps := geometry.DefaultEpsilonRel
	a := Circle{Center: geometry.V2{X: 0, Y: 0}, Radius: 10}
	b := Circle{Center: geometry.V2{X: 20, Y: 0}, Radius: 10}
	if !a.Collides(b, eps) {
		t.Error("tangent circles should collide")
	}
	if a.Overlaps(b, eps) {
		t.Error("tangent circles should not strictly overlap")
	}

	c := Circle{Center: geometry.V2{X: 5, Y: 0}, Radius: 10}
	if !a.Overlaps(c, eps) {
		t.Error("expected strict overlap")
	}
}

func TestCircleConfines(t *testing.T) {
	eps := geometry.DefaultEpsilonRel
	arena := Circle{Center: geometry.V2{X: 0, Y: 0}, Radius: 100}
	inside := Circle{Center: geometry.V2{X: 50, Y: 0}, Radius: 10}
	if !arena.Confines(inside, eps) {
		t.Error("expected arena to confine inner disc")
	}
	tangent := Circle{Center: geometry.V2{X: 90, Y: 0}, Radius: 10}
	if !arena.Confines(tangent, eps) {
		t.Error("expected tangent disc to be confined")
	}
	outside := Circle{Center: geometry.V2{X: 95, Y: 0}, Radius: 10}
	if arena.Confines(outside, eps) {
		t.Error("expected disc crossing the boundary to not be confined")
	}
}

func TestRectangleConfinesAndOverlaps(t *testing.T) {
	eps := geometry.DefaultEpsilonRel
	rect := Rectangle{Center: geometry.V2{X: 0, Y: 0}, Width: 400, Height: 400}
	inside := Circle{Center: geometry.V2{X: 190, Y: 0}, Radius: 10}
	if !rect.Confines(inside, eps) {
		t.Error("expected disc inside rectangle to be confined")
	}
	outside := Circle{Center: geometry.V2{X: 195, Y: 0}, Radius: 10}
	if rect.Confines(outside, eps) {
		t.Error("expected disc crossing the rectangle boundary to not be confined")
	}
	if !rect.Overlaps(outside, eps) {
		t.Error("expected disc crossing the boundary to overlap the rectangle")
	}
}

func TestAABBIntersects(t *testing.T) {
	eps := geometry.DefaultEpsilonRel
	a := AABB{Center: geometry.V2{X: 0, Y: 0}, HalfWidth: 10, HalfHeight: 10}
	touching := AABB{Center: geometry.V2{X: 20, Y: 0}, HalfWidth: 10, HalfHeight: 10}
	if !a.IntersectsAABB(touching, eps) {
		t.Error("expected edge-touching boxes to intersect")
	}
	disjoint := AABB{Center: geometry.V2{X: 100, Y: 100}, HalfWidth: 10, HalfHeight: 10}
	if a.IntersectsAABB(disjoint, eps) {
		t.Error("expected disjoint boxes to not intersect")
	}
}

func TestAABBIntersectsCircle(t *testing.T) {
	eps := geometry.DefaultEpsilonRel
	box := AABB{Center: geometry.V2{X: 0, Y: 0}, HalfWidth: 10, HalfHeight: 10}
	if !box.IntersectsCircle(geometry.V2{X: 25, Y: 0}, 15, eps) {
		t.Error("expected circle reaching into the box to intersect")
	}
	if box.IntersectsCircle(geometry.V2{X: 50, Y: 0}, 15, eps) {
		t.Error("expected far circle to not intersect")
	}
}
