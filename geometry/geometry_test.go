package geometry

import (
	"math"
	"testing"
)

func TestVectorBasics(t *testing.T) {
	a := V2{3, 4}
	if got := a.Length(); math.Abs(got-5) > 1e-9 {
		t.Errorf("Length() = %v, want 5", got)
	}
	b := a.Normalize()
	if math.Abs(b.Length()-1) > 1e-9 {
		t.Errorf("Normalize() length = %v, want 1", b.Length())
	}
	zero := V2{}.Normalize()
	if zero != (V2{}) {
		t.Errorf("Normalize() of zero vector = %v, want zero", zero)
	}
}

func TestAngleBetween(t *testing.T) {
	cases := []struct {
		a, b V2
		want float64
	}{
		{V2{1, 0}, V2{1, 0}, 0},
		{V2{1, 0}, V2{0, 1}, 90},
		{V2{1, 0}, V2{-1, 0}, 180},
		{V2{1, 0}, V2{0, -1}, 90},
	}
	for _, c := range cases {
		got := AngleBetween(c.a, c.b)
		if math.Abs(got-c.want) > 1e-6 {
			t.Errorf("AngleBetween(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestFromAngleRoundTrip(t *testing.T) {
	v := FromAngle(30, 10)
	if math.Abs(v.Length()-10) > 1e-9 {
		t.Errorf("FromAngle length = %v, want 10", v.Length())
	}
}

func TestSegmentDistanceFromPoint(t *testing.T) {
	s := NewSegment(V2{0, 0}, V2{10, 0})
	if got := s.DistanceFromPoint(V2{5, 5}); math.Abs(got-5) > 1e-9 {
		t.Errorf("DistanceFromPoint = %v, want 5", got)
	}
	// Beyond the B endpoint: distance is to B, not to the infinite line.
	if got := s.DistanceFromPoint(V2{15, 0}); math.Abs(got-5) > 1e-9 {
		t.Errorf("DistanceFromPoint beyond endpoint = %v, want 5", got)
	}
}

func TestSegmentIntersection(t *testing.T) {
	s1 := NewSegment(V2{0, 0}, V2{10, 10})
	s2 := NewSegment(V2{0, 10}, V2{10, 0})
	p, ok := s1.IntersectionPoint(s2)
	if !ok {
		t.Fatal("expected intersection")
	}
	if math.Abs(p.X-5) > 1e-6 || math.Abs(p.Y-5) > 1e-6 {
		t.Errorf("intersection point = %v, want (5,5)", p)
	}

	parallel := NewSegment(V2{0, 1}, V2{10, 1})
	other := NewSegment(V2{0, 2}, V2{10, 2})
	if parallel.Intersects(other) {
		t.Error("parallel segments should not intersect")
	}

	disjoint := NewSegment(V2{20, 20}, V2{30, 30})
	if s1.Intersects(disjoint) {
		t.Error("disjoint segments should not intersect")
	}
}

func TestSegmentXYAt(t *testing.T) {
	s := NewSegment(V2{0, 0}, V2{10, 20})
	if got := s.YAt(5); math.Abs(got-10) > 1e-9 {
		t.Errorf("YAt(5) = %v, want 10", got)
	}
	if got := s.XAt(10); math.Abs(got-5) > 1e-9 {
		t.Errorf("XAt(10) = %v, want 5", got)
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-12, DefaultEpsilonRel) {
		t.Error("expected nearly-equal values to compare equal")
	}
	if NearlyEqual(1.0, 1.1, DefaultEpsilonRel) {
		t.Error("expected distinct values to compare unequal")
	}
}
