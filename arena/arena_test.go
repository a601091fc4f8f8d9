package arena

import (
	"math"
	"testing"

	"ParticleField/geometry"
	"ParticleField/randomsource"
	"ParticleField/shapes"
)

const eps = geometry.DefaultEpsilonRel

func almostEqualV2(a, b geometry.V2, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

func TestCircleClipTraversal_S2(t *testing.T) {
	// S2: circular arena R=100 at (0,0), disc r=10 at (85,0), magnitude=20,
	// direction=(1,0). Clip gives terminal center = (90,0).
	a := Circle{Center: geometry.V2{X: 0, Y: 0}, Radius: 100}
	from := geometry.V2{X: 85, Y: 0}
	to := geometry.V2{X: 105, Y: 0}
	got := a.ClipTraversal(10, from, to, eps)
	want := geometry.V2{X: 90, Y: 0}
	if !almostEqualV2(got, want, 1e-6) {
		t.Errorf("ClipTraversal = %v, want %v", got, want)
	}
}

func TestCircleConfines_S1(t *testing.T) {
	// S1: circular arena R=200 at (500,500); disc r=10 stays confined at
	// its terminal point (550,500).
	a := Circle{Center: geometry.V2{X: 500, Y: 500}, Radius: 200}
	disc := shapes.Circle{Center: geometry.V2{X: 550, Y: 500}, Radius: 10}
	if !a.Confines(disc, eps) {
		t.Error("expected terminal disc to remain confined")
	}
}

func TestRectangleClipTraversalStraightBorder(t *testing.T) {
	a := Rectangle{Center: geometry.V2{X: 0, Y: 0}, Width: 400, Height: 400}
	from := geometry.V2{X: 150, Y: 0}
	to := geometry.V2{X: 250, Y: 0}
	got := a.ClipTraversal(10, from, to, eps)
	want := geometry.V2{X: 190, Y: 0} // inset border at x = 200-10
	if !almostEqualV2(got, want, 1e-6) {
		t.Errorf("ClipTraversal = %v, want %v", got, want)
	}
}

func TestRectangleClipTraversalCornerPicksNearestBorder(t *testing.T) {
	a := Rectangle{Center: geometry.V2{X: 0, Y: 0}, Width: 400, Height: 400}
	// from is very close to the right inset border (190) but far from the
	// top one, and "to" violates both borders (a corner exit).
	from := geometry.V2{X: 189, Y: 0}
	to := geometry.V2{X: 250, Y: 250}
	got := a.ClipTraversal(10, from, to, eps)
	if got.X > 190.0001 {
		t.Errorf("expected the nearer (right) border to be resolved first, got %v", got)
	}
}

func TestCircleRandomInteriorPointConfines(t *testing.T) {
	a := Circle{Center: geometry.V2{X: 500, Y: 500}, Radius: 200}
	src := randomsource.NewDefault(1)
	for i := 0; i < 200; i++ {
		p := a.RandomInteriorPoint(10, src)
		disc := shapes.Circle{Center: p, Radius: 10}
		if !a.Confines(disc, eps) {
			t.Fatalf("sampled point %v does not confine a disc of radius 10", p)
		}
	}
}

func TestRectangleRandomInteriorPointConfines(t *testing.T) {
	a := Rectangle{Center: geometry.V2{X: 0, Y: 0}, Width: 400, Height: 400}
	src := randomsource.NewDefault(2)
	for i := 0; i < 200; i++ {
		p := a.RandomInteriorPoint(10, src)
		disc := shapes.Circle{Center: p, Radius: 10}
		if !a.Confines(disc, eps) {
			t.Fatalf("sampled point %v does not confine a disc of radius 10", p)
		}
	}
}

func TestRectangleInRadius(t *testing.T) {
	a := Rectangle{Center: geometry.V2{}, Width: 300, Height: 400}
	if got := a.InRadius(); got != 150 {
		t.Errorf("InRadius() = %v, want 150", got)
	}
}
