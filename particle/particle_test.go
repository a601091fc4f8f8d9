package particle

import (
	"testing"

	"ParticleField/geometry"
)

func TestTableAddGetDelete(t *testing.T) {
	table := NewTable()
	id := table.Add(Particle{Center: geometry.V2{X: 1, Y: 2}, Radius: 5})
	if id == 0 {
		t.Fatal("expected a nonzero id")
	}
	p, ok := table.Get(id)
	if !ok {
		t.Fatal("expected to find inserted particle")
	}
	if p.Center.X != 1 || p.Center.Y != 2 {
		t.Errorf("unexpected center %v", p.Center)
	}

	second := table.Add(Particle{Center: geometry.V2{}, Radius: 1})
	if second == id {
		t.Error("expected distinct ids across inserts")
	}
	if table.Count() != 2 {
		t.Errorf("Count() = %d, want 2", table.Count())
	}

	table.Delete(id)
	if _, ok := table.Get(id); ok {
		t.Error("expected deleted particle to be gone")
	}
	if table.Count() != 1 {
		t.Errorf("Count() after delete = %d, want 1", table.Count())
	}
}

func TestTableSetOverwrites(t *testing.T) {
	table := NewTable()
	id := table.Add(Particle{Center: geometry.V2{X: 0, Y: 0}, Radius: 1})
	p, _ := table.Get(id)
	p.Center = geometry.V2{X: 10, Y: 10}
	table.Set(p)
	updated, _ := table.Get(id)
	if updated.Center.X != 10 {
		t.Errorf("expected Set to overwrite stored center, got %v", updated.Center)
	}
}

func TestNewFOVAcceptsBoundaryAperture(t *testing.T) {
	fov, err := NewFOV(100, 360)
	if err != nil {
		t.Fatalf("NewFOV(100, 360) returned error: %v", err)
	}
	if fov.Aperture != 360 || fov.Range != 100 {
		t.Errorf("unexpected fov %+v", fov)
	}
}

func TestNewFOVRejectsApertureOutOfRange(t *testing.T) {
	for _, aperture := range []float64{0, -1, 360.0001, 720} {
		if _, err := NewFOV(100, aperture); err == nil {
			t.Errorf("NewFOV(100, %v) expected error, got nil", aperture)
		}
	}
}

func TestNewFOVRejectsNonPositiveRange(t *testing.T) {
	if _, err := NewFOV(0, 90); err == nil {
		t.Error("NewFOV(0, 90) expected error, got nil")
	}
	if _, err := NewFOV(-5, 90); err == nil {
		t.Error("NewFOV(-5, 90) expected error, got nil")
	}
}
