package randomsource

import "testing"

func TestDefaultFloat64InRange(t *testing.T) {
	src := NewDefault(42)
	for i := 0; i < 1000; i++ {
		v := src.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64() = %v, want [0,1)", v)
		}
	}
}

func TestRangeBounds(t *testing.T) {
	src := NewDefault(7)
	for i := 0; i < 1000; i++ {
		v := Range(src, 10, 20)
		if v < 10 || v >= 20 {
			t.Fatalf("Range(10,20) = %v, out of bounds", v)
		}
	}
}

type fixedSource struct{ v float64 }

func (f fixedSource) Float64() float64 { return f.v }

func TestRangeWithFixedSource(t *testing.T) {
	if got := Range(fixedSource{0.5}, 0, 10); got != 5 {
		t.Errorf("Range with fixed 0.5 = %v, want 5", got)
	}
}
