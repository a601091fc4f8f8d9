package geometry

import "math"

// V2 is a double-precision 2D vector, used both as a point and a
// displacement throughout the simulation.
type V2 struct {
	X, Y float64
}

// Add returns v+other.
func (v V2) Add(other V2) V2 {
	return V2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v-other.
func (v V2) Sub(other V2) V2 {
	return V2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v scaled by s.
func (v V2) Scale(s float64) V2 {
	return V2{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and other.
func (v V2) Dot(other V2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// LengthSquared returns |v|^2.
func (v V2) LengthSquared() float64 {
	return v.Dot(v)
}

// Length returns |v|.
func (v V2) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Normalize returns the unit vector in the direction of v. The zero vector
// normalizes to itself.
func (v V2) Normalize() V2 {
	l := v.Length()
	if l == 0 {
		return V2{}
	}
	return v.Scale(1 / l)
}

// Resize returns v rescaled to the given length, preserving direction.
func (v V2) Resize(length float64) V2 {
	return v.Normalize().Scale(length)
}

// DistanceSquared returns the squared distance between v and other treated
// as points.
func (v V2) DistanceSquared(other V2) float64 {
	return v.Sub(other).LengthSquared()
}

// Distance returns the distance between v and other treated as points.
func (v V2) Distance(other V2) float64 {
	return v.Sub(other).Length()
}

// Project returns the projection of v onto other.
func (v V2) Project(onto V2) V2 {
	denom := onto.LengthSquared()
	if denom == 0 {
		return V2{}
	}
	return onto.Scale(v.Dot(onto) / denom)
}

// Rotate returns v rotated by angleDegrees counter-clockwise.
func (v V2) Rotate(angleDegrees float64) V2 {
	rad := angleDegrees * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	return V2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// AngleBetween returns the unsigned angle in degrees, in [0,180], between a
// and b. The zero vector is defined to be orthogonal to everything (90
// degrees), so callers that need "ahead of" semantics on a zero
// displacement get the conservative answer.
func AngleBetween(a, b V2) float64 {
	la, lb := a.Length(), b.Length()
	if la == 0 || lb == 0 {
		return 90
	}
	cos := a.Dot(b) / (la * lb)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos) * 180 / math.Pi
}

// FromAngle builds a vector of the given length pointing at angleDegrees
// measured counter-clockwise from the positive X axis.
func FromAngle(angleDegrees, length float64) V2 {
	rad := angleDegrees * math.Pi / 180
	return V2{X: length * math.Cos(rad), Y: length * math.Sin(rad)}
}
