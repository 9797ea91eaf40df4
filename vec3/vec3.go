// Package vec3 provides the 3D vector algebra used to project a coplanar
// triangle group onto its plane and to interpolate vertex payloads at
// edge-crossing points.
package vec3

import "math"

// Vec is a three-dimensional vector or point, depending on context.
type Vec struct {
	X, Y, Z float64
}

// Add returns the component-wise sum of v and o.
func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns the component-wise difference v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Muls returns v scaled by s.
func (v Vec) Muls(s float64) Vec {
	return Vec{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and o.
func (v Vec) Dot(o Vec) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v x o.
func (v Vec) Cross(o Vec) Vec {
	return Vec{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean length of v.
func (v Vec) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Unit returns v normalized to unit length. The zero vector normalizes to itself.
func (v Vec) Unit() Vec {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Muls(1 / l)
}

// Lerp linearly interpolates between v and o at parameter t (unclamped: t
// outside [0,1] extrapolates, which EdgeIntersection relies on when the
// crossing falls exactly on an endpoint due to floating point roundoff).
func (v Vec) Lerp(o Vec, t float64) Vec {
	return Vec{
		X: v.X + t*(o.X-v.X),
		Y: v.Y + t*(o.Y-v.Y),
		Z: v.Z + t*(o.Z-v.Z),
	}
}

// IsZero reports whether v is exactly the zero vector.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Basis holds two orthonormal vectors spanning a plane.
type Basis struct {
	Axis0, Axis1 Vec
}

// ProjectAxes derives an orthonormal in-plane basis from a plane normal,
// following the texture-axis convention used throughout the id Tech map
// compiler lineage: pick the major axis the normal is least aligned with,
// cross it in to get an in-plane vector, then complete the basis.
func ProjectAxes(normal Vec) Basis {
	n := normal.Unit()

	var up Vec
	switch {
	case math.Abs(n.Z) < math.Abs(n.X) && math.Abs(n.Z) < math.Abs(n.Y):
		up = Vec{0, 0, 1}
	case math.Abs(n.Y) < math.Abs(n.X):
		up = Vec{0, 1, 0}
	default:
		up = Vec{1, 0, 0}
	}

	axis0 := up.Cross(n).Unit()
	axis1 := n.Cross(axis0).Unit()

	return Basis{Axis0: axis0, Axis1: axis1}
}

// Project2D maps a 3D point to the basis's 2D coordinates: (p.axis0, p.axis1).
func (b Basis) Project2D(p Vec) (x, y float64) {
	return p.Dot(b.Axis0), p.Dot(b.Axis1)
}
