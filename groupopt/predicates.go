package groupopt

import (
	"github.com/iceisfun/trioptimize/algorithm/robust"
	"github.com/iceisfun/trioptimize/types"
)

// cross2 returns the z-component of (b-a) x (c-a) in projected space; its
// sign encodes orientation and its magnitude is twice the triangle's area.
func cross2(a, b, c [2]float64) float64 {
	return (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
}

// orientSign classifies a projected-space orientation: +1 CCW, -1 CW, 0
// exactly colinear (or, when robust predicates are enabled, colinear within
// the adaptive-precision predicate's tolerance).
func (c *Context) orientSign(a, b, p [2]float64) int {
	if c.cfg.robustPredicates {
		return robust.Orient2D(toPoint(a), toPoint(b), toPoint(p))
	}
	z := cross2(a, b, p)
	switch {
	case z > 0:
		return 1
	case z < 0:
		return -1
	default:
		return 0
	}
}

// IsTriangleValid reports whether (a,b,c) is a valid CCW, non-degenerate
// triangle in projected space. The spec requires the test be evaluated
// three ways — once per choice of which vertex is the cross-product origin
// — and ALL three must independently report a strictly positive
// orientation; any zero or negative result rejects the triangle. This is
// deliberate defence against floating-point asymmetry: a triangle built
// from (a,b,c) can appear valid when tested as (a,b,c) but not as (b,c,a)
// once cross-product cancellation is in play, and the tripled test catches
// that instead of silently picking whichever ordering happens to pass.
func (c *Context) IsTriangleValid(a, b, cc [2]float64) bool {
	if c.orientSign(a, b, cc) <= 0 {
		return false
	}
	if c.orientSign(b, cc, a) <= 0 {
		return false
	}
	if c.orientSign(cc, a, b) <= 0 {
		return false
	}
	return true
}

// IsTriangleDegenerate reports whether (a,b,c) has exactly zero signed
// area in projected space. Unlike IsTriangleValid this never goes through
// the robust backend: it is an exact-zero test by design (spec §4.1).
func IsTriangleDegenerate(a, b, c [2]float64) bool {
	return cross2(a, b, c) == 0
}

// PointInTri reports whether p lies inside or on the boundary of the
// triangle (a,b,c), used only against original input triangles during fill
// classification. Boundary (colinear) counts as inside.
func PointInTri(p, a, b, c [2]float64) bool {
	s0 := cross2(a, b, p)
	s1 := cross2(b, c, p)
	s2 := cross2(c, a, p)
	return s0 >= 0 && s1 >= 0 && s2 >= 0
}

// VertexBetween reports whether p lies strictly between a and b along the
// line through them, given that the three points are already known to be
// colinear: (p-a).(p-b) < 0.
func VertexBetween(p, a, b [2]float64) bool {
	pax := p[0] - a[0]
	pay := p[1] - a[1]
	pbx := p[0] - b[0]
	pby := p[1] - b[1]
	return pax*pbx+pay*pby < 0
}

func toPoint(v [2]float64) types.Point { return types.Point{X: v[0], Y: v[1]} }
