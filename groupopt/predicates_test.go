package groupopt

import "testing"

func TestIsTriangleValidCCWOnly(t *testing.T) {
	ctx := NewContext()
	a := [2]float64{0, 0}
	b := [2]float64{10, 0}
	c := [2]float64{0, 10}

	if !ctx.IsTriangleValid(a, b, c) {
		t.Fatalf("expected CCW triangle to be valid")
	}
	if ctx.IsTriangleValid(a, c, b) {
		t.Fatalf("expected CW triangle to be invalid")
	}
	if ctx.IsTriangleValid(a, b, a) {
		t.Fatalf("expected degenerate triangle to be invalid")
	}
}

func TestIsTriangleDegenerateExactZero(t *testing.T) {
	a := [2]float64{0, 0}
	b := [2]float64{5, 0}
	c := [2]float64{10, 0}

	if !IsTriangleDegenerate(a, b, c) {
		t.Fatalf("expected colinear points to be degenerate")
	}
	if IsTriangleDegenerate(a, b, [2]float64{10, 1}) {
		t.Fatalf("expected non-colinear points to not be degenerate")
	}
}

func TestPointInTriBoundaryCountsInside(t *testing.T) {
	a := [2]float64{0, 0}
	b := [2]float64{4, 0}
	c := [2]float64{0, 4}

	if !PointInTri([2]float64{1, 1}, a, b, c) {
		t.Fatalf("expected interior point to be inside")
	}
	if !PointInTri([2]float64{2, 0}, a, b, c) {
		t.Fatalf("expected boundary point to count as inside")
	}
	if PointInTri([2]float64{-1, -1}, a, b, c) {
		t.Fatalf("expected exterior point to be outside")
	}
}

func TestVertexBetween(t *testing.T) {
	a := [2]float64{0, 0}
	b := [2]float64{10, 0}

	if !VertexBetween([2]float64{5, 0}, a, b) {
		t.Fatalf("expected midpoint to be between")
	}
	if VertexBetween([2]float64{15, 0}, a, b) {
		t.Fatalf("expected point beyond b to not be between")
	}
	if VertexBetween(a, a, b) {
		t.Fatalf("an endpoint is not strictly between itself and the other endpoint")
	}
}
