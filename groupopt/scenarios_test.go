package groupopt

import (
	"math"
	"testing"

	"github.com/iceisfun/trioptimize/vec3"
)

const areaTol = 1e-6

var upNormal = vec3.Vec{X: 0, Y: 0, Z: 1}

// assertOutputValid checks property P1 (every output triangle's 3D normal
// agrees with the group's plane normal) for every triangle on list.
func assertOutputValid(t *testing.T, list *MapTri, planeNormal vec3.Vec) {
	t.Helper()
	for tri := list; tri != nil; tri = tri.Next {
		n := tri.V[1].Pos.Sub(tri.V[0].Pos).Cross(tri.V[2].Pos.Sub(tri.V[0].Pos))
		if n.Dot(planeNormal) <= 0 {
			t.Fatalf("output triangle has non-matching normal: %+v", tri)
		}
	}
}

// TestScenarioS1CleanTriangleIdentity: a single clean triangle is returned
// unchanged up to vertex identity (spec §8 S1, P6).
func TestScenarioS1CleanTriangleIdentity(t *testing.T) {
	group := &OptimizeGroup{
		PlaneNum: 0,
		TriList:  tri3([2]float64{0, 0}, [2]float64{10, 0}, [2]float64{0, 10}),
	}

	if err := OptimizeGroupList(group, fixedPlanes{normal: upNormal}); err != nil {
		t.Fatalf("OptimizeGroupList: %v", err)
	}

	if n := countOutputTris(group.TriList); n != 1 {
		t.Fatalf("expected exactly one output triangle, got %d", n)
	}
	assertOutputValid(t, group.TriList, upNormal)

	got := totalArea(group.TriList)
	if math.Abs(got-50) > areaTol {
		t.Fatalf("expected output area 50, got %v", got)
	}
}

// TestScenarioS2OverlappingTriangles: the union of two overlapping
// triangles is tessellated without overlap; total output area equals the
// union's area (spec §8 S2, P2).
func TestScenarioS2OverlappingTriangles(t *testing.T) {
	a := tri3([2]float64{0, 0}, [2]float64{10, 0}, [2]float64{0, 10})
	b := tri3([2]float64{5, 5}, [2]float64{-5, 5}, [2]float64{5, -5})
	a.Next = b

	group := &OptimizeGroup{PlaneNum: 0, TriList: a}

	if err := OptimizeGroupList(group, fixedPlanes{normal: upNormal}); err != nil {
		t.Fatalf("OptimizeGroupList: %v", err)
	}
	assertOutputValid(t, group.TriList, upNormal)

	// area(A) + area(B) - area(A∩B) = 50 + 50 - 25 = 75.
	got := totalArea(group.TriList)
	if math.Abs(got-75) > 1e-3 {
		t.Fatalf("expected union area 75, got %v", got)
	}
}

// TestScenarioS3SliverCollapse: a thin sliver sharing an edge with a clean
// triangle is collapsed away, leaving the clean triangle's footprint
// (spec §8 S3, invariant V6).
func TestScenarioS3SliverCollapse(t *testing.T) {
	main := tri3([2]float64{0, 0}, [2]float64{10, 0}, [2]float64{0, 10})
	// Apex sits ~0.035 units off the (10,0)-(0,10) line: well within
	// COLINEAR_EPSILON (0.1).
	sliver := tri3([2]float64{10, 0}, [2]float64{5.05, 5.0}, [2]float64{0, 10})
	main.Next = sliver

	group := &OptimizeGroup{PlaneNum: 0, TriList: main}

	if err := OptimizeGroupList(group, fixedPlanes{normal: upNormal}); err != nil {
		t.Fatalf("OptimizeGroupList: %v", err)
	}
	assertOutputValid(t, group.TriList, upNormal)

	if n := countOutputTris(group.TriList); n != 1 {
		t.Fatalf("expected the sliver to collapse to a single output triangle, got %d", n)
	}

	got := totalArea(group.TriList)
	if math.Abs(got-50) > 1e-2 {
		t.Fatalf("expected collapsed output area ~50, got %v", got)
	}
}

// TestScenarioS4InteriorTJunction: a triangle whose vertex (5,0) touches
// the middle of the quad's bottom edge forces a split at the T-junction
// point; the
// combined output area equals the sum of the two disjoint input regions
// (spec §8 S4).
func TestScenarioS4InteriorTJunction(t *testing.T) {
	quadT1 := tri3([2]float64{0, 0}, [2]float64{10, 0}, [2]float64{10, 10})
	quadT2 := tri3([2]float64{0, 0}, [2]float64{10, 10}, [2]float64{0, 10})
	tjunction := tri3([2]float64{5, 0}, [2]float64{20, -10}, [2]float64{20, 0})
	quadT1.Next = quadT2
	quadT2.Next = tjunction

	group := &OptimizeGroup{PlaneNum: 0, TriList: quadT1}

	if err := OptimizeGroupList(group, fixedPlanes{normal: upNormal}); err != nil {
		t.Fatalf("OptimizeGroupList: %v", err)
	}
	assertOutputValid(t, group.TriList, upNormal)

	// quad area 100 + disjoint triangle area 75, no overlap.
	got := totalArea(group.TriList)
	if math.Abs(got-175) > 1e-2 {
		t.Fatalf("expected combined area 175, got %v", got)
	}
}

// TestScenarioS5DegenerateInputRejected: a colinear "triangle" contributes
// no edges or output, and a well-formed triangle in the same group is
// unaffected (spec §8 S5).
func TestScenarioS5DegenerateInputRejected(t *testing.T) {
	degenerate := tri3([2]float64{0, 0}, [2]float64{5, 0}, [2]float64{10, 0})
	good := tri3([2]float64{0, 0}, [2]float64{10, 0}, [2]float64{0, 10})
	degenerate.Next = good

	var logged []string
	group := &OptimizeGroup{PlaneNum: 0, TriList: degenerate}

	logger := loggerFunc(func(format string, args ...any) { logged = append(logged, format) })
	if err := OptimizeGroupList(group, fixedPlanes{normal: upNormal}, WithLogger(logger)); err != nil {
		t.Fatalf("OptimizeGroupList: %v", err)
	}

	if len(logged) == 0 {
		t.Fatalf("expected a diagnostic to be logged for the degenerate triangle")
	}

	if n := countOutputTris(group.TriList); n != 1 {
		t.Fatalf("expected the well-formed triangle alone in the output, got %d", n)
	}
	got := totalArea(group.TriList)
	if math.Abs(got-50) > areaTol {
		t.Fatalf("expected output area 50, got %v", got)
	}
}

// TestScenarioS6HolePreservation: a ring of triangles tiling an annulus
// produces output whose total area matches the annulus and whose
// triangles never span the central hole (spec §8 S6).
func TestScenarioS6HolePreservation(t *testing.T) {
	rect := func(x0, y0, x1, y1 float64) (*MapTri, *MapTri) {
		t1 := tri3([2]float64{x0, y0}, [2]float64{x1, y0}, [2]float64{x1, y1})
		t2 := tri3([2]float64{x0, y0}, [2]float64{x1, y1}, [2]float64{x0, y1})
		return t1, t2
	}

	var list *MapTri
	add := func(t1, t2 *MapTri) {
		list = prependTri(list, t2)
		list = prependTri(list, t1)
	}
	add(rect(0, 0, 12, 4))   // bottom strip
	add(rect(0, 8, 12, 12))  // top strip
	add(rect(0, 4, 4, 8))    // left strip
	add(rect(8, 4, 12, 8))   // right strip

	group := &OptimizeGroup{PlaneNum: 0, TriList: list}

	if err := OptimizeGroupList(group, fixedPlanes{normal: upNormal}); err != nil {
		t.Fatalf("OptimizeGroupList: %v", err)
	}
	assertOutputValid(t, group.TriList, upNormal)

	got := totalArea(group.TriList)
	if math.Abs(got-128) > 1e-2 {
		t.Fatalf("expected annulus area 128, got %v", got)
	}

	for tri := group.TriList; tri != nil; tri = tri.Next {
		cx := (tri.V[0].Pos.X + tri.V[1].Pos.X + tri.V[2].Pos.X) / 3
		cy := (tri.V[0].Pos.Y + tri.V[1].Pos.Y + tri.V[2].Pos.Y) / 3
		if cx > 4 && cx < 8 && cy > 4 && cy < 8 {
			t.Fatalf("output triangle centroid (%v,%v) falls inside the hole", cx, cy)
		}
	}
}

type loggerFunc func(format string, args ...any)

func (f loggerFunc) Printf(format string, args ...any) { f(format, args...) }
