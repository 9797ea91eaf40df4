package groupopt

import "github.com/iceisfun/trioptimize/vec3"

// MapTri is one input (or output) triangle: three 3D vertices, each
// carrying position, normal, and texture coordinates, linked into the
// group's singly-linked triangle list.
type MapTri struct {
	V    [3]Payload
	Next *MapTri
}

// CountTriList counts the triangles in a MapTri list; a small collaborator
// named directly in spec §6 kept here since it has no dependency on the
// rest of the map compiler.
func CountTriList(list *MapTri) int {
	n := 0
	for t := list; t != nil; t = t.Next {
		n++
	}
	return n
}

// OptimizeGroup is one maximal set of coplanar triangles sharing a plane,
// material, and merge group — the unit of work for OptimizeGroupList.
type OptimizeGroup struct {
	PlaneNum   int
	Material   string
	MergeGroup int

	// TriList is the group's input triangles; after OptimizeGroupList it
	// holds the regenerated output triangles instead.
	TriList *MapTri

	// RegeneratedTris is the output slot RegenerateTriangles fills while a
	// group is optimized; OptimizeOptList then moves that list into
	// TriList, as the original implementation does, and leaves this nil.
	RegeneratedTris *MapTri

	// Axis holds the orthonormal in-plane basis derived from the group's
	// plane normal; OptimizeGroupList populates it from PlaneTable.
	Axis [2]vec3.Vec

	Next *OptimizeGroup
}

// PlaneTable resolves a plane index to its normal. It stands in for the
// map compiler's global plane table (mapPlanes), which lives outside this
// package's scope (spec §6).
type PlaneTable interface {
	Normal(planeNum int) vec3.Vec
}

// TJunctionFixer is the spec's external collaborator FixAreaGroupsTjunctions
// / FreeTJunctionHash. It is never called by OptimizeGroupList itself — the
// outer pipeline invokes it before and after the optimizer runs (spec §5) —
// but the interface is declared here so a full pipeline can be composed
// against a single type without reaching into an unrelated package.
type TJunctionFixer interface {
	FixAreaGroupsTjunctions(group *OptimizeGroup) error
	FreeTJunctionHash()
}

// RunPipeline reproduces the ordering spec §5 requires of the outer
// pipeline: fix T-junctions, optimize every group, fix T-junctions again
// (retriangulation reintroduces them at newly shared boundaries), then let
// the caller assign plane numbers to the regenerated triangles via
// setPlaneNums. It is a convenience for callers that want the full
// documented order in one call; OptimizeGroupList alone is sufficient for
// callers that already manage T-junction fixing themselves.
func RunPipeline(groups *OptimizeGroup, planes PlaneTable, fixer TJunctionFixer, setPlaneNums func(*OptimizeGroup) error, opts ...Option) error {
	for g := groups; g != nil; g = g.Next {
		if err := fixer.FixAreaGroupsTjunctions(g); err != nil {
			return err
		}
	}

	if err := OptimizeGroupList(groups, planes, opts...); err != nil {
		return err
	}

	for g := groups; g != nil; g = g.Next {
		if err := fixer.FixAreaGroupsTjunctions(g); err != nil {
			return err
		}
	}
	fixer.FreeTJunctionHash()

	if setPlaneNums != nil {
		for g := groups; g != nil; g = g.Next {
			if err := setPlaneNums(g); err != nil {
				return err
			}
		}
	}

	return nil
}
