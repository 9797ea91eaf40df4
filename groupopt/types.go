// Package groupopt retriangulates a set of coplanar triangles (a "group")
// into a topologically clean, non-overlapping covering of the same 2D
// region: it builds an overlay arrangement of all input edges, classifies
// the resulting faces as filled or empty against the original triangles,
// prunes interior edges and colinear chains, and retriangulates what
// remains with a greedy shortest-diagonal strategy.
//
// The intrusive-pointer graph of the original map-compiler implementation
// (vertices and edges threaded through per-endpoint linked lists) is
// represented here as two arenas indexed by int32 handles; VertID and
// EdgeID play the role of the original optVertex_t*/optEdge_t* pointers.
package groupopt

import "github.com/iceisfun/trioptimize/vec3"

// VertID is a handle into a Context's vertex arena.
type VertID int32

// NilVert is the handle value denoting "no vertex".
const NilVert VertID = -1

// EdgeID is a handle into a Context's edge arena.
type EdgeID int32

// NilEdge is the handle value denoting "no edge".
const NilEdge EdgeID = -1

// TriID indexes an Island's triangle slice. Unlike vertices and edges,
// triangles are not arena-capacity-limited: they are reallocated fresh on
// every BuildOptTriangles pass and discarded between passes.
type TriID int32

// NilTri is the handle value denoting "no triangle".
const NilTri TriID = -1

// Payload is the 3D per-vertex data carried through projection, splitting,
// and emission: position, normal, and texture coordinates. It is the
// projected counterpart of the map compiler's idDrawVert.
type Payload struct {
	Pos    vec3.Vec
	Normal vec3.Vec
	ST     [2]float64
}

// LerpPayload linearly interpolates two payloads at parameter t, renormalizing
// the interpolated normal, matching EdgeIntersection's 3D payload rule.
func LerpPayload(a, b Payload, t float64) Payload {
	return Payload{
		Pos:    a.Pos.Lerp(b.Pos, t),
		Normal: a.Normal.Lerp(b.Normal, t).Unit(),
		ST: [2]float64{
			a.ST[0] + t*(b.ST[0]-a.ST[0]),
			a.ST[1] + t*(b.ST[1]-a.ST[1]),
		},
	}
}

// optVertex is a vertex of the 2D arrangement: its projected position plus
// the 3D payload it carries through to the emitted output, and the head of
// its intrusive incident-edge chain.
type optVertex struct {
	pv      [2]float64
	payload Payload

	edges EdgeID // head of the incident-edge chain at this vertex

	islandNext VertID // next vertex in the island's vertex list
	emitted    bool   // transient flag used during BuildOptTriangles
}

// optEdge is an undirected edge of the arrangement. v1link/v2link thread
// this edge into the incident chains of v1 and v2 respectively: walking the
// chain at a vertex means following v1link when the pivot is v1, v2link
// when the pivot is v2.
type optEdge struct {
	v1, v2         VertID
	v1link, v2link EdgeID

	islandNext EdgeID

	frontTri, backTri TriID
	created           bool // true for interior edges added by AddInteriorEdges
}

// otherEnd returns the endpoint of e that is not pivot, and the "next"
// handle to follow when walking the incident chain rooted at pivot.
func (e *optEdge) otherEnd(pivot VertID) (VertID, EdgeID) {
	if e.v1 == pivot {
		return e.v2, e.v1link
	}
	return e.v1, e.v2link
}

// OptTri is a candidate triangle produced by BuildOptTriangles: three
// vertices in CCW projected order, its projected midpoint, and whether
// that midpoint falls inside at least one original input triangle.
//
// Triangles are not arena-allocated like vertices and edges: a fresh slice
// is built by BuildOptTriangles on every pass and discarded by the next
// one, so they are held directly in Island.tris rather than threaded
// through an intrusive list.
type OptTri struct {
	V      [3]VertID
	Mid    [2]float64
	Filled bool
}
