// Package meshbridge projects an optimized group's regenerated triangles
// back into a validated 2D mesh.Mesh, giving downstream tooling (and
// tests) a topology check — duplicate/opposing triangles, vertex-inside
// violations, perimeter crossings — on the optimizer's own output, using
// exactly the same validation machinery the rest of this module already
// carries.
package meshbridge

import (
	"fmt"

	"github.com/iceisfun/trioptimize/algorithm/polygon"
	"github.com/iceisfun/trioptimize/groupopt"
	"github.com/iceisfun/trioptimize/mesh"
	"github.com/iceisfun/trioptimize/types"
	"github.com/iceisfun/trioptimize/vec3"
)

// Bridge pairs a validated 2D mesh with the 3D payload (position, normal,
// texture coordinates) each of its vertices came from, so a caller can
// round-trip from the flattened mesh back to emittable 3D geometry.
type Bridge struct {
	Mesh     *mesh.Mesh
	Payloads map[types.VertexID]groupopt.Payload
}

// Build projects every output triangle of the group through the group's
// basis and inserts it into a fresh mesh.Mesh. The triangles are read from
// group.RegeneratedTris when it is set, otherwise from group.TriList, where
// OptimizeOptList leaves the regenerated triangles. It reuses that
// package's vertex merge and triangle validation instead of re-deriving
// it here. An error from AddTriangle means the optimizer's own output
// failed the mesh's topology invariants — a bug in groupopt, not in the
// input.
func Build(group *groupopt.OptimizeGroup, opts ...mesh.Option) (*Bridge, error) {
	m := mesh.NewMesh(opts...)
	basis := vec3.Basis{Axis0: group.Axis[0], Axis1: group.Axis[1]}
	payloads := make(map[types.VertexID]groupopt.Payload)

	internVert := func(p groupopt.Payload) (types.VertexID, error) {
		x, y := basis.Project2D(p.Pos)
		pt := types.Point{X: x, Y: y}
		if id, ok := m.FindVertexNear(pt); ok {
			return id, nil
		}
		id, err := m.AddVertex(pt)
		if err != nil {
			return 0, err
		}
		payloads[id] = p
		return id, nil
	}

	tris := group.RegeneratedTris
	if tris == nil {
		tris = group.TriList
	}
	for t := tris; t != nil; t = t.Next {
		var ids [3]types.VertexID
		for i := 0; i < 3; i++ {
			id, err := internVert(t.V[i])
			if err != nil {
				return nil, fmt.Errorf("meshbridge: intern vertex: %w", err)
			}
			ids[i] = id
		}
		if err := m.AddTriangle(ids[0], ids[1], ids[2]); err != nil {
			return nil, fmt.Errorf("meshbridge: plane %d: %w", group.PlaneNum, err)
		}
	}

	return &Bridge{Mesh: m, Payloads: payloads}, nil
}

// ClassifyPoint projects a 3D point through the same basis the bridge was
// built with and reports its containment against one of the mesh's
// triangles expressed as a 2D outline — used by the preview tooling to
// render fill/hole classification without re-running groupopt's own
// PointInTri.
func (b *Bridge) ClassifyPoint(basis vec3.Basis, p vec3.Vec, outline []types.Point) polygon.InResult {
	x, y := basis.Project2D(p)
	return polygon.PointInPolygon(types.Point{X: x, Y: y}, outline)
}
