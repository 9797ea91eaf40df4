package meshbridge

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iceisfun/trioptimize/groupopt"
	"github.com/iceisfun/trioptimize/vec3"
)

func payload(x, y float64) groupopt.Payload {
	return groupopt.Payload{Pos: vec3.Vec{X: x, Y: y, Z: 0}, Normal: vec3.Vec{Z: 1}}
}

func TestBuildInternsSharedVertices(t *testing.T) {
	group := &groupopt.OptimizeGroup{
		PlaneNum: 0,
		Axis:     [2]vec3.Vec{{X: 1}, {Y: 1}},
		RegeneratedTris: &groupopt.MapTri{
			V: [3]groupopt.Payload{payload(0, 0), payload(10, 0), payload(0, 10)},
			Next: &groupopt.MapTri{
				V: [3]groupopt.Payload{payload(10, 0), payload(10, 10), payload(0, 10)},
			},
		},
	}

	bridge, err := Build(group)
	require.NoError(t, err)
	require.Equal(t, 4, bridge.Mesh.NumVertices(), "the two triangles share an edge and must intern to 4 distinct vertices")
	require.Equal(t, 2, bridge.Mesh.NumTriangles())
	require.Len(t, bridge.Payloads, 4)
}

func TestBuildRejectsDegenerateTriangle(t *testing.T) {
	group := &groupopt.OptimizeGroup{
		PlaneNum: 0,
		Axis:     [2]vec3.Vec{{X: 1}, {Y: 1}},
		RegeneratedTris: &groupopt.MapTri{
			V: [3]groupopt.Payload{payload(0, 0), payload(5, 0), payload(10, 0)},
		},
	}

	_, err := Build(group)
	require.Error(t, err, "a colinear triangle must fail the mesh's own triangle validation")
}
