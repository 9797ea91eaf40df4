package groupopt

import "github.com/iceisfun/trioptimize/vec3"

// RegenerateTriangles converts every filled OptTri into an output MapTri,
// discarding any whose 3D normal has flipped relative to the group's
// plane (numerical near-degeneracy), and prepends the survivors onto
// group.RegeneratedTris. It then discards the island's triangle set
// entirely — BuildOptTriangles allocates a fresh one on its next pass
// (spec §4.10).
func (c *Context) RegenerateTriangles(group *OptimizeGroup, planeNormal vec3.Vec) {
	for _, tri := range c.island.tris {
		if !tri.Filled {
			continue
		}

		p0 := c.vertex(tri.V[0]).payload
		p1 := c.vertex(tri.V[1]).payload
		p2 := c.vertex(tri.V[2]).payload

		normal := p1.Pos.Sub(p0.Pos).Cross(p2.Pos.Sub(p0.Pos))
		if normal.Dot(planeNormal) <= 0 {
			c.logf("groupopt: RegenerateTriangles: discarding triangle with flipped normal (plane %d)", group.PlaneNum)
			continue
		}

		group.RegeneratedTris = &MapTri{
			V:    [3]Payload{p0, p1, p2},
			Next: group.RegeneratedTris,
		}
	}

	c.island.tris = nil
}
