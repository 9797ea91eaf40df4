package groupopt

import (
	"github.com/iceisfun/trioptimize/types"
	"github.com/iceisfun/trioptimize/vec3"
)

// internVertex maps a projected coordinate pair to a unique vertex handle.
// Two projected points are the same vertex iff their coordinates compare
// exactly equal (invariant V3) — no epsilon is applied here, matching the
// original FindOptVertex. The spatial index only narrows the candidate set
// that gets the exact compare; it never substitutes for it.
func (c *Context) internVertex(pv [2]float64, payload Payload) (VertID, error) {
	p := types.Point{X: pv[0], Y: pv[1]}
	for _, candidate := range c.internIndex.FindVerticesNear(p, 0) {
		id := VertID(candidate)
		v := c.vertex(id)
		if v.pv[0] == pv[0] && v.pv[1] == pv[1] {
			return id, nil
		}
	}
	return c.allocVert(pv, payload)
}

// projectVertex interns a 3D vertex payload under the group's basis,
// returning the handle of the (possibly pre-existing) OptVertex.
func (c *Context) projectVertex(basis vec3.Basis, v Payload) (VertID, error) {
	x, y := basis.Project2D(v.Pos)
	return c.internVertex([2]float64{x, y}, v)
}
