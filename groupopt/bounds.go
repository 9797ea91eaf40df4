package groupopt

import "github.com/iceisfun/trioptimize/types"

// Bounds returns the axis-aligned bounding box of the island's current
// vertex set in projected space, restoring the original's module-level
// optBounds accumulation (spec §9 supplemented feature; see
// SPEC_FULL.md §D). Unlike the original, which accumulated into a single
// global bounds object across a group's entire lifetime, this recomputes
// from whatever vertices are currently linked into the island, so it
// reflects culling and collapse rather than only ever growing.
func (is *Island) Bounds() types.AABB {
	var box types.AABB
	first := true
	is.walkVerts(func(v VertID) {
		pv := is.ctx.vertex(v).pv
		p := types.Point{X: pv[0], Y: pv[1]}
		if first {
			box = types.AABB{Min: p, Max: p}
			first = false
			return
		}
		if p.X < box.Min.X {
			box.Min.X = p.X
		}
		if p.X > box.Max.X {
			box.Max.X = p.X
		}
		if p.Y < box.Min.Y {
			box.Min.Y = p.Y
		}
		if p.Y > box.Max.Y {
			box.Max.Y = p.Y
		}
	})
	return box
}
