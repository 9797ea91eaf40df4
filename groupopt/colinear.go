package groupopt

import "github.com/iceisfun/trioptimize/vec3"

// CombineColinearEdges repeatedly collapses vertices whose two incident
// edges are oppositely directed and colinear in world space within
// COLINEAR_EPSILON, replacing the pair with a single edge between their
// far endpoints (spec §4.8, invariant V6). The original recurses on both
// far endpoints after every successful merge; this uses an explicit work
// queue instead (spec §9's design note), since a long colinear chain would
// otherwise recurse once per vertex in the chain.
func (c *Context) CombineColinearEdges() error {
	var queue []VertID
	c.island.walkVerts(func(v VertID) { queue = append(queue, v) })

	queued := make(map[VertID]bool, len(queue))
	for _, v := range queue {
		queued[v] = true
	}

	push := func(v VertID) {
		if !queued[v] {
			queued[v] = true
			queue = append(queue, v)
		}
	}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		queued[v] = false

		v1, v3, ok := c.removeIfColinear(v)
		if ok {
			push(v1)
			push(v3)
		}
	}
	return nil
}

// removeIfColinear attempts to collapse v, returning the pair of far
// endpoints that should be re-checked and whether a collapse happened.
func (c *Context) removeIfColinear(v VertID) (VertID, VertID, bool) {
	var e1, e2 EdgeID = NilEdge, NilEdge
	n := 0
	c.walkIncident(v, func(id EdgeID) {
		n++
		switch n {
		case 1:
			e1 = id
		case 2:
			e2 = id
		}
	})
	if n != 2 {
		return NilVert, NilVert, false
	}

	v1, _ := c.edge(e1).otherEnd(v)
	v3, _ := c.edge(e2).otherEnd(v)
	if v1 == v3 {
		return NilVert, NilVert, false
	}

	vv := c.vertex(v)
	p1 := c.vertex(v1)
	p3 := c.vertex(v3)

	dir1 := [2]float64{p1.pv[0] - vv.pv[0], p1.pv[1] - vv.pv[1]}
	dir3 := [2]float64{p3.pv[0] - vv.pv[0], p3.pv[1] - vv.pv[1]}
	if dot2(dir1, dir3) >= 0 {
		return NilVert, NilVert, false
	}

	if perpendicularDistance3D(vv.payload.Pos, p1.payload.Pos, p3.payload.Pos) > c.cfg.colinearEpsilon {
		return NilVert, NilVert, false
	}

	if err := c.unlinkEdge(e1); err != nil {
		c.logf("groupopt: CombineColinearEdges: %v", err)
		return NilVert, NilVert, false
	}
	if err := c.unlinkEdge(e2); err != nil {
		c.logf("groupopt: CombineColinearEdges: %v", err)
		return NilVert, NilVert, false
	}

	if existing, already := c.findEdge(v1, v3); already {
		if err := c.unlinkEdge(existing); err != nil {
			c.logf("groupopt: CombineColinearEdges: %v", err)
		}
		return v1, v3, true
	}

	if _, added, err := c.TryAddNewEdge(v1, v3); err != nil {
		c.logf("groupopt: CombineColinearEdges: %v", err)
		return NilVert, NilVert, false
	} else if !added {
		// The merged edge would cross something: put the original two
		// edges back and leave v in place.
		c.linkEdge(e1)
		c.island.addEdge(e1)
		c.linkEdge(e2)
		c.island.addEdge(e2)
		return NilVert, NilVert, false
	}

	return v1, v3, true
}

// perpendicularDistance3D returns the distance from p to the line through
// a and b in world space. A degenerate a==b line has nothing to project
// onto, so the distance from p to a is returned instead.
func perpendicularDistance3D(p, a, b vec3.Vec) float64 {
	ab := b.Sub(a)
	if ab.IsZero() {
		return p.Sub(a).Length()
	}
	ap := p.Sub(a)
	return ap.Cross(ab).Length() / ab.Length()
}
