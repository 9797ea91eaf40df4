package groupopt

import "github.com/iceisfun/trioptimize/vec3"

// originalEdge is one deduplicated directed edge collected from the
// group's input triangles, before EdgeSplit has run.
type originalEdge struct {
	v1, v2 VertID
}

// AddOriginalEdges interns the group's input triangles' vertices, records
// each triangle for later PointInTri fill tests, and collects the set of
// distinct original edges (spec §4.4). Triangles failing IsTriangleValid
// are logged and skipped entirely — none of their edges are added.
func (c *Context) AddOriginalEdges(group *OptimizeGroup, basis vec3.Basis) ([]originalEdge, error) {
	var edges []originalEdge

	addEdge := func(a, b VertID) {
		if a == b {
			return
		}
		for _, e := range edges {
			if sameUnorderedPair(e.v1, e.v2, a, b) {
				return
			}
		}
		edges = append(edges, originalEdge{v1: a, v2: b})
	}

	for t := group.TriList; t != nil; t = t.Next {
		var ids [3]VertID
		for i := 0; i < 3; i++ {
			id, err := c.projectVertex(basis, t.V[i])
			if err != nil {
				return nil, err
			}
			ids[i] = id
		}

		pv0 := c.vertex(ids[0]).pv
		pv1 := c.vertex(ids[1]).pv
		pv2 := c.vertex(ids[2]).pv
		if !c.IsTriangleValid(pv0, pv1, pv2) {
			c.logf("groupopt: skipping backwards or degenerate input triangle (plane %d)", group.PlaneNum)
			continue
		}

		c.originalTris = append(c.originalTris, inputTriangle{v0: ids[0], v1: ids[1], v2: ids[2]})

		addEdge(ids[0], ids[1])
		addEdge(ids[1], ids[2])
		addEdge(ids[2], ids[0])
	}

	return edges, nil
}

// SplitOriginalEdgesAtCrossings finds every crossing among the original
// edges, interns the crossing vertices, and replaces each original edge
// with its maximal run of non-subdivided subsegments (spec §4.4). The
// resulting OptEdges are linked into the island as they are created.
func (c *Context) SplitOriginalEdgesAtCrossings(edges []originalEdge) error {
	crossings := make([][]VertID, len(edges))

	appendUnique := func(list []VertID, v VertID, endpoints ...VertID) []VertID {
		for _, e := range endpoints {
			if v == e {
				return list
			}
		}
		for _, existing := range list {
			if existing == v {
				return list
			}
		}
		return append(list, v)
	}

	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			e1, e2 := edges[i], edges[j]
			if !c.EdgesCross(e1.v1, e1.v2, e2.v1, e2.v2) {
				continue
			}

			newVert, ok, err := c.EdgeIntersection(e1.v1, e1.v2, e2.v1, e2.v2)
			if err != nil {
				return err
			}
			if ok {
				crossings[i] = appendUnique(crossings[i], newVert, e1.v1, e1.v2)
				crossings[j] = appendUnique(crossings[j], newVert, e2.v1, e2.v2)
				continue
			}

			// Exactly colinear: each edge's far endpoints that fall between
			// the other edge's endpoints become split points on that other
			// edge. This mirrors the original's asymmetric insertion order
			// (only crossings[i] gets e2's endpoints, only crossings[j] gets
			// e1's) — see SPEC_FULL.md / DESIGN.md for the Open Question
			// this preserves rather than resolves.
			pv1 := c.vertex(e1.v1).pv
			pv2 := c.vertex(e1.v2).pv
			for _, v := range []VertID{e2.v1, e2.v2} {
				if VertexBetween(c.vertex(v).pv, pv1, pv2) {
					crossings[i] = appendUnique(crossings[i], v, e1.v1, e1.v2)
				}
			}
			lv1 := c.vertex(e2.v1).pv
			lv2 := c.vertex(e2.v2).pv
			for _, v := range []VertID{e1.v1, e1.v2} {
				if VertexBetween(c.vertex(v).pv, lv1, lv2) {
					crossings[j] = appendUnique(crossings[j], v, e2.v1, e2.v2)
				}
			}
		}
	}

	for i, e := range edges {
		sorted := append([]VertID{e.v1, e.v2}, crossings[i]...)
		for j := 0; j < len(sorted); j++ {
			for k := j + 1; k < len(sorted); k++ {
				a, b := sorted[j], sorted[k]
				if c.anyBetween(sorted, a, b) {
					continue
				}
				if _, err := c.addEdgeIfNotAlready(a, b, false); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// anyBetween reports whether some vertex of set other than a and b lies
// strictly between them along their shared line.
func (c *Context) anyBetween(set []VertID, a, b VertID) bool {
	pa := c.vertex(a).pv
	pb := c.vertex(b).pv
	for _, v := range set {
		if v == a || v == b {
			continue
		}
		if VertexBetween(c.vertex(v).pv, pa, pb) {
			return true
		}
	}
	return false
}
