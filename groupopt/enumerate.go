package groupopt

// BuildOptTriangles rebuilds the island's triangle set from scratch: every
// existing triangle is discarded, every vertex's emitted flag and every
// edge's front/back triangle pointers are cleared, and then each vertex is
// visited in turn as a pivot, nominating CCW triangles from pairs of its
// incident edges (spec §4.6).
func (c *Context) BuildOptTriangles(group *OptimizeGroup) error {
	c.island.tris = nil

	c.island.walkVerts(func(v VertID) { c.vertex(v).emitted = false })
	c.island.walkEdges(func(id EdgeID) {
		e := c.edge(id)
		e.frontTri, e.backTri = NilTri, NilTri
	})

	var pivots []VertID
	c.island.walkVerts(func(v VertID) { pivots = append(pivots, v) })

	for _, ov := range pivots {
		var incident []EdgeID
		c.walkIncident(ov, func(id EdgeID) { incident = append(incident, id) })

		for i, e1 := range incident {
			second, _ := c.edge(e1).otherEnd(ov)
			if c.vertex(second).emitted {
				continue
			}

			for j, e2 := range incident {
				if i == j {
					continue
				}
				third, _ := c.edge(e2).otherEnd(ov)
				if c.vertex(third).emitted {
					continue
				}

				ovp := c.vertex(ov).pv
				secondp := c.vertex(second).pv
				thirdp := c.vertex(third).pv
				if !c.IsTriangleValid(ovp, secondp, thirdp) {
					continue
				}

				if c.isBisected(ov, second, third, incident, e1, e2) {
					continue
				}

				if err := c.createOptTri(group, ov, e1, e2, second, third); err != nil {
					return err
				}
			}
		}

		c.vertex(ov).emitted = true
	}

	return nil
}

// isBisected reports whether some other incident edge at ov leads to a
// vertex that subdivides the candidate triangle (ov,second,third) into two
// valid triangles, in which case the wider candidate is skipped in favour
// of the subdivision that will be nominated separately.
func (c *Context) isBisected(ov, second, third VertID, incident []EdgeID, e1, e2 EdgeID) bool {
	ovp := c.vertex(ov).pv
	secondp := c.vertex(second).pv
	thirdp := c.vertex(third).pv
	for _, check := range incident {
		if check == e1 || check == e2 {
			continue
		}
		middle, _ := c.edge(check).otherEnd(ov)
		middlep := c.vertex(middle).pv
		if c.IsTriangleValid(ovp, secondp, middlep) && c.IsTriangleValid(ovp, middlep, thirdp) {
			return true
		}
	}
	return false
}

// createOptTri allocates the triangle (ov,second,third), classifies it
// against the group's original input triangles, and links its three sides
// to the island's edges, matching CreateOptTri (spec §4.6).
func (c *Context) createOptTri(group *OptimizeGroup, ov VertID, e1, e2 EdgeID, second, third VertID) error {
	opp, ok := c.findEdge(second, third)
	if !ok {
		c.logf("groupopt: CreateOptTri: no opposite edge between %d and %d, skipping", second, third)
		return nil
	}

	ovp := c.vertex(ov).pv
	secondp := c.vertex(second).pv
	thirdp := c.vertex(third).pv

	tri := OptTri{
		V: [3]VertID{ov, second, third},
		Mid: [2]float64{
			(ovp[0] + secondp[0] + thirdp[0]) / 3,
			(ovp[1] + secondp[1] + thirdp[1]) / 3,
		},
	}

	for _, orig := range c.originalTris {
		a := c.vertex(orig.v0).pv
		b := c.vertex(orig.v1).pv
		cc := c.vertex(orig.v2).pv
		if PointInTri(tri.Mid, a, b, cc) {
			tri.Filled = true
			break
		}
	}

	c.island.tris = append(c.island.tris, tri)
	triID := TriID(len(c.island.tris) - 1)

	c.linkTriToEdge(triID, e1, ov, second)
	c.linkTriToEdge(triID, e2, third, ov)
	c.linkTriToEdge(triID, opp, second, third)

	return nil
}

// linkTriToEdge assigns triID to edge's frontTri or backTri depending on
// whether the edge's stored endpoint order matches (from,to), the
// triangle's CCW direction along that side. A side already claimed by an
// earlier triangle is logged and left alone (spec §4.6, §7 class 3).
func (c *Context) linkTriToEdge(triID TriID, edgeID EdgeID, from, to VertID) {
	e := c.edge(edgeID)
	switch {
	case e.v1 == from && e.v2 == to:
		if e.frontTri != NilTri {
			c.logf("groupopt: LinkTriToEdge: front side of edge %d already linked, skipping", edgeID)
			return
		}
		e.frontTri = triID
	case e.v1 == to && e.v2 == from:
		if e.backTri != NilTri {
			c.logf("groupopt: LinkTriToEdge: back side of edge %d already linked, skipping", edgeID)
			return
		}
		e.backTri = triID
	default:
		c.logf("groupopt: LinkTriToEdge: edge %d does not connect %d and %d, skipping", edgeID, from, to)
	}
}
