package groupopt

// newEdge allocates an edge between v1 and v2, links it into both
// endpoints' incidence chains and onto the island's edge list, and returns
// its handle. It does not check for an existing edge between the same pair
// — callers that need dedup (AddEdgeIfNotAlready) must check first.
func (c *Context) newEdge(v1, v2 VertID, created bool) (EdgeID, error) {
	id, err := c.allocEdge()
	if err != nil {
		return NilEdge, err
	}
	e := c.edge(id)
	e.v1, e.v2 = v1, v2
	e.created = created
	c.linkEdge(id)
	c.island.addEdge(id)
	return id, nil
}

// linkEdge threads e onto the incidence chains of both its endpoints,
// mirroring the original LinkEdge: each endpoint's chain head becomes e,
// with e's link field for that endpoint pointing at the previous head.
func (c *Context) linkEdge(id EdgeID) {
	e := c.edge(id)
	v1 := c.vertex(e.v1)
	e.v1link = v1.edges
	v1.edges = id

	v2 := c.vertex(e.v2)
	e.v2link = v2.edges
	v2.edges = id
}

// removeEdgeFromVert unlinks e from vert's incidence chain, matching the
// original RemoveEdgeFromVert. vert must be NilVert-safe: a no-op when
// vert is NilVert.
func (c *Context) removeEdgeFromVert(id EdgeID, vert VertID) error {
	if vert == NilVert {
		return nil
	}
	v := c.vertex(vert)
	prev := &v.edges
	for *prev != NilEdge {
		cur := *prev
		if cur == id {
			e := c.edge(id)
			switch vert {
			case e.v1:
				*prev = e.v1link
			case e.v2:
				*prev = e.v2link
			default:
				return ErrMislinkedEdge
			}
			return nil
		}
		e := c.edge(cur)
		switch vert {
		case e.v1:
			prev = &e.v1link
		case e.v2:
			prev = &e.v2link
		default:
			return ErrMislinkedEdge
		}
	}
	return ErrMislinkedEdge
}

// unlinkEdge removes e from both its endpoints' incidence chains and from
// the island's edge list, matching the original UnlinkEdge. The edge
// record itself stays in the arena (handles are never reused) but is no
// longer reachable from any traversal.
func (c *Context) unlinkEdge(id EdgeID) error {
	e := c.edge(id)
	if err := c.removeEdgeFromVert(id, e.v1); err != nil {
		return err
	}
	if err := c.removeEdgeFromVert(id, e.v2); err != nil {
		return err
	}
	c.island.removeEdge(id)
	return nil
}

// walkIncident calls fn for every edge incident to v, in chain order.
func (c *Context) walkIncident(v VertID, fn func(EdgeID)) {
	e := c.vertex(v).edges
	for e != NilEdge {
		_, next := c.edge(e).otherEnd(v)
		fn(e)
		e = next
	}
}

// incidentCount returns the number of edges incident to v.
func (c *Context) incidentCount(v VertID) int {
	n := 0
	c.walkIncident(v, func(EdgeID) { n++ })
	return n
}

// findEdge returns the edge between a and b, if one is currently linked
// into either endpoint's incidence chain, and whether it was found.
func (c *Context) findEdge(a, b VertID) (EdgeID, bool) {
	found := NilEdge
	c.walkIncident(a, func(id EdgeID) {
		if found != NilEdge {
			return
		}
		e := c.edge(id)
		if (e.v1 == a && e.v2 == b) || (e.v1 == b && e.v2 == a) {
			found = id
		}
	})
	return found, found != NilEdge
}

// addEdgeIfNotAlready adds an edge between a and b unless one already
// exists in the arrangement, matching AddEdgeIfNotAlready (spec §4.4).
func (c *Context) addEdgeIfNotAlready(a, b VertID, created bool) (EdgeID, error) {
	if id, ok := c.findEdge(a, b); ok {
		return id, nil
	}
	return c.newEdge(a, b, created)
}
