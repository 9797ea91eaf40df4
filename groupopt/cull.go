package groupopt

// CullUnusedVerts removes every vertex with no incident edges, and every
// vertex with exactly one incident edge — a dangling spur left behind by
// a colinear collapse on a sliver — unlinking that spur's edge first
// (spec §4.9). Removing a spur can turn its surviving neighbour into a new
// spur or an isolated vertex, so candidates are processed from a work
// queue until none remain.
func (c *Context) CullUnusedVerts() error {
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

		switch c.incidentCount(v) {
		case 0:
			c.island.removeVert(v)
		case 1:
			var spur EdgeID
			c.walkIncident(v, func(id EdgeID) { spur = id })
			other, _ := c.edge(spur).otherEnd(v)
			if err := c.unlinkEdge(spur); err != nil {
				return err
			}
			c.island.removeVert(v)
			push(other)
		}
	}
	return nil
}
