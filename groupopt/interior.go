package groupopt

// RemoveInteriorEdges unlinks every edge whose two candidate triangles
// (or the single one present, with a missing side treated as unfilled)
// agree on fill classification, leaving only the outline between filled
// and empty territory (spec §4.7, invariant V5 / property P3).
func (c *Context) RemoveInteriorEdges() error {
	var toRemove []EdgeID
	c.island.walkEdges(func(id EdgeID) {
		e := c.edge(id)
		front := e.frontTri != NilTri && c.island.tris[e.frontTri].Filled
		back := e.backTri != NilTri && c.island.tris[e.backTri].Filled
		if front == back {
			toRemove = append(toRemove, id)
		}
	})

	for _, id := range toRemove {
		if err := c.unlinkEdge(id); err != nil {
			return err
		}
	}
	return nil
}
