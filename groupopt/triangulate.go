package groupopt

import (
	"math"
	"sort"
)

// candidatePair is an unordered vertex pair considered by AddInteriorEdges,
// together with its projected-space length.
type candidatePair struct {
	a, b   VertID
	length float64
}

// AddInteriorEdges triangulates the island's current active vertex set
// (those with at least one incident edge) with a greedy shortest-diagonal
// strategy: every unordered pair is sorted by projected length, and each
// is committed via TryAddNewEdge unless it would cross an edge already in
// the arrangement (spec §4.5).
func (c *Context) AddInteriorEdges() error {
	var active []VertID
	c.island.walkVerts(func(v VertID) {
		if c.incidentCount(v) > 0 {
			active = append(active, v)
		}
	})

	var pairs []candidatePair
	for i := 0; i < len(active); i++ {
		for j := i + 1; j < len(active); j++ {
			a, b := active[i], active[j]
			pa := c.vertex(a).pv
			pb := c.vertex(b).pv
			dx, dy := pa[0]-pb[0], pa[1]-pb[1]
			pairs = append(pairs, candidatePair{a: a, b: b, length: math.Hypot(dx, dy)})
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].length < pairs[j].length })

	for _, p := range pairs {
		if _, _, err := c.TryAddNewEdge(p.a, p.b); err != nil {
			return err
		}
	}
	return nil
}

// TryAddNewEdge attempts to add an edge between a and b, accepting it only
// if it crosses none of the edges already in the island. Accepted edges
// are marked created=true, matching the original's distinction between
// input-derived and synthesized edges.
func (c *Context) TryAddNewEdge(a, b VertID) (EdgeID, bool, error) {
	if a == b {
		return NilEdge, false, nil
	}
	if _, exists := c.findEdge(a, b); exists {
		return NilEdge, false, nil
	}

	crosses := false
	c.island.walkEdges(func(id EdgeID) {
		if crosses {
			return
		}
		e := c.edge(id)
		if c.EdgesCross(a, b, e.v1, e.v2) {
			crosses = true
		}
	})
	if crosses {
		return NilEdge, false, nil
	}

	id, err := c.newEdge(a, b, true)
	if err != nil {
		return NilEdge, false, err
	}
	return id, true, nil
}
