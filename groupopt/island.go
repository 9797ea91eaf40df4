package groupopt

// Island is the single connected arrangement built from one group's input
// triangles: the vertex and edge incident chains reachable from the
// group's geometry, plus the triangles BuildOptTriangles derives from
// them. The original implementation kept one global optBounds/vertex/edge
// set per group and reset it between groups; here that reset is simply
// constructing a fresh Context, and Island is the subset of that Context's
// state that actually belongs to the arrangement (as opposed to Context's
// arenas, which are sized for the whole run).
type Island struct {
	ctx *Context

	// verts and edges are the heads of the island's vertex and edge lists,
	// threaded through optVertex.islandNext / optEdge.islandNext. Every
	// vertex or edge allocated by Context ends up linked onto one of these
	// two lists exactly once.
	verts VertID
	edges EdgeID

	// tris holds the most recent BuildOptTriangles pass's output. It is
	// replaced wholesale on every pass rather than threaded through a
	// linked list, since triangles carry no capacity limit and the whole
	// set is always rebuilt together.
	tris []OptTri
}

// addVert links v onto the island's vertex list.
func (is *Island) addVert(v VertID) {
	is.ctx.vertex(v).islandNext = is.verts
	is.verts = v
}

// addEdge links e onto the island's edge list.
func (is *Island) addEdge(e EdgeID) {
	is.ctx.edge(e).islandNext = is.edges
	is.edges = e
}

// walkVerts calls fn for every vertex currently on the island's vertex
// list, in list order.
func (is *Island) walkVerts(fn func(VertID)) {
	for v := is.verts; v != NilVert; v = is.ctx.vertex(v).islandNext {
		fn(v)
	}
}

// walkEdges calls fn for every edge currently on the island's edge list,
// in list order. fn may be called with an edge already removed from the
// island by an earlier callback in the same walk only if the caller
// captures the next pointer itself; walkEdges always reads islandNext
// before invoking fn to make iteration safe against edge removal.
func (is *Island) walkEdges(fn func(EdgeID)) {
	e := is.edges
	for e != NilEdge {
		next := is.ctx.edge(e).islandNext
		fn(e)
		e = next
	}
}

// removeVert unlinks v from the island's vertex list. It is O(n) in the
// number of vertices still on the list, matching the original's linear
// unlink of optVertex_t from its owning list.
func (is *Island) removeVert(v VertID) {
	if is.verts == v {
		is.verts = is.ctx.vertex(v).islandNext
		return
	}
	for cur := is.verts; cur != NilVert; cur = is.ctx.vertex(cur).islandNext {
		next := is.ctx.vertex(cur).islandNext
		if next == v {
			is.ctx.vertex(cur).islandNext = is.ctx.vertex(v).islandNext
			return
		}
	}
}

// removeEdge unlinks e from the island's edge list.
func (is *Island) removeEdge(e EdgeID) {
	if is.edges == e {
		is.edges = is.ctx.edge(e).islandNext
		return
	}
	for cur := is.edges; cur != NilEdge; cur = is.ctx.edge(cur).islandNext {
		next := is.ctx.edge(cur).islandNext
		if next == e {
			is.ctx.edge(cur).islandNext = is.ctx.edge(e).islandNext
			return
		}
	}
}

// vertCount and edgeCount are used by tests and by the strict edge-count
// diagnostic; they walk the list rather than keeping a running counter
// since removal is already O(n) and a counter would just be another place
// to get out of sync with the list itself.
func (is *Island) vertCount() int {
	n := 0
	is.walkVerts(func(VertID) { n++ })
	return n
}

func (is *Island) edgeCount() int {
	n := 0
	is.walkEdges(func(EdgeID) { n++ })
	return n
}
