package groupopt

import (
	"github.com/iceisfun/trioptimize/spatial"
	"github.com/iceisfun/trioptimize/types"
)

// Context holds the per-group working state that the original C++
// implementation kept in module-level arrays (optVerts, optEdges,
// optBounds) and implicitly reset between groups. Constructing a fresh
// Context is that reset: every group gets its own arenas, so groups can now
// be processed concurrently (see OptimizeGroupListConcurrent).
type Context struct {
	cfg config

	verts []optVertex
	edges []optEdge

	// internIndex accelerates FindOptVertex: it buckets interned vertices
	// by projected position so a new candidate only needs to be compared,
	// by exact equality, against the handful of vertices sharing its cell
	// instead of the whole arena. Bucketing never changes the result only
	// exact duplicates are ever returned, per invariant V3.
	internIndex spatial.Index

	island Island

	// originalTris holds the group's input triangles, retained for the
	// PointInTri fill-classification tests performed by BuildOptTriangles.
	originalTris []inputTriangle
}

// inputTriangle is one input triangle's three interned vertex handles,
// kept so fill classification (PointInTri) can be run against the
// original 2D geometry without re-deriving it from the MapTri list.
type inputTriangle struct {
	v0, v1, v2 VertID
}

// NewContext allocates the per-group arenas and working state for one
// OptimizeOptList run.
func NewContext(opts ...Option) *Context {
	cfg := newDefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	ctx := &Context{
		cfg:         cfg,
		verts:       make([]optVertex, 0, 256),
		edges:       make([]optEdge, 0, 1024),
		internIndex: spatial.NewHashGrid(cfg.internCellSize),
	}
	ctx.island.ctx = ctx
	ctx.island.verts = NilVert
	ctx.island.edges = NilEdge
	ctx.island.tris = nil
	return ctx
}

func (c *Context) vertex(id VertID) *optVertex { return &c.verts[id] }
func (c *Context) edge(id EdgeID) *optEdge      { return &c.edges[id] }

// allocVert appends a new vertex record and returns its handle.
func (c *Context) allocVert(pv [2]float64, payload Payload) (VertID, error) {
	if len(c.verts) >= c.cfg.maxVertices {
		return NilVert, ErrVertexArenaExhausted
	}
	id := VertID(len(c.verts))
	c.verts = append(c.verts, optVertex{pv: pv, payload: payload, edges: NilEdge, islandNext: NilVert})
	c.internIndex.AddVertex(types.VertexID(id), types.Point{X: pv[0], Y: pv[1]})
	c.island.addVert(id)
	return id, nil
}

// allocEdge appends a new zero-valued edge record and returns its handle.
func (c *Context) allocEdge() (EdgeID, error) {
	if len(c.edges) >= c.cfg.maxEdges {
		return NilEdge, ErrEdgeArenaExhausted
	}
	id := EdgeID(len(c.edges))
	c.edges = append(c.edges, optEdge{v1: NilVert, v2: NilVert, v1link: NilEdge, v2link: NilEdge, frontTri: NilTri, backTri: NilTri})
	return id, nil
}

func (c *Context) logf(format string, args ...any) {
	c.cfg.logger.Printf(format, args...)
}
