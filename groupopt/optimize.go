package groupopt

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/iceisfun/trioptimize/vec3"
)

// OptimizeOptList runs the full pipeline for a single group: project,
// build the crossing arrangement, optimize it, and emit the result back
// onto group.TriList (spec §2 steps 1–7). It is exported so callers that
// already have a single group in hand do not need to build a one-element
// list just to call OptimizeGroupList.
func OptimizeOptList(group *OptimizeGroup, planeNormal vec3.Vec, opts ...Option) error {
	basis := vec3.ProjectAxes(planeNormal)
	group.Axis = [2]vec3.Vec{basis.Axis0, basis.Axis1}

	ctx := NewContext(opts...)

	edges, err := ctx.AddOriginalEdges(group, basis)
	if err != nil {
		return fatalf(err, group, "AddOriginalEdges")
	}
	if err := ctx.SplitOriginalEdgesAtCrossings(edges); err != nil {
		return fatalf(err, group, "SplitOriginalEdgesAtCrossings")
	}

	if err := ctx.AddInteriorEdges(); err != nil {
		return fatalf(err, group, "AddInteriorEdges (pass 1)")
	}
	if err := ctx.BuildOptTriangles(group); err != nil {
		return fatalf(err, group, "BuildOptTriangles (pass 1)")
	}
	if err := ctx.RemoveInteriorEdges(); err != nil {
		return fatalf(err, group, "RemoveInteriorEdges")
	}
	if err := ctx.CombineColinearEdges(); err != nil {
		return fatalf(err, group, "CombineColinearEdges")
	}
	if ctx.cfg.strictEdgeCounts {
		ctx.validateEdgeCounts()
	}
	if err := ctx.CullUnusedVerts(); err != nil {
		return fatalf(err, group, "CullUnusedVerts")
	}
	if err := ctx.AddInteriorEdges(); err != nil {
		return fatalf(err, group, "AddInteriorEdges (pass 2)")
	}
	if err := ctx.BuildOptTriangles(group); err != nil {
		return fatalf(err, group, "BuildOptTriangles (pass 2)")
	}

	ctx.RegenerateTriangles(group, planeNormal)

	group.TriList = group.RegeneratedTris
	group.RegeneratedTris = nil

	return nil
}

// validateEdgeCounts is the opt-in diagnostic behind WithStrictEdgeCounts:
// it logs any vertex whose incident-edge count after CombineColinearEdges
// is neither 0 nor 2, matching the original ValidateEdgeCounts but
// promoted from a commented-out Printf to an actual (opt-in) log line —
// see DESIGN.md for why this Open Question was resolved that way.
func (c *Context) validateEdgeCounts() {
	c.island.walkVerts(func(v VertID) {
		n := c.incidentCount(v)
		if n != 0 && n != 2 {
			c.logf("groupopt: ValidateEdgeCounts: vertex %d has %d incident edges", v, n)
		}
	})
}

// OptimizeGroupList runs OptimizeOptList over every group in the list,
// resolving each group's plane normal via planes (spec §6). It stops and
// returns the first fatal error encountered, leaving later groups
// unprocessed — a partially-optimized group list is never silently
// returned as if complete.
func OptimizeGroupList(groups *OptimizeGroup, planes PlaneTable, opts ...Option) error {
	for g := groups; g != nil; g = g.Next {
		normal := planes.Normal(g.PlaneNum)
		if err := OptimizeOptList(g, normal, opts...); err != nil {
			return fmt.Errorf("groupopt: plane %d: %w", g.PlaneNum, err)
		}
	}
	return nil
}

// OptimizeGroupListConcurrent is the optional group-level parallel variant
// spec §5 allows but does not require: each group gets its own Context
// (arenas are never shared across groups, matching the original's
// per-group reset), so groups are safe to process concurrently. A failing
// group does not stop the others: every group is processed, and the first
// error reported is returned.
func OptimizeGroupListConcurrent(groups *OptimizeGroup, planes PlaneTable, opts ...Option) error {
	var eg errgroup.Group
	for g := groups; g != nil; g = g.Next {
		g := g
		eg.Go(func() error {
			normal := planes.Normal(g.PlaneNum)
			if err := OptimizeOptList(g, normal, opts...); err != nil {
				return fmt.Errorf("groupopt: plane %d: %w", g.PlaneNum, err)
			}
			return nil
		})
	}
	return eg.Wait()
}
