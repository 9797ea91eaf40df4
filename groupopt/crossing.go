package groupopt

// sub2 returns a - b componentwise.
func sub2(a, b [2]float64) [2]float64 { return [2]float64{a[0] - b[0], a[1] - b[1]} }

func dot2(a, b [2]float64) float64 { return a[0]*b[0] + a[1]*b[1] }

func rawCross(a, b [2]float64) float64 { return a[0]*b[1] - a[1]*b[0] }

// sameUnorderedPair reports whether {a1,a2} and {b1,b2} are the same
// unordered endpoint pair.
func sameUnorderedPair(a1, a2, b1, b2 VertID) bool {
	return (a1 == b1 && a2 == b2) || (a1 == b2 && a2 == b1)
}

// EdgesCross reports whether segment (a1,a2) crosses segment (b1,b2).
// Identical unordered pairs are defined to cross; otherwise both directions
// of PointsStraddleLine must hold (spec §4.2).
func (c *Context) EdgesCross(a1, a2, b1, b2 VertID) bool {
	if sameUnorderedPair(a1, a2, b1, b2) {
		return true
	}
	return c.pointsStraddleLine(a1, a2, b1, b2) && c.pointsStraddleLine(b1, b2, a1, a2)
}

// pointsStraddleLine reports whether p1 and p2 lie on opposite sides of the
// line through l1,l2 (spec §4.2's PointsStraddleLine). Shared-endpoint
// touches that are not collinear never straddle.
func (c *Context) pointsStraddleLine(p1, p2, l1, l2 VertID) bool {
	pv1 := c.vertex(p1).pv
	pv2 := c.vertex(p2).pv
	lv1 := c.vertex(l1).pv
	lv2 := c.vertex(l2).pv

	if IsTriangleDegenerate(lv1, lv2, pv1) && IsTriangleDegenerate(lv1, lv2, pv2) {
		d := sub2(lv2, lv1)
		dots := [4]float64{
			dot2(sub2(pv1, lv1), d),
			dot2(sub2(pv2, lv1), d),
			dot2(sub2(pv1, lv2), d),
			dot2(sub2(pv2, lv2), d),
		}
		hasPos, hasNeg := false, false
		for _, v := range dots {
			switch {
			case v > 0:
				hasPos = true
			case v < 0:
				hasNeg = true
			}
		}
		return hasPos && hasNeg
	}

	distinct := p1 != l1 && p1 != l2 && p2 != l1 && p2 != l2
	if distinct {
		sideA := c.IsTriangleValid(lv1, lv2, pv1) && c.IsTriangleValid(lv1, lv2, pv2)
		sideB := c.IsTriangleValid(lv1, pv1, lv2) && c.IsTriangleValid(lv1, pv2, lv2)
		return !(sideA || sideB)
	}

	// Shared endpoint, not collinear: a touch, not a crossing.
	return false
}

// EdgeIntersection computes the split point of segment (p1,p2) against the
// line through (l1,l2), interning the resulting vertex. ok is false when
// the pair is exactly colinear (spec §4.3), in which case the caller falls
// back to the VertexBetween handling in SplitOriginalEdgesAtCrossings.
func (c *Context) EdgeIntersection(p1, p2, l1, l2 VertID) (id VertID, ok bool, err error) {
	pv1 := c.vertex(p1).pv
	pv2 := c.vertex(p2).pv
	lv1 := c.vertex(l1).pv
	lv2 := c.vertex(l2).pv

	cross1 := rawCross(sub2(pv1, lv1), sub2(pv1, lv2))
	cross2v := rawCross(sub2(pv2, lv1), sub2(pv2, lv2))

	denom := cross1 - cross2v
	if denom == 0 {
		return NilVert, false, nil
	}
	f := cross1 / denom

	payload := LerpPayload(c.vertex(p1).payload, c.vertex(p2).payload, f)
	pv := [2]float64{
		pv1[0] + f*(pv2[0]-pv1[0]),
		pv1[1] + f*(pv2[1]-pv1[1]),
	}

	id, err = c.internVertex(pv, payload)
	return id, true, err
}
