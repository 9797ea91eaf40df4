package groupopt

import "github.com/iceisfun/trioptimize/vec3"

// fixedPlanes is a PlaneTable with a single normal for every plane index,
// enough for tests that only ever use one group.
type fixedPlanes struct {
	normal vec3.Vec
}

func (f fixedPlanes) Normal(int) vec3.Vec { return f.normal }

// tri3 builds a MapTri from three 2D points lying in the z=0 plane, with
// an upward normal and a zero texture coordinate — the common case for
// scenario tests that only care about the projected footprint.
func tri3(a, b, c [2]float64) *MapTri {
	up := vec3.Vec{X: 0, Y: 0, Z: 1}
	return &MapTri{V: [3]Payload{
		{Pos: vec3.Vec{X: a[0], Y: a[1], Z: 0}, Normal: up},
		{Pos: vec3.Vec{X: b[0], Y: b[1], Z: 0}, Normal: up},
		{Pos: vec3.Vec{X: c[0], Y: c[1], Z: 0}, Normal: up},
	}}
}

func prependTri(list *MapTri, t *MapTri) *MapTri {
	t.Next = list
	return t
}

// triArea2 returns twice the signed projected area of a MapTri, assuming
// it was built in the XY plane like tri3 produces.
func triArea2(t *MapTri) float64 {
	a, b, c := t.V[0].Pos, t.V[1].Pos, t.V[2].Pos
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func countOutputTris(list *MapTri) int {
	n := 0
	for t := list; t != nil; t = t.Next {
		n++
	}
	return n
}

func totalArea(list *MapTri) float64 {
	sum := 0.0
	for t := list; t != nil; t = t.Next {
		a := triArea2(t)
		if a < 0 {
			a = -a
		}
		sum += a / 2
	}
	return sum
}
