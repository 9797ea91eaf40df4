// Package groupio reads and writes the JSON description of an optimizer
// group list, the input/output format for the cmd/trioptimize and
// cmd/trioptimize-preview drivers. It plays the role mesh.Save/mesh.Load
// plays for the mesh package, grounded on the same encoding/json pattern.
package groupio

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/iceisfun/trioptimize/groupopt"
	"github.com/iceisfun/trioptimize/vec3"
)

// vertexData is the wire form of a groupopt.Payload.
type vertexData struct {
	Pos    [3]float64 `json:"pos"`
	Normal [3]float64 `json:"normal"`
	ST     [2]float64 `json:"st"`
}

func (v vertexData) toPayload() groupopt.Payload {
	return groupopt.Payload{
		Pos:    vec3.Vec{X: v.Pos[0], Y: v.Pos[1], Z: v.Pos[2]},
		Normal: vec3.Vec{X: v.Normal[0], Y: v.Normal[1], Z: v.Normal[2]},
		ST:     v.ST,
	}
}

func fromPayload(p groupopt.Payload) vertexData {
	return vertexData{
		Pos:    [3]float64{p.Pos.X, p.Pos.Y, p.Pos.Z},
		Normal: [3]float64{p.Normal.X, p.Normal.Y, p.Normal.Z},
		ST:     p.ST,
	}
}

// triData is the wire form of a groupopt.MapTri: three vertices, no Next —
// list order in the JSON array is the list order of the reconstructed
// linked list.
type triData [3]vertexData

// groupData is the wire form of a groupopt.OptimizeGroup.
type groupData struct {
	PlaneNum    int        `json:"plane_num"`
	Material    string     `json:"material"`
	MergeGroup  int        `json:"merge_group"`
	PlaneNormal [3]float64 `json:"plane_normal"`
	Triangles   []triData  `json:"triangles"`
}

// Document is the top-level JSON shape: an ordered list of groups.
type Document struct {
	Groups []groupData `json:"groups"`
}

// staticPlanes answers PlaneTable.Normal from the per-group normals carried
// in the document itself, so a loaded file needs no external plane table.
type staticPlanes map[int]vec3.Vec

func (p staticPlanes) Normal(planeNum int) vec3.Vec { return p[planeNum] }

// Load reads a group list from filename, returning the head of the linked
// OptimizeGroup list and a PlaneTable built from the normals recorded
// alongside each group.
func Load(filename string) (*groupopt.OptimizeGroup, groupopt.PlaneTable, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	var doc Document
	if err := json.NewDecoder(file).Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("groupio: decode %s: %w", filename, err)
	}

	planes := make(staticPlanes, len(doc.Groups))
	var head, tail *groupopt.OptimizeGroup
	for _, gd := range doc.Groups {
		normal := vec3.Vec{X: gd.PlaneNormal[0], Y: gd.PlaneNormal[1], Z: gd.PlaneNormal[2]}
		planes[gd.PlaneNum] = normal

		var triHead, triTail *groupopt.MapTri
		for _, td := range gd.Triangles {
			tri := &groupopt.MapTri{V: [3]groupopt.Payload{
				td[0].toPayload(), td[1].toPayload(), td[2].toPayload(),
			}}
			if triTail == nil {
				triHead = tri
			} else {
				triTail.Next = tri
			}
			triTail = tri
		}

		group := &groupopt.OptimizeGroup{
			PlaneNum:   gd.PlaneNum,
			Material:   gd.Material,
			MergeGroup: gd.MergeGroup,
			TriList:    triHead,
		}
		if tail == nil {
			head = group
		} else {
			tail.Next = group
		}
		tail = group
	}

	return head, planes, nil
}

// Save writes the group list (its RegeneratedTris/TriList, whichever a
// caller has populated, read from TriList) back out in the same format
// Load accepts, using normal to record each group's plane normal.
func Save(filename string, groups *groupopt.OptimizeGroup, normal func(planeNum int) vec3.Vec) error {
	var doc Document
	for g := groups; g != nil; g = g.Next {
		n := normal(g.PlaneNum)
		gd := groupData{
			PlaneNum:    g.PlaneNum,
			Material:    g.Material,
			MergeGroup:  g.MergeGroup,
			PlaneNormal: [3]float64{n.X, n.Y, n.Z},
		}
		for t := g.TriList; t != nil; t = t.Next {
			gd.Triangles = append(gd.Triangles, triData{
				fromPayload(t.V[0]), fromPayload(t.V[1]), fromPayload(t.V[2]),
			})
		}
		doc.Groups = append(doc.Groups, gd)
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
