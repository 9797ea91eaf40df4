// Command trioptimize loads a group list (the 2D-projected coplanar
// triangle groups a map compiler would hand the optimizer), runs the
// retriangulation pipeline over every group, and reports the result.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/iceisfun/trioptimize/groupio"
	"github.com/iceisfun/trioptimize/groupopt"
	"github.com/iceisfun/trioptimize/meshbridge"
)

var (
	output           = flag.String("output", "", "write the optimized group list to this JSON file (default: none)")
	meshOut          = flag.String("mesh", "", "write a validated mesh.json per group to this prefix, e.g. prefix-<planeNum>.json")
	dumpMesh         = flag.Bool("dump-mesh", false, "print a human-readable mesh summary (vertices, triangles, perimeters, holes) for each plane")
	colinearEpsilon  = flag.Float64("colinear-epsilon", groupopt.DefaultColinearEpsilon, "perpendicular distance tolerance for collapsing colinear chains")
	robustPredicates = flag.Bool("robust-predicates", false, "use adaptive-precision orientation tests instead of the exact tripled comparison")
	strictEdgeCounts = flag.Bool("strict-edge-counts", false, "log vertices whose incident edge count is neither 0 nor 2 after colinear reduction")
	concurrent       = flag.Bool("concurrent", false, "optimize groups concurrently (groups are independent; order of diagnostics is not preserved)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <groups.json>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Retriangulates every coplanar group in groups.json.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	filename := flag.Arg(0)

	log.Printf("Loading groups from %s...", filename)
	groups, planes, err := groupio.Load(filename)
	if err != nil {
		log.Fatalf("Failed to load groups: %v", err)
	}

	numGroups, numInputTris := 0, 0
	groupInputTris := make(map[*groupopt.OptimizeGroup]int)
	for g := groups; g != nil; g = g.Next {
		numGroups++
		groupInputTris[g] = groupopt.CountTriList(g.TriList)
		numInputTris += groupInputTris[g]
	}
	log.Printf("Loaded %d groups, %d input triangles", numGroups, numInputTris)

	opts := []groupopt.Option{
		groupopt.WithColinearEpsilon(*colinearEpsilon),
		groupopt.WithRobustPredicates(*robustPredicates),
		groupopt.WithStrictEdgeCounts(*strictEdgeCounts),
	}

	optimize := groupopt.OptimizeGroupList
	if *concurrent {
		optimize = groupopt.OptimizeGroupListConcurrent
	}

	log.Println("\n=== Optimizing ===")
	if err := optimize(groups, planes, opts...); err != nil {
		var fatal *groupopt.FatalError
		if errors.As(err, &fatal) {
			log.Fatalf("❌ Fatal error in plane %d: %v", fatal.Group.PlaneNum, fatal.Err)
		}
		log.Fatalf("❌ Optimize failed: %v", err)
	}

	numOutputTris := 0
	for g := groups; g != nil; g = g.Next {
		n := groupopt.CountTriList(g.TriList)
		numOutputTris += n
		log.Printf("plane %d: %d -> %d triangles", g.PlaneNum, groupInputTris[g], n)
	}
	log.Printf("✓ Optimized %d groups: %d -> %d triangles total", numGroups, numInputTris, numOutputTris)

	if *meshOut != "" || *dumpMesh {
		log.Println("\n=== Validating against mesh topology ===")
		for g := groups; g != nil; g = g.Next {
			bridge, err := meshbridge.Build(g)
			if err != nil {
				log.Fatalf("❌ plane %d failed mesh validation: %v", g.PlaneNum, err)
			}

			if *dumpMesh {
				fmt.Fprintf(os.Stdout, "--- plane %d ---\n", g.PlaneNum)
				if err := bridge.Mesh.Print(os.Stdout); err != nil {
					log.Fatalf("Failed to print plane %d mesh: %v", g.PlaneNum, err)
				}
			}

			if *meshOut != "" {
				name := fmt.Sprintf("%s-%d.json", *meshOut, g.PlaneNum)
				if err := bridge.Mesh.Save(name); err != nil {
					log.Fatalf("Failed to save %s: %v", name, err)
				}
				log.Printf("✓ plane %d: %d vertices, %d triangles -> %s",
					g.PlaneNum, bridge.Mesh.NumVertices(), bridge.Mesh.NumTriangles(), name)
			}
		}
	}

	if *output != "" {
		if err := groupio.Save(*output, groups, planes.Normal); err != nil {
			log.Fatalf("Failed to save %s: %v", *output, err)
		}
		log.Printf("✓ Saved optimized groups to %s", *output)
	}
}
