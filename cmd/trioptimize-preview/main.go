// Command trioptimize-preview optimizes a group list and rasterizes each
// resulting plane to a PNG, so a reviewer can eyeball the retriangulation
// without a full map-compiler round trip.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/iceisfun/trioptimize/groupio"
	"github.com/iceisfun/trioptimize/groupopt"
	"github.com/iceisfun/trioptimize/meshbridge"
	"github.com/iceisfun/trioptimize/rasterize"
	"github.com/iceisfun/trioptimize/vec3"
)

var (
	outDir         = flag.String("out", "", "output directory for PNGs (default: alongside the input file)")
	width          = flag.Int("width", 1024, "output image width")
	height         = flag.Int("height", 1024, "output image height")
	drawVertices   = flag.Bool("vertices", true, "draw vertices")
	drawEdges      = flag.Bool("edges", true, "draw edges")
	triangleLabels = flag.Bool("triangle-labels", false, "show triangle labels")
	skipOptimize   = flag.Bool("skip-optimize", false, "render the input groups as-is, without running the optimizer")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <groups.json>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Renders each optimized plane to a PNG.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	inputFile := flag.Arg(0)

	log.Printf("Loading groups from %s...", inputFile)
	groups, planes, err := groupio.Load(inputFile)
	if err != nil {
		log.Fatalf("Failed to load groups: %v", err)
	}

	if !*skipOptimize {
		log.Println("Optimizing...")
		if err := groupopt.OptimizeGroupList(groups, planes); err != nil {
			log.Fatalf("Failed to optimize: %v", err)
		}
	} else {
		for g := groups; g != nil; g = g.Next {
			basis := vec3.ProjectAxes(planes.Normal(g.PlaneNum))
			g.Axis = [2]vec3.Vec{basis.Axis0, basis.Axis1}
		}
	}

	dir := *outDir
	if dir == "" {
		dir = filepath.Dir(inputFile)
	}
	base := filepath.Base(inputFile)
	base = base[:len(base)-len(filepath.Ext(base))]

	opts := []rasterize.Option{
		rasterize.WithDimensions(*width, *height),
		rasterize.WithFillTriangles(true),
		rasterize.WithDrawVertices(*drawVertices),
		rasterize.WithDrawEdges(*drawEdges),
		rasterize.WithDrawPerimeters(false),
		rasterize.WithDrawHoles(false),
		rasterize.WithTriangleLabels(*triangleLabels),
		rasterize.WithColors(
			color.RGBA{255, 0, 0, 255},
			color.RGBA{255, 128, 0, 255},
			color.RGBA{120, 200, 120, 160},
			color.RGBA{60, 60, 60, 255},
			color.RGBA{0, 0, 255, 255},
		),
	}

	for g := groups; g != nil; g = g.Next {
		bridge, err := meshbridge.Build(g)
		if err != nil {
			log.Fatalf("plane %d: mesh validation failed: %v", g.PlaneNum, err)
		}

		img, err := rasterize.Rasterize(bridge.Mesh, opts...)
		if err != nil {
			log.Fatalf("plane %d: rasterize failed: %v", g.PlaneNum, err)
		}

		outName := filepath.Join(dir, fmt.Sprintf("%s-plane%d.png", base, g.PlaneNum))
		outFile, err := os.Create(outName)
		if err != nil {
			log.Fatalf("Failed to create %s: %v", outName, err)
		}
		if err := png.Encode(outFile, img); err != nil {
			outFile.Close()
			log.Fatalf("Failed to encode %s: %v", outName, err)
		}
		outFile.Close()

		log.Printf("✓ plane %d: %d triangles -> %s", g.PlaneNum, bridge.Mesh.NumTriangles(), outName)
	}
}
