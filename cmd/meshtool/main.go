// meshtool is a CLI utility for inspecting and converting STL/OBJ mesh files.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/matthew-oconnell/vulcan-mesh/internal/config"
	"github.com/matthew-oconnell/vulcan-mesh/internal/logger"
	"github.com/matthew-oconnell/vulcan-mesh/pkg/mesh"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	switch args[0] {
	case "info":
		cmdInfo(args[1:])
	case "surfaces", "ls":
		cmdSurfaces(cfg, args[1:])
	case "normals":
		cmdNormals(cfg, args[1:])
	case "convert":
		cmdConvert(args[1:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`meshtool - STL/OBJ mesh inspection utility

Usage:
  meshtool [flags] <command> [args]

Commands:
  info <file>              Show mesh statistics
  surfaces <file>          List surfaces with tags and provenance
  normals <file>           Show area-weighted normal per surface
  convert <in> <out.stl>   Convert a mesh to binary STL

Flags:
  -config <path>   Config file path
  -debug           Enable debug logging
  -lump            Merge same-named regions into one surface
  -no-lump         Keep every region as its own surface
  -log <path>      Write logs to the given file

Examples:
  meshtool info duct.obj
  meshtool -no-lump surfaces manifold.obj
  meshtool convert duct.obj duct.stl`)
}

func loadMesh(path string) *mesh.Mesh {
	m, err := mesh.ParseFile(path)
	if err != nil {
		logger.Error("parse failed", zap.String("file", path), zap.Error(err))
		os.Exit(1)
	}
	logger.Debug("parsed mesh",
		zap.String("file", path),
		zap.Int("regions", len(m.Regions)),
		zap.Int("faces", m.TotalFaces))
	return m
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshtool info <file>")
		os.Exit(1)
	}

	m := loadMesh(args[0])

	fmt.Printf("File:     %s\n", args[0])
	fmt.Printf("Regions:  %d\n", len(m.Regions))
	fmt.Printf("Faces:    %d\n", m.TotalFaces)
	fmt.Printf("Vertices: %d\n", m.TotalVertices)
	fmt.Printf("Center:   (%.4f, %.4f, %.4f)\n", m.Center[0], m.Center[1], m.Center[2])
	fmt.Printf("Scale:    %.6f\n", m.Scale)
}

func cmdSurfaces(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshtool surfaces <file>")
		os.Exit(1)
	}

	m := loadMesh(args[0])
	surfaces := mesh.BuildSurfaces(m, cfg.Mesh.LumpRegions)

	fmt.Printf("%-4s %-24s %-6s %-8s %s\n", "TAG", "NAME", "FACES", "LUMPED", "REGIONS")
	for _, s := range surfaces {
		lumped := "-"
		if s.Lumped {
			lumped = "yes"
		}
		fmt.Printf("%-4d %-24s %-6d %-8s %d\n",
			s.Tag, s.Name, s.Geometry.TriangleCount(), lumped, s.OriginalRegionCount)
	}
}

func cmdNormals(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshtool normals <file>")
		os.Exit(1)
	}

	m := loadMesh(args[0])
	surfaces := mesh.BuildSurfaces(m, cfg.Mesh.LumpRegions)

	for _, s := range surfaces {
		n := mesh.AreaWeightedNormal(s.Geometry)
		fmt.Printf("%-24s (%.4f, %.4f, %.4f)\n", s.Name, n.X, n.Y, n.Z)
	}
}

func cmdConvert(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: meshtool convert <in> <out.stl>")
		os.Exit(1)
	}

	m := loadMesh(args[0])

	var geo mesh.TriangleBuffer
	for _, r := range m.Regions {
		geo.Append(r.Geometry)
	}

	data := mesh.EncodeBinarySTL(geo)
	if err := os.WriteFile(args[1], data, 0644); err != nil {
		logger.Error("write failed", zap.String("file", args[1]), zap.Error(err))
		os.Exit(1)
	}

	fmt.Printf("Wrote %s (%d triangles, %d bytes)\n", args[1], geo.TriangleCount(), len(data))
}
