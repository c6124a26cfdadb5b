// planetgen builds planet surface meshes and reports on the result.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/planetgen/internal/config"
	"github.com/Faultbox/planetgen/internal/geometry"
	"github.com/Faultbox/planetgen/internal/logger"
	"github.com/Faultbox/planetgen/internal/planet"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "sphere":
		cmdGenerate(planet.ShapeSphere, args)
	case "tile":
		cmdGenerate(planet.ShapeTile, args)
	case "tiles":
		cmdTiles(args)
	case "info":
		cmdInfo(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`planetgen - procedural planet mesh generator

Usage:
  planetgen <command> [options]

Commands:
  sphere    Build a displaced cube sphere
  tile      Build a Web-Mercator tile mesh
  tiles     List the slippy-map tiles covering the tile mesh
  info      Print the effective configuration as YAML

Examples:
  planetgen sphere -subdivisions 200 -seed 7
  planetgen tile -zoom 5 -displace
  planetgen info -config planetgen.yaml

Options:`)
	config.PrintDefaults()
}

// setup parses flags, loads config and starts logging.
func setup(args []string) *config.Config {
	if err := config.ParseFlags(args); err != nil {
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	if path := config.SaveConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			logger.Error("failed to save config", zap.String("path", path), zap.Error(err))
			os.Exit(1)
		}
		logger.Info("config saved", zap.String("path", path))
	}
	return cfg
}

func cmdGenerate(shape planet.Shape, args []string) {
	cfg := setup(args)
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	res, err := planet.Generate(planet.OptionsFromConfig(cfg, shape))
	if err != nil {
		logger.Error("generation failed", zap.String("shape", string(shape)), zap.Error(err))
		os.Exit(1)
	}

	s := res.Stats
	fmt.Printf("Shape:     %s\n", shape)
	switch shape {
	case planet.ShapeSphere:
		fmt.Printf("Grid:      %d per face edge\n", cfg.Planet.Subdivisions)
	case planet.ShapeTile:
		fmt.Printf("Zoom:      %d\n", cfg.Tile.Zoom)
	}
	fmt.Printf("Vertices:  %d\n", s.Vertices)
	fmt.Printf("Triangles: %d\n", s.Triangles)
	fmt.Printf("Radius:    %.5f .. %.5f\n", s.MinRadius, s.MaxRadius)
	fmt.Printf("Bounds:    min %v max %v\n", s.Bounds.Min, s.Bounds.Max)
	fmt.Printf("Relief:    %.0f m at Earth scale\n", s.ReliefMeters())
	fmt.Println()
	fmt.Println("Timings:")
	fmt.Printf("  build     %v\n", s.Timings.Build)
	fmt.Printf("  displace  %v\n", s.Timings.Displace)
	fmt.Printf("  normals   %v\n", s.Timings.Normals)
	fmt.Printf("  total     %v\n", s.Timings.Total)
}

func cmdTiles(args []string) {
	cfg := setup(args)
	defer logger.Sync()

	tiles, err := geometry.TilesForZoom(cfg.Tile.Zoom)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, tc := range tiles {
		u0, v0, u1, v1, err := tc.UVRect()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%-12v uv [%.4f,%.4f]-[%.4f,%.4f]  %s\n", tc, u0, v0, u1, v1, tc.URL(cfg.Tile.URLTemplate))
	}
}

func cmdInfo(args []string) {
	cfg := setup(args)
	defer logger.Sync()

	out, err := cfg.YAML()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(out))
}
