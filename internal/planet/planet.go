// Package planet runs the mesh generation pipeline: tessellate, displace,
// reconstruct normals.
package planet

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/planetgen/internal/geometry"
	"github.com/Faultbox/planetgen/internal/logger"
	"github.com/Faultbox/planetgen/internal/mesh"
	"github.com/Faultbox/planetgen/internal/noise"
	"github.com/Faultbox/planetgen/internal/terrain"
	pmath "github.com/Faultbox/planetgen/pkg/math"
)

// Shape selects the tessellation.
type Shape string

const (
	ShapeSphere Shape = "sphere"
	ShapeTile   Shape = "tile"
)

var ErrUnknownShape = errors.New("unknown mesh shape")

// Options configures one generation run.
type Options struct {
	Shape        Shape
	Subdivisions int // ShapeSphere only
	Zoom         int // ShapeTile only
	Displace     bool
	Noise        noise.Params
	Shaper       terrain.Shaper
	Workers      int // 0 = one per CPU
}

// DefaultOptions returns a displaced cube sphere with the standard terrain.
func DefaultOptions() Options {
	return Options{
		Shape:        ShapeSphere,
		Subdivisions: 400,
		Zoom:         4,
		Displace:     true,
		Noise:        noise.DefaultParams(),
		Shaper:       terrain.DefaultShaper(),
	}
}

// Stats summarizes a generated mesh.
type Stats struct {
	Vertices  int
	Triangles int
	MinRadius float32
	MaxRadius float32
	Bounds    mesh.Bounds
	Timings   Timings
}

// ReliefMeters is the radius span scaled to an Earth-sized planet.
func (s Stats) ReliefMeters() float64 {
	return float64(s.MaxRadius-s.MinRadius) * pmath.EarthRadius
}

// Timings records how long each stage took.
type Timings struct {
	Build    time.Duration
	Displace time.Duration
	Normals  time.Duration
	Total    time.Duration
}

// Result is the finished geometry handed to a renderer.
type Result struct {
	Mesh  *mesh.Mesh
	Stats Stats
}

// Generate builds a fresh mesh for opts. Equal options produce identical
// geometry.
func Generate(opts Options) (*Result, error) {
	log := logger.Named("planet")
	start := time.Now()
	var timings Timings

	done := logger.Stage("build")
	m, err := build(opts)
	if err != nil {
		return nil, err
	}
	timings.Build = done(
		zap.String("shape", string(opts.Shape)),
		zap.Int("vertices", m.VertexCount()),
		zap.Int("triangles", m.TriangleCount()),
	)

	if opts.Displace {
		field, err := noise.New(opts.Noise)
		if err != nil {
			return nil, fmt.Errorf("creating noise field: %w", err)
		}
		done = logger.Stage("displace")
		opts.Shaper.Displace(m, field, opts.Workers)
		timings.Displace = done(
			zap.String("noise", opts.Noise.Backend),
			zap.Int64("seed", opts.Noise.Seed),
			zap.Int("octaves", opts.Noise.Octaves),
		)
	}

	done = logger.Stage("normals")
	if err := m.RecomputeNormals(opts.Workers); err != nil {
		return nil, fmt.Errorf("reconstructing normals: %w", err)
	}
	timings.Normals = done()

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("generated mesh: %w", err)
	}

	timings.Total = time.Since(start)
	minR, maxR := m.RadiusRange()
	stats := Stats{
		Vertices:  m.VertexCount(),
		Triangles: m.TriangleCount(),
		MinRadius: minR,
		MaxRadius: maxR,
		Bounds:    m.Bounds(),
		Timings:   timings,
	}

	log.Info("mesh generated",
		zap.String("shape", string(opts.Shape)),
		zap.Int("vertices", stats.Vertices),
		zap.Int("triangles", stats.Triangles),
		zap.Float32("min_radius", minR),
		zap.Float32("max_radius", maxR),
		zap.Duration("elapsed", timings.Total),
	)

	return &Result{Mesh: m, Stats: stats}, nil
}

func build(opts Options) (*mesh.Mesh, error) {
	switch opts.Shape {
	case ShapeSphere:
		return geometry.BuildCubeSphere(opts.Subdivisions)
	case ShapeTile:
		return geometry.BuildMercatorTile(opts.Zoom)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, opts.Shape)
	}
}
