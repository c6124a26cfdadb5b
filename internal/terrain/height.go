// Package terrain shapes planet elevation from noise.
package terrain

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/planetgen/internal/mesh"
	"github.com/Faultbox/planetgen/internal/noise"
	"github.com/Faultbox/planetgen/internal/parallel"
	pmath "github.com/Faultbox/planetgen/pkg/math"
)

// Shaper maps raw noise to a radial displacement factor.
type Shaper struct {
	LandExponent  float64 `yaml:"land_exponent"`  // steepens high ground
	OceanExponent float64 `yaml:"ocean_exponent"` // controls how much low ground is flattened
	Amplitude     float64 `yaml:"amplitude"`      // maximum radius gain over the base sphere
}

// DefaultShaper returns the standard land/ocean curve with radius in [1, 1.5].
func DefaultShaper() Shaper {
	return Shaper{
		LandExponent:  4,
		OceanExponent: 3,
		Amplitude:     0.5,
	}
}

// Height maps a raw noise value in [-1, 1] to a shaped height in [0, 1].
// Raw values outside that range are clamped.
func (s Shaper) Height(raw float64) float64 {
	h := pmath.Clamp(0.5*raw+0.5, 0, 1)
	ocean := 1 - h

	land := pow(h, s.LandExponent)
	ocean = 1 - pow(ocean, s.OceanExponent)

	// ocean == 0 (lowest raw noise) flattens to the floor; ocean == 1 keeps
	// the full land height.
	return pmath.Smoothstep(0, 1, ocean) * land
}

// Factor returns the radial factor 1 + Amplitude*Height(raw).
func (s Shaper) Factor(raw float64) float64 {
	return 1 + s.Height(raw)*s.Amplitude
}

// HeightFactor samples src at dir and returns the radial factor.
func (s Shaper) HeightFactor(dir mgl32.Vec3, src noise.Source) float32 {
	return float32(s.Factor(src.Sample(dir)))
}

// Displace moves every position radially: it is projected onto the unit
// sphere and scaled by its height factor. Vertices are independent, so the
// work is spread across workers.
func (s Shaper) Displace(m *mesh.Mesh, src noise.Source, workers int) {
	positions := m.Positions
	parallel.ForRange(len(positions), workers, func(start, end int) {
		for i := start; i < end; i++ {
			p := positions[i]
			if p.Dot(p) == 0 {
				continue
			}
			dir := p.Normalize()
			positions[i] = dir.Mul(s.HeightFactor(dir, src))
		}
	})
}

// HeightFactor applies the default shaper.
func HeightFactor(dir mgl32.Vec3, src noise.Source) float32 {
	return DefaultShaper().HeightFactor(dir, src)
}

// Displace applies the default shaper to a mesh.
func Displace(m *mesh.Mesh, src noise.Source, workers int) {
	DefaultShaper().Displace(m, src, workers)
}

// pow special-cases the integer exponents of the default curve.
func pow(x, e float64) float64 {
	switch e {
	case 3:
		return x * x * x
	case 4:
		x2 := x * x
		return x2 * x2
	}
	return gomath.Pow(x, e)
}
