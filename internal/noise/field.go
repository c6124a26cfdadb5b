// Package noise provides fractal (fBm) noise sampled on the unit sphere.
package noise

import (
	"errors"
	"fmt"

	"github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/ojrac/opensimplex-go"
)

// Backend names accepted in Params.Backend.
const (
	BackendSimplex = "simplex"
	BackendPerlin  = "perlin"
)

var (
	ErrUnknownBackend = errors.New("unknown noise backend")
	ErrInvalidParams  = errors.New("invalid noise parameters")
)

// Base is a coherent 3D noise function returning values in about [-1, 1].
type Base interface {
	Eval3(x, y, z float64) float64
}

// Source samples a scalar noise value for a direction on the unit sphere.
type Source interface {
	Sample(dir mgl32.Vec3) float64
}

// Params configures a fractal noise field.
type Params struct {
	Backend    string  `yaml:"backend"`
	Seed       int64   `yaml:"seed"`
	Octaves    int     `yaml:"octaves"`
	Frequency  float64 `yaml:"frequency"`
	Lacunarity float64 `yaml:"lacunarity"`
	Gain       float64 `yaml:"gain"`
}

// DefaultParams returns the planet terrain defaults: ten octaves of simplex
// noise at unit frequency, doubling frequency and halving amplitude per octave.
func DefaultParams() Params {
	return Params{
		Backend:    BackendSimplex,
		Seed:       0,
		Octaves:    10,
		Frequency:  1,
		Lacunarity: 2,
		Gain:       0.5,
	}
}

// Validate checks that the parameters describe a usable field.
func (p Params) Validate() error {
	switch p.Backend {
	case BackendSimplex, BackendPerlin:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, p.Backend)
	}
	if p.Octaves < 1 {
		return fmt.Errorf("%w: octaves %d < 1", ErrInvalidParams, p.Octaves)
	}
	if p.Frequency <= 0 || p.Lacunarity <= 0 {
		return fmt.Errorf("%w: frequency and lacunarity must be positive", ErrInvalidParams)
	}
	if p.Gain < 0 {
		return fmt.Errorf("%w: gain %v < 0", ErrInvalidParams, p.Gain)
	}
	return nil
}

// Field sums octaves of a base noise (fractal Brownian motion).
// It is immutable after construction and safe for concurrent use.
type Field struct {
	params  Params
	octaves []Base
	norm    float64
}

// New creates a Field. Each octave uses its own seed (Seed + octave) so
// octaves do not line up at the origin.
func New(p Params) (*Field, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	f := &Field{params: p, octaves: make([]Base, p.Octaves)}
	amp := 1.0
	for i := range f.octaves {
		f.octaves[i] = newBase(p.Backend, p.Seed+int64(i))
		f.norm += amp
		amp *= p.Gain
	}
	return f, nil
}

// Params returns the configuration the field was built with.
func (f *Field) Params() Params {
	return f.params
}

// Sample returns the normalized fBm value at dir. The result stays within
// the base noise range.
func (f *Field) Sample(dir mgl32.Vec3) float64 {
	return f.Eval3(float64(dir[0]), float64(dir[1]), float64(dir[2]))
}

// Eval3 evaluates the field at an arbitrary point.
func (f *Field) Eval3(x, y, z float64) float64 {
	freq := f.params.Frequency
	amp := 1.0
	var sum float64
	for _, base := range f.octaves {
		sum += amp * base.Eval3(x*freq, y*freq, z*freq)
		freq *= f.params.Lacunarity
		amp *= f.params.Gain
	}
	return sum / f.norm
}

func newBase(backend string, seed int64) Base {
	if backend == BackendPerlin {
		// One octave here; fractal summation happens in Field.
		return perlinBase{perlin.NewPerlin(2, 2, 1, seed)}
	}
	return opensimplex.New(seed)
}

type perlinBase struct {
	p *perlin.Perlin
}

func (b perlinBase) Eval3(x, y, z float64) float64 {
	return b.p.Noise3D(x, y, z)
}
