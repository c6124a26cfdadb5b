// Package config handles planet generation settings.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/planetgen/internal/geometry"
	"github.com/Faultbox/planetgen/internal/noise"
	"github.com/Faultbox/planetgen/internal/terrain"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds all generation settings.
type Config struct {
	Planet  PlanetConfig   `yaml:"planet"`
	Tile    TileConfig     `yaml:"tile"`
	Noise   noise.Params   `yaml:"noise"`
	Terrain terrain.Shaper `yaml:"terrain"`
	Runtime RuntimeConfig  `yaml:"runtime"`
	Logging LoggingConfig  `yaml:"logging"`
}

// PlanetConfig holds cube-sphere settings.
type PlanetConfig struct {
	Subdivisions int  `yaml:"subdivisions"` // grid points per cube face edge
	Displace     bool `yaml:"displace"`     // apply noise elevation
}

// TileConfig holds Web-Mercator tile mesh settings.
type TileConfig struct {
	Zoom        int    `yaml:"zoom"`
	Displace    bool   `yaml:"displace"`
	URLTemplate string `yaml:"url_template"` // tile image source the UVs align with
}

// RuntimeConfig holds execution settings.
type RuntimeConfig struct {
	Workers int `yaml:"workers"` // 0 = one per CPU
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Planet: PlanetConfig{
			Subdivisions: 400,
			Displace:     true,
		},
		Tile: TileConfig{
			Zoom:        4,
			Displace:    false,
			URLTemplate: geometry.OSMTileTemplate,
		},
		Noise:   noise.DefaultParams(),
		Terrain: terrain.DefaultShaper(),
		Runtime: RuntimeConfig{
			Workers: 0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks value ranges that would otherwise fail deep inside
// generation.
func (c *Config) Validate() error {
	if c.Planet.Subdivisions < 2 || c.Planet.Subdivisions > geometry.MaxSubdivisions {
		return fmt.Errorf("%w: planet.subdivisions %d", ErrInvalidConfig, c.Planet.Subdivisions)
	}
	if c.Tile.Zoom < 0 || c.Tile.Zoom > geometry.MaxZoom {
		return fmt.Errorf("%w: tile.zoom %d", ErrInvalidConfig, c.Tile.Zoom)
	}
	if err := c.Noise.Validate(); err != nil {
		return fmt.Errorf("%w: noise: %w", ErrInvalidConfig, err)
	}
	if c.Terrain.Amplitude < 0 || c.Terrain.LandExponent <= 0 || c.Terrain.OceanExponent <= 0 {
		return fmt.Errorf("%w: terrain exponents must be positive and amplitude non-negative", ErrInvalidConfig)
	}
	if c.Runtime.Workers < 0 {
		return fmt.Errorf("%w: runtime.workers %d", ErrInvalidConfig, c.Runtime.Workers)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level %q", ErrInvalidConfig, c.Logging.Level)
	}
	return nil
}
