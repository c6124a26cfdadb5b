package planet

import "github.com/Faultbox/planetgen/internal/config"

// OptionsFromConfig selects the settings for shape out of a loaded config.
func OptionsFromConfig(cfg *config.Config, shape Shape) Options {
	opts := Options{
		Shape:        shape,
		Subdivisions: cfg.Planet.Subdivisions,
		Zoom:         cfg.Tile.Zoom,
		Displace:     cfg.Planet.Displace,
		Noise:        cfg.Noise,
		Shaper:       cfg.Terrain,
		Workers:      cfg.Runtime.Workers,
	}
	if shape == ShapeTile {
		opts.Displace = cfg.Tile.Displace
	}
	return opts
}
