package geometry

import (
	"fmt"
	"strconv"
	"strings"
)

// OSMTileTemplate is the standard OpenStreetMap raster tile endpoint.
const OSMTileTemplate = "https://tile.openstreetmap.org/{z}/{x}/{y}.png"

// TileCoord addresses a slippy-map tile.
type TileCoord struct {
	Z, X, Y int
}

func (t TileCoord) String() string {
	return fmt.Sprintf("%d/%d/%d", t.Z, t.X, t.Y)
}

// Validate checks that the tile exists at its zoom level.
func (t TileCoord) Validate() error {
	if err := checkZoom(t.Z); err != nil {
		return err
	}
	n := 1 << t.Z
	if t.X < 0 || t.X >= n || t.Y < 0 || t.Y >= n {
		return fmt.Errorf("tile %s out of range at zoom %d", t, t.Z)
	}
	return nil
}

// UVRect returns the UV range the tile covers in a Mercator tile mesh.
func (t TileCoord) UVRect() (u0, v0, u1, v1 float64, err error) {
	if err := t.Validate(); err != nil {
		return 0, 0, 0, 0, err
	}
	n := float64(int(1) << t.Z)
	return float64(t.X) / n, float64(t.Y) / n, float64(t.X+1) / n, float64(t.Y+1) / n, nil
}

// URL expands {z}, {x} and {y} in template.
func (t TileCoord) URL(template string) string {
	r := strings.NewReplacer(
		"{z}", strconv.Itoa(t.Z),
		"{x}", strconv.Itoa(t.X),
		"{y}", strconv.Itoa(t.Y),
	)
	return r.Replace(template)
}

// TileAt returns the tile containing UV (u, v) at the given zoom.
// Coordinates on the far edge belong to the last tile.
func TileAt(zoom int, u, v float64) (TileCoord, error) {
	if err := checkZoom(zoom); err != nil {
		return TileCoord{}, err
	}
	n := 1 << zoom
	return TileCoord{Z: zoom, X: clampCell(int(u*float64(n)), n), Y: clampCell(int(v*float64(n)), n)}, nil
}

// TilesForZoom lists every tile at a zoom level in row-major order, which
// matches the cell order of BuildMercatorTile.
func TilesForZoom(zoom int) ([]TileCoord, error) {
	if err := checkZoom(zoom); err != nil {
		return nil, err
	}
	n := 1 << zoom
	tiles := make([]TileCoord, 0, n*n)
	for y := range n {
		for x := range n {
			tiles = append(tiles, TileCoord{Z: zoom, X: x, Y: y})
		}
	}
	return tiles, nil
}

func checkZoom(zoom int) error {
	if zoom < 0 || zoom > MaxZoom {
		return fmt.Errorf("%w: %d (want 0..%d)", ErrInvalidZoom, zoom, MaxZoom)
	}
	return nil
}

func clampCell(c, n int) int {
	if c < 0 {
		return 0
	}
	if c >= n {
		return n - 1
	}
	return c
}
