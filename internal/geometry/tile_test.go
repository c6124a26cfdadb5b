package geometry

import (
	"errors"
	"testing"
)

func TestTileCoordURL(t *testing.T) {
	tile := TileCoord{Z: 3, X: 4, Y: 2}
	want := "https://tile.openstreetmap.org/3/4/2.png"
	if got := tile.URL(OSMTileTemplate); got != want {
		t.Errorf("URL() = %s, want %s", got, want)
	}
	if tile.String() != "3/4/2" {
		t.Errorf("String() = %s, want 3/4/2", tile.String())
	}
}

func TestTileCoordValidate(t *testing.T) {
	tests := []struct {
		tile    TileCoord
		wantErr bool
	}{
		{TileCoord{0, 0, 0}, false},
		{TileCoord{2, 3, 3}, false},
		{TileCoord{2, 4, 0}, true},
		{TileCoord{1, 0, -1}, true},
		{TileCoord{-1, 0, 0}, true},
		{TileCoord{16, 0, 0}, true},
	}
	for _, tt := range tests {
		err := tt.tile.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("Validate(%v) = %v, wantErr %v", tt.tile, err, tt.wantErr)
		}
	}
}

func TestTileCoordUVRect(t *testing.T) {
	u0, v0, u1, v1, err := TileCoord{Z: 2, X: 1, Y: 3}.UVRect()
	if err != nil {
		t.Fatalf("UVRect failed: %v", err)
	}
	if u0 != 0.25 || v0 != 0.75 || u1 != 0.5 || v1 != 1 {
		t.Errorf("UVRect() = (%v, %v, %v, %v), want (0.25, 0.75, 0.5, 1)", u0, v0, u1, v1)
	}

	for _, tile := range []TileCoord{{-1, 0, 0}, {16, 0, 0}, {2, 4, 0}} {
		if _, _, _, _, err := tile.UVRect(); err == nil {
			t.Errorf("UVRect(%v) should fail", tile)
		}
	}
}

func TestTileAt(t *testing.T) {
	tests := []struct {
		zoom int
		u, v float64
		want TileCoord
	}{
		{0, 0.7, 0.2, TileCoord{0, 0, 0}},
		{2, 0.3, 0.8, TileCoord{2, 1, 3}},
		{2, 1, 1, TileCoord{2, 3, 3}},
		{3, 0, 0, TileCoord{3, 0, 0}},
	}
	for _, tt := range tests {
		got, err := TileAt(tt.zoom, tt.u, tt.v)
		if err != nil {
			t.Errorf("TileAt(%d, %v, %v) failed: %v", tt.zoom, tt.u, tt.v, err)
			continue
		}
		if got != tt.want {
			t.Errorf("TileAt(%d, %v, %v) = %v, want %v", tt.zoom, tt.u, tt.v, got, tt.want)
		}
	}
}

func TestTileHelpersRejectBadZoom(t *testing.T) {
	tests := []struct {
		name string
		zoom int
	}{
		{"negative", -1},
		{"far negative", -64},
		{"past max", MaxZoom + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := TileAt(tt.zoom, 0.5, 0.5); !errors.Is(err, ErrInvalidZoom) {
				t.Errorf("TileAt(%d) error = %v, want %v", tt.zoom, err, ErrInvalidZoom)
			}
			tiles, err := TilesForZoom(tt.zoom)
			if !errors.Is(err, ErrInvalidZoom) {
				t.Errorf("TilesForZoom(%d) error = %v, want %v", tt.zoom, err, ErrInvalidZoom)
			}
			if tiles != nil {
				t.Errorf("TilesForZoom(%d) returned %d tiles", tt.zoom, len(tiles))
			}
		})
	}
}

func TestTilesForZoomMatchesMeshCells(t *testing.T) {
	const zoom = 2
	tiles, err := TilesForZoom(zoom)
	if err != nil {
		t.Fatalf("TilesForZoom failed: %v", err)
	}
	if len(tiles) != 16 {
		t.Fatalf("got %d tiles, want 16", len(tiles))
	}

	m, err := BuildMercatorTile(zoom)
	if err != nil {
		t.Fatalf("BuildMercatorTile failed: %v", err)
	}
	// Cell i emits triangles 2i and 2i+1; its first triangle starts at the
	// tile's top-left UV.
	for i, tile := range tiles {
		u0, v0, _, _, err := tile.UVRect()
		if err != nil {
			t.Fatalf("UVRect(%v) failed: %v", tile, err)
		}
		uv := m.UVs[m.Indices[2*i][0]]
		if float64(uv[0]) != u0 || float64(uv[1]) != v0 {
			t.Errorf("tile %v top-left uv = %v, want (%v, %v)", tile, uv, u0, v0)
		}
	}
}
