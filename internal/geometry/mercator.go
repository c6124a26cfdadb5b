package geometry

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/planetgen/internal/mesh"
	pmath "github.com/Faultbox/planetgen/pkg/math"
)

// MaxZoom is the deepest zoom whose (2^z+1)^2 vertex grid fits uint32 indices.
const MaxZoom = 15

var ErrInvalidZoom = errors.New("invalid tile zoom level")

// BuildMercatorTile tessellates the Web-Mercator world square at the given
// zoom into a (2^zoom+1) x (2^zoom+1) vertex grid. Each vertex keeps its UV
// and is projected through the inverse Mercator onto the unit sphere, so
// grid cell (x, y) covers exactly slippy-map tile (zoom, x, y).
func BuildMercatorTile(zoom int) (*mesh.Mesh, error) {
	if err := checkZoom(zoom); err != nil {
		return nil, err
	}

	n := 1 << zoom
	stride := n + 1
	vertCount := stride * stride

	m := &mesh.Mesh{
		Positions: make([]mgl32.Vec3, 0, vertCount),
		UVs:       make([]mgl32.Vec2, 0, vertCount),
		Indices:   make([]mesh.Triangle, 0, n*n*2),
	}

	for y := 0; y <= n; y++ {
		v := float64(y) / float64(n)
		for x := 0; x <= n; x++ {
			u := float64(x) / float64(n)
			m.UVs = append(m.UVs, mgl32.Vec2{float32(u), float32(v)})

			lon, lat := pmath.TileLonLat(u, v)
			px, py, pz := pmath.LonLatToUnit(lon, lat)
			m.Positions = append(m.Positions, mgl32.Vec3{float32(px), float32(py), float32(pz)})
		}
	}

	forEachCell(stride, stride, func(y, x int) {
		q := cellQuad(y, x, stride, 0)
		m.Indices = append(m.Indices,
			mesh.Triangle{q.c00, q.c01, q.c10},
			mesh.Triangle{q.c01, q.c11, q.c10},
		)
	})

	return m, nil
}
