package geometry

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/planetgen/internal/mesh"
)

// MaxSubdivisions keeps the vertex count of a cube sphere addressable by
// uint32 indices.
const MaxSubdivisions = 16384

var ErrInvalidSubdivisions = errors.New("invalid cube sphere subdivisions")

// cubeFace is a cube face spanned by two axes; its outward axis is x × y.
type cubeFace struct {
	x, y mgl32.Vec3
}

var (
	axisX = mgl32.Vec3{1, 0, 0}
	axisY = mgl32.Vec3{0, 1, 0}
	axisZ = mgl32.Vec3{0, 0, 1}
)

// cubeFaces lists the faces in generation order. Outward axes are
// +Z, -Z, -X, +X, +Y, -Y.
var cubeFaces = [6]cubeFace{
	{axisX, axisY},
	{axisX.Mul(-1), axisY},
	{axisY.Mul(-1), axisZ},
	{axisY, axisZ},
	{axisX.Mul(-1), axisZ},
	{axisX, axisZ},
}

// BuildCubeSphere tessellates each cube face into a subdivisions x
// subdivisions grid and projects every point onto the unit sphere.
// Faces do not share vertices.
func BuildCubeSphere(subdivisions int) (*mesh.Mesh, error) {
	if subdivisions < 2 || subdivisions > MaxSubdivisions {
		return nil, fmt.Errorf("%w: %d (want 2..%d)", ErrInvalidSubdivisions, subdivisions, MaxSubdivisions)
	}

	perFace := subdivisions * subdivisions
	cells := (subdivisions - 1) * (subdivisions - 1)
	m := &mesh.Mesh{
		Positions: make([]mgl32.Vec3, 0, 6*perFace),
		Indices:   make([]mesh.Triangle, 0, 6*cells*2),
	}

	for _, face := range cubeFaces {
		addFace(m, face, subdivisions)
	}
	return m, nil
}

func addFace(m *mesh.Mesh, face cubeFace, subdivisions int) {
	z := face.x.Cross(face.y)
	offset := uint32(len(m.Positions))
	last := float32(subdivisions - 1)

	for i := range subdivisions {
		for j := range subdivisions {
			// [0, subdivisions-1] -> [-1, 1]
			x := 2*float32(i)/last - 1
			y := 2*float32(j)/last - 1
			p := face.x.Mul(x).Add(face.y.Mul(y)).Add(z)
			m.Positions = append(m.Positions, p.Normalize())
		}
	}

	forEachCell(subdivisions, subdivisions, func(i, j int) {
		q := cellQuad(i, j, subdivisions, offset)
		m.Indices = append(m.Indices,
			mesh.Triangle{q.c00, q.c10, q.c01},
			mesh.Triangle{q.c01, q.c10, q.c11},
		)
	})
}
