// Package mesh holds planet surface geometry and normal reconstruction.
package mesh

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrIndexOutOfRange = errors.New("triangle index out of range")
	ErrAttributeLength = errors.New("vertex attribute length mismatch")
	ErrDegenerateMesh  = errors.New("vertex not referenced by any triangle")
)

// Triangle references three positions in counter-clockwise order
// when viewed from outside the sphere.
type Triangle [3]uint32

// Mesh holds generated geometry ready to hand to a renderer.
// Normals and UVs are either empty or index-aligned with Positions.
type Mesh struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	UVs       []mgl32.Vec2
	Indices   []Triangle
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}
