package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/planetgen/internal/parallel"
)

// minFaceArea2 is the squared cross-product length below which a face is
// treated as zero-area and contributes no normal.
const minFaceArea2 = 1e-24

// RecomputeNormals replaces the mesh normals with smooth per-vertex normals.
func (m *Mesh) RecomputeNormals(workers int) error {
	normals, err := ComputeNormals(m.Positions, m.Indices, workers)
	if err != nil {
		return err
	}
	m.Normals = normals
	return nil
}

// ComputeNormals builds one unit normal per position by summing the unit
// normals of every incident face with equal weight and renormalizing.
//
// Work is split by vertex: face normals are computed per triangle, then each
// vertex gathers from its own adjacency list, so no two workers write the
// same slot. Faces are summed in triangle order, which keeps the result
// independent of the worker count.
func ComputeNormals(positions []mgl32.Vec3, indices []Triangle, workers int) ([]mgl32.Vec3, error) {
	n := len(positions)
	for i, tri := range indices {
		if err := checkTriangle(tri, n); err != nil {
			return nil, fmt.Errorf("triangle %d: %w", i, err)
		}
	}

	faceNormals := make([]mgl32.Vec3, len(indices))
	parallel.ForRange(len(indices), workers, func(start, end int) {
		for i := start; i < end; i++ {
			faceNormals[i] = faceNormal(positions, indices[i])
		}
	})

	offsets, faces := buildAdjacency(n, indices)
	for v := range n {
		if offsets[v] == offsets[v+1] {
			return nil, fmt.Errorf("%w: vertex %d", ErrDegenerateMesh, v)
		}
	}

	normals := make([]mgl32.Vec3, n)
	parallel.ForRange(n, workers, func(start, end int) {
		for v := start; v < end; v++ {
			var sum mgl32.Vec3
			for _, f := range faces[offsets[v]:offsets[v+1]] {
				sum = sum.Add(faceNormals[f])
			}
			normals[v] = normalize(sum)
		}
	})

	return normals, nil
}

// faceNormal returns the unit normal of a counter-clockwise triangle, or the
// zero vector for a zero-area face.
func faceNormal(positions []mgl32.Vec3, tri Triangle) mgl32.Vec3 {
	a := positions[tri[0]]
	e0 := positions[tri[1]].Sub(a)
	e1 := positions[tri[2]].Sub(a)
	return normalize(e0.Cross(e1))
}

func normalize(v mgl32.Vec3) mgl32.Vec3 {
	if v.Dot(v) < minFaceArea2 {
		return mgl32.Vec3{}
	}
	return v.Normalize()
}

// buildAdjacency returns a compressed vertex-to-face table: the faces
// incident to vertex v are faces[offsets[v]:offsets[v+1]], in triangle order.
// A triangle listing the same vertex twice appears twice in its list.
func buildAdjacency(vertexCount int, indices []Triangle) (offsets []int, faces []uint32) {
	offsets = make([]int, vertexCount+1)
	for _, tri := range indices {
		for _, idx := range tri {
			offsets[idx+1]++
		}
	}
	for v := range vertexCount {
		offsets[v+1] += offsets[v]
	}

	faces = make([]uint32, offsets[vertexCount])
	cursor := make([]int, vertexCount)
	copy(cursor, offsets[:vertexCount])
	for f, tri := range indices {
		for _, idx := range tri {
			faces[cursor[idx]] = uint32(f)
			cursor[idx]++
		}
	}
	return offsets, faces
}
