package mesh

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestComputeNormalsSingleTriangle(t *testing.T) {
	positions := []mgl32.Vec3{{0, 0, 0}, {2, 0, 0}, {0, 3, 0}}
	normals, err := ComputeNormals(positions, []Triangle{{0, 1, 2}}, 1)
	if err != nil {
		t.Fatalf("ComputeNormals failed: %v", err)
	}

	want := mgl32.Vec3{0, 0, 1}
	for i, n := range normals {
		if !n.ApproxEqualThreshold(want, 1e-5) {
			t.Errorf("normal[%d] = %v, want %v", i, n, want)
		}
	}
}

func TestComputeNormalsEqualWeight(t *testing.T) {
	// Two faces share vertex 0: a large one facing +Z and a tiny one facing +X.
	// Area weighting would favor +Z; equal weighting lands on the bisector.
	positions := []mgl32.Vec3{
		{0, 0, 0},
		{100, 0, 0},
		{0, 100, 0},
		{0, 0.01, 0},
		{0, 0, 0.01},
	}
	indices := []Triangle{{0, 1, 2}, {0, 3, 4}}

	normals, err := ComputeNormals(positions, indices, 1)
	if err != nil {
		t.Fatalf("ComputeNormals failed: %v", err)
	}

	want := mgl32.Vec3{1, 0, 1}.Normalize()
	if !normals[0].ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("shared normal = %v, want %v", normals[0], want)
	}
}

func TestComputeNormalsUnitLength(t *testing.T) {
	m := quad()
	if err := m.RecomputeNormals(2); err != nil {
		t.Fatalf("RecomputeNormals failed: %v", err)
	}
	if len(m.Normals) != len(m.Positions) {
		t.Fatalf("len(Normals) = %d, want %d", len(m.Normals), len(m.Positions))
	}
	for i, n := range m.Normals {
		if l := n.Len(); l < 0.9999 || l > 1.0001 {
			t.Errorf("normal[%d] length = %v, want 1", i, l)
		}
	}
}

func TestComputeNormalsErrors(t *testing.T) {
	positions := []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {5, 5, 5}}

	_, err := ComputeNormals(positions, []Triangle{{0, 1, 2}}, 1)
	if !errors.Is(err, ErrDegenerateMesh) {
		t.Errorf("unreferenced vertex: err = %v, want %v", err, ErrDegenerateMesh)
	}

	_, err = ComputeNormals(positions, []Triangle{{0, 1, 9}}, 1)
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("bad index: err = %v, want %v", err, ErrIndexOutOfRange)
	}
}

func TestComputeNormalsZeroAreaFace(t *testing.T) {
	positions := []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 0, 0}}
	// Face 1 collapses to a line and must not disturb vertex 1.
	indices := []Triangle{{0, 1, 2}, {1, 3, 0}}

	normals, err := ComputeNormals(positions, indices, 1)
	if err != nil {
		t.Fatalf("ComputeNormals failed: %v", err)
	}
	if !normals[1].ApproxEqualThreshold(mgl32.Vec3{0, 0, 1}, 1e-5) {
		t.Errorf("normal[1] = %v, want +Z", normals[1])
	}
	if normals[3] != (mgl32.Vec3{}) {
		t.Errorf("normal[3] = %v, want zero for a vertex on zero-area faces only", normals[3])
	}
}

func TestComputeNormalsWorkerIndependent(t *testing.T) {
	// A grid large enough to be split across several tasks.
	const size = 120
	rng := rand.New(rand.NewSource(7))
	positions := make([]mgl32.Vec3, 0, size*size)
	for y := range size {
		for x := range size {
			positions = append(positions, mgl32.Vec3{float32(x), float32(y), rng.Float32()})
		}
	}
	var indices []Triangle
	for y := range size - 1 {
		for x := range size - 1 {
			i0 := uint32(y*size + x)
			i1 := i0 + 1
			i2 := i0 + size
			i3 := i2 + 1
			indices = append(indices, Triangle{i0, i1, i2}, Triangle{i1, i3, i2})
		}
	}

	serial, err := ComputeNormals(positions, indices, 1)
	if err != nil {
		t.Fatalf("serial ComputeNormals failed: %v", err)
	}
	parallel, err := ComputeNormals(positions, indices, 8)
	if err != nil {
		t.Fatalf("parallel ComputeNormals failed: %v", err)
	}
	for i := range serial {
		if serial[i] != parallel[i] {
			t.Fatalf("normal[%d]: serial %v != parallel %v", i, serial[i], parallel[i])
		}
	}
}

func TestBuildAdjacency(t *testing.T) {
	offsets, faces := buildAdjacency(4, []Triangle{{0, 1, 2}, {1, 3, 2}})

	wantOffsets := []int{0, 1, 3, 5, 6}
	for i, want := range wantOffsets {
		if offsets[i] != want {
			t.Errorf("offsets[%d] = %d, want %d", i, offsets[i], want)
		}
	}
	wantFaces := []uint32{0, 0, 1, 0, 1, 1}
	for i, want := range wantFaces {
		if faces[i] != want {
			t.Errorf("faces[%d] = %d, want %d", i, faces[i], want)
		}
	}
}
