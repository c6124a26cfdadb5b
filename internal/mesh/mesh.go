package mesh

import (
	"fmt"
)

// VertexCount returns the number of positions.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of faces.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices)
}

// Validate checks index and attribute invariants.
func (m *Mesh) Validate() error {
	n := len(m.Positions)
	if len(m.Normals) != 0 && len(m.Normals) != n {
		return fmt.Errorf("%w: %d normals for %d positions", ErrAttributeLength, len(m.Normals), n)
	}
	if len(m.UVs) != 0 && len(m.UVs) != n {
		return fmt.Errorf("%w: %d uvs for %d positions", ErrAttributeLength, len(m.UVs), n)
	}
	for i, tri := range m.Indices {
		if err := checkTriangle(tri, n); err != nil {
			return fmt.Errorf("triangle %d: %w", i, err)
		}
	}
	return nil
}

func checkTriangle(tri Triangle, n int) error {
	for _, idx := range tri {
		if int(idx) >= n {
			return fmt.Errorf("%w: %d >= %d", ErrIndexOutOfRange, idx, n)
		}
	}
	return nil
}

// Bounds returns the axis-aligned bounding box of all positions.
// An empty mesh yields zero bounds.
func (m *Mesh) Bounds() Bounds {
	if len(m.Positions) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: m.Positions[0], Max: m.Positions[0]}
	for _, p := range m.Positions[1:] {
		for axis := range 3 {
			if p[axis] < b.Min[axis] {
				b.Min[axis] = p[axis]
			}
			if p[axis] > b.Max[axis] {
				b.Max[axis] = p[axis]
			}
		}
	}
	return b
}

// RadiusRange returns the smallest and largest distance of any position
// from the origin.
func (m *Mesh) RadiusRange() (minR, maxR float32) {
	if len(m.Positions) == 0 {
		return 0, 0
	}
	minR = m.Positions[0].Len()
	maxR = minR
	for _, p := range m.Positions[1:] {
		r := p.Len()
		minR = min(minR, r)
		maxR = max(maxR, r)
	}
	return minR, maxR
}

// FlatIndices returns the triangle list as a flat index buffer in draw order.
func (m *Mesh) FlatIndices() []uint32 {
	out := make([]uint32, 0, len(m.Indices)*3)
	for _, tri := range m.Indices {
		out = append(out, tri[0], tri[1], tri[2])
	}
	return out
}
