// Package geometry tessellates cube-sphere and Web-Mercator tile meshes.
package geometry

// quad holds the corner indices of one grid cell:
//
//	c00 c01
//	c10 c11
//
// Rows run down, columns run across.
type quad struct {
	c00, c01, c10, c11 uint32
}

// gridIndex returns the flat index of (row, col) in a row-major grid.
func gridIndex(row, col, stride int) uint32 {
	return uint32(row*stride + col)
}

// cellQuad returns the corners of the cell whose top-left vertex is
// (row, col), shifted by offset.
func cellQuad(row, col, stride int, offset uint32) quad {
	return quad{
		c00: offset + gridIndex(row, col, stride),
		c01: offset + gridIndex(row, col+1, stride),
		c10: offset + gridIndex(row+1, col, stride),
		c11: offset + gridIndex(row+1, col+1, stride),
	}
}

// forEachCell calls fn for every cell of a grid with the given number of
// vertex rows and columns, row by row.
func forEachCell(rows, cols int, fn func(row, col int)) {
	for row := 0; row < rows-1; row++ {
		for col := 0; col < cols-1; col++ {
			fn(row, col)
		}
	}
}
