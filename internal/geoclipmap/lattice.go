package geoclipmap

import "github.com/go-gl/mathgl/mgl32"

// buildPatchLattice builds a (size+1) x (size+1) grid of vertices at integer
// lattice coordinates in the XZ plane, triangulated two triangles per unit
// cell. Vertices are addressed row-major: index = y*(size+1) + x. This is
// the unrefined base shape for both the tile and filler meshes.
func buildPatchLattice(size int) ([]mgl32.Vec3, []uint32) {
	rowWidth := size + 1

	vertices := make([]mgl32.Vec3, 0, rowWidth*rowWidth)
	for y := 0; y < rowWidth; y++ {
		for x := 0; x < rowWidth; x++ {
			vertices = append(vertices, mgl32.Vec3{float32(x), 0, float32(y)})
		}
	}

	indices := make([]uint32, 0, size*size*6)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			indices = append(indices,
				latticeIndex(x, y, rowWidth),
				latticeIndex(x+1, y+1, rowWidth),
				latticeIndex(x, y+1, rowWidth),
				latticeIndex(x, y, rowWidth),
				latticeIndex(x+1, y, rowWidth),
				latticeIndex(x+1, y+1, rowWidth),
			)
		}
	}

	return vertices, indices
}

func latticeIndex(x, y, rowWidth int) uint32 {
	return uint32(y*rowWidth + x)
}
