package geoclipmap

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/fastland/terraclip/pkg/geom"
)

// buildTrim builds the L-shaped strip that covers one quadrant transition of
// a ring. It consists of four arms of size+1 vertex pairs; arms with odd
// index use mirrored triangle order so the strip's front face stays
// consistently oriented as the arm direction changes. The bounding box is
// accumulated over every emitted vertex since the footprint is irregular.
func buildTrim(size int) ([]mgl32.Vec3, []uint32, geom.Box3) {
	rowWidth := size + 1
	offset := size

	vertices := make([]mgl32.Vec3, 0, rowWidth*8)

	// Arm 0: along +X at the outer edge.
	for i := 0; i < rowWidth; i++ {
		x := float32(offset + i + 1)
		vertices = append(vertices,
			mgl32.Vec3{x, 0, 0},
			mgl32.Vec3{x, 0, 1},
		)
	}
	// Arm 1: along +Z.
	for i := 0; i < rowWidth; i++ {
		z := float32(offset + i + 1)
		vertices = append(vertices,
			mgl32.Vec3{1, 0, z},
			mgl32.Vec3{0, 0, z},
		)
	}
	// Arm 2: along -X.
	for i := 0; i < rowWidth; i++ {
		x := float32(-offset + i)
		vertices = append(vertices,
			mgl32.Vec3{x, 0, 1},
			mgl32.Vec3{x, 0, 0},
		)
	}
	// Arm 3: along -Z.
	for i := 0; i < rowWidth; i++ {
		z := float32(-offset + i)
		vertices = append(vertices,
			mgl32.Vec3{0, 0, z},
			mgl32.Vec3{1, 0, z},
		)
	}

	indices := make([]uint32, 0, size*24)
	for i := 0; i < size*4; i++ {
		// Each arm carries rowWidth vertex pairs but only size cells, so the
		// pair index skips one pair at every arm boundary.
		arm := i / size

		bl := uint32((arm + i) * 2)
		br := bl + 1
		tl := bl + 2
		tr := bl + 3

		// Arms 2 and 3 list each vertex pair in mirrored order; swap the
		// pair roles so every arm keeps the same front face.
		if arm >= 2 {
			bl, br = br, bl
			tl, tr = tr, tl
		}

		if arm%2 == 0 {
			indices = append(indices, br, bl, tr, bl, tl, tr)
		} else {
			indices = append(indices, br, bl, tl, br, tl, tr)
		}
	}

	return vertices, indices, geom.FromPoints(vertices)
}

// buildCross builds the "+"-shaped double-width strip that sits directly
// beneath the viewer, made of two perpendicular rows of 2*(size+1) vertex
// pairs. The vertical arm skips the cell it shares with the horizontal arm
// so the center footprint is not triangulated twice.
func buildCross(size int) ([]mgl32.Vec3, []uint32, geom.Box3) {
	rowWidth := size + 1

	vertices := make([]mgl32.Vec3, 0, rowWidth*8)
	for i := 0; i < rowWidth*2; i++ {
		x := float32(i - size)
		vertices = append(vertices,
			mgl32.Vec3{x, 0, 0},
			mgl32.Vec3{x, 0, 1},
		)
	}

	startOfVertical := uint32(len(vertices))
	for i := 0; i < rowWidth*2; i++ {
		z := float32(i - size)
		vertices = append(vertices,
			mgl32.Vec3{0, 0, z},
			mgl32.Vec3{1, 0, z},
		)
	}

	indices := make([]uint32, 0, size*24+6)
	for i := 0; i < size*2+1; i++ {
		bl := uint32(i * 2)
		br := bl + 1
		tl := bl + 2
		tr := bl + 3
		indices = append(indices, br, bl, tr, bl, tl, tr)
	}
	for i := 0; i < size*2+1; i++ {
		if i == size {
			continue // center cell already covered by the horizontal arm
		}
		bl := startOfVertical + uint32(i*2)
		br := bl + 1
		tl := bl + 2
		tr := bl + 3
		indices = append(indices, br, tr, bl, bl, tr, tl)
	}

	return vertices, indices, geom.FromPoints(vertices)
}

// buildSeam builds the one-vertex-wide ring around the outer boundary of a
// whole clipmap level: 4*(4*size+2) perimeter vertices triangulated as a
// closed fan. The triangles are degenerate in the XZ plane by construction;
// they gain area once heights are displaced, stitching the level's fine
// outer edge to the next, coarser ring.
func buildSeam(size int) ([]mgl32.Vec3, []uint32, geom.Box3) {
	// One clipmap level spans 4*size+1 cells, so its perimeter walks
	// 4*size+2 vertices per side.
	sideLen := size*4 + 2
	edge := float32(sideLen)

	vertices := make([]mgl32.Vec3, sideLen*4)
	for i := 0; i < sideLen; i++ {
		f := float32(i)
		vertices[sideLen*0+i] = mgl32.Vec3{f, 0, 0}
		vertices[sideLen*1+i] = mgl32.Vec3{edge, 0, f}
		vertices[sideLen*2+i] = mgl32.Vec3{edge - f, 0, edge}
		vertices[sideLen*3+i] = mgl32.Vec3{0, 0, edge - f}
	}

	indices := make([]uint32, 0, sideLen*6)
	for i := 0; i < sideLen*4; i += 2 {
		indices = append(indices, uint32(i+1), uint32(i), uint32(i+2))
	}
	// Wrap the final triangle back to vertex 0 to close the loop exactly.
	indices[len(indices)-1] = 0

	return vertices, indices, geom.FromPoints(vertices)
}
