package geoclipmap

import "github.com/go-gl/mathgl/mgl32"

// weldKey is a vertex position quantized to five decimal digits. Two
// triangles that independently compute the same edge midpoint produce the
// same key, so the shared midpoint resolves to a single vertex.
type weldKey struct {
	x, y, z int32
}

func quantize(v mgl32.Vec3) weldKey {
	return weldKey{
		x: int32(v.X() * 100000.0),
		y: int32(v.Y() * 100000.0),
		z: int32(v.Z() * 100000.0),
	}
}

// weldTable deduplicates vertex positions during one refinement pass. It is
// scoped to that pass and discarded afterward.
type weldTable struct {
	lookup   map[weldKey]uint32
	vertices []mgl32.Vec3
}

func newWeldTable(capacity int) *weldTable {
	return &weldTable{
		lookup:   make(map[weldKey]uint32, capacity),
		vertices: make([]mgl32.Vec3, 0, capacity),
	}
}

// weld returns the index of an existing vertex at v's quantized position,
// appending v as a new vertex otherwise.
func (t *weldTable) weld(v mgl32.Vec3) uint32 {
	key := quantize(v)
	if idx, ok := t.lookup[key]; ok {
		return idx
	}
	idx := uint32(len(t.vertices))
	t.lookup[key] = idx
	t.vertices = append(t.vertices, v)
	return idx
}
