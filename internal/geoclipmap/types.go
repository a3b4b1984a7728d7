// Package geoclipmap generates the fixed catalog of mesh primitives used to
// render concentric LOD rings of terrain geometry around a viewer. The
// catalog consists of eight meshes (tile, filler, trim, cross and seam
// shapes, with refined and unrefined variants of the first three) whose
// topology is guaranteed not to crack at LOD boundaries.
package geoclipmap

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/fastland/terraclip/pkg/geom"
)

// Slot identifies a mesh in the generated catalog. Downstream ring assembly
// indexes the catalog positionally, so the order of these constants is part
// of the contract.
type Slot int

const (
	SlotTile Slot = iota
	SlotFiller
	SlotTrim
	SlotCross
	SlotSeam
	SlotTileInner
	SlotFillerInner
	SlotTrimInner

	// SlotCount is the number of meshes in a catalog.
	SlotCount
)

var slotNames = [SlotCount]string{
	"tile", "filler", "trim", "cross", "seam",
	"tile_inner", "filler_inner", "trim_inner",
}

func (s Slot) String() string {
	if s < 0 || s >= SlotCount {
		return "unknown"
	}
	return slotNames[s]
}

// Handle is an opaque mesh identifier issued by a Backend. Ownership of the
// underlying mesh passes to the backend on creation; the generator retains
// no reference to it.
type Handle uint64

// Mesh is one finished catalog entry, ready for upload. Heights are all zero
// at generation time; displacement happens in a later shading stage, which
// also recomputes the placeholder normals and tangents.
type Mesh struct {
	Vertices []mgl32.Vec3
	Normals  []mgl32.Vec3 // flat +Y per vertex
	Tangents []float32    // zeroed, 4 floats per vertex
	Indices  []uint32
	Bounds   geom.Box3
}

// Backend is the rendering capability meshes are registered with. The
// caller is responsible for releasing every handle when geometry is
// regenerated or discarded.
type Backend interface {
	CreateMesh(m *Mesh) (Handle, error)
	ReleaseMesh(h Handle)
}
