package geoclipmap

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/fastland/terraclip/pkg/geom"
)

// aabbHeightMargin pads the analytic tile bounding boxes vertically so they
// still contain the geometry after height displacement.
const aabbHeightMargin = 0.1

// Generate builds the full clipmap mesh catalog for the given tile
// resolution and registers each mesh with the backend. It returns exactly
// eight handles in the fixed order
//
//	[Tile, Filler, Trim, Cross, Seam, TileInner, FillerInner, TrimInner]
//
// indexable by the Slot constants. Tile, filler and trim pair an inner
// (base) mesh with an outer mesh refined by one subdivision pass; cross and
// seam exist at a single resolution. levels does not shape the catalog
// itself; it is validated here because ring assembly consumes it.
//
// If any CreateMesh call fails, handles registered so far are released and
// the error is returned.
func Generate(backend Backend, tileResolution, levels int) ([]Handle, error) {
	if tileResolution <= 0 {
		return nil, fmt.Errorf("geoclipmap: tile resolution must be positive, got %d", tileResolution)
	}
	if levels < 1 {
		return nil, fmt.Errorf("geoclipmap: levels must be at least 1, got %d", levels)
	}

	zap.L().Debug("generating clipmap mesh catalog",
		zap.Int("tile_resolution", tileResolution),
		zap.Int("levels", levels),
	)

	created := make([]Handle, 0, SlotCount)
	register := func(vertices []mgl32.Vec3, indices []uint32, bounds geom.Box3) (Handle, error) {
		h, err := backend.CreateMesh(newMesh(vertices, indices, bounds))
		if err != nil {
			for _, prev := range created {
				backend.ReleaseMesh(prev)
			}
			return 0, err
		}
		created = append(created, h)
		return h, nil
	}

	rowWidth := float32(tileResolution + 1)
	latticeBounds := geom.FromExtents(
		mgl32.Vec3{0, 0, 0},
		mgl32.Vec3{rowWidth, aabbHeightMargin, rowWidth},
	)

	// Tile: the regular square patch placed 12 times per ring.
	vertices, indices := buildPatchLattice(tileResolution)
	tileInner, err := register(vertices, indices, latticeBounds)
	if err != nil {
		return nil, fmt.Errorf("tile inner mesh: %w", err)
	}
	vertices, indices = subdivideHalf(vertices, indices)
	tile, err := register(vertices, indices, latticeBounds)
	if err != nil {
		return nil, fmt.Errorf("tile mesh: %w", err)
	}

	// Filler: same lattice as the tile, registered separately so the two
	// shapes can be displaced and culled independently.
	vertices, indices = buildPatchLattice(tileResolution)
	fillerInner, err := register(vertices, indices, latticeBounds)
	if err != nil {
		return nil, fmt.Errorf("filler inner mesh: %w", err)
	}
	vertices, indices = subdivideHalf(vertices, indices)
	filler, err := register(vertices, indices, latticeBounds)
	if err != nil {
		return nil, fmt.Errorf("filler mesh: %w", err)
	}

	// Trim: the L-shaped quadrant transition strip.
	vertices, indices, bounds := buildTrim(tileResolution)
	trimInner, err := register(vertices, indices, bounds)
	if err != nil {
		return nil, fmt.Errorf("trim inner mesh: %w", err)
	}
	vertices, indices = subdivideHalf(vertices, indices)
	trim, err := register(vertices, indices, bounds)
	if err != nil {
		return nil, fmt.Errorf("trim mesh: %w", err)
	}

	// Cross and seam have no refined counterpart.
	vertices, indices, bounds = buildCross(tileResolution)
	cross, err := register(vertices, indices, bounds)
	if err != nil {
		return nil, fmt.Errorf("cross mesh: %w", err)
	}

	vertices, indices, bounds = buildSeam(tileResolution)
	seam, err := register(vertices, indices, bounds)
	if err != nil {
		return nil, fmt.Errorf("seam mesh: %w", err)
	}

	return []Handle{tile, filler, trim, cross, seam, tileInner, fillerInner, trimInner}, nil
}

// newMesh wraps finished buffers with the placeholder shading attributes the
// backend contract expects: a flat +Y normal per vertex and a zeroed tangent
// buffer, both recomputed by a later shading stage.
func newMesh(vertices []mgl32.Vec3, indices []uint32, bounds geom.Box3) *Mesh {
	normals := make([]mgl32.Vec3, len(vertices))
	for i := range normals {
		normals[i] = mgl32.Vec3{0, 1, 0}
	}

	return &Mesh{
		Vertices: vertices,
		Normals:  normals,
		Tangents: make([]float32, len(vertices)*4),
		Indices:  indices,
		Bounds:   bounds,
	}
}
