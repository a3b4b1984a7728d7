// Package clipmap assembles the generated mesh catalog into concentric LOD
// rings around a viewer. The catalog itself is viewer-independent; this
// package computes where each piece goes for a given viewer position, with
// every level snapped to twice its own grid spacing so vertices stay aligned
// with the next coarser level as the viewer moves.
package clipmap

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/fastland/terraclip/internal/geoclipmap"
)

// Placement positions one catalog mesh instance in the XZ plane.
type Placement struct {
	Slot     geoclipmap.Slot
	Level    int
	Scale    float32
	Position mgl32.Vec3
}

// Layout computes the mesh instance placements for a clipmap of the given
// tile resolution and level count, centered on the viewer's XZ position.
// Per level it emits the 4x4 ring of tiles (the inner 2x2 hole is covered by
// the next finer level), the four-armed trim filling the level's gap row and
// column, and the perimeter seam; level 0 additionally gets the cross under
// the viewer and backs its inner 2x2 with filler patches. The coarsest level
// places the base-resolution tile, filler and trim variants, finer levels
// the refined ones.
func Layout(tileResolution, levels int, viewer mgl32.Vec2) ([]Placement, error) {
	if tileResolution <= 0 {
		return nil, fmt.Errorf("clipmap: tile resolution must be positive, got %d", tileResolution)
	}
	if levels < 1 {
		return nil, fmt.Errorf("clipmap: levels must be at least 1, got %d", levels)
	}

	tileWidth := float32(tileResolution)
	out := make([]Placement, 0, levels*15+5)

	snapped0 := snap(viewer, 2)
	out = append(out, Placement{
		Slot:     geoclipmap.SlotCross,
		Level:    0,
		Scale:    1,
		Position: mgl32.Vec3{snapped0.X(), 0, snapped0.Y()},
	})

	for level := 0; level < levels; level++ {
		scale := float32(int(1) << level)
		snapped := snap(viewer, scale*2)
		base := snapped.Sub(mgl32.Vec2{tileWidth * 2 * scale, tileWidth * 2 * scale})

		// The coarsest ring has no coarser neighbor to blend into, so it
		// uses the base-resolution variants; every finer ring uses the
		// refined meshes.
		tileSlot := geoclipmap.SlotTile
		fillerSlot := geoclipmap.SlotFiller
		trimSlot := geoclipmap.SlotTrim
		if level == levels-1 {
			tileSlot = geoclipmap.SlotTileInner
			fillerSlot = geoclipmap.SlotFillerInner
			trimSlot = geoclipmap.SlotTrimInner
		}

		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				inner := x >= 1 && x <= 2 && y >= 1 && y <= 2
				if inner && level != 0 {
					continue // hole covered by the finer level
				}

				// Tiles right of / above the gap shift by one cell so the
				// trim's arms have a row and column to fill.
				fill := mgl32.Vec2{}
				if x >= 2 {
					fill[0] = scale
				}
				if y >= 2 {
					fill[1] = scale
				}

				pos := base.
					Add(mgl32.Vec2{float32(x) * tileWidth * scale, float32(y) * tileWidth * scale}).
					Add(fill)

				slot := tileSlot
				if inner {
					slot = fillerSlot
				}
				out = append(out, Placement{
					Slot:     slot,
					Level:    level,
					Scale:    scale,
					Position: mgl32.Vec3{pos.X(), 0, pos.Y()},
				})
			}
		}

		out = append(out, Placement{
			Slot:     trimSlot,
			Level:    level,
			Scale:    scale,
			Position: mgl32.Vec3{snapped.X(), 0, snapped.Y()},
		})

		// The seam mesh spans the whole level footprint from its corner.
		seamHalf := (tileWidth*2 + 1) * scale
		out = append(out, Placement{
			Slot:     geoclipmap.SlotSeam,
			Level:    level,
			Scale:    scale,
			Position: mgl32.Vec3{snapped.X() - seamHalf, 0, snapped.Y() - seamHalf},
		})
	}

	return out, nil
}

// snap floors v to a multiple of spacing along both axes.
func snap(v mgl32.Vec2, spacing float32) mgl32.Vec2 {
	return mgl32.Vec2{
		float32(math.Floor(float64(v.X()/spacing))) * spacing,
		float32(math.Floor(float64(v.Y()/spacing))) * spacing,
	}
}
