package clipmap

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/fastland/terraclip/internal/geoclipmap"
)

func countBySlot(placements []Placement) map[geoclipmap.Slot]int {
	counts := make(map[geoclipmap.Slot]int)
	for _, p := range placements {
		counts[p.Slot]++
	}
	return counts
}

func TestLayoutCounts(t *testing.T) {
	// The coarsest level places the base-resolution variants, so 12 tiles
	// and one trim are always inner; fillers are inner only when level 0 is
	// itself the coarsest level.
	tests := []struct {
		levels int
		want   map[geoclipmap.Slot]int
	}{
		{1, map[geoclipmap.Slot]int{
			geoclipmap.SlotTileInner:   12,
			geoclipmap.SlotFillerInner: 4,
			geoclipmap.SlotTrimInner:   1,
			geoclipmap.SlotCross:       1,
			geoclipmap.SlotSeam:        1,
		}},
		{2, map[geoclipmap.Slot]int{
			geoclipmap.SlotTile:      12,
			geoclipmap.SlotTileInner: 12,
			geoclipmap.SlotFiller:    4,
			geoclipmap.SlotTrim:      1,
			geoclipmap.SlotTrimInner: 1,
			geoclipmap.SlotCross:     1,
			geoclipmap.SlotSeam:      2,
		}},
		{5, map[geoclipmap.Slot]int{
			geoclipmap.SlotTile:      48,
			geoclipmap.SlotTileInner: 12,
			geoclipmap.SlotFiller:    4,
			geoclipmap.SlotTrim:      4,
			geoclipmap.SlotTrimInner: 1,
			geoclipmap.SlotCross:     1,
			geoclipmap.SlotSeam:      5,
		}},
	}

	for _, tt := range tests {
		placements, err := Layout(8, tt.levels, mgl32.Vec2{})
		if err != nil {
			t.Fatalf("levels %d: %v", tt.levels, err)
		}

		counts := countBySlot(placements)
		for slot := geoclipmap.SlotTile; slot < geoclipmap.SlotCount; slot++ {
			if counts[slot] != tt.want[slot] {
				t.Errorf("levels %d: expected %d %s placements, got %d",
					tt.levels, tt.want[slot], slot, counts[slot])
			}
		}
	}
}

func TestLayoutCoarsestLevelUsesBaseVariants(t *testing.T) {
	placements, err := Layout(4, 3, mgl32.Vec2{})
	if err != nil {
		t.Fatal(err)
	}

	for _, p := range placements {
		inner := p.Slot == geoclipmap.SlotTileInner ||
			p.Slot == geoclipmap.SlotFillerInner ||
			p.Slot == geoclipmap.SlotTrimInner
		coarsest := p.Level == 2

		if coarsest && !inner && p.Slot != geoclipmap.SlotSeam {
			t.Errorf("coarsest level placed refined mesh %s", p.Slot)
		}
		if !coarsest && inner {
			t.Errorf("level %d placed base-resolution mesh %s", p.Level, p.Slot)
		}
	}
}

func TestLayoutScalesDoublePerLevel(t *testing.T) {
	placements, err := Layout(4, 6, mgl32.Vec2{100, -250})
	if err != nil {
		t.Fatal(err)
	}

	for _, p := range placements {
		want := float32(int(1) << p.Level)
		if p.Scale != want {
			t.Errorf("%s at level %d: expected scale %f, got %f", p.Slot, p.Level, want, p.Scale)
		}
	}
}

func TestLayoutSnapsToLevelGrid(t *testing.T) {
	viewer := mgl32.Vec2{37.3, -11.8}
	placements, err := Layout(4, 4, viewer)
	if err != nil {
		t.Fatal(err)
	}

	for _, p := range placements {
		if p.Slot != geoclipmap.SlotTrim && p.Slot != geoclipmap.SlotTrimInner {
			continue
		}
		// Each level's anchor snaps to twice its own spacing.
		spacing := p.Scale * 2
		for axis, v := range [2]float32{p.Position.X(), p.Position.Z()} {
			q := v / spacing
			if q != float32(int(q)) {
				t.Errorf("level %d axis %d: position %f not aligned to spacing %f", p.Level, axis, v, spacing)
			}
		}
	}
}

func TestLayoutFollowsViewer(t *testing.T) {
	a, err := Layout(4, 3, mgl32.Vec2{0, 0})
	if err != nil {
		t.Fatal(err)
	}
	b, err := Layout(4, 3, mgl32.Vec2{256, 256})
	if err != nil {
		t.Fatal(err)
	}

	// Moving by a multiple of every level's spacing translates the whole
	// layout rigidly.
	if len(a) != len(b) {
		t.Fatalf("placement counts differ: %d vs %d", len(a), len(b))
	}
	offset := mgl32.Vec3{256, 0, 256}
	for i := range a {
		if got, want := b[i].Position, a[i].Position.Add(offset); got != want {
			t.Errorf("placement %d (%s): expected %v, got %v", i, a[i].Slot, want, got)
		}
	}
}

func TestLayoutDeterministic(t *testing.T) {
	viewer := mgl32.Vec2{13.37, 42.0}
	a, _ := Layout(8, 4, viewer)
	b, _ := Layout(8, 4, viewer)

	if len(a) != len(b) {
		t.Fatalf("placement counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("placement %d differs between identical calls: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestLayoutRejectsBadInput(t *testing.T) {
	if _, err := Layout(0, 3, mgl32.Vec2{}); err == nil {
		t.Error("expected error for zero tile resolution")
	}
	if _, err := Layout(4, 0, mgl32.Vec2{}); err == nil {
		t.Error("expected error for zero levels")
	}
}
