package geoclipmap

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSubdivideUnitSquare(t *testing.T) {
	// A single lattice cell: 4 corners, 2 triangles split along the diagonal.
	vertices, indices := buildPatchLattice(1)
	if len(vertices) != 4 || len(indices) != 6 {
		t.Fatalf("expected 4 vertices / 6 indices, got %d / %d", len(vertices), len(indices))
	}

	vertices, indices = subdivideHalf(vertices, indices)

	// Both triangles bisect the shared diagonal; its midpoint is welded once.
	if len(vertices) != 5 {
		t.Errorf("expected 5 vertices (4 corners + 1 shared midpoint), got %d", len(vertices))
	}
	if len(indices) != 12 {
		t.Errorf("expected 12 indices (4 triangles), got %d", len(indices))
	}

	found := false
	for _, v := range vertices {
		if v == (mgl32.Vec3{0.5, 0, 0.5}) {
			found = true
			break
		}
	}
	if !found {
		t.Error("diagonal midpoint (0.5, 0, 0.5) missing from refined vertices")
	}
}

func TestSubdivideDoublesTriangles(t *testing.T) {
	for _, size := range []int{1, 2, 3, 7} {
		vertices, indices := buildPatchLattice(size)
		_, refined := subdivideHalf(vertices, indices)
		if len(refined) != 2*len(indices) {
			t.Errorf("size %d: expected %d indices after refinement, got %d",
				size, 2*len(indices), len(refined))
		}
	}
}

func TestSubdivideWeldBound(t *testing.T) {
	// Each refinement pass may add at most one vertex per distinct edge:
	// shared edges must never be split twice.
	for _, size := range []int{1, 2, 4, 8} {
		vertices, indices := buildPatchLattice(size)
		edges := distinctEdges(indices)

		refined, _ := subdivideHalf(vertices, indices)
		if len(refined) > len(vertices)+edges {
			t.Errorf("size %d: %d vertices after refinement exceeds bound %d (%d before + %d edges)",
				size, len(refined), len(vertices)+edges, len(vertices), edges)
		}
	}
}

func TestSubdividePreservesWinding(t *testing.T) {
	vertices, indices := buildPatchLattice(3)
	vertices, indices = subdivideHalf(vertices, indices)

	for i := 0; i+3 <= len(indices); i += 3 {
		area := signedAreaXZ(vertices[indices[i]], vertices[indices[i+1]], vertices[indices[i+2]])
		if area <= 0 {
			t.Fatalf("triangle %d lost its orientation (signed area %f)", i/3, area)
		}
	}
}

func TestSubdivideSplitsLongestEdge(t *testing.T) {
	// One triangle with an unambiguous longest edge BC: the midpoint of BC
	// must be the only new vertex.
	// |AB|² = 1, |BC|² = 10, |CA|² = 9.
	vertices := []mgl32.Vec3{
		{0, 0, 0}, // A
		{1, 0, 0}, // B
		{0, 0, 3}, // C
	}
	indices := []uint32{0, 1, 2}

	refined, out := subdivideHalf(vertices, indices)
	if len(refined) != 4 {
		t.Fatalf("expected 4 vertices, got %d", len(refined))
	}
	if len(out) != 6 {
		t.Fatalf("expected 2 triangles, got %d indices", len(out))
	}

	mid := mgl32.Vec3{0.5, 0, 1.5}
	found := false
	for _, v := range refined {
		if v == mid {
			found = true
		}
	}
	if !found {
		t.Errorf("midpoint of longest edge %v missing from output %v", mid, refined)
	}
}

func TestSubdivideTieBreakOrder(t *testing.T) {
	// Isoceles triangle with apex B: |AB| == |BC| > |CA|, exact in float.
	// The tie between AB and BC must resolve to AB, the first edge tested.
	vertices := []mgl32.Vec3{
		{0, 0, 0}, // A
		{1, 0, 2}, // B
		{2, 0, 0}, // C
	}
	refined, _ := subdivideHalf(vertices, []uint32{0, 1, 2})

	abMid := mgl32.Vec3{0.5, 0, 1}
	bcMid := mgl32.Vec3{1.5, 0, 1}
	foundAB, foundBC := false, false
	for _, v := range refined {
		switch v {
		case abMid:
			foundAB = true
		case bcMid:
			foundBC = true
		}
	}
	if !foundAB {
		t.Errorf("expected AB midpoint %v to win the tie, vertices: %v", abMid, refined)
	}
	if foundBC {
		t.Errorf("BC midpoint %v present, tie resolved to the wrong edge", bcMid)
	}
}

func TestSubdivideEmptyInput(t *testing.T) {
	vertices, indices := subdivideHalf(nil, nil)
	if len(vertices) != 0 || len(indices) != 0 {
		t.Errorf("expected empty output for empty input, got %d vertices / %d indices",
			len(vertices), len(indices))
	}
}
