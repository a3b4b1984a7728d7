package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/fastland/terraclip/internal/geoclipmap"
	"github.com/fastland/terraclip/pkg/geom"
)

func testMesh() *geoclipmap.Mesh {
	vertices := []mgl32.Vec3{
		{0, 0, 0},
		{1, 0, 0},
		{0, 0, 1},
	}
	return &geoclipmap.Mesh{
		Vertices: vertices,
		Normals:  []mgl32.Vec3{{0, 1, 0}, {0, 1, 0}, {0, 1, 0}},
		Tangents: make([]float32, 12),
		Indices:  []uint32{0, 1, 2},
		Bounds:   geom.FromPoints(vertices),
	}
}

func TestWriteOBJ(t *testing.T) {
	var sb strings.Builder
	if err := WriteOBJ(&sb, "tile", testMesh()); err != nil {
		t.Fatal(err)
	}

	out := sb.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")

	if lines[0] != "o tile" {
		t.Errorf("expected object header 'o tile', got %q", lines[0])
	}

	var vCount, vnCount, fCount int
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "vn "):
			vnCount++
		case strings.HasPrefix(line, "v "):
			vCount++
		case strings.HasPrefix(line, "f "):
			fCount++
		}
	}
	if vCount != 3 {
		t.Errorf("expected 3 vertex lines, got %d", vCount)
	}
	if vnCount != 3 {
		t.Errorf("expected 3 normal lines, got %d", vnCount)
	}
	if fCount != 1 {
		t.Errorf("expected 1 face line, got %d", fCount)
	}

	// OBJ indices are 1-based.
	if !strings.Contains(out, "f 1//1 2//2 3//3") {
		t.Errorf("expected 1-based face indices, output:\n%s", out)
	}
	if !strings.Contains(out, "v 0 0 0") || !strings.Contains(out, "v 1 0 0") {
		t.Errorf("missing vertex lines, output:\n%s", out)
	}
}

func TestWriteOBJFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seam.obj")

	if err := WriteOBJFile(path, "seam", testMesh()); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read written file: %v", err)
	}
	if !strings.HasPrefix(string(data), "o seam\n") {
		t.Errorf("unexpected file contents:\n%s", data)
	}
}
