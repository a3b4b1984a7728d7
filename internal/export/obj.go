// Package export writes generated meshes to Wavefront OBJ text for offline
// inspection of the clipmap catalog.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/fastland/terraclip/internal/geoclipmap"
)

// WriteOBJ writes the mesh to w as a single OBJ object with the given name.
// Positions and normals are emitted; OBJ face indices are 1-based.
func WriteOBJ(w io.Writer, name string, m *geoclipmap.Mesh) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "o %s\n", name)
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", v.X(), v.Y(), v.Z())
	}
	for _, n := range m.Normals {
		fmt.Fprintf(bw, "vn %g %g %g\n", n.X(), n.Y(), n.Z())
	}
	for i := 0; i+3 <= len(m.Indices); i += 3 {
		a, b, c := m.Indices[i]+1, m.Indices[i+1]+1, m.Indices[i+2]+1
		fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing obj %s: %w", name, err)
	}
	return nil
}

// WriteOBJFile writes the mesh to path, truncating any existing file.
func WriteOBJFile(path, name string, m *geoclipmap.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := WriteOBJ(f, name, m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
