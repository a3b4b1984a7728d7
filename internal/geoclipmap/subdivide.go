package geoclipmap

import "github.com/go-gl/mathgl/mgl32"

// subdivideHalf runs one pass of longest-edge bisection over a triangle
// list. Every triangle is replaced by two triangles split along its longest
// edge; ties are broken in AB, BC, CA evaluation order. Midpoints go through
// a weld table shared by the whole pass, so a midpoint on an edge shared by
// two triangles becomes one vertex, not two. This keeps adjacent patches'
// boundaries conformal after refinement.
//
// The returned buffers are rebuilt from scratch: only vertices referenced by
// the output triangles survive, reindexed in first-use order.
func subdivideHalf(vertices []mgl32.Vec3, indices []uint32) ([]mgl32.Vec3, []uint32) {
	table := newWeldTable(len(vertices))
	out := make([]uint32, 0, len(indices)*2)

	for i := 0; i+3 <= len(indices); i += 3 {
		a := vertices[indices[i]]
		b := vertices[indices[i+1]]
		c := vertices[indices[i+2]]

		ab := edgeLenSq(a, b)
		bc := edgeLenSq(b, c)
		ca := edgeLenSq(c, a)

		switch {
		case ab >= bc && ab >= ca:
			ai, bi, ci := table.weld(a), table.weld(b), table.weld(c)
			mi := table.weld(midpoint(a, b))
			out = append(out, ai, mi, ci, mi, bi, ci)

		case bc >= ab && bc >= ca:
			ai, bi, ci := table.weld(a), table.weld(b), table.weld(c)
			mi := table.weld(midpoint(b, c))
			out = append(out, bi, mi, ai, mi, ci, ai)

		default: // CA is longest
			ai, bi, ci := table.weld(a), table.weld(b), table.weld(c)
			mi := table.weld(midpoint(c, a))
			out = append(out, ci, mi, bi, mi, ai, bi)
		}
	}

	return table.vertices, out
}

func midpoint(a, b mgl32.Vec3) mgl32.Vec3 {
	return a.Add(b).Mul(0.5)
}

func edgeLenSq(a, b mgl32.Vec3) float32 {
	d := b.Sub(a)
	return d.Dot(d)
}
