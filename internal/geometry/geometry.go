// Package geometry builds the procedural meshes of the studio's primitives. All shapes fit in
// the unit cube centred at the origin and carry per-vertex normals.
package geometry

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// Stride is the number of floats per vertex: position xyz followed by normal xyz
const Stride = 6

// Geometry is an indexed mesh with a filled and a wireframe index set
type Geometry struct {
	Vertices  []float32
	Triangles []uint32
	Lines     []uint32
}

// VertexCount returns the number of vertices
func (g *Geometry) VertexCount() int { return len(g.Vertices) / Stride }

// Position returns the position of vertex i
func (g *Geometry) Position(i int) mgl32.Vec3 {
	o := i * Stride
	return mgl32.Vec3{g.Vertices[o], g.Vertices[o+1], g.Vertices[o+2]}
}

// Normal returns the normal of vertex i
func (g *Geometry) Normal(i int) mgl32.Vec3 {
	o := i*Stride + 3
	return mgl32.Vec3{g.Vertices[o], g.Vertices[o+1], g.Vertices[o+2]}
}

type builder struct {
	g Geometry
}

func (b *builder) vertex(p, n mgl32.Vec3) uint32 {
	idx := uint32(b.g.VertexCount())
	n = n.Normalize()
	b.g.Vertices = append(b.g.Vertices, p[0], p[1], p[2], n[0], n[1], n[2])
	return idx
}

func (b *builder) tri(a, c, d uint32) {
	b.g.Triangles = append(b.g.Triangles, a, c, d)
}

// quad adds two counter-clockwise triangles a-b-c and a-c-d
func (b *builder) quad(a, c, d, e uint32) {
	b.tri(a, c, d)
	b.tri(a, d, e)
}

// finish derives the wireframe index set from the triangle edges
func (b *builder) finish() *Geometry {
	b.g.Lines = edges(b.g.Triangles, b.g.Vertices)
	return &b.g
}

// edges returns each distinct triangle edge once, skipping edges whose ends coincide.
// Edges are compared by position so seams with split normals are not drawn twice.
func edges(tris []uint32, verts []float32) []uint32 {
	type key [2]mgl32.Vec3
	pos := func(i uint32) mgl32.Vec3 {
		o := int(i) * Stride
		return mgl32.Vec3{verts[o], verts[o+1], verts[o+2]}
	}
	less := func(a, b mgl32.Vec3) bool {
		return slices.Compare(a[:], b[:]) < 0
	}

	seen := make(map[key]struct{}, len(tris))
	lines := make([]uint32, 0, len(tris)*2)
	for t := 0; t+2 < len(tris); t += 3 {
		for e := 0; e < 3; e++ {
			i, j := tris[t+e], tris[t+(e+1)%3]
			pi, pj := pos(i), pos(j)
			if pi.ApproxEqual(pj) {
				continue
			}
			k := key{pi, pj}
			if less(pj, pi) {
				k = key{pj, pi}
			}
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			lines = append(lines, i, j)
		}
	}
	return lines
}
