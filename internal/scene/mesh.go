package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Box3 is an axis-aligned bounding box.
type Box3 struct {
	Min, Max mgl64.Vec3
}

// EmptyBox returns a box that any Expand call will replace.
func EmptyBox() Box3 {
	inf := math.Inf(1)
	return Box3{
		Min: mgl64.Vec3{inf, inf, inf},
		Max: mgl64.Vec3{-inf, -inf, -inf},
	}
}

// Expand grows the box to contain p.
func (b *Box3) Expand(p mgl64.Vec3) {
	for i := 0; i < 3; i++ {
		b.Min[i] = math.Min(b.Min[i], p[i])
		b.Max[i] = math.Max(b.Max[i], p[i])
	}
}

func (b Box3) Size() mgl64.Vec3   { return b.Max.Sub(b.Min) }
func (b Box3) Center() mgl64.Vec3 { return b.Min.Add(b.Max).Mul(0.5) }

// Contains reports whether p lies inside or on the box.
func (b Box3) Contains(p mgl64.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// Mesh is a flat-shaded triangle soup ready for upload:
// 3 floats per vertex in Positions and Normals, 3 vertices per triangle.
type Mesh struct {
	Positions []float32
	Normals   []float32
	Bounds    Box3
}

func newMesh(capTris int) *Mesh {
	return &Mesh{
		Positions: make([]float32, 0, capTris*9),
		Normals:   make([]float32, 0, capTris*9),
		Bounds:    EmptyBox(),
	}
}

// addTriangle appends a counter-clockwise triangle with its face normal.
// Degenerate triangles are dropped.
func (m *Mesh) addTriangle(a, b, c mgl64.Vec3) {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Len() < 1e-12 {
		return
	}
	n = n.Normalize()
	for _, p := range [3]mgl64.Vec3{a, b, c} {
		m.Positions = append(m.Positions, float32(p[0]), float32(p[1]), float32(p[2]))
		m.Normals = append(m.Normals, float32(n[0]), float32(n[1]), float32(n[2]))
		m.Bounds.Expand(p)
	}
}

// addQuad appends a-b-c-d as two triangles.
func (m *Mesh) addQuad(a, b, c, d mgl64.Vec3) {
	m.addTriangle(a, b, c)
	m.addTriangle(a, c, d)
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int { return len(m.Positions) / 3 }

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int { return m.VertexCount() / 3 }
