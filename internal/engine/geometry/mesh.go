// Package geometry builds the primitive meshes scenes are made of.
package geometry

import (
	gomath "math"

	"github.com/Faultbox/scene-gallery/pkg/math"
)

// Vertex is a mesh vertex with position and normal.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// Mode selects how indices are assembled into primitives.
type Mode uint8

const (
	Triangles Mode = iota
	Lines
)

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Mesh holds mesh data ready for GPU upload.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Mode     Mode
	Bounds   Bounds
}

// Radius returns the radius of the smallest origin-centred sphere enclosing
// every vertex. Picking tests against this sphere.
func (m *Mesh) Radius() float32 {
	var r float32
	for _, v := range m.Vertices {
		if l := vec(v.Position).Length(); l > r {
			r = l
		}
	}
	return r
}

// PrimitiveCount returns the number of triangles or line segments.
func (m *Mesh) PrimitiveCount() int {
	if m.Mode == Lines {
		return len(m.Indices) / 2
	}
	return len(m.Indices) / 3
}

func (m *Mesh) add(p, n math.Vec3) uint32 {
	m.Vertices = append(m.Vertices, Vertex{Position: p.Array(), Normal: n.Array()})
	return uint32(len(m.Vertices) - 1)
}

func (m *Mesh) tri(a, b, c uint32) {
	m.Indices = append(m.Indices, a, b, c)
}

func (m *Mesh) computeBounds() {
	if len(m.Vertices) == 0 {
		m.Bounds = Bounds{}
		return
	}
	b := Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}
	for _, v := range m.Vertices {
		for i := 0; i < 3; i++ {
			if v.Position[i] < b.Min[i] {
				b.Min[i] = v.Position[i]
			}
			if v.Position[i] > b.Max[i] {
				b.Max[i] = v.Position[i]
			}
		}
	}
	m.Bounds = b
}

// computeNormals replaces every normal with the area-weighted average of the
// adjacent face normals.
func (m *Mesh) computeNormals() {
	acc := make([]math.Vec3, len(m.Vertices))
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		n := faceNormal(vec(m.Vertices[a].Position), vec(m.Vertices[b].Position), vec(m.Vertices[c].Position))
		acc[a] = acc[a].Add(n)
		acc[b] = acc[b].Add(n)
		acc[c] = acc[c].Add(n)
	}
	for i := range m.Vertices {
		m.Vertices[i].Normal = acc[i].Normalize().Array()
	}
}

// flatten converts an indexed triangle mesh into one vertex per corner with
// face normals, giving the faceted look of polyhedra and caps.
func (m *Mesh) flatten() {
	out := &Mesh{Mode: Triangles}
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a := vec(m.Vertices[m.Indices[i]].Position)
		b := vec(m.Vertices[m.Indices[i+1]].Position)
		c := vec(m.Vertices[m.Indices[i+2]].Position)
		n := faceNormal(a, b, c).Normalize()
		out.tri(out.add(a, n), out.add(b, n), out.add(c, n))
	}
	m.Vertices = out.Vertices
	m.Indices = out.Indices
}

// faceNormal returns the unnormalised normal (twice the area) of abc.
func faceNormal(a, b, c math.Vec3) math.Vec3 {
	return b.Sub(a).Cross(c.Sub(a))
}

func vec(p [3]float32) math.Vec3 {
	return math.Vec3{X: p[0], Y: p[1], Z: p[2]}
}

func sincos(a float64) (float32, float32) {
	s, c := gomath.Sincos(a)
	return float32(s), float32(c)
}

func segments(v float64, lo int) int {
	n := int(gomath.Floor(v))
	if n < lo {
		return lo
	}
	return n
}
