package geometry

import (
	gomath "math"

	"github.com/Faultbox/scene-gallery/pkg/math"
)

var phi = float32((1 + gomath.Sqrt(5)) / 2)

var (
	tetrahedronVertices = []float32{1, 1, 1, -1, -1, 1, -1, 1, -1, 1, -1, -1}
	tetrahedronIndices  = []uint32{2, 1, 0, 0, 3, 2, 1, 3, 0, 2, 3, 1}

	octahedronVertices = []float32{1, 0, 0, -1, 0, 0, 0, 1, 0, 0, -1, 0, 0, 0, 1, 0, 0, -1}
	octahedronIndices  = []uint32{0, 2, 4, 0, 4, 3, 0, 3, 5, 0, 5, 2, 1, 2, 5, 1, 5, 3, 1, 3, 4, 1, 4, 2}

	icosahedronVertices = []float32{
		-1, phi, 0, 1, phi, 0, -1, -phi, 0, 1, -phi, 0,
		0, -1, phi, 0, 1, phi, 0, -1, -phi, 0, 1, -phi,
		phi, 0, -1, phi, 0, 1, -phi, 0, -1, -phi, 0, 1,
	}
	icosahedronIndices = []uint32{
		0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
		1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
		3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
		4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
	}

	dodecahedronVertices = func() []float32 {
		r := 1 / phi
		return []float32{
			-1, -1, -1, -1, -1, 1, -1, 1, -1, -1, 1, 1,
			1, -1, -1, 1, -1, 1, 1, 1, -1, 1, 1, 1,
			0, -r, -phi, 0, -r, phi, 0, r, -phi, 0, r, phi,
			-r, -phi, 0, -r, phi, 0, r, -phi, 0, r, phi, 0,
			-phi, 0, -r, phi, 0, -r, -phi, 0, r, phi, 0, r,
		}
	}()
	dodecahedronIndices = []uint32{
		3, 11, 7, 3, 7, 15, 3, 15, 13,
		7, 19, 17, 7, 17, 6, 7, 6, 15,
		17, 4, 8, 17, 8, 10, 17, 10, 6,
		8, 0, 16, 8, 16, 2, 8, 2, 10,
		0, 12, 1, 0, 1, 18, 0, 18, 16,
		6, 10, 2, 6, 2, 13, 6, 13, 15,
		2, 16, 18, 2, 18, 3, 2, 3, 13,
		18, 1, 9, 18, 9, 11, 18, 11, 3,
		4, 14, 12, 4, 12, 0, 4, 0, 8,
		11, 9, 5, 11, 5, 19, 11, 19, 7,
		19, 5, 14, 19, 14, 4, 19, 4, 17,
		1, 12, 14, 1, 14, 5, 1, 5, 9,
	}

	cubeVertices = []float32{
		-1, -1, -1, 1, -1, -1, 1, 1, -1, -1, 1, -1,
		-1, -1, 1, 1, -1, 1, 1, 1, 1, -1, 1, 1,
	}
	cubeIndices = []uint32{
		2, 1, 0, 0, 3, 2, 0, 4, 7, 7, 3, 0, 0, 1, 5, 5, 4, 0,
		1, 2, 6, 6, 5, 1, 2, 3, 7, 7, 6, 2, 4, 5, 6, 6, 7, 4,
	}
)

// Polyhedron projects the given faces onto a sphere of radius and shades them
// flat. Each triangle is split into (detail+1)² pieces before projection.
// Face normals always point away from the origin.
func Polyhedron(vertices []float32, indices []uint32, radius float32, detail int) *Mesh {
	m := &Mesh{}
	at := func(i uint32) math.Vec3 {
		return math.V3(vertices[3*i], vertices[3*i+1], vertices[3*i+2])
	}
	emit := func(a, b, c math.Vec3) {
		a = a.Normalize().Scale(radius)
		b = b.Normalize().Scale(radius)
		c = c.Normalize().Scale(radius)
		n := faceNormal(a, b, c).Normalize()
		if n.Dot(a.Add(b).Add(c)) < 0 {
			b, c = c, b
			n = n.Scale(-1)
		}
		m.tri(m.add(a, n), m.add(b, n), m.add(c, n))
	}

	for i := 0; i+2 < len(indices); i += 3 {
		subdivide(at(indices[i]), at(indices[i+1]), at(indices[i+2]), detail, emit)
	}
	m.computeBounds()
	return m
}

func subdivide(a, b, c math.Vec3, detail int, emit func(a, b, c math.Vec3)) {
	cols := detail + 1
	grid := make([][]math.Vec3, cols+1)
	for i := 0; i <= cols; i++ {
		f := float32(i) / float32(cols)
		aj := lerp(a, c, f)
		bj := lerp(b, c, f)
		rows := cols - i
		grid[i] = make([]math.Vec3, rows+1)
		for j := 0; j <= rows; j++ {
			if j == 0 && i == cols {
				grid[i][j] = aj
			} else {
				grid[i][j] = lerp(aj, bj, float32(j)/float32(rows))
			}
		}
	}
	for i := 0; i < cols; i++ {
		for j := 0; j < 2*(cols-i)-1; j++ {
			k := j / 2
			if j%2 == 0 {
				emit(grid[i][k+1], grid[i+1][k], grid[i][k])
			} else {
				emit(grid[i][k+1], grid[i+1][k+1], grid[i+1][k])
			}
		}
	}
}

func lerp(a, b math.Vec3, t float32) math.Vec3 {
	return a.Add(b.Sub(a).Scale(t))
}

// Tetrahedron builds a regular tetrahedron inscribed in a sphere of radius.
func Tetrahedron(radius float32, detail int) *Mesh {
	return Polyhedron(tetrahedronVertices, tetrahedronIndices, radius, detail)
}

// Octahedron builds a regular octahedron.
func Octahedron(radius float32, detail int) *Mesh {
	return Polyhedron(octahedronVertices, octahedronIndices, radius, detail)
}

// Icosahedron builds a regular icosahedron.
func Icosahedron(radius float32, detail int) *Mesh {
	return Polyhedron(icosahedronVertices, icosahedronIndices, radius, detail)
}

// Dodecahedron builds a regular dodecahedron; each pentagon is three triangles.
func Dodecahedron(radius float32, detail int) *Mesh {
	return Polyhedron(dodecahedronVertices, dodecahedronIndices, radius, detail)
}

// CubePolyhedron is the cube expressed as raw polyhedron data, projected onto
// a sphere like the other solids.
func CubePolyhedron(radius float32, detail int) *Mesh {
	return Polyhedron(cubeVertices, cubeIndices, radius, detail)
}
