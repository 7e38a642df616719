package geometry

import (
	"fmt"
	"sort"

	"github.com/Faultbox/scene-gallery/pkg/math"
)

// Args are the positional numeric parameters of a geometry kind. Missing
// entries fall back to per-kind defaults.
type Args []float64

// Float returns argument i or def when absent.
func (a Args) Float(i int, def float64) float32 {
	if i < len(a) {
		return float32(a[i])
	}
	return float32(def)
}

// Int returns argument i as a segment count, at least lo.
func (a Args) Int(i int, def, lo int) int {
	if i < len(a) {
		return segments(a[i], lo)
	}
	return segments(float64(def), lo)
}

// Builder creates a mesh from arguments.
type Builder func(args Args) *Mesh

var builders = map[string]Builder{
	"box": func(a Args) *Mesh {
		return Box(a.Float(0, 1), a.Float(1, 1), a.Float(2, 1))
	},
	"sphere": func(a Args) *Mesh {
		return Sphere(a.Float(0, 1), a.Int(1, 32, 3), a.Int(2, 16, 2))
	},
	"plane": func(a Args) *Mesh {
		return Plane(a.Float(0, 1), a.Float(1, 1))
	},
	"circle": func(a Args) *Mesh {
		return Circle(a.Float(0, 1), a.Int(1, 32, 3))
	},
	"cone": func(a Args) *Mesh {
		return Cone(a.Float(0, 1), a.Float(1, 1), a.Int(2, 32, 3))
	},
	"cylinder": func(a Args) *Mesh {
		return Cylinder(a.Float(0, 1), a.Float(1, 1), a.Float(2, 1), a.Int(3, 32, 3))
	},
	"ring": func(a Args) *Mesh {
		return Ring(a.Float(0, 0.5), a.Float(1, 1), a.Int(2, 32, 3))
	},
	"torus": func(a Args) *Mesh {
		return Torus(a.Float(0, 1), a.Float(1, 0.4), a.Int(2, 12, 2), a.Int(3, 48, 3))
	},
	"torus-knot": func(a Args) *Mesh {
		p := float64(a.Float(4, 2))
		q := float64(a.Float(5, 3))
		return TorusKnot(a.Float(0, 1), a.Float(1, 0.4), a.Int(2, 64, 3), a.Int(3, 8, 3), p, q)
	},
	"tetrahedron": func(a Args) *Mesh {
		return Tetrahedron(a.Float(0, 1), a.Int(1, 0, 0))
	},
	"octahedron": func(a Args) *Mesh {
		return Octahedron(a.Float(0, 1), a.Int(1, 0, 0))
	},
	"icosahedron": func(a Args) *Mesh {
		return Icosahedron(a.Float(0, 1), a.Int(1, 0, 0))
	},
	"dodecahedron": func(a Args) *Mesh {
		return Dodecahedron(a.Float(0, 1), a.Int(1, 0, 0))
	},
	"polyhedron": func(a Args) *Mesh {
		return CubePolyhedron(a.Float(0, 1), a.Int(1, 0, 0))
	},
	"lathe": func(a Args) *Mesh {
		return Lathe(vaseProfile(), a.Int(0, 12, 3))
	},
	"heart": func(a Args) *Mesh {
		return ShapeMesh(Heart())
	},
	"extrude": func(a Args) *Mesh {
		return Extrude(Rectangle(a.Float(0, 1.2), a.Float(1, 0.8)), a.Float(2, 1), a.Int(3, 2, 1))
	},
	"edges": func(a Args) *Mesh {
		return Edges(Box(a.Float(0, 1), a.Float(1, 1), a.Float(2, 1)), float64(a.Float(3, 1)))
	},
}

// vaseProfile is the ten-point curve the lathe showcase revolves.
func vaseProfile() []math.Vec2 {
	pts := make([]math.Vec2, 10)
	for i := range pts {
		sin, _ := sincos(float64(i) * 0.2)
		pts[i] = math.Vec2{X: sin, Y: (float32(i)-0.5)*0.2 - 0.7}
	}
	return pts
}

// Build creates a mesh of the named kind.
func Build(kind string, args []float64) (*Mesh, error) {
	b, ok := builders[kind]
	if !ok {
		return nil, fmt.Errorf("unknown geometry kind %q", kind)
	}
	for i, v := range args {
		if v < 0 {
			return nil, fmt.Errorf("geometry %s: argument %d is negative (%g)", kind, i, v)
		}
	}
	return b(Args(args)), nil
}

// Kinds lists every buildable geometry kind in order.
func Kinds() []string {
	kinds := make([]string, 0, len(builders))
	for k := range builders {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
