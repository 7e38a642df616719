// Package debug provides debug visualization utilities.
package debug

// LineVertex is one end of a coloured helper line.
type LineVertex struct {
	X, Y, Z float32 // Position
	R, G, B float32 // Color
}

// Helper colours.
var (
	AxisXColor      = [3]float32{1, 0, 0}
	AxisYColor      = [3]float32{0, 1, 0}
	AxisZColor      = [3]float32{0, 0, 1}
	GridCenterColor = [3]float32{0x44 / 255.0, 0x44 / 255.0, 0x44 / 255.0}
	GridColor       = [3]float32{0x88 / 255.0, 0x88 / 255.0, 0x88 / 255.0}
	BoundsColor     = [3]float32{1, 1, 0}
)

func line(a, b [3]float32, c [3]float32) []LineVertex {
	return []LineVertex{
		{a[0], a[1], a[2], c[0], c[1], c[2]},
		{b[0], b[1], b[2], c[0], c[1], c[2]},
	}
}

// Axes returns three lines of the given length from the origin along +X, +Y
// and +Z, coloured red, green and blue.
func Axes(size float32) []LineVertex {
	out := make([]LineVertex, 0, 6)
	out = append(out, line([3]float32{}, [3]float32{size, 0, 0}, AxisXColor)...)
	out = append(out, line([3]float32{}, [3]float32{0, size, 0}, AxisYColor)...)
	out = append(out, line([3]float32{}, [3]float32{0, 0, size}, AxisZColor)...)
	return out
}

// Grid returns a size × size grid on the XZ plane split into divisions cells.
// The two centre lines use GridCenterColor.
func Grid(size float32, divisions int) []LineVertex {
	if divisions < 1 {
		divisions = 1
	}
	half := size / 2
	step := size / float32(divisions)
	center := divisions / 2

	out := make([]LineVertex, 0, (divisions+1)*4)
	for i := 0; i <= divisions; i++ {
		k := -half + float32(i)*step
		c := GridColor
		if i == center && divisions%2 == 0 {
			c = GridCenterColor
		}
		out = append(out, line([3]float32{-half, 0, k}, [3]float32{half, 0, k}, c)...)
		out = append(out, line([3]float32{k, 0, -half}, [3]float32{k, 0, half}, c)...)
	}
	return out
}

// BoundsLines returns the 12 edges of an axis-aligned box transformed by
// transform, which maps a local point to world space.
func BoundsLines(lo, hi [3]float32, transform func([3]float32) [3]float32) []LineVertex {
	corner := func(x, y, z bool) [3]float32 {
		p := lo
		if x {
			p[0] = hi[0]
		}
		if y {
			p[1] = hi[1]
		}
		if z {
			p[2] = hi[2]
		}
		return transform(p)
	}

	edges := [12][2][3]bool{
		// Bottom face
		{{false, false, false}, {true, false, false}},
		{{true, false, false}, {true, false, true}},
		{{true, false, true}, {false, false, true}},
		{{false, false, true}, {false, false, false}},
		// Top face
		{{false, true, false}, {true, true, false}},
		{{true, true, false}, {true, true, true}},
		{{true, true, true}, {false, true, true}},
		{{false, true, true}, {false, true, false}},
		// Vertical edges
		{{false, false, false}, {false, true, false}},
		{{true, false, false}, {true, true, false}},
		{{true, false, true}, {true, true, true}},
		{{false, false, true}, {false, true, true}},
	}

	out := make([]LineVertex, 0, BoundsVertexCount)
	for _, e := range edges {
		a := corner(e[0][0], e[0][1], e[0][2])
		b := corner(e[1][0], e[1][1], e[1][2])
		out = append(out, line(a, b, BoundsColor)...)
	}
	return out
}

// BoundsVertexCount is the number of vertices BoundsLines returns (12 edges × 2).
const BoundsVertexCount = 24
