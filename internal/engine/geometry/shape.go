package geometry

import (
	"github.com/Faultbox/scene-gallery/pkg/math"
)

// curveDivisions is how many points each Bézier segment contributes.
const curveDivisions = 12

// Shape is a closed 2D outline built from line and cubic Bézier segments.
type Shape struct {
	points []math.Vec2
}

// MoveTo starts the outline at (x, y).
func (s *Shape) MoveTo(x, y float32) *Shape {
	s.points = append(s.points[:0], math.Vec2{X: x, Y: y})
	return s
}

// LineTo adds a straight segment.
func (s *Shape) LineTo(x, y float32) *Shape {
	s.points = append(s.points, math.Vec2{X: x, Y: y})
	return s
}

// BezierCurveTo adds a cubic Bézier segment from the current point.
func (s *Shape) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float32) *Shape {
	p0 := s.current()
	p1 := math.Vec2{X: c1x, Y: c1y}
	p2 := math.Vec2{X: c2x, Y: c2y}
	p3 := math.Vec2{X: x, Y: y}
	for i := 1; i <= curveDivisions; i++ {
		s.points = append(s.points, math.CubicBezier(p0, p1, p2, p3, float32(i)/curveDivisions))
	}
	return s
}

func (s *Shape) current() math.Vec2 {
	if len(s.points) == 0 {
		return math.Vec2{}
	}
	return s.points[len(s.points)-1]
}

// Points returns the outline counter-clockwise, without repeated points and
// without the closing point.
func (s *Shape) Points() []math.Vec2 {
	out := make([]math.Vec2, 0, len(s.points))
	for _, p := range s.points {
		if len(out) > 0 && near(out[len(out)-1], p) {
			continue
		}
		out = append(out, p)
	}
	if len(out) > 1 && near(out[0], out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	if signedArea(out) < 0 {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

func near(a, b math.Vec2) bool {
	return a.Sub(b).Length() < 1e-6
}

func signedArea(pts []math.Vec2) float32 {
	var a float32
	for i := range pts {
		p, q := pts[i], pts[(i+1)%len(pts)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// triangulate ear-clips a simple counter-clockwise polygon and returns
// indices into pts.
func triangulate(pts []math.Vec2) []uint32 {
	n := len(pts)
	if n < 3 {
		return nil
	}
	remaining := make([]int, n)
	for i := range remaining {
		remaining[i] = i
	}

	var out []uint32
	guard := 0
	for len(remaining) > 3 && guard < n*n {
		guard++
		clipped := false
		for i := range remaining {
			prev := remaining[(i+len(remaining)-1)%len(remaining)]
			cur := remaining[i]
			next := remaining[(i+1)%len(remaining)]
			if !isEar(pts, remaining, prev, cur, next) {
				continue
			}
			out = append(out, uint32(prev), uint32(cur), uint32(next))
			remaining = append(remaining[:i], remaining[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			break
		}
	}
	// Whatever is left (a triangle, or a degenerate remainder) becomes a fan.
	for i := 1; i+1 < len(remaining); i++ {
		out = append(out, uint32(remaining[0]), uint32(remaining[i]), uint32(remaining[i+1]))
	}
	return out
}

func isEar(pts []math.Vec2, remaining []int, prev, cur, next int) bool {
	a, b, c := pts[prev], pts[cur], pts[next]
	if cross2(a, b, c) <= 0 {
		return false
	}
	for _, idx := range remaining {
		if idx == prev || idx == cur || idx == next {
			continue
		}
		if inTriangle(pts[idx], a, b, c) {
			return false
		}
	}
	return true
}

func cross2(a, b, c math.Vec2) float32 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func inTriangle(p, a, b, c math.Vec2) bool {
	return cross2(a, b, p) >= 0 && cross2(b, c, p) >= 0 && cross2(c, a, p) >= 0
}

// ShapeMesh fills the outline in the XY plane facing +Z.
func ShapeMesh(s *Shape) *Mesh {
	m := &Mesh{}
	pts := s.Points()
	n := math.V3(0, 0, 1)
	for _, p := range pts {
		m.add(math.V3(p.X, p.Y, 0), n)
	}
	m.Indices = triangulate(pts)
	m.computeBounds()
	return m
}

// Extrude sweeps the outline along +Z by depth, split into steps along the
// sides, and caps both ends. Faces are shaded flat.
func Extrude(s *Shape, depth float32, steps int) *Mesh {
	m := &Mesh{}
	pts := s.Points()
	n := uint32(len(pts))
	if n < 3 {
		return m
	}
	if steps < 1 {
		steps = 1
	}

	for st := 0; st <= steps; st++ {
		z := depth * float32(st) / float32(steps)
		for _, p := range pts {
			m.add(math.V3(p.X, p.Y, z), math.Vec3{})
		}
	}

	capIdx := triangulate(pts)
	for i := 0; i+2 < len(capIdx); i += 3 {
		// Front cap at z=0 faces -Z.
		m.tri(capIdx[i], capIdx[i+2], capIdx[i+1])
	}
	back := uint32(steps) * n
	for i := 0; i+2 < len(capIdx); i += 3 {
		m.tri(back+capIdx[i], back+capIdx[i+1], back+capIdx[i+2])
	}

	for st := uint32(0); st < uint32(steps); st++ {
		for i := uint32(0); i < n; i++ {
			j := (i + 1) % n
			a := st*n + i
			b := st*n + j
			c := (st+1)*n + j
			d := (st+1)*n + i
			m.tri(a, b, c)
			m.tri(a, c, d)
		}
	}

	m.flatten()
	m.computeBounds()
	return m
}

// Heart returns the heart outline used by the geometry showcase.
func Heart() *Shape {
	x, y := float32(0), float32(-1)
	s := &Shape{}
	s.MoveTo(x+0.5, y+0.5).
		BezierCurveTo(x+0.5, y+0.5, x+0.4, y, x, y).
		BezierCurveTo(x-0.6, y, x-0.6, y+0.7, x-0.6, y+0.7).
		BezierCurveTo(x-0.6, y+1.1, x-0.3, y+1.54, x+0.5, y+1.9).
		BezierCurveTo(x+1.2, y+1.54, x+1.6, y+1.1, x+1.6, y+0.7).
		BezierCurveTo(x+1.6, y+0.7, x+1.6, y, x+1, y).
		BezierCurveTo(x+0.7, y, x+0.5, y+0.5, x+0.5, y+0.5)
	return s
}

// Rectangle returns a length × width outline with a corner at the origin.
func Rectangle(length, width float32) *Shape {
	s := &Shape{}
	s.MoveTo(0, 0).LineTo(0, width).LineTo(length, width).LineTo(length, 0).LineTo(0, 0)
	return s
}
