package geometry

import (
	gomath "math"

	"github.com/Faultbox/scene-gallery/pkg/math"
)

type edgeKey struct {
	a, b [3]int32
}

type edgeInfo struct {
	from, to math.Vec3
	normal   math.Vec3
	count    int
	emit     bool
}

// Edges returns the line segments of m whose adjacent faces meet at more
// than thresholdDeg degrees, plus every boundary edge. A box yields its 12
// outline edges and none of its face diagonals.
func Edges(m *Mesh, thresholdDeg float64) *Mesh {
	cosThreshold := float32(gomath.Cos(thresholdDeg * gomath.Pi / 180))
	edges := make(map[edgeKey]*edgeInfo)
	var order []edgeKey

	for i := 0; i+2 < len(m.Indices); i += 3 {
		corners := [3]math.Vec3{
			vec(m.Vertices[m.Indices[i]].Position),
			vec(m.Vertices[m.Indices[i+1]].Position),
			vec(m.Vertices[m.Indices[i+2]].Position),
		}
		n := faceNormal(corners[0], corners[1], corners[2])
		if n.Length() < 1e-10 {
			continue
		}
		n = n.Normalize()
		for k := 0; k < 3; k++ {
			p, q := corners[k], corners[(k+1)%3]
			key := makeEdgeKey(p, q)
			e, ok := edges[key]
			if !ok {
				edges[key] = &edgeInfo{from: p, to: q, normal: n, count: 1}
				order = append(order, key)
				continue
			}
			e.count++
			if e.normal.Dot(n) <= cosThreshold {
				e.emit = true
			}
		}
	}

	out := &Mesh{Mode: Lines}
	for _, key := range order {
		e := edges[key]
		if e.count == 1 || e.emit {
			a := out.add(e.from, math.Vec3{})
			b := out.add(e.to, math.Vec3{})
			out.Indices = append(out.Indices, a, b)
		}
	}
	out.computeBounds()
	return out
}

func quantize(p math.Vec3) [3]int32 {
	const scale = 1e4
	return [3]int32{
		int32(gomath.Round(float64(p.X) * scale)),
		int32(gomath.Round(float64(p.Y) * scale)),
		int32(gomath.Round(float64(p.Z) * scale)),
	}
}

func makeEdgeKey(p, q math.Vec3) edgeKey {
	a, b := quantize(p), quantize(q)
	if less(b, a) {
		a, b = b, a
	}
	return edgeKey{a, b}
}

func less(a, b [3]int32) bool {
	for i := 0; i < 3; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
