// Package picking provides ray casting for pointer hit-testing.
package picking

import (
	gomath "math"

	"github.com/Faultbox/scene-gallery/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min [3]float32
	Max [3]float32
}

// ScreenToRay converts screen coordinates to a world-space ray.
// screenX, screenY are pixel coordinates, viewportW/H are viewport dimensions.
// invViewProj is the inverse of the view-projection matrix.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj math.Mat4) Ray {
	// Convert screen coords to normalized device coords (-1 to 1)
	ndcX := 2.0*screenX/viewportW - 1.0
	ndcY := 1.0 - 2.0*screenY/viewportH // Flip Y

	nearWorld := unproject(invViewProj, math.Vec4{ndcX, ndcY, -1.0, 1.0})
	farWorld := unproject(invViewProj, math.Vec4{ndcX, ndcY, 1.0, 1.0})

	return Ray{Origin: nearWorld, Direction: farWorld.Sub(nearWorld).Normalize()}
}

// WorldToScreen projects a world point to pixel coordinates, with the origin
// at the top-left like pointer input. ok is false when the point lies behind
// the camera or outside the depth range.
func WorldToScreen(p math.Vec3, viewportW, viewportH float32, viewProj math.Mat4) (x, y float32, ok bool) {
	clip := viewProj.MulVec4(math.Vec4{p.X, p.Y, p.Z, 1})
	if clip[3] <= 0 {
		return 0, 0, false
	}
	ndcX := clip[0] / clip[3]
	ndcY := clip[1] / clip[3]
	ndcZ := clip[2] / clip[3]
	if ndcZ < -1 || ndcZ > 1 {
		return 0, 0, false
	}
	x = (ndcX + 1) * 0.5 * viewportW
	y = (1 - ndcY) * 0.5 * viewportH
	return x, y, true
}

func unproject(inv math.Mat4, p math.Vec4) math.Vec3 {
	w := inv.MulVec4(p)
	if w[3] != 0 {
		w[0] /= w[3]
		w[1] /= w[3]
		w[2] /= w[3]
	}
	return math.V3(w[0], w[1], w[2])
}

// Transform maps the ray through m. The direction is not renormalised, so a
// hit parameter found against the transformed ray is valid on the original.
func (r Ray) Transform(m math.Mat4) Ray {
	o := m.TransformPoint(r.Origin.Array())
	d := m.MulVec4(math.Vec4{r.Direction.X, r.Direction.Y, r.Direction.Z, 0})
	return Ray{
		Origin:    math.V3(o[0], o[1], o[2]),
		Direction: math.V3(d[0], d[1], d[2]),
	}
}

// IntersectSphere tests the ray against a sphere and returns the distance to
// the nearest hit in front of the origin. If the origin lies inside the
// sphere the exit distance is returned.
func (r Ray) IntersectSphere(center math.Vec3, radius float32) (t float32, hit bool) {
	oc := r.Origin.Sub(center)
	a := r.Direction.Dot(r.Direction)
	if a == 0 {
		return 0, false
	}
	b := oc.Dot(r.Direction)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - a*c
	if disc < 0 {
		return 0, false
	}
	sq := float32(gomath.Sqrt(float64(disc)))
	t0 := (-b - sq) / a
	t1 := (-b + sq) / a
	if t1 < 0 {
		return 0, false
	}
	if t0 < 0 {
		return t1, true
	}
	return t0, true
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box.
// Returns the distance to intersection (t) and whether intersection occurred.
// If the ray starts inside the box, returns the exit distance.
func (r Ray) IntersectAABB(box AABB) (t float32, hit bool) {
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	origin := r.Origin.Array()
	dir := r.Direction.Array()
	for axis := 0; axis < 3; axis++ {
		if dir[axis] != 0 {
			t1 := (box.Min[axis] - origin[axis]) / dir[axis]
			t2 := (box.Max[axis] - origin[axis]) / dir[axis]
			if t1 > t2 {
				t1, t2 = t2, t1
			}
			if t1 > tmin {
				tmin = t1
			}
			if t2 < tmax {
				tmax = t2
			}
		} else if origin[axis] < box.Min[axis] || origin[axis] > box.Max[axis] {
			return 0, false
		}
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	// Return entry point, or exit point if starting inside
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// NewAABB creates an AABB from two corners, handling swapped extents.
func NewAABB(lo, hi [3]float32) AABB {
	box := AABB{Min: lo, Max: hi}
	for i := 0; i < 3; i++ {
		if box.Min[i] > box.Max[i] {
			box.Min[i], box.Max[i] = box.Max[i], box.Min[i]
		}
	}
	return box
}

// Target is something the pointer can hit.
type Target interface {
	// Bounds returns the world transform and the local-space box and
	// bounding radius of the target.
	Bounds() (world math.Mat4, local AABB, radius float32)
}

// Hit tests the ray against a target: first its world bounding sphere, then
// its local box. It returns the world-space distance to the hit.
func Hit(r Ray, target Target) (float32, bool) {
	world, local, radius := target.Bounds()
	center := world.Translation()
	if _, ok := r.IntersectSphere(center, radius*world.MaxScale()); !ok {
		return 0, false
	}
	return r.Transform(world.Inverse()).IntersectAABB(local)
}

// Nearest returns the index of the closest target the ray hits, or -1.
func Nearest[T Target](r Ray, targets []T) (int, float32) {
	best, bestT := -1, float32(gomath.MaxFloat32)
	for i, tg := range targets {
		if t, ok := Hit(r, tg); ok && t < bestT {
			best, bestT = i, t
		}
	}
	return best, bestT
}
