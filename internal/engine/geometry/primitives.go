package geometry

import (
	gomath "math"

	"github.com/Faultbox/scene-gallery/pkg/math"
)

// Box builds an axis-aligned box centred on the origin with flat faces.
func Box(width, height, depth float32) *Mesh {
	m := &Mesh{}
	hw, hh, hd := width/2, height/2, depth/2

	face := func(n, u, v math.Vec3) {
		// n is the face normal; u and v span the face with u × v = n.
		center := math.V3(n.X*hw, n.Y*hh, n.Z*hd)
		du := math.V3(u.X*hw, u.Y*hh, u.Z*hd)
		dv := math.V3(v.X*hw, v.Y*hh, v.Z*hd)
		a := m.add(center.Sub(du).Sub(dv), n)
		b := m.add(center.Add(du).Sub(dv), n)
		c := m.add(center.Add(du).Add(dv), n)
		d := m.add(center.Sub(du).Add(dv), n)
		m.tri(a, b, c)
		m.tri(a, c, d)
	}

	face(math.V3(1, 0, 0), math.V3(0, 0, -1), math.V3(0, 1, 0))
	face(math.V3(-1, 0, 0), math.V3(0, 0, 1), math.V3(0, 1, 0))
	face(math.V3(0, 1, 0), math.V3(1, 0, 0), math.V3(0, 0, -1))
	face(math.V3(0, -1, 0), math.V3(1, 0, 0), math.V3(0, 0, 1))
	face(math.V3(0, 0, 1), math.V3(1, 0, 0), math.V3(0, 1, 0))
	face(math.V3(0, 0, -1), math.V3(-1, 0, 0), math.V3(0, 1, 0))

	m.computeBounds()
	return m
}

// Plane builds a width × height rectangle in the XY plane facing +Z.
func Plane(width, height float32) *Mesh {
	m := &Mesh{}
	n := math.V3(0, 0, 1)
	hw, hh := width/2, height/2
	a := m.add(math.V3(-hw, hh, 0), n)
	b := m.add(math.V3(hw, hh, 0), n)
	c := m.add(math.V3(-hw, -hh, 0), n)
	d := m.add(math.V3(hw, -hh, 0), n)
	m.tri(a, c, b)
	m.tri(c, d, b)
	m.computeBounds()
	return m
}

// Circle builds a disc in the XY plane as a triangle fan.
func Circle(radius float32, segs int) *Mesh {
	m := &Mesh{}
	n := math.V3(0, 0, 1)
	m.add(math.Vec3{}, n)
	for s := 0; s <= segs; s++ {
		sin, cos := sincos(float64(s) / float64(segs) * 2 * gomath.Pi)
		m.add(math.V3(radius*cos, radius*sin, 0), n)
	}
	for i := 1; i <= segs; i++ {
		m.tri(uint32(i), uint32(i+1), 0)
	}
	m.computeBounds()
	return m
}

// Ring builds a flat annulus in the XY plane.
func Ring(inner, outer float32, segs int) *Mesh {
	m := &Mesh{}
	n := math.V3(0, 0, 1)
	for _, r := range []float32{inner, outer} {
		for i := 0; i <= segs; i++ {
			sin, cos := sincos(float64(i) / float64(segs) * 2 * gomath.Pi)
			m.add(math.V3(r*cos, r*sin, 0), n)
		}
	}
	stride := uint32(segs + 1)
	for i := uint32(0); i < uint32(segs); i++ {
		a, b, c, d := i, i+stride, i+stride+1, i+1
		m.tri(a, b, d)
		m.tri(b, c, d)
	}
	m.computeBounds()
	return m
}

// Sphere builds a UV sphere. Degenerate pole triangles are skipped.
func Sphere(radius float32, widthSegs, heightSegs int) *Mesh {
	m := &Mesh{}
	for iy := 0; iy <= heightSegs; iy++ {
		v := float64(iy) / float64(heightSegs)
		sinT, cosT := sincos(v * gomath.Pi)
		for ix := 0; ix <= widthSegs; ix++ {
			u := float64(ix) / float64(widthSegs)
			sinP, cosP := sincos(u * 2 * gomath.Pi)
			n := math.V3(-cosP*sinT, cosT, sinP*sinT)
			m.add(n.Scale(radius), n)
		}
	}
	row := uint32(widthSegs + 1)
	for iy := 0; iy < heightSegs; iy++ {
		for ix := 0; ix < widthSegs; ix++ {
			a := uint32(iy)*row + uint32(ix) + 1
			b := uint32(iy)*row + uint32(ix)
			c := uint32(iy+1)*row + uint32(ix)
			d := uint32(iy+1)*row + uint32(ix) + 1
			if iy != 0 {
				m.tri(a, b, d)
			}
			if iy != heightSegs-1 {
				m.tri(b, c, d)
			}
		}
	}
	m.computeBounds()
	return m
}

// Cylinder builds a (possibly tapered) open-ended or capped cylinder along Y.
// A zero radius on either end omits that cap, which makes a cone.
func Cylinder(radiusTop, radiusBottom, height float32, radialSegs int) *Mesh {
	m := &Mesh{}
	half := height / 2
	slope := (radiusBottom - radiusTop) / height

	for y := 0; y <= 1; y++ {
		r := radiusTop + float32(y)*(radiusBottom-radiusTop)
		for x := 0; x <= radialSegs; x++ {
			sin, cos := sincos(float64(x) / float64(radialSegs) * 2 * gomath.Pi)
			p := math.V3(r*sin, half-float32(y)*height, r*cos)
			m.add(p, math.V3(sin, slope, cos).Normalize())
		}
	}
	row := uint32(radialSegs + 1)
	for x := uint32(0); x < uint32(radialSegs); x++ {
		a, b, c, d := x, x+row, x+row+1, x+1
		m.tri(a, b, d)
		m.tri(b, c, d)
	}

	addCap := func(top bool) {
		r, y, n := radiusBottom, -half, math.V3(0, -1, 0)
		if top {
			r, y, n = radiusTop, half, math.V3(0, 1, 0)
		}
		if r <= 0 {
			return
		}
		center := m.add(math.V3(0, y, 0), n)
		for x := 0; x <= radialSegs; x++ {
			sin, cos := sincos(float64(x) / float64(radialSegs) * 2 * gomath.Pi)
			m.add(math.V3(r*sin, y, r*cos), n)
		}
		for x := uint32(0); x < uint32(radialSegs); x++ {
			i := center + 1 + x
			if top {
				m.tri(i, i+1, center)
			} else {
				m.tri(i+1, i, center)
			}
		}
	}
	addCap(true)
	addCap(false)

	m.computeBounds()
	return m
}

// Cone builds a cone with its apex at +Y.
func Cone(radius, height float32, radialSegs int) *Mesh {
	return Cylinder(0, radius, height, radialSegs)
}

// Torus builds a ring-shaped tube in the XY plane.
func Torus(radius, tube float32, radialSegs, tubularSegs int) *Mesh {
	m := &Mesh{}
	for j := 0; j <= radialSegs; j++ {
		sinV, cosV := sincos(float64(j) / float64(radialSegs) * 2 * gomath.Pi)
		for i := 0; i <= tubularSegs; i++ {
			sinU, cosU := sincos(float64(i) / float64(tubularSegs) * 2 * gomath.Pi)
			p := math.V3((radius+tube*cosV)*cosU, (radius+tube*cosV)*sinU, tube*sinV)
			center := math.V3(radius*cosU, radius*sinU, 0)
			m.add(p, p.Sub(center).Normalize())
		}
	}
	row := uint32(tubularSegs + 1)
	for j := uint32(1); j <= uint32(radialSegs); j++ {
		for i := uint32(1); i <= uint32(tubularSegs); i++ {
			a := row*j + i - 1
			b := row*(j-1) + i - 1
			c := row*(j-1) + i
			d := row*j + i
			m.tri(a, b, d)
			m.tri(b, c, d)
		}
	}
	m.computeBounds()
	return m
}

// TorusKnot builds a tube following a (p, q) torus knot.
func TorusKnot(radius, tube float32, tubularSegs, radialSegs int, p, q float64) *Mesh {
	m := &Mesh{}
	curve := func(u float64) math.Vec3 {
		qu := q / p * u
		cs := float32(gomath.Cos(qu))
		su, cu := sincos(u)
		return math.V3(
			radius*(2+cs)*0.5*cu,
			radius*(2+cs)*0.5*su,
			radius*float32(gomath.Sin(qu))*0.5,
		)
	}

	for i := 0; i <= tubularSegs; i++ {
		u := float64(i) / float64(tubularSegs) * p * 2 * gomath.Pi
		p1 := curve(u)
		p2 := curve(u + 0.01)
		t := p2.Sub(p1)
		n := p2.Add(p1)
		b := t.Cross(n).Normalize()
		n = b.Cross(t).Normalize()
		for j := 0; j <= radialSegs; j++ {
			sinV, cosV := sincos(float64(j) / float64(radialSegs) * 2 * gomath.Pi)
			cx, cy := -tube*cosV, tube*sinV
			pos := p1.Add(n.Scale(cx)).Add(b.Scale(cy))
			m.add(pos, pos.Sub(p1).Normalize())
		}
	}
	row := uint32(radialSegs + 1)
	for j := uint32(1); j <= uint32(tubularSegs); j++ {
		for i := uint32(1); i <= uint32(radialSegs); i++ {
			a := row*(j-1) + i - 1
			b := row*j + i - 1
			c := row*j + i
			d := row*(j-1) + i
			m.tri(a, b, d)
			m.tri(b, c, d)
		}
	}
	m.computeBounds()
	return m
}

// Lathe revolves a profile in the XY plane around the Y axis.
func Lathe(profile []math.Vec2, segs int) *Mesh {
	m := &Mesh{}
	for i := 0; i <= segs; i++ {
		sin, cos := sincos(float64(i) / float64(segs) * 2 * gomath.Pi)
		for _, pt := range profile {
			m.add(math.V3(pt.X*sin, pt.Y, pt.X*cos), math.Vec3{})
		}
	}
	n := uint32(len(profile))
	for i := uint32(0); i < uint32(segs); i++ {
		for j := uint32(0); j+1 < n; j++ {
			base := j + i*n
			a, b, c, d := base, base+n, base+n+1, base+1
			m.tri(a, b, d)
			m.tri(c, d, b)
		}
	}
	m.computeNormals()
	m.computeBounds()
	return m
}
