// Package motion implements the time-parametrised motion patterns applied to
// scene nodes every frame.
//
// Every Spec is a pure function of elapsed seconds: applying it twice at the
// same time yields the same pose, and nothing accumulates between frames.
// Each kind owns a disjoint set of transform fields:
//
//	Spin   -> rotation
//	Orbit  -> position X and Z
//	Bounce -> position Y
//
// so Spin, Orbit and Bounce can be combined on one node freely. Attaching two
// specs that write the same field (for example two Orbits) is a caller error;
// the last one applied wins.
package motion

import (
	gomath "math"

	"github.com/Faultbox/scene-gallery/pkg/math"
)

// Kind identifies a motion pattern.
type Kind uint8

const (
	KindSpin Kind = iota
	KindOrbit
	KindBounce
)

func (k Kind) String() string {
	switch k {
	case KindSpin:
		return "spin"
	case KindOrbit:
		return "orbit"
	case KindBounce:
		return "bounce"
	default:
		return "unknown"
	}
}

// Target is the part of a scene node a motion may touch.
type Target interface {
	Position() math.Vec3
	SetPosition(math.Vec3)
	Rotation() math.Vec3
	SetRotation(math.Vec3)
}

// Spec is one immutable motion pattern.
type Spec interface {
	Kind() Kind
	Apply(target Target, elapsed float64)
}

// DefaultSpinRate is the spin speed in radians per second. It matches a
// rotation of 0.01 rad per frame at 60 frames per second.
const DefaultSpinRate = 0.6

// Spin rotates a node at a constant rate per axis.
type Spin struct {
	Base math.Vec3 // Rotation at t=0
	Rate math.Vec3 // Radians per second per axis
}

// NewSpin creates a spin starting from base.
func NewSpin(base, rate math.Vec3) Spin {
	return Spin{Base: base, Rate: rate}
}

func (Spin) Kind() Kind { return KindSpin }

// At returns the rotation at t.
func (s Spin) At(t float64) math.Vec3 {
	return math.Vec3{
		X: float32(float64(s.Base.X) + float64(s.Rate.X)*t),
		Y: float32(float64(s.Base.Y) + float64(s.Rate.Y)*t),
		Z: float32(float64(s.Base.Z) + float64(s.Rate.Z)*t),
	}
}

// Apply sets the target's rotation.
func (s Spin) Apply(target Target, elapsed float64) {
	target.SetRotation(s.At(elapsed))
}

// Orbit circles a node around the Y axis through the origin.
type Orbit struct {
	Radius float64
	Phase  float64 // Angle of the initial position in the XZ plane
}

// NewOrbit derives the orbit from the node's initial position. The geometry is
// fixed here; moving the node later does not change it.
func NewOrbit(initial math.Vec3) Orbit {
	x, z := float64(initial.X), float64(initial.Z)
	return Orbit{
		Radius: gomath.Hypot(x, z),
		Phase:  gomath.Atan2(z, x),
	}
}

func (Orbit) Kind() Kind { return KindOrbit }

// At returns p with X and Z replaced by the orbit position at t.
func (o Orbit) At(t float64, p math.Vec3) math.Vec3 {
	angle := o.Phase + t
	p.X = float32(o.Radius * gomath.Cos(angle))
	p.Z = float32(o.Radius * gomath.Sin(angle))
	return p
}

// Apply moves the target along the orbit.
func (o Orbit) Apply(target Target, elapsed float64) {
	target.SetPosition(o.At(elapsed, target.Position()))
}

// Bounce lifts a node above a baseline following |sin t|.
type Bounce struct {
	Baseline  float64
	Amplitude float64
}

// NewBounce creates a bounce. Amplitude 1 reproduces the classic hop; the
// sign of amplitude is dropped so the node never dips below the baseline.
func NewBounce(baseline, amplitude float64) Bounce {
	return Bounce{Baseline: baseline, Amplitude: gomath.Abs(amplitude)}
}

func (Bounce) Kind() Kind { return KindBounce }

// At returns p with Y replaced by the bounce height at t.
func (b Bounce) At(t float64, p math.Vec3) math.Vec3 {
	p.Y = float32(b.Baseline + b.Amplitude*gomath.Abs(gomath.Sin(t)))
	return p
}

// Apply moves the target vertically.
func (b Bounce) Apply(target Target, elapsed float64) {
	target.SetPosition(b.At(elapsed, target.Position()))
}
