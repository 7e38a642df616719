package motion

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/scene-gallery/pkg/math"
)

// pose is a bare Target for exercising specs without a scene graph.
type pose struct {
	pos, rot math.Vec3
}

func (p *pose) Position() math.Vec3 { return p.pos }
func (p *pose) SetPosition(v math.Vec3) { p.pos = v }
func (p *pose) Rotation() math.Vec3 { return p.rot }
func (p *pose) SetRotation(v math.Vec3) { p.rot = v }

const eps = 1e-5

func TestOrbitGeometryFromInitialPosition(t *testing.T) {
	tests := []struct {
		name    string
		initial math.Vec3
	}{
		{"positive x", math.V3(1, 0.5, 0)},
		{"negative x", math.V3(-3, 0.5, 0)},
		{"diagonal", math.V3(3, 0, 4)},
		{"negative z", math.V3(4, 0.5, -4)},
		{"origin", math.V3(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewOrbit(tt.initial)
			x0, z0 := float64(tt.initial.X), float64(tt.initial.Z)
			assert.InDelta(t, gomath.Sqrt(x0*x0+z0*z0), o.Radius, 1e-12)

			got := o.At(0, tt.initial)
			assert.True(t, got.ApproxEqual(tt.initial, eps), "t=0 should reproduce %v, got %v", tt.initial, got)
		})
	}
}

func TestOrbitQuarterTurn(t *testing.T) {
	o := NewOrbit(math.V3(1, 0.5, 0))
	got := o.At(gomath.Pi/2, math.V3(1, 0.5, 0))
	assert.True(t, got.ApproxEqual(math.V3(0, 0.5, 1), eps), "got %v", got)
}

func TestOrbitHasNoHiddenAccumulation(t *testing.T) {
	initial := math.V3(-3, 0.5, 0)
	o := NewOrbit(initial)

	replayed := &pose{pos: initial}
	for _, ts := range []float64{0.1, 0.7, 1.3, 2.9} {
		o.Apply(replayed, ts)
	}

	direct := &pose{pos: initial}
	o.Apply(direct, 2.9)

	assert.Equal(t, direct.pos, replayed.pos)
}

func TestOrbitIgnoresLaterMoves(t *testing.T) {
	o := NewOrbit(math.V3(2, 0, 0))
	p := &pose{pos: math.V3(10, 0, 10)}
	o.Apply(p, 0)
	assert.True(t, p.pos.ApproxEqual(math.V3(2, 0, 0), eps))
}

func TestBounceStaysInRange(t *testing.T) {
	b := NewBounce(0.5, 1)
	for i := 0; i <= 1000; i++ {
		ts := float64(i) * 0.037
		y := float64(b.At(ts, math.Vec3{}).Y)
		require.GreaterOrEqual(t, y, 0.5-eps, "t=%v", ts)
		require.LessOrEqual(t, y, 1.5+eps, "t=%v", ts)
	}
}

func TestBouncePeak(t *testing.T) {
	b := NewBounce(0.5, 1)
	got := b.At(gomath.Pi/2, math.V3(2, 0.5, 0))
	assert.InDelta(t, 1.5, float64(got.Y), eps)
	assert.Equal(t, float32(2), got.X, "bounce must not touch X")
}

func TestBounceNegativeAmplitudeFolds(t *testing.T) {
	b := NewBounce(0, -2)
	assert.InDelta(t, 2.0, float64(b.At(gomath.Pi/2, math.Vec3{}).Y), eps)
}

func TestSpinIsTimeBased(t *testing.T) {
	s := NewSpin(math.V3(-gomath.Pi/2, 0, 0), math.V3(DefaultSpinRate, DefaultSpinRate, 0))

	assert.True(t, s.At(0).ApproxEqual(math.V3(-gomath.Pi/2, 0, 0), eps))

	got := s.At(10)
	want := math.V3(float32(-gomath.Pi/2+6), 6, 0)
	assert.True(t, got.ApproxEqual(want, 1e-4), "got %v want %v", got, want)

	// Same time, same pose.
	assert.Equal(t, s.At(3.3), s.At(3.3))
}

func TestCombinedMotionsOwnDisjointFields(t *testing.T) {
	initial := math.V3(-3, 0.5, 0)
	specs := []Spec{
		NewSpin(math.Vec3{}, math.V3(1, 0, 0)),
		NewOrbit(initial),
		NewBounce(0.5, 1),
	}

	forward := &pose{pos: initial}
	reverse := &pose{pos: initial}
	for _, s := range specs {
		s.Apply(forward, 1.2)
	}
	for i := len(specs) - 1; i >= 0; i-- {
		specs[i].Apply(reverse, 1.2)
	}

	assert.Equal(t, forward.pos, reverse.pos, "order of application must not matter")
	assert.Equal(t, forward.rot, reverse.rot)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "spin", NewSpin(math.Vec3{}, math.Vec3{}).Kind().String())
	assert.Equal(t, "orbit", NewOrbit(math.Vec3{}).Kind().String())
	assert.Equal(t, "bounce", NewBounce(0, 1).Kind().String())
	assert.Equal(t, "unknown", Kind(99).String())
}
