package object

import (
	gomath "math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/scene-gallery/internal/engine/frame"
	"github.com/Faultbox/scene-gallery/internal/motion"
	"github.com/Faultbox/scene-gallery/internal/scenegraph"
	"github.com/Faultbox/scene-gallery/pkg/math"
)

const eps = 1e-4

func at(x, y, z float32) scenegraph.Transform {
	t := scenegraph.IdentityTransform()
	t.Position = math.V3(x, y, z)
	return t
}

func mounted(t *testing.T, cfg Config) (*Object, *frame.Scheduler, *frame.ManualClock) {
	t.Helper()
	clock := &frame.ManualClock{}
	s := frame.NewScheduler(clock)
	o := New(cfg)
	o.Mount(s)
	require.True(t, o.Mounted())
	return o, s, clock
}

func TestStillObjectNeverMoves(t *testing.T) {
	o, s, clock := mounted(t, Config{Name: "still", Transform: at(4, 0.5, -4)})
	before := o.Node().Transform()

	for _, ts := range []float64{0, 0.5, 1, 10, 123.4} {
		clock.Set(ts)
		s.Tick()
		assert.Equal(t, before, o.Node().Transform())
	}
}

func TestQuarterOrbit(t *testing.T) {
	o, s, clock := mounted(t, Config{
		Name:      "orbiter",
		Transform: at(1, 0.5, 0),
		Flags:     Flags{Orbit: true},
	})

	clock.Set(gomath.Pi / 2)
	s.Tick()

	p := o.Node().Position()
	assert.InDelta(t, 0, p.X, eps)
	assert.InDelta(t, 0.5, p.Y, eps)
	assert.InDelta(t, 1, p.Z, eps)
}

func TestBouncePeak(t *testing.T) {
	o, s, clock := mounted(t, Config{
		Name:      "bouncer",
		Transform: at(2, 0.5, 0),
		Flags:     Flags{Bounce: true},
		Baseline:  0.5,
		Amplitude: 1,
	})

	clock.Set(gomath.Pi / 2)
	s.Tick()
	p := o.Node().Position()
	assert.InDelta(t, 2, p.X, eps)
	assert.InDelta(t, 1.5, p.Y, eps)
	assert.InDelta(t, 0, p.Z, eps)

	clock.Set(gomath.Pi)
	s.Tick()
	assert.InDelta(t, 0.5, o.Node().Position().Y, eps)
}

func TestOrbitAndBounceCombine(t *testing.T) {
	o, s, clock := mounted(t, Config{
		Name:      "both",
		Transform: at(-3, 0.5, 0),
		Flags:     Flags{Orbit: true, Bounce: true},
		Baseline:  0.5,
		Amplitude: 1,
	})

	for _, ts := range []float64{0.3, 1.7, 4.2} {
		clock.Set(ts)
		s.Tick()
		p := o.Node().Position()
		assert.InDelta(t, 3, gomath.Hypot(float64(p.X), float64(p.Z)), eps)
		assert.InDelta(t, 0.5+gomath.Abs(gomath.Sin(ts)), p.Y, eps)
	}
}

func TestSpinIsTimeBased(t *testing.T) {
	o, s, clock := mounted(t, Config{
		Name:     "spinner",
		Flags:    Flags{Spin: true},
		SpinRate: math.V3(motion.DefaultSpinRate, motion.DefaultSpinRate, 0),
	})

	clock.Set(2)
	s.Tick()
	s.Tick()
	r := o.Node().Rotation()
	assert.InDelta(t, 1.2, r.X, eps)
	assert.InDelta(t, 1.2, r.Y, eps)
	assert.InDelta(t, 0, r.Z, eps)
}

func TestUnmountStopsUpdates(t *testing.T) {
	o, s, clock := mounted(t, Config{
		Name:      "orbiter",
		Transform: at(1, 0, 0),
		Flags:     Flags{Orbit: true},
	})
	clock.Set(1)
	s.Tick()
	frozen := o.Node().Position()

	o.Unmount()
	assert.False(t, o.Mounted())
	assert.False(t, o.Node().Alive())
	assert.Equal(t, 0, s.Len())

	clock.Set(2)
	assert.NotPanics(t, func() { s.Tick() })
	assert.Equal(t, frozen, o.Node().Position())

	// A stale callback invoked directly is also harmless.
	assert.NotPanics(t, func() { o.OnFrame(3) })
	assert.Equal(t, frozen, o.Node().Position())
}

func TestMountTwiceRegistersOnce(t *testing.T) {
	o, s, _ := mounted(t, Config{Name: "box"})
	o.Mount(s)
	assert.Equal(t, 1, s.Len())
}

func TestHoverDoesNotAffectMotion(t *testing.T) {
	cfg := Config{
		Name:      "orbiter",
		Transform: at(1, 0.5, 0),
		Flags:     Flags{Orbit: true, Bounce: true},
		Baseline:  0.5,
		Amplitude: 1,
	}
	plain, s1, c1 := mounted(t, cfg)
	poked, s2, c2 := mounted(t, cfg)

	for i, ts := range []float64{0.1, 0.9, 2.5, 3.3} {
		if i%2 == 0 {
			poked.PointerOver()
		} else {
			poked.PointerOut()
		}
		poked.Click()
		c1.Set(ts)
		c2.Set(ts)
		s1.Tick()
		s2.Tick()
		assert.Equal(t, plain.Node().Position(), poked.Node().Position())
	}
}

func TestPointerHooks(t *testing.T) {
	o := New(Config{Name: "box"})
	assert.Equal(t, Interaction{}, o.Interaction())

	o.PointerOver()
	assert.True(t, o.Interaction().Hovered)
	o.PointerOut()
	assert.False(t, o.Interaction().Hovered)

	o.Click()
	assert.True(t, o.Interaction().Active)
	o.Click()
	assert.False(t, o.Interaction().Active)
}

func TestClickScalesInstantlyWithoutCurve(t *testing.T) {
	o, s, clock := mounted(t, Config{Name: "box", Transform: scenegraph.IdentityTransform(), ActiveScale: 1.5})

	clock.Set(1)
	s.Tick()
	assert.Equal(t, math.Splat(1), o.Node().Scale())

	o.Click()
	s.Tick()
	assert.Equal(t, math.Splat(1.5), o.Node().Scale())

	o.Click()
	s.Tick()
	assert.Equal(t, math.Splat(1), o.Node().Scale())
}

func TestClickScaleEases(t *testing.T) {
	curve, err := motion.CurveByName("linear")
	require.NoError(t, err)
	o, s, clock := mounted(t, Config{
		Name:        "spring",
		Transform:   scenegraph.IdentityTransform(),
		ActiveScale: 1.5,
		Transition:  curve,
		Duration:    1,
	})

	clock.Set(2)
	s.Tick()
	o.Click()

	clock.Set(2.5)
	s.Tick()
	assert.InDelta(t, 1.25, o.Node().Scale().X, eps)

	clock.Set(3)
	s.Tick()
	assert.InDelta(t, 1.5, o.Node().Scale().X, eps)
}

func TestClickScaleKeepsBaseScale(t *testing.T) {
	tr := scenegraph.IdentityTransform()
	tr.Scale = math.Splat(3)
	o, s, clock := mounted(t, Config{Name: "big", Transform: tr, ActiveScale: 2})

	o.Click()
	clock.Set(0.1)
	s.Tick()
	assert.Equal(t, math.Splat(6), o.Node().Scale())
}

func TestZeroScaleIsKept(t *testing.T) {
	tr := scenegraph.IdentityTransform()
	tr.Scale = math.Vec3{}
	o, s, clock := mounted(t, Config{Name: "collapsed", Transform: tr, Flags: Flags{Spin: true}, SpinRate: math.Splat(1)})

	assert.Equal(t, math.Vec3{}, o.Node().Scale())
	clock.Set(1)
	s.Tick()
	assert.Equal(t, math.Vec3{}, o.Node().Scale())
}

func TestLabelFallsBackToName(t *testing.T) {
	assert.Equal(t, "torus", New(Config{Name: "torus"}).Label())
	assert.Equal(t, "Torus", New(Config{Name: "torus", Label: "Torus"}).Label())
}

func TestColorFollowsHover(t *testing.T) {
	orange, _ := colorful.Hex("#ffa500")
	pink, _ := colorful.Hex("#ff69b4")
	o := New(Config{
		Name:       "box",
		Flags:      Flags{Spin: true},
		Appearance: NewAppearance(Palette{orange, orange, orange, orange}, &pink),
	})

	assert.Equal(t, orange.Hex(), o.Color().Hex())
	o.PointerOver()
	assert.Equal(t, pink.Hex(), o.Color().Hex())
	o.PointerOut()
	assert.Equal(t, orange.Hex(), o.Color().Hex())
}
