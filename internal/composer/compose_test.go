package composer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/scene-gallery/internal/engine/frame"
	"github.com/Faultbox/scene-gallery/internal/engine/lighting"
	"github.com/Faultbox/scene-gallery/pkg/math"
)

const boxScene = `
name: box
title: Hover box
controls: true
lights:
  - kind: ambient
    intensity: 0.3
  - kind: directional
    position: [1, 2, 3]
    color: "#ffeecc"
helpers:
  axes: 2
  grid: {size: 10, divisions: 10}
objects:
  - name: cube
    label: A cube
    geometry: {kind: box, args: [1, 1, 1]}
    material: {color: orange, hover_color: hotpink}
    scale: 2
    motion: {spin: true}
    interaction: {active_scale: 1.5}
  - name: holder
    geometry: {kind: group}
    position: [3, 0, 0]
    children:
      - name: ball
        geometry: {kind: sphere, args: [0.5]}
        motion: {bounce: true, amplitude: 0.5}
`

func compose(t *testing.T, src string) *Scene {
	t.Helper()
	desc, err := Parse([]byte(src))
	require.NoError(t, err)
	s, err := Compose(desc)
	require.NoError(t, err)
	return s
}

func TestParseScalarExpandsToTriple(t *testing.T) {
	desc, err := Parse([]byte("name: x\nobjects:\n  - name: a\n    scale: 2\n    position: [1, 2, 3]\n"))
	require.NoError(t, err)
	require.Len(t, desc.Objects, 1)
	assert.Equal(t, Vec3{2, 2, 2}, *desc.Objects[0].Scale)
	assert.Equal(t, Vec3{1, 2, 3}, desc.Objects[0].Position)
}

func TestComposeScaleDefaults(t *testing.T) {
	s := compose(t, "name: x\nobjects:\n  - name: unset\n  - name: collapsed\n    scale: 0\n")
	unset, _ := s.Object("unset")
	collapsed, _ := s.Object("collapsed")
	assert.Equal(t, math.Splat(1), unset.Node().Scale())
	assert.Equal(t, math.Vec3{}, collapsed.Node().Scale())
}

func TestParseRejects(t *testing.T) {
	for name, src := range map[string]string{
		"short vector":  "objects:\n  - position: [1, 2]\n",
		"unknown field": "objects:\n  - name: a\n    colour: red\n",
		"mapping vec":   "objects:\n  - position: {x: 1}\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(src))
			assert.Error(t, err)
		})
	}
}

func TestComposeBuildsHierarchy(t *testing.T) {
	s := compose(t, boxScene)

	assert.Equal(t, "Hover box", s.Title)
	assert.True(t, s.ControlsEnabled())
	assert.Len(t, s.Objects(), 3)
	assert.Len(t, s.Lights(), 2)
	assert.Equal(t, lighting.Directional, s.Lights()[1].Kind)
	assert.NotEmpty(t, s.Helpers())

	cube, ok := s.Object("cube")
	require.True(t, ok)
	assert.Equal(t, math.Splat(2), cube.Node().Scale())
	assert.True(t, cube.Flags().Spin)

	ball, ok := s.Object("ball")
	require.True(t, ok)
	holder, _ := s.Object("holder")
	assert.Same(t, holder.Node(), ball.Node().Parent())

	// Groups are not drawn.
	assert.Len(t, s.Drawables(), 2)
}

func TestComposeDefaults(t *testing.T) {
	s := compose(t, "name: bare\nobjects:\n  - geometry: {kind: box}\n")

	assert.Equal(t, "bare", s.Title)
	assert.False(t, s.ControlsEnabled())
	assert.InDelta(t, 5, s.Camera().Position().Z, 1e-4)
	assert.Equal(t, float32(75), s.Camera().FOV)

	objs := s.Objects()
	require.Len(t, objs, 1)
	assert.Equal(t, "box-1", objs[0].Name())

	d := s.Drawables()
	require.Len(t, d, 1)
	assert.Equal(t, [3]float32{1, 1, 1}, d[0].Color)
	assert.False(t, d[0].Unlit)
}

func TestComposeErrors(t *testing.T) {
	for name, src := range map[string]string{
		"unknown geometry": "objects:\n  - name: a\n    geometry: {kind: teapot}\n",
		"negative args":    "objects:\n  - name: a\n    geometry: {kind: box, args: [-1]}\n",
		"unknown material": "objects:\n  - name: a\n    material: {kind: toon}\n",
		"bad colour":       "objects:\n  - name: a\n    material: {color: notacolour}\n",
		"bad palette":      "objects:\n  - name: a\n    material: {palette: {still: nope}}\n",
		"unknown curve":    "objects:\n  - name: a\n    interaction: {transition: {curve: wobble}}\n",
		"negative scale":   "objects:\n  - name: a\n    interaction: {active_scale: -1}\n",
		"unknown light":    "lights:\n  - kind: laser\n",
		"bad background":   "background: nope\n",
	} {
		t.Run(name, func(t *testing.T) {
			desc, err := Parse([]byte(src))
			require.NoError(t, err)
			_, err = Compose(desc)
			assert.Error(t, err)
		})
	}
}

func TestComposeRejectsDuplicateNames(t *testing.T) {
	desc, err := Parse([]byte("objects:\n  - name: a\n  - name: b\n    children:\n      - name: a\n"))
	require.NoError(t, err)
	_, err = Compose(desc)
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.ErrorContains(t, err, `object "a"`)
}

func TestUnlitMaterials(t *testing.T) {
	s := compose(t, "objects:\n  - geometry: {kind: box}\n    material: {kind: basic, wireframe: true, double_sided: true}\n")
	d := s.Drawables()
	require.Len(t, d, 1)
	assert.True(t, d[0].Unlit)
	assert.True(t, d[0].Wireframe)
	assert.True(t, d[0].DoubleSided)
}

func TestMountUnmount(t *testing.T) {
	s := compose(t, boxScene)
	sched := frame.NewScheduler(&frame.ManualClock{})

	s.Mount(sched)
	assert.True(t, s.Mounted())
	assert.Equal(t, 3, sched.Len())

	s.Mount(sched)
	assert.Equal(t, 3, sched.Len())

	s.Unmount()
	assert.False(t, s.Mounted())
	assert.Equal(t, 0, sched.Len())
	assert.Empty(t, s.Drawables())

	// Ticking after unmount must be harmless.
	assert.NotPanics(t, func() { sched.Tick() })
}

func TestSceneAnimatesOnTick(t *testing.T) {
	s := compose(t, boxScene)
	clock := &frame.ManualClock{}
	sched := frame.NewScheduler(clock)
	s.Mount(sched)

	clock.Set(1)
	sched.Tick()

	cube, _ := s.Object("cube")
	assert.InDelta(t, 0.6, cube.Node().Rotation().X, 1e-4)

	// Bounce: baseline 0 + 0.5·|sin 1|.
	ball, _ := s.Object("ball")
	assert.InDelta(t, 0.5*0.841471, ball.Node().Position().Y, 1e-4)
}
