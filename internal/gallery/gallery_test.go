package gallery

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/scene-gallery/internal/composer"
	"github.com/Faultbox/scene-gallery/internal/engine/frame"
	"github.com/Faultbox/scene-gallery/internal/engine/input"
)

func newManager(t *testing.T) (*Manager, *frame.ManualClock) {
	t.Helper()
	c, err := LoadCatalog("")
	require.NoError(t, err)
	clock := &frame.ManualClock{}
	return NewManager(c, frame.NewScheduler(clock)), clock
}

func TestBuiltinScenesCompose(t *testing.T) {
	c, err := LoadCatalog("")
	require.NoError(t, err)
	assert.Equal(t, builtinOrder, c.Names())

	for i := 0; i < c.Len(); i++ {
		e := c.At(i)
		t.Run(e.Name, func(t *testing.T) {
			s, err := composer.Compose(e.Description())
			require.NoError(t, err)
			assert.NotEmpty(t, s.Objects())
		})
	}
}

func TestGeometriesSceneHasEveryKind(t *testing.T) {
	c, err := LoadCatalog("")
	require.NoError(t, err)
	desc := c.At(c.Index("geometries")).Description()
	assert.Len(t, desc.Objects, 18)
	assert.True(t, desc.Controls)
}

func TestBasicAnimationPalette(t *testing.T) {
	m, _ := newManager(t)
	require.NoError(t, m.Change("basic-animation"))
	_, err := m.Update()
	require.NoError(t, err)

	want := map[string]string{
		"orbit-near":   "#ff0000",
		"orbit-far":    "#ff0000",
		"bounce":       "#0000ff",
		"orbit-bounce": "#800080",
		"still":        "#808080",
	}

	for name, hex := range want {
		o, ok := m.Current().Object(name)
		require.True(t, ok, name)
		assert.Equal(t, hex, o.Color().Hex(), name)
	}
}

func TestCatalogDirOverridesAndAppends(t *testing.T) {
	c, err := LoadCatalog("")
	require.NoError(t, err)
	n := c.Len()

	fsys := fstest.MapFS{
		"box.yaml":   {Data: []byte("name: box\ntitle: Replaced\n")},
		"extra.yml":  {Data: []byte("objects:\n  - geometry: {kind: sphere}\n")},
		"notes.txt":  {Data: []byte("ignored")},
		"sub/x.yaml": {Data: []byte("name: nested\n")},
	}
	require.NoError(t, c.LoadDir(fsys, "extra-scenes"))

	assert.Equal(t, n+1, c.Len())
	assert.Equal(t, "Replaced", c.At(c.Index("box")).Title)
	assert.Equal(t, n, c.Index("extra"))
	assert.Equal(t, -1, c.Index("nested"))
}

func TestLoadCatalogFromDisk(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mine.yaml"), []byte("name: mine\n"), 0o644))

	c, err := LoadCatalog(dir)
	require.NoError(t, err)
	assert.Equal(t, len(builtinOrder), c.Index("mine"))
}

func TestCatalogRejectsBadScene(t *testing.T) {
	c := NewCatalog()
	err := c.Add("bad.yaml", []byte("objects: [1, 2"))
	assert.ErrorContains(t, err, "bad.yaml")
}

func TestSwitchIsFullRemount(t *testing.T) {
	m, clock := newManager(t)
	sched := m.scheduler

	require.NoError(t, m.Change("box"))
	switched, err := m.Update()
	require.NoError(t, err)
	require.True(t, switched)
	first := m.Current()
	left, _ := first.Object("left")

	clock.Set(3)
	sched.Tick()
	assert.NotZero(t, left.Node().Rotation().X)

	require.NoError(t, m.Change("spring"))
	switched, err = m.Update()
	require.NoError(t, err)
	require.True(t, switched)

	assert.False(t, first.Mounted())
	assert.False(t, left.Node().Alive())
	assert.Equal(t, 1, sched.Len())
	assert.Zero(t, clock.Elapsed())
	assert.Equal(t, m.catalog.Index("spring"), m.CurrentIndex())

	// Coming back composes fresh objects starting from their initial pose.
	require.NoError(t, m.Change("box"))
	_, err = m.Update()
	require.NoError(t, err)
	again, _ := m.Current().Object("left")
	assert.NotSame(t, left, again)
	assert.Zero(t, again.Node().Rotation().X)
}

func TestChangeUnknownScene(t *testing.T) {
	m, _ := newManager(t)
	assert.ErrorIs(t, m.Change("nope"), ErrUnknownScene)
}

func TestFailedComposeKeepsCurrentScene(t *testing.T) {
	m, _ := newManager(t)
	require.NoError(t, m.catalog.Add("broken.yaml", []byte("name: broken\nobjects:\n  - geometry: {kind: teapot}\n")))

	require.NoError(t, m.Change("index"))
	_, err := m.Update()
	require.NoError(t, err)
	current := m.Current()

	require.NoError(t, m.Change("broken"))
	_, err = m.Update()
	assert.Error(t, err)
	assert.Same(t, current, m.Current())
	assert.True(t, current.Mounted())
}

func TestKeyboardNavigation(t *testing.T) {
	m, _ := newManager(t)
	var mounted []string
	m.OnMount = func(s *composer.Scene) { mounted = append(mounted, s.Name) }

	key := func(sc sdl.Scancode) bool {
		return m.HandleEvent(input.Event{Type: input.EventKeyDown, Key: sc})
	}

	assert.True(t, key(sdl.SCANCODE_3))
	_, err := m.Update()
	require.NoError(t, err)

	assert.True(t, key(sdl.SCANCODE_RIGHT))
	_, err = m.Update()
	require.NoError(t, err)

	assert.True(t, key(sdl.SCANCODE_LEFT))
	assert.True(t, key(sdl.SCANCODE_LEFT))
	_, err = m.Update()
	require.NoError(t, err)

	assert.False(t, key(sdl.SCANCODE_9))
	assert.False(t, key(sdl.SCANCODE_A))
	assert.False(t, m.HandleEvent(input.Event{Type: input.EventKeyUp, Key: sdl.SCANCODE_1}))

	assert.Equal(t, []string{"basic-animation", "geometries", "box"}, mounted)
}

func TestStepWraps(t *testing.T) {
	m, _ := newManager(t)
	m.Step(-1)
	_, err := m.Update()
	require.NoError(t, err)
	assert.Equal(t, m.catalog.Len()-1, m.CurrentIndex())

	m.Step(1)
	_, err = m.Update()
	require.NoError(t, err)
	assert.Equal(t, 0, m.CurrentIndex())
}

func TestSpringSceneEasesClickScale(t *testing.T) {
	m, clock := newManager(t)
	require.NoError(t, m.Change("spring"))
	_, err := m.Update()
	require.NoError(t, err)

	box, ok := m.Current().Object("box")
	require.True(t, ok)

	m.scheduler.Tick()
	box.Click()
	clock.Set(5)
	m.scheduler.Tick()
	assert.InDelta(t, 1.5, box.Node().Scale().X, 1e-3)
}

func TestClose(t *testing.T) {
	m, _ := newManager(t)
	require.NoError(t, m.Change("labels"))
	_, err := m.Update()
	require.NoError(t, err)
	s := m.Current()

	m.Close()
	assert.Nil(t, m.Current())
	assert.False(t, s.Mounted())
	assert.Zero(t, m.scheduler.Len())
}
