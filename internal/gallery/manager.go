package gallery

import (
	"errors"
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/scene-gallery/internal/composer"
	"github.com/Faultbox/scene-gallery/internal/engine/frame"
	"github.com/Faultbox/scene-gallery/internal/engine/input"
	"github.com/Faultbox/scene-gallery/internal/logger"
)

// ErrUnknownScene is returned when switching to a scene not in the catalogue.
var ErrUnknownScene = errors.New("unknown scene")

// Manager owns the mounted scene and switches between catalogue entries.
//
// Every switch is a full remount: the old scene's callbacks are removed and
// its nodes destroyed, the scheduler and its clock are reset, and the new
// scene is composed afresh from its description. Nothing carries over.
type Manager struct {
	catalog   *Catalog
	scheduler *frame.Scheduler

	current *composer.Scene
	index   int
	next    int

	// OnMount runs after each successful switch.
	OnMount func(*composer.Scene)
}

// NewManager creates a manager with no scene mounted.
func NewManager(catalog *Catalog, scheduler *frame.Scheduler) *Manager {
	return &Manager{
		catalog:   catalog,
		scheduler: scheduler,
		index:     -1,
		next:      -1,
	}
}

// Current returns the mounted scene, or nil.
func (m *Manager) Current() *composer.Scene {
	return m.current
}

// CurrentIndex returns the navigation index of the mounted scene, or -1.
func (m *Manager) CurrentIndex() int {
	return m.index
}

// Catalog returns the scene catalogue.
func (m *Manager) Catalog() *Catalog {
	return m.catalog
}

// Change schedules a switch to the named scene. It takes effect on the next
// Update.
func (m *Manager) Change(name string) error {
	i := m.catalog.Index(name)
	if i < 0 {
		return fmt.Errorf("%w %q (have %v)", ErrUnknownScene, name, m.catalog.Names())
	}
	m.next = i
	return nil
}

// Step schedules a switch delta scenes along, wrapping at either end.
func (m *Manager) Step(delta int) {
	n := m.catalog.Len()
	if n == 0 {
		return
	}
	from := m.index
	if m.next >= 0 {
		from = m.next
	}
	if from < 0 {
		from = 0
	}
	m.next = ((from+delta)%n + n) % n
}

// HandleEvent maps navigation keys to scene switches: 1-9 pick a scene,
// left and right arrows step through them. It reports whether the event
// was consumed.
func (m *Manager) HandleEvent(e input.Event) bool {
	if e.Type != input.EventKeyDown {
		return false
	}
	switch sc := e.Key; {
	case sc >= sdl.SCANCODE_1 && sc <= sdl.SCANCODE_9:
		i := int(sc - sdl.SCANCODE_1)
		if i >= m.catalog.Len() {
			return false
		}
		m.next = i
		return true
	case sc == sdl.SCANCODE_RIGHT:
		m.Step(1)
		return true
	case sc == sdl.SCANCODE_LEFT:
		m.Step(-1)
		return true
	}
	return false
}

// Update applies a pending switch and reports whether one happened. The new
// scene is composed before the old one is unmounted, so a scene that fails to
// compose leaves the current one running.
func (m *Manager) Update() (bool, error) {
	if m.next < 0 {
		return false, nil
	}
	i := m.next
	m.next = -1
	if i == m.index && m.current != nil {
		return false, nil
	}

	entry := m.catalog.At(i)
	scene, err := composer.Compose(entry.Description())
	if err != nil {
		return false, fmt.Errorf("switching to %s: %w", entry.Name, err)
	}

	if m.current != nil {
		m.current.Unmount()
	}
	m.scheduler.Reset()
	scene.Mount(m.scheduler)

	m.current = scene
	m.index = i
	logger.Info("scene switched",
		zap.String("scene", entry.Name),
		zap.Int("index", i),
		zap.String("source", entry.Source),
	)
	if m.OnMount != nil {
		m.OnMount(scene)
	}
	return true, nil
}

// Close unmounts the current scene.
func (m *Manager) Close() {
	if m.current != nil {
		m.current.Unmount()
		m.current = nil
	}
	m.index = -1
}
