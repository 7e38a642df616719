// Package app implements the gallery main loop.
package app

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/scene-gallery/internal/composer"
	"github.com/Faultbox/scene-gallery/internal/config"
	"github.com/Faultbox/scene-gallery/internal/engine/colors"
	"github.com/Faultbox/scene-gallery/internal/engine/controls"
	"github.com/Faultbox/scene-gallery/internal/engine/debug"
	"github.com/Faultbox/scene-gallery/internal/engine/frame"
	"github.com/Faultbox/scene-gallery/internal/engine/input"
	"github.com/Faultbox/scene-gallery/internal/engine/lighting"
	"github.com/Faultbox/scene-gallery/internal/engine/picking"
	"github.com/Faultbox/scene-gallery/internal/engine/renderer"
	"github.com/Faultbox/scene-gallery/internal/engine/ui2d"
	"github.com/Faultbox/scene-gallery/internal/engine/window"
	"github.com/Faultbox/scene-gallery/internal/gallery"
	"github.com/Faultbox/scene-gallery/internal/logger"
)

const windowTitle = "Scene Gallery"

// clickSlop is how far in pixels the pointer may travel between press and
// release for the release to count as a click.
const clickSlop = 4

// App is the running gallery.
type App struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	overlay  *ui2d.Renderer
	input    *input.Input

	scheduler *frame.Scheduler
	gallery   *gallery.Manager
	controls  *controls.OrbitControls
	lights    *lighting.Buffer
	shots     *debug.ScreenshotCapture

	pressX, pressY int
	pressed        bool
	fps            int
	title          titleCache
}

// New opens the window, creates the renderer and mounts the start scene.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing gallery",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Bool("fullscreen", cfg.Graphics.Fullscreen),
	)

	catalog, err := gallery.LoadCatalog(cfg.Gallery.SceneDir)
	if err != nil {
		return nil, fmt.Errorf("loading scenes: %w", err)
	}

	a := &App{
		config: cfg,
		lights: lighting.NewBuffer(),
		shots:  debug.NewScreenshotCapture("screenshots", "gallery"),
	}

	// Create window (this also creates OpenGL context)
	a.window, err = window.New(window.Config{
		Title:      windowTitle,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		Samples:    cfg.Graphics.MSAA,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	fbw, fbh := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{Width: fbw, Height: fbh})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.overlay, err = ui2d.New(fbw, fbh)
	if err != nil {
		a.renderer.Close()
		a.window.Close()
		return nil, fmt.Errorf("failed to create overlay: %w", err)
	}

	a.input = input.New()
	a.scheduler = frame.NewScheduler(frame.NewSDLClock())
	a.gallery = gallery.NewManager(catalog, a.scheduler)
	a.gallery.OnMount = a.sceneMounted

	if err := a.gallery.Change(cfg.Gallery.Scene); err != nil {
		logger.Warn("start scene not found, opening the first one", zap.Error(err))
		a.gallery.Step(0)
	}
	if _, err := a.gallery.Update(); err != nil {
		a.Close()
		return nil, err
	}

	logger.Info("gallery initialized", zap.Strings("scenes", catalog.Names()))
	return a, nil
}

// sceneMounted rebinds per-scene state after a switch.
func (a *App) sceneMounted(s *composer.Scene) {
	a.renderer.ReleaseMeshes()
	a.lights.SetLights(s.Lights())
	if a.lights.Dropped > 0 {
		logger.Warn("scene has more lights than the renderer supports",
			zap.String("scene", s.Name),
			zap.Int("dropped", a.lights.Dropped),
		)
	}
	a.shots.SetScene(s.Name)
	a.pressed = false

	cam := s.Camera()
	cam.DragSensitivity = a.config.Controls.RotateSpeed
	cam.ZoomSensitivity = a.config.Controls.ZoomSpeed
	cam.PanSensitivity = a.config.Controls.PanSpeed

	a.controls = nil
	if !s.ControlsEnabled() {
		return
	}
	c, err := controls.New(cam, a.window)
	if err != nil {
		logger.Error("orbit controls unavailable", zap.String("scene", s.Name), zap.Error(err))
		return
	}
	c.Enabled = a.config.Controls.Enabled
	a.controls = c
}

// Run starts the main loop.
func (a *App) Run() error {
	a.running = true

	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting main loop")

	for a.running {
		// 1. Process input
		if a.input.Update() {
			a.running = false
			break
		}
		for _, event := range a.input.Events() {
			a.handleEvent(event)
		}

		// 2. Apply a pending scene switch, then advance every animation
		if _, err := a.gallery.Update(); err != nil {
			logger.Error("scene switch failed", zap.Error(err))
		}
		a.scheduler.Tick()

		// 3. Render the scene, then labels and stats on top
		a.render()
		a.drawOverlay()
		a.window.SwapBuffers()
		a.updateTitle()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.fps = frameCount
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (a *App) handleEvent(e input.Event) {
	scene := a.gallery.Current()
	w, h := a.window.Size()

	switch e.Type {
	case input.EventWindowResize:
		fbw, fbh := a.window.DrawableSize()
		a.renderer.Resize(fbw, fbh)
		a.overlay.Resize(fbw, fbh)
		return
	case input.EventWindowLeave:
		scene.PointerLeave()
		a.window.SetPointing(false)
	case input.EventKeyDown:
		switch e.Key {
		case sdl.SCANCODE_ESCAPE:
			a.running = false
			return
		case sdl.SCANCODE_F12:
			a.screenshot()
			return
		}
		if a.gallery.HandleEvent(e) {
			return
		}
	case input.EventMouseMove:
		if a.controls == nil || !a.controls.Dragging() {
			scene.PointerMove(float32(e.MouseX), float32(e.MouseY), w, h)
			a.window.SetPointing(scene.Hovering())
		}
	case input.EventMouseDown:
		if e.Button == input.ButtonLeft {
			a.pressed = true
			a.pressX, a.pressY = e.MouseX, e.MouseY
		}
	case input.EventMouseUp:
		if e.Button == input.ButtonLeft && a.pressed {
			a.pressed = false
			if abs(e.MouseX-a.pressX) <= clickSlop && abs(e.MouseY-a.pressY) <= clickSlop {
				scene.Click(float32(e.MouseX), float32(e.MouseY), w, h)
			}
		}
	}

	if a.controls != nil {
		a.controls.Handle(e)
	}
}

func (a *App) render() {
	scene := a.gallery.Current()
	f := renderer.Frame{
		ViewProj:   scene.Camera().ViewProjection(a.renderer.Aspect()),
		Lights:     a.lights,
		Background: colors.Vec(scene.Background(), 1),
	}
	if a.config.Gallery.ShowHelpers {
		f.Helpers = scene.Helpers()
	}
	a.renderer.Render(f, scene.Drawables())
}

// drawOverlay projects each labelled object to the screen after this frame's
// tick and draws the frame rate readout.
func (a *App) drawOverlay() {
	scene := a.gallery.Current()
	fbw, fbh := a.window.DrawableSize()
	w, _ := a.window.Size()
	scale := float32(1)
	if w > 0 && fbw > w {
		scale = float32(fbw / w) // whole multiples keep the bitmap font sharp
	}

	a.overlay.Begin()
	viewProj := scene.Camera().ViewProjection(a.renderer.Aspect())
	for _, l := range scene.Labels() {
		x, y, ok := picking.WorldToScreen(l.World, float32(fbw), float32(fbh), viewProj)
		if !ok {
			continue
		}
		bg := ui2d.ColorLabelBg
		if l.Hovered {
			bg = ui2d.ColorPanelBg.WithAlpha(0.9)
		}
		a.overlay.DrawLabel(x, y, l.Text, scale, ui2d.ColorText, bg)
	}

	if a.config.Gallery.ShowStats {
		stats := fmt.Sprintf("%d fps", a.fps)
		sw, sh := a.overlay.MeasureText(stats, scale)
		pad := 4 * scale
		a.overlay.DrawRect(0, 0, sw+2*pad, sh+2*pad, ui2d.ColorPanelBg)
		a.overlay.DrawText(pad, pad, stats, scale, ui2d.ColorText)
	}
	a.overlay.End()
}

// updateTitle refreshes the window title when the scene or the hovered
// object changes.
func (a *App) updateTitle() {
	scene := a.gallery.Current()
	title := sceneTitle(a.gallery.CurrentIndex(), a.gallery.Catalog().Len(), scene.Title, scene.HoveredLabel())
	if a.title.update(title) {
		a.window.SetTitle(title)
	}
}

func (a *App) screenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close unmounts the scene and releases the renderer and window.
func (a *App) Close() {
	logger.Info("closing gallery")

	if a.gallery != nil {
		a.gallery.Close()
	}
	if a.overlay != nil {
		a.overlay.Close()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
