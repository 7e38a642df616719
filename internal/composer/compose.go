// Package composer turns declarative scene descriptions into mounted,
// animated scenes.
//
// Composition happens once per mount: Compose validates the description and
// builds every node, mesh, motion and appearance. From then on the scene has
// no per-frame work of its own; the objects' frame callbacks drive it.
package composer

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"

	"github.com/Faultbox/scene-gallery/internal/engine/camera"
	"github.com/Faultbox/scene-gallery/internal/engine/colors"
	"github.com/Faultbox/scene-gallery/internal/engine/debug"
	"github.com/Faultbox/scene-gallery/internal/engine/frame"
	"github.com/Faultbox/scene-gallery/internal/engine/geometry"
	"github.com/Faultbox/scene-gallery/internal/engine/lighting"
	"github.com/Faultbox/scene-gallery/internal/logger"
	"github.com/Faultbox/scene-gallery/internal/motion"
	"github.com/Faultbox/scene-gallery/internal/object"
	"github.com/Faultbox/scene-gallery/internal/scenegraph"
	"github.com/Faultbox/scene-gallery/pkg/math"
)

// Composition errors.
var (
	ErrUnknownMaterial = errors.New("unknown material kind")
	ErrDuplicateName   = errors.New("duplicate object name")
)

// DefaultTransitionDuration applies when a transition names a curve but no duration.
const DefaultTransitionDuration = 0.6

var defaultCameraPosition = Vec3{0, 0, 5}

var defaultBackground = colorful.Color{R: 0.1, G: 0.1, B: 0.15}

// materials maps material kinds to whether they ignore lighting.
var materials = map[string]bool{
	"":         false,
	"standard": false,
	"lambert":  false,
	"phong":    false,
	"basic":    true,
	"line":     true,
}

// item is one composed object with its render state.
type item struct {
	obj         *object.Object
	mesh        *geometry.Mesh
	box         [2][3]float32
	wireframe   bool
	doubleSided bool
	unlit       bool
	pickable    bool
	label       string
}

// Scene is a composed scene ready to mount.
type Scene struct {
	Name  string
	Title string

	camera     *camera.OrbitCamera
	controls   bool
	background colorful.Color
	lights     []lighting.Light
	helpers    []debug.LineVertex

	items   []*item
	byName  map[string]*item
	hovered *item
	mounted bool
}

// Compose validates desc and builds the scene.
func Compose(desc *Description) (*Scene, error) {
	if desc == nil {
		return nil, errors.New("compose: nil description")
	}

	s := &Scene{
		Name:       desc.Name,
		Title:      desc.Title,
		controls:   desc.Controls,
		background: defaultBackground,
		byName:     make(map[string]*item),
	}
	if s.Title == "" {
		s.Title = s.Name
	}

	camPos := defaultCameraPosition
	if desc.Camera.Position != nil {
		camPos = *desc.Camera.Position
	}
	s.camera = camera.NewOrbitCamera(camPos.Vec(), desc.Camera.Target.Vec())
	if desc.Camera.FOV > 0 {
		s.camera.FOV = float32(desc.Camera.FOV)
	}

	if desc.Background != "" {
		c, err := colors.Parse(desc.Background)
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
		s.background = c
	}

	for i, ld := range desc.Lights {
		l, err := composeLight(ld)
		if err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
		s.lights = append(s.lights, l)
	}

	if desc.Helpers.Axes > 0 {
		s.helpers = append(s.helpers, debug.Axes(float32(desc.Helpers.Axes))...)
	}
	if desc.Helpers.Grid.Size > 0 {
		div := desc.Helpers.Grid.Divisions
		if div <= 0 {
			div = 10
		}
		s.helpers = append(s.helpers, debug.Grid(float32(desc.Helpers.Grid.Size), div)...)
	}

	for i := range desc.Objects {
		if err := s.composeObject(&desc.Objects[i], nil); err != nil {
			return nil, err
		}
	}

	logger.Debug("scene composed",
		zap.String("scene", s.Name),
		zap.Int("objects", len(s.items)),
		zap.Int("lights", len(s.lights)),
	)
	return s, nil
}

func composeLight(ld LightDesc) (lighting.Light, error) {
	kind, err := lighting.ParseKind(ld.Kind)
	if err != nil {
		return lighting.Light{}, err
	}
	l := lighting.Light{
		Kind:      kind,
		Color:     colorful.Color{R: 1, G: 1, B: 1},
		Intensity: 1,
		Position:  ld.Position.Vec(),
		Range:     float32(ld.Range),
	}
	if ld.Color != "" {
		if l.Color, err = colors.Parse(ld.Color); err != nil {
			return lighting.Light{}, err
		}
	}
	if ld.Intensity != nil {
		l.Intensity = float32(*ld.Intensity)
	}
	return l, nil
}

func (s *Scene) composeObject(od *ObjectDesc, parent *scenegraph.Node) error {
	name := od.Name
	if name == "" {
		kind := od.Geometry.Kind
		if kind == "" {
			kind = "group"
		}
		name = fmt.Sprintf("%s-%d", kind, len(s.items)+1)
	}
	if _, dup := s.byName[name]; dup {
		return fmt.Errorf("object %q: %w", name, ErrDuplicateName)
	}

	it, err := buildItem(od, name)
	if err != nil {
		return fmt.Errorf("object %q: %w", name, err)
	}
	if parent != nil {
		parent.AddChild(it.obj.Node())
	}
	s.items = append(s.items, it)
	s.byName[name] = it

	for i := range od.Children {
		if err := s.composeObject(&od.Children[i], it.obj.Node()); err != nil {
			return err
		}
	}
	return nil
}

func buildItem(od *ObjectDesc, name string) (*item, error) {
	it := &item{
		wireframe:   od.Material.Wireframe,
		doubleSided: od.Material.DoubleSided,
	}

	unlit, ok := materials[od.Material.Kind]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownMaterial, od.Material.Kind)
	}
	it.unlit = unlit

	if kind := od.Geometry.Kind; kind != "" && kind != "group" {
		mesh, err := geometry.Build(kind, od.Geometry.Args)
		if err != nil {
			return nil, err
		}
		it.mesh = mesh
		it.box = [2][3]float32{mesh.Bounds.Min, mesh.Bounds.Max}
		it.pickable = true
	}
	if od.Interaction.Pickable != nil {
		it.pickable = *od.Interaction.Pickable && it.mesh != nil
	}

	appearance, err := composeAppearance(od.Material)
	if err != nil {
		return nil, err
	}

	transform := scenegraph.IdentityTransform()
	transform.Position = od.Position.Vec()
	transform.Rotation = od.Rotation.Vec()
	if od.Scale != nil {
		transform.Scale = od.Scale.Vec()
	}

	cfg := object.Config{
		Name:       name,
		Label:      od.Label,
		Transform:  transform,
		Flags:      object.Flags{Spin: od.Motion.Spin, Orbit: od.Motion.Orbit, Bounce: od.Motion.Bounce},
		SpinRate:   math.V3(motion.DefaultSpinRate, motion.DefaultSpinRate, 0),
		Baseline:   od.Position[1],
		Amplitude:  1,
		Appearance: appearance,
	}
	if od.Motion.SpinRate != nil {
		cfg.SpinRate = od.Motion.SpinRate.Vec()
	}
	if od.Motion.Baseline != nil {
		cfg.Baseline = *od.Motion.Baseline
	}
	if od.Motion.Amplitude != nil {
		cfg.Amplitude = *od.Motion.Amplitude
	}

	if od.Interaction.ActiveScale < 0 {
		return nil, fmt.Errorf("active_scale must not be negative, got %g", od.Interaction.ActiveScale)
	}
	cfg.ActiveScale = float32(od.Interaction.ActiveScale)
	tr := od.Interaction.Transition
	curve, err := motion.CurveByName(tr.Curve)
	if err != nil {
		return nil, err
	}
	cfg.Transition = curve
	cfg.Duration = tr.Duration
	if curve != nil && cfg.Duration <= 0 {
		cfg.Duration = DefaultTransitionDuration
	}

	it.label = od.Label
	it.obj = object.New(cfg)
	return it, nil
}

func composeAppearance(md MaterialDesc) (object.Appearance, error) {
	base := colorful.Color{R: 1, G: 1, B: 1}
	if md.Color != "" {
		c, err := colors.Parse(md.Color)
		if err != nil {
			return object.Appearance{}, fmt.Errorf("color: %w", err)
		}
		base = c
	}

	var hover *colorful.Color
	if md.HoverColor != "" {
		c, err := colors.Parse(md.HoverColor)
		if err != nil {
			return object.Appearance{}, fmt.Errorf("hover_color: %w", err)
		}
		hover = &c
	}

	palette := object.Palette{RotatingBouncing: base, Rotating: base, Bouncing: base, Still: base}
	if p := md.Palette; p != nil {
		for _, slot := range []struct {
			name string
			src  string
			dst  *colorful.Color
		}{
			{"rotating_bouncing", p.RotatingBouncing, &palette.RotatingBouncing},
			{"rotating", p.Rotating, &palette.Rotating},
			{"bouncing", p.Bouncing, &palette.Bouncing},
			{"still", p.Still, &palette.Still},
		} {
			if slot.src == "" {
				continue
			}
			c, err := colors.Parse(slot.src)
			if err != nil {
				return object.Appearance{}, fmt.Errorf("palette %s: %w", slot.name, err)
			}
			*slot.dst = c
		}
	}
	return object.NewAppearance(palette, hover), nil
}

// Mount registers every object with the scheduler.
func (s *Scene) Mount(sched *frame.Scheduler) {
	if s.mounted {
		return
	}
	for _, it := range s.items {
		it.obj.Mount(sched)
	}
	s.mounted = true
	logger.Info("scene mounted", zap.String("scene", s.Name), zap.Int("callbacks", sched.Len()))
}

// Unmount deregisters every object and destroys the nodes. A scene cannot
// be mounted again; compose it afresh instead.
func (s *Scene) Unmount() {
	for _, it := range s.items {
		it.obj.Unmount()
	}
	s.hovered = nil
	s.mounted = false
	logger.Info("scene unmounted", zap.String("scene", s.Name))
}

// Mounted reports whether the scene is registered with a scheduler.
func (s *Scene) Mounted() bool {
	return s.mounted
}

// Camera returns the scene camera. Controls mutate it in place.
func (s *Scene) Camera() *camera.OrbitCamera {
	return s.camera
}

// ControlsEnabled reports whether the scene asks for orbit controls.
func (s *Scene) ControlsEnabled() bool {
	return s.controls
}

// Background returns the clear colour.
func (s *Scene) Background() colorful.Color {
	return s.background
}

// Lights returns the scene lights.
func (s *Scene) Lights() []lighting.Light {
	return s.lights
}

// Helpers returns the helper line vertices declared by the scene.
func (s *Scene) Helpers() []debug.LineVertex {
	return s.helpers
}

// Objects returns every object, parents before their children.
func (s *Scene) Objects() []*object.Object {
	out := make([]*object.Object, len(s.items))
	for i, it := range s.items {
		out[i] = it.obj
	}
	return out
}

// Object looks an object up by name.
func (s *Scene) Object(name string) (*object.Object, bool) {
	it, ok := s.byName[name]
	if !ok {
		return nil, false
	}
	return it.obj, true
}
