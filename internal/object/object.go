// Package object implements animated scene objects: a node plus the motions,
// interaction state and appearance that drive it every frame.
package object

import (
	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"

	"github.com/Faultbox/scene-gallery/internal/engine/frame"
	"github.com/Faultbox/scene-gallery/internal/logger"
	"github.com/Faultbox/scene-gallery/internal/motion"
	"github.com/Faultbox/scene-gallery/internal/scenegraph"
	"github.com/Faultbox/scene-gallery/pkg/math"
)

// Flags select the motion patterns applied to an object.
type Flags struct {
	Spin   bool
	Orbit  bool
	Bounce bool
}

// Category returns the appearance category for the flags.
func (f Flags) Category() Category {
	return Category{Rotating: f.Spin || f.Orbit, Bouncing: f.Bounce}
}

// Interaction is the pointer state of an object.
type Interaction struct {
	Hovered bool
	Active  bool
}

// Config describes an object before it is mounted.
type Config struct {
	Name      string
	Label     string
	Transform scenegraph.Transform
	Flags     Flags

	SpinRate  math.Vec3
	Baseline  float64
	Amplitude float64

	Appearance Appearance

	// ActiveScale is the uniform scale multiplier while active. Zero
	// disables click scaling.
	ActiveScale float32
	Transition  motion.Curve
	Duration    float64
}

// Object is one animated entity in a scene.
type Object struct {
	name  string
	label string
	node  *scenegraph.Node

	flags       Flags
	motions     []motion.Spec
	interaction Interaction
	appearance  Appearance

	baseScale   math.Vec3
	activeScale float32
	tween       motion.ScaleTween

	scheduler *frame.Scheduler
	handle    frame.Handle
	last      float64
}

// New creates an object and its node. Motion geometry that depends on the
// initial pose (orbit radius and phase) is captured here. The transform is
// taken as given; start from scenegraph.IdentityTransform for unit scale.
func New(cfg Config) *Object {
	t := cfg.Transform

	o := &Object{
		name:        cfg.Name,
		label:       cfg.Label,
		node:        scenegraph.New(cfg.Name, t),
		flags:       cfg.Flags,
		appearance:  cfg.Appearance,
		baseScale:   t.Scale,
		activeScale: cfg.ActiveScale,
		tween: motion.ScaleTween{
			From: 1, To: 1,
			Duration: cfg.Duration,
			Curve:    cfg.Transition,
		},
	}
	if o.appearance.Len() == 0 {
		o.appearance = Solid(colorful.Color{R: 1, G: 1, B: 1})
	}

	if cfg.Flags.Spin {
		o.motions = append(o.motions, motion.NewSpin(t.Rotation, cfg.SpinRate))
	}
	if cfg.Flags.Orbit {
		o.motions = append(o.motions, motion.NewOrbit(t.Position))
	}
	if cfg.Flags.Bounce {
		o.motions = append(o.motions, motion.NewBounce(cfg.Baseline, cfg.Amplitude))
	}
	return o
}

// Name returns the object's name.
func (o *Object) Name() string { return o.name }

// Label returns the display label, falling back to the name.
func (o *Object) Label() string {
	if o.label != "" {
		return o.label
	}
	return o.name
}

// Node returns the object's scene node.
func (o *Object) Node() *scenegraph.Node { return o.node }

// Flags returns the motion flags.
func (o *Object) Flags() Flags { return o.flags }

// Motions returns the motion specs in application order.
func (o *Object) Motions() []motion.Spec { return o.motions }

// Interaction returns the current pointer state.
func (o *Object) Interaction() Interaction { return o.interaction }

// OnFrame applies every motion at elapsed seconds. It does nothing once the
// node has been destroyed.
func (o *Object) OnFrame(elapsed float64) {
	o.last = elapsed
	if !o.node.Alive() {
		return
	}
	for _, m := range o.motions {
		m.Apply(o.node, elapsed)
	}
	if o.activeScale > 0 {
		o.node.SetScale(o.baseScale.Scale(o.tween.At(elapsed)))
	}
}

// PointerOver marks the object hovered.
func (o *Object) PointerOver() {
	o.interaction.Hovered = true
}

// PointerOut clears the hover.
func (o *Object) PointerOut() {
	o.interaction.Hovered = false
}

// Click toggles the active state and retargets the scale transition.
func (o *Object) Click() {
	o.interaction.Active = !o.interaction.Active
	if o.activeScale <= 0 {
		return
	}
	to := float32(1)
	if o.interaction.Active {
		to = o.activeScale
	}
	o.tween = o.tween.Retarget(o.last, to)
}

// Color returns the colour for the current motion category and hover state.
func (o *Object) Color() colorful.Color {
	return o.appearance.Color(o.flags.Category(), o.interaction.Hovered)
}

// Mounted reports whether the object is registered with a scheduler.
func (o *Object) Mounted() bool {
	return o.scheduler != nil
}

// Mount registers OnFrame with s. Mounting twice is a no-op.
func (o *Object) Mount(s *frame.Scheduler) {
	if o.scheduler != nil {
		return
	}
	o.scheduler = s
	o.handle = s.Register(o.OnFrame)
	logger.Debug("object mounted",
		zap.String("name", o.name),
		zap.Uint64("handle", uint64(o.handle)),
		zap.Int("motions", len(o.motions)))
}

// Unmount deregisters the frame callback and destroys the node.
func (o *Object) Unmount() {
	if o.scheduler != nil {
		o.scheduler.Unregister(o.handle)
		o.scheduler = nil
		o.handle = 0
	}
	o.node.Destroy()
}
