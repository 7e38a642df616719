package composer

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/scene-gallery/pkg/math"
)

// Vec3 is a YAML triple. A single scalar expands to all three components.
type Vec3 [3]float64

// UnmarshalYAML accepts either "1.5" or "[x, y, z]".
func (v *Vec3) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s float64
		if err := node.Decode(&s); err != nil {
			return fmt.Errorf("line %d: expected number or [x, y, z]: %w", node.Line, err)
		}
		*v = Vec3{s, s, s}
		return nil
	case yaml.SequenceNode:
		var xs []float64
		if err := node.Decode(&xs); err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		if len(xs) != 3 {
			return fmt.Errorf("line %d: expected 3 components, got %d", node.Line, len(xs))
		}
		*v = Vec3{xs[0], xs[1], xs[2]}
		return nil
	default:
		return fmt.Errorf("line %d: expected number or [x, y, z]", node.Line)
	}
}

// Vec converts to the renderer's vector type.
func (v Vec3) Vec() math.Vec3 {
	return math.V3(float32(v[0]), float32(v[1]), float32(v[2]))
}

// Description is a declarative scene.
type Description struct {
	Name       string       `yaml:"name"`
	Title      string       `yaml:"title"`
	Camera     CameraDesc   `yaml:"camera"`
	Controls   bool         `yaml:"controls"`
	Background string       `yaml:"background"`
	Lights     []LightDesc  `yaml:"lights"`
	Helpers    HelpersDesc  `yaml:"helpers"`
	Objects    []ObjectDesc `yaml:"objects"`
}

// CameraDesc places the scene camera.
type CameraDesc struct {
	Position *Vec3   `yaml:"position"`
	Target   Vec3    `yaml:"target"`
	FOV      float64 `yaml:"fov"`
}

// LightDesc declares one light.
type LightDesc struct {
	Kind      string   `yaml:"kind"`
	Color     string   `yaml:"color"`
	Intensity *float64 `yaml:"intensity"`
	Position  Vec3     `yaml:"position"`
	Range     float64  `yaml:"range"`
}

// HelpersDesc enables the axes and grid helpers.
type HelpersDesc struct {
	Axes float64  `yaml:"axes"` // Axis length; zero hides the axes
	Grid GridDesc `yaml:"grid"`
}

// GridDesc sizes the grid helper. A zero size hides it.
type GridDesc struct {
	Size      float64 `yaml:"size"`
	Divisions int     `yaml:"divisions"`
}

// ObjectDesc declares one object and its children.
type ObjectDesc struct {
	Name        string          `yaml:"name"`
	Label       string          `yaml:"label"`
	Geometry    GeometryDesc    `yaml:"geometry"`
	Material    MaterialDesc    `yaml:"material"`
	Position    Vec3            `yaml:"position"`
	Rotation    Vec3            `yaml:"rotation"`
	Scale       *Vec3           `yaml:"scale"`
	Motion      MotionDesc      `yaml:"motion"`
	Interaction InteractionDesc `yaml:"interaction"`
	Children    []ObjectDesc    `yaml:"children"`
}

// GeometryDesc names a mesh builder and its positional arguments. The kind
// "group" (or no kind) creates a transform-only node.
type GeometryDesc struct {
	Kind string    `yaml:"kind"`
	Args []float64 `yaml:"args"`
}

// MaterialDesc controls colour and draw style.
type MaterialDesc struct {
	Kind        string       `yaml:"kind"`
	Color       string       `yaml:"color"`
	HoverColor  string       `yaml:"hover_color"`
	Palette     *PaletteDesc `yaml:"palette"`
	Wireframe   bool         `yaml:"wireframe"`
	DoubleSided bool         `yaml:"double_sided"`
}

// PaletteDesc colours an object by its motion category.
type PaletteDesc struct {
	RotatingBouncing string `yaml:"rotating_bouncing"`
	Rotating         string `yaml:"rotating"`
	Bouncing         string `yaml:"bouncing"`
	Still            string `yaml:"still"`
}

// MotionDesc selects motions and their parameters.
type MotionDesc struct {
	Spin      bool     `yaml:"spin"`
	Orbit     bool     `yaml:"orbit"`
	Bounce    bool     `yaml:"bounce"`
	SpinRate  *Vec3    `yaml:"spin_rate"`
	Baseline  *float64 `yaml:"baseline"`
	Amplitude *float64 `yaml:"amplitude"`
}

// InteractionDesc configures pointer behaviour.
type InteractionDesc struct {
	Pickable    *bool          `yaml:"pickable"`
	ActiveScale float64        `yaml:"active_scale"`
	Transition  TransitionDesc `yaml:"transition"`
}

// TransitionDesc eases the click-driven scale change.
type TransitionDesc struct {
	Curve    string  `yaml:"curve"`
	Duration float64 `yaml:"duration"`
}

// Parse decodes a scene description. Unknown fields are rejected.
func Parse(data []byte) (*Description, error) {
	var d Description
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("parsing scene: %w", err)
	}
	return &d, nil
}
