package composer

import (
	"go.uber.org/zap"

	"github.com/Faultbox/scene-gallery/internal/engine/colors"
	"github.com/Faultbox/scene-gallery/internal/engine/picking"
	"github.com/Faultbox/scene-gallery/internal/engine/renderer"
	"github.com/Faultbox/scene-gallery/internal/logger"
	"github.com/Faultbox/scene-gallery/internal/object"
	"github.com/Faultbox/scene-gallery/pkg/math"
)

// Bounds implements picking.Target.
func (it *item) Bounds() (math.Mat4, picking.AABB, float32) {
	return it.obj.Node().WorldMatrix(), picking.NewAABB(it.box[0], it.box[1]), it.mesh.Radius()
}

func (s *Scene) pickables() []*item {
	out := make([]*item, 0, len(s.items))
	for _, it := range s.items {
		if it.pickable && it.obj.Node().Alive() {
			out = append(out, it)
		}
	}
	return out
}

// pick returns the nearest object under the screen position, or nil.
func (s *Scene) pick(x, y float32, w, h int) *item {
	if w <= 0 || h <= 0 {
		return nil
	}
	vp := s.camera.ViewProjection(float32(w) / float32(h))
	ray := picking.ScreenToRay(x, y, float32(w), float32(h), vp.Inverse())

	candidates := s.pickables()
	i, _ := picking.Nearest(ray, candidates)
	if i < 0 {
		return nil
	}
	return candidates[i]
}

// PointerMove updates hover state for a pointer at (x, y) in a w×h surface.
// Enter and leave fire only when the object under the pointer changes.
func (s *Scene) PointerMove(x, y float32, w, h int) {
	if !s.mounted {
		return
	}
	s.setHovered(s.pick(x, y, w, h))
}

// PointerLeave clears the hover state, as when the pointer leaves the window.
func (s *Scene) PointerLeave() {
	s.setHovered(nil)
}

func (s *Scene) setHovered(it *item) {
	if it == s.hovered {
		return
	}
	if s.hovered != nil {
		s.hovered.obj.PointerOut()
	}
	s.hovered = it
	if it != nil {
		it.obj.PointerOver()
		logger.Debug("pointer over", zap.String("object", it.obj.Name()))
	}
}

// Click toggles the active state of the object under the pointer. It
// returns the clicked object, or nil when the click hit nothing.
func (s *Scene) Click(x, y float32, w, h int) *object.Object {
	if !s.mounted {
		return nil
	}
	it := s.pick(x, y, w, h)
	if it == nil {
		return nil
	}
	s.setHovered(it)
	it.obj.Click()
	logger.Debug("object clicked",
		zap.String("object", it.obj.Name()),
		zap.Bool("active", it.obj.Interaction().Active),
	)
	return it.obj
}

// Hovering reports whether the pointer is over an object.
func (s *Scene) Hovering() bool {
	return s.hovered != nil
}

// HoveredLabel returns the label of the hovered object, or "".
func (s *Scene) HoveredLabel() string {
	if s.hovered == nil {
		return ""
	}
	return s.hovered.obj.Label()
}

// Label is a caption pinned to an object's world position.
type Label struct {
	Text    string
	World   math.Vec3
	Hovered bool
}

// Labels returns the captions of objects that declare one, at their current
// world positions. Unlabelled objects only show their name in HoveredLabel.
func (s *Scene) Labels() []Label {
	var out []Label
	for _, it := range s.items {
		if it.label == "" || !it.obj.Node().Alive() {
			continue
		}
		out = append(out, Label{
			Text:    it.label,
			World:   it.obj.Node().WorldMatrix().Translation(),
			Hovered: it == s.hovered,
		})
	}
	return out
}

// Drawables returns the meshes to draw this frame with their current world
// transforms and colours. Groups and destroyed nodes are skipped.
func (s *Scene) Drawables() []renderer.Drawable {
	out := make([]renderer.Drawable, 0, len(s.items))
	for _, it := range s.items {
		if it.mesh == nil || !it.obj.Node().Alive() {
			continue
		}
		out = append(out, renderer.Drawable{
			Mesh:        it.mesh,
			Model:       it.obj.Node().WorldMatrix(),
			Color:       colors.Vec(it.obj.Color(), 1),
			Wireframe:   it.wireframe,
			DoubleSided: it.doubleSided,
			Unlit:       it.unlit,
		})
	}
	return out
}
