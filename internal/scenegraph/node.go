// Package scenegraph holds the renderable node handles that animated objects own.
package scenegraph

import (
	"github.com/google/uuid"

	"github.com/Faultbox/scene-gallery/pkg/math"
)

// Transform is a node's local pose. Rotation is Euler XYZ in radians.
type Transform struct {
	Position math.Vec3
	Rotation math.Vec3
	Scale    math.Vec3
}

// IdentityTransform returns a transform with unit scale at the origin.
func IdentityTransform() Transform {
	return Transform{Scale: math.Splat(1)}
}

// Matrix returns the local T·R·S matrix.
func (t Transform) Matrix() math.Mat4 {
	return math.Compose(t.Position, t.Rotation, t.Scale)
}

// Node is a renderable entity with a mutable transform.
//
// After Destroy every setter is a silent no-op, so a frame callback that
// races with unmount can never fault on a stale handle.
type Node struct {
	ID   uuid.UUID
	Name string

	transform Transform
	parent    *Node
	children  []*Node
	alive     bool
}

// New creates a live node with the given local transform.
func New(name string, t Transform) *Node {
	return &Node{
		ID:        uuid.New(),
		Name:      name,
		transform: t,
		alive:     true,
	}
}

// Alive reports whether the node has not been destroyed.
func (n *Node) Alive() bool {
	return n != nil && n.alive
}

// Destroy marks the node and its subtree dead and detaches it from its parent.
func (n *Node) Destroy() {
	if !n.Alive() {
		return
	}
	if n.parent != nil {
		n.parent.removeChild(n)
		n.parent = nil
	}
	n.destroySubtree()
}

func (n *Node) destroySubtree() {
	n.alive = false
	for _, c := range n.children {
		c.parent = nil
		c.destroySubtree()
	}
	n.children = nil
}

// AddChild attaches child under n. Dead nodes ignore the call.
func (n *Node) AddChild(child *Node) {
	if !n.Alive() || !child.Alive() || child == n {
		return
	}
	if child.parent != nil {
		child.parent.removeChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

func (n *Node) removeChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the direct children.
func (n *Node) Children() []*Node {
	return n.children
}

// Transform returns a copy of the local transform.
func (n *Node) Transform() Transform {
	return n.transform
}

// Position returns the local position.
func (n *Node) Position() math.Vec3 {
	return n.transform.Position
}

// Rotation returns the local Euler rotation.
func (n *Node) Rotation() math.Vec3 {
	return n.transform.Rotation
}

// Scale returns the local scale.
func (n *Node) Scale() math.Vec3 {
	return n.transform.Scale
}

// SetPosition sets the local position.
func (n *Node) SetPosition(p math.Vec3) {
	if !n.Alive() {
		return
	}
	n.transform.Position = p
}

// SetRotation sets the local Euler rotation.
func (n *Node) SetRotation(r math.Vec3) {
	if !n.Alive() {
		return
	}
	n.transform.Rotation = r
}

// SetScale sets the local scale.
func (n *Node) SetScale(s math.Vec3) {
	if !n.Alive() {
		return
	}
	n.transform.Scale = s
}

// LocalMatrix returns the node's own transform matrix.
func (n *Node) LocalMatrix() math.Mat4 {
	return n.transform.Matrix()
}

// WorldMatrix composes the local matrix with every ancestor's.
func (n *Node) WorldMatrix() math.Mat4 {
	m := n.LocalMatrix()
	for p := n.parent; p != nil; p = p.parent {
		m = p.LocalMatrix().Mul(m)
	}
	return m
}

// Walk visits n and its descendants depth-first.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.Walk(fn)
	}
}
