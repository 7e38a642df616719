package lighting

import (
	"github.com/Faultbox/scene-gallery/internal/engine/colors"
)

// Shader array sizes.
const (
	MaxDirectionalLights = 4
	MaxPointLights       = 8
)

// Buffer packs lights into the flat arrays the mesh shader consumes.
// Ambient lights sum into one colour; spot lights are lit as point lights.
type Buffer struct {
	Ambient [3]float32

	DirCount      int
	DirDirections []float32
	DirColors     []float32

	PointCount     int
	PointPositions []float32
	PointColors    []float32
	PointRanges    []float32

	Dropped int // Lights beyond the shader limits
}

// NewBuffer creates an empty light buffer.
func NewBuffer() *Buffer {
	return &Buffer{
		DirDirections:  make([]float32, MaxDirectionalLights*3),
		DirColors:      make([]float32, MaxDirectionalLights*3),
		PointPositions: make([]float32, MaxPointLights*3),
		PointColors:    make([]float32, MaxPointLights*3),
		PointRanges:    make([]float32, MaxPointLights),
	}
}

// Clear removes all lights from the buffer.
func (b *Buffer) Clear() {
	b.Ambient = [3]float32{}
	b.DirCount = 0
	b.PointCount = 0
	b.Dropped = 0
	clear(b.DirDirections)
	clear(b.DirColors)
	clear(b.PointPositions)
	clear(b.PointColors)
	clear(b.PointRanges)
}

// Add packs one light. It returns false when the light's slot array is full.
func (b *Buffer) Add(l Light) bool {
	c := colors.Vec(l.Color, l.Intensity)
	switch l.Kind {
	case Ambient:
		for i := range b.Ambient {
			b.Ambient[i] += c[i]
		}
		return true

	case Directional:
		if b.DirCount >= MaxDirectionalLights {
			b.Dropped++
			return false
		}
		d := l.Direction()
		copy(b.DirDirections[b.DirCount*3:], []float32{d.X, d.Y, d.Z})
		copy(b.DirColors[b.DirCount*3:], c[:])
		b.DirCount++
		return true

	default:
		if b.PointCount >= MaxPointLights {
			b.Dropped++
			return false
		}
		copy(b.PointPositions[b.PointCount*3:], []float32{l.Position.X, l.Position.Y, l.Position.Z})
		copy(b.PointColors[b.PointCount*3:], c[:])
		b.PointRanges[b.PointCount] = l.Range
		b.PointCount++
		return true
	}
}

// SetLights replaces every light in the buffer.
func (b *Buffer) SetLights(lights []Light) {
	b.Clear()
	for _, l := range lights {
		b.Add(l)
	}
}
