// Package lighting provides the scene light model and its shader upload layout.
package lighting

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/scene-gallery/pkg/math"
)

// Kind is a light type.
type Kind uint8

const (
	Ambient Kind = iota
	Directional
	Point
	Spot
)

var kindNames = map[string]Kind{
	"ambient":     Ambient,
	"directional": Directional,
	"point":       Point,
	"spot":        Spot,
}

// ParseKind resolves a light kind name.
func ParseKind(s string) (Kind, error) {
	k, ok := kindNames[s]
	if !ok {
		return 0, fmt.Errorf("unknown light kind %q", s)
	}
	return k, nil
}

func (k Kind) String() string {
	for name, v := range kindNames {
		if v == k {
			return name
		}
	}
	return "unknown"
}

// Light is one scene light.
type Light struct {
	Kind      Kind
	Color     colorful.Color
	Intensity float32
	Position  math.Vec3 // Unused by ambient lights
	Range     float32   // Point/spot falloff distance; zero means no falloff
}

// Direction returns the normalised direction towards a directional light,
// which shines from its position towards the origin.
func (l Light) Direction() math.Vec3 {
	if l.Position == (math.Vec3{}) {
		return math.V3(0, 1, 0)
	}
	return l.Position.Normalize()
}
