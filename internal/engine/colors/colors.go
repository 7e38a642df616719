// Package colors parses the colour notations used in scene descriptions.
package colors

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// named holds the CSS colour keywords the scenes use.
var named = map[string]string{
	"black":     "#000000",
	"blue":      "#0000ff",
	"cyan":      "#00ffff",
	"gray":      "#808080",
	"green":     "#008000",
	"grey":      "#808080",
	"hotpink":   "#ff69b4",
	"lime":      "#00ff00",
	"magenta":   "#ff00ff",
	"orange":    "#ffa500",
	"purple":    "#800080",
	"red":       "#ff0000",
	"royalblue": "#4169e1",
	"white":     "#ffffff",
	"yellow":    "#ffff00",
}

// Parse accepts a CSS keyword, "#rrggbb", "#rgb" or "0xrrggbb".
func Parse(s string) (colorful.Color, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if hex, ok := named[key]; ok {
		key = hex
	}
	if strings.HasPrefix(key, "0x") {
		key = "#" + key[2:]
	}
	c, err := colorful.Hex(key)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return c, nil
}

// MustParse is Parse for compile-time constants; it panics on bad input.
func MustParse(s string) colorful.Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Vec returns the colour as float32 RGB for shader uniforms, scaled by intensity.
func Vec(c colorful.Color, intensity float32) [3]float32 {
	c = c.Clamped()
	return [3]float32{
		float32(c.R) * intensity,
		float32(c.G) * intensity,
		float32(c.B) * intensity,
	}
}
