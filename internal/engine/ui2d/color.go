package ui2d

import "github.com/lucasb-eyer/go-colorful"

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// Overlay theme.
var (
	ColorText    = Color{0.95, 0.95, 0.95, 1}
	ColorTextDim = Color{0.6, 0.6, 0.7, 1}
	ColorLabelBg = Color{0.05, 0.05, 0.08, 0.7}
	ColorPanelBg = Color{0.08, 0.08, 0.12, 0.6}
)

// FromColorful converts a scene colour to an overlay colour.
func FromColorful(c colorful.Color, alpha float32) Color {
	c = c.Clamped()
	return Color{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: alpha}
}

// WithAlpha returns c with a different alpha.
func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}
