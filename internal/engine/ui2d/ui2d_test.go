package ui2d

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
)

func testAtlas(t *testing.T) *atlas {
	t.Helper()
	a := newAtlas(basicfont.Face7x13)
	require.NotNil(t, a)
	return a
}

func TestAtlasLayout(t *testing.T) {
	a := testAtlas(t)
	w, h := a.GlyphSize()
	assert.Equal(t, 7, w)
	assert.Equal(t, 13, h)
	assert.Equal(t, atlasCols*7, a.img.Rect.Dx())
	assert.Equal(t, 6*13, a.img.Rect.Dy())
}

func TestAtlasHasInk(t *testing.T) {
	a := testAtlas(t)
	u0, v0, _, _ := a.GetGlyphUV('T')
	x0 := int(u0 * float32(a.img.Rect.Dx()))
	y0 := int(v0 * float32(a.img.Rect.Dy()))

	ink := 0
	for y := y0; y < y0+a.glyphH; y++ {
		for x := x0; x < x0+a.glyphW; x++ {
			if a.img.AlphaAt(x, y).A > 0 {
				ink++
			}
		}
	}
	assert.Greater(t, ink, 0)
}

func TestGlyphUV(t *testing.T) {
	a := testAtlas(t)

	u0, v0, u1, v1 := a.GetGlyphUV(' ')
	assert.Zero(t, u0)
	assert.Zero(t, v0)
	assert.InDelta(t, 1.0/atlasCols, u1, 1e-6)
	assert.InDelta(t, 1.0/6, v1, 1e-6)

	// '0' is glyph 16: first cell of the second row.
	u0, v0, _, _ = a.GetGlyphUV('0')
	assert.Zero(t, u0)
	assert.InDelta(t, 1.0/6, v0, 1e-6)

	q0, q1, q2, q3 := a.GetGlyphUV('?')
	r0, r1, r2, r3 := a.GetGlyphUV('é')
	assert.Equal(t, [4]float32{q0, q1, q2, q3}, [4]float32{r0, r1, r2, r3})
}

func TestMeasureText(t *testing.T) {
	a := testAtlas(t)

	w, h := a.MeasureText("Torus", 1)
	assert.Equal(t, float32(35), w)
	assert.Equal(t, float32(13), h)

	w, h = a.MeasureText("ab\nlonger", 2)
	assert.Equal(t, float32(6*7*2), w)
	assert.Equal(t, float32(2*13*2), h)

	w, h = a.MeasureText("", 1)
	assert.Zero(t, w)
	assert.Zero(t, h)
}

func TestLabelBoxCentres(t *testing.T) {
	x, y, w, h := LabelBox(100, 50, 35, 13, 3)
	assert.Equal(t, float32(41), w)
	assert.Equal(t, float32(19), h)
	assert.Equal(t, float32(79), x)
	assert.Equal(t, float32(40), y)
}

func TestDrawLabelQueuesQuads(t *testing.T) {
	r := &Renderer{font: &Font{atlas: newAtlas(basicfont.Face7x13)}}
	r.Begin()
	r.DrawLabel(100, 50, "a b", 1, ColorText, ColorLabelBg)

	assert.Len(t, r.solidVertices, 6*7, "one backdrop quad")
	assert.Len(t, r.textVertices, 2*6*9, "spaces emit no quad")

	r.Begin()
	assert.Empty(t, r.solidVertices)
	assert.Empty(t, r.textVertices)
}

func TestOrthoMatrixMapsCorners(t *testing.T) {
	m := orthoMatrix(800, 600)
	top := m.MulVec4([4]float32{0, 0, 0, 1})
	assert.InDelta(t, -1, top[0], 1e-6)
	assert.InDelta(t, 1, top[1], 1e-6)

	bottom := m.MulVec4([4]float32{800, 600, 0, 1})
	assert.InDelta(t, 1, bottom[0], 1e-6)
	assert.InDelta(t, -1, bottom[1], 1e-6)
}

func TestFromColorful(t *testing.T) {
	red, err := colorful.Hex("#ff0000")
	require.NoError(t, err)
	assert.Equal(t, Color{1, 0, 0, 0.5}, FromColorful(red, 0.5))
	assert.Equal(t, float32(0.2), ColorText.WithAlpha(0.2).A)
}
