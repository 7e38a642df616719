package ui2d

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Printable ASCII is baked into the atlas; anything else draws as '?'.
const (
	firstGlyph = ' '
	lastGlyph  = '~'
	atlasCols  = 16
)

// atlas is a fixed-width glyph sheet rasterised from a font face.
type atlas struct {
	img    *image.Alpha
	glyphW int
	glyphH int
}

func newAtlas(face font.Face) *atlas {
	m := face.Metrics()
	gw := font.MeasureString(face, "M").Ceil()
	gh := m.Height.Ceil()
	count := int(lastGlyph-firstGlyph) + 1
	rows := (count + atlasCols - 1) / atlasCols

	img := image.NewAlpha(image.Rect(0, 0, atlasCols*gw, rows*gh))
	d := font.Drawer{Dst: img, Src: image.Opaque, Face: face}
	for i := 0; i < count; i++ {
		col, row := i%atlasCols, i/atlasCols
		d.Dot = fixed.P(col*gw, row*gh+m.Ascent.Ceil())
		d.DrawString(string(rune(firstGlyph + i)))
	}
	return &atlas{img: img, glyphW: gw, glyphH: gh}
}

// GlyphSize returns the cell size in pixels.
func (a *atlas) GlyphSize() (int, int) {
	return a.glyphW, a.glyphH
}

// GetGlyphUV returns the texture rectangle of a character.
func (a *atlas) GetGlyphUV(ch rune) (u0, v0, u1, v1 float32) {
	if ch < firstGlyph || ch > lastGlyph {
		ch = '?'
	}
	i := int(ch - firstGlyph)
	col, row := i%atlasCols, i/atlasCols
	w := float32(a.img.Rect.Dx())
	h := float32(a.img.Rect.Dy())
	u0 = float32(col*a.glyphW) / w
	v0 = float32(row*a.glyphH) / h
	u1 = float32((col+1)*a.glyphW) / w
	v1 = float32((row+1)*a.glyphH) / h
	return u0, v0, u1, v1
}

// MeasureText returns the pixel size of text drawn at scale.
func (a *atlas) MeasureText(text string, scale float32) (float32, float32) {
	if text == "" {
		return 0, 0
	}
	lines, longest, n := 1, 0, 0
	for _, ch := range text {
		if ch == '\n' {
			lines++
			n = 0
			continue
		}
		n++
		if n > longest {
			longest = n
		}
	}
	return float32(longest*a.glyphW) * scale, float32(lines*a.glyphH) * scale
}

// Font is a glyph atlas uploaded as a single-channel texture.
type Font struct {
	*atlas
	texture uint32
}

// NewFont bakes the 7x13 fixed font and uploads it. Requires a GL context.
func NewFont() *Font {
	f := &Font{atlas: newAtlas(basicfont.Face7x13)}
	b := f.img.Rect

	gl.GenTextures(1, &f.texture)
	gl.BindTexture(gl.TEXTURE_2D, f.texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(f.img.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	return f
}

// TextureID returns the GL texture holding the atlas.
func (f *Font) TextureID() uint32 {
	return f.texture
}

// Close releases the texture.
func (f *Font) Close() {
	if f.texture != 0 {
		gl.DeleteTextures(1, &f.texture)
		f.texture = 0
	}
}
