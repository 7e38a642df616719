package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ScreenshotCapture writes framebuffer snapshots as PNG files named
// prefix_scene_timestamp_seq.png.
type ScreenshotCapture struct {
	outputDir string
	prefix    string
	scene     string
	seq       int
	now       func() time.Time
}

// NewScreenshotCapture creates a capture writing into outputDir.
func NewScreenshotCapture(outputDir, prefix string) *ScreenshotCapture {
	return &ScreenshotCapture{outputDir: outputDir, prefix: prefix, now: time.Now}
}

// SetScene records the scene on show; it becomes part of later file names.
func (sc *ScreenshotCapture) SetScene(name string) {
	sc.scene = sanitize(name)
}

// CaptureFromPixels saves GL-ordered RGBA pixels (bottom row first) and
// returns the file written.
func (sc *ScreenshotCapture) CaptureFromPixels(pixels []byte, width, height int) (string, error) {
	img, err := FlipRows(pixels, width, height)
	if err != nil {
		return "", err
	}
	if sc.outputDir != "" {
		if err := os.MkdirAll(sc.outputDir, 0o755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	path := sc.GenerateFilename()
	if err := writePNG(path, img); err != nil {
		return "", err
	}
	sc.seq++
	return path, nil
}

// GenerateFilename returns the path the next capture will be written to.
func (sc *ScreenshotCapture) GenerateFilename() string {
	parts := []string{sc.prefix}
	if sc.scene != "" {
		parts = append(parts, sc.scene)
	}
	parts = append(parts, sc.now().Format("20060102-150405"), fmt.Sprintf("%03d", sc.seq))
	return filepath.Join(sc.outputDir, strings.Join(parts, "_")+".png")
}

// FlipRows converts bottom-up RGBA rows, as glReadPixels returns them, into
// a top-down image.
func FlipRows(pixels []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 || len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: %dx%d needs %d bytes, got %d",
			width, height, width*height*4, len(pixels))
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	row := width * 4
	for y := 0; y < height; y++ {
		src := pixels[(height-1-y)*row:]
		copy(img.Pix[y*img.Stride:y*img.Stride+row], src[:row])
	}
	return img, nil
}

// writePNG encodes into a temporary file and renames it into place, so a
// failed encode never leaves a truncated image behind.
func writePNG(path string, img image.Image) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".shot-*.png")
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := png.Encode(tmp, img); err != nil {
		tmp.Close()
		return fmt.Errorf("encoding PNG: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing file: %w", err)
	}
	return os.Rename(tmp.Name(), path)
}

func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			return r
		}
		return '-'
	}, name)
}
