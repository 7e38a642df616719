// Package config handles gallery configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Config holds all gallery settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Gallery  GalleryConfig  `yaml:"gallery"`
	Controls ControlsConfig `yaml:"controls"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	MSAA       int  `yaml:"msaa"` // Samples per pixel; 0 disables multisampling
}

// GalleryConfig selects the scenes on show.
type GalleryConfig struct {
	Scene       string `yaml:"scene"`        // Scene mounted at startup
	SceneDir    string `yaml:"scene_dir"`    // Extra *.yaml scene descriptions
	ShowHelpers bool   `yaml:"show_helpers"` // Draw axes/grid helpers declared by scenes
	ShowStats   bool   `yaml:"show_stats"`   // Frame rate readout in the corner
}

// ControlsConfig tunes the orbit camera controls.
type ControlsConfig struct {
	Enabled     bool    `yaml:"enabled"`
	RotateSpeed float32 `yaml:"rotate_speed"` // Radians per dragged pixel
	ZoomSpeed   float32 `yaml:"zoom_speed"`   // Fraction of distance per wheel step
	PanSpeed    float32 `yaml:"pan_speed"`    // Fraction of distance per dragged pixel
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			MSAA:       4,
		},
		Gallery: GalleryConfig{
			Scene:       "basic-animation",
			ShowHelpers: true,
			ShowStats:   true,
		},
		Controls: ControlsConfig{
			Enabled:     true,
			RotateSpeed: 0.005,
			ZoomSpeed:   0.1,
			PanSpeed:    0.002,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate rejects settings the gallery cannot start with.
func (c *Config) Validate() error {
	if c.Gallery.Scene == "" {
		return errors.New("gallery: scene must be set")
	}
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("graphics: invalid window size %dx%d", c.Graphics.Width, c.Graphics.Height)
	}
	switch c.Graphics.MSAA {
	case 0, 2, 4, 8, 16:
	default:
		return fmt.Errorf("graphics: msaa must be 0, 2, 4, 8 or 16, got %d", c.Graphics.MSAA)
	}
	if c.Controls.RotateSpeed < 0 || c.Controls.PanSpeed < 0 {
		return errors.New("controls: speeds must not be negative")
	}
	if c.Controls.ZoomSpeed < 0 || c.Controls.ZoomSpeed >= 1 {
		return fmt.Errorf("controls: zoom_speed must be in [0, 1), got %v", c.Controls.ZoomSpeed)
	}
	return nil
}
