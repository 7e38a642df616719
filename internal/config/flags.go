package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file (overrides $"+EnvConfigPath+")")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagScene      = flag.String("scene", "", "Scene to open at startup")
	flagSceneDir   = flag.String("scenes", "", "Directory with extra scene descriptions")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagMSAA       = flag.Int("msaa", -1, "Multisample count (0 disables)")
	flagNoControls = flag.Bool("no-controls", false, "Disable orbit camera controls")
	flagNoHelpers  = flag.Bool("no-helpers", false, "Hide axes and grid helpers")
	flagNoStats    = flag.Bool("no-stats", false, "Hide the frame rate readout")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config. Zero-valued flags
// leave the setting alone.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagScene != "" {
		cfg.Gallery.Scene = *flagScene
	}
	if *flagSceneDir != "" {
		cfg.Gallery.SceneDir = *flagSceneDir
	}
	if *flagNoHelpers {
		cfg.Gallery.ShowHelpers = false
	}
	if *flagNoStats {
		cfg.Gallery.ShowStats = false
	}
	if *flagNoControls {
		cfg.Controls.Enabled = false
	}

	switch {
	case *flagFullscreen:
		cfg.Graphics.Fullscreen = true
	case *flagWindowed:
		cfg.Graphics.Fullscreen = false
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagMSAA >= 0 {
		cfg.Graphics.MSAA = *flagMSAA
	}
}
