package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Phone      PhoneConfig      `yaml:"phone"`
	Camera     CameraConfig     `yaml:"camera"`
	Input      InputConfig      `yaml:"input"`
	Momentum   MomentumConfig   `yaml:"momentum"`
	Overlay    OverlayConfig    `yaml:"overlay"`
	Boot       BootConfig       `yaml:"boot"`
	Home       HomeConfig       `yaml:"home"`
	Audio      AudioConfig      `yaml:"audio"`
	Log        LogConfig        `yaml:"log"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
}

// WindowConfig holds host window settings.
type WindowConfig struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Title     string  `yaml:"title"`
	FPS       float64 `yaml:"fps"` // render/update tick rate
	Resizable bool    `yaml:"resizable"`
}

// PhoneConfig holds the rig dimensions (world units) and volume range.
type PhoneConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Depth         float64 `yaml:"depth"`
	BodyRadius    float64 `yaml:"body_radius"`
	ScreenRadius  float64 `yaml:"screen_radius"`
	ScreenDepth   float64 `yaml:"screen_depth"`
	InitialVolume int     `yaml:"initial_volume"`
	MaxVolume     int     `yaml:"max_volume"`
}

// CameraConfig holds the perspective camera settings.
type CameraConfig struct {
	FOV      float64 `yaml:"fov"` // vertical, degrees
	Distance float64 `yaml:"distance"`
	Near     float64 `yaml:"near"`
	Far      float64 `yaml:"far"`
}

// InputConfig holds pointer handling settings.
type InputConfig struct {
	DragSensitivity  float64  `yaml:"drag_sensitivity"`
	FeedbackDuration Duration `yaml:"feedback_duration"`
}

// MomentumConfig holds rotation decay settings.
type MomentumConfig struct {
	Damping    float64 `yaml:"damping"`
	ClampPitch bool    `yaml:"clamp_pitch"`
}

// OverlayConfig holds screen overlay projection settings.
type OverlayConfig struct {
	VisibilityThreshold float64  `yaml:"visibility_threshold"`
	BaselineZoom        float64  `yaml:"baseline_zoom"`
	IndicatorDuration   Duration `yaml:"indicator_duration"`
}

// BootConfig holds the power-on sequence timing.
type BootConfig struct {
	Duration Duration `yaml:"duration"`
	Interval Duration `yaml:"interval"`
	Title    string   `yaml:"title"`
}

// HomeConfig holds home screen settings.
type HomeConfig struct {
	Background string `yaml:"background"` // image path; empty shows the app grid
	Locale     string `yaml:"locale"`     // BCP 47 tag for the date line
}

// AudioConfig holds UI sound settings.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
}

// ScreenshotConfig holds screenshot output settings.
type ScreenshotConfig struct {
	Dir string `yaml:"dir"`
}

// DefaultConfig returns a configuration with the stock phone scene.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     1024,
			Height:    768,
			Title:     "Phone3D",
			FPS:       60,
			Resizable: true,
		},
		Phone: PhoneConfig{
			Width:         220,
			Height:        400,
			Depth:         15,
			BodyRadius:    40,
			ScreenRadius:  20,
			ScreenDepth:   20,
			InitialVolume: 5,
			MaxVolume:     10,
		},
		Camera: CameraConfig{
			FOV:      45,
			Distance: 650,
			Near:     0.1,
			Far:      1000,
		},
		Input: InputConfig{
			DragSensitivity:  0.0003,
			FeedbackDuration: Duration(100 * time.Millisecond),
		},
		Momentum: MomentumConfig{
			Damping:    0.95,
			ClampPitch: true,
		},
		Overlay: OverlayConfig{
			VisibilityThreshold: 0.2,
			BaselineZoom:        1.7,
			IndicatorDuration:   Duration(time.Second),
		},
		Boot: BootConfig{
			Duration: Duration(4 * time.Second),
			Interval: Duration(50 * time.Millisecond),
			Title:    "ETHENOS",
		},
		Home: HomeConfig{
			Locale: "en-US",
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.6,
		},
		Log: LogConfig{
			Level: "INFO",
		},
		Screenshot: ScreenshotConfig{
			Dir: "screenshots",
		},
	}
}

// Validate reports the first setting that would make the scene unusable.
func (c *Config) Validate() error {
	switch {
	case c.Phone.Width <= 0 || c.Phone.Height <= 0 || c.Phone.Depth <= 0:
		return errors.New("phone dimensions must be positive")
	case c.Phone.MaxVolume <= 0:
		return errors.New("phone.max_volume must be positive")
	case c.Phone.InitialVolume < 0 || c.Phone.InitialVolume > c.Phone.MaxVolume:
		return fmt.Errorf("phone.initial_volume %d outside [0,%d]", c.Phone.InitialVolume, c.Phone.MaxVolume)
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return fmt.Errorf("camera.fov %.1f outside (0,180)", c.Camera.FOV)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return errors.New("camera near/far planes are invalid")
	case c.Momentum.Damping <= 0 || c.Momentum.Damping >= 1:
		return fmt.Errorf("momentum.damping %.3f outside (0,1)", c.Momentum.Damping)
	case c.Boot.Duration <= 0 || c.Boot.Interval <= 0:
		return errors.New("boot duration and interval must be positive")
	case c.Window.FPS <= 0:
		return errors.New("window.fps must be positive")
	case c.Overlay.BaselineZoom <= 0:
		return errors.New("overlay.baseline_zoom must be positive")
	}
	return nil
}

// Load reads the config at path. A missing file is created with defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else {
		if err := Save(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to save config file: %w", err)
		}
	}

	ApplyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides selected fields from PHONE3D_* environment variables.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv("PHONE3D_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("PHONE3D_LOG_PATH"); v != "" {
		cfg.Log.Path = v
	}
	if v := os.Getenv("PHONE3D_HOME_BACKGROUND"); v != "" {
		cfg.Home.Background = v
	}
	if v := os.Getenv("PHONE3D_LOCALE"); v != "" {
		cfg.Home.Locale = v
	}
}

// Save writes the configuration to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# Phone3D Configuration
# ---------------------
# Dimensions are world units; durations use Go syntax ("4s", "50ms").

`)
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	return os.WriteFile(path, append(header, data...), 0o644)
}
