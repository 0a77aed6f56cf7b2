// Package config provides configuration loading and access for the program.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all program configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Camera    CameraConfig    `yaml:"camera"`
	Snow      SnowConfig      `yaml:"snow"`
	Material  MaterialConfig  `yaml:"material"`
	Pixelate  PixelateConfig  `yaml:"pixelate"`
	Nav       NavConfig       `yaml:"nav"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// CameraConfig holds the fixed perspective camera.
type CameraConfig struct {
	FovY     float64 `yaml:"fov_y"`    // Vertical field of view in degrees
	Distance float64 `yaml:"distance"` // Camera z position, looking at the origin
	Near     float64 `yaml:"near"`
	Far      float64 `yaml:"far"`
}

// SnowConfig holds particle pool and emission parameters.
// All values are fixed once the simulation starts.
type SnowConfig struct {
	Capacity  int        `yaml:"capacity"`
	Origin    [3]float64 `yaml:"origin"`     // Emission point
	Rest      [3]float64 `yaml:"rest"`       // Where inactive slots are parked
	FloorY    float64    `yaml:"floor_y"`    // Despawn below this y
	Angle     float64    `yaml:"angle"`      // Base emission angle in radians
	SpeedMin  float64    `yaml:"speed_min"`  // Speed is drawn once in [min, max)
	SpeedMax  float64    `yaml:"speed_max"`
	SpreadX   float64    `yaml:"spread_x"`   // Full width of x position jitter
	SpreadZ   float64    `yaml:"spread_z"`   // Full width of z position jitter
	JitterVX  float64    `yaml:"jitter_vx"`  // Full width of vx jitter
	JitterVY  float64    `yaml:"jitter_vy"`  // Full width of vy jitter
	JitterVZ  float64    `yaml:"jitter_vz"`  // Full width of vz jitter
	EmitEvery int        `yaml:"emit_every"` // Frames between emitter calls
}

// MaterialConfig holds the point material.
type MaterialConfig struct {
	Size       float64  `yaml:"size"`       // Point size in world units
	Color      [3]uint8 `yaml:"color"`      // Material tint
	Sprite     [4]uint8 `yaml:"sprite"`     // The single sprite texel (RGBA)
	AlphaTest  float64  `yaml:"alpha_test"` // Fragments below this alpha are discarded
	Background [3]uint8 `yaml:"background"`
}

// PixelateConfig holds the post-process parameters.
type PixelateConfig struct {
	BlockSize int `yaml:"block_size"`
}

// NavConfig holds navigation parameters.
type NavConfig struct {
	Pages          []string `yaml:"pages"`            // Links shown in the nav bar, in order
	Home           string   `yaml:"home"`             // Page served from the cached home content
	BaseURL        string   `yaml:"base_url"`         // Fetch pages over HTTP when set, else embedded pages
	DebounceMS     int      `yaml:"debounce_ms"`      // Delay between fade-out and content swap
	FadeRate       float64  `yaml:"fade_rate"`        // Opacity units per second
	FetchTimeoutMS int      `yaml:"fetch_timeout_ms"` // Per-request timeout for HTTP pages
	NotFound       string   `yaml:"not_found"`        // Fragment shown when a fetch fails
	ActiveLabel    string   `yaml:"active_label"`     // Label of the active link
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	PerfWindow  int `yaml:"perf_window"`  // Frames averaged by the perf collector
	FrameWindow int `yaml:"frame_window"` // Frame-time samples kept for stats
	LogEvery    int `yaml:"log_every"`    // Frames between perf log lines (0 = off)
	DumpEvery   int `yaml:"dump_every"`   // Headless: frames between PNG dumps (0 = off)
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32    int32         // Screen.Width as int32 (window, render targets, layout)
	ScreenH32    int32         // Screen.Height as int32
	ViewportW    float64       // Screen.Width as float64 (camera viewport)
	ViewportH    float64       // Screen.Height as float64
	Debounce     time.Duration // Nav.DebounceMS
	FetchTimeout time.Duration // Nav.FetchTimeoutMS
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects values the simulation cannot run with.
func (c *Config) validate() error {
	switch {
	case c.Snow.Capacity <= 0:
		return fmt.Errorf("snow.capacity must be positive, got %d", c.Snow.Capacity)
	case c.Snow.EmitEvery <= 0:
		return fmt.Errorf("snow.emit_every must be positive, got %d", c.Snow.EmitEvery)
	case c.Snow.SpeedMax < c.Snow.SpeedMin:
		return fmt.Errorf("snow.speed_max (%v) below speed_min (%v)", c.Snow.SpeedMax, c.Snow.SpeedMin)
	case c.Pixelate.BlockSize <= 0:
		return fmt.Errorf("pixelate.block_size must be positive, got %d", c.Pixelate.BlockSize)
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = int32(c.Screen.Width)
	c.Derived.ScreenH32 = int32(c.Screen.Height)
	c.Derived.ViewportW = float64(c.Screen.Width)
	c.Derived.ViewportH = float64(c.Screen.Height)
	c.Derived.Debounce = time.Duration(c.Nav.DebounceMS) * time.Millisecond
	c.Derived.FetchTimeout = time.Duration(c.Nav.FetchTimeoutMS) * time.Millisecond

	if c.Nav.Home == "" && len(c.Nav.Pages) > 0 {
		c.Nav.Home = c.Nav.Pages[0]
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
