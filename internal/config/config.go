// Package config handles configuration loading and validation for mudra.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/ayusman/mudra/internal/engine"
)

// Config holds every recognized option. Thresholds are deliberately
// external: lighting and camera distance shift the normalized distance at
// true finger contact, so the right values are found per environment.
type Config struct {
	// Camera
	CameraID        int     `toml:"camera_id"`
	IdleFPS         int     `toml:"idle_fps"`
	ActiveFPS       int     `toml:"active_fps"`
	MotionThreshold float64 `toml:"motion_threshold"`

	// Gesture interpretation
	SmoothingAlpha float64 `toml:"smoothing_alpha"`
	PinchClose     float64 `toml:"pinch_close"`
	PinchOpen      float64 `toml:"pinch_open"`
	DragHoldMs     int     `toml:"drag_hold_ms"`
	DeadZone       float64 `toml:"dead_zone"`
	LossFrames     int     `toml:"loss_frames"`

	// Display; zero means auto-detect from the OS.
	ScreenWidth  int `toml:"screen_width"`
	ScreenHeight int `toml:"screen_height"`

	// Host integration
	ListenAddr   string   `toml:"listen_addr"`
	DatabasePath string   `toml:"database_path"`
	QuitKeys     []string `toml:"quit_keys"`
	EnableClicks bool     `toml:"enable_clicks"`
}

// Default returns a Config with workable starting values. Pinch thresholds
// and the drag hold usually need tuning per environment.
func Default() *Config {
	return &Config{
		CameraID:        0,
		IdleFPS:         5,
		ActiveFPS:       15,
		MotionThreshold: 1.0,
		SmoothingAlpha:  0.2,
		PinchClose:      0.04,
		PinchOpen:       0.07,
		DragHoldMs:      500,
		DeadZone:        0.08,
		LossFrames:      3,
		ListenAddr:      ":8080",
		QuitKeys:        []string{"ctrl", "shift", "q"},
		EnableClicks:    true,
	}
}

// Load reads the TOML config at path, applying defaults for missing keys.
// A missing file returns the defaults. The result is validated; an invalid
// configuration is fatal at startup rather than silently degraded.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, cfg.Validate()
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultPath returns ~/.mudra/config.toml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".mudra", "config.toml")
}

// Validate checks the correctness invariants the engine depends on.
// The hysteresis band is the important one: pinch_open must exceed
// pinch_close, otherwise classification degrades to a flicker-prone
// single cutoff.
func (c *Config) Validate() error {
	if c.SmoothingAlpha <= 0 || c.SmoothingAlpha > 1 {
		return fmt.Errorf("config: smoothing_alpha %g outside (0, 1]", c.SmoothingAlpha)
	}
	if c.PinchClose <= 0 {
		return fmt.Errorf("config: pinch_close %g must be positive", c.PinchClose)
	}
	if c.PinchOpen <= c.PinchClose {
		return fmt.Errorf("config: pinch_open %g must exceed pinch_close %g",
			c.PinchOpen, c.PinchClose)
	}
	if c.DragHoldMs <= 0 {
		return fmt.Errorf("config: drag_hold_ms %d must be positive", c.DragHoldMs)
	}
	if c.DeadZone < 0 || c.DeadZone >= 0.5 {
		return fmt.Errorf("config: dead_zone %g outside [0, 0.5)", c.DeadZone)
	}
	if c.LossFrames < 1 {
		return fmt.Errorf("config: loss_frames %d must be at least 1", c.LossFrames)
	}
	if c.IdleFPS < 1 || c.ActiveFPS < c.IdleFPS {
		return fmt.Errorf("config: fps range %d..%d invalid", c.IdleFPS, c.ActiveFPS)
	}
	if c.ScreenWidth < 0 || c.ScreenHeight < 0 {
		return fmt.Errorf("config: screen resolution %dx%d invalid", c.ScreenWidth, c.ScreenHeight)
	}
	return nil
}

// DragHold returns the drag-hold duration.
func (c *Config) DragHold() time.Duration {
	return time.Duration(c.DragHoldMs) * time.Millisecond
}

// Tuning returns the engine tuning derived from this configuration.
func (c *Config) Tuning() engine.Tuning {
	return engine.Tuning{
		Alpha:      c.SmoothingAlpha,
		PinchClose: c.PinchClose,
		PinchOpen:  c.PinchOpen,
		DragHold:   c.DragHold(),
		DeadZone:   c.DeadZone,
	}
}

// DataDir returns ~/.mudra, creating it if needed.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	dir := filepath.Join(home, ".mudra")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create data directory: %w", err)
	}
	return dir, nil
}
