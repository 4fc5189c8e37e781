package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.PinchOpen <= cfg.PinchClose {
		t.Error("default thresholds must form a hysteresis band")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.PinchClose != Default().PinchClose {
		t.Errorf("pinch_close = %g, want default %g", cfg.PinchClose, Default().PinchClose)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
smoothing_alpha = 0.5
pinch_close = 0.05
pinch_open = 0.09
drag_hold_ms = 800
dead_zone = 0.1
listen_addr = ":9090"
quit_keys = ["esc"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.SmoothingAlpha != 0.5 {
		t.Errorf("smoothing_alpha = %g, want 0.5", cfg.SmoothingAlpha)
	}
	if cfg.DragHold() != 800*time.Millisecond {
		t.Errorf("drag hold = %v, want 800ms", cfg.DragHold())
	}
	if cfg.ListenAddr != ":9090" {
		t.Errorf("listen_addr = %q, want :9090", cfg.ListenAddr)
	}
	// Untouched keys keep their defaults.
	if cfg.LossFrames != Default().LossFrames {
		t.Errorf("loss_frames = %d, want default %d", cfg.LossFrames, Default().LossFrames)
	}
}

func TestValidateRejectsInvertedHysteresis(t *testing.T) {
	cfg := Default()
	cfg.PinchClose = 0.07
	cfg.PinchOpen = 0.04

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for inverted thresholds")
	}
	if !strings.Contains(err.Error(), "pinch_open") {
		t.Errorf("error %q should mention pinch_open", err)
	}
}

func TestValidateRejectsEqualThresholds(t *testing.T) {
	cfg := Default()
	cfg.PinchClose = 0.05
	cfg.PinchOpen = 0.05

	if cfg.Validate() == nil {
		t.Fatal("expected error for zero-width hysteresis band")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero alpha", func(c *Config) { c.SmoothingAlpha = 0 }},
		{"alpha above one", func(c *Config) { c.SmoothingAlpha = 1.5 }},
		{"negative close", func(c *Config) { c.PinchClose = -0.01 }},
		{"zero drag hold", func(c *Config) { c.DragHoldMs = 0 }},
		{"dead zone half", func(c *Config) { c.DeadZone = 0.5 }},
		{"zero loss frames", func(c *Config) { c.LossFrames = 0 }},
		{"active below idle fps", func(c *Config) { c.ActiveFPS = 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if cfg.Validate() == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadInvalidConfigFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
pinch_close = 0.07
pinch_open = 0.04
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected Load to fail for inverted thresholds")
	}
}
