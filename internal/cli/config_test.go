package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	ferrors "github.com/matzehuels/forcegraph/pkg/errors"
	"github.com/matzehuels/forcegraph/pkg/physics"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigPartialOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[physics]
damping = 0.9

[server]
addr = ":9999"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Physics.Damping != 0.9 {
		t.Errorf("Damping = %v, want 0.9", cfg.Physics.Damping)
	}
	// Untouched fields keep their defaults.
	if cfg.Physics.RepulsionStrength != physics.DefaultConfig().RepulsionStrength {
		t.Errorf("RepulsionStrength = %v, want default", cfg.Physics.RepulsionStrength)
	}
	if cfg.Server.Addr != ":9999" {
		t.Errorf("Addr = %q, want :9999", cfg.Server.Addr)
	}
	if cfg.Server.TickMS != 16 {
		t.Errorf("TickMS = %v, want default 16", cfg.Server.TickMS)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); !ferrors.Is(err, ferrors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v, want FILE_NOT_FOUND", err)
	}

	path := writeConfig(t, "not [valid toml")
	if _, err := LoadConfig(path); !ferrors.Is(err, ferrors.ErrCodeInvalidConfig) {
		t.Errorf("malformed file error = %v, want INVALID_CONFIG", err)
	}
}

func TestConfigConversion(t *testing.T) {
	path := writeConfig(t, `
[interaction]
tap_max_duration_ms = 250
zoom_sensitivity = 1.05
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	ic := cfg.interactionConfig()
	if ic.TapMaxDuration != 250*time.Millisecond {
		t.Errorf("TapMaxDuration = %v, want 250ms", ic.TapMaxDuration)
	}
	if ic.ZoomSensitivity != 1.05 {
		t.Errorf("ZoomSensitivity = %v, want 1.05", ic.ZoomSensitivity)
	}
	if err := ic.Validate(); err != nil {
		t.Errorf("converted config invalid: %v", err)
	}
	if err := cfg.physicsConfig().Validate(); err != nil {
		t.Errorf("converted physics config invalid: %v", err)
	}
}
