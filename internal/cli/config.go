package cli

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"

	ferrors "github.com/matzehuels/forcegraph/pkg/errors"
	"github.com/matzehuels/forcegraph/pkg/interaction"
	"github.com/matzehuels/forcegraph/pkg/physics"
)

// Config is the user-facing TOML configuration. Every field has a working
// default, so a missing file or a partial file is fine.
type Config struct {
	Physics     PhysicsConfig     `toml:"physics"`
	Interaction InteractionConfig `toml:"interaction"`
	Server      ServerConfig      `toml:"server"`
}

// PhysicsConfig tunes the force model.
type PhysicsConfig struct {
	Damping            float64 `toml:"damping"`
	RepulsionStrength  float64 `toml:"repulsion_strength"`
	AttractionStrength float64 `toml:"attraction_strength"`
	GroupingStrength   float64 `toml:"grouping_strength"`
}

// InteractionConfig tunes gesture recognition.
type InteractionConfig struct {
	TapMaxDurationMS int     `toml:"tap_max_duration_ms"`
	DoubleWindowMS   int     `toml:"double_window_ms"`
	TapSlop          float64 `toml:"tap_slop"`
	ZoomSensitivity  float64 `toml:"zoom_sensitivity"`
	FilterDepth      int     `toml:"filter_depth"`
}

// ServerConfig tunes the HTTP host.
type ServerConfig struct {
	Addr   string `toml:"addr"`
	TickMS int    `toml:"tick_ms"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	p := physics.DefaultConfig()
	i := interaction.DefaultConfig()
	return &Config{
		Physics: PhysicsConfig{
			Damping:            p.Damping,
			RepulsionStrength:  p.RepulsionStrength,
			AttractionStrength: p.AttractionStrength,
			GroupingStrength:   p.GroupingStrength,
		},
		Interaction: InteractionConfig{
			TapMaxDurationMS: int(i.TapMaxDuration.Milliseconds()),
			DoubleWindowMS:   int(i.DoubleWindow.Milliseconds()),
			TapSlop:          i.TapSlop,
			ZoomSensitivity:  i.ZoomSensitivity,
			FilterDepth:      i.FilterDepth,
		},
		Server: ServerConfig{Addr: ":8080", TickMS: 16},
	}
}

// LoadConfig reads a TOML config file, layering it over the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ferrors.Wrap(ferrors.ErrCodeFileNotFound, err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, ferrors.Wrap(ferrors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	return cfg, nil
}

func (c *Config) physicsConfig() physics.Config {
	return physics.Config{
		Damping:            c.Physics.Damping,
		RepulsionStrength:  c.Physics.RepulsionStrength,
		AttractionStrength: c.Physics.AttractionStrength,
		GroupingStrength:   c.Physics.GroupingStrength,
	}
}

func (c *Config) interactionConfig() interaction.Config {
	cfg := interaction.DefaultConfig()
	cfg.TapMaxDuration = msToDuration(c.Interaction.TapMaxDurationMS)
	cfg.DoubleWindow = msToDuration(c.Interaction.DoubleWindowMS)
	cfg.TapSlop = c.Interaction.TapSlop
	cfg.ZoomSensitivity = c.Interaction.ZoomSensitivity
	cfg.FilterDepth = c.Interaction.FilterDepth
	return cfg
}

func msToDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
