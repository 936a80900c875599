package tapkit

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Default tuning, sized for toddler fingers.
const (
	DefaultHitboxPadding   = 20.0                   // pixels of forgiveness around each target
	DefaultMinTargetSize   = 80.0                   // advisory minimum element size in pixels
	DefaultDoubleTapWindow = 300 * time.Millisecond // repeat taps on one target inside this window are dropped
	DefaultHoldThreshold   = 500 * time.Millisecond // press duration before OnHold fires
	DefaultDragThreshold   = 10.0                   // pixels of movement on either axis before a press becomes a drag
)

//go:embed configs/tapkit.yaml
var defaultConfigYAML []byte

// Config holds dispatcher tuning. Zero fields fall back to the defaults.
// HitboxPadding is the exception for negative values, which turn padding
// off for every target that does not set its own.
type Config struct {
	HitboxPadding   float64       `yaml:"hitbox_padding"`
	MinTargetSize   float64       `yaml:"min_target_size"`
	DoubleTapWindow time.Duration `yaml:"double_tap_window"`
	HoldThreshold   time.Duration `yaml:"hold_threshold"`
	DragThreshold   float64       `yaml:"drag_threshold"`
	Debug           bool          `yaml:"debug"`
}

// DefaultConfig returns the default dispatcher configuration.
func DefaultConfig() Config {
	return Config{
		HitboxPadding:   DefaultHitboxPadding,
		MinTargetSize:   DefaultMinTargetSize,
		DoubleTapWindow: DefaultDoubleTapWindow,
		HoldThreshold:   DefaultHoldThreshold,
		DragThreshold:   DefaultDragThreshold,
	}
}

// withDefaults returns c with every zero or negative field replaced by its
// default. A negative HitboxPadding is kept.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.HitboxPadding == 0 {
		c.HitboxPadding = def.HitboxPadding
	}
	if c.MinTargetSize <= 0 {
		c.MinTargetSize = def.MinTargetSize
	}
	if c.DoubleTapWindow <= 0 {
		c.DoubleTapWindow = def.DoubleTapWindow
	}
	if c.HoldThreshold <= 0 {
		c.HoldThreshold = def.HoldThreshold
	}
	if c.DragThreshold <= 0 {
		c.DragThreshold = def.DragThreshold
	}
	return c
}

// ParseConfig decodes a YAML document into a Config. Missing fields take
// their defaults.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg.withDefaults(), nil
}

// YAML encodes the effective configuration, defaults applied.
func (c Config) YAML() ([]byte, error) {
	return yaml.Marshal(c.withDefaults())
}

// LoadConfig loads dispatcher configuration.
// Search order: customPath -> ~/.tapkit/config.yaml -> ./configs/tapkit.yaml -> embedded default.
// Only an explicit customPath that cannot be read or parsed is an error.
func LoadConfig(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", customPath, err)
		}
		cfg, err := ParseConfig(data)
		if err != nil {
			return Config{}, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if p := userConfigPath("config.yaml"); p != "" {
		if data, err := os.ReadFile(p); err == nil {
			if cfg, err := ParseConfig(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "tapkit.yaml")); err == nil {
		if cfg, err := ParseConfig(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := ParseConfig(defaultConfigYAML)
	if err != nil {
		return DefaultConfig(), nil
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tapkit", filename)
}
