package game

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation
var ErrInvalidConfig = errors.New("invalid config")

// Tuning holds the gameplay constants
type Tuning struct {
	// PlayerSpeed is how far the player moves per second
	PlayerSpeed float64 `yaml:"player_speed"`

	// BulletSpeed is how far a bullet travels per second
	BulletSpeed float64 `yaml:"bullet_speed"`

	// EnemySpeed is how far an enemy travels per second
	EnemySpeed float64 `yaml:"enemy_speed"`

	// FireCooldown is the minimum time between shots in seconds
	FireCooldown float64 `yaml:"fire_cooldown"`

	// SpawnInterval is the time between enemy spawns in seconds
	SpawnInterval float64 `yaml:"spawn_interval"`
}

// Config holds game configuration
type Config struct {
	// ScreenWidth is the window width in pixels
	ScreenWidth int `yaml:"screen_width"`

	// ScreenHeight is the window height in pixels
	ScreenHeight int `yaml:"screen_height"`

	// Seed for the spawn RNG, 0 picks one from the clock
	Seed int64 `yaml:"seed"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level"`

	Tuning Tuning `yaml:"tuning"`
}

// DefaultTuning returns the stock gameplay constants
func DefaultTuning() Tuning {
	return Tuning{
		PlayerSpeed:   300,
		BulletSpeed:   1000,
		EnemySpeed:    200,
		FireCooldown:  0.5,
		SpawnInterval: 1.0,
	}
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  800,
		ScreenHeight: 600,
		LogLevel:     "info",
		Tuning:       DefaultTuning(),
	}
}

// LoadConfig reads a YAML file over the defaults. An empty path returns
// the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every field holds a usable value
func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, c.ScreenWidth, c.ScreenHeight)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}

	t := c.Tuning
	fields := []struct {
		name  string
		value float64
	}{
		{"player_speed", t.PlayerSpeed},
		{"bullet_speed", t.BulletSpeed},
		{"enemy_speed", t.EnemySpeed},
		{"fire_cooldown", t.FireCooldown},
		{"spawn_interval", t.SpawnInterval},
	}
	for _, f := range fields {
		if f.value <= 0 {
			return fmt.Errorf("%w: tuning.%s must be positive, got %v", ErrInvalidConfig, f.name, f.value)
		}
	}
	return nil
}

// Viewport returns the logical screen size
func (c Config) Viewport() Vec2i {
	return Vec2i{X: c.ScreenWidth, Y: c.ScreenHeight}
}
