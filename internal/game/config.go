package game

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrBadConfig marks a configuration that failed validation.
var ErrBadConfig = errors.New("invalid config")

// Config holds the arena tuning values. Fields missing from a YAML file
// keep their defaults.
type Config struct {
	TileSize       float64 `yaml:"tile_size"`
	TankSize       float64 `yaml:"tank_size"`
	MoveSpeed      float64 `yaml:"move_speed"`      // pixels per tick
	AimStep        int     `yaml:"aim_step"`        // byte-angle steps per tick
	MaxBullets     int     `yaml:"max_bullets"`     // bullet pool capacity
	BulletBounces  int     `yaml:"bullet_bounces"`  // legs per bullet
	BulletSpeed    float64 `yaml:"bullet_speed"`    // pixels per tick
	BulletRadius   float64 `yaml:"bullet_radius"`   // drawing only
	RayLength      float64 `yaml:"ray_length"`      // reach of one cast
	MergeTolerance float64 `yaml:"merge_tolerance"` // bounce line end snapping
}

// DefaultConfig returns the stock arena settings.
func DefaultConfig() Config {
	return Config{
		TileSize:       DefaultTileSize,
		TankSize:       DefaultTankSize,
		MoveSpeed:      DefaultMoveSpeed,
		AimStep:        DefaultAimStep,
		MaxBullets:     DefaultMaxBullets,
		BulletBounces:  DefaultBulletBounces,
		BulletSpeed:    DefaultBulletSpeed,
		BulletRadius:   DefaultBulletRadius,
		RayLength:      DefaultRayLength,
		MergeTolerance: DefaultMergeTolerance,
	}
}

// Validate reports every out-of-range field.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrBadConfig}, args...)...))
		}
	}
	check(c.TileSize > 0, "tile_size must be positive, got %v", c.TileSize)
	check(c.TankSize > 0 && c.TankSize < c.TileSize,
		"tank_size must be in (0, tile_size), got %v", c.TankSize)
	check(c.MoveSpeed >= 0, "move_speed must not be negative, got %v", c.MoveSpeed)
	check(c.MaxBullets > 0, "max_bullets must be positive, got %d", c.MaxBullets)
	check(c.BulletBounces > 0, "bullet_bounces must be positive, got %d", c.BulletBounces)
	check(c.BulletSpeed > 0, "bullet_speed must be positive, got %v", c.BulletSpeed)
	check(c.BulletRadius >= 0, "bullet_radius must not be negative, got %v", c.BulletRadius)
	check(c.RayLength > 0, "ray_length must be positive, got %v", c.RayLength)
	check(c.MergeTolerance > 0 && c.MergeTolerance < c.TileSize/2,
		"merge_tolerance must be in (0, tile_size/2), got %v", c.MergeTolerance)
	return errors.Join(errs...)
}

// ParseConfig decodes YAML over the defaults and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a YAML config file. An empty path yields the defaults.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
