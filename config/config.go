// Package config loads gridpath settings.
//
// Values are resolved with the priority
//
//	environment > YAML file > defaults
//
// and validated with struct tags before use.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/evaluator"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/preset"
)

// ErrInvalidConfig wraps every load or validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment variables consulted by Load.
const (
	EnvPriority    = "GRIDPATH_PRIORITY" // comma list, e.g. "nodes,cost,time"
	EnvPreset      = "GRIDPATH_PRESET"
	EnvPresetFile  = "GRIDPATH_PRESET_FILE"
	EnvLogLevel    = "GRIDPATH_LOG_LEVEL"
	EnvLogFormat   = "GRIDPATH_LOG_FORMAT"
	EnvMetricsAddr = "GRIDPATH_METRICS_ADDR"
	EnvSeed        = "GRIDPATH_SEED"
)

var validate = validator.New()

// Config is the full application configuration.
type Config struct {
	// Priority is the ranking order, most significant first.
	Priority []string `yaml:"priority" validate:"len=3,unique,dive,oneof=cost nodes time"`

	// Preset names the grid used when no random grid is requested.
	Preset string `yaml:"preset" validate:"required"`

	// PresetFile optionally points to extra YAML presets.
	PresetFile string `yaml:"preset_file"`

	Random RandomConfig `yaml:"random"`
	Log    LogConfig    `yaml:"log"`

	// MetricsAddr enables the Prometheus endpoint when non-empty.
	MetricsAddr string `yaml:"metrics_addr" validate:"omitempty,hostname_port"`
}

// RandomConfig mirrors grid.RandomOptions plus dimensions. WeightMin stays
// at or above grid.MinWeight so generated grids remain admissible.
type RandomConfig struct {
	Rows            int     `yaml:"rows" validate:"min=1,max=1024"`
	Cols            int     `yaml:"cols" validate:"min=1,max=1024"`
	ObstacleRatio   float64 `yaml:"obstacle_ratio" validate:"gte=0,lt=1"`
	WeightedRatio   float64 `yaml:"weighted_ratio" validate:"gte=0,lte=1"`
	WeightMin       float64 `yaml:"weight_min" validate:"gte=1"`
	WeightMax       float64 `yaml:"weight_max" validate:"gtefield=WeightMin"`
	Seed            int64   `yaml:"seed"`
	EnsureConnected bool    `yaml:"ensure_connected"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Default returns the built-in configuration.
func Default() Config {
	ro := grid.DefaultRandomOptions()
	return Config{
		Priority: []string{
			string(evaluator.CriterionCost),
			string(evaluator.CriterionNodes),
			string(evaluator.CriterionTime),
		},
		Preset: preset.Small,
		Random: RandomConfig{
			Rows:            10,
			Cols:            10,
			ObstacleRatio:   ro.ObstacleRatio,
			WeightedRatio:   ro.WeightedRatio,
			WeightMin:       ro.WeightRange[0],
			WeightMax:       ro.WeightRange[1],
			EnsureConnected: true,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load resolves the configuration. An empty path skips the file layer;
// a non-empty path must exist.
func Load(path string) (Config, error) {
	// Start with defaults
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}

	if err := loadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func loadEnv(cfg *Config) error {
	if v := os.Getenv(EnvPriority); v != "" {
		parts := strings.Split(v, ",")
		for i := range parts {
			parts[i] = strings.ToLower(strings.TrimSpace(parts[i]))
		}
		cfg.Priority = parts
	}
	if v := os.Getenv(EnvPreset); v != "" {
		cfg.Preset = v
	}
	if v := os.Getenv(EnvPresetFile); v != "" {
		cfg.PresetFile = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Log.Format = strings.ToLower(v)
	}
	if v := os.Getenv(EnvMetricsAddr); v != "" {
		cfg.MetricsAddr = v
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Random.Seed = seed
	}
	return nil
}

// Validate checks struct tags, then that Priority parses as an order.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := c.PriorityOrder(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// PriorityOrder converts Priority for the evaluator.
func (c Config) PriorityOrder() (evaluator.PriorityOrder, error) {
	return evaluator.ParsePriorityOrder(c.Priority)
}

// RandomOptions converts Random for grid.Random.
func (c Config) RandomOptions() grid.RandomOptions {
	opts := grid.DefaultRandomOptions()
	opts.ObstacleRatio = c.Random.ObstacleRatio
	opts.WeightedRatio = c.Random.WeightedRatio
	opts.WeightRange = [2]float64{c.Random.WeightMin, c.Random.WeightMax}
	opts.Seed = c.Random.Seed
	opts.EnsureConnected = c.Random.EnsureConnected
	return opts
}
