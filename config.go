package fastcluster

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/hupe1980/fastcluster/internal/engine"
	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

// Config is the file form of a Clusterer's settings.
//
// Example YAML:
//
//	separation: 25
//	resolution: 15
//	strategy: grid
//	log_level: info
//	ingest_rate: 500
//	ingest_burst: 50
type Config struct {
	// Separation is the merge distance. 0 means Unconstrained.
	Separation float64 `yaml:"separation"`

	// Resolution is the grid cell size. 0 disables the grid criterion.
	Resolution float64 `yaml:"resolution"`

	// Strategy is "grid" (default) or "scan".
	Strategy Strategy `yaml:"strategy"`

	// LogLevel enables text logging to stderr at the given slog level
	// ("debug", "info", "warn", "error"). Empty disables logging.
	LogLevel string `yaml:"log_level"`

	// IngestRate limits Consume to this many points per second. 0 is unlimited.
	IngestRate float64 `yaml:"ingest_rate"`

	// IngestBurst is the limiter burst size. Defaults to 1.
	IngestBurst int `yaml:"ingest_burst"`
}

// DefaultConfig returns a config with an unconstrained separation, no grid
// and the grid lookup strategy.
func DefaultConfig() Config {
	return Config{Strategy: StrategyGrid}
}

// ParseConfig decodes and validates a YAML config. Missing keys keep the
// values of DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// Validate checks every field.
func (c Config) Validate() error {
	if err := (engine.Config{Separation: c.Separation, Resolution: c.Resolution}).Validate(); err != nil {
		return err
	}
	if _, err := c.Strategy.MarshalText(); err != nil {
		return err
	}
	if _, err := c.logLevel(); err != nil {
		return err
	}
	if math.IsNaN(c.IngestRate) || c.IngestRate < 0 {
		return fmt.Errorf("%w: ingest_rate must be >= 0, got %v", ErrInvalidConfig, c.IngestRate)
	}
	if c.IngestBurst < 0 {
		return fmt.Errorf("%w: ingest_burst must be >= 0, got %d", ErrInvalidConfig, c.IngestBurst)
	}
	return nil
}

// Options converts the config into constructor options, excluding the
// separation and resolution which New takes directly.
func (c Config) Options() ([]Option, error) {
	lvl, err := c.logLevel()
	if err != nil {
		return nil, err
	}

	opts := []Option{WithStrategy(c.Strategy)}
	if lvl != nil {
		opts = append(opts, WithLogLevel(*lvl))
	}
	if c.IngestRate > 0 {
		opts = append(opts, WithIngestRate(rate.Limit(c.IngestRate), c.IngestBurst))
	}
	return opts, nil
}

func (c Config) logLevel() (*slog.Level, error) {
	if strings.TrimSpace(c.LogLevel) == "" {
		return nil, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return nil, fmt.Errorf("%w: log_level: %w", ErrInvalidConfig, err)
	}
	return &lvl, nil
}

// NewFromConfig creates a Clusterer from cfg. optFns are applied after the
// options derived from cfg and may override them.
func NewFromConfig(cfg Config, optFns ...Option) (*Clusterer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return New(cfg.Separation, cfg.Resolution, append(opts, optFns...)...)
}
