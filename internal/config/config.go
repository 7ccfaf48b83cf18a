// Package config loads starjumper settings from an optional YAML file and
// sets up logging.
package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/starjumper/internal/entities"
	"github.com/KirkDiggler/starjumper/internal/errors"
)

// Config holds the settings that flags can override.
type Config struct {
	Logging   LoggingConfig   `yaml:"logging"`
	Redis     RedisConfig     `yaml:"redis"`
	Subsector SubsectorConfig `yaml:"subsector"`
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// RedisConfig points storage at a Redis server. An empty endpoint keeps
// generated worlds in memory for the life of the process.
type RedisConfig struct {
	Endpoint   string `yaml:"endpoint"`
	DB         int    `yaml:"db"`
	MaxRetries int    `yaml:"max_retries"`
	UseTLS     bool   `yaml:"use_tls"`
}

// SubsectorConfig holds defaults for subsector generation.
type SubsectorConfig struct {
	Density entities.Density `yaml:"density"`
}

// Log formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "warn",
			Format: FormatText,
		},
		Subsector: SubsectorConfig{
			Density: entities.DensityStandard,
		},
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCodef(err, errors.CodeNotFound, "config file %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to parse config file %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config file %s", path)
	}

	return cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("logging.level", strings.ToLower(c.Logging.Level),
		[]string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateEnum("logging.format", strings.ToLower(c.Logging.Format),
		[]string{FormatText, FormatJSON}, vb)

	if c.Redis.DB < 0 {
		vb.InvalidField("redis.db", "must not be negative")
	}

	if _, err := entities.ParseDensity(string(c.Subsector.Density)); err != nil {
		vb.InvalidField("subsector.density", err.Error())
	}

	return vb.Build()
}
