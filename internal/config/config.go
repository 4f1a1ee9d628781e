// Package config loads generation settings from the workspace root. Every
// knob has a default, values can come from soroscope.yaml or SOROSCOPE_*
// environment variables, and command flags override both.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds every knob the generation run reads.
type Config struct {
	// Workspace is the project root holding contracts/ and packages/.
	Workspace string `mapstructure:"workspace"`
	// Output is the artifact path, relative paths resolved against the
	// working directory.
	Output string `mapstructure:"output"`
	// Network replaces the unknown network tag on bindings whose directory
	// carries no recognized suffix. Empty keeps the unknown tag.
	Network string `mapstructure:"network"`
	// Jobs bounds the per-contract fan-out. Zero picks the CPU count.
	Jobs int `mapstructure:"jobs"`
	// Verbose raises logging to debug level.
	Verbose bool `mapstructure:"verbose"`
	// EntryModule names the module whose functions form the callable
	// surface of every contract.
	EntryModule string `mapstructure:"entry_module"`
}

// Load reads soroscope.yaml from dir, falling back to defaults for every
// missing value. A missing file is not an error.
func Load(dir string) (*Config, error) {
	v := viper.New()

	v.SetDefault("workspace", ".")
	v.SetDefault("output", "contract-metadata.json")
	v.SetDefault("network", "")
	v.SetDefault("jobs", 0)
	v.SetDefault("verbose", false)
	v.SetDefault("entry_module", "lib")

	v.SetConfigName("soroscope")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("SOROSCOPE")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got: %d", cfg.Jobs)
	}
	if cfg.Output == "" {
		return fmt.Errorf("output path must not be empty")
	}
	if cfg.EntryModule == "" {
		return fmt.Errorf("entry_module must not be empty")
	}
	return nil
}
