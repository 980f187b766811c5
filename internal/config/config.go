// Package config provides runtime configuration values for the inventory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the settings shared by the CLI and the HTTP server.
type Config struct {
	DataFile       string  `mapstructure:"data_file"`
	HTTPAddr       string  `mapstructure:"http_addr"`
	Autoload       bool    `mapstructure:"autoload"`
	Autosave       bool    `mapstructure:"autosave"`
	LogLevel       string  `mapstructure:"log_level"`
	LogFormat      string  `mapstructure:"log_format"`
	RateLimitRPS   float64 `mapstructure:"rate_limit_rps"`
	RateLimitBurst int     `mapstructure:"rate_limit_burst"`
}

const (
	envPrefix  = "INVENTORY"
	configFile = "inventory.yaml"
)

// New returns a viper instance with defaults, the optional inventory.yaml
// config file and INVENTORY_* environment variables wired in.
func New() *viper.Viper {
	return newIn(".")
}

func newIn(dir string) *viper.Viper {
	v := viper.New()

	v.SetDefault("data_file", "inventory.json")
	v.SetDefault("http_addr", "localhost:8080")
	v.SetDefault("autoload", true)
	v.SetDefault("autosave", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("rate_limit_rps", 5.0)
	v.SetDefault("rate_limit_burst", 10)

	// A bare config name would also match the inventory.json data file.
	v.SetConfigFile(filepath.Join(dir, configFile))

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags lets command line flags override every other source. Flag names
// use dashes, config keys underscores.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if bindErr := v.BindPFlag(key, f); bindErr != nil && err == nil {
			err = bindErr
		}
	})
	return err
}

// Load reads the config file, if any, and decodes the merged settings.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if cfg.DataFile == "" {
		return Config{}, errors.New("data_file must not be empty")
	}
	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst < 1 {
		return Config{}, errors.New("rate limit must be positive")
	}
	return cfg, nil
}
