package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

const defaultPort = "5000"

// Config holds all application configuration, loaded from environment
// variables at startup.
type Config struct {
	Port          string `mapstructure:"port"`
	LogLevel      string `mapstructure:"log_level"`
	Environment   string `mapstructure:"environment"`
	MongoURI      string `mapstructure:"mongo_uri"`
	MongoDatabase string `mapstructure:"mongo_database"`
}

var ErrMongoURINotSet = errors.New("MONGO_URI is not set")

// Load reads configuration from the environment. MONGO_URI is required;
// everything else has a default.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("port", defaultPort)
	v.SetDefault("log_level", "info")
	v.SetDefault("environment", "development")
	v.SetDefault("mongo_uri", "")
	v.SetDefault("mongo_database", "TaskMasterDB")

	for _, key := range []string{"port", "log_level", "environment", "mongo_uri", "mongo_database"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.MongoURI == "" {
		return nil, ErrMongoURINotSet
	}

	return &cfg, nil
}
