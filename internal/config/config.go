package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Generator struct {
		// Seed drives the whole synthetic dataset; changing it
		// discards and regenerates everything. Stored as int64 for
		// yaml/env friendliness, truncated to uint32 by the pipeline.
		Seed                 int64 `yaml:"seed" env:"GENERATOR_SEED"`
		SuppressionThreshold int   `yaml:"suppression_threshold" env:"GENERATOR_SUPPRESSION_THRESHOLD"`
	} `yaml:"generator"`

	JWT struct {
		Secret                string `yaml:"secret" env:"JWT_SECRET"`
		AccessTokenExpiration string `yaml:"access_token_expiration" env:"JWT_ACCESS_TOKEN_EXPIRATION"`
		Issuer                string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Reviewer struct {
		// Demo reviewer account gating the identifiable tier.
		Username     string `yaml:"username" env:"REVIEWER_USERNAME"`
		PasswordHash string `yaml:"password_hash" env:"REVIEWER_PASSWORD_HASH"`
	} `yaml:"reviewer"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// The config file is optional; env vars alone can carry a deploy.
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Generator.Seed = 20240101
	config.Generator.SuppressionThreshold = 5

	config.JWT.AccessTokenExpiration = "1h"
	config.JWT.Issuer = "schoolpulse.demo"

	config.Reviewer.Username = "reviewer"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if config.Reviewer.PasswordHash == "" {
		return fmt.Errorf("reviewer password hash is required")
	}
	if config.Generator.Seed < 0 || config.Generator.Seed > int64(^uint32(0)) {
		return fmt.Errorf("generator seed must fit an unsigned 32-bit value")
	}
	if config.Generator.SuppressionThreshold < 1 {
		return fmt.Errorf("suppression threshold must be at least 1")
	}
	if _, err := time.ParseDuration(config.JWT.AccessTokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT access token expiration format: %w", err)
	}
	return nil
}

// AccessTokenExp parses the configured access token lifetime, falling
// back to one hour on a format it cannot parse.
func (c *Config) AccessTokenExp() time.Duration {
	d, err := time.ParseDuration(c.JWT.AccessTokenExpiration)
	if err != nil {
		return time.Hour
	}
	return d
}
