package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	Registry struct {
		// StrictCreate rejects a create whose id is already taken instead of overwriting
		StrictCreate bool `yaml:"strict_create" env:"REGISTRY_STRICT_CREATE"`
	} `yaml:"registry"`

	Seed struct {
		Enabled bool   `yaml:"enabled" env:"SEED_ENABLED"`
		Path    string `yaml:"path" env:"SEED_PATH"` // empty means the built-in demo data
	} `yaml:"seed"`

	Output struct {
		Format string `yaml:"format" env:"OUTPUT_FORMAT"`
	} `yaml:"output"`
}

// LoadConfig loads configuration from a file and environment variables.
// A missing file is not an error; defaults and environment still apply.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

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
	config.Logging.Level = "info"
	config.Logging.Format = "text"

	config.Registry.StrictCreate = false

	config.Seed.Enabled = true
	config.Seed.Path = ""

	config.Output.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	switch strings.ToLower(config.Logging.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("unsupported log format %q", config.Logging.Format)
	}

	switch strings.ToLower(config.Logging.Level) {
	case "debug", "info", "warn", "error", "disabled":
	default:
		return fmt.Errorf("unsupported log level %q", config.Logging.Level)
	}

	switch strings.ToLower(config.Output.Format) {
	case "json", "yaml":
	default:
		return fmt.Errorf("unsupported output format %q", config.Output.Format)
	}

	return nil
}

// PrettyLogs reports whether logs should use the console writer
func (c *Config) PrettyLogs() bool {
	return strings.ToLower(c.Logging.Format) == "text"
}
