package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g.
// WORDGUESS_SERVER_PORT for server.port.
const EnvPrefix = "WORDGUESS"

// Default values applied before any file or environment source.
const (
	DefaultPort                      = 8080
	DefaultLogLevel                  = "info"
	DefaultShutdownTimeoutSeconds    = 10
	DefaultModelName                 = "gemini-2.5-flash"
	DefaultBaseURL                   = "https://generativelanguage.googleapis.com/v1beta"
	DefaultRequestTimeoutSeconds     = 60
	DefaultPairMaxOutputTokens       = 256
	DefaultBatchTokensPerItem        = 64
	DefaultBatchMinOutputTokens      = 1024
	DefaultValidationMaxOutputTokens = 512
)

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// A .env file in the working directory is read first if present; it never
// overrides variables already set in the process environment.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom behaves like Load but also reads the given config file when path
// is not empty.
func LoadFrom(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvs(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against its validation tags.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("server.shutdown_timeout_seconds", DefaultShutdownTimeoutSeconds)

	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.model_name", DefaultModelName)
	v.SetDefault("llm.base_url", DefaultBaseURL)
	v.SetDefault("llm.request_timeout_seconds", DefaultRequestTimeoutSeconds)
	v.SetDefault("llm.pair_max_output_tokens", DefaultPairMaxOutputTokens)
	v.SetDefault("llm.batch_tokens_per_item", DefaultBatchTokensPerItem)
	v.SetDefault("llm.batch_min_output_tokens", DefaultBatchMinOutputTokens)
	v.SetDefault("llm.validation_max_output_tokens", DefaultValidationMaxOutputTokens)
}

// bindEnvs binds every known key so that Unmarshal sees environment values
// even for keys absent from the config file.
func bindEnvs(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		_ = v.BindEnv(key)
	}
}
