package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// ShutdownTimeoutSeconds bounds graceful shutdown of the HTTP server.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"gte=1"`
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	// GeminiAPIKey is used when a request does not bring its own key.
	// It may be empty, in which case every request must carry a key.
	GeminiAPIKey string `mapstructure:"gemini_api_key"`
	ModelName    string `mapstructure:"model_name"     validate:"required"`
	BaseURL      string `mapstructure:"base_url"       validate:"required,url"`
	// RequestTimeoutSeconds is the transport timeout; 0 disables it.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" validate:"gte=0"`

	PairMaxOutputTokens       int `mapstructure:"pair_max_output_tokens"       validate:"gt=0"`
	BatchTokensPerItem        int `mapstructure:"batch_tokens_per_item"        validate:"gt=0"`
	BatchMinOutputTokens      int `mapstructure:"batch_min_output_tokens"      validate:"gt=0"`
	ValidationMaxOutputTokens int `mapstructure:"validation_max_output_tokens" validate:"gt=0"`
}
