package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all application configuration.
type Config struct {
	AI     AIConfig     `toml:"ai"`
	Server ServerConfig `toml:"server"`
}

// AIConfig holds generation API settings.
type AIConfig struct {
	Provider string `toml:"provider"`
	APIKey   string `toml:"api_key"`
	Model    string `toml:"model"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int `toml:"port"`
}

const defaultConfigContent = `[ai]
provider = "openai"               # "openai" or "anthropic"
api_key = ""                      # Your API key (or set AI_API_KEY env var)
model = "gpt-4o-mini"             # Model used for article generation

[server]
port = 8080
`

// Load reads and parses the TOML config from the given path. If the file does
// not exist, it creates a default config file at that path. Environment
// variables override values from the file with highest priority.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := createDefault(path); err != nil {
			return nil, fmt.Errorf("creating default config: %w", err)
		}
		slog.Info("created default config file", "path", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Validate explicitly-set values before applying defaults, so that
	// explicitly writing "port = 0" is an error rather than silently
	// being replaced with the default.
	if err := validateExplicit(&cfg, md); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// createDefault writes the default config content to the given path,
// creating any parent directories as needed.
func createDefault(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigContent), 0o644); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}

// validateExplicit checks values that were explicitly set in the TOML file.
// This catches cases like "port = 0" which would otherwise be silently
// replaced by the default value.
func validateExplicit(cfg *Config, md toml.MetaData) error {
	if md.IsDefined("server", "port") {
		if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
			return fmt.Errorf("invalid server.port %d: must be between 1 and 65535", cfg.Server.Port)
		}
	}
	return nil
}

// applyDefaults sets default values for any zero-valued fields.
func applyDefaults(cfg *Config) {
	if cfg.AI.Provider == "" {
		cfg.AI.Provider = "openai"
	}
	if cfg.AI.Model == "" {
		cfg.AI.Model = "gpt-4o-mini"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
}

// applyEnvOverrides applies environment variable overrides. Environment
// variables take highest priority over config file values.
//
// Priority for ai.api_key:
//  1. AI_API_KEY (generic, highest)
//  2. OPENAI_API_KEY (when provider is "openai")
//  3. ANTHROPIC_API_KEY (when provider is "anthropic")
func applyEnvOverrides(cfg *Config) {
	// Apply provider-specific env var first (lower priority).
	switch cfg.AI.Provider {
	case "openai":
		if v := os.Getenv("OPENAI_API_KEY"); v != "" {
			cfg.AI.APIKey = v
		}
	case "anthropic":
		if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
			cfg.AI.APIKey = v
		}
	}

	// AI_API_KEY overrides everything (highest priority).
	if v := os.Getenv("AI_API_KEY"); v != "" {
		cfg.AI.APIKey = v
	}

	if v := os.Getenv("AI_MODEL"); v != "" {
		cfg.AI.Model = v
	}
}

// validate checks that configuration values are within acceptable ranges.
func validate(cfg *Config) error {
	switch cfg.AI.Provider {
	case "openai", "anthropic":
		// valid
	default:
		return fmt.Errorf("invalid ai.provider %q: must be \"openai\" or \"anthropic\"", cfg.AI.Provider)
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d: must be between 1 and 65535", cfg.Server.Port)
	}

	if cfg.AI.APIKey == "" {
		slog.Warn("ai.api_key is empty: article generation will be unavailable until it is set")
	}

	return nil
}
