package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/s0up4200/eventorkit/eventor"
	"github.com/s0up4200/eventorkit/filter"
)

// EnvPrefix prefixes environment overrides, e.g. EVENTORKIT_EVENTOR_API_KEY.
const EnvPrefix = "EVENTORKIT"

const placeholderAPIKey = "your-api-key-here"

// Load loads the configuration from file and environment. Without an explicit
// path a missing file is not an error, so the API key may come from the
// environment alone.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".eventorkit"))
		}
		v.AddConfigPath("/etc/eventorkit/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values. Every key is given a
// default so AutomaticEnv can override it during Unmarshal.
func setDefaults(v *viper.Viper) {
	// Eventor defaults
	v.SetDefault("eventor.url", eventor.DefaultBaseURL)
	v.SetDefault("eventor.api_key", "")
	v.SetDefault("eventor.timeout", "30s")
	v.SetDefault("eventor.user_agent", "eventorkit")

	// Output defaults
	v.SetDefault("output.format", "json")
	v.SetDefault("output.indent", 2)

	v.SetDefault("filter.default_expression", "")

	v.SetDefault("concurrency.max_requests", 4)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Eventor.APIKey == "" || cfg.Eventor.APIKey == placeholderAPIKey {
		return fmt.Errorf("eventor.api_key must be set: %w", eventor.ErrMissingAPIKey)
	}

	u, err := url.Parse(cfg.Eventor.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid eventor.url: %s", cfg.Eventor.URL)
	}

	if cfg.Eventor.Timeout <= 0 {
		return fmt.Errorf("eventor.timeout must be positive, got %s", cfg.Eventor.Timeout)
	}

	validOutputFormats := map[string]bool{
		"json": true,
		"yaml": true,
	}
	if !validOutputFormats[cfg.Output.Format] {
		return fmt.Errorf("invalid output.format: %s (must be 'json' or 'yaml')", cfg.Output.Format)
	}

	if cfg.Output.Indent < 0 {
		return fmt.Errorf("output.indent must not be negative, got %d", cfg.Output.Indent)
	}

	if cfg.Concurrency.MaxRequests <= 0 {
		return fmt.Errorf("concurrency.max_requests must be positive, got %d", cfg.Concurrency.MaxRequests)
	}

	if cfg.Filter.DefaultExpression != "" {
		if err := filter.Validate(cfg.Filter.DefaultExpression); err != nil {
			return fmt.Errorf("invalid filter.default_expression: %w", err)
		}
	}

	for name, preset := range cfg.Filter.Presets {
		if err := filter.Validate(preset.Expression); err != nil {
			return fmt.Errorf("invalid filter preset '%s': %w", name, err)
		}
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}

// PresetExpressions returns the preset expressions keyed by name
func (c *Config) PresetExpressions() map[string]string {
	expressions := make(map[string]string, len(c.Filter.Presets))
	for name, preset := range c.Filter.Presets {
		expressions[name] = preset.Expression
	}
	return expressions
}
