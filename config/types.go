package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	Eventor     EventorConfig     `mapstructure:"eventor"`
	Output      OutputConfig      `mapstructure:"output"`
	Filter      FilterConfig      `mapstructure:"filter"`
	Concurrency ConcurrencyConfig `mapstructure:"concurrency"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// EventorConfig holds Eventor API connection details
type EventorConfig struct {
	URL       string        `mapstructure:"url"`
	APIKey    string        `mapstructure:"api_key"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// OutputConfig controls how command results are printed
type OutputConfig struct {
	Format string `mapstructure:"format"`
	Indent int    `mapstructure:"indent"`
}

// FilterConfig contains the default filter and named presets.
// DefaultExpression is evaluated against Event records and only applies to
// the events command.
type FilterConfig struct {
	DefaultExpression string                  `mapstructure:"default_expression"`
	Presets           map[string]PresetFilter `mapstructure:"presets"`
}

// PresetFilter is a named filter expression
type PresetFilter struct {
	Expression  string `mapstructure:"expression"`
	Description string `mapstructure:"description"`
}

// ConcurrencyConfig bounds parallel requests issued by a single command
type ConcurrencyConfig struct {
	MaxRequests int `mapstructure:"max_requests"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
