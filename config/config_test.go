package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/eventorkit/eventor"
)

func validConfig() *Config {
	return &Config{
		Eventor: EventorConfig{
			URL:     eventor.DefaultBaseURL,
			APIKey:  "valid-api-key",
			Timeout: 30 * time.Second,
		},
		Output:      OutputConfig{Format: "json", Indent: 2},
		Concurrency: ConcurrencyConfig{MaxRequests: 4},
		Logging:     LoggingConfig{Level: "info", Format: "console"},
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			modify: func(*Config) {},
		},
		{
			name:    "missing api key",
			modify:  func(c *Config) { c.Eventor.APIKey = "" },
			wantErr: "eventor.api_key",
		},
		{
			name:    "placeholder api key",
			modify:  func(c *Config) { c.Eventor.APIKey = placeholderAPIKey },
			wantErr: "eventor.api_key",
		},
		{
			name:    "url without scheme",
			modify:  func(c *Config) { c.Eventor.URL = "eventor.orientering.se/api" },
			wantErr: "invalid eventor.url",
		},
		{
			name:    "zero timeout",
			modify:  func(c *Config) { c.Eventor.Timeout = 0 },
			wantErr: "eventor.timeout",
		},
		{
			name:    "unknown output format",
			modify:  func(c *Config) { c.Output.Format = "xml" },
			wantErr: "invalid output.format: xml",
		},
		{
			name:    "negative indent",
			modify:  func(c *Config) { c.Output.Indent = -1 },
			wantErr: "output.indent",
		},
		{
			name:    "zero concurrency",
			modify:  func(c *Config) { c.Concurrency.MaxRequests = 0 },
			wantErr: "concurrency.max_requests",
		},
		{
			name: "valid presets",
			modify: func(c *Config) {
				c.Filter.DefaultExpression = `has("Name")`
				c.Filter.Presets = map[string]PresetFilter{
					"national": {Expression: `num("EventClassificationId") == 2`},
				}
			},
		},
		{
			name: "broken preset",
			modify: func(c *Config) {
				c.Filter.Presets = map[string]PresetFilter{
					"broken": {Expression: `has("Name"`},
				}
			},
			wantErr: "invalid filter preset 'broken'",
		},
		{
			name:    "broken default expression",
			modify:  func(c *Config) { c.Filter.DefaultExpression = `1 +` },
			wantErr: "filter.default_expression",
		},
		{
			name:    "invalid logging level",
			modify:  func(c *Config) { c.Logging.Level = "trace" },
			wantErr: "invalid logging level: trace",
		},
		{
			name:    "invalid logging format",
			modify:  func(c *Config) { c.Logging.Format = "text" },
			wantErr: "invalid logging format: text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(cfg)

			err := validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_MissingAPIKeyIsSentinel(t *testing.T) {
	cfg := validConfig()
	cfg.Eventor.APIKey = ""

	assert.ErrorIs(t, validate(cfg), eventor.ErrMissingAPIKey)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
eventor:
  api_key: file-key
  timeout: 10s
output:
  format: yaml
filter:
  presets:
    national:
      expression: num("EventClassificationId") == 2
      description: National events
logging:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.Eventor.APIKey)
	assert.Equal(t, eventor.DefaultBaseURL, cfg.Eventor.URL)
	assert.Equal(t, 10*time.Second, cfg.Eventor.Timeout)
	assert.Equal(t, "eventorkit", cfg.Eventor.UserAgent)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, 2, cfg.Output.Indent)
	assert.Equal(t, 4, cfg.Concurrency.MaxRequests)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, map[string]string{"national": `num("EventClassificationId") == 2`}, cfg.PresetExpressions())
	assert.Equal(t, "National events", cfg.Filter.Presets["national"].Description)
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	path := writeConfig(t, "eventor:\n  api_key: file-key\n")

	t.Setenv("EVENTORKIT_EVENTOR_API_KEY", "env-key")
	t.Setenv("EVENTORKIT_CONCURRENCY_MAX_REQUESTS", "8")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.Eventor.APIKey)
	assert.Equal(t, 8, cfg.Concurrency.MaxRequests)
}

func TestLoad_WithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("EVENTORKIT_EVENTOR_API_KEY", "env-key")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.Eventor.APIKey)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("explicit path missing", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error reading config")
	})

	t.Run("invalid values", func(t *testing.T) {
		path := writeConfig(t, "eventor:\n  api_key: key\noutput:\n  format: csv\n")

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
	})

	t.Run("no api key anywhere", func(t *testing.T) {
		path := writeConfig(t, "logging:\n  level: info\n")
		t.Setenv("EVENTORKIT_EVENTOR_API_KEY", "")

		_, err := Load(path)
		assert.ErrorIs(t, err, eventor.ErrMissingAPIKey)
	})
}
