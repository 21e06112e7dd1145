package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: "8080"},
		App: AppConfig{
			DefaultFormat:    "json",
			SupportedFormats: []string{"json", "text", "markdown"},
		},
		Store: StoreConfig{DataDir: "/tmp/cvision-test"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{"valid config", func(cfg *Config) {}, ""},
		{"missing port", func(cfg *Config) { cfg.Server.Port = "" }, "server port is required"},
		{"unsupported default format", func(cfg *Config) { cfg.App.DefaultFormat = "yaml" }, "invalid default format"},
		{"missing data dir", func(cfg *Config) { cfg.Store.DataDir = "" }, "store data directory is required"},
		{"cert without key", func(cfg *Config) { cfg.Server.TLS.CertFile = "cert.pem" }, "TLS requires both"},
		{"key without cert", func(cfg *Config) { cfg.Server.TLS.KeyFile = "key.pem" }, "TLS requires both"},
		{"cert and key together", func(cfg *Config) {
			cfg.Server.TLS.CertFile = "cert.pem"
			cfg.Server.TLS.KeyFile = "key.pem"
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateDoesNotRequireAPIKey(t *testing.T) {
	cfg := validConfig()
	cfg.AI.APIKey = ""

	assert.NoError(t, cfg.Validate())
}

func TestTLSEnabled(t *testing.T) {
	assert.False(t, TLSConfig{}.Enabled())
	assert.False(t, TLSConfig{CertFile: "cert.pem"}.Enabled())
	assert.False(t, TLSConfig{KeyFile: "key.pem"}.Enabled())
	assert.True(t, TLSConfig{CertFile: "cert.pem", KeyFile: "key.pem"}.Enabled())
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "gemini", cfg.AI.Provider)
	assert.Equal(t, "gemini-2.5-flash", cfg.AI.Model)
	assert.Equal(t, 60*time.Second, cfg.AI.Timeout)
	assert.True(t, cfg.AI.CircuitBreaker.Enabled)

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.False(t, cfg.Server.RateLimit.Enabled)
	assert.Equal(t, 60, cfg.Server.RateLimit.RequestsPerMin)

	assert.Equal(t, "json", cfg.App.DefaultFormat)
	assert.ElementsMatch(t, []string{"json", "text", "markdown"}, cfg.App.SupportedFormats)

	assert.NotEmpty(t, cfg.Store.DataDir)
	assert.True(t, cfg.Store.Watch)
	assert.Equal(t, time.Second, cfg.Store.DebounceDelay)

	assert.Equal(t, "cvision", cfg.Observability.ServiceName)
	assert.Equal(t, 1.0, cfg.Observability.SampleRate)
}

func TestApplyFallbacksAPIKeysFromEnv(t *testing.T) {
	t.Setenv("CVISION_SERVER_APIKEYS", "key-one, key-two ,key-three")

	cfg := validConfig()
	cfg.applyFallbacks()

	assert.Equal(t, []string{"key-one", "key-two", "key-three"}, cfg.Server.APIKeys)
}

func TestApplyFallbacksLegacyGeminiKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "legacy-key")

	cfg := validConfig()
	cfg.applyFallbacks()
	assert.Equal(t, "legacy-key", cfg.AI.APIKey)

	cfg.AI.APIKey = "explicit-key"
	cfg.applyFallbacks()
	assert.Equal(t, "explicit-key", cfg.AI.APIKey)
}

func TestApplyFallbacksDebugEnablesConsoleOutput(t *testing.T) {
	cfg := validConfig()
	cfg.App.LogLevel = "debug"
	cfg.applyFallbacks()

	assert.True(t, cfg.Observability.ConsoleOutput)
}
