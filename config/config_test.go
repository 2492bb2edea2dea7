package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearConfigEnv unsets every variable LoadConfig reads so each test
// starts from the documented defaults.
func clearConfigEnv(t *testing.T) {
	for _, key := range []string{
		"SERVER_HOST", "SERVER_PORT",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_PASSWORD_FILE", "DB_NAME", "DB_SSL_MODE",
		"REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "REDIS_DB",
		"LLM_API_URL", "LLM_MODEL", "LLM_API_KEY", "LLM_API_KEY_FILE", "LLM_TIMEOUT",
		"QUERY_RATE_LIMIT", "QUERY_RATE_WINDOW",
		"LOG_LEVEL", "ENV", "CI",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "0.0.0.0", cfg.ServerHost)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "postgres", cfg.DBUser)
	assert.Equal(t, "nutriquery", cfg.DBName)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, "http://localhost:11434/v1/chat/completions", cfg.LLMAPIURL)
	assert.Equal(t, "llama3.2", cfg.LLMModel)
	assert.Equal(t, 30*time.Second, cfg.LLMTimeout)
	assert.Equal(t, 20, cfg.QueryRateLimit)
	assert.Equal(t, time.Minute, cfg.QueryRateWindow)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, Development, cfg.Environment)

	assert.False(t, cfg.RedisEnabled())
	assert.Equal(t, "0.0.0.0:8080", cfg.ServerAddr())
	assert.Contains(t, cfg.DSN(), "dbname=nutriquery")
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("REDIS_HOST", "cache.internal")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("LLM_API_URL", "https://api.deepseek.com/v1/chat/completions")
	t.Setenv("LLM_MODEL", "deepseek-chat")
	t.Setenv("LLM_TIMEOUT", "45s")
	t.Setenv("QUERY_RATE_LIMIT", "5")
	t.Setenv("QUERY_RATE_WINDOW", "30s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "secret", cfg.DBPassword)
	assert.True(t, cfg.RedisEnabled())
	assert.Equal(t, "cache.internal:6380", cfg.RedisAddr())
	assert.Equal(t, "deepseek-chat", cfg.LLMModel)
	assert.Equal(t, 45*time.Second, cfg.LLMTimeout)
	assert.Equal(t, 5, cfg.QueryRateLimit)
	assert.Equal(t, 30*time.Second, cfg.QueryRateWindow)
}

func TestLoadConfigSecretFiles(t *testing.T) {
	clearConfigEnv(t)

	dir := t.TempDir()
	passwordFile := filepath.Join(dir, "db_password")
	require.NoError(t, os.WriteFile(passwordFile, []byte("filepass\n"), 0o600))
	keyFile := filepath.Join(dir, "llm_api_key")
	require.NoError(t, os.WriteFile(keyFile, []byte("sk-test-key\n"), 0o600))

	t.Setenv("DB_PASSWORD_FILE", passwordFile)
	t.Setenv("LLM_API_KEY_FILE", keyFile)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "filepass", cfg.DBPassword)
	assert.Equal(t, "sk-test-key", cfg.LLMAPIKey)
}

func TestLoadConfigSecretFilePrecedence(t *testing.T) {
	clearConfigEnv(t)

	dir := t.TempDir()
	passwordFile := filepath.Join(dir, "db_password")
	require.NoError(t, os.WriteFile(passwordFile, []byte("filepass"), 0o600))

	t.Setenv("DB_PASSWORD", "envpass")
	t.Setenv("DB_PASSWORD_FILE", passwordFile)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "envpass", cfg.DBPassword)
}

func TestLoadConfigMissingSecretFile(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("DB_PASSWORD_FILE", "/nonexistent/secret")

	_, err := LoadConfig()

	assert.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{
			name:    "empty llm url",
			mutate:  func(cfg *Config) { cfg.LLMAPIURL = "" },
			wantErr: "LLM_API_URL",
		},
		{
			name:    "empty llm model",
			mutate:  func(cfg *Config) { cfg.LLMModel = "" },
			wantErr: "LLM_MODEL",
		},
		{
			name:    "non-positive llm timeout",
			mutate:  func(cfg *Config) { cfg.LLMTimeout = 0 },
			wantErr: "LLM_TIMEOUT",
		},
		{
			name:    "non-positive rate limit",
			mutate:  func(cfg *Config) { cfg.QueryRateLimit = 0 },
			wantErr: "QUERY_RATE_LIMIT",
		},
		{
			name:    "non-positive rate window",
			mutate:  func(cfg *Config) { cfg.QueryRateWindow = 0 },
			wantErr: "QUERY_RATE_WINDOW",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			cfg, err := LoadConfig()
			require.NoError(t, err)

			tt.mutate(cfg)
			err = ValidateConfig(cfg)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateConfigProduction(t *testing.T) {
	clearConfigEnv(t)
	cfg, err := LoadConfig()
	require.NoError(t, err)
	cfg.Environment = Production

	t.Run("should require a database password", func(t *testing.T) {
		cfg := *cfg
		cfg.DBPassword = ""
		cfg.DBSSLMode = "require"

		err := ValidateConfig(&cfg)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_PASSWORD")
	})

	t.Run("should reject disabled ssl", func(t *testing.T) {
		cfg := *cfg
		cfg.DBPassword = "secret"
		cfg.DBSSLMode = "disable"

		err := ValidateConfig(&cfg)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_SSL_MODE")
	})

	t.Run("should pass with password and ssl", func(t *testing.T) {
		cfg := *cfg
		cfg.DBPassword = "secret"
		cfg.DBSSLMode = "require"

		assert.NoError(t, ValidateConfig(&cfg))
	})
}

func TestGetEnvironment(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		ci       string
		expected Environment
	}{
		{name: "default is development", env: "", ci: "", expected: Development},
		{name: "explicit production", env: "production", ci: "", expected: Production},
		{name: "explicit test", env: "test", ci: "", expected: Test},
		{name: "ci wins", env: "production", ci: "true", expected: CI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			if tt.env != "" {
				t.Setenv("ENV", tt.env)
			}
			if tt.ci != "" {
				t.Setenv("CI", tt.ci)
			}

			assert.Equal(t, tt.expected, GetEnvironment())
		})
	}
}
