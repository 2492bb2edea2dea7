package config

import (
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerHost string `env:"SERVER_HOST,default=0.0.0.0"`
	ServerPort string `env:"SERVER_PORT,default=8080"`

	// Database configuration
	DBHost     string `env:"DB_HOST,default=localhost"`
	DBPort     string `env:"DB_PORT,default=5432"`
	DBUser     string `env:"DB_USER,default=postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME,default=nutriquery"`
	DBSSLMode  string `env:"DB_SSL_MODE,default=disable"`

	// Redis configuration. An empty host disables the plan store and
	// rate limiting; the service still answers queries without it.
	RedisHost     string `env:"REDIS_HOST"`
	RedisPort     string `env:"REDIS_PORT,default=6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB,default=0"`

	// Language model endpoint (OpenAI-compatible chat completions).
	// The defaults point at a local Ollama server; set LLM_API_URL and
	// LLM_API_KEY for a hosted API instead.
	LLMAPIURL  string        `env:"LLM_API_URL,default=http://localhost:11434/v1/chat/completions"`
	LLMModel   string        `env:"LLM_MODEL,default=llama3.2"`
	LLMAPIKey  string        `env:"LLM_API_KEY"`
	LLMTimeout time.Duration `env:"LLM_TIMEOUT,default=30s"`

	// Rate limiting for POST /api/v1/query, applied per client IP.
	QueryRateLimit  int           `env:"QUERY_RATE_LIMIT,default=20"`
	QueryRateWindow time.Duration `env:"QUERY_RATE_WINDOW,default=1m"`

	LogLevel string `env:"LOG_LEVEL,default=info"`

	// Environment is detected from ENV / CI, not decoded directly.
	Environment Environment
}

// LoadConfig reads configuration from the environment and applies the
// *_FILE secret-file fallbacks used in container deployments.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode environment: %w", err)
	}
	cfg.Environment = GetEnvironment()

	// Docker secrets: FOO_FILE names a file whose contents stand in for
	// FOO when FOO itself is unset.
	if cfg.DBPassword == "" {
		v, err := readSecretFile(os.Getenv("DB_PASSWORD_FILE"))
		if err != nil {
			return nil, err
		}
		cfg.DBPassword = v
	}
	if cfg.LLMAPIKey == "" {
		v, err := readSecretFile(os.Getenv("LLM_API_KEY_FILE"))
		if err != nil {
			return nil, err
		}
		cfg.LLMAPIKey = v
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func readSecretFile(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read secret file %s: %w", path, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// RedisEnabled reports whether a Redis endpoint was configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisHost != ""
}

// RedisAddr returns the host:port address of the configured Redis.
func (c *Config) RedisAddr() string {
	return net.JoinHostPort(c.RedisHost, c.RedisPort)
}

// DSN returns the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// ServerAddr returns the host:port address the HTTP server listens on.
func (c *Config) ServerAddr() string {
	return net.JoinHostPort(c.ServerHost, c.ServerPort)
}
