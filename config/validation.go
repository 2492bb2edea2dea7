package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks cross-field constraints plus the stricter
// requirements of production deployments.
func ValidateConfig(cfg *Config) error {
	var problems []string

	if cfg.LLMAPIURL == "" {
		problems = append(problems, ValidationError{"LLM_API_URL", "must not be empty"}.Error())
	}
	if cfg.LLMModel == "" {
		problems = append(problems, ValidationError{"LLM_MODEL", "must not be empty"}.Error())
	}
	if cfg.LLMTimeout <= 0 {
		problems = append(problems, ValidationError{"LLM_TIMEOUT", "must be positive"}.Error())
	}
	if cfg.QueryRateLimit <= 0 {
		problems = append(problems, ValidationError{"QUERY_RATE_LIMIT", "must be positive"}.Error())
	}
	if cfg.QueryRateWindow <= 0 {
		problems = append(problems, ValidationError{"QUERY_RATE_WINDOW", "must be positive"}.Error())
	}

	if cfg.Environment == Production {
		if cfg.DBPassword == "" {
			problems = append(problems, ValidationError{"DB_PASSWORD", "required in production (set it or DB_PASSWORD_FILE)"}.Error())
		}
		if cfg.DBSSLMode == "disable" {
			problems = append(problems, ValidationError{"DB_SSL_MODE", "must not be disable in production"}.Error())
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(problems, "\n"))
	}
	return nil
}
