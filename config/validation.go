package config

import (
	"fmt"
	"strings"
)

// ValidateConfig checks that the configuration is usable in the current
// environment. JWT is always required; DB credentials only in production,
// where defaults must not leak through.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.JWTSecret == "" {
		errors = append(errors, "JWT_SECRET is required")
	}

	if IsProduction() {
		if cfg.DBPassword == "" {
			errors = append(errors, "DB_PASSWORD is required in production")
		}
		if cfg.DBSSLMode == "disable" {
			errors = append(errors, "DB_SSL_MODE must not be 'disable' in production")
		}
		if cfg.RedisPassword == "" && cfg.RedisURL == "" {
			errors = append(errors, "REDIS_PASSWORD or REDIS_URL is required in production")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "; "))
	}

	return nil
}
