package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the configuration is usable in the current
// environment. Development and test fall back to defaults, so only the
// fields without a sane default are enforced there; production enforces
// everything.
func ValidateConfig(cfg *Config) error {
	var errs []string

	if cfg.JWTSecret == "" && IsProduction() {
		errs = append(errs, "JWT_SECRET must be set")
	}

	if IsProduction() {
		checks := map[string]string{
			"POSTGRES_HOST":     cfg.DBHost,
			"POSTGRES_USER":     cfg.DBUser,
			"POSTGRES_PASSWORD": cfg.DBPassword,
			"POSTGRES_DB":       cfg.DBName,
		}
		for name, value := range checks {
			if value == "" {
				errs = append(errs, fmt.Sprintf("%s must be set", name))
			}
		}
		if cfg.DBSSLMode == "disable" {
			errs = append(errs, "DB_SSL_MODE must not be disable in production")
		}
	}

	if cfg.ServerPort == "" {
		errs = append(errs, "SERVER_PORT must be set")
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return nil
}
