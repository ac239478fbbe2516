package config

import (
	"fmt"
	"strings"

	"github.com/ebrahas/smartcli/internal/domain"
)

// Validate ensures a stored config can be written back.
// An unset model is allowed; a present but blank one is not.
func Validate(cfg domain.Config) error {
	if cfg.Model != "" && strings.TrimSpace(cfg.Model) == "" {
		return fmt.Errorf("model must not be blank")
	}
	if strings.ContainsAny(cfg.Model, "\r\n") {
		return fmt.Errorf("model name must be a single line")
	}
	if cfg.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0, got %d", cfg.Timeout)
	}
	return nil
}

// Require ensures cfg can drive a synthesis.
func Require(cfg domain.Config) error {
	if !cfg.HasModel() {
		return domain.ErrConfigMissing
	}
	return nil
}
