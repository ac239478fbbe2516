package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/ebrahas/smartcli/internal/domain"
	"github.com/ebrahas/smartcli/internal/ports"
)

// Service reads and merges the persisted configuration.
type Service struct {
	Store  ports.ConfigStore
	Logger ports.Logger
}

// Load returns the stored configuration. A missing file is an empty config.
func (s *Service) Load(ctx context.Context) (domain.Config, error) {
	if s.Store == nil {
		return domain.Config{}, errors.New("config.Service dependencies not satisfied")
	}
	cfg, err := s.Store.Load(ctx)
	if err != nil {
		return domain.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// Update merges a partial update into the stored configuration and writes it.
func (s *Service) Update(ctx context.Context, update domain.ConfigUpdate) (domain.Config, error) {
	if err := update.Validate(); err != nil {
		return domain.Config{}, err
	}

	current, err := s.Load(ctx)
	if err != nil {
		return domain.Config{}, err
	}

	merged := current.Merge(update)
	if err := Validate(merged); err != nil {
		return domain.Config{}, fmt.Errorf("validation failed: %w", err)
	}
	if err := s.Store.Save(ctx, merged); err != nil {
		return domain.Config{}, fmt.Errorf("save config: %w", err)
	}

	if s.Logger != nil {
		s.Logger.Debug("config updated", map[string]interface{}{
			"model":   merged.Model,
			"timeout": merged.Timeout,
		})
	}
	return merged, nil
}

// Require loads the configuration and fails with ErrConfigMissing when no
// model is set. A missing timeout is not an error; the default applies.
func (s *Service) Require(ctx context.Context) (domain.Config, error) {
	cfg, err := s.Load(ctx)
	if err != nil {
		return domain.Config{}, err
	}
	if err := Require(cfg); err != nil {
		return domain.Config{}, err
	}
	if !cfg.HasTimeout() && s.Logger != nil {
		s.Logger.Debug("no timeout configured, using default", map[string]interface{}{
			"timeout_seconds": domain.DefaultTimeoutSeconds,
		})
	}
	return cfg, nil
}
