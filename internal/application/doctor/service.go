package doctor

import (
	"context"
	"fmt"
	"strings"

	"github.com/ebrahas/smartcli/internal/domain"
	"github.com/ebrahas/smartcli/internal/ports"
)

// Service runs environment diagnostics.
type Service struct {
	ConfigStore     ports.ConfigStore
	ConfigPath      string
	Prober          ports.HealthProber
	ModelLister     ports.ModelLister
	SecurityService ports.SecurityService
	HistoryStore    ports.HistoryRepository
}

// Run executes checks and returns a report. Only a config load failure
// aborts the run; everything else is reported as a check.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigStore.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, configCheck(cfg, s.ConfigPath))

	var installed []string
	if s.Prober != nil {
		probeCtx, cancel := context.WithTimeout(ctx, domain.DefaultProbeTimeout)
		err = s.Prober.Ping(probeCtx)
		if err == nil {
			installed, err = s.Prober.InstalledModels(probeCtx)
		}
		cancel()
		if err != nil {
			checks = append(checks, fail("Ollama server", err.Error()))
		} else {
			checks = append(checks, ok("Ollama server", fmt.Sprintf("reachable, %d model(s) installed", len(installed))))
			checks = append(checks, modelCheck(cfg, installed))
		}
	}

	if s.ModelLister != nil {
		if s.ModelLister.Available() {
			checks = append(checks, ok("ollama binary", "found on PATH"))
		} else {
			checks = append(checks, warn("ollama binary", "not found on PATH; --show-models unavailable"))
		}
	}

	if s.SecurityService != nil {
		if _, err := s.SecurityService.Evaluate("ls"); err != nil {
			checks = append(checks, fail("Risk rules", err.Error()))
		} else {
			checks = append(checks, ok("Risk rules", "rules loaded"))
		}
	} else {
		checks = append(checks, warn("Risk rules", "security service not initialized"))
	}

	if s.HistoryStore != nil {
		if _, err := s.HistoryStore.Records(1, ""); err != nil {
			checks = append(checks, warn("History", err.Error()))
		} else {
			checks = append(checks, ok("History", s.HistoryStore.Path()))
		}
	}

	return domain.HealthReport{Checks: checks}, nil
}

func configCheck(cfg domain.Config, path string) domain.HealthCheck {
	if !cfg.HasModel() {
		return warn("Config file", fmt.Sprintf("no model configured in %s", path))
	}
	timeout := "default"
	if cfg.HasTimeout() {
		timeout = fmt.Sprintf("%ds", cfg.Timeout)
	}
	return ok("Config file", fmt.Sprintf("model %s, timeout %s", cfg.Model, timeout))
}

func modelCheck(cfg domain.Config, installed []string) domain.HealthCheck {
	if !cfg.HasModel() {
		return warn("Model", "no model configured")
	}
	for _, name := range installed {
		if name == cfg.Model || strings.TrimSuffix(name, ":latest") == cfg.Model {
			return ok("Model", cfg.Model+" installed")
		}
	}
	return warn("Model", fmt.Sprintf("%s not installed; run `ollama pull %s`", cfg.Model, cfg.Model))
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
