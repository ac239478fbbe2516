package query

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	appconfig "github.com/ebrahas/smartcli/internal/application/config"
	"github.com/ebrahas/smartcli/internal/domain"
	"github.com/ebrahas/smartcli/internal/ports"
)

// Service orchestrates the suggestion lifecycle: synthesize, confirm, run.
type Service struct {
	Provider        ports.Provider
	SecurityService ports.SecurityService
	Executor        ports.CommandExecutor
	Prompter        ports.ConfirmationPrompter
	HistoryStore    ports.HistoryRepository
	Logger          ports.Logger
}

// Synthesize asks the provider for a single command answering req.
// The request is bounded by cfg's timeout.
func (s *Service) Synthesize(ctx context.Context, cfg domain.Config, req domain.QueryRequest) (domain.Suggestion, error) {
	if s.Provider == nil || s.SecurityService == nil || s.Logger == nil {
		return domain.Suggestion{}, errors.New("query.Service dependencies not satisfied")
	}
	if err := appconfig.Require(cfg); err != nil {
		return domain.Suggestion{}, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	timeout := cfg.TimeoutDuration()
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	instruction := strings.TrimSpace(req.Instruction)
	s.Logger.Debug("calling provider", map[string]interface{}{
		"provider":   s.Provider.Name(),
		"model":      cfg.Model,
		"timeout":    timeout.String(),
		"structured": !req.FreeText,
	})

	resp, err := s.Provider.Generate(ctx, ports.ProviderRequest{
		Model:       cfg.Model,
		Instruction: instruction,
		Structured:  !req.FreeText,
	})
	if err != nil {
		return domain.Suggestion{}, err
	}

	risk, err := s.SecurityService.Evaluate(resp.Command)
	if err != nil {
		return domain.Suggestion{}, fmt.Errorf("security evaluate: %w", err)
	}
	if risk.Risky() {
		s.Logger.Debug("risk rules matched", map[string]interface{}{
			"level": string(risk.Level),
			"rules": len(risk.MatchedRules),
		})
	}

	return domain.Suggestion{
		Instruction: instruction,
		Command:     resp.Command,
		Raw:         resp.Raw,
		Model:       cfg.Model,
		Structured:  !req.FreeText,
		Risk:        risk,
	}, nil
}

// ConfirmAndExecute asks the operator to approve suggestion and runs it only
// on an explicit yes. Anything else is a cancellation with no execution.
func (s *Service) ConfirmAndExecute(ctx context.Context, suggestion domain.Suggestion) (domain.ExecutionResult, error) {
	if s.Executor == nil || s.Prompter == nil {
		return domain.ExecutionResult{}, errors.New("query.Service dependencies not satisfied")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	approved, err := s.Prompter.Confirm(suggestion.Command)
	if err != nil {
		return domain.ExecutionResult{}, fmt.Errorf("confirmation: %w", err)
	}
	if !approved {
		result := domain.ExecutionResult{Cancelled: true}
		s.record(suggestion, result)
		return result, nil
	}

	result, err := s.Executor.Execute(ctx, suggestion.Command)
	s.record(suggestion, result)
	if err != nil {
		return result, err
	}
	return result, nil
}

// Record stores a suggestion that was shown but never offered for execution.
func (s *Service) Record(suggestion domain.Suggestion) {
	s.record(suggestion, domain.ExecutionResult{})
}

func (s *Service) record(suggestion domain.Suggestion, result domain.ExecutionResult) {
	if s.HistoryStore == nil {
		return
	}
	rec := domain.HistoryRecord{
		Timestamp:       time.Now(),
		Instruction:     suggestion.Instruction,
		Command:         suggestion.Command,
		Model:           suggestion.Model,
		Executed:        result.Ran,
		Success:         result.Ran && result.ExitCode == 0 && result.Err == nil,
		ExitCode:        result.ExitCode,
		RiskLevel:       suggestion.Risk.Level,
		ExecutionTimeMS: result.DurationMS,
	}
	if err := s.HistoryStore.Save(rec); err != nil && s.Logger != nil {
		s.Logger.Warn("history save failed", map[string]interface{}{"error": err.Error()})
	}
}
