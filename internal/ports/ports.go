// Package ports defines the interfaces between the smartcli core and its
// adapters.
//
// The application layer (query, config, doctor services) depends only on
// these interfaces; concrete HTTP, filesystem, SQLite and shell adapters live
// under internal/infrastructure and are wired together in internal/app.
package ports

import (
	"context"
	"io"

	"github.com/ebrahas/smartcli/internal/domain"
)

// ConfigStore reads and writes the persisted two-key configuration.
// A missing backing file must load as an empty Config, not an error.
type ConfigStore interface {
	Load(context.Context) (domain.Config, error)
	Save(context.Context, domain.Config) error
}

// Provider turns an instruction into a suggested command via an inference
// backend.
type Provider interface {
	Name() string
	Generate(context.Context, ProviderRequest) (ProviderResponse, error)
}

// ProviderRequest contains all data needed to ask the backend for a command.
type ProviderRequest struct {
	Model       string
	Instruction string
	Structured  bool
}

// ProviderResponse holds the normalized command and the raw payload text.
type ProviderResponse struct {
	Command string
	Raw     string
}

// HealthProber checks inference backend reachability for diagnostics.
type HealthProber interface {
	Ping(context.Context) error
	InstalledModels(context.Context) ([]string, error)
}

// SecurityService evaluates commands against advisory risk rules.
type SecurityService interface {
	Evaluate(command string) (domain.RiskAssessment, error)
}

// CommandExecutor runs shell commands in the operator's shell.
type CommandExecutor interface {
	Execute(ctx context.Context, command string) (domain.ExecutionResult, error)
}

// ModelLister delegates model listing to the inference server's own CLI.
type ModelLister interface {
	List(ctx context.Context, out io.Writer) error
	Available() bool
}

// ConfirmationPrompter asks the operator whether to run a command.
type ConfirmationPrompter interface {
	Confirm(command string) (bool, error)
}

// HistoryRepository persists suggestions and their outcomes.
type HistoryRepository interface {
	Save(domain.HistoryRecord) error
	Records(limit int, search string) ([]domain.HistoryRecord, error)
	Clear() error
	Path() string
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
