package app

import (
	"context"
	"net/http"

	appconfig "github.com/ebrahas/smartcli/internal/application/config"
	"github.com/ebrahas/smartcli/internal/application/doctor"
	"github.com/ebrahas/smartcli/internal/application/query"
	"github.com/ebrahas/smartcli/internal/infrastructure/ai"
	"github.com/ebrahas/smartcli/internal/infrastructure/config"
	"github.com/ebrahas/smartcli/internal/infrastructure/executor"
	"github.com/ebrahas/smartcli/internal/infrastructure/history"
	"github.com/ebrahas/smartcli/internal/infrastructure/security"
	"github.com/ebrahas/smartcli/internal/pkg/logger"
	"github.com/ebrahas/smartcli/internal/ports"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	ConfigService *appconfig.Service
	ConfigPath    string
	QueryService  *query.Service
	DoctorService *doctor.Service
	HistoryStore  ports.HistoryRepository
	ModelLister   ports.ModelLister
	Prober        ports.HealthProber
	Logger        *logger.StdLogger
}

// BuildContainer constructs the dependency graph without touching the disk
// beyond reading rules; the history database opens on first use. The
// confirmation prompter is left for the CLI layer to attach since it owns
// the terminal.
func BuildContainer(_ context.Context, verbose bool) (*Container, error) {
	log := logger.NewStd(verbose)

	cfgStore := config.NewFileStore("")
	cfgService := &appconfig.Service{Store: cfgStore, Logger: log}

	client := ai.NewOllamaClient(ai.ResolveEndpoint(), &http.Client{})
	historyPath := history.DefaultPath()
	historyStore := history.NewSQLiteStore(historyPath)
	lister := executor.NewOllamaModelLister("")

	guardrail, err := security.NewGuardrail(security.DefaultRulesPath())
	if err != nil {
		log.Warn("custom risk rules unusable, using defaults", map[string]interface{}{"error": err.Error()})
		guardrail, err = security.NewGuardrail("")
		if err != nil {
			return nil, err
		}
	}

	queryService := &query.Service{
		Provider:        client,
		SecurityService: guardrail,
		Executor:        executor.NewLocalExecutor(""),
		HistoryStore:    historyStore,
		Logger:          log,
	}

	doctorService := &doctor.Service{
		ConfigStore:     cfgStore,
		ConfigPath:      cfgStore.Path(),
		Prober:          client,
		ModelLister:     lister,
		SecurityService: guardrail,
		HistoryStore:    historyStore,
	}

	log.Debug("container ready", map[string]interface{}{
		"endpoint": client.Endpoint(),
		"config":   cfgStore.Path(),
		"history":  historyPath,
	})

	return &Container{
		ConfigService: cfgService,
		ConfigPath:    cfgStore.Path(),
		QueryService:  queryService,
		DoctorService: doctorService,
		HistoryStore:  historyStore,
		ModelLister:   lister,
		Prober:        client,
		Logger:        log,
	}, nil
}
