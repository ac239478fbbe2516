package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ebrahas/smartcli/internal/app"
	appconfig "github.com/ebrahas/smartcli/internal/application/config"
	"github.com/ebrahas/smartcli/internal/application/query"
	"github.com/ebrahas/smartcli/internal/domain"
	"github.com/ebrahas/smartcli/internal/infrastructure/ai"
	"github.com/ebrahas/smartcli/internal/infrastructure/config"
	"github.com/ebrahas/smartcli/internal/infrastructure/history"
	"github.com/ebrahas/smartcli/internal/infrastructure/security"
	"github.com/ebrahas/smartcli/internal/pkg/logger"
)

type fixture struct {
	container *app.Container
	store     *config.MemoryStore
	executor  *recordingExecutor
	lister    *stubLister
}

func newFixture(t *testing.T, cfg domain.Config, reply string) *fixture {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"response":%q}`, reply)
	}))
	t.Cleanup(server.Close)

	guardrail, err := security.NewGuardrail("")
	require.NoError(t, err)

	store := config.NewMemoryStore(cfg)
	exec := &recordingExecutor{}
	lister := &stubLister{}
	log := logger.New(io.Discard, false)
	hist := history.NewFileStore(filepath.Join(t.TempDir(), "history.jsonl"))

	return &fixture{
		container: &app.Container{
			ConfigService: &appconfig.Service{Store: store, Logger: log},
			QueryService: &query.Service{
				Provider:        ai.NewOllamaClient(server.URL+"/api/generate", server.Client()),
				SecurityService: guardrail,
				Executor:        exec,
				HistoryStore:    hist,
				Logger:          log,
			},
			HistoryStore: hist,
			ModelLister:  lister,
			Logger:       log,
		},
		store:    store,
		executor: exec,
		lister:   lister,
	}
}

func (f *fixture) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmdWithContainer(f.container)
	var out bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootDeclinedCommandIsNotRun(t *testing.T) {
	f := newFixture(t, domain.Config{Model: "llama3", Timeout: 5}, `{"cmd":"rm -rf /tmp/x"}`)

	out, err := f.run(t, "n\n", "remove", "the", "tmp", "dir")
	require.NoError(t, err)
	assert.Contains(t, out, "Interpreting: remove the tmp dir")
	assert.Contains(t, out, "Suggested command:\nrm -rf /tmp/x\n")
	assert.Contains(t, out, "Warning: MEDIUM risk")
	assert.Contains(t, out, confirmPrompt)
	assert.Contains(t, out, "Cancelled.")
	assert.Zero(t, f.executor.calls)
}

func TestRootApprovedCommandRuns(t *testing.T) {
	f := newFixture(t, domain.Config{Model: "llama3"}, `{"cmd":"ls -la"}`)

	_, err := f.run(t, "y\n", "list", "files")
	require.NoError(t, err)
	assert.Equal(t, 1, f.executor.calls)
	assert.Equal(t, "ls -la", f.executor.command)

	records, err := f.container.HistoryStore.Records(0, "")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "list files", records[0].Instruction)
}

func TestRootFreeTextMode(t *testing.T) {
	f := newFixture(t, domain.Config{Model: "llama3"}, "cmd:ls -la")

	out, err := f.run(t, "", "--free-text", "list", "files")
	require.NoError(t, err)
	assert.Contains(t, out, "Suggested command:\nls -la\n")
	assert.Zero(t, f.executor.calls, "EOF must not confirm")
}

func TestRootDryRun(t *testing.T) {
	f := newFixture(t, domain.Config{Model: "llama3"}, `{"cmd":"df -h"}`)

	out, err := f.run(t, "y\n", "--dry-run", "disk", "usage")
	require.NoError(t, err)
	assert.Contains(t, out, "df -h")
	assert.NotContains(t, out, confirmPrompt)
	assert.Zero(t, f.executor.calls)
}

func TestRootExecutionFailureCarriesExitCode(t *testing.T) {
	f := newFixture(t, domain.Config{Model: "llama3"}, `{"cmd":"false"}`)
	f.executor.err = &domain.Error{Kind: domain.ErrKindExecutionFailure, Message: "command exited with status 2", ExitCode: 2}

	_, err := f.run(t, "y\n", "fail")
	require.Error(t, err)
	assert.Equal(t, 2, domain.ExitCodeOf(err))
}

func TestRootSetsDefaults(t *testing.T) {
	f := newFixture(t, domain.Config{}, "")

	out, err := f.run(t, "", "--model", "codellama:latest", "-t", "30")
	require.NoError(t, err)
	assert.Contains(t, out, "Default model set to codellama:latest")
	assert.Contains(t, out, "Default timeout set to 30 seconds")

	cfg, err := f.store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Config{Model: "codellama:latest", Timeout: 30}, cfg)

	_, err = f.run(t, "", "--timeout", "15")
	require.NoError(t, err)
	cfg, _ = f.store.Load(context.Background())
	assert.Equal(t, domain.Config{Model: "codellama:latest", Timeout: 15}, cfg)
}

func TestRootRejectsInvalidTimeout(t *testing.T) {
	f := newFixture(t, domain.Config{Model: "llama3"}, "")

	for _, value := range []string{"0", "-5", "10000000000"} {
		_, err := f.run(t, "", "--timeout", value)
		require.Error(t, err, "timeout %s", value)
	}
	assert.Zero(t, f.store.Saves())
}

func TestRootShowModels(t *testing.T) {
	f := newFixture(t, domain.Config{}, "")

	out, err := f.run(t, "", "-s")
	require.NoError(t, err)
	assert.True(t, f.lister.called)
	assert.Contains(t, out, "llama3:latest")
}

func TestRootSetupMenuSetsModel(t *testing.T) {
	f := newFixture(t, domain.Config{}, "")

	out, err := f.run(t, "1\ncodellama:latest\n", "list", "files")
	require.NoError(t, err)
	assert.Contains(t, out, "[1] Set a default model")
	assert.Contains(t, out, "Default model set to codellama:latest")
	assert.Zero(t, f.executor.calls)

	cfg, _ := f.store.Load(context.Background())
	assert.Equal(t, "codellama:latest", cfg.Model)
}

func TestRootSetupMenuShowsModels(t *testing.T) {
	f := newFixture(t, domain.Config{}, "")

	_, err := f.run(t, "2\n")
	require.NoError(t, err)
	assert.True(t, f.lister.called)
}

func TestRootSetupMenuCancel(t *testing.T) {
	for _, stdin := range []string{"3\n", ""} {
		f := newFixture(t, domain.Config{}, "")

		out, err := f.run(t, stdin, "list", "files")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrConfigMissing))
		assert.Contains(t, out, "Exiting...")
		assert.Zero(t, f.store.Saves())
	}
}

func TestRootWithoutQueryPrintsUsage(t *testing.T) {
	f := newFixture(t, domain.Config{Model: "llama3"}, "")

	out, err := f.run(t, "")
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Zero(t, f.executor.calls)
}

type recordingExecutor struct {
	calls   int
	command string
	err     error
}

func (r *recordingExecutor) Execute(_ context.Context, command string) (domain.ExecutionResult, error) {
	r.calls++
	r.command = command
	result := domain.ExecutionResult{Ran: true}
	if r.err != nil {
		result.ExitCode = domain.ExitCodeOf(r.err)
		result.Err = r.err
	}
	return result, r.err
}

type stubLister struct {
	called bool
}

func (s *stubLister) Available() bool { return true }

func (s *stubLister) List(_ context.Context, out io.Writer) error {
	s.called = true
	fmt.Fprintln(out, "NAME            ID      SIZE")
	fmt.Fprintln(out, "llama3:latest   abc123  4.7 GB")
	return nil
}
