//go:build !windows

package executor

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ebrahas/smartcli/internal/domain"
)

func newBufferedExecutor() (*LocalExecutor, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	e := NewLocalExecutor("/bin/sh")
	e.Stdin = nil
	e.Stdout = &stdout
	e.Stderr = &stderr
	return e, &stdout, &stderr
}

func TestExecuteSuccess(t *testing.T) {
	e, stdout, _ := newBufferedExecutor()

	result, err := e.Execute(context.Background(), "echo hello | tr a-z A-Z")
	require.NoError(t, err)
	assert.True(t, result.Ran)
	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, "HELLO\n", stdout.String())
}

func TestExecuteNonZeroExitIsSurfaced(t *testing.T) {
	e, _, stderr := newBufferedExecutor()

	result, err := e.Execute(context.Background(), "echo nope >&2; exit 3")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExecutionFailure)
	assert.Equal(t, 3, result.ExitCode)
	assert.Equal(t, 3, domain.ExitCodeOf(err))
	assert.Equal(t, "nope\n", stderr.String())
}

func TestExecuteMissingShell(t *testing.T) {
	e := NewLocalExecutor("/definitely/not/a/shell")
	e.Stdout, e.Stderr = &bytes.Buffer{}, &bytes.Buffer{}

	result, err := e.Execute(context.Background(), "true")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExecutionFailure)
	assert.False(t, result.Ran)
}

func TestModelListerMissingBinary(t *testing.T) {
	lister := NewOllamaModelLister("smartcli-test-no-such-binary")
	assert.False(t, lister.Available())
	assert.Error(t, lister.List(context.Background(), &bytes.Buffer{}))
}
