package history

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ebrahas/smartcli/internal/domain"
	"github.com/ebrahas/smartcli/internal/ports"
)

func exerciseStore(t *testing.T, store ports.HistoryRepository) {
	t.Helper()
	base := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, store.Save(domain.HistoryRecord{Timestamp: base, Instruction: "list files", Command: "ls -la", Model: "m", Executed: true, Success: true}))
	require.NoError(t, store.Save(domain.HistoryRecord{Timestamp: base.Add(time.Minute), Instruction: "disk usage", Command: "df -h", Model: "m"}))
	require.NoError(t, store.Save(domain.HistoryRecord{Timestamp: base.Add(2 * time.Minute), Instruction: "remove tmp", Command: "rm -rf /tmp/x", Model: "m", Executed: true, ExitCode: 1, RiskLevel: domain.RiskMedium}))

	all, err := store.Records(0, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "rm -rf /tmp/x", all[0].Command, "newest first")
	assert.Equal(t, domain.RiskMedium, all[0].RiskLevel)
	assert.Equal(t, 1, all[0].ExitCode)
	assert.True(t, all[2].Success)
	assert.True(t, all[2].Timestamp.Equal(base))

	limited, err := store.Records(2, "")
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	found, err := store.Records(0, "disk")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "df -h", found[0].Command)

	require.NoError(t, store.Clear())
	empty, err := store.Records(0, "")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestSQLiteStore(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"))
	t.Cleanup(func() { _ = store.Close() })
	exerciseStore(t, store)
}

func TestSQLiteStoreOpensOnFirstUse(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "smartcli")
	path := filepath.Join(dir, "history.db")

	store := NewSQLiteStore(path)
	t.Cleanup(func() { _ = store.Close() })
	_, err := os.Stat(dir)
	require.True(t, errors.Is(err, fs.ErrNotExist), "constructor must not create %s", dir)

	require.NoError(t, store.Save(domain.HistoryRecord{Instruction: "list files", Command: "ls"}))
	_, err = os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, path, store.Path())
}

func TestSQLiteStoreCloseWithoutUse(t *testing.T) {
	dir := t.TempDir()
	store := NewSQLiteStore(filepath.Join(dir, "history.db"))
	require.NoError(t, store.Close())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFileStore(t *testing.T) {
	exerciseStore(t, NewFileStore(filepath.Join(t.TempDir(), "history.jsonl")))
}

func TestFileStoreMissingFile(t *testing.T) {
	records, err := NewFileStore(filepath.Join(t.TempDir(), "none.jsonl")).Records(10, "")
	require.NoError(t, err)
	assert.Nil(t, records)
}
