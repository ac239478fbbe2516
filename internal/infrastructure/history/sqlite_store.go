package history

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ebrahas/smartcli/internal/domain"
	"github.com/ebrahas/smartcli/internal/pkg/filesystem"
	"github.com/ebrahas/smartcli/internal/ports"
)

// SQLiteStore persists history in a SQLite database, falling back to a JSONL
// file next to it when the database cannot be opened. Nothing touches the
// disk until the first Save, Records or Clear.
type SQLiteStore struct {
	db       *sql.DB
	path     string
	fallback *FileStore
	mu       sync.Mutex
	openOnce sync.Once
}

// DefaultPath is ~/.config/smartcli/history.db.
func DefaultPath() string {
	return filepath.Join(filesystem.ConfigDir(), "history.db")
}

// NewSQLiteStore returns a store for the database at path.
func NewSQLiteStore(path string) *SQLiteStore {
	if path == "" {
		path = DefaultPath()
	}
	return &SQLiteStore{
		path:     path,
		fallback: NewFileStore(strings.TrimSuffix(path, filepath.Ext(path)) + ".jsonl"),
	}
}

// open creates the directory and schema once. On failure db stays nil and
// every call goes to the JSONL fallback.
func (s *SQLiteStore) open() *sql.DB {
	s.openOnce.Do(func() {
		_ = os.MkdirAll(filepath.Dir(s.path), domain.DirectoryPermissions)
		db, err := sql.Open("sqlite", s.path)
		if err != nil {
			return
		}
		if err := initSchema(db); err != nil {
			_ = db.Close()
			return
		}
		s.db = db
	})
	return s.db
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS suggestions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT,
		instruction TEXT,
		command TEXT,
		model TEXT,
		executed INTEGER,
		success INTEGER,
		exit_code INTEGER,
		risk_level TEXT,
		execution_time_ms INTEGER
	);`)
	return err
}

// Save inserts a new record.
func (s *SQLiteStore) Save(record domain.HistoryRecord) error {
	db := s.open()
	if db == nil {
		return s.fallback.Save(record)
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := db.Exec(`INSERT INTO suggestions
		(timestamp, instruction, command, model, executed, success, exit_code, risk_level, execution_time_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.Timestamp.UTC().Format(domain.TimestampFormat),
		record.Instruction,
		record.Command,
		record.Model,
		boolToInt(record.Executed),
		boolToInt(record.Success),
		record.ExitCode,
		string(record.RiskLevel),
		record.ExecutionTimeMS,
	)
	return err
}

// Records returns history entries, newest first (limit/search optional).
func (s *SQLiteStore) Records(limit int, search string) ([]domain.HistoryRecord, error) {
	db := s.open()
	if db == nil {
		return s.fallback.Records(limit, search)
	}
	builder := strings.Builder{}
	builder.WriteString("SELECT timestamp, instruction, command, model, executed, success, exit_code, risk_level, execution_time_ms FROM suggestions")
	var args []interface{}
	if search != "" {
		builder.WriteString(" WHERE instruction LIKE ? OR command LIKE ?")
		args = append(args, "%"+search+"%", "%"+search+"%")
	}
	builder.WriteString(" ORDER BY id DESC")
	if limit > 0 {
		builder.WriteString(" LIMIT ?")
		args = append(args, limit)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := db.Query(builder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.HistoryRecord
	for rows.Next() {
		var rec domain.HistoryRecord
		var ts, risk string
		var executed, success int
		if err := rows.Scan(&ts, &rec.Instruction, &rec.Command, &rec.Model, &executed, &success, &rec.ExitCode, &risk, &rec.ExecutionTimeMS); err != nil {
			return nil, err
		}
		if t, err := time.Parse(domain.TimestampFormat, ts); err == nil {
			rec.Timestamp = t
		}
		rec.RiskLevel = domain.RiskLevel(risk)
		rec.Executed = executed == 1
		rec.Success = success == 1
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Clear deletes all history entries.
func (s *SQLiteStore) Clear() error {
	db := s.open()
	if db == nil {
		return s.fallback.Clear()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := db.Exec("DELETE FROM suggestions")
	return err
}

// Path returns the backing store location. It opens the database so a
// broken one reports the fallback file instead.
func (s *SQLiteStore) Path() string {
	if s.open() == nil {
		return s.fallback.Path()
	}
	return s.path
}

// Close releases the database handle, if one was opened.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ ports.HistoryRepository = (*SQLiteStore)(nil)
