package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ebrahas/smartcli/internal/domain"
	"github.com/ebrahas/smartcli/internal/pkg/filesystem"
	"github.com/ebrahas/smartcli/internal/ports"
)

// FileStore persists configuration as JSON at ~/.config/smartcli/config.json
// (overridable via SMARTCLI_CONFIG).
type FileStore struct {
	overridePath string
}

// NewFileStore builds a new store. An empty path resolves the default location.
func NewFileStore(path string) *FileStore {
	return &FileStore{overridePath: path}
}

// Load implements ports.ConfigStore. A missing file is an empty Config.
func (s *FileStore) Load(context.Context) (domain.Config, error) {
	path := s.Path()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Config{}, nil
		}
		return domain.Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return domain.Config{}, nil
	}

	var cfg domain.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save implements ports.ConfigStore.
func (s *FileStore) Save(_ context.Context, cfg domain.Config) error {
	path := s.Path()
	// best effort; WriteFile reports the real problem if the directory is missing
	_ = os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions)

	raw, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(raw, '\n'), domain.SecureFilePermissions); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// Path returns the resolved config file location.
func (s *FileStore) Path() string {
	if s.overridePath != "" {
		return expandPath(s.overridePath)
	}
	if custom := os.Getenv(domain.EnvConfigPath); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(filesystem.ConfigDir(), "config.json")
}

func expandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(filesystem.UserHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

var _ ports.ConfigStore = (*FileStore)(nil)
