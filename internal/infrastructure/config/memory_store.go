package config

import (
	"context"
	"sync"

	"github.com/ebrahas/smartcli/internal/domain"
	"github.com/ebrahas/smartcli/internal/ports"
)

// MemoryStore keeps configuration in memory. Used by tests and dry runs.
type MemoryStore struct {
	mu    sync.Mutex
	cfg   domain.Config
	saves int
}

// NewMemoryStore returns a store seeded with cfg.
func NewMemoryStore(cfg domain.Config) *MemoryStore {
	return &MemoryStore{cfg: cfg}
}

func (m *MemoryStore) Load(context.Context) (domain.Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cfg, nil
}

func (m *MemoryStore) Save(_ context.Context, cfg domain.Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cfg = cfg
	m.saves++
	return nil
}

// Saves reports how many times Save was called.
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

var _ ports.ConfigStore = (*MemoryStore)(nil)
