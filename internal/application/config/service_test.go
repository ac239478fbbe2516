package config_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	configapp "github.com/ebrahas/smartcli/internal/application/config"
	"github.com/ebrahas/smartcli/internal/domain"
	configinfra "github.com/ebrahas/smartcli/internal/infrastructure/config"
	"github.com/ebrahas/smartcli/internal/pkg/logger"
)

func newService(cfg domain.Config) (*configapp.Service, *configinfra.MemoryStore) {
	store := configinfra.NewMemoryStore(cfg)
	return &configapp.Service{Store: store, Logger: logger.NewStd(false)}, store
}

func TestUpdateMergesPartialUpdates(t *testing.T) {
	svc, _ := newService(domain.Config{})
	ctx := context.Background()

	_, err := svc.Update(ctx, domain.ConfigUpdate{Model: domain.StringPtr("m")})
	require.NoError(t, err)
	_, err = svc.Update(ctx, domain.ConfigUpdate{Timeout: domain.IntPtr(5)})
	require.NoError(t, err)

	cfg, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Config{Model: "m", Timeout: 5}, cfg)
}

func TestUpdateRejectsInvalidValues(t *testing.T) {
	svc, store := newService(domain.Config{Model: "keep", Timeout: 9})

	_, err := svc.Update(context.Background(), domain.ConfigUpdate{Timeout: domain.IntPtr(0)})
	require.Error(t, err)
	_, err = svc.Update(context.Background(), domain.ConfigUpdate{Model: domain.StringPtr(" ")})
	require.Error(t, err)

	assert.Equal(t, 0, store.Saves())
	cfg, _ := svc.Load(context.Background())
	assert.Equal(t, domain.Config{Model: "keep", Timeout: 9}, cfg)
}

func TestRequire(t *testing.T) {
	svc, _ := newService(domain.Config{Timeout: 5})
	_, err := svc.Require(context.Background())
	assert.ErrorIs(t, err, domain.ErrConfigMissing)

	svc, _ = newService(domain.Config{Model: "m"})
	cfg, err := svc.Require(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "m", cfg.Model)
}

type failingStore struct{}

func (failingStore) Load(context.Context) (domain.Config, error) {
	return domain.Config{}, errors.New("disk on fire")
}

func (failingStore) Save(context.Context, domain.Config) error { return nil }

func TestLoadWrapsStoreErrors(t *testing.T) {
	svc := &configapp.Service{Store: failingStore{}}
	_, err := svc.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config: disk on fire")
}
