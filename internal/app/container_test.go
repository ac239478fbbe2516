package app

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildContainerLeavesDiskUntouched(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	container, err := BuildContainer(context.Background(), false)
	require.NoError(t, err)
	require.NotNil(t, container.QueryService)
	require.NotNil(t, container.DoctorService)

	entries, err := os.ReadDir(home)
	require.NoError(t, err)
	assert.Empty(t, entries, "building the container must not create the config directory")
}
