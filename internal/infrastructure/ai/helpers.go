package ai

import (
	"os"

	"github.com/ebrahas/smartcli/internal/domain"
)

// ResolveEndpoint returns the generate URL, honoring SMARTCLI_ENDPOINT.
func ResolveEndpoint() string {
	return valueOrDefault(os.Getenv(domain.EnvEndpoint), domain.DefaultEndpoint)
}

func valueOrDefault(value string, def string) string {
	if value == "" {
		return def
	}
	return value
}
