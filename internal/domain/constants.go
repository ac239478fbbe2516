package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
)

// Inference endpoint constants
const (
	// DefaultEndpoint is the Ollama generate endpoint queried for suggestions
	DefaultEndpoint = "http://localhost:11434/api/generate"
	// DefaultTimeoutSeconds applies when no timeout is stored
	DefaultTimeoutSeconds = 10
	// MaxTimeoutSeconds caps the stored timeout at one day
	MaxTimeoutSeconds = 24 * 60 * 60
	// DefaultProbeTimeout bounds the doctor reachability checks
	DefaultProbeTimeout = 3 * time.Second
)

// Environment variables
const (
	EnvConfigPath = "SMARTCLI_CONFIG"
	EnvEndpoint   = "SMARTCLI_ENDPOINT"
	EnvDebug      = "SMARTCLI_DEBUG"
)

// History constants
const (
	// DefaultHistoryLimit is the default number of history records to display
	DefaultHistoryLimit = 20
	// DefaultHistorySearchLimit is the default number of search results to return
	DefaultHistorySearchLimit = 50
)

// Time formats
const (
	// TimestampFormat is the standard timestamp format
	TimestampFormat = time.RFC3339
)
