package filesystem

import (
	"os"
	"path/filepath"
)

// UserHomeDir returns the current user's home directory.
// If the home directory cannot be determined, it returns "." as a fallback.
func UserHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

// ConfigDir returns the per-user smartcli directory (~/.config/smartcli).
func ConfigDir() string {
	return filepath.Join(UserHomeDir(), ".config", "smartcli")
}
