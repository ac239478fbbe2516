package domain

import (
	"fmt"
	"strings"
	"time"
)

// Config mirrors ~/.config/smartcli/config.json.
type Config struct {
	Model   string `json:"model,omitempty" yaml:"model"`
	Timeout int    `json:"timeout,omitempty" yaml:"timeout"`
}

// ConfigUpdate is a partial change to Config. Nil fields are left untouched.
type ConfigUpdate struct {
	Model   *string
	Timeout *int
}

// Empty reports whether the update changes nothing.
func (u ConfigUpdate) Empty() bool {
	return u.Model == nil && u.Timeout == nil
}

// Validate rejects blank models and timeouts outside 1..MaxTimeoutSeconds.
func (u ConfigUpdate) Validate() error {
	if u.Model != nil && strings.TrimSpace(*u.Model) == "" {
		return fmt.Errorf("model name cannot be empty")
	}
	if u.Timeout != nil && *u.Timeout <= 0 {
		return fmt.Errorf("timeout must be a positive number of seconds, got %d", *u.Timeout)
	}
	if u.Timeout != nil && *u.Timeout > MaxTimeoutSeconds {
		return fmt.Errorf("timeout cannot exceed %d seconds, got %d", MaxTimeoutSeconds, *u.Timeout)
	}
	return nil
}

// Merge returns a copy of c with the non-nil fields of u applied.
func (c Config) Merge(u ConfigUpdate) Config {
	if u.Model != nil {
		c.Model = strings.TrimSpace(*u.Model)
	}
	if u.Timeout != nil {
		c.Timeout = *u.Timeout
	}
	return c
}

// HasModel reports whether a default model is configured.
func (c Config) HasModel() bool {
	return strings.TrimSpace(c.Model) != ""
}

// HasTimeout reports whether a usable timeout is configured.
func (c Config) HasTimeout() bool {
	return c.Timeout > 0
}

// TimeoutDuration returns the request timeout, falling back to
// DefaultTimeoutSeconds when none is stored. A hand-edited value above
// MaxTimeoutSeconds is clamped.
func (c Config) TimeoutDuration() time.Duration {
	if !c.HasTimeout() {
		return DefaultTimeoutSeconds * time.Second
	}
	if c.Timeout > MaxTimeoutSeconds {
		return MaxTimeoutSeconds * time.Second
	}
	return time.Duration(c.Timeout) * time.Second
}

// DefaultConfig is the configuration a fresh install starts from.
func DefaultConfig() Config {
	return Config{Timeout: DefaultTimeoutSeconds}
}

// StringPtr and IntPtr build ConfigUpdate fields inline.
func StringPtr(s string) *string { return &s }

func IntPtr(i int) *int { return &i }
