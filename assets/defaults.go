package assets

import (
	_ "embed"
)

// DefaultGuardrailYAML contains the embedded default advisory risk rules.
//
//go:embed defaults/guardrail.yaml
var DefaultGuardrailYAML []byte
