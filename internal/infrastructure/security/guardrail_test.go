package security

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ebrahas/smartcli/internal/domain"
)

func TestGuardrailFlagsCriticalCommands(t *testing.T) {
	guardrail, err := NewGuardrail("")
	if err != nil {
		t.Fatalf("NewGuardrail error: %v", err)
	}

	for _, command := range []string{"rm -rf /", "sudo rm -fr / --no-preserve-root", "mkfs.ext4 /dev/sda1", "dd if=/dev/zero of=/dev/sda"} {
		result, err := guardrail.Evaluate(command)
		if err != nil {
			t.Fatalf("Evaluate error: %v", err)
		}
		if result.Level != domain.RiskCritical {
			t.Fatalf("expected critical for %q, got %+v", command, result)
		}
	}
}

func TestGuardrailAllowsSafeCommand(t *testing.T) {
	guardrail, err := NewGuardrail("")
	if err != nil {
		t.Fatalf("NewGuardrail error: %v", err)
	}

	result, err := guardrail.Evaluate("ls -la")
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if result.Level != domain.RiskSafe || result.Risky() {
		t.Fatalf("expected safe, got %+v", result)
	}
}

func TestGuardrailScopedDelete(t *testing.T) {
	guardrail, err := NewGuardrail("")
	if err != nil {
		t.Fatalf("NewGuardrail error: %v", err)
	}
	result, err := guardrail.Evaluate("rm -rf /tmp/x")
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if result.Level != domain.RiskMedium {
		t.Fatalf("expected medium for scoped forced delete, got %+v", result)
	}
	if len(result.Reasons) == 0 {
		t.Fatal("expected a reason")
	}
}

func TestGuardrailCustomRulesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guardrail.yaml")
	rules := "rules:\n  danger_patterns:\n    - pattern: 'kubectl\\s+delete'\n      level: high\n      message: Deletes cluster resources\n"
	if err := os.WriteFile(path, []byte(rules), 0o600); err != nil {
		t.Fatal(err)
	}

	guardrail, err := NewGuardrail(path)
	if err != nil {
		t.Fatalf("NewGuardrail error: %v", err)
	}
	result, _ := guardrail.Evaluate("kubectl delete pod web-1")
	if result.Level != domain.RiskHigh {
		t.Fatalf("expected high, got %+v", result)
	}
	result, _ = guardrail.Evaluate("rm -rf /")
	if result.Level != domain.RiskSafe {
		t.Fatalf("custom file should replace defaults, got %+v", result)
	}
}

func TestGuardrailMissingCustomFileFallsBack(t *testing.T) {
	guardrail, err := NewGuardrail(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("NewGuardrail error: %v", err)
	}
	result, _ := guardrail.Evaluate("rm -rf /")
	if result.Level != domain.RiskCritical {
		t.Fatalf("expected embedded defaults, got %+v", result)
	}
}
