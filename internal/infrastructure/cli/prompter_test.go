package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrompterConfirm(t *testing.T) {
	cases := map[string]bool{
		"y\n":     true,
		"Y\n":     true,
		"  y  \n": true,
		"yes\n":   false,
		"n\n":     false,
		"\n":      false,
		"":        false,
		"y":       true,
	}
	for input, want := range cases {
		var out bytes.Buffer
		p := NewPrompter(strings.NewReader(input), &out)
		got, err := p.Confirm("ls -la")
		if err != nil {
			t.Fatalf("Confirm(%q) error = %v", input, err)
		}
		if got != want {
			t.Fatalf("Confirm(%q) = %v, want %v", input, got, want)
		}
		if !strings.HasPrefix(out.String(), confirmPrompt) {
			t.Fatalf("prompt missing: %q", out.String())
		}
	}
}

func TestPrompterReadLine(t *testing.T) {
	p := NewPrompter(strings.NewReader(" 1 \nllama3"), &bytes.Buffer{})
	first, err := p.ReadLine("> ")
	if err != nil || first != "1" {
		t.Fatalf("first line = %q, %v", first, err)
	}
	second, err := p.ReadLine("> ")
	if err != nil || second != "llama3" {
		t.Fatalf("second line = %q, %v", second, err)
	}
	if _, err := p.ReadLine("> "); err == nil {
		t.Fatal("expected EOF")
	}
}
