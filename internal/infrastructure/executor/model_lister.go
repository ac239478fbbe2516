package executor

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/ebrahas/smartcli/internal/ports"
)

// OllamaModelLister shows installed models by running `ollama list`.
type OllamaModelLister struct {
	binary string
}

// NewOllamaModelLister builds a lister for the given binary ("ollama" when empty).
func NewOllamaModelLister(binary string) *OllamaModelLister {
	if binary == "" {
		binary = "ollama"
	}
	return &OllamaModelLister{binary: binary}
}

// Available reports whether the binary is on PATH.
func (l *OllamaModelLister) Available() bool {
	_, err := exec.LookPath(l.binary)
	return err == nil
}

// List streams the binary's model listing to out.
func (l *OllamaModelLister) List(ctx context.Context, out io.Writer) error {
	if !l.Available() {
		return fmt.Errorf("%s not found on PATH; install it from https://ollama.com", l.binary)
	}
	c := exec.CommandContext(ctx, l.binary, "list")
	c.Stdout = out
	c.Stderr = out
	if err := c.Run(); err != nil {
		return fmt.Errorf("%s list: %w", l.binary, err)
	}
	return nil
}

var _ ports.ModelLister = (*OllamaModelLister)(nil)
