package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/ebrahas/smartcli/internal/domain"
	"github.com/ebrahas/smartcli/internal/infrastructure/cli"
	"github.com/ebrahas/smartcli/internal/pkg/filesystem"
)

func main() {
	if err := loadDotEnv(filepath.Join(filesystem.ConfigDir(), ".env")); err != nil {
		fmt.Fprintln(os.Stderr, "error: load .env:", err)
		os.Exit(1)
	}

	ctx := context.Background()
	opts := cli.Options{Verbose: isVerbose()}

	root, err := cli.NewRootCmd(ctx, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode mirrors the shell's status for failed commands, 1 otherwise.
func exitCode(err error) int {
	if code := domain.ExitCodeOf(err); code > 0 {
		return code
	}
	return 1
}

// loadDotEnv loads variables without overriding ones already set.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func isVerbose() bool {
	value := os.Getenv(domain.EnvDebug)
	return strings.EqualFold(value, "1") || strings.EqualFold(value, "true")
}
