// Package version holds build metadata set via -ldflags.
package version

import (
	"fmt"
	"runtime"
	"strings"
)

var (
	Version   = "dev"
	Commit    = ""
	BuildDate = ""
)

// Summary renders the version with whatever build metadata was stamped in,
// e.g. "1.2.0 (commit 3f2a1c9, built 2026-10-01)".
func Summary() string {
	var meta []string
	if Commit != "" {
		meta = append(meta, "commit "+shortCommit(Commit))
	}
	if BuildDate != "" {
		meta = append(meta, "built "+BuildDate)
	}
	if len(meta) == 0 {
		return Version
	}
	return fmt.Sprintf("%s (%s)", Version, strings.Join(meta, ", "))
}

// Platform reports the toolchain and target the binary was built for.
func Platform() string {
	return fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

func shortCommit(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}
