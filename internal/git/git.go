// Package git provides best-effort probes of a project directory. Probes
// never fail a listing: any error degrades to "no branch, clean tree".
package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// probeTimeout bounds each git invocation so a hung git process cannot
// freeze the event loop.
const probeTimeout = 3 * time.Second

// Probe returns the current branch and whether the working tree has any
// staged, modified, or untracked changes. A directory without a .git marker
// reports ("", false) without spawning anything.
func Probe(dir string) (branch string, dirty bool) {
	if _, err := os.Stat(filepath.Join(dir, ".git")); err != nil {
		return "", false
	}
	branch = currentBranch(dir)
	dirty = hasChanges(dir)
	return branch, dirty
}

func currentBranch(dir string) string {
	out, err := run(dir, "branch", "--show-current")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

func hasChanges(dir string) bool {
	out, err := run(dir, "status", "--porcelain")
	if err != nil {
		return false
	}
	return len(strings.TrimSpace(string(out))) > 0
}

func run(dir string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	return cmd.Output()
}
