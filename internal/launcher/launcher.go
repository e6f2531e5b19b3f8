// Package launcher hands confirmed selections off to external tools: the
// configured editor, the terminal emulator, and the clone pipeline.
package launcher

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"launchpad/internal/config"
	"launchpad/internal/logging"
	"launchpad/internal/shell"
)

const fallbackProjectName = "new-project"

type Launcher struct {
	cfg *config.Config
	cmd shell.Commander
	log *logrus.Entry
}

func New(cfg *config.Config, cmd shell.Commander) *Launcher {
	return &Launcher{cfg: cfg, cmd: cmd, log: logging.NewLogger("launcher")}
}

// OpenEditor spawns the configured editor detached. With a non-empty path
// the project is opened and recorded in the recent list; with an empty path
// the editor starts bare.
func (l *Launcher) OpenEditor(path string) error {
	var err error
	if path == "" {
		err = l.cmd.StartDetached("", l.cfg.EditorPath)
	} else {
		err = l.cmd.StartDetached("", l.cfg.EditorPath, path)
	}
	if err != nil {
		l.log.WithError(err).Warn("editor spawn failed")
		return err
	}
	if path != "" {
		l.cfg.AddRecent(path)
		if err := l.cfg.Save(); err != nil {
			l.log.WithError(err).Warn("config save failed")
		}
	}
	return nil
}

// OpenTerminal spawns the terminal command template with the project path
// appended as the final argument. An empty template is a no-op.
func (l *Launcher) OpenTerminal(path string) error {
	parts := strings.Fields(l.cfg.TerminalCommand)
	if len(parts) == 0 {
		return nil
	}
	args := append(parts[1:], path)
	if err := l.cmd.StartDetached("", parts[0], args...); err != nil {
		l.log.WithError(err).Warn("terminal spawn failed")
		return err
	}
	return nil
}

// Clone runs the clone pipeline into baseDir/category: gh first, plain git
// clone as the fallback. It blocks until the clone finishes and returns the
// resulting project path.
func (l *Launcher) Clone(url, category string) (string, error) {
	dest := filepath.Join(l.cfg.BaseDir, category)
	name := ProjectName(url)

	if _, err := l.cmd.RunDir(dest, "gh", "repo", "clone", url, "--", "--quiet"); err != nil {
		l.log.WithError(err).WithField("url", url).Info("gh clone failed, falling back to git")
		if out, err := l.cmd.RunDir(dest, "git", "clone", "--quiet", url); err != nil {
			l.log.WithError(err).WithField("url", url).Warn("git clone failed")
			return "", fmt.Errorf("clone %s: %w: %s", url, err, strings.TrimSpace(string(out)))
		}
	}
	return filepath.Join(dest, name), nil
}

// ProjectName derives a project directory name from the last path segment of
// a clone URL, stripping a trailing ".git".
func ProjectName(url string) string {
	segment := url
	if i := strings.LastIndex(url, "/"); i >= 0 {
		segment = url[i+1:]
	}
	segment = strings.TrimSuffix(segment, ".git")
	if segment == "" {
		return fallbackProjectName
	}
	return segment
}
