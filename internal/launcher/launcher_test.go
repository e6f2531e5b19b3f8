package launcher

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"launchpad/internal/config"
)

// fakeCommander records invocations and fails commands listed in failures.
type fakeCommander struct {
	calls    []string
	failures map[string]bool
}

func (f *fakeCommander) record(name string, args ...string) error {
	call := name + " " + strings.Join(args, " ")
	f.calls = append(f.calls, call)
	if f.failures[name] {
		return errors.New(name + " failed")
	}
	return nil
}

func (f *fakeCommander) Run(name string, args ...string) ([]byte, error) {
	return nil, f.record(name, args...)
}

func (f *fakeCommander) RunDir(dir, name string, args ...string) ([]byte, error) {
	return nil, f.record(name, args...)
}

func (f *fakeCommander) StartDetached(dir, name string, args ...string) error {
	return f.record(name, args...)
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	cfg.BaseDir = "/srv/projects"
	cfg.EditorPath = "idea"
	return cfg
}

func TestProjectName(t *testing.T) {
	cases := []struct{ url, want string }{
		{"https://host/group/repo.git", "repo"},
		{"https://host/group/repo", "repo"},
		{"git@host:group/repo.git", "repo"},
		{"repo.git", "repo"},
		{"", "new-project"},
		{"https://host/group/", "new-project"},
	}
	for _, tc := range cases {
		if got := ProjectName(tc.url); got != tc.want {
			t.Fatalf("ProjectName(%q): got %q, want %q", tc.url, got, tc.want)
		}
	}
}

func TestOpenEditorWithPathAddsRecent(t *testing.T) {
	cfg := testConfig(t)
	fake := &fakeCommander{}
	l := New(cfg, fake)

	if err := l.OpenEditor("/srv/projects/cli/alpha"); err != nil {
		t.Fatalf("open: %v", err)
	}
	if len(fake.calls) != 1 || fake.calls[0] != "idea /srv/projects/cli/alpha" {
		t.Fatalf("editor spawn mismatch: %v", fake.calls)
	}
	if len(cfg.RecentProjects) != 1 || cfg.RecentProjects[0] != "/srv/projects/cli/alpha" {
		t.Fatalf("recent not recorded: %v", cfg.RecentProjects)
	}
}

func TestOpenEditorBare(t *testing.T) {
	cfg := testConfig(t)
	fake := &fakeCommander{}
	l := New(cfg, fake)

	if err := l.OpenEditor(""); err != nil {
		t.Fatalf("open: %v", err)
	}
	if len(fake.calls) != 1 || fake.calls[0] != "idea " {
		t.Fatalf("bare editor spawn mismatch: %v", fake.calls)
	}
	if len(cfg.RecentProjects) != 0 {
		t.Fatalf("bare editor open must not touch recents: %v", cfg.RecentProjects)
	}
}

func TestOpenEditorSpawnFailure(t *testing.T) {
	cfg := testConfig(t)
	fake := &fakeCommander{failures: map[string]bool{"idea": true}}
	l := New(cfg, fake)

	if err := l.OpenEditor("/srv/projects/cli/alpha"); err == nil {
		t.Fatal("spawn failure should surface")
	}
	if len(cfg.RecentProjects) != 0 {
		t.Fatalf("failed open must not record recent: %v", cfg.RecentProjects)
	}
}

func TestOpenTerminalSplitsTemplate(t *testing.T) {
	cfg := testConfig(t)
	cfg.TerminalCommand = "kitty --directory"
	fake := &fakeCommander{}
	l := New(cfg, fake)

	if err := l.OpenTerminal("/srv/projects/cli/alpha"); err != nil {
		t.Fatalf("terminal: %v", err)
	}
	if len(fake.calls) != 1 || fake.calls[0] != "kitty --directory /srv/projects/cli/alpha" {
		t.Fatalf("terminal spawn mismatch: %v", fake.calls)
	}
}

func TestOpenTerminalEmptyTemplateIsNoop(t *testing.T) {
	cfg := testConfig(t)
	cfg.TerminalCommand = "  "
	fake := &fakeCommander{}
	l := New(cfg, fake)

	if err := l.OpenTerminal("/srv/projects/cli/alpha"); err != nil {
		t.Fatalf("terminal: %v", err)
	}
	if len(fake.calls) != 0 {
		t.Fatalf("empty template must spawn nothing: %v", fake.calls)
	}
}

func TestClonePrefersGh(t *testing.T) {
	cfg := testConfig(t)
	fake := &fakeCommander{}
	l := New(cfg, fake)

	path, err := l.Clone("https://host/group/repo.git", "cli")
	if err != nil {
		t.Fatalf("clone: %v", err)
	}
	if path != filepath.Join("/srv/projects", "cli", "repo") {
		t.Fatalf("clone path mismatch: %s", path)
	}
	if len(fake.calls) != 1 || !strings.HasPrefix(fake.calls[0], "gh repo clone") {
		t.Fatalf("gh should be tried first: %v", fake.calls)
	}
}

func TestCloneFallsBackToGit(t *testing.T) {
	cfg := testConfig(t)
	fake := &fakeCommander{failures: map[string]bool{"gh": true}}
	l := New(cfg, fake)

	path, err := l.Clone("https://host/group/repo.git", "cli")
	if err != nil {
		t.Fatalf("clone with fallback: %v", err)
	}
	if path != filepath.Join("/srv/projects", "cli", "repo") {
		t.Fatalf("clone path mismatch: %s", path)
	}
	if len(fake.calls) != 2 {
		t.Fatalf("expected gh then git: %v", fake.calls)
	}
	if !strings.HasPrefix(fake.calls[1], "git clone --quiet https://host/group/repo.git") {
		t.Fatalf("fallback must reuse the same URL: %v", fake.calls)
	}
}

func TestCloneBothToolsFail(t *testing.T) {
	cfg := testConfig(t)
	fake := &fakeCommander{failures: map[string]bool{"gh": true, "git": true}}
	l := New(cfg, fake)

	if _, err := l.Clone("https://host/group/repo.git", "cli"); err == nil {
		t.Fatal("both tools failing must surface an error")
	}
}
