package scanner

import (
	"os"
	"path/filepath"
	"testing"
)

func mkdirs(t *testing.T, paths ...string) {
	t.Helper()
	for _, p := range paths {
		if err := os.MkdirAll(p, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", p, err)
		}
	}
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("touch %s: %v", path, err)
	}
}

func TestListCategories(t *testing.T) {
	base := t.TempDir()
	mkdirs(t,
		filepath.Join(base, "Web"),
		filepath.Join(base, "cli"),
		filepath.Join(base, ".hidden"),
	)
	touch(t, filepath.Join(base, "notes.txt"))

	got := ListCategories(base)
	want := []string{"cli", "Web"}
	if len(got) != len(want) {
		t.Fatalf("categories: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("case-insensitive sort: got %v, want %v", got, want)
		}
	}
}

func TestListCategoriesUnreadableRoot(t *testing.T) {
	if got := ListCategories(filepath.Join(t.TempDir(), "nope")); len(got) != 0 {
		t.Fatalf("unreadable root should yield empty list, got %v", got)
	}
}

func TestListProjects(t *testing.T) {
	base := t.TempDir()
	mkdirs(t,
		filepath.Join(base, "cli", "beta"),
		filepath.Join(base, "cli", "alpha"),
		filepath.Join(base, "cli", ".git-stuff"),
	)

	got := ListProjects(base, "cli")
	if len(got) != 2 {
		t.Fatalf("projects: got %d, want 2", len(got))
	}
	if got[0].Name != "alpha" || got[1].Name != "beta" {
		t.Fatalf("sort order: got %s, %s", got[0].Name, got[1].Name)
	}
	if got[0].Path != filepath.Join(base, "cli", "alpha") {
		t.Fatalf("path mismatch: %s", got[0].Path)
	}
	// no version-control marker: no branch, clean
	if got[0].Branch != "" || got[0].Dirty {
		t.Fatalf("non-git project enriched as git: %+v", got[0])
	}
}

func TestDetectLanguageFirstMatchWins(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "go.mod"))
	touch(t, filepath.Join(dir, "Cargo.toml"))

	// Cargo.toml precedes go.mod in the marker order
	if got := DetectLanguage(dir); got != "Rust" {
		t.Fatalf("first match should win: got %s", got)
	}
}

func TestDetectLanguage(t *testing.T) {
	cases := []struct {
		marker string
		want   string
	}{
		{"pom.xml", "Java"},
		{"build.gradle", "Java"},
		{"package.json", "JS/TS"},
		{"pyproject.toml", "Python"},
		{"requirements.txt", "Python"},
		{"go.mod", "Go"},
	}
	for _, tc := range cases {
		dir := t.TempDir()
		touch(t, filepath.Join(dir, tc.marker))
		if got := DetectLanguage(dir); got != tc.want {
			t.Fatalf("%s: got %s, want %s", tc.marker, got, tc.want)
		}
	}
	if got := DetectLanguage(t.TempDir()); got != "" {
		t.Fatalf("no marker should yield empty tag, got %s", got)
	}
}

func TestFromPathsPreservesOrderAndSkipsMissing(t *testing.T) {
	base := t.TempDir()
	mkdirs(t, filepath.Join(base, "zeta"), filepath.Join(base, "alpha"))

	paths := []string{
		filepath.Join(base, "zeta"),
		filepath.Join(base, "gone"),
		filepath.Join(base, "alpha"),
	}

	got := FromPaths(paths, false)
	if len(got) != 2 {
		t.Fatalf("missing path not skipped: %v", got)
	}
	if got[0].Name != "zeta" || got[1].Name != "alpha" {
		t.Fatalf("input order not preserved: %s, %s", got[0].Name, got[1].Name)
	}

	sorted := FromPaths(paths, true)
	if sorted[0].Name != "alpha" || sorted[1].Name != "zeta" {
		t.Fatalf("sorted order mismatch: %s, %s", sorted[0].Name, sorted[1].Name)
	}
}
