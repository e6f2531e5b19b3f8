// Package scanner enumerates the project hierarchy: one level of category
// directories under the base dir, one level of project directories under
// each category. Unreadable directories degrade to empty listings.
package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"launchpad/internal/git"
)

// Project is one enriched directory entry. Records are immutable once built;
// a reload replaces the whole listing.
type Project struct {
	Name     string
	Path     string
	Branch   string // empty when the directory is not a git repository
	Dirty    bool
	Language string // empty when no marker file matched
}

// FilterValue implements the catalog item interface.
func (p Project) FilterValue() string { return p.Name }

// languageMarkers is an ordered priority list: the first marker present in a
// directory determines its language tag, even if later markers also match.
var languageMarkers = []struct {
	marker   string
	language string
}{
	{"Cargo.toml", "Rust"},
	{"pom.xml", "Java"},
	{"build.gradle", "Java"},
	{"package.json", "JS/TS"},
	{"pyproject.toml", "Python"},
	{"requirements.txt", "Python"},
	{"go.mod", "Go"},
}

func DetectLanguage(dir string) string {
	for _, m := range languageMarkers {
		if _, err := os.Stat(filepath.Join(dir, m.marker)); err == nil {
			return m.language
		}
	}
	return ""
}

// ListCategories returns the visible subdirectory names of baseDir, sorted
// case-insensitively. An unreadable base dir yields an empty list.
func ListCategories(baseDir string) []string {
	entries, err := os.ReadDir(baseDir)
	if err != nil {
		return nil
	}
	var cats []string
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		cats = append(cats, entry.Name())
	}
	sortCaseInsensitive(cats)
	return cats
}

// ListProjects returns enriched records for the visible subdirectories of
// baseDir/category, sorted case-insensitively by name.
func ListProjects(baseDir, category string) []Project {
	entries, err := os.ReadDir(filepath.Join(baseDir, category))
	if err != nil {
		return nil
	}
	var projects []Project
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		path := filepath.Join(baseDir, category, entry.Name())
		projects = append(projects, enrich(entry.Name(), path))
	}
	sort.SliceStable(projects, func(i, j int) bool {
		return strings.ToLower(projects[i].Name) < strings.ToLower(projects[j].Name)
	})
	return projects
}

// FromPaths builds records for an explicit path list (favorites, recents),
// skipping paths that no longer exist. The input order is preserved when
// sortByName is false; the recents listing relies on that.
func FromPaths(paths []string, sortByName bool) []Project {
	var projects []Project
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		projects = append(projects, enrich(filepath.Base(p), p))
	}
	if sortByName {
		sort.SliceStable(projects, func(i, j int) bool {
			return strings.ToLower(projects[i].Name) < strings.ToLower(projects[j].Name)
		})
	}
	return projects
}

func enrich(name, path string) Project {
	branch, dirty := git.Probe(path)
	return Project{
		Name:     name,
		Path:     path,
		Branch:   branch,
		Dirty:    dirty,
		Language: DetectLanguage(path),
	}
}

func sortCaseInsensitive(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
}
