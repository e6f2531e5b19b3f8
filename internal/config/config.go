package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	defaultEditorPath      = "idea"
	defaultTerminalCommand = "kitty --directory"
	defaultTheme           = "Darcula (default)"

	maxRecent = 10
)

type Config struct {
	BaseDir         string   `mapstructure:"base_dir" yaml:"base_dir"`
	EditorPath      string   `mapstructure:"editor_path" yaml:"editor_path"`
	TerminalCommand string   `mapstructure:"terminal_command" yaml:"terminal_command"`
	Favorites       []string `mapstructure:"favorites" yaml:"favorites"`
	RecentProjects  []string `mapstructure:"recent_projects" yaml:"recent_projects"`
	Theme           string   `mapstructure:"theme" yaml:"theme"`

	path string
}

func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "launchpad")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "launchpad")
}

func defaultBaseDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, "dev")
}

// Load reads the config file from the XDG config dir, falling back to
// defaults for anything missing or unreadable. Load never fails on a missing
// file; the defaults are a usable config.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir())

	v.SetDefault("base_dir", defaultBaseDir())
	v.SetDefault("editor_path", defaultEditorPath)
	v.SetDefault("terminal_command", defaultTerminalCommand)
	v.SetDefault("favorites", []string{})
	v.SetDefault("recent_projects", []string{})
	v.SetDefault("theme", defaultTheme)

	cfg := &Config{path: filepath.Join(configDir(), "config.yaml")}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config back to disk. Callers treat failures as non-fatal:
// the in-memory config stays authoritative for the session.
func (c *Config) Save() error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0o644)
}

func (c *Config) IsFavorite(path string) bool {
	for _, f := range c.Favorites {
		if f == path {
			return true
		}
	}
	return false
}

// ToggleFavorite adds or removes a path and reports whether it is now a
// favorite.
func (c *Config) ToggleFavorite(path string) bool {
	for i, f := range c.Favorites {
		if f == path {
			c.Favorites = append(c.Favorites[:i], c.Favorites[i+1:]...)
			return false
		}
	}
	c.Favorites = append(c.Favorites, path)
	return true
}

// AddRecent moves a path to the front of the recent list, deduplicating and
// capping the list at maxRecent entries.
func (c *Config) AddRecent(path string) {
	filtered := make([]string, 0, len(c.RecentProjects)+1)
	filtered = append(filtered, path)
	for _, p := range c.RecentProjects {
		if p != path {
			filtered = append(filtered, p)
		}
	}
	if len(filtered) > maxRecent {
		filtered = filtered[:maxRecent]
	}
	c.RecentProjects = filtered
}
