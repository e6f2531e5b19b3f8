package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"launchpad/internal/config"
	"launchpad/internal/deps"
	"launchpad/internal/logging"
	"launchpad/internal/scanner"
	"launchpad/internal/tui"
	"launchpad/pkg/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "launchpad",
	Short: "Browse, open, and clone projects from the terminal",
	RunE:  runRoot,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(doctorCmd)
}

func ensureDeps() error {
	for _, dep := range deps.Check() {
		if !dep.Required {
			continue
		}
		fmt.Fprintf(os.Stderr, "Missing dependency: %s (%s)\n", dep.Name, deps.InstallHint(dep))
		return fmt.Errorf("missing required dependencies")
	}
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("launchpad is interactive; run it in a terminal (or use `launchpad list`)")
	}
	if err := ensureDeps(); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logging.NewLogger("main")
	log.WithField("base_dir", cfg.BaseDir).Info("starting")

	app := tui.New(cfg)
	return app.Run()
}

var listCmd = &cobra.Command{
	Use:   "list [category]",
	Short: "Print categories, or the projects of one category",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if len(args) == 0 {
			for _, cat := range scanner.ListCategories(cfg.BaseDir) {
				fmt.Println(cat)
			}
			return nil
		}
		for _, p := range scanner.ListProjects(cfg.BaseDir, args[0]) {
			branch := p.Branch
			if branch == "" {
				branch = "-"
			}
			language := p.Language
			if language == "" {
				language = "-"
			}
			dirty := " "
			if p.Dirty {
				dirty = "*"
			}
			fmt.Printf("%-28s %-20s%s %s\n", p.Name, branch, dirty, language)
		}
		return nil
	},
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check for required external tools",
	RunE: func(cmd *cobra.Command, args []string) error {
		missing := deps.Check()
		if len(missing) == 0 {
			fmt.Println("All external tools found.")
			return nil
		}
		for _, dep := range missing {
			kind := "optional"
			if dep.Required {
				kind = "required"
			}
			fmt.Printf("missing %s tool: %s (%s)\n", kind, dep.Name, deps.InstallHint(dep))
		}
		for _, dep := range missing {
			if dep.Required {
				return fmt.Errorf("missing required dependencies")
			}
		}
		return nil
	},
}
