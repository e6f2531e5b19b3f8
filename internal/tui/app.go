package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"launchpad/internal/catalog"
	"launchpad/internal/config"
	"launchpad/internal/launcher"
	"launchpad/internal/logging"
	"launchpad/internal/scanner"
	"launchpad/internal/shell"
	"launchpad/internal/tui/theme"
)

// Main menu entries, in order. The confirm dispatch in handlers.go indexes
// into this list.
const (
	menuFavorites = iota
	menuRecent
	menuOpenProject
	menuCloneRepo
	menuOpenEditor
	menuChooseTheme
)

var menuItems = []string{
	"Favorites",
	"Recent Projects",
	"Open Existing Project",
	"Clone Repository",
	"Open Editor",
	"Choose Theme",
}

// pendingOpen is a selection staged for confirmation. editorOnly marks the
// synthetic "open the editor itself" entry.
type pendingOpen struct {
	project    *scanner.Project
	editorOnly bool
}

type model struct {
	cfg    *config.Config
	launch *launcher.Launcher
	log    *logrus.Entry

	nav              navigation
	menu             *catalog.Index
	themes           *catalog.Index
	categories       *catalog.Index
	projects         *catalog.Index
	selectedCategory string

	pending   *pendingOpen
	searching bool
	search    textinput.Model
	urlInput  textinput.Model

	toast  *toast
	width  int
	height int
}

type App struct {
	cfg *config.Config
}

func New(cfg *config.Config) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	m := initialModel(a.cfg, launcher.New(a.cfg, &shell.ExecCommander{}))
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func initialModel(cfg *config.Config, launch *launcher.Launcher) model {
	search := textinput.New()
	search.Prompt = "/ "
	search.CharLimit = 64

	urlInput := textinput.New()
	urlInput.Prompt = "> "
	urlInput.Placeholder = "https://github.com/user/repo.git"
	urlInput.CharLimit = 256

	return model{
		cfg:        cfg,
		launch:     launch,
		log:        logging.NewLogger("tui"),
		nav:        navigation{mode: modeMainMenu},
		menu:       catalog.New(catalog.Strings(menuItems)...),
		themes:     catalog.New(catalog.Strings(theme.Names)...),
		categories: catalog.New(),
		projects:   catalog.New(),
		search:     search,
		urlInput:   urlInput,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case toastExpiredMsg:
		if m.toast != nil && m.toast.expired() {
			m.toast = nil
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// activeIndex returns the listing the current mode selects from.
func (m *model) activeIndex() *catalog.Index {
	switch {
	case m.nav.mode == modeMainMenu:
		return m.menu
	case m.nav.mode == modeThemeSelection:
		return m.themes
	case m.nav.mode.categoryMode():
		return m.categories
	case m.nav.mode.projectMode():
		return m.projects
	}
	return nil
}

// selectedProject returns the selected record of the filtered project view.
func (m *model) selectedProject() (scanner.Project, bool) {
	if !m.nav.mode.projectMode() {
		return scanner.Project{}, false
	}
	it, ok := m.projects.Selected()
	if !ok {
		return scanner.Project{}, false
	}
	return it.(scanner.Project), true
}

// Listing loaders. Scans are synchronous: one input event is fully processed
// before the next is read, so scan latency shows up as input lag.

func (m *model) loadCategories() {
	m.categories.SetItems(catalog.Strings(scanner.ListCategories(m.cfg.BaseDir)))
}

func (m *model) loadProjects(category string) {
	m.selectedCategory = category
	m.projects.SetItems(projectItems(scanner.ListProjects(m.cfg.BaseDir, category)))
}

func (m *model) loadFavorites() {
	m.selectedCategory = ""
	m.projects.SetItems(projectItems(scanner.FromPaths(m.cfg.Favorites, true)))
}

func (m *model) loadRecent() {
	m.selectedCategory = ""
	m.projects.SetItems(projectItems(scanner.FromPaths(m.cfg.RecentProjects, false)))
}

func projectItems(projects []scanner.Project) []catalog.Item {
	items := make([]catalog.Item, len(projects))
	for i, p := range projects {
		items[i] = p
	}
	return items
}

func (m *model) saveConfig() {
	if err := m.cfg.Save(); err != nil {
		m.log.WithError(err).Warn("config save failed")
	}
}
