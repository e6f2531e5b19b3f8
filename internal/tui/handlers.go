package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"launchpad/internal/catalog"
	"launchpad/internal/launcher"
)

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch {
	case m.nav.mode == modeConfirmOpen:
		return m.handleConfirmOpen(msg)
	case m.nav.mode == modeHelp:
		// any key dismisses the help overlay
		(&m).goBack()
		return m, nil
	case m.searching:
		return m.handleSearch(msg)
	case m.nav.mode == modeInputURL:
		return m.handleInputURL(msg)
	}
	return m.handleBrowse(msg)
}

func (m model) handleBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "f":
		cmd := (&m).toggleFavorite()
		return m, cmd
	case "t":
		cmd := (&m).openTerminal()
		return m, cmd
	case "r":
		cmd := (&m).refresh()
		return m, cmd
	case "/":
		if m.nav.mode.searchable() {
			m.searching = true
			m.search.SetValue(m.activeIndex().Filter())
			m.search.CursorEnd()
			cmd := m.search.Focus()
			return m, cmd
		}
	case "?":
		m.nav.pushInterrupt(modeHelp)
	case "down", "j":
		m.activeIndex().Next()
	case "up", "k":
		m.activeIndex().Prev()
	case "enter", "right", "l":
		cmd := (&m).confirm()
		return m, cmd
	case "left", "h", "backspace":
		(&m).goBack()
	case "esc":
		if idx := m.activeIndex(); idx != nil && idx.Filter() != "" {
			idx.ClearFilter()
			m.search.SetValue("")
		} else {
			(&m).goBack()
		}
	}
	return m, nil
}

// confirm dispatches the generic confirm event for the current mode.
// ConfirmOpen and Help have no entry: they react only to their dedicated
// accept/dismiss keys.
var confirmHandlers = map[mode]func(*model) tea.Cmd{
	modeMainMenu:          (*model).confirmMainMenu,
	modeThemeSelection:    (*model).confirmTheme,
	modeCategorySelection: (*model).confirmCategory,
	modeProjectSelection:  (*model).confirmProject,
	modeFavorites:         (*model).confirmProject,
	modeRecent:            (*model).confirmProject,
	modeInputURL:          (*model).confirmURL,
	modeCloneCategory:     (*model).confirmCloneCategory,
}

func (m *model) confirm() tea.Cmd {
	if h, ok := confirmHandlers[m.nav.mode]; ok {
		return h(m)
	}
	return nil
}

func (m *model) confirmMainMenu() tea.Cmd {
	switch m.menu.SelectedIndex() {
	case menuFavorites:
		m.loadFavorites()
		m.nav.mode = modeFavorites
	case menuRecent:
		m.loadRecent()
		m.nav.mode = modeRecent
	case menuOpenProject:
		m.loadCategories()
		m.nav.mode = modeCategorySelection
	case menuCloneRepo:
		m.urlInput.SetValue("")
		m.nav.mode = modeInputURL
		return m.urlInput.Focus()
	case menuOpenEditor:
		m.pending = &pendingOpen{editorOnly: true}
		m.nav.pushInterrupt(modeConfirmOpen)
	case menuChooseTheme:
		m.nav.mode = modeThemeSelection
	}
	return nil
}

func (m *model) confirmTheme() tea.Cmd {
	if it, ok := m.themes.Selected(); ok {
		m.cfg.Theme = string(it.(catalog.StringItem))
		m.saveConfig()
		m.nav.mode = modeMainMenu
	}
	return nil
}

func (m *model) confirmCategory() tea.Cmd {
	if it, ok := m.categories.Selected(); ok {
		m.loadProjects(string(it.(catalog.StringItem)))
		m.nav.mode = modeProjectSelection
		m.clearSearch()
	}
	return nil
}

func (m *model) confirmProject() tea.Cmd {
	if p, ok := m.selectedProject(); ok {
		m.pending = &pendingOpen{project: &p}
		m.nav.pushInterrupt(modeConfirmOpen)
	}
	return nil
}

func (m *model) confirmURL() tea.Cmd {
	if strings.TrimSpace(m.urlInput.Value()) != "" {
		m.loadCategories()
		m.nav.mode = modeCloneCategory
	}
	return nil
}

func (m *model) confirmCloneCategory() tea.Cmd {
	it, ok := m.categories.Selected()
	if !ok {
		return nil
	}
	category := string(it.(catalog.StringItem))
	url := strings.TrimSpace(m.urlInput.Value())
	m.clearSearch()

	// Blocks until the clone finishes: the fallback decision and the
	// follow-up open need the exit status.
	path, err := m.launch.Clone(url, category)
	if err != nil {
		m.toast = newToast("Clone failed!", toastError)
		return toastExpireCmd()
	}
	name := launcher.ProjectName(url)
	if err := m.launch.OpenEditor(path); err != nil {
		m.toast = newToast("Cloned "+name+", but editor launch failed", toastError)
	} else {
		m.toast = newToast("Cloned and opened "+name+"!", toastSuccess)
	}
	m.nav.mode = modeMainMenu
	return toastExpireCmd()
}

func (m model) handleConfirmOpen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		cmd := (&m).executePendingOpen()
		return m, cmd
	case "n", "N", "esc", "backspace":
		(&m).goBack()
	}
	return m, nil
}

func (m *model) executePendingOpen() tea.Cmd {
	pending := m.pending
	m.pending = nil
	m.nav.pop()
	if pending == nil {
		return nil
	}
	switch {
	case pending.editorOnly:
		if err := m.launch.OpenEditor(""); err != nil {
			m.toast = newToast("Editor launch failed: "+err.Error(), toastError)
		} else {
			m.toast = newToast("Opening editor...", toastInfo)
		}
	case pending.project != nil:
		if err := m.launch.OpenEditor(pending.project.Path); err != nil {
			m.toast = newToast("Launch failed: "+err.Error(), toastError)
		} else {
			m.toast = newToast("Launched "+pending.project.Name+"!", toastSuccess)
		}
	}
	return toastExpireCmd()
}

func (m model) handleSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		// exit search mode, keep the filter
		m.searching = false
		m.search.Blur()
		return m, nil
	case "esc":
		m.searching = false
		m.search.SetValue("")
		m.search.Blur()
		if idx := m.activeIndex(); idx != nil {
			idx.ClearFilter()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if idx := m.activeIndex(); idx != nil {
		idx.SetFilter(m.search.Value())
	}
	return m, cmd
}

func (m model) handleInputURL(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		cmd := (&m).confirm()
		return m, cmd
	case "esc":
		m.nav.mode = modeMainMenu
		return m, nil
	case "backspace":
		if m.urlInput.Value() == "" {
			m.nav.mode = modeMainMenu
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.urlInput, cmd = m.urlInput.Update(msg)
	return m, cmd
}

// goBack clears search state, then walks one step down the back-chain.
// Interrupt modes pop their saved origin and discard any staged selection.
func (m *model) goBack() {
	m.clearSearch()
	switch m.nav.mode {
	case modeConfirmOpen, modeHelp:
		m.pending = nil
		m.nav.pop()
	default:
		m.nav.mode = backTarget[m.nav.mode]
	}
}

func (m *model) clearSearch() {
	m.searching = false
	m.search.SetValue("")
	m.search.Blur()
	m.categories.ClearFilter()
	m.projects.ClearFilter()
}

func (m *model) toggleFavorite() tea.Cmd {
	p, ok := m.selectedProject()
	if !ok {
		return nil
	}
	if m.cfg.ToggleFavorite(p.Path) {
		m.toast = newToast("Added "+p.Name+" to favorites", toastSuccess)
	} else {
		m.toast = newToast("Removed "+p.Name+" from favorites", toastInfo)
	}
	m.saveConfig()
	return toastExpireCmd()
}

func (m *model) openTerminal() tea.Cmd {
	p, ok := m.selectedProject()
	if !ok {
		return nil
	}
	if err := m.launch.OpenTerminal(p.Path); err != nil {
		m.toast = newToast("Terminal launch failed: "+err.Error(), toastError)
	} else {
		m.toast = newToast("Opened terminal for "+p.Name+"!", toastSuccess)
	}
	return toastExpireCmd()
}

func (m *model) refresh() tea.Cmd {
	switch {
	case m.nav.mode.categoryMode():
		m.loadCategories()
	case m.nav.mode == modeProjectSelection:
		if m.selectedCategory != "" {
			m.loadProjects(m.selectedCategory)
		}
	case m.nav.mode == modeFavorites:
		m.loadFavorites()
	case m.nav.mode == modeRecent:
		m.loadRecent()
	}
	m.toast = newToast("Status refreshed!", toastInfo)
	return toastExpireCmd()
}
