package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"launchpad/internal/catalog"
	"launchpad/internal/scanner"
	"launchpad/internal/tui/theme"
)

func (m model) View() string {
	p := theme.Get(m.cfg.Theme)

	var b strings.Builder
	b.WriteString(m.renderTitle(p))
	b.WriteString("\n\n")
	b.WriteString(m.renderContent(p))
	b.WriteString("\n")
	b.WriteString(m.renderFooter(p))
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m model) renderTitle(p theme.Palette) string {
	title := " launchpad "
	switch m.nav.mode {
	case modeCategorySelection:
		title = " Select Category "
	case modeProjectSelection:
		title = fmt.Sprintf(" Projects in %s ", m.selectedCategory)
	case modeInputURL:
		title = " Clone Repository: Paste URL "
	case modeCloneCategory:
		title = " Select Category to Clone into "
	case modeFavorites:
		title = " Favorite Projects "
	case modeRecent:
		title = " Recently Opened Projects "
	}
	return lipgloss.NewStyle().
		Foreground(p.HeaderText).
		Bold(true).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1).
		Render(title)
}

func (m model) renderContent(p theme.Palette) string {
	switch m.nav.mode {
	case modeMainMenu, modeThemeSelection:
		return m.renderList(p, m.activeIndex())
	case modeCategorySelection, modeCloneCategory:
		return m.renderList(p, m.categories)
	case modeProjectSelection, modeFavorites, modeRecent:
		return m.renderProjects(p)
	case modeInputURL:
		return m.urlInput.View()
	case modeConfirmOpen:
		return m.renderConfirm(p)
	case modeHelp:
		return renderHelp(p)
	}
	return ""
}

func (m model) renderList(p theme.Palette, idx *catalog.Index) string {
	visible := idx.Visible()
	if len(visible) == 0 {
		return lipgloss.NewStyle().Foreground(p.NoGit).Render("  (nothing here)")
	}
	normal := lipgloss.NewStyle().Foreground(p.Text)
	selected := lipgloss.NewStyle().Foreground(p.Highlight).Bold(true)

	var rows []string
	for i, it := range visible {
		if i == idx.SelectedIndex() {
			rows = append(rows, selected.Render("> "+it.FilterValue()))
		} else {
			rows = append(rows, normal.Render("  "+it.FilterValue()))
		}
	}
	return strings.Join(rows, "\n")
}

func (m model) renderProjects(p theme.Palette) string {
	visible := m.projects.Visible()
	if len(visible) == 0 {
		return lipgloss.NewStyle().Foreground(p.NoGit).Render("  (no projects)")
	}
	normal := lipgloss.NewStyle().Foreground(p.Text)
	selected := lipgloss.NewStyle().Foreground(p.Highlight).Bold(true)
	branchStyle := lipgloss.NewStyle().Foreground(p.GitBranch)
	cleanStyle := lipgloss.NewStyle().Foreground(p.GitClean)
	dirtyStyle := lipgloss.NewStyle().Foreground(p.GitDirty)
	noGitStyle := lipgloss.NewStyle().Foreground(p.NoGit)

	var rows []string
	for i, it := range visible {
		proj := it.(scanner.Project)

		branch := noGitStyle.Render("-")
		status := noGitStyle.Render("-")
		if proj.Branch != "" {
			branch = branchStyle.Render(proj.Branch)
			if proj.Dirty {
				status = dirtyStyle.Render("✗ changes")
			} else {
				status = cleanStyle.Render("✓ clean")
			}
		}
		language := proj.Language
		if language == "" {
			language = "-"
		}

		marker := "  "
		nameStyle := normal
		if i == m.projects.SelectedIndex() {
			marker = "> "
			nameStyle = selected
		}
		fav := " "
		if m.cfg.IsFavorite(proj.Path) {
			fav = "★"
		}
		rows = append(rows, fmt.Sprintf("%s%s %s  %s  %s  %s",
			marker,
			fav,
			nameStyle.Render(padRight(proj.Name, 28)),
			padANSI(branch, 20),
			padANSI(status, 12),
			noGitStyle.Render(language),
		))
	}
	return strings.Join(rows, "\n")
}

func (m model) renderConfirm(p theme.Palette) string {
	target := "the editor"
	if m.pending != nil && m.pending.project != nil {
		target = m.pending.project.Name
	}
	body := fmt.Sprintf("Open %s?\n\n[y] yes   [n] no", target)
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(p.ConfirmBorder).
		Padding(1, 3).
		Foreground(p.Text).
		Render(body)
}

func renderHelp(p theme.Palette) string {
	keyStyle := lipgloss.NewStyle().Foreground(p.Highlight).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(p.Text)

	bindings := []struct{ key, desc string }{
		{"j/k, ↑/↓", "move selection"},
		{"enter, l", "confirm / open"},
		{"h, backspace", "go back"},
		{"esc", "clear filter, then back"},
		{"/", "filter the current list"},
		{"f", "toggle favorite"},
		{"t", "open terminal here"},
		{"r", "refresh listing"},
		{"?", "this help"},
		{"q", "quit"},
	}
	var rows []string
	for _, b := range bindings {
		rows = append(rows, fmt.Sprintf("  %s  %s", keyStyle.Render(padRight(b.key, 14)), textStyle.Render(b.desc)))
	}
	body := strings.Join(rows, "\n")
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(1, 2).
		Render(body)
}

func (m model) renderFooter(p theme.Palette) string {
	if m.searching {
		return m.search.View()
	}
	if m.toast != nil {
		return m.toast.render(p)
	}
	hint := "j/k move · enter open · / filter · ? help · q quit"
	if m.nav.mode == modeConfirmOpen {
		hint = "y confirm · n cancel"
	}
	return lipgloss.NewStyle().Foreground(p.NoGit).Render(hint)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// padANSI pads styled text by display width, ignoring escape sequences.
func padANSI(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
