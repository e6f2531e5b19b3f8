package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"launchpad/internal/tui/theme"
)

type toastType int

const (
	toastSuccess toastType = iota
	toastError
	toastInfo
)

const toastDuration = 3 * time.Second

type toast struct {
	message   string
	kind      toastType
	expiresAt time.Time
}

func newToast(message string, kind toastType) *toast {
	return &toast{message: message, kind: kind, expiresAt: time.Now().Add(toastDuration)}
}

func (t *toast) expired() bool {
	return time.Now().After(t.expiresAt)
}

type toastExpiredMsg struct{}

func toastExpireCmd() tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{}
	})
}

func (t *toast) render(p theme.Palette) string {
	style := lipgloss.NewStyle().Foreground(p.Text)
	icon := "· "
	switch t.kind {
	case toastSuccess:
		style = lipgloss.NewStyle().Foreground(p.GitClean)
		icon = "✓ "
	case toastError:
		style = lipgloss.NewStyle().Foreground(p.Error).Bold(true)
		icon = "✗ "
	}
	return style.Render(icon + t.message)
}
