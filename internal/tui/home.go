package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	homeTitle    = "Max Gas ⛽"
	homeSubtitle = "Find nearby gas stations easily"
)

type homeScreen struct {
	keys keyMap
}

func newHomeScreen(keys keyMap) *homeScreen { return &homeScreen{keys: keys} }

func (h *homeScreen) Title() string            { return "Home" }
func (h *homeScreen) Init() tea.Cmd            { return nil }
func (h *homeScreen) Update(tea.Msg) tea.Cmd   { return nil }
func (h *homeScreen) Modal() bool              { return false }
func (h *homeScreen) Close()                   {}
func (h *homeScreen) ShortHelp() []key.Binding { return []key.Binding{h.keys.Login, h.keys.QuitAlt} }

func (h *homeScreen) View(width, height int) string {
	block := lipgloss.JoinVertical(lipgloss.Center,
		homeTitleStyle.Render(homeTitle),
		homeSubtitleStyle.Render(homeSubtitle),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}
