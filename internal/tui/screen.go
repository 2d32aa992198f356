package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// screen is one tab of the app. Screens keep their state while another tab
// is active and are only torn down when the app exits.
type screen interface {
	Title() string
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View(width, height int) string
	ShortHelp() []key.Binding
	// Modal reports whether the screen is showing a blocking dialog that
	// must receive every key.
	Modal() bool
	// Close releases anything the screen started. It is safe to call twice.
	Close()
}
