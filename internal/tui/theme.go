package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, https://catppuccin.com/palette

const (
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

const (
	colorBrand   = colorPeach
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
)

var (
	headerBarStyle   = lipgloss.NewStyle().Background(colorMantle).Foreground(colorText)
	headerAppStyle   = lipgloss.NewStyle().Background(colorMantle).Foreground(colorBrand).Bold(true)
	activeTabStyle   = lipgloss.NewStyle().Background(colorMantle).Foreground(colorMauve).Bold(true).Underline(true)
	inactiveTabStyle = lipgloss.NewStyle().Background(colorMantle).Foreground(colorOverlay0)
	tabSepStyle      = lipgloss.NewStyle().Background(colorMantle).Foreground(colorSurface1)

	homeTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorText).MarginBottom(1)
	homeSubtitleStyle = lipgloss.NewStyle().Foreground(colorText)

	formTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorBrand).MarginBottom(1)
	labelStyle     = lipgloss.NewStyle().Foreground(colorSubtext0)
	focusLabel     = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
	fieldErrStyle  = lipgloss.NewStyle().Foreground(colorError)

	buttonStyle         = lipgloss.NewStyle().Padding(0, 3).Foreground(colorMantle).Background(colorBrand).Bold(true)
	buttonFocusStyle    = buttonStyle.Background(colorFocus)
	buttonDisabledStyle = lipgloss.NewStyle().Padding(0, 3).Foreground(colorOverlay0).Background(colorSurface0)

	alertTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorSuccess)
	alertCardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSuccess).Padding(1, 2)
	spinnerStyle    = lipgloss.NewStyle().Foreground(colorBrand)
	footerStyle     = lipgloss.NewStyle().Foreground(colorSubtext0).Padding(0, 1)
)
