package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"

	"github.com/maxgas/maxgas/internal/config"
	"github.com/maxgas/maxgas/internal/submit"
)

const appName = "Max Gas ⛽"

const (
	tabHome = iota
	tabLogin
)

// App ties together the screens.
type App struct {
	keys      keyMap
	help      help.Model
	screens   []screen
	activeTab int
	width     int
	height    int
	quitting  bool
	log       zerolog.Logger
}

// New builds the app. ctx bounds any submission the login screen starts.
func New(ctx context.Context, cfg config.Config, svc *submit.Service, log zerolog.Logger) *App {
	keys := newKeyMap()
	a := &App{
		keys:   keys,
		help:   help.New(),
		log:    log,
		width:  80,
		height: 24,
	}
	a.screens = []screen{
		newHomeScreen(keys),
		newLoginScreen(ctx, svc, log, keys),
	}
	if cfg.UI.StartScreen == config.ScreenLogin {
		a.activeTab = tabLogin
	}
	return a
}

func (a *App) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(a.screens))
	for _, s := range a.screens {
		if cmd := s.Init(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.help.Width = m.Width
		return a, nil
	case tea.KeyMsg:
		if key.Matches(m, a.keys.Quit) {
			return a, a.quit()
		}
		active := a.screens[a.activeTab]
		if !active.Modal() {
			switch {
			case key.Matches(m, a.keys.Home):
				a.activeTab = tabHome
				return a, nil
			case key.Matches(m, a.keys.Login):
				a.activeTab = tabLogin
				return a, nil
			case a.activeTab == tabHome && key.Matches(m, a.keys.QuitAlt):
				return a, a.quit()
			}
		}
		return a, active.Update(m)
	}
	// screens keep running while hidden, so everything else goes to all of them
	cmds := make([]tea.Cmd, 0, len(a.screens))
	for _, s := range a.screens {
		cmds = append(cmds, s.Update(msg))
	}
	return a, tea.Batch(cmds...)
}

func (a *App) quit() tea.Cmd {
	a.quitting = true
	a.Close()
	return tea.Quit
}

// Close tears down every screen, cancelling work still in flight.
func (a *App) Close() {
	for _, s := range a.screens {
		s.Close()
	}
}

// Wait blocks until screens torn down by Close have finished recording, or
// ctx ends. Call it before closing anything the recorders write to.
func (a *App) Wait(ctx context.Context) error {
	for _, s := range a.screens {
		w, ok := s.(interface{ Wait(context.Context) error })
		if !ok {
			continue
		}
		if err := w.Wait(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) View() string {
	if a.quitting {
		return "Goodbye\n"
	}
	header := a.renderHeader()
	footer := footerStyle.Render(a.help.ShortHelpView(a.helpBindings()))
	bodyHeight := max(0, a.height-lipgloss.Height(header)-lipgloss.Height(footer))
	body := fitHeight(a.screens[a.activeTab].View(max(1, a.width), bodyHeight), bodyHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (a *App) helpBindings() []key.Binding {
	bindings := a.screens[a.activeTab].ShortHelp()
	return append(bindings, a.keys.Quit)
}

func (a *App) renderHeader() string {
	tabs := make([]string, 0, len(a.screens))
	for i, s := range a.screens {
		label := fmt.Sprintf(" F%d:%s ", i+1, s.Title())
		if i == a.activeTab {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	left := headerAppStyle.Render(" " + appName)
	right := strings.Join(tabs, tabSepStyle.Render("│"))
	gap := max(1, a.width-ansi.StringWidth(left)-ansi.StringWidth(right))
	line := ansi.Truncate(left+headerBarStyle.Render(strings.Repeat(" ", gap))+right, max(1, a.width), "")
	return headerBarStyle.Width(max(1, a.width)).MaxWidth(max(1, a.width)).Render(line)
}
