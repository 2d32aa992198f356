package tui

import (
	"context"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/maxgas/maxgas/internal/login"
	"github.com/maxgas/maxgas/internal/submit"
)

const (
	alertTitle = "Success"
	alertBody  = "Login form submitted! Check console logs."

	submitLabel  = "Login"
	loadingLabel = "Submitting..."
)

// Focus stops are the fields in order followed by the submit button.
var (
	fieldOrder    = login.Fields
	focusSubmit   = len(fieldOrder)
	focusStopsLen = len(fieldOrder) + 1
)

var fieldLabels = map[login.Field]string{
	login.FieldPhone:    "Phone number",
	login.FieldPassword: "Password",
}

// submitDoneMsg carries the result of one submission back to the screen
// that started it.
type submitDoneMsg struct {
	id        string
	err       error
	recordErr error
}

// inflight is the submission currently running.
type inflight struct {
	id     string
	cancel context.CancelFunc
}

type loginScreen struct {
	ctx     context.Context
	svc     *submit.Service
	log     zerolog.Logger
	keys    keyMap
	form    *login.Form
	inputs  []textinput.Model
	focus   int
	spinner spinner.Model
	pending *inflight
	running sync.WaitGroup
	alert   bool
	lastErr error
	closed  bool
}

func newLoginScreen(ctx context.Context, svc *submit.Service, log zerolog.Logger, keys keyMap) *loginScreen {
	phone := textinput.New()
	phone.Placeholder = "+254712345678"
	phone.Prompt = "› "

	password := textinput.New()
	password.Placeholder = "at least 6 characters"
	password.Prompt = "› "
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(spinnerStyle))

	l := &loginScreen{
		ctx:     ctx,
		svc:     svc,
		log:     log,
		keys:    keys,
		form:    login.NewForm(),
		inputs:  []textinput.Model{phone, password},
		spinner: sp,
	}
	l.inputs[0].Focus()
	return l
}

func (l *loginScreen) Title() string { return "Login" }
func (l *loginScreen) Modal() bool   { return l.alert }

func (l *loginScreen) Init() tea.Cmd { return textinput.Blink }

func (l *loginScreen) ShortHelp() []key.Binding {
	if l.alert {
		return []key.Binding{l.keys.Dismiss}
	}
	return []key.Binding{l.keys.Next, l.keys.Prev, l.keys.Submit, l.keys.Home}
}

func (l *loginScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case submitDoneMsg:
		return l.finish(msg)
	case spinner.TickMsg:
		if !l.form.Loading() {
			return nil
		}
		var cmd tea.Cmd
		l.spinner, cmd = l.spinner.Update(msg)
		return cmd
	case tea.KeyMsg:
		return l.handleKey(msg)
	}
	if l.focus < len(l.inputs) {
		var cmd tea.Cmd
		l.inputs[l.focus], cmd = l.inputs[l.focus].Update(msg)
		return cmd
	}
	return nil
}

func (l *loginScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	if l.alert {
		if key.Matches(msg, l.keys.Dismiss) {
			l.alert = false
		}
		return nil
	}
	switch {
	case key.Matches(msg, l.keys.Next):
		return l.moveFocus(1)
	case key.Matches(msg, l.keys.Prev):
		return l.moveFocus(-1)
	case key.Matches(msg, l.keys.Submit):
		if l.focus == 0 {
			return l.moveFocus(1)
		}
		// leaving the last field for the button counts as a blur
		if l.focus < len(fieldOrder) {
			l.form.Blur(fieldOrder[l.focus])
		}
		return l.submit()
	}
	if l.focus >= len(l.inputs) {
		return nil
	}
	var cmd tea.Cmd
	l.inputs[l.focus], cmd = l.inputs[l.focus].Update(msg)
	field := fieldOrder[l.focus]
	if v := l.inputs[l.focus].Value(); v != l.form.Values().Get(field) {
		l.form.Set(field, v)
		l.lastErr = nil
	}
	return cmd
}

func (l *loginScreen) moveFocus(delta int) tea.Cmd {
	if l.focus < len(fieldOrder) {
		l.form.Blur(fieldOrder[l.focus])
		l.inputs[l.focus].Blur()
	}
	l.focus = (l.focus + delta + focusStopsLen) % focusStopsLen
	if l.focus < len(l.inputs) {
		return l.inputs[l.focus].Focus()
	}
	return nil
}

// submit starts the simulated action when the control is enabled. A disabled
// control ignores the key.
func (l *loginScreen) submit() tea.Cmd {
	if l.closed || l.form.SubmitDisabled() {
		return nil
	}
	values, err := l.form.Begin()
	if err != nil {
		return nil
	}
	ctx, cancel := context.WithCancel(l.ctx)
	id := uuid.NewString()
	l.pending = &inflight{id: id, cancel: cancel}
	l.lastErr = nil
	l.running.Add(1)
	return tea.Batch(l.spinner.Tick, l.runSubmit(ctx, submit.Submission{ID: id, Values: values}))
}

func (l *loginScreen) runSubmit(ctx context.Context, s submit.Submission) tea.Cmd {
	return func() tea.Msg {
		defer l.running.Done()
		err, recordErr := l.svc.Run(ctx, s)
		return submitDoneMsg{id: s.ID, err: err, recordErr: recordErr}
	}
}

func (l *loginScreen) finish(msg submitDoneMsg) tea.Cmd {
	if l.closed || l.pending == nil || l.pending.id != msg.id {
		l.log.Debug().Str("submission_id", msg.id).Msg("dropping stale submission result")
		return nil
	}
	l.pending.cancel()
	l.pending = nil
	if msg.recordErr != nil {
		l.log.Warn().Err(msg.recordErr).Str("submission_id", msg.id).Msg("record submission")
	}
	l.form.Finish(msg.err)
	if msg.err != nil {
		l.lastErr = msg.err
		return nil
	}
	for i := range l.inputs {
		l.inputs[i].Reset()
		l.inputs[i].Blur()
	}
	l.focus = 0
	l.alert = true
	return l.inputs[0].Focus()
}

func (l *loginScreen) Close() {
	if l.closed {
		return
	}
	l.closed = true
	if l.pending != nil {
		l.pending.cancel()
		l.pending = nil
	}
}

// Wait blocks until every submission this screen started has recorded its
// outcome, or ctx ends. A submission whose command never ran counts as
// outstanding until ctx ends.
func (l *loginScreen) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		l.running.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *loginScreen) View(width, height int) string {
	lines := []string{formTitleStyle.Render("Login")}
	for i, f := range fieldOrder {
		label := labelStyle.Render(fieldLabels[f])
		if i == l.focus {
			label = focusLabel.Render(fieldLabels[f])
		}
		lines = append(lines, label, l.inputs[i].View())
		if msg, ok := l.form.VisibleError(f); ok {
			lines = append(lines, fieldErrStyle.Render(msg))
		} else {
			lines = append(lines, "")
		}
	}
	lines = append(lines, l.renderButton())
	if l.lastErr != nil {
		lines = append(lines, "", fieldErrStyle.Render(submitErrorText(l.lastErr)))
	}
	form := lipgloss.NewStyle().Padding(1, 4).Render(strings.Join(lines, "\n"))
	if !l.alert {
		return form
	}
	return renderPopup(form, alertContent(), width, height)
}

func alertContent() string {
	return strings.Join([]string{
		alertTitleStyle.Render(alertTitle),
		"",
		alertBody,
		"",
		labelStyle.Render("enter: OK"),
	}, "\n")
}

func (l *loginScreen) renderButton() string {
	switch {
	case l.form.Loading():
		return buttonDisabledStyle.Render(l.spinner.View() + " " + loadingLabel)
	case l.form.SubmitDisabled():
		return buttonDisabledStyle.Render(submitLabel)
	case l.focus == focusSubmit:
		return buttonFocusStyle.Render(submitLabel)
	default:
		return buttonStyle.Render(submitLabel)
	}
}

func submitErrorText(err error) string {
	kind, ok := submit.KindOf(err)
	if !ok {
		return "Submission failed: " + err.Error()
	}
	switch kind {
	case submit.KindTimeout:
		return "Submission timed out. Try again."
	case submit.KindNetwork:
		return "Could not reach the server. Try again."
	default:
		return err.Error()
	}
}
