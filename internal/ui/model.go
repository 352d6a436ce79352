package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"envinstall/internal/install"
	"envinstall/internal/menu"
	"envinstall/internal/ui/views"
)

// batchFinishedMsg is sent when an install batch hands the terminal back
type batchFinishedMsg struct {
	report install.Report
	err    error
}

// pagerClosedMsg is sent when the history pager exits
type pagerClosedMsg struct {
	err error
}

// History provides the session install log
type History interface {
	String() string
}

// Model is the full-screen menu
type Model struct {
	ctx          context.Context
	controller   *menu.Controller
	orchestrator *install.Orchestrator
	history      History
	newRunner    RunnerFactory

	renderer *views.Renderer
	keys     views.KeyMap
	input    textinput.Model

	width    int
	message  string
	quitting bool
}

// NewModel creates the TUI model
func NewModel(ctx context.Context, controller *menu.Controller, orch *install.Orchestrator, history History, newRunner RunnerFactory) *Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "number, a, v, A, c, m, l, enter or q"
	ti.CharLimit = 16
	ti.Focus()

	renderer := views.NewRenderer()
	return &Model{
		ctx:          ctx,
		controller:   controller,
		orchestrator: orch,
		history:      history,
		newRunner:    newRunner,
		renderer:     renderer,
		keys:         renderer.Keys(),
		input:        ti,
	}
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}
		if msg.Type == tea.KeyEnter {
			line := m.input.Value()
			m.input.Reset()
			return m.handle(line)
		}

	case batchFinishedMsg:
		if msg.err != nil {
			log.WithError(msg.err).Warn("install batch")
			m.message = fmt.Sprintf("Install batch ended with an error: %v", msg.err)
		} else {
			m.message = summarize(msg.report)
		}
		return m, nil

	case pagerClosedMsg:
		if msg.err != nil {
			log.WithError(msg.err).Warn("history pager")
			m.message = fmt.Sprintf("Could not open pager: %v", msg.err)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handle(line string) (tea.Model, tea.Cmd) {
	action := m.controller.Handle(line)
	log.WithFields(log.Fields{"input": line, "action": action.String()}).Debug("menu command")
	m.message = ""

	switch action {
	case menu.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case menu.ActionInstall:
		indices := m.controller.Selected()
		if len(indices) == 0 {
			m.message = "Nothing selected!"
			return m, nil
		}
		batch := newBatchCommand(m.ctx, m.orchestrator, m.newRunner, indices)
		return m, tea.Exec(batch, func(err error) tea.Msg {
			return batchFinishedMsg{report: batch.report, err: err}
		})

	case menu.ActionShowHistory:
		pager := &pagerCommand{content: m.history.String()}
		return m, tea.Exec(pager, func(err error) tea.Msg {
			return pagerClosedMsg{err: err}
		})
	}
	return m, nil
}

func summarize(r install.Report) string {
	if len(r.Items) == 0 {
		return "Nothing selected!"
	}
	msg := fmt.Sprintf("Last batch: %d already installed, %d installed",
		r.Count(install.OutcomeAlreadyPresent), r.Count(install.OutcomeSucceeded))
	if failed := r.Count(install.OutcomeFailed); failed > 0 {
		msg += fmt.Sprintf(", %d failed", failed)
	}
	return msg
}

// View renders the menu and the choice line
func (m *Model) View() string {
	if m.quitting {
		return "Bye!\n"
	}
	state := m.controller.State()
	state.Message = m.message
	state.Width = m.width
	return m.renderer.Render(state) + "\n" + m.renderer.Prompt() + m.input.View() + "\n"
}
