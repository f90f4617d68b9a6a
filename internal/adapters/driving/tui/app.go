// Package tui implements the interactive session as an Elm-style
// Bubbletea application. The session is a small state machine: it
// waits for a prompt key, executes the research run, shows the answer
// and returns to waiting until the user quits.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dossier-labs/dossier-cli/internal/adapters/driving/tui/messages"
	"github.com/dossier-labs/dossier-cli/internal/adapters/driving/tui/styles"
	"github.com/dossier-labs/dossier-cli/internal/adapters/driving/tui/views/answer"
	"github.com/dossier-labs/dossier-cli/internal/adapters/driving/tui/views/menu"
	"github.com/dossier-labs/dossier-cli/internal/core/ports/driving"
)

const farewell = "Session ended. Goodbye."

// chrome is the number of lines reserved for the header, input and help.
const chrome = 7

// App is the interactive session model.
type App struct {
	service driving.ResearchService
	styles  *styles.Styles

	state      messages.SessionState
	input      textinput.Model
	spin       spinner.Model
	menuView   *menu.View
	answerView *answer.View

	runningKey string
	showAnswer bool
	err        error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// New creates the interactive session model.
func New(service driving.ResearchService) *App {
	s := styles.DefaultStyles()

	input := textinput.New()
	input.Placeholder = "prompt key ('list' for prompts, 'quit' to exit)"
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = s.Subtitle

	return &App{
		service:    service,
		styles:     s,
		state:      messages.StateAwaitingInput,
		input:      input,
		spin:       spin,
		menuView:   menu.NewView(s),
		answerView: answer.NewView(s),
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.SetWindowTitle("dossier"),
		a.loadPrompts(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		bodyHeight := msg.Height - chrome
		if bodyHeight < 3 {
			bodyHeight = 3
		}
		a.answerView.SetDimensions(msg.Width, bodyHeight)
		return a, nil

	case messages.PromptsLoaded:
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		a.menuView.SetPrompts(msg.Set)
		return a, nil

	case messages.ResearchCompleted:
		a.state = messages.StateAwaitingInput
		a.runningKey = ""
		if msg.Err != nil {
			a.err = msg.Err
			a.showAnswer = false
			return a, nil
		}
		a.err = nil
		a.answerView.SetAnswer(msg.Answer)
		a.showAnswer = true
		return a, nil

	case spinner.TickMsg:
		if a.state != messages.StateExecuting {
			return a, nil
		}
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		a.state = messages.StateTerminated
		return a, tea.Quit
	}

	// No input while a run is in flight
	if a.state == messages.StateExecuting {
		return a, nil
	}

	switch msg.String() {
	case "enter":
		return a.handleSubmit()

	case "pgup", "pgdown":
		// Scroll the answer without disturbing the input
		if a.showAnswer {
			var cmd tea.Cmd
			a.answerView, cmd = a.answerView.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	a.menuView.SetFilter(a.input.Value())
	return a, cmd
}

func (a *App) handleSubmit() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(a.input.Value())
	if raw == "" {
		return a, nil
	}

	switch strings.ToLower(raw) {
	case "quit", "exit", "q":
		a.state = messages.StateTerminated
		return a, tea.Quit

	case "list":
		a.input.Reset()
		a.menuView.SetFilter("")
		a.showAnswer = false
		a.err = nil
		return a, a.loadPrompts()
	}

	a.input.Reset()
	a.menuView.SetFilter("")
	a.state = messages.StateExecuting
	a.runningKey = raw
	a.err = nil

	return a, tea.Batch(a.spin.Tick, a.runResearch(raw))
}

// View implements tea.Model.
func (a *App) View() string {
	if a.state == messages.StateTerminated {
		return farewell + "\n"
	}
	if !a.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(a.styles.Title.Render("Dossier") + " " +
		a.styles.Muted.Render("deal-room research") + "\n\n")

	switch {
	case a.state == messages.StateExecuting:
		b.WriteString(a.spin.View() + " Researching " +
			a.styles.Subtitle.Render(a.runningKey) + "...\n")
	case a.err != nil:
		b.WriteString(a.styles.Error.Render("Error: "+a.err.Error()) + "\n\n")
		b.WriteString(a.menuView.View())
	case a.showAnswer:
		b.WriteString(a.answerView.View() + "\n")
	default:
		b.WriteString(a.menuView.View())
	}

	b.WriteString("\n" + a.styles.InputField.Render(a.input.View()) + "\n")
	b.WriteString(a.styles.Help.Render("enter run · list prompts · pgup/pgdn scroll · quit exit"))

	return b.String()
}

// State returns the session state.
func (a *App) State() messages.SessionState {
	return a.state
}

// Err returns the last error shown to the user.
func (a *App) Err() error {
	return a.err
}

// loadPrompts fetches the current prompt set from the service.
func (a *App) loadPrompts() tea.Cmd {
	return func() tea.Msg {
		set, err := a.service.Prompts()
		return messages.PromptsLoaded{Set: set, Err: err}
	}
}

// runResearch executes a research run for the given prompt key.
func (a *App) runResearch(key string) tea.Cmd {
	return func() tea.Msg {
		ans, err := a.service.Research(context.Background(), key)
		return messages.ResearchCompleted{Answer: ans, Err: err}
	}
}
