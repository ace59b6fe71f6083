package listing

import (
	"errors"
	"io"

	"github.com/bnema/pomodesk/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	view   func(styles) string
	styles styles
	output string
}

func newModel(view func(styles) string) model {
	return model{
		view:   view,
		styles: newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = m.view(m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

func RenderTodos(todos []domain.Todo, opts RenderOptions) (string, error) {
	return run(func(s styles) string {
		return renderTodos(todos, opts, s)
	})
}

func RenderSessions(sessions []domain.Session, opts RenderOptions) (string, error) {
	return run(func(s styles) string {
		return renderSessions(sessions, opts, s)
	})
}

func RenderSettings(settings domain.Settings, config domain.PomodoroConfig) (string, error) {
	return run(func(s styles) string {
		return renderSettings(settings, config, s)
	})
}

func run(view func(styles) string) (string, error) {
	p := tea.NewProgram(
		newModel(view),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
