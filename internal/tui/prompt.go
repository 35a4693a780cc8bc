package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// passwordModel is a single masked input line.
type passwordModel struct {
	label     string
	input     textinput.Model
	submitted bool
	cancelled bool
}

func newPasswordModel(label string) passwordModel {
	in := textinput.New()
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'
	in.CharLimit = 72
	in.Width = 40
	in.Prompt = ""
	in.Focus()

	return passwordModel{label: label, input: in}
}

func (m passwordModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m passwordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.submitted = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m passwordModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}
	return promptStyle.Render(m.label+": ") + m.input.View() + "\n" + helpStyle.Render("enter: submit  esc: cancel") + "\n"
}

// PromptPassword asks for a secret on in without echoing it to out.
func PromptPassword(label string, in io.Reader, out io.Writer) (string, error) {
	final, err := tea.NewProgram(newPasswordModel(label), tea.WithInput(in), tea.WithOutput(out)).Run()
	if err != nil {
		return "", fmt.Errorf("password prompt: %w", err)
	}

	m, ok := final.(passwordModel)
	if !ok || m.cancelled {
		return "", ErrPromptCancelled
	}
	return m.input.Value(), nil
}
