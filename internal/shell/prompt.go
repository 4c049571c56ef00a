package shell

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rolo-tools/cli/internal/ui/style"
)

var (
	errInterrupted = errors.New("interrupted")
	errEndOfInput  = errors.New("end of input")
)

// promptModel is a one-line input with command completion and history
// recall. Tab accepts the current suggestion, up and down walk the
// history, ctrl+n and ctrl+p cycle suggestions.
type promptModel struct {
	input       textinput.Model
	history     []string
	historyIdx  int
	draft       string
	line        string
	interrupted bool
	eof         bool
}

func newPromptModel(suggestions, history []string) promptModel {
	ti := textinput.New()
	ti.Prompt = style.Header("rolo") + "> "
	ti.ShowSuggestions = true
	ti.SetSuggestions(suggestions)
	// Up and down are reserved for history recall.
	ti.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+n"))
	ti.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+p"))
	ti.Focus()

	return promptModel{
		input:      ti,
		history:    history,
		historyIdx: len(history),
	}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "ctrl+c":
		m.interrupted = true
		return m, tea.Quit

	case "ctrl+d":
		if m.input.Value() == "" {
			m.eof = true
			return m, tea.Quit
		}

	case "enter":
		m.line = m.input.Value()
		return m, tea.Quit

	case "up":
		if m.historyIdx > 0 {
			if m.historyIdx == len(m.history) {
				m.draft = m.input.Value()
			}
			m.historyIdx--
			m.setValue(m.history[m.historyIdx])
		}
		return m, nil

	case "down":
		if m.historyIdx < len(m.history) {
			m.historyIdx++
			if m.historyIdx == len(m.history) {
				m.setValue(m.draft)
			} else {
				m.setValue(m.history[m.historyIdx])
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(keyMsg)
	return m, cmd
}

func (m *promptModel) setValue(value string) {
	m.input.SetValue(value)
	m.input.CursorEnd()
}

func (m promptModel) View() string {
	return m.input.View()
}
