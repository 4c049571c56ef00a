package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rolo-tools/cli/internal/commands"
	"github.com/rolo-tools/cli/internal/dispatchers"
	"github.com/rolo-tools/cli/internal/ui"
)

// Shell runs the read-eval-print loop. When interactive it renders a
// completing prompt per line; otherwise it consumes stdin like a script.
type Shell struct {
	dispatcher  *dispatchers.Dispatcher
	out         *ui.Console
	history     *History
	suggestions []string
	stdin       io.Reader
	interactive bool
	scanner     *bufio.Scanner
}

// Options configures a Shell.
type Options struct {
	Dispatcher  *dispatchers.Dispatcher
	Out         *ui.Console
	History     *History
	Suggestions []string
	Stdin       io.Reader
	Interactive bool
}

func New(opts Options) *Shell {
	stdin := opts.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	return &Shell{
		dispatcher:  opts.Dispatcher,
		out:         opts.Out,
		history:     opts.History,
		suggestions: opts.Suggestions,
		stdin:       stdin,
		interactive: opts.Interactive,
	}
}

// Run processes input until the user exits or input ends.
func (s *Shell) Run() error {
	if s.interactive {
		s.out.Header("Welcome to rolo!")
		s.out.Info("Type 'help' to see available commands.")
		s.out.Println()
	}

	for {
		line, err := s.readLine()
		switch {
		case errors.Is(err, errInterrupted):
			s.out.Warning("Use 'exit' to quit.")
			continue
		case errors.Is(err, errEndOfInput):
			s.out.Println()
			s.out.Success("Goodbye!")
			return nil
		case err != nil:
			return err
		}

		outcome, err := s.dispatcher.Process(line)
		if errors.Is(err, commands.ErrExitRequested) {
			return nil
		}
		if err != nil {
			return err
		}
		if outcome.Kind != dispatchers.NoOp && s.history != nil {
			if err := s.history.Add(line); err != nil {
				return fmt.Errorf("saving history: %w", err)
			}
		}
	}
}

func (s *Shell) readLine() (string, error) {
	if s.interactive {
		return s.readInteractive()
	}
	return s.readPlain()
}

func (s *Shell) readInteractive() (string, error) {
	var history []string
	if s.history != nil {
		history = s.history.Entries()
	}

	p := tea.NewProgram(
		newPromptModel(s.suggestions, history),
		tea.WithInput(s.stdin),
		tea.WithOutput(s.out.Writer()),
	)
	final, err := p.Run()
	if err != nil {
		return "", err
	}

	m := final.(promptModel)
	if m.interrupted {
		return "", errInterrupted
	}
	if m.eof {
		return "", errEndOfInput
	}
	return m.line, nil
}

func (s *Shell) readPlain() (string, error) {
	if s.scanner == nil {
		s.scanner = bufio.NewScanner(s.stdin)
	}
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", errEndOfInput
	}
	return s.scanner.Text(), nil
}
