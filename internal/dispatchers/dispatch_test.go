package dispatchers

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rolo-tools/cli/internal/commands"
	"github.com/rolo-tools/cli/internal/log"
	"github.com/rolo-tools/cli/internal/ui"
)

type fakeCommand struct {
	name     string
	aliases  []string
	usage    string
	valid    bool
	execErr  error
	executed [][]string
}

func (f *fakeCommand) Name() string        { return f.name }
func (f *fakeCommand) Aliases() []string   { return f.aliases }
func (f *fakeCommand) Description() string { return "fake" }
func (f *fakeCommand) Usage() string       { return f.usage }
func (f *fakeCommand) Examples() []string  { return nil }

func (f *fakeCommand) Validate(_ []string) bool { return f.valid }

func (f *fakeCommand) Execute(args []string, _ *commands.Context) error {
	f.executed = append(f.executed, args)
	return f.execErr
}

func newTestDispatcher(t *testing.T, cmds ...commands.Command) (*Dispatcher, *bytes.Buffer) {
	t.Helper()
	registry := commands.NewRegistry()
	for _, cmd := range cmds {
		require.NoError(t, registry.Register(cmd))
	}
	var out bytes.Buffer
	ctx := &commands.Context{
		Registry: registry,
		Out:      ui.NewConsole(&out, strings.NewReader("")),
		Log:      log.NopLogger{},
	}
	return New(registry, ctx), &out
}

func TestProcessEmptyLine(t *testing.T) {
	d, out := newTestDispatcher(t)

	for _, line := range []string{"", "   ", "\t"} {
		outcome, err := d.Process(line)
		require.NoError(t, err)
		require.Equal(t, NoOp, outcome.Kind)
	}
	require.Empty(t, out.String())
}

func TestProcessExecutesCommand(t *testing.T) {
	cmd := &fakeCommand{name: "greet", valid: true}
	d, _ := newTestDispatcher(t, cmd)

	outcome, err := d.Process(`greet "John Doe"`)
	require.NoError(t, err)
	require.Equal(t, Executed, outcome.Kind)
	require.Equal(t, cmd, outcome.Command)
	require.NoError(t, outcome.ExecErr)
	require.Equal(t, [][]string{{"John Doe"}}, cmd.executed)
}

func TestProcessResolvesAlias(t *testing.T) {
	cmd := &fakeCommand{name: "list-contacts", aliases: []string{"lc"}, valid: true}
	d, _ := newTestDispatcher(t, cmd)

	outcome, err := d.Process("lc")
	require.NoError(t, err)
	require.Equal(t, Executed, outcome.Kind)
	require.Len(t, cmd.executed, 1)
}

func TestProcessValidationFailure(t *testing.T) {
	cmd := &fakeCommand{name: "add-contact", usage: "add-contact <name>", valid: false}
	d, out := newTestDispatcher(t, cmd)

	outcome, err := d.Process("add-contact")
	require.NoError(t, err)
	require.Equal(t, ValidationFailed, outcome.Kind)
	require.Equal(t, cmd, outcome.Command)
	require.Empty(t, cmd.executed)
	require.Contains(t, out.String(), "Invalid arguments")
	require.Contains(t, out.String(), "add-contact <name>")
}

func TestProcessUnknownCommand(t *testing.T) {
	d, out := newTestDispatcher(t,
		&fakeCommand{name: "add-contact", valid: true},
		&fakeCommand{name: "add-note", valid: true},
	)

	outcome, err := d.Process("add-contat")
	require.NoError(t, err)
	require.Equal(t, Unresolved, outcome.Kind)
	require.Contains(t, outcome.Suggestions, "add-contact")
	require.Contains(t, out.String(), "Unknown command: add-contat")
	require.Contains(t, out.String(), "Did you mean:")
	require.Contains(t, out.String(), "Type 'help' to see available commands.")
}

func TestProcessUnknownWithoutSuggestions(t *testing.T) {
	d, out := newTestDispatcher(t, &fakeCommand{name: "help", valid: true})

	outcome, err := d.Process("zzzzzzzz")
	require.NoError(t, err)
	require.Equal(t, Unresolved, outcome.Kind)
	require.Empty(t, outcome.Suggestions)
	require.NotContains(t, out.String(), "Did you mean")
}

func TestProcessContainsExecutionErrors(t *testing.T) {
	boom := errors.New("storage unavailable")
	cmd := &fakeCommand{name: "list-notes", valid: true, execErr: boom}
	d, out := newTestDispatcher(t, cmd)

	outcome, err := d.Process("list-notes")
	require.NoError(t, err)
	require.Equal(t, Executed, outcome.Kind)
	require.ErrorIs(t, outcome.ExecErr, boom)
	require.Contains(t, out.String(), "Error executing command: storage unavailable")
}

func TestProcessPropagatesExit(t *testing.T) {
	cmd := &fakeCommand{name: "exit", valid: true, execErr: commands.ErrExitRequested}
	d, _ := newTestDispatcher(t, cmd)

	outcome, err := d.Process("exit")
	require.ErrorIs(t, err, commands.ErrExitRequested)
	require.Equal(t, Executed, outcome.Kind)
	require.ErrorIs(t, outcome.ExecErr, commands.ErrExitRequested)
}
