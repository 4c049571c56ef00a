package dispatchers

import (
	"errors"
	"strings"

	"github.com/rolo-tools/cli/internal/commands"
	"github.com/rolo-tools/cli/internal/fuzzy"
	"github.com/rolo-tools/cli/internal/ui"
)

// Registry is the command lookup surface the dispatcher needs.
type Registry interface {
	Get(name string) (commands.Command, bool)
	Names() []string
}

// Dispatcher turns input lines into command executions.
type Dispatcher struct {
	registry Registry
	ctx      *commands.Context
	out      *ui.Console
}

func New(registry Registry, ctx *commands.Context) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		ctx:      ctx,
		out:      ctx.Out,
	}
}

// Process tokenizes line, resolves and runs the matching command, and
// reports what happened. Execution errors are contained and printed;
// the returned error is non-nil only for commands.ErrExitRequested,
// which the caller uses to end the session.
func (d *Dispatcher) Process(line string) (Outcome, error) {
	name, args := Tokenize(line)
	if name == "" {
		return Outcome{Kind: NoOp}, nil
	}

	cmd, ok := d.registry.Get(name)
	if !ok {
		suggestions := fuzzy.Suggest(name, d.registry.Names())
		d.printUnresolved(name, suggestions)
		d.logf("unknown command: %s", name)
		return Outcome{Kind: Unresolved, Suggestions: suggestions}, nil
	}

	if !cmd.Validate(args) {
		d.out.Error("Invalid arguments")
		d.out.Println("Usage: " + cmd.Usage())
		d.logf("invalid arguments for %s", cmd.Name())
		return Outcome{Kind: ValidationFailed, Command: cmd}, nil
	}

	err := cmd.Execute(args, d.ctx)
	if errors.Is(err, commands.ErrExitRequested) {
		return Outcome{Kind: Executed, Command: cmd, ExecErr: err}, err
	}
	if err != nil {
		d.out.Errorf("Error executing command: %v", err)
		d.logf("command %s failed: %v", cmd.Name(), err)
	}
	return Outcome{Kind: Executed, Command: cmd, ExecErr: err}, nil
}

func (d *Dispatcher) printUnresolved(name string, suggestions []string) {
	d.out.Errorf("Unknown command: %s", name)
	if len(suggestions) > 0 {
		d.out.Warningf("Did you mean: %s?", strings.Join(suggestions, ", "))
	}
	d.out.Info("Type 'help' to see available commands.")
}

func (d *Dispatcher) logf(format string, args ...any) {
	if d.ctx.Log != nil {
		d.ctx.Log.Debug(format, args...)
	}
}
