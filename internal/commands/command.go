package commands

import (
	"errors"

	"github.com/rolo-tools/cli/internal/domain"
	"github.com/rolo-tools/cli/internal/ui"
)

// ErrExitRequested signals that the user asked to leave the session.
// It is the only execution error the dispatcher propagates to its caller.
var ErrExitRequested = errors.New("exit requested")

// Command is a single named operation the user can invoke.
type Command interface {
	Name() string
	Aliases() []string
	Description() string
	Usage() string
	Examples() []string

	// Validate reports whether args are acceptable for Execute.
	// It must not produce side effects.
	Validate(args []string) bool

	Execute(args []string, ctx *Context) error
}

// Context carries the shared dependencies commands run against.
type Context struct {
	Contacts domain.ContactStore
	Notes    domain.NoteStore
	Registry *Registry
	Out      *ui.Console
	Log      domain.Logger
}

// meta holds the static identity of a command. Command types embed it
// so the boilerplate accessors live in one place.
type meta struct {
	name        string
	aliases     []string
	description string
	usage       string
	examples    []string
	category    string
}

func (m meta) Name() string        { return m.name }
func (m meta) Aliases() []string   { return m.aliases }
func (m meta) Description() string { return m.description }
func (m meta) Usage() string       { return m.usage }
func (m meta) Examples() []string  { return m.examples }
