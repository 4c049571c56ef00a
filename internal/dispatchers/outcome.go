package dispatchers

import "github.com/rolo-tools/cli/internal/commands"

// OutcomeKind classifies what happened to a processed input line.
type OutcomeKind int

const (
	// NoOp means the line was empty or whitespace only.
	NoOp OutcomeKind = iota
	// Executed means a command ran, successfully or not.
	Executed
	// ValidationFailed means the command rejected its arguments.
	ValidationFailed
	// Unresolved means no command matched the first token.
	Unresolved
)

func (k OutcomeKind) String() string {
	switch k {
	case NoOp:
		return "noop"
	case Executed:
		return "executed"
	case ValidationFailed:
		return "validation-failed"
	case Unresolved:
		return "unresolved"
	default:
		return "unknown"
	}
}

// Outcome describes the result of processing one input line.
type Outcome struct {
	Kind OutcomeKind

	// Command is the resolved command for Executed and ValidationFailed.
	Command commands.Command

	// Suggestions holds similar command names for Unresolved.
	Suggestions []string

	// ExecErr is the error Execute returned, if any.
	ExecErr error
}
