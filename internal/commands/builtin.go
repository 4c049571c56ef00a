package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rolo-tools/cli/internal/fuzzy"
)

// categorized is implemented by commands that belong to a help group.
type categorized interface {
	Category() string
}

func (m meta) Category() string { return m.category }

type helpCommand struct {
	meta
}

func newHelpCommand() *helpCommand {
	return &helpCommand{meta: meta{
		name:        "help",
		aliases:     []string{"h", "?"},
		description: "Show available commands or help for one command",
		usage:       "help [command]",
		examples:    []string{"help", "help add-contact"},
		category:    "General",
	}}
}

func (c *helpCommand) Validate(args []string) bool { return len(args) <= 1 }

func (c *helpCommand) Execute(args []string, ctx *Context) error {
	if len(args) == 0 {
		c.printOverview(ctx)
		return nil
	}
	return c.printCommand(args[0], ctx)
}

func (c *helpCommand) printOverview(ctx *Context) {
	ctx.Out.Header("Available commands")

	groups := make(map[string][]Command)
	for _, cmd := range ctx.Registry.Commands() {
		category := "General"
		if cat, ok := cmd.(categorized); ok && cat.Category() != "" {
			category = cat.Category()
		}
		groups[category] = append(groups[category], cmd)
	}

	order := []string{"Contacts", "Notes", "Tags", "General"}
	var rest []string
	for category := range groups {
		if !containsString(order, category) {
			rest = append(rest, category)
		}
	}
	sort.Strings(rest)
	order = append(order, rest...)

	for _, category := range order {
		cmds := groups[category]
		if len(cmds) == 0 {
			continue
		}
		ctx.Out.Println()
		ctx.Out.Println(category + ":")
		for _, cmd := range cmds {
			label := cmd.Name()
			if aliases := cmd.Aliases(); len(aliases) > 0 {
				label += " (" + strings.Join(aliases, ", ") + ")"
			}
			ctx.Out.Printf("  %-36s %s\n", label, cmd.Description())
		}
	}
	ctx.Out.Println()
	ctx.Out.Info("Type 'help <command>' for details about a command.")
}

func (c *helpCommand) printCommand(name string, ctx *Context) error {
	name = strings.ToLower(name)
	cmd, ok := ctx.Registry.Get(name)
	if !ok {
		ctx.Out.Errorf("Unknown command: %s", name)
		if match, found := fuzzy.BestMatch(name, ctx.Registry.Names(), fuzzy.MatchThreshold); found {
			ctx.Out.Warningf("Did you mean: %s?", match)
		}
		return nil
	}

	ctx.Out.Header(cmd.Name())
	ctx.Out.Println(cmd.Description())
	ctx.Out.Println()
	ctx.Out.Println("Usage: " + cmd.Usage())
	if aliases := cmd.Aliases(); len(aliases) > 0 {
		ctx.Out.Println("Aliases: " + strings.Join(aliases, ", "))
	}
	if examples := cmd.Examples(); len(examples) > 0 {
		ctx.Out.Println()
		ctx.Out.Println("Examples:")
		for _, ex := range examples {
			ctx.Out.Println("  " + ex)
		}
	}
	return nil
}

type exitCommand struct {
	meta
}

func newExitCommand() *exitCommand {
	return &exitCommand{meta: meta{
		name:        "exit",
		aliases:     []string{"quit", "q", "bye"},
		description: "Leave the session",
		usage:       "exit",
		category:    "General",
	}}
}

func (c *exitCommand) Validate(args []string) bool { return len(args) == 0 }

func (c *exitCommand) Execute(_ []string, ctx *Context) error {
	ctx.Out.Success("Goodbye!")
	return ErrExitRequested
}

type clearCommand struct {
	meta
}

func newClearCommand() *clearCommand {
	return &clearCommand{meta: meta{
		name:        "clear",
		aliases:     []string{"cls"},
		description: "Clear the screen",
		usage:       "clear",
		category:    "General",
	}}
}

func (c *clearCommand) Validate(args []string) bool { return len(args) == 0 }

func (c *clearCommand) Execute(_ []string, ctx *Context) error {
	fmt.Fprint(ctx.Out.Writer(), "\033[2J\033[H")
	return nil
}

func containsString(items []string, s string) bool {
	for _, item := range items {
		if item == s {
			return true
		}
	}
	return false
}
