package commands

import (
	"fmt"
	"sort"
)

// DuplicateNameError is returned when a command name is already taken.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("command %q is already registered", e.Name)
}

// DuplicateAliasError is returned when an alias collides with an
// existing name or alias.
type DuplicateAliasError struct {
	Alias string
}

func (e *DuplicateAliasError) Error() string {
	return fmt.Sprintf("alias %q is already registered", e.Alias)
}

// Registry maps command names and aliases to commands. Aliases resolve
// to their canonical command on lookup.
type Registry struct {
	byName  map[string]Command
	byAlias map[string]string
}

func NewRegistry() *Registry {
	return &Registry{
		byName:  make(map[string]Command),
		byAlias: make(map[string]string),
	}
}

// Register adds cmd under its name and all of its aliases. Registration
// is atomic: every key is checked before any is inserted, so a conflict
// leaves the registry unchanged.
func (r *Registry) Register(cmd Command) error {
	name := cmd.Name()
	if _, ok := r.byName[name]; ok {
		return &DuplicateNameError{Name: name}
	}
	if _, ok := r.byAlias[name]; ok {
		return &DuplicateNameError{Name: name}
	}

	seen := map[string]bool{name: true}
	for _, alias := range cmd.Aliases() {
		if _, ok := r.byName[alias]; ok {
			return &DuplicateAliasError{Alias: alias}
		}
		if _, ok := r.byAlias[alias]; ok {
			return &DuplicateAliasError{Alias: alias}
		}
		if seen[alias] {
			return &DuplicateAliasError{Alias: alias}
		}
		seen[alias] = true
	}

	r.byName[name] = cmd
	for _, alias := range cmd.Aliases() {
		r.byAlias[alias] = name
	}
	return nil
}

// Get resolves name (canonical or alias) to its command.
func (r *Registry) Get(name string) (Command, bool) {
	if cmd, ok := r.byName[name]; ok {
		return cmd, true
	}
	if canonical, ok := r.byAlias[name]; ok {
		return r.byName[canonical], true
	}
	return nil, false
}

// Names returns every registered name and alias, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName)+len(r.byAlias))
	for name := range r.byName {
		names = append(names, name)
	}
	for alias := range r.byAlias {
		names = append(names, alias)
	}
	sort.Strings(names)
	return names
}

// Commands returns the registered commands sorted by canonical name.
func (r *Registry) Commands() []Command {
	cmds := make([]Command, 0, len(r.byName))
	for _, cmd := range r.byName {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name() < cmds[j].Name() })
	return cmds
}
