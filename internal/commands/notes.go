package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rolo-tools/cli/internal/domain"
	"github.com/rolo-tools/cli/internal/gen"
)

const notePreviewLen = 60

type addNoteCommand struct {
	meta
}

func newAddNoteCommand() *addNoteCommand {
	return &addNoteCommand{meta: meta{
		name:        "add-note",
		aliases:     []string{"an", "new-note"},
		description: "Add a new note",
		usage:       "add-note <content> [tag...]",
		examples: []string{
			`add-note "Buy milk tomorrow" errands`,
			`add-note "Quarterly report draft" work urgent`,
		},
		category: "Notes",
	}}
}

func (c *addNoteCommand) Validate(args []string) bool { return len(args) >= 1 }

func (c *addNoteCommand) Execute(args []string, ctx *Context) error {
	note, err := domain.NewNote(args[0], args[1:])
	if err != nil {
		return err
	}
	if err := ctx.Notes.Add(note); err != nil {
		return err
	}
	ctx.Out.Successf("Note added: %s", note.Preview(notePreviewLen))
	ctx.Log.Info("note added: %s", note.ID)
	return nil
}

type listNotesCommand struct {
	meta
}

func newListNotesCommand() *listNotesCommand {
	return &listNotesCommand{meta: meta{
		name:        "list-notes",
		aliases:     []string{"ln", "notes"},
		description: "List all notes",
		usage:       "list-notes",
		category:    "Notes",
	}}
}

func (c *listNotesCommand) Validate(args []string) bool { return len(args) == 0 }

func (c *listNotesCommand) Execute(_ []string, ctx *Context) error {
	notes, err := ctx.Notes.All()
	if err != nil {
		return err
	}
	if len(notes) == 0 {
		ctx.Out.Info("No notes yet. Use 'add-note' to create one.")
		return nil
	}
	printNoteTable(ctx, notes)
	ctx.Out.Infof("%d note(s).", len(notes))
	return nil
}

type searchNotesCommand struct {
	meta
}

func newSearchNotesCommand() *searchNotesCommand {
	return &searchNotesCommand{meta: meta{
		name:        "search-notes",
		aliases:     []string{"sn", "find-notes"},
		description: "Search notes by content or tag",
		usage:       "search-notes <query>",
		examples:    []string{"search-notes milk"},
		category:    "Notes",
	}}
}

func (c *searchNotesCommand) Validate(args []string) bool { return len(args) == 1 }

func (c *searchNotesCommand) Execute(args []string, ctx *Context) error {
	notes, err := ctx.Notes.Search(args[0])
	if err != nil {
		return err
	}
	if len(notes) == 0 {
		ctx.Out.Warningf("No notes match '%s'.", args[0])
		return nil
	}
	printNoteTable(ctx, notes)
	ctx.Out.Infof("%d match(es).", len(notes))
	return nil
}

type editNoteCommand struct {
	meta
}

func newEditNoteCommand() *editNoteCommand {
	return &editNoteCommand{meta: meta{
		name:        "edit-note",
		aliases:     []string{"en", "update-note"},
		description: "Replace the content of a note",
		usage:       "edit-note <content-match> <new-content>",
		examples:    []string{`edit-note "Buy milk" "Buy milk and eggs"`},
		category:    "Notes",
	}}
}

func (c *editNoteCommand) Validate(args []string) bool { return len(args) == 2 }

func (c *editNoteCommand) Execute(args []string, ctx *Context) error {
	note, err := findNote(ctx, args[0])
	if err != nil {
		return err
	}
	if err := note.SetContent(args[1]); err != nil {
		return err
	}
	if err := ctx.Notes.Update(note); err != nil {
		return err
	}
	ctx.Out.Successf("Note updated: %s", note.Preview(notePreviewLen))
	ctx.Log.Info("note updated: %s", note.ID)
	return nil
}

type deleteNoteCommand struct {
	meta
}

func newDeleteNoteCommand() *deleteNoteCommand {
	return &deleteNoteCommand{meta: meta{
		name:        "delete-note",
		aliases:     []string{"dn", "remove-note"},
		description: "Delete a note",
		usage:       "delete-note <content-match>",
		examples:    []string{`delete-note "Buy milk"`},
		category:    "Notes",
	}}
}

func (c *deleteNoteCommand) Validate(args []string) bool { return len(args) == 1 }

func (c *deleteNoteCommand) Execute(args []string, ctx *Context) error {
	note, err := findNote(ctx, args[0])
	if err != nil {
		return err
	}
	if !ctx.Out.Confirm(fmt.Sprintf("Delete note '%s'?", note.Preview(notePreviewLen))) {
		ctx.Out.Info("Canceled.")
		return nil
	}
	if err := ctx.Notes.Delete(note.ID); err != nil {
		return err
	}
	ctx.Out.Success("Note deleted.")
	ctx.Log.Info("note deleted: %s", note.ID)
	return nil
}

type generateNotesCommand struct {
	meta
}

func newGenerateNotesCommand() *generateNotesCommand {
	return &generateNotesCommand{meta: meta{
		name:        "generate-notes",
		aliases:     []string{"gn", "random-notes"},
		description: "Generate random notes",
		usage:       "generate-notes [count]",
		examples:    []string{"generate-notes 20"},
		category:    "Notes",
	}}
}

func (c *generateNotesCommand) Validate(args []string) bool {
	if len(args) == 0 {
		return true
	}
	if len(args) != 1 {
		return false
	}
	count, err := strconv.Atoi(args[0])
	return err == nil && count > 0
}

func (c *generateNotesCommand) Execute(args []string, ctx *Context) error {
	count := 100
	if len(args) == 1 {
		count, _ = strconv.Atoi(args[0])
	}
	for i := 0; i < count; i++ {
		if err := ctx.Notes.Add(gen.Note()); err != nil {
			return err
		}
	}
	ctx.Out.Successf("Generated %d note(s).", count)
	return nil
}

type cleanNotesCommand struct {
	meta
}

func newCleanNotesCommand() *cleanNotesCommand {
	return &cleanNotesCommand{meta: meta{
		name:        "clean-notes",
		aliases:     []string{"cn", "clear-notes"},
		description: "Delete all notes",
		usage:       "clean-notes",
		category:    "Notes",
	}}
}

func (c *cleanNotesCommand) Validate(args []string) bool { return len(args) == 0 }

func (c *cleanNotesCommand) Execute(_ []string, ctx *Context) error {
	if !ctx.Out.Confirm("Delete ALL notes? This cannot be undone.") {
		ctx.Out.Info("Canceled.")
		return nil
	}
	if err := ctx.Notes.Clear(); err != nil {
		return err
	}
	ctx.Out.Success("All notes deleted.")
	ctx.Log.Info("notes cleared")
	return nil
}

// findNote resolves a content fragment to the oldest matching note.
func findNote(ctx *Context, match string) (*domain.Note, error) {
	note, err := ctx.Notes.FindByContent(match)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, fmt.Errorf("no note matches %q", match)
		}
		return nil, err
	}
	return note, nil
}

func printNoteTable(ctx *Context, notes []*domain.Note) {
	rows := make([][]string, 0, len(notes))
	for _, note := range notes {
		rows = append(rows, []string{
			shortID(note.ID),
			note.Preview(notePreviewLen),
			strings.Join(note.Tags, ", "),
			note.CreatedAt.Format("2006-01-02"),
		})
	}
	ctx.Out.Table([]string{"ID", "Content", "Tags", "Created"}, rows)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
