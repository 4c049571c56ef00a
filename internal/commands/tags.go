package commands

import (
	"sort"
	"strconv"
	"strings"

	"github.com/rolo-tools/cli/internal/domain"
)

type searchTagCommand struct {
	meta
}

func newSearchTagCommand() *searchTagCommand {
	return &searchTagCommand{meta: meta{
		name:        "search-tag",
		aliases:     []string{"st", "tag"},
		description: "List notes carrying a tag",
		usage:       "search-tag <tag>",
		examples:    []string{"search-tag work"},
		category:    "Tags",
	}}
}

func (c *searchTagCommand) Validate(args []string) bool { return len(args) == 1 }

func (c *searchTagCommand) Execute(args []string, ctx *Context) error {
	tag := domain.NormalizeTag(args[0])
	notes, err := ctx.Notes.ByTag(tag)
	if err != nil {
		return err
	}
	if len(notes) == 0 {
		ctx.Out.Warningf("No notes tagged '%s'.", tag)
		return nil
	}
	printNoteTable(ctx, notes)
	ctx.Out.Infof("%d note(s) tagged '%s'.", len(notes), tag)
	return nil
}

type addTagCommand struct {
	meta
}

func newAddTagCommand() *addTagCommand {
	return &addTagCommand{meta: meta{
		name:        "add-tag",
		aliases:     []string{"at"},
		description: "Add tags to a note",
		usage:       "add-tag <content-match> <tag...>",
		examples:    []string{`add-tag "Buy milk" errands urgent`},
		category:    "Tags",
	}}
}

func (c *addTagCommand) Validate(args []string) bool { return len(args) >= 2 }

func (c *addTagCommand) Execute(args []string, ctx *Context) error {
	note, err := findNote(ctx, args[0])
	if err != nil {
		return err
	}
	for _, tag := range args[1:] {
		if err := note.AddTag(tag); err != nil {
			return err
		}
	}
	if err := ctx.Notes.Update(note); err != nil {
		return err
	}
	ctx.Out.Successf("Tags now: %s", strings.Join(note.Tags, ", "))
	return nil
}

type removeTagCommand struct {
	meta
}

func newRemoveTagCommand() *removeTagCommand {
	return &removeTagCommand{meta: meta{
		name:        "remove-tag",
		aliases:     []string{"rt"},
		description: "Remove tags from a note",
		usage:       "remove-tag <content-match> <tag...>",
		examples:    []string{`remove-tag "Buy milk" urgent`},
		category:    "Tags",
	}}
}

func (c *removeTagCommand) Validate(args []string) bool { return len(args) >= 2 }

func (c *removeTagCommand) Execute(args []string, ctx *Context) error {
	note, err := findNote(ctx, args[0])
	if err != nil {
		return err
	}
	for _, tag := range args[1:] {
		if err := note.RemoveTag(tag); err != nil {
			return err
		}
	}
	if err := ctx.Notes.Update(note); err != nil {
		return err
	}
	if len(note.Tags) == 0 {
		ctx.Out.Success("All tags removed.")
	} else {
		ctx.Out.Successf("Tags now: %s", strings.Join(note.Tags, ", "))
	}
	return nil
}

type listTagsCommand struct {
	meta
}

func newListTagsCommand() *listTagsCommand {
	return &listTagsCommand{meta: meta{
		name:        "list-tags",
		aliases:     []string{"lt", "tags"},
		description: "List all tags with usage counts",
		usage:       "list-tags",
		category:    "Tags",
	}}
}

func (c *listTagsCommand) Validate(args []string) bool { return len(args) == 0 }

func (c *listTagsCommand) Execute(_ []string, ctx *Context) error {
	counts, err := ctx.Notes.Tags()
	if err != nil {
		return err
	}
	if len(counts) == 0 {
		ctx.Out.Info("No tags yet.")
		return nil
	}

	tags := make([]string, 0, len(counts))
	for tag := range counts {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		if counts[tags[i]] != counts[tags[j]] {
			return counts[tags[i]] > counts[tags[j]]
		}
		return tags[i] < tags[j]
	})

	rows := make([][]string, 0, len(tags))
	for _, tag := range tags {
		rows = append(rows, []string{tag, strconv.Itoa(counts[tag])})
	}
	ctx.Out.Table([]string{"Tag", "Notes"}, rows)
	return nil
}

type notesByTagCommand struct {
	meta
}

func newNotesByTagCommand() *notesByTagCommand {
	return &notesByTagCommand{meta: meta{
		name:        "notes-by-tag",
		aliases:     []string{"nbt", "grouped"},
		description: "Show notes grouped by tag",
		usage:       "notes-by-tag",
		category:    "Tags",
	}}
}

func (c *notesByTagCommand) Validate(args []string) bool { return len(args) == 0 }

func (c *notesByTagCommand) Execute(_ []string, ctx *Context) error {
	notes, err := ctx.Notes.All()
	if err != nil {
		return err
	}
	if len(notes) == 0 {
		ctx.Out.Info("No notes yet.")
		return nil
	}

	groups := make(map[string][]*domain.Note)
	var untagged []*domain.Note
	for _, note := range notes {
		if len(note.Tags) == 0 {
			untagged = append(untagged, note)
			continue
		}
		for _, tag := range note.Tags {
			groups[tag] = append(groups[tag], note)
		}
	}

	tags := make([]string, 0, len(groups))
	for tag := range groups {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	for _, tag := range tags {
		ctx.Out.Header("#" + tag)
		for _, note := range groups[tag] {
			ctx.Out.Println("  " + note.Preview(notePreviewLen))
		}
	}
	if len(untagged) > 0 {
		ctx.Out.Header("(untagged)")
		for _, note := range untagged {
			ctx.Out.Println("  " + note.Preview(notePreviewLen))
		}
	}
	return nil
}

type cleanTagsCommand struct {
	meta
}

func newCleanTagsCommand() *cleanTagsCommand {
	return &cleanTagsCommand{meta: meta{
		name:        "clean-tags",
		aliases:     []string{"ct", "clear-tags"},
		description: "Remove every tag from every note",
		usage:       "clean-tags",
		category:    "Tags",
	}}
}

func (c *cleanTagsCommand) Validate(args []string) bool { return len(args) == 0 }

func (c *cleanTagsCommand) Execute(_ []string, ctx *Context) error {
	if !ctx.Out.Confirm("Remove ALL tags from every note?") {
		ctx.Out.Info("Canceled.")
		return nil
	}

	notes, err := ctx.Notes.All()
	if err != nil {
		return err
	}
	cleared := 0
	for _, note := range notes {
		if len(note.Tags) == 0 {
			continue
		}
		note.ClearTags()
		if err := ctx.Notes.Update(note); err != nil {
			return err
		}
		cleared++
	}
	ctx.Out.Successf("Tags removed from %d note(s).", cleared)
	ctx.Log.Info("tags cleared from %d notes", cleared)
	return nil
}
