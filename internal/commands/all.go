package commands

// All returns one instance of every command the application ships.
func All() []Command {
	return []Command{
		newAddContactCommand(),
		newListContactsCommand(),
		newSearchContactsCommand(),
		newEditContactCommand(),
		newDeleteContactCommand(),
		newBirthdaysCommand(),
		newGenerateContactsCommand(),
		newCleanContactsCommand(),

		newAddNoteCommand(),
		newListNotesCommand(),
		newSearchNotesCommand(),
		newEditNoteCommand(),
		newDeleteNoteCommand(),
		newGenerateNotesCommand(),
		newCleanNotesCommand(),

		newSearchTagCommand(),
		newAddTagCommand(),
		newRemoveTagCommand(),
		newListTagsCommand(),
		newNotesByTagCommand(),
		newCleanTagsCommand(),

		newHelpCommand(),
		newExitCommand(),
		newClearCommand(),
	}
}
