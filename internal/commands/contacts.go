package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rolo-tools/cli/internal/domain"
	"github.com/rolo-tools/cli/internal/gen"
	"github.com/rolo-tools/cli/internal/validate"
)

const defaultBirthdayWindow = 7

// splitFlags separates --key=value (and bare --key) tokens from
// positional arguments. Flag order is irrelevant.
func splitFlags(args []string) (map[string]string, []string) {
	flags := make(map[string]string)
	var positional []string
	for _, arg := range args {
		if !strings.HasPrefix(arg, "--") {
			positional = append(positional, arg)
			continue
		}
		key := strings.TrimPrefix(arg, "--")
		value := ""
		if idx := strings.Index(key, "="); idx != -1 {
			key, value = key[:idx], key[idx+1:]
		}
		flags[key] = value
	}
	return flags, positional
}

func countPositional(args []string) int {
	_, positional := splitFlags(args)
	return len(positional)
}

type addContactCommand struct {
	meta
}

func newAddContactCommand() *addContactCommand {
	return &addContactCommand{meta: meta{
		name:        "add-contact",
		aliases:     []string{"ac", "new-contact"},
		description: "Add a new contact",
		usage:       `add-contact <name> [phone...] [--address=<addr>] [--email=<email>] [--birthday=<date>]`,
		examples: []string{
			`add-contact "John Doe" 5551234567`,
			`add-contact "Jane Smith" --email=jane@example.com --birthday=1990-05-15`,
		},
		category: "Contacts",
	}}
}

func (c *addContactCommand) Validate(args []string) bool {
	return countPositional(args) >= 1
}

func (c *addContactCommand) Execute(args []string, ctx *Context) error {
	flags, positional := splitFlags(args)
	name := positional[0]

	if _, err := ctx.Contacts.GetByName(name); err == nil {
		return fmt.Errorf("contact %q already exists", name)
	} else if !domain.IsNotFound(err) {
		return err
	}

	contact := domain.NewContact(name)

	for _, phone := range positional[1:] {
		cleaned, err := validate.Phone(phone)
		if err != nil {
			return err
		}
		if err := contact.AddPhone(cleaned); err != nil {
			return err
		}
	}
	if phone, ok := flags["phone"]; ok {
		cleaned, err := validate.Phone(phone)
		if err != nil {
			return err
		}
		if err := contact.AddPhone(cleaned); err != nil {
			return err
		}
	}
	if email, ok := flags["email"]; ok {
		normalized, err := validate.Email(email)
		if err != nil {
			return err
		}
		if err := contact.AddEmail(normalized); err != nil {
			return err
		}
	}
	if addr, ok := flags["address"]; ok {
		contact.SetAddress(addr)
	}
	if raw, ok := flags["birthday"]; ok {
		bday, ok := validate.ParseDate(raw)
		if !ok {
			return fmt.Errorf("invalid date %q", raw)
		}
		if err := validate.Birthday(bday); err != nil {
			return err
		}
		contact.SetBirthday(&bday)
	}

	if err := ctx.Contacts.Add(contact); err != nil {
		return err
	}
	ctx.Out.Successf("Contact '%s' added.", contact.Name)
	ctx.Log.Info("contact added: %s", contact.Name)
	return nil
}

type listContactsCommand struct {
	meta
}

func newListContactsCommand() *listContactsCommand {
	return &listContactsCommand{meta: meta{
		name:        "list-contacts",
		aliases:     []string{"lc", "contacts"},
		description: "List all contacts",
		usage:       "list-contacts",
		category:    "Contacts",
	}}
}

func (c *listContactsCommand) Validate(args []string) bool { return len(args) == 0 }

func (c *listContactsCommand) Execute(_ []string, ctx *Context) error {
	contacts, err := ctx.Contacts.All()
	if err != nil {
		return err
	}
	if len(contacts) == 0 {
		ctx.Out.Info("No contacts yet. Use 'add-contact' to create one.")
		return nil
	}
	printContactTable(ctx, contacts)
	ctx.Out.Infof("%d contact(s).", len(contacts))
	return nil
}

type searchContactsCommand struct {
	meta
}

func newSearchContactsCommand() *searchContactsCommand {
	return &searchContactsCommand{meta: meta{
		name:        "search-contacts",
		aliases:     []string{"sc", "find-contacts"},
		description: "Search contacts by name, phone, email or address",
		usage:       "search-contacts <query>",
		examples:    []string{"search-contacts john"},
		category:    "Contacts",
	}}
}

func (c *searchContactsCommand) Validate(args []string) bool { return len(args) == 1 }

func (c *searchContactsCommand) Execute(args []string, ctx *Context) error {
	contacts, err := ctx.Contacts.Search(args[0])
	if err != nil {
		return err
	}
	if len(contacts) == 0 {
		ctx.Out.Warningf("No contacts match '%s'.", args[0])
		return nil
	}
	printContactTable(ctx, contacts)
	ctx.Out.Infof("%d match(es).", len(contacts))
	return nil
}

type editContactCommand struct {
	meta
}

func newEditContactCommand() *editContactCommand {
	return &editContactCommand{meta: meta{
		name:        "edit-contact",
		aliases:     []string{"ec", "update-contact"},
		description: "Edit a contact's fields",
		usage:       "edit-contact <name> [<field> <value>]",
		examples: []string{
			`edit-contact "John Doe" address "456 Oak Ave"`,
			`edit-contact "John Doe" add-phone 5559876543`,
			`edit-contact "John Doe"`,
		},
		category: "Contacts",
	}}
}

func (c *editContactCommand) Validate(args []string) bool {
	return len(args) == 1 || len(args) == 3
}

func (c *editContactCommand) Execute(args []string, ctx *Context) error {
	contact, err := ctx.Contacts.GetByName(args[0])
	if err != nil {
		if domain.IsNotFound(err) {
			return fmt.Errorf("no contact named %q", args[0])
		}
		return err
	}

	field, value := "", ""
	if len(args) == 3 {
		field, value = strings.ToLower(args[1]), args[2]
	} else {
		field, value, err = c.promptEdit(ctx)
		if err != nil {
			return err
		}
		if field == "" {
			ctx.Out.Info("Nothing changed.")
			return nil
		}
	}

	if err := applyContactEdit(contact, field, value); err != nil {
		return err
	}
	if err := ctx.Contacts.Update(contact); err != nil {
		return err
	}
	ctx.Out.Successf("Contact '%s' updated.", contact.Name)
	ctx.Log.Info("contact updated: %s (%s)", contact.Name, field)
	return nil
}

func (c *editContactCommand) promptEdit(ctx *Context) (string, string, error) {
	ctx.Out.Info("Fields: name, address, birthday, add-phone, remove-phone, add-email, remove-email")
	field, err := ctx.Out.Prompt("Field to edit (empty to cancel)")
	if err != nil {
		return "", "", err
	}
	field = strings.ToLower(strings.TrimSpace(field))
	if field == "" {
		return "", "", nil
	}
	value, err := ctx.Out.Prompt("New value")
	if err != nil {
		return "", "", err
	}
	return field, value, nil
}

func applyContactEdit(contact *domain.Contact, field, value string) error {
	switch field {
	case "name":
		return contact.Rename(value)
	case "address":
		contact.SetAddress(value)
		return nil
	case "birthday":
		bday, ok := validate.ParseDate(value)
		if !ok {
			return fmt.Errorf("invalid date %q", value)
		}
		if err := validate.Birthday(bday); err != nil {
			return err
		}
		contact.SetBirthday(&bday)
		return nil
	case "add-phone":
		cleaned, err := validate.Phone(value)
		if err != nil {
			return err
		}
		return contact.AddPhone(cleaned)
	case "remove-phone":
		return contact.RemovePhone(value)
	case "add-email":
		normalized, err := validate.Email(value)
		if err != nil {
			return err
		}
		return contact.AddEmail(normalized)
	case "remove-email":
		return contact.RemoveEmail(strings.ToLower(value))
	default:
		return fmt.Errorf("unknown field %q", field)
	}
}

type deleteContactCommand struct {
	meta
}

func newDeleteContactCommand() *deleteContactCommand {
	return &deleteContactCommand{meta: meta{
		name:        "delete-contact",
		aliases:     []string{"dc", "remove-contact"},
		description: "Delete a contact",
		usage:       "delete-contact <name>",
		examples:    []string{`delete-contact "John Doe"`},
		category:    "Contacts",
	}}
}

func (c *deleteContactCommand) Validate(args []string) bool { return len(args) == 1 }

func (c *deleteContactCommand) Execute(args []string, ctx *Context) error {
	contact, err := ctx.Contacts.GetByName(args[0])
	if err != nil {
		if domain.IsNotFound(err) {
			return fmt.Errorf("no contact named %q", args[0])
		}
		return err
	}
	if !ctx.Out.Confirm(fmt.Sprintf("Delete contact '%s'?", contact.Name)) {
		ctx.Out.Info("Canceled.")
		return nil
	}
	if err := ctx.Contacts.Delete(contact.ID); err != nil {
		return err
	}
	ctx.Out.Successf("Contact '%s' deleted.", contact.Name)
	ctx.Log.Info("contact deleted: %s", contact.Name)
	return nil
}

type birthdaysCommand struct {
	meta
}

func newBirthdaysCommand() *birthdaysCommand {
	return &birthdaysCommand{meta: meta{
		name:        "birthdays",
		aliases:     []string{"bd", "upcoming-birthdays"},
		description: "Show contacts with birthdays in the next days",
		usage:       "birthdays [days]",
		examples:    []string{"birthdays", "birthdays 30"},
		category:    "Contacts",
	}}
}

func (c *birthdaysCommand) Validate(args []string) bool {
	if len(args) == 0 {
		return true
	}
	if len(args) != 1 {
		return false
	}
	days, err := strconv.Atoi(args[0])
	return err == nil && days >= 0
}

func (c *birthdaysCommand) Execute(args []string, ctx *Context) error {
	days := defaultBirthdayWindow
	if len(args) == 1 {
		days, _ = strconv.Atoi(args[0])
	}

	contacts, err := ctx.Contacts.All()
	if err != nil {
		return err
	}

	type upcoming struct {
		contact  *domain.Contact
		daysLeft int
	}
	var hits []upcoming
	for _, contact := range contacts {
		daysLeft, ok := contact.DaysUntilBirthday()
		if ok && daysLeft <= days {
			hits = append(hits, upcoming{contact: contact, daysLeft: daysLeft})
		}
	}

	if len(hits) == 0 {
		ctx.Out.Infof("No birthdays in the next %d day(s).", days)
		return nil
	}

	rows := make([][]string, 0, len(hits))
	for _, hit := range hits {
		when := "today"
		if hit.daysLeft == 1 {
			when = "tomorrow"
		} else if hit.daysLeft > 1 {
			when = fmt.Sprintf("in %d days", hit.daysLeft)
		}
		rows = append(rows, []string{
			hit.contact.Name,
			hit.contact.Birthday.Format("2006-01-02"),
			when,
		})
	}
	ctx.Out.Table([]string{"Name", "Birthday", "When"}, rows)
	return nil
}

type generateContactsCommand struct {
	meta
}

func newGenerateContactsCommand() *generateContactsCommand {
	return &generateContactsCommand{meta: meta{
		name:        "generate-contacts",
		aliases:     []string{"gc", "random-contacts"},
		description: "Generate random contacts",
		usage:       "generate-contacts [count]",
		examples:    []string{"generate-contacts 20"},
		category:    "Contacts",
	}}
}

func (c *generateContactsCommand) Validate(args []string) bool {
	if len(args) == 0 {
		return true
	}
	if len(args) != 1 {
		return false
	}
	count, err := strconv.Atoi(args[0])
	return err == nil && count > 0
}

func (c *generateContactsCommand) Execute(args []string, ctx *Context) error {
	count := 100
	if len(args) == 1 {
		count, _ = strconv.Atoi(args[0])
	}

	added := 0
	for i := 0; i < count; i++ {
		contact := gen.Contact()
		if _, err := ctx.Contacts.GetByName(contact.Name); err == nil {
			continue
		} else if !domain.IsNotFound(err) {
			return err
		}
		if err := ctx.Contacts.Add(contact); err != nil {
			return err
		}
		added++
	}
	ctx.Out.Successf("Generated %d contact(s).", added)
	return nil
}

type cleanContactsCommand struct {
	meta
}

func newCleanContactsCommand() *cleanContactsCommand {
	return &cleanContactsCommand{meta: meta{
		name:        "clean-contacts",
		aliases:     []string{"cc", "clear-contacts"},
		description: "Delete all contacts",
		usage:       "clean-contacts",
		category:    "Contacts",
	}}
}

func (c *cleanContactsCommand) Validate(args []string) bool { return len(args) == 0 }

func (c *cleanContactsCommand) Execute(_ []string, ctx *Context) error {
	if !ctx.Out.Confirm("Delete ALL contacts? This cannot be undone.") {
		ctx.Out.Info("Canceled.")
		return nil
	}
	if err := ctx.Contacts.Clear(); err != nil {
		return err
	}
	ctx.Out.Success("All contacts deleted.")
	ctx.Log.Info("contacts cleared")
	return nil
}

func printContactTable(ctx *Context, contacts []*domain.Contact) {
	rows := make([][]string, 0, len(contacts))
	for _, contact := range contacts {
		birthday := ""
		if contact.Birthday != nil {
			birthday = contact.Birthday.Format("2006-01-02")
		}
		rows = append(rows, []string{
			contact.Name,
			strings.Join(contact.Phones, ", "),
			strings.Join(contact.Emails, ", "),
			contact.Address,
			birthday,
		})
	}
	ctx.Out.Table([]string{"Name", "Phones", "Emails", "Address", "Birthday"}, rows)
}
