// Package gen produces random but plausible contacts and notes for
// seeding a fresh data set.
package gen

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/rolo-tools/cli/internal/domain"
)

var firstNames = []string{
	"Alice", "Bruno", "Carla", "Diego", "Elena", "Felix", "Greta", "Hugo",
	"Irene", "Javier", "Karla", "Lucas", "Marta", "Nico", "Olivia", "Pablo",
	"Quinn", "Rosa", "Samuel", "Tania", "Ursula", "Victor", "Wanda", "Xavier",
	"Yara", "Zoe",
}

var lastNames = []string{
	"Alvarez", "Brown", "Castro", "Diaz", "Evans", "Fuentes", "Garcia",
	"Herrera", "Ibanez", "Jones", "Kim", "Lopez", "Morales", "Nguyen",
	"Ortiz", "Perez", "Quintana", "Rojas", "Silva", "Torres", "Vargas",
	"Walker", "Young", "Zapata",
}

var streets = []string{
	"Main St", "Oak Ave", "Pine Rd", "Maple Dr", "Cedar Ln", "Elm St",
	"Harbor Rd", "River Way", "Hillcrest Ave", "Sunset Blvd",
}

var emailDomains = []string{
	"example.com", "mail.test", "inbox.dev", "post.example.org",
}

var noteSubjects = []string{
	"Buy groceries", "Call the dentist", "Review the quarterly report",
	"Plan the weekend trip", "Fix the kitchen faucet", "Read that book",
	"Schedule a haircut", "Water the plants", "Back up the laptop",
	"Renew the passport", "Prepare the presentation", "Clean the garage",
}

var noteDetails = []string{
	"before Friday", "sometime this week", "as soon as possible",
	"when the weather clears", "after the meeting", "next month",
}

var noteTags = []string{
	"work", "home", "urgent", "ideas", "errands", "health", "travel",
	"finance", "family", "hobby",
}

// Contact builds a random contact with a name, an address, one or two
// phones, an email, and a birthday between 18 and 80 years back.
func Contact() *domain.Contact {
	first := pick(firstNames)
	last := pick(lastNames)

	c := domain.NewContact(first + " " + last)
	c.SetAddress(fmt.Sprintf("%d %s", rand.IntN(9000)+100, pick(streets)))

	_ = c.AddPhone(randomPhone())
	if rand.IntN(3) == 0 {
		_ = c.AddPhone(randomPhone())
	}

	email := fmt.Sprintf("%s.%s@%s",
		strings.ToLower(first), strings.ToLower(last), pick(emailDomains))
	_ = c.AddEmail(email)

	age := 18 + rand.IntN(63)
	bday := time.Now().AddDate(-age, 0, -rand.IntN(365))
	bday = time.Date(bday.Year(), bday.Month(), bday.Day(), 0, 0, 0, 0, time.Local)
	c.SetBirthday(&bday)

	return c
}

// Note builds a random note with one to three tags.
func Note() *domain.Note {
	content := pick(noteSubjects) + " " + pick(noteDetails)

	count := 1 + rand.IntN(3)
	tags := make([]string, 0, count)
	for len(tags) < count {
		tag := pick(noteTags)
		if !contains(tags, tag) {
			tags = append(tags, tag)
		}
	}

	n, _ := domain.NewNote(content, tags)
	return n
}

func randomPhone() string {
	return fmt.Sprintf("5%02d%07d", rand.IntN(100), rand.IntN(10000000))
}

func pick(items []string) string {
	return items[rand.IntN(len(items))]
}

func contains(items []string, s string) bool {
	for _, item := range items {
		if item == s {
			return true
		}
	}
	return false
}
