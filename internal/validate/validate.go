// Package validate implements field validation for contact records: phone
// numbers, email addresses, birthdays and the date formats users may type.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Error is a user-facing validation failure.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func errorf(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

var (
	// Accepted phone shapes after separators are stripped. Digits-with-dashes
	// forms collapse into the generic pattern once cleaned.
	phonePatterns = []*regexp.Regexp{
		// US numbers with optional +1.
		regexp.MustCompile(`^\+?1?\d{10}$`),
		// International format.
		regexp.MustCompile(`^\+\d{1,3}\d{7,14}$`),
		// Generic 7 to 15 digits.
		regexp.MustCompile(`^\d{7,15}$`),
	}

	phoneCleaner = regexp.MustCompile(`[^\d+]`)

	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// Phone validates and normalizes a phone number. Separators such as spaces,
// dashes and parentheses are stripped; the result keeps only digits and a
// leading '+'.
func Phone(phone string) (string, error) {
	cleaned := phoneCleaner.ReplaceAllString(phone, "")

	for _, p := range phonePatterns {
		if p.MatchString(cleaned) {
			return cleaned, nil
		}
	}

	return "", errorf("invalid phone number format: %s", phone)
}

// Email validates an email address and normalizes it to lowercase.
func Email(email string) (string, error) {
	if !emailPattern.MatchString(email) {
		return "", errorf("invalid email format: %s", email)
	}
	return strings.ToLower(email), nil
}

const maxAgeYears = 150

// Birthday rejects dates in the future and ages above 150 years.
func Birthday(birthday time.Time) error {
	now := time.Now()
	if birthday.After(now) {
		return errorf("birthday cannot be in the future")
	}
	if now.Year()-birthday.Year() > maxAgeYears {
		return errorf("age cannot exceed %d years", maxAgeYears)
	}
	return nil
}

// Date layouts accepted from user input, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	"02/01/2006",
	"01/02/2006",
	"2006.01.02",
	"02.01.2006",
}

// ParseDate parses a user-typed date string. The second return value is
// false when no accepted layout matches.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
