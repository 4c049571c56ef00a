package gen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rolo-tools/cli/internal/validate"
)

func TestContact(t *testing.T) {
	for i := 0; i < 50; i++ {
		c := Contact()
		require.NotEmpty(t, c.Name)
		require.NotEmpty(t, c.Address)
		require.NotEmpty(t, c.Phones)
		require.NotEmpty(t, c.Emails)
		require.NotNil(t, c.Birthday)

		for _, phone := range c.Phones {
			_, err := validate.Phone(phone)
			require.NoError(t, err)
		}
		for _, email := range c.Emails {
			_, err := validate.Email(email)
			require.NoError(t, err)
		}
		require.NoError(t, validate.Birthday(*c.Birthday))
	}
}

func TestNote(t *testing.T) {
	for i := 0; i < 50; i++ {
		n := Note()
		require.NotEmpty(t, n.Content)
		require.NotEmpty(t, n.Tags)
		require.LessOrEqual(t, len(n.Tags), 3)

		seen := map[string]bool{}
		for _, tag := range n.Tags {
			require.False(t, seen[tag], "duplicate tag %q", tag)
			seen[tag] = true
		}
	}
}
