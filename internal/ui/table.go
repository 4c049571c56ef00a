package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rolo-tools/cli/internal/ui/style"
)

// Table renders rows under the given headers with a bordered layout and
// prints the result.
func (c *Console) Table(headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(style.GetColors().Muted))).
		Headers(headers...).
		Rows(rows...)

	c.Println(t.String())
}
