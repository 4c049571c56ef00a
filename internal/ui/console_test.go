package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rolo-tools/cli/internal/ui/style"
	"github.com/stretchr/testify/require"
)

func newTestConsole(input string) (*Console, *bytes.Buffer) {
	style.Init(false, nil)
	var out bytes.Buffer
	return NewConsole(&out, strings.NewReader(input)), &out
}

func TestConsoleMessages(t *testing.T) {
	c, out := newTestConsole("")

	c.Success("saved")
	c.Errorf("failed: %s", "reason")
	c.Warning("careful")
	c.Infof("count: %d", 3)

	got := out.String()
	require.Contains(t, got, "✓ saved")
	require.Contains(t, got, "✗ failed: reason")
	require.Contains(t, got, "⚠ careful")
	require.Contains(t, got, "ℹ count: 3")
}

func TestConsoleHeader(t *testing.T) {
	c, out := newTestConsole("")

	c.Header("Hello")
	require.Contains(t, out.String(), "=====")
	require.Contains(t, out.String(), "Hello")
}

func TestConsolePrompt(t *testing.T) {
	c, _ := newTestConsole("  some answer  \n")

	got, err := c.Prompt("Question?")
	require.NoError(t, err)
	require.Equal(t, "some answer", got)
}

func TestConsolePromptEOF(t *testing.T) {
	c, _ := newTestConsole("")

	_, err := c.Prompt("Question?")
	require.Error(t, err)
}

func TestConsoleConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "yes", input: "yes\n", want: true},
		{name: "y", input: "y\n", want: true},
		{name: "uppercase", input: "Y\n", want: true},
		{name: "no", input: "no\n", want: false},
		{name: "empty", input: "\n", want: false},
		{name: "eof", input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestConsole(tt.input)
			require.Equal(t, tt.want, c.Confirm("Sure?"))
		})
	}
}

func TestConsoleTable(t *testing.T) {
	c, out := newTestConsole("")

	c.Table([]string{"Name", "Phone"}, [][]string{
		{"John", "5551234567"},
		{"Jane", "5559876543"},
	})

	got := out.String()
	require.Contains(t, got, "Name")
	require.Contains(t, got, "John")
	require.Contains(t, got, "5559876543")
}
