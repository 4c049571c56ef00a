// Package ui implements the user-facing console: semantic colored messages,
// prompts, confirmations and table rendering.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rolo-tools/cli/internal/ui/style"
)

// Console writes user-facing messages with semantic styling and reads
// interactive responses. All command output flows through a Console so tests
// can capture it with a bytes.Buffer.
type Console struct {
	out io.Writer
	in  *bufio.Reader
}

// NewConsole creates a console over the given writer and reader.
func NewConsole(out io.Writer, in io.Reader) *Console {
	return &Console{
		out: out,
		in:  bufio.NewReader(in),
	}
}

// Writer returns the underlying output writer.
func (c *Console) Writer() io.Writer {
	return c.out
}

// Success prints a success message.
func (c *Console) Success(message string) {
	fmt.Fprintln(c.out, style.Success("✓ "+message))
}

// Successf prints a formatted success message.
func (c *Console) Successf(format string, args ...any) {
	c.Success(fmt.Sprintf(format, args...))
}

// Error prints an error message.
func (c *Console) Error(message string) {
	fmt.Fprintln(c.out, style.Error("✗ "+message))
}

// Errorf prints a formatted error message.
func (c *Console) Errorf(format string, args ...any) {
	c.Error(fmt.Sprintf(format, args...))
}

// Warning prints a warning message.
func (c *Console) Warning(message string) {
	fmt.Fprintln(c.out, style.Warning("⚠ "+message))
}

// Warningf prints a formatted warning message.
func (c *Console) Warningf(format string, args ...any) {
	c.Warning(fmt.Sprintf(format, args...))
}

// Info prints an informational message.
func (c *Console) Info(message string) {
	fmt.Fprintln(c.out, style.Info("ℹ "+message))
}

// Infof prints a formatted informational message.
func (c *Console) Infof(format string, args ...any) {
	c.Info(fmt.Sprintf(format, args...))
}

// Header prints a framed section header.
func (c *Console) Header(message string) {
	rule := strings.Repeat("=", len([]rune(message)))
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, style.Header(rule))
	fmt.Fprintln(c.out, style.Header(message))
	fmt.Fprintln(c.out, style.Header(rule))
	fmt.Fprintln(c.out)
}

// Println prints unstyled output.
func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

// Printf prints formatted unstyled output.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Prompt shows a message and reads one line of input, trimmed.
func (c *Console) Prompt(message string) (string, error) {
	fmt.Fprint(c.out, style.Info(message)+" ")

	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Confirm asks a yes/no question. Only "y" and "yes" count as confirmation;
// a read failure counts as no.
func (c *Console) Confirm(message string) bool {
	fmt.Fprint(c.out, style.Warning(message+" (y/n):")+" ")

	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
