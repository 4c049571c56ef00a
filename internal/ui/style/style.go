// Package style provides semantic terminal styling using lipgloss.
//
// This package is the only place where lipgloss text styles are created.
// All styling is semantic (Success, Warning, Error, ...) rather than visual.
// When disabled, all helpers return the input string unchanged.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorConfig holds the ANSI color values for each semantic role.
type ColorConfig struct {
	Success string
	Error   string
	Warning string
	Info    string
	Header  string
	Muted   string
}

// DefaultColors returns the built-in palette.
func DefaultColors() ColorConfig {
	return ColorConfig{
		Success: "2",
		Error:   "1",
		Warning: "3",
		Info:    "6",
		Header:  "5",
		Muted:   "8",
	}
}

// LoadColorConfig applies color_* overrides from the config map on top of
// the defaults.
func LoadColorConfig(cfg map[string]string) ColorConfig {
	colors := DefaultColors()
	if cfg == nil {
		return colors
	}

	apply := func(dst *string, key string) {
		if v, ok := cfg[key]; ok && v != "" {
			*dst = v
		}
	}
	apply(&colors.Success, "color_success")
	apply(&colors.Error, "color_error")
	apply(&colors.Warning, "color_warning")
	apply(&colors.Info, "color_info")
	apply(&colors.Header, "color_header")
	apply(&colors.Muted, "color_muted")

	return colors
}

var (
	enabled bool
	colors  ColorConfig

	successStyle lipgloss.Style
	errorStyle   lipgloss.Style
	warningStyle lipgloss.Style
	infoStyle    lipgloss.Style
	headerStyle  lipgloss.Style
	mutedStyle   lipgloss.Style
)

// Init initializes the package. NO_COLOR and ROLO_NO_COLOR disable styling
// regardless of the enable parameter. Call once from main before any output.
func Init(enable bool, cfg map[string]string) {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("ROLO_NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable
	if !enabled {
		return
	}

	colors = LoadColorConfig(cfg)

	// Force ANSI256 regardless of TTY detection so both basic and extended
	// colors work.
	lipgloss.SetColorProfile(termenv.ANSI256)

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Success))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Error))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Warning))
	infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Info))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colors.Header))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Muted))
}

// Enabled returns whether styling is currently enabled.
func Enabled() bool {
	return enabled
}

// GetColors returns the active color configuration.
func GetColors() ColorConfig {
	if !enabled {
		return DefaultColors()
	}
	return colors
}

// Success styles text as a success message.
func Success(text string) string {
	if !enabled {
		return text
	}
	return successStyle.Render(text)
}

// Error styles text as an error message.
func Error(text string) string {
	if !enabled {
		return text
	}
	return errorStyle.Render(text)
}

// Warning styles text as a warning.
func Warning(text string) string {
	if !enabled {
		return text
	}
	return warningStyle.Render(text)
}

// Info styles text as informational.
func Info(text string) string {
	if !enabled {
		return text
	}
	return infoStyle.Render(text)
}

// Header styles text as a section header.
func Header(text string) string {
	if !enabled {
		return text
	}
	return headerStyle.Render(text)
}

// Muted styles text as de-emphasized.
func Muted(text string) string {
	if !enabled {
		return text
	}
	return mutedStyle.Render(text)
}
