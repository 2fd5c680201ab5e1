package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/stepfield/stepfield/internal/stepper"
)

// Application branding constants
const AppName = "STEPFIELD PLAYGROUND"

// Layout constants
const (
	MinTerminalWidth = 48 // Minimum supported terminal width
	MaxAlertWidth    = 72 // Alert boxes cap out before full-width terminals

	// contentTop is the screen row of the first editor: title line plus
	// one blank line. Mouse hit-testing depends on it.
	contentTop = 2
)

// Common styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(stepper.AccentColor).
			Bold(true)

	CursorStyle = lipgloss.NewStyle().
			Foreground(stepper.SuccessColor).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(stepper.MutedColor)
)

// GetTerminalWidth returns the current terminal width with a fallback, for
// rendering outside a running program (e.g. the presets listing).
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	return width
}

// alertWidth caps the alert box width to keep messages readable.
func alertWidth(w int) int {
	if w <= 0 {
		w = GetTerminalWidth()
	}
	if w > MaxAlertWidth {
		w = MaxAlertWidth
	}
	if w < MinTerminalWidth {
		w = MinTerminalWidth
	}
	return w
}
