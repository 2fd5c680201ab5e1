package stepper

import "github.com/charmbracelet/lipgloss"

// Color palette shared by the widget and its alert chrome.
var (
	AccentColor  = lipgloss.Color("#7D56F4") // Purple - affordances, title
	SuccessColor = lipgloss.Color("#43BF6D") // Green - confirm
	ErrorColor   = lipgloss.Color("#FF5555") // Red - decline, alerts
	MutedColor   = lipgloss.Color("#626262") // Gray - units, disabled affordances
	TextColor    = lipgloss.Color("#FFFFFF") // White - values
)

var (
	valueStyle = lipgloss.NewStyle().Foreground(TextColor)
	unitStyle  = lipgloss.NewStyle().Foreground(MutedColor)

	alertTitleStyle   = lipgloss.NewStyle().Foreground(ErrorColor).Bold(true)
	alertMessageStyle = lipgloss.NewStyle().Foreground(TextColor)
	alertHintStyle    = lipgloss.NewStyle().Foreground(MutedColor).Italic(true)
)

// labelStyle renders an editor label honoring the configured opacity.
// Terminal cells carry no alpha channel; anything below full opacity
// renders faint.
func labelStyle(opacity float64) lipgloss.Style {
	st := lipgloss.NewStyle().Foreground(TextColor)
	if opacity < 1 {
		st = st.Faint(true)
	}
	return st
}

// AlertBoxStyle returns the border style for validation alert boxes.
func AlertBoxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(ErrorColor).
		Width(width - 2).
		Padding(0, 2)
}

func glyphButton(g Glyph) string {
	return lipgloss.NewStyle().
		Foreground(g.Color).
		Bold(true).
		Render("[" + g.Symbol + "]")
}
