package stepper

import "strings"

// Alert is a single outstanding validation failure description: a title
// (the field label) and a human-readable message. At most one alert is
// active per editor; presenting a new one replaces any prior one.
type Alert struct {
	Title   string
	Message string
}

// RenderAlert renders an alert as a modal-style box. The owning
// application overlays it on its view and dismisses it on the next key
// press or pointer press.
func RenderAlert(a *Alert, width int) string {
	if a == nil {
		return ""
	}
	var lines []string
	lines = append(lines, alertTitleStyle.Render("✗  "+a.Title))
	lines = append(lines, "")
	lines = append(lines, alertMessageStyle.Render(a.Message))
	lines = append(lines, "")
	lines = append(lines, alertHintStyle.Render("press any key to dismiss"))
	return AlertBoxStyle(width).Render(strings.Join(lines, "\n"))
}
