package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Named constants for all ANSI 256 colors used in the CLI;
// never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: CamelApp names, namespaces.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for healthy and running states.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for warnings and transitional phases.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for errors and failed phases.
	ColorBoldRed = lipgloss.Color("204")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")

	// ColorBlue is used for table headers and the active tab.
	ColorBlue = lipgloss.Color("12")
)

// Semantic styles map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome and placeholders.
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleHeading styles section headings.
	StyleHeading = lipgloss.NewStyle().Bold(true)

	// StyleActiveTab styles the selected tab label.
	StyleActiveTab = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(ColorBlue)

	// StyleInactiveTab styles the other tab labels.
	StyleInactiveTab = lipgloss.NewStyle().Faint(true)
)

// PhaseStyle returns the style for a CamelApp phase.
func PhaseStyle(phase string) lipgloss.Style {
	switch strings.ToLower(phase) {
	case "running", "ready":
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case "error", "failed":
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	case "unknown", "":
		return StyleDim
	default:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	}
}

// HealthStyle returns the style for an SLI health code.
func HealthStyle(code string) lipgloss.Style {
	switch strings.ToLower(code) {
	case "ok", "success":
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case "warning":
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case "error":
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return StyleDim
	}
}

// HealthIndicator renders a health code with a status glyph. An empty code
// is shown as a neutral dash.
func HealthIndicator(code string) string {
	var glyph string
	switch strings.ToLower(code) {
	case "ok", "success":
		glyph = "●"
	case "warning":
		glyph = "▲"
	case "error":
		glyph = "✖"
	case "":
		return StyleDim.Render("-")
	default:
		glyph = "?"
	}
	return HealthStyle(code).Render(glyph + " " + code)
}

// Placeholder renders text shown in place of a missing value.
func Placeholder(text string) string {
	return StyleDim.Render(text)
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreen).Render("✔")
	return check + " " + msg
}
