package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: file paths, package names, variables.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for passing checks and created files.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for warnings.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for failed checks (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for hints and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (paths, package names, env vars).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (hints, separators, placeholders).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Check status constants.
const (
	StatusPass = "pass"
	StatusWarn = "warn"
	StatusFail = "fail"
)

// statusMark returns the styled status marker for a check status.
func statusMark(status string) string {
	switch status {
	case StatusPass:
		return lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	case StatusWarn:
		return lipgloss.NewStyle().Foreground(ColorYellow).Render("!")
	case StatusFail:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed).Render("✖")
	default:
		return " "
	}
}

// minCheckColumnWidth is the minimum width for the check-name column before
// the detail suffix. This keeps detail text aligned across the report.
const minCheckColumnWidth = 32

// FormatCheckLine renders a single verification check with its status marker
// and an aligned detail suffix.
//
// Format: <mark> <name>  <detail>
func FormatCheckLine(status, name, detail string) string {
	padding := minCheckColumnWidth - len(name)
	if padding < 2 {
		padding = 2
	}

	line := statusMark(status) + " " + name
	if detail != "" {
		line += strings.Repeat(" ", padding) + StyleNoun.Render(detail)
	}
	return line
}

// FormatHint renders an indented, dimmed remediation hint under a check line.
func FormatHint(hint string) string {
	return StyleDim.Render("  hint: " + hint)
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + StyleSummary.Render(msg)
}

// FormatWarnmark renders a yellow marker with a message for stdout output.
func FormatWarnmark(msg string) string {
	mark := lipgloss.NewStyle().Foreground(ColorYellow).Render("!")
	return mark + " " + StyleSummary.Render(msg)
}

// FormatVetCheck renders a configuration vet check with its detail value.
func FormatVetCheck(label, detail string) string {
	if detail == "" {
		return fmt.Sprintf("%s %s", statusMark(StatusPass), label)
	}
	return fmt.Sprintf("%s %s (%s)", statusMark(StatusPass), label, StyleNoun.Render(detail))
}

// RenderFileTree renders a file tree with aligned descriptions.
func RenderFileTree(files []FileEntry, alignColumn int) string {
	var result string
	for _, f := range files {
		padding := alignColumn - len(f.Path)
		if padding < 1 {
			padding = 1
		}
		result += f.Path + strings.Repeat(" ", padding) + StyleDim.Render(f.Description) + "\n"
	}
	return result
}

// FileEntry represents a file in a tree listing.
type FileEntry struct {
	Path        string
	Description string
}
