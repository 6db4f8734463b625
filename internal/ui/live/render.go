package live

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderProgress renders the current-file line.
func renderProgress(state State) string {
	if state.CurrentFile == "" {
		return "Starting checks"
	}
	return fmt.Sprintf("Checking %d/%d: %s", state.Index, state.Total, state.CurrentFile)
}

// renderCounts renders the aggregate issue counts line.
func renderCounts(state State, noColor bool) string {
	line := fmt.Sprintf("Done: %d Errors: %d Warnings: %d", state.Done, state.Errors, state.Warnings)
	return stylize(line, noColor, lipgloss.Color("242"))
}

// renderFailed renders the failing-file list line.
func renderFailed(state State, noColor bool) string {
	if len(state.FailedFiles) == 0 {
		return ""
	}
	line := "Failing: " + strings.Join(state.FailedFiles, ", ")
	return stylize(line, noColor, lipgloss.Color("196"))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
