package input

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// renderPrompt formats the visible prompt. A hidden prompt or an empty
// message renders as the empty string, which suppresses the write and
// the flush entirely. A non-empty default value appears as a bracketed
// hint before the trailing ": ".
func renderPrompt(message, defaultValue string, show, styled bool) string {
	if !show || message == "" {
		return ""
	}

	if styled {
		if defaultValue != "" {
			return promptStyle.Render(message) + " " +
				hintStyle.Render("["+defaultValue+"]") + ": "
		}
		return promptStyle.Render(message) + ": "
	}

	if defaultValue != "" {
		return fmt.Sprintf("%s [%s]: ", message, defaultValue)
	}
	return message + ": "
}
