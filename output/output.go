// Package output provides styled terminal output for the askline demo
// and for tools built on the library.
//
// Functions use lipgloss for styling but abstract away the details from
// callers. Output goes to standard output unless redirected with
// SetOutput, which tests use to capture messages.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	out io.Writer = os.Stdout

	verboseMode bool
)

// SetOutput redirects all output functions to w. Passing nil restores
// standard output.
func SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	out = w
}

// SetVerbose enables or disables verbose output for debugging.
// This should be called by the CLI when the --verbose flag is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// Success prints a success message in green.
// Use this for completed operations.
//
// Example:
//
//	output.Success("Demo completed successfully!")
func Success(msg string) {
	fmt.Fprintln(out, successStyle.Render("✔ "+msg))
}

// Error prints an error message in red.
// Use this for failures that need user attention.
func Error(msg string) {
	fmt.Fprintln(out, errorStyle.Render("✘ "+msg))
}

// Info prints an informational message in cyan.
// Use this for status updates or explanations.
func Info(msg string) {
	fmt.Fprintln(out, infoStyle.Render(msg))
}

// Step prints an indented step message in gray.
// Use this for sub-items under a section.
func Step(msg string) {
	fmt.Fprintln(out, stepStyle.Render("   "+msg))
}

// Verbose prints a debug message only if verbose mode is enabled.
func Verbose(msg string) {
	if verboseMode {
		fmt.Fprintln(out, stepStyle.Render("· "+msg))
	}
}
