// Package input reads one line of user input from the terminal.
//
// # Overview
//
// The package wraps the write-prompt, flush, read-line, strip-newline
// boilerplate behind three convenience functions and a small builder.
//
// # Usage
//
// Import the package and call the read functions:
//
//	import "github.com/simonhull/askline/input"
//
//	// Ask for text, whitespace trimmed
//	name, err := input.Read("Enter your name")
//
//	// Ask with a default used when the answer is blank
//	port, err := input.ReadWithDefault("Enter port", "8080")
//
//	// Keep surrounding whitespace
//	raw, err := input.ReadWithTrim("Enter text", false)
//
// For combinations of options, use the builder:
//
//	city, err := input.New("City").
//		Default("Tokyo").
//		Trim(false).
//		Read()
//
// # Defaults
//
// A non-empty default value is shown as a bracketed hint after the
// prompt ("City [Tokyo]: ") and returned verbatim when the user answers
// with a blank line. Blankness ignores surrounding whitespace even when
// trimming is disabled, so defaults behave the same under either trim
// setting.
//
// # Errors
//
// Failures are classified: *WriteError when the prompt could not be
// written, *FlushError when it could not be flushed, *ReadError when the
// input source failed. Clean end-of-input is not an error; it reads as a
// blank answer. Match with errors.As:
//
//	var readErr *input.ReadError
//	if errors.As(err, &readErr) {
//	    // input source failed
//	}
//
// # Non-Interactive Mode
//
// When input is piped, prompts are usually noise. Hide them with
// ShowPrompt, or probe the terminal first:
//
//	streams := iostreams.System()
//	answer, err := input.New("Name").
//		ShowPrompt(streams.IsInteractive()).
//		ReadFrom(streams)
package input
