package input

import (
	"errors"
	"io"

	"github.com/simonhull/askline/iostreams"
)

// Input accumulates prompt configuration and performs the read when
// asked. Construct with New; the setters mutate in place and return the
// same Input for chaining. An Input may be reused: every Read renders
// the prompt fresh from the current configuration, and all I/O happens
// at Read time, never at configuration time.
type Input struct {
	prompt       string
	defaultValue string
	trim         bool
	showPrompt   bool
	styled       bool
}

// New returns a builder that reads one line of input with the given
// prompt. Trimming is on and the prompt is shown unless configured
// otherwise.
func New(prompt string) *Input {
	return &Input{
		prompt:     prompt,
		trim:       true,
		showPrompt: true,
	}
}

// Default sets the value returned when the user answers with a blank
// line. A non-empty default is shown as a bracketed hint in the prompt.
func (in *Input) Default(value string) *Input {
	in.defaultValue = value
	return in
}

// Trim controls whether surrounding whitespace is stripped from the
// answer. On by default.
func (in *Input) Trim(trim bool) *Input {
	in.trim = trim
	return in
}

// ShowPrompt controls whether the prompt is displayed at all. On by
// default. With it off, nothing touches the output stream.
func (in *Input) ShowPrompt(show bool) *Input {
	in.showPrompt = show
	return in
}

// Styled renders the prompt with terminal colors (cyan message, gray
// hint) instead of plain text. Off by default.
func (in *Input) Styled(styled bool) *Input {
	in.styled = styled
	return in
}

// Read displays the prompt on standard output and reads one line from
// standard input.
//
// Example:
//
//	port, err := input.New("Enter port").Default("8080").Read()
//	// Displays: Enter port [8080]: _
func (in *Input) Read() (string, error) {
	return in.ReadFrom(iostreams.System())
}

// ReadFrom runs the prompt pipeline against the given streams: render
// the prompt, write and flush it, read one line, apply the trim and
// default policy. When the rendered prompt is empty no write or flush is
// attempted. End-of-input reads as a blank answer rather than an error,
// so a configured default still applies.
func (in *Input) ReadFrom(s *iostreams.Streams) (string, error) {
	if prompt := renderPrompt(in.prompt, in.defaultValue, in.showPrompt, in.styled); prompt != "" {
		if _, err := io.WriteString(s.Out, prompt); err != nil {
			return "", &WriteError{Err: err}
		}
		if err := s.Out.Flush(); err != nil {
			return "", &FlushError{Err: err}
		}
	}

	raw, err := s.ReadLine()
	if err != nil && !errors.Is(err, io.EOF) {
		return "", &ReadError{Err: err}
	}

	return Process(raw, in.defaultValue, in.trim), nil
}

// Read asks for one line of input, whitespace trimmed.
//
// Example:
//
//	name, err := input.Read("Enter your name")
//	// Displays: Enter your name: _
func Read(prompt string) (string, error) {
	return New(prompt).Read()
}

// ReadWithDefault asks for one line of input, returning defaultValue
// when the answer is blank.
func ReadWithDefault(prompt, defaultValue string) (string, error) {
	return New(prompt).Default(defaultValue).Read()
}

// ReadWithTrim asks for one line of input with explicit control over
// whitespace trimming.
func ReadWithTrim(prompt string, trim bool) (string, error) {
	return New(prompt).Trim(trim).Read()
}
