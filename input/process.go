package input

import "strings"

// Process applies the default-substitution and trim policy to one raw
// line. It is pure: no I/O, total over all inputs.
//
// The line terminator is stripped unconditionally, LF and CRLF alike; it
// is never part of the user's answer. Surrounding whitespace is removed
// only when trim is true. When the answer is blank and a default value
// is set, the default is returned verbatim. Blankness ignores
// surrounding whitespace regardless of the trim flag, so a
// whitespace-only answer takes the default under either trim setting.
func Process(raw, defaultValue string, trim bool) string {
	line := strings.TrimSuffix(raw, "\n")
	line = strings.TrimSuffix(line, "\r")

	trimmed := strings.TrimSpace(line)
	if trim {
		line = trimmed
	}

	if trimmed == "" && defaultValue != "" {
		return defaultValue
	}
	return line
}
