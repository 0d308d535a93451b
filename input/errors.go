package input

import "fmt"

// WriteError reports that the prompt could not be written to the output
// stream, in full or in part.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string { return fmt.Sprintf("write prompt: %v", e.Err) }

func (e *WriteError) Unwrap() error { return e.Err }

// FlushError reports that the prompt was written but could not be
// flushed to the underlying stream.
type FlushError struct {
	Err error
}

func (e *FlushError) Error() string { return fmt.Sprintf("flush prompt: %v", e.Err) }

func (e *FlushError) Unwrap() error { return e.Err }

// ReadError reports that the input source could not be read. Clean
// end-of-input is not a ReadError; it reads as a blank answer.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string { return fmt.Sprintf("read input: %v", e.Err) }

func (e *ReadError) Unwrap() error { return e.Err }
