package domain

import (
	"errors"
	"fmt"
)

// ErrNoMessages is returned when an export file has no "messages" array.
var ErrNoMessages = errors.New("export has no messages array")

// PathError reports a missing corpus directory or metadata file.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("corpus path %s: %v", e.Path, e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }

// FormatError reports a file that is not a recognised export.
type FormatError struct {
	File   string
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	msg := fmt.Sprintf("unrecognised export %s: %s", e.File, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FormatError) Unwrap() error { return e.Err }

// EncodingError reports text that could not be repaired losslessly.
// Index is the message position within the file, or -1 outside the message list.
type EncodingError struct {
	File  string
	Field string
	Index int
	Err   error
}

func (e *EncodingError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("corrupt text in %s (%s): %v", e.File, e.Field, e.Err)
	}
	return fmt.Sprintf("corrupt text in %s (message %d, %s): %v", e.File, e.Index, e.Field, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }
