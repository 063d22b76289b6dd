// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package brackets

import "fmt"

// ReadFileError is returned when the source file cannot be read.
type ReadFileError struct {
	Op   string // stat, read
	Path string
	Err  error
}

func (e *ReadFileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ReadFileError) Unwrap() error {
	return e.Err
}

// EncodingError is returned when the requested text encoding is unknown
// or the input cannot be decoded with it.
type EncodingError struct {
	Name string
	Err  error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encoding %q: %v", e.Name, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// UnmatchedError is returned by Report.Err when a closer arrived with an empty stack.
type UnmatchedError struct {
	Name   string
	Closer Entry
}

func (e *UnmatchedError) Error() string {
	return fmt.Sprintf("%s:%d:%d: unmatched closing %q", e.Name, e.Closer.Line, e.Closer.Column, e.Closer.Delimiter)
}

// MismatchedError is returned by Report.Err when a closer did not match the open delimiter.
type MismatchedError struct {
	Name   string
	Opener Entry
	Closer Entry
}

func (e *MismatchedError) Error() string {
	return fmt.Sprintf("%s:%d:%d: mismatched %q opened at %d:%d, closed by %q",
		e.Name, e.Closer.Line, e.Closer.Column,
		e.Opener.Delimiter, e.Opener.Line, e.Opener.Column, e.Closer.Delimiter)
}

// Error code constants.
const (
	ErrCodeReadFile   = "READ_FILE"
	ErrCodeEncoding   = "ENCODING"
	ErrCodeUnmatched  = "UNMATCHED"
	ErrCodeMismatched = "MISMATCHED"
	ErrCodeUnknown    = "UNKNOWN"
)

// ErrorCode returns the error code string for a given error.
func ErrorCode(err error) string {
	switch err.(type) {
	case *ReadFileError:
		return ErrCodeReadFile
	case *EncodingError:
		return ErrCodeEncoding
	case *UnmatchedError:
		return ErrCodeUnmatched
	case *MismatchedError:
		return ErrCodeMismatched
	default:
		return ErrCodeUnknown
	}
}
