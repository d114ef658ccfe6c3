package synapse

import (
	"errors"
	"fmt"
	"io"
)

// ParseErrorCode categorizes record decoding failures.
type ParseErrorCode string

const (
	// ErrCodeExhausted indicates the stream ended before all six tokens
	// of a record were read.
	ErrCodeExhausted ParseErrorCode = "STREAM_EXHAUSTED"

	// ErrCodeMalformed indicates a token could not be parsed as the
	// scalar type of its field.
	ErrCodeMalformed ParseErrorCode = "MALFORMED_TOKEN"

	// ErrCodeRead indicates the underlying reader failed.
	ErrCodeRead ParseErrorCode = "READ_FAILED"
)

// ParseError is returned by Decode when a record cannot be read. No
// Synapse value is returned alongside it.
type ParseError struct {
	// Code identifies the failure category.
	Code ParseErrorCode

	// Field is the record field being read (e.g. "startWeight").
	Field string

	// Token is the offending token, empty when the stream was exhausted.
	Token string

	// Err is the underlying cause: io.EOF, io.ErrUnexpectedEOF, a strconv
	// error, or a reader error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("%s: field %s: token %q: %v", e.Code, e.Field, e.Token, e.Err)
	}
	return fmt.Sprintf("%s: field %s: %v", e.Code, e.Field, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsParseError returns true if err is or wraps a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// IsEndOfStream returns true if err reports that the stream was empty at a
// record boundary, i.e. no token of the next record could be read. Loaders
// use this to stop cleanly after the last record.
func IsEndOfStream(err error) bool {
	var pe *ParseError
	if !errors.As(err, &pe) {
		return false
	}
	return pe.Code == ErrCodeExhausted && errors.Is(pe.Err, io.EOF)
}
