package localeid

import (
	"errors"
	"fmt"
)

// ErrInvalid is the sentinel for every parse failure: absent or empty
// input, illegal characters, and grammar or ordering violations.
var ErrInvalid = errors.New("invalid locale identifier")

// ErrIncomplete is the sentinel for serialization failures: the record
// lacks a field the target notation requires.
var ErrIncomplete = errors.New("missing mandatory field")

// ParseError reports why an identifier was rejected.
type ParseError struct {
	Input   string
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid locale identifier %q: %s", e.Input, e.Message)
}

func (e *ParseError) Unwrap() error { return ErrInvalid }

// SerializeError reports why a record cannot be rendered in the
// requested notation.
type SerializeError struct {
	Notation string
	Message  string
}

func (e *SerializeError) Error() string {
	return fmt.Sprintf("cannot build %s locale identifier: %s", e.Notation, e.Message)
}

func (e *SerializeError) Unwrap() error { return ErrIncomplete }

// Common error messages
const (
	errEmptyInput        = "empty input"
	errEmptyChunk        = "empty chunk"
	errInvalidChar       = "invalid character %q"
	errMisplacedChunk    = "duplicated or misplaced %s"
	errUnclassifiedChunk = "unexpected subtag %q"
	errNoLanguage        = "no language"
	errNoFirstSubtag     = "no root, language or script subtag"
)

// parseError builds a *ParseError for input with a formatted message.
func parseError(input, format string, args ...any) error {
	return &ParseError{Input: input, Message: fmt.Sprintf(format, args...)}
}
