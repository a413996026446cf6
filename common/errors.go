package common

import (
	"errors"
	"fmt"
)

var (
	ErrorInvalidValue    = errors.New("invalid value")
	ErrorMissingArgument = errors.New("Please provide data file")
	ErrorFileAccess      = errors.New("file access failed")
	ErrorFormat          = errors.New("format error")
)

// ParseError reports the line and field that failed to parse.
// Line is 1-based, Field is 0-based as counted after splitting.
type ParseError struct {
	Line  int
	Field int
	Text  string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line %d, field %d (%q): %v", e.Line, e.Field, e.Text, e.Err)
	}
	return fmt.Sprintf("line %d, field %d (%q): malformed", e.Line, e.Field, e.Text)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrorFormat, e.Err}
}

func NewParseError(line, field int, text string, err error) *ParseError {
	return &ParseError{
		Line:  line,
		Field: field,
		Text:  text,
		Err:   err,
	}
}
