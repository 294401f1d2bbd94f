package mission

import (
	"errors"
	"fmt"
)

var ErrMalformed = errors.New("malformed mission")

// ParseError is a fatal problem with a mission file, such as a missing or
// unreadable plateau line.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d: %s", ErrMalformed, e.Line, e.Msg)
	}
	return fmt.Sprintf("%s: %s", ErrMalformed, e.Msg)
}

func (e *ParseError) Unwrap() error { return ErrMalformed }

func malformedf(line int, format string, args ...any) error {
	return &ParseError{Line: line, Msg: fmt.Sprintf(format, args...)}
}
