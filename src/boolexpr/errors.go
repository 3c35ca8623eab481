package boolexpr

import (
	"fmt"
)

// BindingError is returned when an expression references a variable that has
// no value in the bindings it's solved with.
type BindingError struct {
	Label rune
}

// NewBindingError creates a new BindingError for the given variable label.
func NewBindingError(label rune) error {
	return &BindingError{Label: label}
}

func (e BindingError) Error() string {
	return fmt.Sprintf("unbound variable: %c", e.Label)
}

// ParserError is returned when text cannot be turned into an expression. It's
// never returned from solving, collecting variables or rendering.
type ParserError struct {
	Message string
}

func NewParserError(format string, a ...any) error {
	return &ParserError{Message: fmt.Sprintf(format, a...)}
}

func (e ParserError) Error() string {
	return fmt.Sprintf("parse error: %s", e.Message)
}
