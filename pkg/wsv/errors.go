// Package wsv provides error types for WSV parsing.
package wsv

import (
	"errors"
	"fmt"

	"github.com/shapestone/shape-wsv/internal/linereader"
	"github.com/shapestone/shape-wsv/internal/tokenizer"
)

// Common parsing errors.
var (
	// ErrDuplicateColumn indicates the header line names the same column twice.
	ErrDuplicateColumn = errors.New("duplicate column names in header")

	// ErrUnterminatedQuote indicates a quoted field that is not closed
	// before the end of its line.
	ErrUnterminatedQuote = tokenizer.ErrUnterminatedQuote

	// ErrBareQuote indicates a quote rune inside a bare field, or a
	// non-whitespace rune directly after a closing quote.
	ErrBareQuote = tokenizer.ErrBareQuote

	// ErrNotRewindable indicates a second (or later) pass was attempted over
	// a source that cannot seek back to its start. A first pass over such a
	// source never fails for this reason.
	ErrNotRewindable = linereader.ErrNotRewindable
)

// ParseError represents a parsing error with the physical line number where
// it occurred.
type ParseError struct {
	// Line is the physical line where the error occurred (1-indexed).
	Line int
	// Err is the underlying error.
	Err error
}

// Error returns a formatted error message with position information.
func (e *ParseError) Error() string {
	return fmt.Sprintf("wsv: parse error on line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying error so ParseError participates in
// errors.Is and errors.As.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// OptionsError represents an invalid option configuration.
type OptionsError struct {
	Field   string
	Message string
}

func (e *OptionsError) Error() string {
	return "wsv: invalid " + e.Field + ": " + e.Message
}
