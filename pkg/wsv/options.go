// Package wsv provides configurable options for WSV parsing.
package wsv

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Options configures WSV parsing behavior.
type Options struct {
	// Comment is the comment character. Significant-line filtering skips
	// lines whose first non-whitespace rune is this character.
	// 0 disables comment filtering.
	// Default: '#'
	Comment rune

	// ExtraPrefix is the prefix for synthetic column names generated when a
	// data row has more fields than known columns. A new column gets the
	// name ExtraPrefix + N for the smallest N >= 0 not already in use.
	// Default: "extra"
	ExtraPrefix string

	// NewRecord selects the Record implementation instantiated per row.
	// Default: NewMapRecord
	NewRecord RecordFactory
}

// DefaultOptions returns the default parsing configuration.
func DefaultOptions() Options {
	return Options{
		Comment:     '#',
		ExtraPrefix: "extra",
		NewRecord:   NewMapRecord,
	}
}

// Validate checks if the options are valid.
// Returns an error if the options are invalid.
func (o Options) Validate() error {
	if o.Comment != 0 {
		if o.Comment == '"' || unicode.IsSpace(o.Comment) || !utf8.ValidRune(o.Comment) {
			return &OptionsError{Field: "Comment", Message: "invalid comment character"}
		}
	}
	if o.ExtraPrefix == "" {
		return &OptionsError{Field: "ExtraPrefix", Message: "empty synthetic column prefix"}
	}
	if strings.ContainsAny(o.ExtraPrefix, "\" \t\r\n") {
		return &OptionsError{Field: "ExtraPrefix", Message: "prefix contains whitespace or quote"}
	}
	if o.NewRecord == nil {
		return &OptionsError{Field: "NewRecord", Message: "nil record factory"}
	}
	return nil
}
