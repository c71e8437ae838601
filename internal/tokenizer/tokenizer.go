package tokenizer

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Common tokenization errors.
var (
	// ErrUnterminatedQuote indicates a quoted field that is not closed
	// before the end of the line.
	ErrUnterminatedQuote = errors.New("unterminated quoted field")

	// ErrBareQuote indicates a quote rune inside a bare field, or a
	// non-whitespace rune directly after a closing quote.
	ErrBareQuote = errors.New("bare \" in field")
)

// Tokens splits one significant line into its raw field tokens.
//
// Grammar:
//
//	Line  = { Sep Field } [ Sep ] ;
//	Sep   = Whitespace+ ;
//	Field = BareField | QuotedField ;
//	BareField   = NonWhitespaceNonQuote+ ;
//	QuotedField = '"' { QuotedChar | EscapedQuote } '"' ;
//	EscapedQuote = '""' ;
//
// Raw tokens keep their surrounding quotes and doubled quotes; use Unquote
// to obtain field values. Zero-length fields between whitespace runs are
// never emitted: an empty field must be written explicitly as "".
//
// The line is scanned as if padded with a single sentinel whitespace rune at
// each end, so leading/trailing whitespace is insignificant and a quote at
// the very start of the line opens a quoted field.
func Tokens(line string) ([]string, error) {
	var (
		tokens []string
		field  strings.Builder
		state  = stateSeekStart
		col    = 0
	)

	emit := func() {
		tokens = append(tokens, field.String())
		field.Reset()
	}

	for _, r := range line {
		col++

		switch state {
		case stateSeekStart:
			switch {
			case unicode.IsSpace(r):
				// Still between fields.
			case r == '"':
				field.WriteRune(r)
				state = stateInQuoted
			default:
				field.WriteRune(r)
				state = stateInBare
			}

		case stateInBare:
			switch {
			case unicode.IsSpace(r):
				emit()
				state = stateSeekStart
			case r == '"':
				return nil, fmt.Errorf("column %d: %w", col, ErrBareQuote)
			default:
				field.WriteRune(r)
			}

		case stateInQuoted:
			field.WriteRune(r)
			if r == '"' {
				state = stateQuotedSeenQuote
			}

		case stateQuotedSeenQuote:
			switch {
			case r == '"':
				// Escaped quote, stay inside the field.
				field.WriteRune(r)
				state = stateInQuoted
			case unicode.IsSpace(r):
				emit()
				state = stateSeekStart
			default:
				return nil, fmt.Errorf("column %d: %w", col, ErrBareQuote)
			}
		}
	}

	// End of line acts as the trailing sentinel whitespace.
	switch state {
	case stateInBare, stateQuotedSeenQuote:
		emit()
	case stateInQuoted:
		return nil, fmt.Errorf("column %d: %w", col, ErrUnterminatedQuote)
	}

	return tokens, nil
}

// Unquote converts a raw field token into its field value.
//
// Quoted tokens lose their surrounding quotes and every doubled quote
// collapses to a single literal quote. Bare tokens pass through unchanged;
// by construction they contain no whitespace or quote runes. Tokens is
// never called with an empty token, but Unquote tolerates one.
func Unquote(token string) string {
	if len(token) < 2 || token[0] != '"' {
		return token
	}
	// Tokens guarantees a matching closing quote; re-checked here so Unquote
	// is safe on tokens from other origins.
	if token[len(token)-1] != '"' {
		return token
	}
	return strings.ReplaceAll(token[1:len(token)-1], `""`, `"`)
}

// SplitLine tokenizes a line and unquotes every token, returning the
// ordered field values.
func SplitLine(line string) ([]string, error) {
	raw, err := Tokens(line)
	if err != nil {
		return nil, err
	}
	fields := make([]string, len(raw))
	for i, tok := range raw {
		fields[i] = Unquote(tok)
	}
	return fields, nil
}
