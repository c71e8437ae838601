// Package tokenizer splits one WSV line into raw field tokens and unquotes them.
package tokenizer

// scanState represents states in the line-scanning state machine.
// WSV tokenization is context-dependent (inside or outside quotes), so the
// scanner walks the line rune by rune instead of using a pattern engine.
type scanState uint8

const (
	// stateSeekStart consumes separating whitespace before a field.
	stateSeekStart scanState = iota
	// stateInBare is inside a bare (unquoted) field.
	stateInBare
	// stateInQuoted is inside a quoted field.
	stateInQuoted
	// stateQuotedSeenQuote has just read a quote inside a quoted field.
	// The next rune decides: another quote means an escaped literal quote,
	// whitespace or end of line closes the field.
	stateQuotedSeenQuote
)
