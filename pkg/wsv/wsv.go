// Package wsv provides WSV (whitespace-separated values) parsing.
//
// WSV is a line-oriented text format for ad-hoc tabular data: fields are
// separated by runs of whitespace, values containing whitespace (or
// intentionally empty values) are wrapped in double quotes with "" escaping
// a literal quote, blank lines and lines starting with # are ignored. The
// first significant line names the columns; each later significant line is
// a data row. Rows wider than the header grow it with synthetic extra<N>
// columns; rows narrower than the header simply omit the trailing keys.
//
//	# server inventory
//	host        port  "rack location"
//	db1         5432  "aisle 3, top"
//	cache1      6379
//
// # Parsing APIs
//
// The package provides two levels of API:
//
//   - Scanner - streaming, one record per Scan, re-iterable over seekable
//     sources
//   - Parse / ParseReader / ParseDocument - parse everything at once
//
// Use the Scanner for large inputs or when you want to stop early. Use the
// convenience functions for small documents.
//
// # Example usage with Parse:
//
//	records, err := wsv.Parse("name age\nAlice 30\nBob 25")
//	if err != nil {
//	    // handle error
//	}
//	for _, rec := range records {
//	    age, _ := rec.Get("age")
//	}
//
// # Thread Safety
//
// Parse, ParseReader and friends are safe for concurrent use: each call
// creates its own Scanner with no shared mutable state. A single Scanner is
// not safe for concurrent use.
package wsv

import (
	"io"
	"strings"
)

// Parse parses a complete WSV document from a string and returns its
// records in order.
//
// Example:
//
//	records, err := wsv.Parse("name age\nAlice 30\nBob 25")
//	// records[0].Get("name") == "Alice"
func Parse(input string) ([]Record, error) {
	return ParseReader(strings.NewReader(input))
}

// ParseWithOptions parses a complete WSV document from a string with custom
// options.
//
// Example:
//
//	opts := wsv.DefaultOptions()
//	opts.Comment = ';'
//	records, err := wsv.ParseWithOptions("a b\n; note\n1 2", opts)
func ParseWithOptions(input string, opts Options) ([]Record, error) {
	return ParseReaderWithOptions(strings.NewReader(input), opts)
}

// ParseReader parses a complete WSV document from an io.Reader and returns
// its records in order.
//
// The reader can be any io.Reader implementation: os.File, strings.Reader,
// bytes.Buffer, network streams. Seeking is not required for a single pass.
func ParseReader(r io.Reader) ([]Record, error) {
	return NewScanner(r).ReadAll()
}

// ParseReaderWithOptions parses a complete WSV document from an io.Reader
// with custom options.
func ParseReaderWithOptions(r io.Reader, opts Options) ([]Record, error) {
	return NewScannerWithOptions(r, opts).ReadAll()
}

// Validate checks if the input string is well-formed WSV.
//
// Returns nil if the input is valid. This is the idiomatic Go approach -
// check the error:
//
//	if err := wsv.Validate(input); err != nil {
//	    fmt.Println("invalid WSV:", err)
//	}
func Validate(input string) error {
	_, err := Parse(input)
	return err
}

// Format returns the format identifier for this parser.
// Returns "WSV" to identify this as the whitespace-separated values parser.
func Format() string {
	return "WSV"
}
