// Package wsv provides a user-friendly DOM API for parsed WSV data.
package wsv

import (
	"io"
	"strings"
)

// Document represents a fully parsed WSV file: the final column-name list
// (header names plus any synthetic columns the data forced) and the data
// records in order.
//
// A Document is a read-side convenience over the Scanner; WSV has no write
// path.
type Document struct {
	columns []string
	records []Record
}

// ParseDocument parses a WSV string into a Document.
// Returns an error if the input is not well-formed WSV.
//
// Example:
//
//	doc, err := wsv.ParseDocument("name age\nAlice 30\nBob 25")
//	if err != nil {
//	    // handle error
//	}
//	doc.Columns()     // ["name", "age"]
//	doc.RecordCount() // 2
func ParseDocument(input string) (*Document, error) {
	return ParseDocumentWithOptions(input, DefaultOptions())
}

// ParseDocumentWithOptions parses a WSV string into a Document with custom
// options.
func ParseDocumentWithOptions(input string, opts Options) (*Document, error) {
	return readDocument(NewScannerWithOptions(strings.NewReader(input), opts))
}

// ParseDocumentReader parses WSV from an io.Reader into a Document.
func ParseDocumentReader(r io.Reader) (*Document, error) {
	return readDocument(NewScanner(r))
}

func readDocument(sc *Scanner) (*Document, error) {
	records, err := sc.ReadAll()
	if err != nil {
		return nil, err
	}
	return &Document{
		columns: sc.Columns(),
		records: records,
	}, nil
}

// Columns returns the column names after the full pass: the header names in
// order, followed by any synthetic columns appended while reading the data.
// This returns a copy.
func (d *Document) Columns() []string {
	columns := make([]string, len(d.columns))
	copy(columns, d.columns)
	return columns
}

// Records returns all data records in order.
func (d *Document) Records() []Record {
	return d.records
}

// RecordCount returns the number of data records in the document.
// This does not include the header line.
func (d *Document) RecordCount() int {
	return len(d.records)
}

// GetRecord returns the record at the specified index.
// Returns (nil, false) if the index is out of bounds.
// Index is 0-based (0 = first data record, not the header).
func (d *Document) GetRecord(index int) (Record, bool) {
	if index < 0 || index >= len(d.records) {
		return nil, false
	}
	return d.records[index], true
}
