// Package wsv provides WSV sample inspection and header sniffing.
package wsv

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shapestone/shape-wsv/internal/tokenizer"
)

// Sniffer inspects a sample of text and reports whether it looks like WSV
// tabular data. For best results, provide at least 2-3 lines of data.
type Sniffer struct {
	sample      string
	fieldCount  int
	hasComments bool
	hasHeader   bool
	analyzed    bool
}

// NewSniffer creates a new Sniffer over a sample of text.
func NewSniffer(sample string) *Sniffer {
	return &Sniffer{sample: sample}
}

// analyze performs the inspection once, on first use.
func (s *Sniffer) analyze() {
	if s.analyzed {
		return
	}

	var rows [][]string
	for _, line := range strings.Split(s.sample, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if first, _ := utf8.DecodeRuneInString(line); first == '#' {
			s.hasComments = true
			continue
		}
		fields, err := tokenizer.SplitLine(line)
		if err != nil || len(fields) == 0 {
			continue
		}
		rows = append(rows, fields)
	}

	if len(rows) > 0 {
		s.fieldCount = len(rows[0])
	}
	s.hasHeader = detectHeader(rows)
	s.analyzed = true
}

// FieldCount returns the number of fields on the first significant line of
// the sample, or 0 when the sample holds no significant lines.
func (s *Sniffer) FieldCount() int {
	s.analyze()
	return s.fieldCount
}

// HasComments reports whether the sample contains comment lines.
func (s *Sniffer) HasComments() bool {
	s.analyze()
	return s.hasComments
}

// HasHeader reports whether the first significant line appears to be a
// header naming the columns rather than a data row.
func (s *Sniffer) HasHeader() bool {
	s.analyze()
	return s.hasHeader
}

// detectHeader uses heuristics to determine if the first row is a header.
// Headers are typically identifier-like and non-numeric; data rows often
// contain numbers.
func detectHeader(rows [][]string) bool {
	if len(rows) < 2 {
		return false
	}

	headerScore := 0
	dataScore := 0
	for _, field := range rows[0] {
		if isLikelyHeader(field) {
			headerScore++
		}
		if isNumeric(field) {
			dataScore++
		}
	}

	return headerScore > dataScore
}

// isLikelyHeader checks if a field looks like a column name.
func isLikelyHeader(s string) bool {
	if s == "" || isNumeric(s) {
		return false
	}
	for i, r := range s {
		if i == 0 && unicode.IsDigit(r) {
			return false
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != ' ' {
			return false
		}
	}
	return true
}

// isNumeric checks if a string represents a number.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '-' {
		s = s[1:]
	}
	hasDot := false
	for _, r := range s {
		if r == '.' {
			if hasDot {
				return false
			}
			hasDot = true
		} else if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}
