package wsv

import (
	"io"
	"strconv"

	"github.com/shapestone/shape-wsv/internal/linereader"
	"github.com/shapestone/shape-wsv/internal/tokenizer"
)

// passState tracks where the Scanner is in its iteration protocol.
type passState uint8

const (
	// passUnstarted means no pass is in progress; the next Scan begins one.
	passUnstarted passState = iota
	// passActive means the header has been read and data rows follow.
	passActive
)

// Scanner reads WSV records one at a time from an input source.
//
// The first Scan of a pass reads the header line to establish the column
// names; every following Scan reads one data row. When the source is
// exhausted, Scan returns false and the Scanner re-arms: the next Scan
// begins a fresh pass, rewinding the source and re-reading the header.
//
// A first pass works on any source, including ones that cannot seek (pipes,
// network streams). Starting a second pass requires the source to be an
// io.Seeker; otherwise Err reports ErrNotRewindable.
//
// Example usage:
//
//	file, _ := os.Open("data.wsv")
//	defer file.Close()
//
//	sc := wsv.NewScanner(file)
//	for sc.Scan() {
//	    rec := sc.Record()
//	    name, _ := rec.Get("name")
//	    fmt.Println(name)
//	}
//	if err := sc.Err(); err != nil {
//	    // handle error
//	}
//
// A Scanner must be used by one consumer at a time; it holds per-pass state
// (the growing column-name list) and is not safe for concurrent use.
type Scanner struct {
	lines   *linereader.Reader
	opts    Options
	state   passState
	columns []string
	used    map[string]struct{}
	record  Record
	err     error
	optsErr error
}

// NewScanner creates a Scanner reading WSV from r with default options.
func NewScanner(r io.Reader) *Scanner {
	return NewScannerWithOptions(r, DefaultOptions())
}

// NewScannerWithOptions creates a Scanner with custom options.
// Invalid options surface from Err after the first Scan returns false.
//
// Example:
//
//	opts := wsv.DefaultOptions()
//	opts.NewRecord = wsv.NewOrderedRecord
//	sc := wsv.NewScannerWithOptions(reader, opts)
func NewScannerWithOptions(r io.Reader, opts Options) *Scanner {
	return &Scanner{
		lines:   linereader.New(r, opts.Comment),
		opts:    opts,
		optsErr: opts.Validate(),
	}
}

// Scan advances the Scanner to the next record.
// It returns false when the pass is over or an error occurs; after Scan
// returns false, Err returns the error, or nil at normal end of input.
func (s *Scanner) Scan() bool {
	if s.optsErr != nil {
		s.err = s.optsErr
		return false
	}
	if s.state == passUnstarted {
		// A new pass forgets the previous pass's error and column list.
		s.err = nil
		if !s.begin() {
			return false
		}
	}
	return s.next()
}

// begin starts a pass: rewind if the source was read before, then read the
// header line and establish the column-name list.
func (s *Scanner) begin() bool {
	if s.lines.Consumed() {
		// Never rewind on the very first pass, so unbuffered pipes work.
		if err := s.lines.Rewind(); err != nil {
			s.err = err
			return false
		}
	}

	line, err := s.lines.Next()
	if err == io.EOF {
		// No header at all: a pass over an empty source yields no records.
		return false
	}
	if err != nil {
		s.err = err
		return false
	}

	columns, err := tokenizer.SplitLine(line)
	if err != nil {
		s.err = &ParseError{Line: s.lines.Line(), Err: err}
		return false
	}

	s.used = make(map[string]struct{}, len(columns))
	for _, name := range columns {
		if _, dup := s.used[name]; dup {
			s.err = &ParseError{Line: s.lines.Line(), Err: ErrDuplicateColumn}
			return false
		}
		s.used[name] = struct{}{}
	}

	s.columns = columns
	s.state = passActive
	return true
}

// next reads one data row and assembles it into a Record.
func (s *Scanner) next() bool {
	line, err := s.lines.Next()
	if err == io.EOF {
		// Normal termination: the pass is complete, re-arm for the next one.
		s.state = passUnstarted
		return false
	}
	if err != nil {
		s.err = err
		s.state = passUnstarted
		return false
	}

	fields, err := tokenizer.SplitLine(line)
	if err != nil {
		s.err = &ParseError{Line: s.lines.Line(), Err: err}
		s.state = passUnstarted
		return false
	}

	// A row wider than the known columns grows the header with synthetic
	// names. Existing names are never renumbered; each new column takes the
	// smallest unused suffix.
	for len(s.columns) < len(fields) {
		s.columns = append(s.columns, s.nextExtra())
	}

	record := s.opts.NewRecord()
	for i, value := range fields {
		record.Set(s.columns[i], value)
	}
	s.record = record
	return true
}

// nextExtra returns the synthetic column name with the smallest non-negative
// suffix not already used by any column, and marks it used.
func (s *Scanner) nextExtra() string {
	for n := 0; ; n++ {
		name := s.opts.ExtraPrefix + strconv.Itoa(n)
		if _, taken := s.used[name]; !taken {
			s.used[name] = struct{}{}
			return name
		}
	}
}

// Record returns the record read by the last successful Scan.
// It should only be called after Scan returns true.
func (s *Scanner) Record() Record {
	return s.record
}

// Err returns the error, if any, encountered during scanning.
// It returns nil at normal end of input. Starting a new pass clears it.
func (s *Scanner) Err() error {
	return s.err
}

// Columns returns a copy of the current column-name list: the header names
// plus any synthetic names appended so far during this pass.
func (s *Scanner) Columns() []string {
	columns := make([]string, len(s.columns))
	copy(columns, s.columns)
	return columns
}

// ReadAll runs one full pass and returns every record in order.
func (s *Scanner) ReadAll() ([]Record, error) {
	var records []Record
	for s.Scan() {
		records = append(records, s.Record())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
