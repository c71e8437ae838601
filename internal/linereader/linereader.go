// Package linereader supplies significant lines from an io.Reader.
//
// A significant line is one that is neither blank after trimming nor a
// comment (first non-whitespace rune is the comment marker). The reader
// tracks physical line numbers for error reporting and supports rewinding
// when the underlying reader is an io.Seeker.
package linereader

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode/utf8"
)

// ErrNotRewindable is returned by Rewind when the underlying reader does
// not support seeking back to the start.
var ErrNotRewindable = errors.New("source does not support rewinding")

// maxLineSize is the maximum length in bytes of a single physical line,
// far beyond the bufio.Scanner default of 64KB.
const maxLineSize = 16 << 20

// newScanner creates a line scanner over src with the raised line cap.
func newScanner(src io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(src)
	sc.Buffer(nil, maxLineSize)
	return sc
}

// Reader reads significant lines from an io.Reader.
type Reader struct {
	src      io.Reader
	scanner  *bufio.Scanner
	comment  rune
	line     int  // physical line number of the last line returned
	consumed bool // true once any line has been read from src
}

// New creates a Reader that filters lines from r. Lines whose first
// non-whitespace rune equals comment are skipped; comment 0 disables
// comment filtering.
func New(r io.Reader, comment rune) *Reader {
	return &Reader{
		src:     r,
		scanner: newScanner(r),
		comment: comment,
	}
}

// Next returns the next significant line with leading and trailing
// whitespace removed. It returns io.EOF when the source is exhausted.
func (r *Reader) Next() (string, error) {
	for r.scanner.Scan() {
		r.line++
		r.consumed = true

		line := strings.TrimSpace(r.scanner.Text())
		if line == "" {
			continue
		}
		if r.comment != 0 {
			if first, _ := utf8.DecodeRuneInString(line); first == r.comment {
				continue
			}
		}
		return line, nil
	}
	r.consumed = true
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// Line returns the physical (1-based) line number of the line most recently
// returned by Next. It returns 0 before the first call.
func (r *Reader) Line() int {
	return r.line
}

// Consumed reports whether any data has been read from the source.
func (r *Reader) Consumed() bool {
	return r.consumed
}

// Rewind repositions the reader at the start of the source.
//
// Rewinding requires the underlying reader to implement io.Seeker; a reader
// that does not (a pipe, a network stream) fails with ErrNotRewindable.
// Callers that have not consumed anything yet should simply keep reading
// instead of rewinding, so a first pass over a pipe works.
func (r *Reader) Rewind() error {
	seeker, ok := r.src.(io.Seeker)
	if !ok {
		return ErrNotRewindable
	}
	if _, err := seeker.Seek(0, io.SeekStart); err != nil {
		return err
	}
	r.scanner = newScanner(r.src)
	r.line = 0
	return nil
}
