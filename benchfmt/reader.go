// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// A Reader reads benchmark lines.
//
// Its API is modeled on bufio.Scanner. Each call to Scan consumes
// input up to and including the next line that begins with
// "Benchmark" and parses it; all other lines are skipped without
// inspection.
//
// To construct a new Reader, either call NewReader, or call Reset on
// a zeroed Reader.
type Reader struct {
	s   *bufio.Scanner
	err error // current I/O error

	fileName string
	line     int

	rec Record
}

// NewReader constructs a reader to parse benchmark lines from r.
// fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading from a new input.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	r.s = bufio.NewScanner(ior)
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.err = nil
	r.fileName = fileName
	r.line = 0
	r.rec = nil
}

// benchmarkPrefix selects the lines a Reader parses.
const benchmarkPrefix = "Benchmark"

// Scan advances the reader to the next benchmark line and reports
// whether one was read. The caller should use the Result method to get
// the parsed record. If Scan reaches EOF or an I/O error occurs, it
// returns false, in which case the caller should use the Err method to
// check for errors.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}

	for r.s.Scan() {
		r.line++
		line := r.s.Text()
		if !strings.HasPrefix(line, benchmarkPrefix) {
			continue
		}
		m, err := parseLine(line)
		if err != nil {
			r.rec = &MalformedLineError{r.fileName, r.line, line, err.Error()}
		} else {
			m.fileName, m.line = r.fileName, r.line
			r.rec = m
		}
		return true
	}

	// We hit EOF. Check for IO errors.
	if err := r.s.Err(); err != nil {
		r.err = fmt.Errorf("%s:%d: %w", r.fileName, r.line, err)
		return false
	}
	r.err = nil
	return false
}

// Result returns the record that was just read by Scan. This is
// either a *Measurement or a *MalformedLineError. It returns nil if
// Scan has not returned true yet.
//
// A *MalformedLineError does not stop the Reader; the caller decides
// whether to keep calling Scan.
func (r *Reader) Result() Record {
	return r.rec
}

// Err returns the first non-EOF I/O error that was encountered by the
// Reader.
func (r *Reader) Err() error {
	return r.err
}
