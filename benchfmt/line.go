// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// A MalformedLineError reports a selected benchmark line that does not
// follow the benchmark line grammar.
type MalformedLineError struct {
	// FileName and Line give the position of the line, if it was
	// read by a Reader. Otherwise they are "" and 0.
	FileName string
	Line     int

	// Text is the offending line.
	Text string

	Msg string
}

func (e *MalformedLineError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *MalformedLineError) Error() string {
	if e.FileName == "" && e.Line == 0 {
		return fmt.Sprintf("%s: %q", e.Msg, e.Text)
	}
	return fmt.Sprintf("%s:%d: %s: %q", e.FileName, e.Line, e.Msg, e.Text)
}

// ParseLine parses a single benchmark line into a Measurement.
//
// The line is split into colon-separated fields. The name is the
// second slash-separated segment of the first field, less any
// GOMAXPROCS suffix. The type is the second field. The sample size is
// the third field, up to its first hyphen. The threshold and the
// ns/op value come from the last field: after its first "=", with
// spaces removed, the first tab-separated token up to its first
// hyphen is the threshold, and the last token up to its first "n" is
// the ns/op value.
//
// If the line does not follow this grammar, ParseLine returns a
// *MalformedLineError and no Measurement.
func ParseLine(line string) (*Measurement, error) {
	m, err := parseLine(line)
	if err != nil {
		return nil, &MalformedLineError{Text: line, Msg: err.Error()}
	}
	return m, nil
}

func parseLine(line string) (*Measurement, error) {
	fields, err := splitFields(line)
	if err != nil {
		return nil, err
	}

	name, err := parseName(fields[0])
	if err != nil {
		return nil, err
	}
	typ := fields[1]
	if typ == "" {
		return nil, errors.New("missing type")
	}
	size, err := parseSampleSize(fields[2])
	if err != nil {
		return nil, err
	}

	toks, err := splitTail(fields[len(fields)-1])
	if err != nil {
		return nil, err
	}
	threshold, err := parseThreshold(toks[0])
	if err != nil {
		return nil, err
	}
	ns, err := parseNsPerOp(toks[len(toks)-1])
	if err != nil {
		return nil, err
	}

	return &Measurement{
		Key:        GroupKey{Name: name, Type: typ, Threshold: threshold},
		SampleSize: size,
		NsPerOp:    ns,
	}, nil
}

// splitFields splits line into its colon-separated fields. A line
// needs at least a name, a type and a sample size.
func splitFields(line string) ([]string, error) {
	fields := strings.Split(line, ":")
	if len(fields) < 3 {
		return nil, fmt.Errorf("want at least 3 colon-separated fields, have %d", len(fields))
	}
	return fields, nil
}

// parseName returns the second slash-separated segment of field,
// without its GOMAXPROCS suffix.
func parseName(field string) (string, error) {
	segs := strings.Split(field, "/")
	if len(segs) < 2 {
		return "", fmt.Errorf("benchmark %q has no sub-benchmark name", field)
	}
	name := trimGomaxprocs(segs[1])
	if name == "" {
		return "", fmt.Errorf("benchmark %q has an empty sub-benchmark name", field)
	}
	return name, nil
}

// trimGomaxprocs removes a trailing "-<digits>" from name.
func trimGomaxprocs(name string) string {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '-' && i < len(name)-1 {
			return name[:i]
		}
		if !('0' <= name[i] && name[i] <= '9') {
			break
		}
	}
	return name
}

// parseSampleSize parses the sample size field. Anything from the
// first hyphen on is a variant tag and is dropped.
func parseSampleSize(field string) (int, error) {
	s := field
	if i := strings.IndexByte(s, '-'); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSpace(s)
	digits, ok := stripDigitSeparators(s)
	if !ok {
		return 0, fmt.Errorf("parsing sample size %q: misplaced digit separator", s)
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok {
			err = numErr.Err
		}
		return 0, fmt.Errorf("parsing sample size %q: %v", s, err)
	}
	return n, nil
}

// stripDigitSeparators removes underscores that appear between two
// digits, as in "1_000_000". It reports false for any other
// underscore.
func stripDigitSeparators(s string) (string, bool) {
	if strings.IndexByte(s, '_') < 0 {
		return s, true
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			b.WriteByte(s[i])
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return "", false
		}
	}
	return b.String(), true
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// splitTail splits the last field into its tab-separated tokens. Only
// the part after the first "=" counts, and spaces are removed
// entirely. The result always has at least one token.
func splitTail(field string) ([]string, error) {
	_, rhs, ok := strings.Cut(field, "=")
	if !ok {
		return nil, fmt.Errorf("missing '=' in %q", field)
	}
	rhs = strings.TrimSpace(rhs)
	rhs = strings.ReplaceAll(rhs, " ", "")
	return strings.Split(rhs, "\t"), nil
}

// parseThreshold returns tok up to its first hyphen.
func parseThreshold(tok string) (string, error) {
	threshold, _, _ := strings.Cut(tok, "-")
	if threshold == "" {
		return "", errors.New("missing threshold")
	}
	return threshold, nil
}

// parseNsPerOp parses tok up to its first "n", which strips a unit
// such as "ns/op".
func parseNsPerOp(tok string) (float64, error) {
	val, _, _ := strings.Cut(tok, "n")
	ns, err := strconv.ParseFloat(val, 64)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok {
			err = numErr.Err
		}
		return 0, fmt.Errorf("parsing ns/op %q: %v", tok, err)
	}
	return ns, nil
}
