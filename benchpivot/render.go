// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchpivot

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"
	"golang.org/x/benchpivot/benchfmt"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Columns is the ordered list of sample size labels to render, one
// output column each.
type Columns []string

// DefaultColumns is the column set written by the benchpivot command.
var DefaultColumns = Columns{"100000", "1000000", "3000000"}

// nameColumn is the header of the group key column.
const nameColumn = "name"

// ErrBadColumns is returned when a Columns value cannot be rendered.
var ErrBadColumns = errors.New("bad column set")

func (c Columns) check() error {
	for i, col := range c {
		if col == "" || col == nameColumn {
			return fmt.Errorf("%w: reserved column label %q", ErrBadColumns, col)
		}
		if slices.Contains(c[:i], col) {
			return fmt.Errorf("%w: duplicate column label %q", ErrBadColumns, col)
		}
	}
	return nil
}

// A MissingColumnError reports a Record that has no measurement for
// one of the requested columns.
type MissingColumnError struct {
	Key    benchfmt.GroupKey
	Column string

	// Have is the sorted sample size labels the Record does have.
	Have []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: no measurement for sample size %s (have %s)", e.Key, e.Column, strings.Join(e.Have, ", "))
}

// Table returns records as a table with a "name" column holding each
// record's key, followed by one float64 column per label in cols.
// Rows are in the order of records.
//
// Every record must have a measurement for every column. Otherwise
// Table returns a *MissingColumnError for the first gap.
func Table(records []*Record, cols Columns) (*table.Table, error) {
	if err := cols.check(); err != nil {
		return nil, err
	}

	names := make([]string, len(records))
	vals := make([][]float64, len(cols))
	for j := range vals {
		vals[j] = make([]float64, len(records))
	}
	for i, rec := range records {
		names[i] = rec.Key.String()
		for j, col := range cols {
			v, ok := rec.BySampleSize[col]
			if !ok {
				have := maps.Keys(rec.BySampleSize)
				slices.Sort(have)
				return nil, &MissingColumnError{Key: rec.Key, Column: col, Have: have}
			}
			vals[j][i] = v
		}
	}

	tb := new(table.Builder).Add(nameColumn, names)
	for j, col := range cols {
		tb.Add(col, vals[j])
	}
	return tb.Done(), nil
}

// WriteCSV writes records to w as comma-separated text. The header is
// "name" followed by cols. Each following line holds a record's key
// and its ns/op value for each column.
//
// All records are checked before anything is written, so if WriteCSV
// returns a *MissingColumnError, w is untouched.
func WriteCSV(w io.Writer, records []*Record, cols Columns) error {
	t, err := Table(records, cols)
	if err != nil {
		return err
	}

	names := t.MustColumn(nameColumn).([]string)
	vals := make([][]float64, len(cols))
	for j, col := range cols {
		vals[j] = t.MustColumn(col).([]float64)
	}

	o := csv.NewWriter(w)
	if err := o.Write(t.Columns()); err != nil {
		return err
	}
	row := make([]string, 1+len(cols))
	for i := 0; i < t.Len(); i++ {
		row[0] = names[i]
		for j := range vals {
			row[1+j] = formatNsPerOp(vals[j][i])
		}
		if err := o.Write(row); err != nil {
			return err
		}
	}
	o.Flush()
	return o.Error()
}

// formatNsPerOp formats v as the shortest decimal that parses back to
// v, without an exponent.
func formatNsPerOp(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
