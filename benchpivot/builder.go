// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchpivot groups benchmark measurements by benchmark and
// pivots their sample sizes into columns.
//
// A Builder collects measurements into one Record per distinct
// benchfmt.GroupKey. Each Record maps a sample size label to the
// ns/op value measured at that size. WriteCSV renders Records as a
// comma-separated table with one column per configured sample size.
package benchpivot

import (
	"strconv"

	"golang.org/x/benchpivot/benchfmt"
)

// A Record is the aggregated set of measurements for one benchmark.
type Record struct {
	Key benchfmt.GroupKey

	// BySampleSize maps a decimal sample size label to the ns/op
	// value measured at that size.
	BySampleSize map[string]float64
}

// A Builder collects measurements into Records.
type Builder struct {
	// records maps from group key to its Record.
	records map[benchfmt.GroupKey]*Record
	// order is the group keys in first-seen order.
	order []benchfmt.GroupKey
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{records: make(map[benchfmt.GroupKey]*Record)}
}

// Add adds m to the Record for m.Key, creating the Record if this is
// the first measurement with that key. A later measurement of the same
// sample size replaces an earlier one.
//
// Add does not retain m.
func (b *Builder) Add(m *benchfmt.Measurement) {
	rec := b.records[m.Key]
	if rec == nil {
		rec = &Record{Key: m.Key, BySampleSize: make(map[string]float64)}
		b.records[m.Key] = rec
		b.order = append(b.order, m.Key)
	}
	rec.BySampleSize[strconv.Itoa(m.SampleSize)] = m.NsPerOp
}

// Records returns the collected Records in the order their keys were
// first added.
func (b *Builder) Records() []*Record {
	out := make([]*Record, len(b.order))
	for i, k := range b.order {
		out[i] = b.records[k]
	}
	return out
}

// Aggregate collects ms into Records, in the order their keys first
// appear in ms.
func Aggregate(ms []*benchfmt.Measurement) []*Record {
	b := NewBuilder()
	for _, m := range ms {
		b.Add(m)
	}
	return b.Records()
}
