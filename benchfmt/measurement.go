// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchfmt reads parameterized benchmark result lines.
//
// Each selected line has the form
//
//	Benchmark<suite>/<name>:<type>:<size>[-<variant>]:...:<label>=<threshold>[-<n>]\t...\t<ns>ns/op
//
// and is parsed into a Measurement: the (name, type, threshold)
// identity of the benchmark, the sample size it ran with, and its
// nanoseconds per operation. Lines that do not start with "Benchmark"
// are ignored.
//
// The Reader is modeled on bufio.Scanner. Files reads a sequence of
// input files with the same interface.
package benchfmt

import "strings"

// A GroupKey identifies a benchmark independent of its sample size.
// Measurements with equal GroupKeys belong in the same output row.
type GroupKey struct {
	Name      string
	Type      string
	Threshold string
}

// String returns k in the form name#type#threshold.
func (k GroupKey) String() string {
	return strings.Join([]string{k.Name, k.Type, k.Threshold}, "#")
}

// A Measurement is a single parsed benchmark line.
type Measurement struct {
	Key GroupKey

	// SampleSize is the size parameter the benchmark ran with.
	SampleSize int

	// NsPerOp is the measured nanoseconds per operation.
	NsPerOp float64

	// fileName and line record where this Measurement was read from.
	fileName string
	line     int
}

// Pos returns the file name and line number of a Measurement that was
// read by a Reader. For Measurements that were not read from a file,
// it returns "", 0.
func (m *Measurement) Pos() (fileName string, line int) {
	return m.fileName, m.line
}

// A Record is a single record read from a benchmark file. It may be a
// *Measurement or a *MalformedLineError.
type Record interface {
	// Pos returns the position of this record as a file name and a
	// 1-based line number within that file. If this record was not read
	// from a file, it returns "", 0.
	Pos() (fileName string, line int)
}

var _ Record = (*Measurement)(nil)
var _ Record = (*MalformedLineError)(nil)
