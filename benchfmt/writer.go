// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// A Writer writes Measurements as benchmark lines that ParseLine
// reads back to the same Measurement.
type Writer struct {
	w   io.Writer
	buf bytes.Buffer
}

// NewWriter returns a writer that writes benchmark lines to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write writes m as a single line of the form
//
//	BenchmarkPivot/<name>:<type>:<size>:threshold=<threshold>\t<ns>ns/op
//
// If a field of m cannot be represented in that form, Write returns an
// error and writes nothing.
func (w *Writer) Write(m *Measurement) error {
	if err := checkWritable(m); err != nil {
		return err
	}

	fmt.Fprintf(&w.buf, "BenchmarkPivot/%s:%s:%d:threshold=%s\t%sns/op\n",
		m.Key.Name, m.Key.Type, m.SampleSize, m.Key.Threshold,
		strconv.FormatFloat(m.NsPerOp, 'g', -1, 64))

	// Flush the buffer out to the io.Writer. Write to the buffer
	// can't fail, so we only have to check if this fails.
	_, err := w.w.Write(w.buf.Bytes())
	w.buf.Reset()
	return err
}

func checkWritable(m *Measurement) error {
	k := m.Key
	switch {
	case k.Name == "" || strings.ContainsAny(k.Name, "/:\r\n"):
		return fmt.Errorf("cannot write name %q", k.Name)
	case trimGomaxprocs(k.Name) != k.Name:
		return fmt.Errorf("cannot write name %q: ends in a GOMAXPROCS suffix", k.Name)
	case k.Type == "" || strings.ContainsAny(k.Type, ":\r\n"):
		return fmt.Errorf("cannot write type %q", k.Type)
	case k.Threshold == "" || strings.ContainsAny(k.Threshold, "-: \t\r\n\v\f"):
		return fmt.Errorf("cannot write threshold %q", k.Threshold)
	case m.SampleSize < 0:
		return fmt.Errorf("cannot write negative sample size %d", m.SampleSize)
	case math.IsInf(m.NsPerOp, 0):
		return fmt.Errorf("cannot write ns/op %v", m.NsPerOp)
	}
	return nil
}
