// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchpivot summarizes parameterized benchmark results as a CSV table.
//
// Usage:
//
//	benchpivot [inputs...]
//
// Each input should contain the output of
//
//	go test ./... -bench=Jit -run=^$
//
// whose sub-benchmarks are named <name>:<type>:<size>:...:<label>=<threshold>.
// With no inputs, benchpivot reads benchmark.log in the current
// directory. The input "-" means standard input.
//
// Benchpivot groups the results by name, type and threshold and
// writes one line per group to standard output, giving the ns/op
// measured at each of the sample sizes 100000, 1000000 and 3000000:
//
//	name,100000,1000000,3000000
//	map#int#1000,1500,16000.5,49012
//
// Only lines starting with "Benchmark" are read. Benchpivot fails
// without writing a table if any such line is malformed or if any
// group lacks a measurement for one of the sample sizes.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/benchpivot/benchfmt"
	"golang.org/x/benchpivot/benchpivot"
)

// defaultInput is read when no inputs are named.
const defaultInput = "benchmark.log"

func main() {
	log.SetPrefix("benchpivot: ")
	log.SetFlags(0)

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var uErr *usageError
		if errors.As(err, &uErr) {
			// The flag package already printed the problem.
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

// A usageError is a command line the flag package rejected.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func run(w, wErr io.Writer, args []string) error {
	flags := flag.NewFlagSet("benchpivot", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), `Usage: benchpivot [inputs...]

benchpivot reads parameterized benchmark results from the inputs, or
from %s if none are given, and writes a CSV table of ns/op by sample
size to stdout.
`, defaultInput)
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return &usageError{err}
	}

	paths := flags.Args()
	if len(paths) == 0 {
		paths = []string{defaultInput}
	}
	files := benchfmt.Files{Paths: paths, AllowStdin: true}
	defer files.Close()

	b := benchpivot.NewBuilder()
	for files.Scan() {
		switch rec := files.Result().(type) {
		case *benchfmt.MalformedLineError:
			return rec
		case *benchfmt.Measurement:
			b.Add(rec)
		}
	}
	if err := files.Err(); err != nil {
		return err
	}

	// Render to a buffer so a failure leaves stdout empty.
	var buf bytes.Buffer
	if err := benchpivot.WriteCSV(&buf, b.Records(), benchpivot.DefaultColumns); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}
