// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchpivot_test

import (
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/benchpivot/benchfmt"
	"golang.org/x/benchpivot/benchpivot"
)

// Example shows the full pipeline from benchmark output to a pivoted
// CSV table.
func Example() {
	const out = `goos: linux
BenchmarkJit/map-8:int:100000-4:	20	threshold=1000-2	1500ns/op
BenchmarkJit/map-8:int:1000000-4:	2	threshold=1000-2	16000.5ns/op
BenchmarkJit/sum-8:int:100000-4:	20	threshold=1000-2	900ns/op
BenchmarkJit/sum-8:int:1000000-4:	3	threshold=1000-2	9100ns/op
PASS
`
	b := benchpivot.NewBuilder()
	r := benchfmt.NewReader(strings.NewReader(out), "example")
	for r.Scan() {
		switch rec := r.Result().(type) {
		case *benchfmt.MalformedLineError:
			log.Fatal(rec)
		case *benchfmt.Measurement:
			b.Add(rec)
		}
	}
	if err := r.Err(); err != nil {
		log.Fatal(err)
	}

	cols := benchpivot.Columns{"100000", "1000000"}
	if err := benchpivot.WriteCSV(os.Stdout, b.Records(), cols); err != nil {
		log.Fatal(err)
	}

	// Output:
	// name,100000,1000000
	// map#int#1000,1500,16000.5
	// sum#int#1000,900,9100
}

func ExampleMissingColumnError() {
	recs := []*benchpivot.Record{{
		Key:          benchfmt.GroupKey{Name: "map", Type: "int", Threshold: "1000"},
		BySampleSize: map[string]float64{"100000": 1500},
	}}
	err := benchpivot.WriteCSV(os.Stdout, recs, benchpivot.DefaultColumns)
	fmt.Println(err)

	// Output:
	// map#int#1000: no measurement for sample size 1000000 (have 100000)
}
