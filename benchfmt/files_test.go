// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"os"
	"strings"
	"syscall"
	"testing"
)

func TestFiles(t *testing.T) {
	// Switch to testdata/files directory.
	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(oldDir)
	if err := os.Chdir("testdata/files"); err != nil {
		t.Fatal(err)
	}

	check := func(f *Files, want ...string) {
		t.Helper()
		for f.Scan() {
			if len(want) == 0 {
				t.Errorf("got %s, want end of stream", printRecord(f.Result()))
				return
			}
			if got := printRecord(f.Result()); got != want[0] {
				t.Errorf("got %q, want %q", got, want[0])
			}
			want = want[1:]
		}

		err := f.Err()
		wantErr := ""
		if len(want) == 1 && strings.HasPrefix(want[0], "err ") {
			wantErr = want[0][len("err "):]
			want = want[1:]
		}
		if err == nil && wantErr != "" {
			t.Errorf("got success, want error %s", wantErr)
		} else if err != nil && wantErr == "" {
			t.Errorf("got error %s", err)
		} else if err != nil && err.Error() != wantErr {
			t.Errorf("got error %s, want error %s", err, wantErr)
		}

		if len(want) != 0 {
			t.Errorf("got end of stream, want %v", want)
		}
	}

	check(
		&Files{Paths: []string{"a", "b"}},
		"a:2: map#int#50 100000 100",
		"a:4: map#int#50 1000000 1000",
		"b:1: sum#int#50 100000 200",
	)
	check(
		&Files{Paths: []string{"b", "a"}},
		"b:1: sum#int#50 100000 200",
		"a:2: map#int#50 100000 100",
		"a:4: map#int#50 1000000 1000",
	)
	check(
		&Files{Paths: []string{"b", "c", "a"}},
		"b:1: sum#int#50 100000 200",
		"err open c: "+syscall.ENOENT.Error(),
	)
	check(
		&Files{Paths: []string{"bad", "b"}},
		`error bad:2: want at least 3 colon-separated fields, have 1: "BenchmarkJit"`,
		"b:1: sum#int#50 100000 200",
	)
	check(&Files{})
}

func TestFilesClose(t *testing.T) {
	f := &Files{Paths: []string{"testdata/files/a"}}
	if !f.Scan() {
		t.Fatalf("Scan failed: %v", f.Err())
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	// Closing twice is harmless.
	if err := f.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}
