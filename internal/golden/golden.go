// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package golden runs corpus tests: directories of C source files, each
// paired with golden files holding the expected outputs of running some
// stage of the compiler over it.
package golden

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// Corpus describes a file-system test corpus: table-driven tests where
// the table is a directory tree.
type Corpus struct {
	// Root of the corpus directory, relative to the file that calls
	// [Corpus.Run].
	Root string

	// Environment variable that, when set to a glob, switches matching
	// test cases into refresh mode: their golden files are rewritten
	// with the current outputs instead of compared.
	Refresh string

	// Extension (without a dot) of the files that define a test case.
	Extension string

	// The outputs produced per test case, matched against golden files
	// named by appending each output's extension to the case file name.
	// A missing golden file is an expectation of empty output.
	Outputs []Output

	// Test runs one case and returns its outputs, parallel to Outputs.
	Test func(t *testing.T, path, text string) []string
}

// Output names one golden output of a test case.
type Output struct {
	// Suffix appended to the case file name to locate the golden file:
	// for a case "decls.c" and extension "tokens", "decls.c.tokens".
	Extension string

	// Comparison for this output; nil means compare with a unified
	// diff on mismatch.
	Compare Compare
}

// Compare compares an actual output to a golden one, returning "" on
// match and an error message otherwise.
type Compare func(got, want string) string

// Run locates every case under the corpus root and runs each as a
// subtest.
func (c Corpus) Run(t *testing.T) {
	testDir := callerDir(0)
	root := filepath.Join(testDir, c.Root)

	var cases []string
	err := filepath.Walk(root, func(p string, fi fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fi.IsDir() && strings.TrimPrefix(path.Ext(p), ".") == c.Extension {
			cases = append(cases, p)
		}
		return nil
	})
	if err != nil {
		t.Fatal("golden: error while walking corpus:", err)
	}

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("golden: invalid glob in $%s: %q", c.Refresh, refresh)
		}
	}
	if refresh != "" {
		t.Logf("golden: refreshing golden files because %s=%s", c.Refresh, refresh)
		// A refreshed run must not pass, or a stale CI cache could mask
		// a real failure.
		t.Fail()
	}

	for _, casePath := range cases {
		name, _ := filepath.Rel(testDir, casePath)
		t.Run(name, func(t *testing.T) {
			text, err := os.ReadFile(casePath)
			if err != nil {
				t.Fatalf("golden: error while loading case %q: %v", casePath, err)
			}

			results := c.Test(t, name, string(text))
			refreshing, _ := doublestar.Match(refresh, name)

			for i, output := range c.Outputs {
				goldenPath := fmt.Sprint(casePath, ".", output.Extension)
				if refreshing {
					c.refresh(t, goldenPath, results[i])
					continue
				}

				want, err := os.ReadFile(goldenPath)
				if err != nil && !errors.Is(err, fs.ErrNotExist) {
					t.Errorf("golden: error while loading golden file %q: %v", goldenPath, err)
					continue
				}

				compare := output.Compare
				if compare == nil {
					compare = diffCompare
				}
				if msg := compare(results[i], string(want)); msg != "" {
					t.Errorf("output mismatch for %q:\n%s", goldenPath, msg)
				}
			}
		})
	}
}

func (c Corpus) refresh(t *testing.T, goldenPath, result string) {
	if result == "" {
		err := os.Remove(goldenPath)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("golden: error while deleting golden file %q: %v", goldenPath, err)
		}
		return
	}
	if err := os.WriteFile(goldenPath, []byte(result), 0666); err != nil {
		t.Errorf("golden: error while writing golden file %q: %v", goldenPath, err)
	}
}

func diffCompare(got, want string) string {
	if got == want {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}

	// Colorize insertions and deletions so the diff is easier to read.
	lines := strings.Split(diff, "\n")
	for i, s := range lines {
		switch {
		case strings.HasPrefix(s, "+"):
			lines[i] = "\033[1;92m" + s + "\033[0m"
		case strings.HasPrefix(s, "-"):
			lines[i] = "\033[1;91m" + s + "\033[0m"
		}
	}
	return strings.Join(lines, "\n")
}

func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 2)
	if !ok {
		panic("golden: could not determine test file's directory")
	}
	return filepath.Dir(file)
}
