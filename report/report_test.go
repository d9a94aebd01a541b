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

package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/ccompile/report"
	"github.com/bufbuild/ccompile/source"
)

// testError is a minimal Diagnose implementation for exercising the
// report machinery without depending on the compiler's own errors.
type testError struct {
	tag  report.Tag
	at   source.Span
	note string
}

func (e testError) Error() string {
	return "something went wrong"
}

func (e testError) Diagnose(d *report.Diagnostic) {
	d.With(e.tag, report.Snippet(e.at))
	if e.note != "" {
		d.With(report.Note("%s", e.note))
	}
}

func TestReport(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test.c", "int $x = 1;\n")

	var r report.Report
	assert.False(t, r.HasErrors())

	d := r.Error(testError{tag: "err_unknown_character", at: file.Span(4, 5)})
	assert.Equal(t, report.Error, d.Level())
	assert.True(t, d.Is("err_unknown_character"))
	assert.Equal(t, "something went wrong", d.Message())
	assert.Equal(t, 4, d.Primary().Start)

	r.Warnf("might be a problem")
	assert.True(t, r.HasErrors())
	assert.True(t, r.HasWarnings())
	assert.Equal(t, 1, r.Count(report.Error))
	assert.Equal(t, 1, r.Count(report.Warning))
}

func TestSort(t *testing.T) {
	t.Parallel()

	a := source.NewFile("a.c", "xxxx\n")
	b := source.NewFile("b.c", "yyyy\n")

	var r report.Report
	r.Error(testError{at: b.Span(2, 3)})
	r.Error(testError{at: a.Span(3, 4)})
	r.Error(testError{at: a.Span(0, 1)})
	r.Sort()

	var got []string
	for i := range r.Diagnostics {
		span := r.Diagnostics[i].Primary()
		got = append(got, span.String())
	}
	assert.Equal(t, []string{
		`"a.c":1:1[0:1]`,
		`"a.c":1:4[3:4]`,
		`"b.c":1:3[2:3]`,
	}, got)
}

func TestRender(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test.c", "int $x = 1;\nint y = $2;\n")

	var r report.Report
	r.Error(testError{
		tag:  "err_unknown_character",
		at:   file.Span(4, 5),
		note: "identifiers cannot start with $",
	})

	want := "" +
		"error: something went wrong [err_unknown_character]\n" +
		"  --> test.c:1:5\n" +
		"   |\n" +
		" 1 | int $x = 1;\n" +
		"   |     ^\n" +
		"   = note: identifiers cannot start with $\n"
	assert.Equal(t, want, report.Renderer{}.RenderString(&r))
}

func TestRenderWindows(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test.c", "int $x = 1;\nint y = $2;\n")

	var r report.Report
	d := r.Error(testError{tag: "err_unknown_character", at: file.Span(4, 5)})
	d.With(report.Snippet(file.Span(20, 21), "and here"))

	// Annotations on adjacent lines fold into one window.
	want := "" +
		"error: something went wrong [err_unknown_character]\n" +
		"  --> test.c:1:5\n" +
		"   |\n" +
		" 1 | int $x = 1;\n" +
		"   |     ^\n" +
		" 2 | int y = $2;\n" +
		"   |         - and here\n"
	assert.Equal(t, want, report.Renderer{}.RenderString(&r))
}
