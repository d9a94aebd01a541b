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

package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/ccompile/source"
)

func TestLocation(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test.c", "int x;\nreturn é;\n")

	tests := []struct {
		offset, line, column int
	}{
		{0, 1, 1},
		{4, 1, 5},
		{6, 1, 7},  // The newline belongs to line 1.
		{7, 2, 1},  // "return é;"
		{14, 2, 8}, // The two-byte é.
		{16, 2, 9}, // Columns count runes, not bytes.
	}
	for _, test := range tests {
		loc := file.Location(test.offset)
		assert.Equal(t, test.offset, loc.Offset)
		assert.Equal(t, test.line, loc.Line, "offset %d", test.offset)
		assert.Equal(t, test.column, loc.Column, "offset %d", test.offset)
	}
}

func TestLine(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test.c", "first\nsecond\r\nlast")
	assert.Equal(t, "first", file.Line(1))
	assert.Equal(t, "second", file.Line(2))
	assert.Equal(t, "last", file.Line(3))

	start, end := file.LineOffsets(2)
	assert.Equal(t, 6, start)
	assert.Equal(t, 14, end)
}

func TestSpan(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test.c", "int x;\n")
	span := file.Span(0, 3)
	assert.Equal(t, "int", span.Text())
	assert.Equal(t, 3, span.Len())
	assert.Equal(t, 1, span.StartLoc().Line)
	assert.Equal(t, 4, span.EndLoc().Column)

	joined := source.Join(span, file.Span(4, 5))
	assert.Equal(t, "int x", joined.Text())

	assert.True(t, source.Join().IsZero())
	assert.Equal(t, file.EOF().Start, len(file.Text()))
}

func TestNilFile(t *testing.T) {
	t.Parallel()

	var file *source.File
	assert.Equal(t, "", file.Path())
	assert.Equal(t, "", file.Text())
	assert.True(t, file.Span(0, 0).IsZero())
}
