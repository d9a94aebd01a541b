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

package source

import (
	"slices"
	"strings"
	"sync"
)

// File is a source code file held by the source manager.
//
// It contains additional book-keeping information for resolving span
// locations. Files are immutable once created.
//
// A nil *File behaves like an empty file with the path name "".
type File struct {
	path, text string

	once sync.Once
	// A prefix sum of the line lengths of text. Given a byte offset, the
	// line containing that offset is recovered by binary search on this
	// list. Equivalently, this is the byte index after each \n in the file.
	lineIndex []int
}

// NewFile constructs a new source file from a raw byte buffer.
func NewFile(path, text string) *File {
	return &File{path: path, text: text}
}

// Path returns this file's filesystem path.
//
// It doesn't need to be a real path; it is used to identify the file in
// diagnostics and to deduplicate spans.
func (f *File) Path() string {
	if f == nil {
		return ""
	}
	return f.path
}

// Text returns this file's textual contents.
func (f *File) Text() string {
	if f == nil {
		return ""
	}
	return f.text
}

// Span is a shorthand for creating a new Span in this file.
func (f *File) Span(start, end int) Span {
	if f == nil {
		return Span{}
	}
	return Span{f, start, end}
}

// EOF returns a Span pointing to the end of this file.
func (f *File) EOF() Span {
	return f.Span(len(f.Text()), len(f.Text()))
}

// Location resolves a byte offset to full location information.
//
// Lines and columns are 1-indexed; columns are measured in runes. This
// operation is O(log n) in the number of lines.
func (f *File) Location(offset int) Location {
	if f == nil || offset == 0 {
		return Location{Offset: 0, Line: 1, Column: 1}
	}

	lines := f.lines()

	// Find the greatest index such that lines[line] <= offset.
	line, exact := slices.BinarySearch(lines, offset)
	if !exact {
		line--
	}

	var column int
	for range f.Text()[lines[line]:offset] {
		column++
	}

	return Location{
		Offset: offset,
		Line:   line + 1,
		Column: column + 1,
	}
}

// Line returns the text of the given 1-indexed line, without its trailing
// newline.
func (f *File) Line(line int) string {
	start, end := f.LineOffsets(line)
	return strings.TrimRight(f.text[start:end], "\r\n")
}

// LineOffsets returns the byte offsets of the given 1-indexed line,
// including its trailing newline.
func (f *File) LineOffsets(line int) (start, end int) {
	lines := f.lines()
	if len(lines) == line {
		return lines[line-1], len(f.Text())
	}
	return lines[line-1], lines[line]
}

func (f *File) lines() []int {
	if f == nil {
		return nil
	}

	// Compute the prefix sum on-demand.
	f.once.Do(func() {
		var next int
		text := f.Text()
		for {
			// We add 1 to the return value of IndexByte because we want the
			// index immediately *after* the newline byte.
			newline := strings.IndexByte(text, '\n') + 1
			if newline == 0 {
				break
			}
			text = text[newline:]

			f.lineIndex = append(f.lineIndex, next)
			next += newline
		}
		f.lineIndex = append(f.lineIndex, next)
	})
	return f.lineIndex
}
