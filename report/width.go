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

package report

import (
	"strings"

	"github.com/rivo/uniseg"
)

// tabstopWidth is the size all tabstops are rendered as.
const tabstopWidth = 4

// stringWidth calculates the rendered width of text in terminal columns,
// starting at column col.
//
// Measuring with grapheme clusters rather than runes keeps underlines
// aligned when the annotated line contains combining characters or wide
// East Asian text. Tabs advance to the next tabstop, which is why the
// starting column matters.
func stringWidth(col int, text string) int {
	for {
		tab := strings.IndexByte(text, '\t')
		if tab == -1 {
			break
		}
		col += uniseg.StringWidth(text[:tab])
		col += tabstopWidth - (col % tabstopWidth)
		text = text[tab+1:]
	}
	return col + uniseg.StringWidth(text)
}

// expandTabs replaces tabs with spaces out to the renderer's tabstops, so
// that the underline row and the source row use the same columns.
func expandTabs(text string) string {
	if !strings.ContainsRune(text, '\t') {
		return text
	}

	var out strings.Builder
	var col int
	for _, r := range text {
		if r != '\t' {
			out.WriteRune(r)
			col = stringWidth(col, string(r))
			continue
		}
		spaces := tabstopWidth - (col % tabstopWidth)
		out.WriteString(strings.Repeat(" ", spaces))
		col += spaces
	}
	return out.String()
}
