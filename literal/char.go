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

package literal

import (
	"strings"

	"github.com/bufbuild/ccompile/lexer"
	"github.com/bufbuild/ccompile/report"
	"github.com/bufbuild/ccompile/target"
	"github.com/bufbuild/ccompile/token"
)

// CharConstant is the analyzed form of a character constant token: its
// decoded value and encoding.
type CharConstant struct {
	Value    uint64
	Kind     token.Kind
	HasError bool
}

// ParseChar decodes a character constant token's spelling into its
// value, reporting errors to r.
//
// Multi-character constants pack their code units big-endian into the
// value: each unit shifts the accumulator left by the unit width. The
// unit width is one byte for narrow constants and the target-supplied
// width for u, U, and L constants. This packing is implementation-
// defined in C; downstream consumers must agree with it.
func ParseChar(r *report.Report, targ target.Info, tok token.Token) CharConstant {
	cc := CharConstant{Kind: tok.Kind}

	spelling := cleanSpelling(tok.Text())
	open := strings.IndexByte(spelling, '\'')
	if open < 0 || open == len(spelling)-1 || spelling[len(spelling)-1] != '\'' {
		// Not a well-formed constant; the tokenizer reports these.
		cc.HasError = true
		return cc
	}
	body := spelling[open+1 : len(spelling)-1]
	if body == "" {
		r.Error(lexer.ErrEmptyCharacter{At: tok.Range})
		cc.HasError = true
		return cc
	}

	width := charWidth(tok.Kind, targ)
	unitMax := uint64(1)<<(8*width) - 1

	s := &scanner{rep: r, at: tok.Range, text: body}
	var units int
	for !s.done() {
		var unit uint32
		if c := s.next(); c == '\\' {
			u, _, ok := s.decodeEscape()
			if !ok {
				cc.HasError = true
				continue
			}
			unit = u
		} else {
			unit = uint32(c)
		}

		if uint64(unit) > unitMax {
			r.Error(ErrCharConstOverflow{At: tok.Range})
			cc.HasError = true
		}
		units++
		cc.Value = cc.Value<<(8*width) | uint64(unit)&unitMax
	}

	// More code units than fit in the 64-bit accumulator.
	if units*width > 8 {
		r.Error(ErrCharConstOverflow{At: tok.Range})
		cc.HasError = true
	}
	return cc
}

// charWidth returns the code unit width in bytes for a character
// constant of the given kind.
func charWidth(kind token.Kind, targ target.Info) int {
	switch kind {
	case token.Utf16CharConstant:
		return targ.Char16Width
	case token.Utf32CharConstant:
		return targ.Char32Width
	case token.WideCharConstant:
		return targ.WcharWidth
	default:
		return 1
	}
}
