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
	"encoding/binary"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/bufbuild/ccompile/report"
	"github.com/bufbuild/ccompile/target"
	"github.com/bufbuild/ccompile/token"
)

// StringConcatenation is the analyzed form of a run of adjacent string
// literal tokens: the decoded contents of all of them, joined, in the
// reconciled encoding.
//
// Result is a multiple of CharByteWidth bytes long and ends with one
// null code unit, written like every other unit in the target's byte
// order.
//
// A universal character name may designate a code point above U+10FFFF,
// which no UTF encoding can represent. Such code points are stored as
// the replacement character U+FFFD in UTF-8 and UTF-16 results;
// four-byte code units store the code point verbatim.
type StringConcatenation struct {
	Result        []byte
	CharByteWidth int
	Kind          token.Kind
	HasError      bool
}

// ParseString decodes and concatenates a contiguous run of string
// literal tokens, reporting errors to r.
//
// The combined encoding follows C11 6.4.5p5: an unprefixed literal
// adopts the prefix of its neighbors, identical prefixes combine, and
// any other mix is a (diagnosed) non-standard concatenation. Decoding
// continues past errors so one call can report every problem in the
// run.
func ParseString(r *report.Report, targ target.Info, toks []token.Token) StringConcatenation {
	sc := StringConcatenation{Kind: token.StringLiteral}

	var total int
	for _, tok := range toks {
		total += tok.Range.Len()
		kind := tok.Kind
		if kind == sc.Kind || kind == token.StringLiteral {
			continue
		}
		if sc.Kind == token.StringLiteral {
			sc.Kind = kind
			continue
		}
		r.Error(ErrNonstandardStringConcat{At: tok.Range})
		sc.HasError = true
	}

	width := stringWidth(sc.Kind, targ)
	sc.CharByteWidth = width
	sc.Result = make([]byte, 0, total*width+width)

	for _, tok := range toks {
		sc.decodeBody(r, targ, tok, width)
	}

	// Null terminator.
	sc.Result = appendUnit(sc.Result, 0, width, targ.ByteOrder)
	return sc
}

// decodeBody decodes one token's body into the result buffer.
func (sc *StringConcatenation) decodeBody(r *report.Report, targ target.Info, tok token.Token, width int) {
	spelling := cleanSpelling(tok.Text())
	open := strings.IndexByte(spelling, '"')
	if open < 0 || open == len(spelling)-1 || spelling[len(spelling)-1] != '"' {
		sc.HasError = true
		return
	}
	body := spelling[open+1 : len(spelling)-1]

	bo := targ.ByteOrder
	s := &scanner{rep: r, at: tok.Range, text: body}
	for !s.done() {
		c := s.peek()
		if c != '\\' {
			if width == 1 {
				// Narrow and u8 strings store source bytes verbatim;
				// multibyte UTF-8 sequences pass through untouched.
				sc.Result = append(sc.Result, s.next())
				continue
			}
			// Re-encode a UTF-8 source character as one target code
			// unit (or a surrogate pair, for char16_t).
			cp, size := utf8.DecodeRuneInString(s.text[s.pos:])
			s.pos += size
			sc.Result = appendCodePoint(sc.Result, uint32(cp), width, bo)
			continue
		}

		s.next()
		unit, kind, ok := s.decodeEscape()
		if !ok {
			sc.HasError = true
			continue
		}
		if kind == escapeCodePoint {
			sc.Result = appendCodePoint(sc.Result, unit, width, bo)
		} else {
			sc.Result = appendUnit(sc.Result, unit, width, bo)
		}
	}
}

// stringWidth returns the code unit width in bytes for a string literal
// of the given kind.
func stringWidth(kind token.Kind, targ target.Info) int {
	switch kind {
	case token.Utf16StringLiteral:
		return targ.Char16Width
	case token.Utf32StringLiteral:
		return targ.Char32Width
	case token.WideStringLiteral:
		return targ.WcharWidth
	default:
		return 1
	}
}

// appendUnit writes one code unit in the target's byte order. Values
// wider than the unit are truncated.
func appendUnit(buf []byte, unit uint32, width int, bo binary.ByteOrder) []byte {
	switch width {
	case 1:
		return append(buf, byte(unit))
	case 2:
		var b [2]byte
		bo.PutUint16(b[:], uint16(unit))
		return append(buf, b[:]...)
	default:
		var b [4]byte
		bo.PutUint32(b[:], unit)
		return append(buf, b[:]...)
	}
}

// appendCodePoint writes a Unicode code point in the string's encoding:
// UTF-8 bytes for one-byte units, a unit or surrogate pair for two-byte
// units, and a single unit otherwise. Code points above U+10FFFF come
// out as U+FFFD at the narrower widths; AppendRune and EncodeRune both
// substitute it for unencodable runes.
func appendCodePoint(buf []byte, cp uint32, width int, bo binary.ByteOrder) []byte {
	switch width {
	case 1:
		return utf8.AppendRune(buf, rune(cp))
	case 2:
		if cp > 0xFFFF {
			hi, lo := utf16.EncodeRune(rune(cp))
			buf = appendUnit(buf, uint32(hi), width, bo)
			return appendUnit(buf, uint32(lo), width, bo)
		}
		return appendUnit(buf, cp, width, bo)
	default:
		return appendUnit(buf, cp, width, bo)
	}
}
