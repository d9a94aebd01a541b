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

	"github.com/bufbuild/ccompile/internal/charx"
	"github.com/bufbuild/ccompile/lexer"
	"github.com/bufbuild/ccompile/report"
	"github.com/bufbuild/ccompile/source"
)

// escapeKind says what the value of a decoded escape denotes.
type escapeKind int

const (
	// A raw code unit: simple, octal, and hex escapes. Written to the
	// output as-is, whatever the target encoding.
	escapeUnit escapeKind = iota
	// A Unicode code point, from a UCN. Re-encoded to the target's code
	// units before writing.
	escapeCodePoint
)

// scanner walks the body of a literal spelling, decoding escape
// sequences. Diagnostics are reported against the whole token.
type scanner struct {
	rep  *report.Report
	at   source.Span
	text string
	pos  int
}

func (s *scanner) done() bool {
	return s.pos >= len(s.text)
}

func (s *scanner) peek() byte {
	if s.done() {
		return 0
	}
	return s.text[s.pos]
}

func (s *scanner) next() byte {
	b := s.peek()
	s.pos++
	return b
}

// decodeEscape decodes the escape sequence at the scanner's position,
// which is just past the introducing backslash. On failure it reports a
// diagnostic and returns ok false, leaving the position past whatever
// it could consume so decoding can continue best-effort.
func (s *scanner) decodeEscape() (value uint32, kind escapeKind, ok bool) {
	c := s.next()
	switch c {
	case '\'', '"', '?', '\\':
		return uint32(c), escapeUnit, true
	case 'a':
		return '\a', escapeUnit, true
	case 'b':
		return '\b', escapeUnit, true
	case 'f':
		return '\f', escapeUnit, true
	case 'n':
		return '\n', escapeUnit, true
	case 'r':
		return '\r', escapeUnit, true
	case 't':
		return '\t', escapeUnit, true
	case 'v':
		return '\v', escapeUnit, true

	case 'x':
		if !charx.IsHexDigit(s.peek()) {
			s.rep.Error(ErrInvalidHexEscape{At: s.at})
			return 0, escapeUnit, false
		}
		var v uint64
		for charx.IsHexDigit(s.peek()) {
			v = v<<4 | uint64(charx.HexValue(s.next()))
			if v > 0xFFFFFFFF {
				v = 0xFFFFFFFF // Saturate; the width check reports overflow.
			}
		}
		return uint32(v), escapeUnit, true

	case '0', '1', '2', '3', '4', '5', '6', '7':
		// Up to three octal digits, including the first.
		v := charx.HexValue(c)
		for i := 1; i < 3 && charx.IsOctDigit(s.peek()); i++ {
			v = v<<3 | charx.HexValue(s.next())
		}
		return v, escapeUnit, true

	case 'u', 'U':
		digits := 4
		if c == 'U' {
			digits = 8
		}
		var cp uint32
		for range digits {
			if !charx.IsHexDigit(s.peek()) {
				s.rep.Warn(lexer.WarnUCNIncomplete{At: s.at})
				return 0, escapeCodePoint, false
			}
			cp = cp<<4 | charx.HexValue(s.next())
		}
		if !charx.IsValidUCN(cp) {
			s.rep.Error(lexer.ErrUCNInvalid{At: s.at})
			return 0, escapeCodePoint, false
		}
		return cp, escapeCodePoint, true

	default:
		// Not a standard escape; the character stands for itself.
		return uint32(c), escapeUnit, true
	}
}

// cleanSpelling deletes escaped newlines from a token spelling, per
// translation phase 2, so the analyzers see the token's logical
// content. Clean spellings are returned unchanged without allocating.
func cleanSpelling(s string) string {
	i := strings.IndexByte(s, '\\')
	if i < 0 {
		return s
	}

	var out strings.Builder
	out.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == '\\' {
			if n := spliceSize(s, i+1); n > 0 {
				i += 1 + n
				continue
			}
		}
		out.WriteByte(s[i])
		i++
	}
	return out.String()
}

// spliceSize returns the length of the newline sequence at pos, just
// past a backslash, or 0 if the backslash is not part of a splice.
func spliceSize(s string, pos int) int {
	if pos >= len(s) || !charx.IsNewline(s[pos]) {
		return 0
	}
	if pos+1 < len(s) && charx.IsNewline(s[pos+1]) && s[pos+1] != s[pos] {
		return 2
	}
	return 1
}
