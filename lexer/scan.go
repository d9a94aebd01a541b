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

package lexer

import (
	"github.com/bufbuild/ccompile/internal/charx"
	"github.com/bufbuild/ccompile/token"
)

// This file is the logical-character layer: the only code in the package
// that knows escaped newlines exist. Everything above it works on a
// stream of (character, byte width) pairs, where the width accounts for
// any line splices skipped over to reach the character.
//
// The scheme is peek-then-consume. peekCharAndSize returns the logical
// character at an offset and how many raw bytes it occupies; consumeChar
// advances past it, re-peeking when the width shows the character was
// not a plain byte so that the token being formed picks up its dirty
// flag.

// byteAt returns the raw byte at pos, or 0 at or past the end of text.
// The zero byte doubles as the end-of-input sentinel, as in C string
// buffers.
func byteAt(text string, pos int) byte {
	if pos >= len(text) {
		return 0
	}
	return text[pos]
}

// isTrivial reports whether a byte can be consumed by advancing one
// position, with no further decoding. '?' is reserved for a future
// trigraph pass and currently behaves trivially in the slow path.
func isTrivial(b byte) bool {
	return b != '?' && b != '\\'
}

// escapedNewlineSize returns the byte length of the newline sequence at
// pos, where pos is just past a backslash, or 0 if the backslash does
// not escape a newline. A \r\n or \n\r pair counts as one sequence.
func escapedNewlineSize(text string, pos int) int {
	first := byteAt(text, pos)
	if !charx.IsNewline(first) {
		return 0
	}
	if second := byteAt(text, pos+1); charx.IsNewline(second) && second != first {
		return 2
	}
	return 1
}

// peekNontrivial is the slow path of peekCharAndSize: it decodes a
// logical character starting at a byte that may begin an escaped
// newline, returning the character and the total raw width consumed.
//
// If flags is non-nil and an escaped newline is skipped, [token.Dirty]
// is set.
func peekNontrivial(text string, pos int, flags *token.Flags) (byte, int) {
	size := 0
	for {
		b := byteAt(text, pos)
		if b != '\\' {
			return b, size + 1
		}

		nl := escapedNewlineSize(text, pos+1)
		if nl == 0 {
			// A backslash not followed by a newline is just a backslash.
			return '\\', size + 1
		}
		if flags != nil {
			*flags |= token.Dirty
		}
		pos += 1 + nl
		size += 1 + nl
	}
}

// peekCharAndSize returns the logical character at pos and its raw byte
// width, without flagging anything.
func peekCharAndSize(text string, pos int) (byte, int) {
	if b := byteAt(text, pos); isTrivial(b) {
		return b, 1
	}
	return peekNontrivial(text, pos, nil)
}

// consumeChar advances past a character previously peeked with
// peekCharAndSize. If the peeked width was not 1, the character is
// re-peeked with flags attached, so the token picks up [token.Dirty]
// for any splices under it.
func consumeChar(text string, pos, size int, flags *token.Flags) int {
	if size == 1 {
		return pos + 1
	}
	_, size = peekNontrivial(text, pos, flags)
	return pos + size
}

// peekCharAdvance peeks the logical character at pos and advances past
// it in one step, flagging the token for any splice skipped.
func peekCharAdvance(text string, pos int, flags *token.Flags) (byte, int) {
	if b := byteAt(text, pos); isTrivial(b) {
		return b, pos + 1
	}
	b, size := peekNontrivial(text, pos, flags)
	return b, pos + size
}
