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

package literal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/ccompile/lexer"
	"github.com/bufbuild/ccompile/literal"
	"github.com/bufbuild/ccompile/report"
	"github.com/bufbuild/ccompile/source"
	"github.com/bufbuild/ccompile/target"
	"github.com/bufbuild/ccompile/token"
)

// lexStrings lexes text into a run of adjacent string literal tokens.
func lexStrings(t *testing.T, text string) []token.Token {
	t.Helper()

	stream := lexer.NewStream(source.NewFile("test.c", text), new(report.Report))
	var toks []token.Token
	for !stream.Empty() {
		tok := stream.Consume()
		require.True(t, tok.Kind.IsStringLiteral(), "%v", tok)
		toks = append(toks, tok)
	}
	require.NotEmpty(t, toks)
	return toks
}

func TestStringConcat(t *testing.T) {
	t.Parallel()

	toks := lexStrings(t, `"small string " "that has become " "long now"`)

	r := new(report.Report)
	sc := literal.ParseString(r, target.Default(), toks)

	assert.False(t, sc.HasError)
	assert.Equal(t, token.StringLiteral, sc.Kind)
	assert.Equal(t, 1, sc.CharByteWidth)
	assert.Equal(t, []byte("small string that has become long now\x00"), sc.Result)
}

func TestStringConcatWide(t *testing.T) {
	t.Parallel()

	// An unprefixed literal adopts its neighbor's prefix, in either
	// direction.
	for _, text := range []string{`L"ab" "c"`, `"ab" L"c"`} {
		toks := lexStrings(t, text)

		r := new(report.Report)
		sc := literal.ParseString(r, target.Default(), toks)

		assert.False(t, sc.HasError, text)
		assert.Equal(t, token.WideStringLiteral, sc.Kind, text)
		assert.Equal(t, 4, sc.CharByteWidth, text)
		assert.Equal(t, []byte{
			'a', 0, 0, 0,
			'b', 0, 0, 0,
			'c', 0, 0, 0,
			0, 0, 0, 0,
		}, sc.Result, text)
	}
}

func TestStringConcatMixed(t *testing.T) {
	t.Parallel()

	toks := lexStrings(t, `u8"a" L"b"`)

	r := new(report.Report)
	sc := literal.ParseString(r, target.Default(), toks)

	assert.True(t, sc.HasError)
	assert.True(t, r.HasErrors())

	var found bool
	for i := range r.Diagnostics {
		found = found || r.Diagnostics[i].Is(literal.TagNonstandardStringConcat)
	}
	assert.True(t, found)
}

func TestStringEncodings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		kind token.Kind
		want []byte
	}{
		// Narrow strings store source bytes verbatim, so multibyte UTF-8
		// passes through.
		{`"é"`, token.StringLiteral, []byte{0xC3, 0xA9, 0x00}},
		{`u8"é"`, token.Utf8StringLiteral, []byte{0xC3, 0xA9, 0x00}},

		// Wider strings re-encode each source character as a code unit.
		{`L"é"`, token.WideStringLiteral, []byte{0xE9, 0, 0, 0, 0, 0, 0, 0}},
		{`u"é"`, token.Utf16StringLiteral, []byte{0xE9, 0x00, 0x00, 0x00}},

		// Astral code points become a surrogate pair in char16_t strings.
		{`u"\U0001F600"`, token.Utf16StringLiteral, []byte{0x3D, 0xD8, 0x00, 0xDE, 0x00, 0x00}},
		{`U"\U0001F600"`, token.Utf32StringLiteral, []byte{0x00, 0xF6, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00}},

		// Numeric escapes are code units, written raw.
		{`"\x41\n"`, token.StringLiteral, []byte{0x41, 0x0A, 0x00}},
		{`u"\xFFFF"`, token.Utf16StringLiteral, []byte{0xFF, 0xFF, 0x00, 0x00}},

		// A UCN escape is a code point and gets re-encoded, even in a
		// narrow string.
		{`"\u00E9"`, token.StringLiteral, []byte{0xC3, 0xA9, 0x00}},

		// A UCN may name a code point above U+10FFFF, which no UTF
		// encoding can represent: the narrower widths store U+FFFD,
		// while four-byte units hold the code point verbatim.
		{`"\UAABBCCDD"`, token.StringLiteral, []byte{0xEF, 0xBF, 0xBD, 0x00}},
		{`u"\UAABBCCDD"`, token.Utf16StringLiteral, []byte{0xFD, 0xFF, 0xFD, 0xFF, 0x00, 0x00}},
		{`U"\UAABBCCDD"`, token.Utf32StringLiteral, []byte{0xDD, 0xCC, 0xBB, 0xAA, 0x00, 0x00, 0x00, 0x00}},
	}
	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			t.Parallel()

			toks := lexStrings(t, test.text)

			r := new(report.Report)
			sc := literal.ParseString(r, target.Default(), toks)

			assert.False(t, sc.HasError)
			assert.Equal(t, test.kind, sc.Kind)
			assert.Equal(t, test.want, sc.Result)
		})
	}
}

func TestStringSpliceInEscape(t *testing.T) {
	t.Parallel()

	// An escaped newline splitting an escape sequence is deleted before
	// the escape is decoded.
	toks := lexStrings(t, "\"\\\\\nn\"")
	require.True(t, toks[0].IsDirty())

	r := new(report.Report)
	sc := literal.ParseString(r, target.Default(), toks)

	assert.False(t, sc.HasError)
	assert.Equal(t, []byte{'\n', 0x00}, sc.Result)
}
