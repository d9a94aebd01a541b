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

// Package lexer implements the C11 tokenizer.
//
// The tokenizer classifies tokens and records their source ranges; it
// does not interpret literal contents. Decoding numeric, character, and
// string constants is the literal package's job, performed on demand
// from a token's spelling.
package lexer

import (
	"github.com/bufbuild/ccompile/internal/charx"
	"github.com/bufbuild/ccompile/report"
	"github.com/bufbuild/ccompile/source"
	"github.com/bufbuild/ccompile/token"
)

// Lexer scans a source file into tokens, one [Lexer.Lex] call at a time.
//
// A Lexer is single-use and not safe for concurrent use. Diagnostics go
// to the report it was constructed with, in source order.
type Lexer struct {
	file   *source.File
	report *report.Report

	// Offset of the first byte not yet claimed by a token.
	cursor int
}

// New returns a lexer over file that reports diagnostics to r.
func New(file *source.File, r *report.Report) *Lexer {
	return &Lexer{file: file, report: r}
}

// File returns the file this lexer reads from.
func (l *Lexer) File() *source.File {
	return l.file
}

// Lex scans the next token into out and returns true, or returns false
// if end of input is reached without producing a token.
//
// Whitespace and comments are skipped; an unterminated comment is
// diagnosed and skipping resumes at the recovery position. Bytes that
// cannot begin any token produce an [token.Unknown] token alongside a
// diagnostic, so that lexing always makes progress.
func (l *Lexer) Lex(out *token.Token) bool {
	text := l.file.Text()

	for {
		*out = token.Token{}

		for l.cursor < len(text) && charx.IsWhitespace(text[l.cursor]) {
			l.cursor++
		}
		begin := l.cursor

		ch, size := peekCharAndSize(text, begin)
		pos := consumeChar(text, begin, size, &out.Flags)

		kind := token.Unknown
		switch ch {
		case 0:
			return false

		case '\\':
			// A backslash can only begin a token as the start of a UCN
			// naming an identifier character.
			cp, end := l.tryReadUCN(pos, begin, &out.Flags)
			if cp != 0 {
				return l.lexIdentifier(end, out)
			}
			pos = end

		case '[':
			kind = token.LBracket
		case ']':
			kind = token.RBracket
		case '(':
			kind = token.LParen
		case ')':
			kind = token.RParen
		case '{':
			kind = token.LBrace
		case '}':
			kind = token.RBrace
		case '~':
			kind = token.Tilde
		case '?':
			kind = token.Question
		case ';':
			kind = token.Semi
		case ',':
			kind = token.Comma

		case '.':
			c, csize := peekCharAndSize(text, pos)
			if charx.IsDigit(c) {
				return l.lexNumericConstant(consumeChar(text, pos, csize, &out.Flags), out)
			}
			kind = token.Period
			if c == '.' {
				if after, asize := peekCharAndSize(text, pos+csize); after == '.' {
					kind = token.Ellipsis
					pos = consumeChar(text, pos, csize, &out.Flags)
					pos = consumeChar(text, pos, asize, &out.Flags)
				}
			}

		case '-':
			switch c, csize := peekCharAndSize(text, pos); c {
			case '>':
				kind = token.Arrow
				pos = consumeChar(text, pos, csize, &out.Flags)
			case '-':
				kind = token.MinusMinus
				pos = consumeChar(text, pos, csize, &out.Flags)
			case '=':
				kind = token.MinusEqual
				pos = consumeChar(text, pos, csize, &out.Flags)
			default:
				kind = token.Minus
			}

		case '+':
			switch c, csize := peekCharAndSize(text, pos); c {
			case '+':
				kind = token.PlusPlus
				pos = consumeChar(text, pos, csize, &out.Flags)
			case '=':
				kind = token.PlusEqual
				pos = consumeChar(text, pos, csize, &out.Flags)
			default:
				kind = token.Plus
			}

		case '&':
			switch c, csize := peekCharAndSize(text, pos); c {
			case '&':
				kind = token.AmpAmp
				pos = consumeChar(text, pos, csize, &out.Flags)
			case '=':
				kind = token.AmpEqual
				pos = consumeChar(text, pos, csize, &out.Flags)
			default:
				kind = token.Amp
			}

		case '*':
			if c, csize := peekCharAndSize(text, pos); c == '=' {
				kind = token.StarEqual
				pos = consumeChar(text, pos, csize, &out.Flags)
			} else {
				kind = token.Star
			}

		case '/':
			switch c, csize := peekCharAndSize(text, pos); c {
			case '/':
				l.cursor = l.skipLineComment(pos + csize)
				continue
			case '*':
				l.cursor = l.skipBlockComment(pos + csize)
				continue
			case '=':
				kind = token.SlashEqual
				pos = consumeChar(text, pos, csize, &out.Flags)
			default:
				kind = token.Slash
			}

		case '%':
			switch c, csize := peekCharAndSize(text, pos); c {
			case '=':
				kind = token.PercentEqual
				pos = consumeChar(text, pos, csize, &out.Flags)
			case '>': // %> digraph.
				kind = token.RBrace
				pos = consumeChar(text, pos, csize, &out.Flags)
			case ':': // %: digraph.
				kind = token.Hash
				pos = consumeChar(text, pos, csize, &out.Flags)
				if c, csize := peekCharAndSize(text, pos); c == '%' {
					if after, asize := peekCharAndSize(text, pos+csize); after == ':' {
						// %:%: digraph.
						kind = token.HashHash
						pos = consumeChar(text, pos, csize, &out.Flags)
						pos = consumeChar(text, pos, asize, &out.Flags)
					}
				}
			default:
				kind = token.Percent
			}

		case '<':
			switch c, csize := peekCharAndSize(text, pos); c {
			case '<':
				if after, asize := peekCharAndSize(text, pos+csize); after == '=' {
					kind = token.LessLessEqual
					pos = consumeChar(text, pos, csize, &out.Flags)
					pos = consumeChar(text, pos, asize, &out.Flags)
				} else {
					kind = token.LessLess
					pos = consumeChar(text, pos, csize, &out.Flags)
				}
			case '=':
				kind = token.LessEqual
				pos = consumeChar(text, pos, csize, &out.Flags)
			case ':': // <: digraph.
				kind = token.LBracket
				pos = consumeChar(text, pos, csize, &out.Flags)
			case '%': // <% digraph.
				kind = token.LBrace
				pos = consumeChar(text, pos, csize, &out.Flags)
			default:
				kind = token.Less
			}

		case '>':
			switch c, csize := peekCharAndSize(text, pos); c {
			case '>':
				if after, asize := peekCharAndSize(text, pos+csize); after == '=' {
					kind = token.GreaterGreaterEqual
					pos = consumeChar(text, pos, csize, &out.Flags)
					pos = consumeChar(text, pos, asize, &out.Flags)
				} else {
					kind = token.GreaterGreater
					pos = consumeChar(text, pos, csize, &out.Flags)
				}
			case '=':
				kind = token.GreaterEqual
				pos = consumeChar(text, pos, csize, &out.Flags)
			default:
				kind = token.Greater
			}

		case '=':
			if c, csize := peekCharAndSize(text, pos); c == '=' {
				kind = token.EqualEqual
				pos = consumeChar(text, pos, csize, &out.Flags)
			} else {
				kind = token.Equal
			}

		case '!':
			if c, csize := peekCharAndSize(text, pos); c == '=' {
				kind = token.ExclaimEqual
				pos = consumeChar(text, pos, csize, &out.Flags)
			} else {
				kind = token.Exclaim
			}

		case '^':
			if c, csize := peekCharAndSize(text, pos); c == '=' {
				kind = token.CaretEqual
				pos = consumeChar(text, pos, csize, &out.Flags)
			} else {
				kind = token.Caret
			}

		case '|':
			switch c, csize := peekCharAndSize(text, pos); c {
			case '|':
				kind = token.PipePipe
				pos = consumeChar(text, pos, csize, &out.Flags)
			case '=':
				kind = token.PipeEqual
				pos = consumeChar(text, pos, csize, &out.Flags)
			default:
				kind = token.Pipe
			}

		case ':':
			if c, csize := peekCharAndSize(text, pos); c == '>' { // :> digraph.
				kind = token.RBracket
				pos = consumeChar(text, pos, csize, &out.Flags)
			} else {
				kind = token.Colon
			}

		case '#':
			if c, csize := peekCharAndSize(text, pos); c == '#' {
				kind = token.HashHash
				pos = consumeChar(text, pos, csize, &out.Flags)
			} else {
				kind = token.Hash
			}

		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			return l.lexNumericConstant(pos, out)

		case 'L':
			switch c, csize := peekCharAndSize(text, pos); c {
			case '\'':
				return l.lexCharConstant(consumeChar(text, pos, csize, &out.Flags), out, token.WideCharConstant)
			case '"':
				return l.lexStringLiteral(consumeChar(text, pos, csize, &out.Flags), out, token.WideStringLiteral)
			}
			return l.lexIdentifier(pos, out)

		case 'u':
			switch c, csize := peekCharAndSize(text, pos); c {
			case '\'':
				return l.lexCharConstant(consumeChar(text, pos, csize, &out.Flags), out, token.Utf16CharConstant)
			case '"':
				return l.lexStringLiteral(consumeChar(text, pos, csize, &out.Flags), out, token.Utf16StringLiteral)
			case '8':
				// u8 prefixes strings only; u8'x' is u8 followed by 'x'.
				if after, asize := peekCharAndSize(text, pos+csize); after == '"' {
					pos = consumeChar(text, pos, csize, &out.Flags)
					return l.lexStringLiteral(consumeChar(text, pos, asize, &out.Flags), out, token.Utf8StringLiteral)
				}
			}
			return l.lexIdentifier(pos, out)

		case 'U':
			switch c, csize := peekCharAndSize(text, pos); c {
			case '\'':
				return l.lexCharConstant(consumeChar(text, pos, csize, &out.Flags), out, token.Utf32CharConstant)
			case '"':
				return l.lexStringLiteral(consumeChar(text, pos, csize, &out.Flags), out, token.Utf32StringLiteral)
			}
			return l.lexIdentifier(pos, out)

		case '\'':
			return l.lexCharConstant(pos, out, token.Utf8CharConstant)

		case '"':
			return l.lexStringLiteral(pos, out, token.StringLiteral)

		default:
			if charx.IsNondigit(ch) {
				return l.lexIdentifier(pos, out)
			}
		}

		if kind == token.Unknown {
			l.report.Error(ErrUnknownCharacter{Char: ch, At: l.span(begin, pos)})
		}
		l.formToken(out, pos, kind)
		return true
	}
}

// formToken finishes out as a token of the given kind covering
// [l.cursor, end), and claims those bytes.
func (l *Lexer) formToken(out *token.Token, end int, kind token.Kind) {
	end = min(end, len(l.file.Text()))
	out.Kind = kind
	out.Range = l.file.Span(l.cursor, end)
	l.cursor = end
}

func (l *Lexer) span(start, end int) source.Span {
	n := len(l.file.Text())
	return l.file.Span(min(start, n), min(end, n))
}

// lexIdentifier scans an identifier whose first character is already
// consumed, then rewrites its kind to a keyword when the spelling
// matches one.
//
// Dirty and UCN-bearing identifiers skip the keyword check: their raw
// spelling is not their logical content, so matching is deferred to a
// later normalization pass.
func (l *Lexer) lexIdentifier(pos int, out *token.Token) bool {
	text := l.file.Text()

	// Fast path: a maximal run of plain identifier bytes.
	for charx.IsIdentifierBody(byteAt(text, pos)) {
		pos++
	}

	if byteAt(text, pos) == '\\' {
		// Splices or UCNs ahead; continue on the logical-character layer.
		c, size := peekCharAndSize(text, pos)
		for {
			if c == '\\' {
				if end, ok := l.tryAdvanceIdentifierUCN(pos, size, out); ok {
					pos = end
					c, size = peekCharAndSize(text, pos)
					continue
				}
			}
			if !charx.IsIdentifierBody(c) {
				break
			}
			pos = consumeChar(text, pos, size, &out.Flags)
			c, size = peekCharAndSize(text, pos)
		}
	}

	l.formToken(out, pos, token.Identifier)

	if !out.IsDirty() && !out.HasUCN() {
		if kw, ok := token.Lookup(out.Text()); ok {
			out.Kind = kw
		}
	}
	return true
}

// lexNumericConstant matches the gross shape of a numeric constant: the
// run [0-9A-Za-z_.]* extended by a sign directly after an exponent
// letter and by identifier UCNs. Syntax checking is deferred to the
// numeric analyzer.
func (l *Lexer) lexNumericConstant(pos int, out *token.Token) bool {
	text := l.file.Text()

	for {
		c, size := peekCharAndSize(text, pos)
		if charx.IsIdentifierBody(c) || c == '.' {
			pos = consumeChar(text, pos, size, &out.Flags)
			if c == 'e' || c == 'E' || c == 'p' || c == 'P' {
				if s, ssize := peekCharAndSize(text, pos); s == '+' || s == '-' {
					pos = consumeChar(text, pos, ssize, &out.Flags)
				}
			}
			continue
		}
		if c == '\\' {
			if end, ok := l.tryAdvanceIdentifierUCN(pos, size, out); ok {
				pos = end
				continue
			}
		}
		break
	}

	l.formToken(out, pos, token.NumericConstant)
	out.Flags |= token.Literal
	return true
}

// lexCharConstant scans a character constant whose opening quote is
// already consumed. The token's value is decoded later by the character
// analyzer; here only the extent is established.
func (l *Lexer) lexCharConstant(pos int, out *token.Token, kind token.Kind) bool {
	text := l.file.Text()
	begin := l.cursor

	c, next := peekCharAdvance(text, pos, &out.Flags)
	pos = next
	if c == '\'' {
		l.report.Error(ErrEmptyCharacter{At: l.span(begin, pos)})
		l.formToken(out, pos, token.Unknown)
		return true
	}

	for c != '\'' {
		if c == '\\' {
			// The escaped character is read through the logical layer,
			// so a splice between the backslash and the escape letter
			// vanishes per translation phase 2.
			_, pos = peekCharAdvance(text, pos, &out.Flags)
		} else if charx.IsNewline(c) || c == 0 {
			l.report.Error(ErrUnterminatedChar{At: l.span(begin, pos)})
			l.formToken(out, pos, token.Unknown)
			return true
		}
		c, pos = peekCharAdvance(text, pos, &out.Flags)
	}

	l.formToken(out, pos, kind)
	out.Flags |= token.Literal
	return true
}

// lexStringLiteral scans a string literal whose opening quote is
// already consumed. Adjacent strings are not joined here; concatenation
// is the string analyzer's job.
func (l *Lexer) lexStringLiteral(pos int, out *token.Token, kind token.Kind) bool {
	text := l.file.Text()
	begin := l.cursor

	for {
		c, next := peekCharAdvance(text, pos, &out.Flags)
		pos = next
		if c == '"' {
			break
		}
		if c == '\\' {
			_, pos = peekCharAdvance(text, pos, &out.Flags)
		} else if charx.IsNewline(c) || c == 0 {
			l.report.Error(ErrUnterminatedString{At: l.span(begin, pos)})
			l.formToken(out, pos, token.Unknown)
			return true
		}
	}

	l.formToken(out, pos, kind)
	out.Flags |= token.Literal
	return true
}

// tryReadUCN decodes the \u or \U escape whose u/U character is at pos;
// slash is the offset of the introducing backslash, used for
// diagnostics. It returns the code point and the offset past the UCN.
//
// An escape with too few hex digits is diagnosed and left unconsumed:
// the returned offset equals pos. A complete escape naming a forbidden
// code point is diagnosed, consumed, and returns code point 0.
func (l *Lexer) tryReadUCN(pos, slash int, flags *token.Flags) (uint32, int) {
	text := l.file.Text()

	kind, size := peekCharAndSize(text, pos)
	var digits int
	switch kind {
	case 'u':
		digits = 4
	case 'U':
		digits = 8
	default:
		return 0, pos
	}

	cur := pos + size
	var cp uint32
	for range digits {
		c, csize := peekCharAndSize(text, cur)
		if !charx.IsHexDigit(c) {
			l.report.Warn(WarnUCNIncomplete{At: l.span(slash, cur)})
			return 0, pos
		}
		cp = cp<<4 | charx.HexValue(c)
		cur += csize
	}

	if flags != nil {
		*flags |= token.HasUCN
		if cur-pos != digits+1 {
			// The UCN contains splices; re-walk it so the token picks up
			// its dirty flag.
			for p := pos; p < cur; {
				_, p = peekCharAdvance(text, p, flags)
			}
		}
	}

	if !charx.IsValidUCN(cp) {
		l.report.Error(ErrUCNInvalid{At: l.span(slash, cur)})
		return 0, cur
	}
	return cp, cur
}

// tryAdvanceIdentifierUCN consumes a UCN inside an identifier, where
// pos is the offset of the backslash and size its peeked width. It
// reports false, consuming nothing, when the backslash does not begin a
// complete and valid UCN.
func (l *Lexer) tryAdvanceIdentifierUCN(pos, size int, out *token.Token) (int, bool) {
	text := l.file.Text()

	cp, end := l.tryReadUCN(pos+size, pos, nil)
	if cp == 0 {
		return pos, false
	}

	out.Flags |= token.HasUCN
	clean := (end-pos == 6 && byteAt(text, pos+1) == 'u') ||
		(end-pos == 10 && byteAt(text, pos+1) == 'U')
	if !clean {
		for p := pos; p < end; {
			_, p = peekCharAdvance(text, p, &out.Flags)
		}
	}
	return end, true
}

// skipLineComment consumes a line comment whose // is already consumed,
// returning the offset just past the terminating newline.
func (l *Lexer) skipLineComment(pos int) int {
	text := l.file.Text()

	for {
		c, size := peekCharAndSize(text, pos)
		if charx.IsNewline(c) {
			return pos + size
		}
		if c == 0 {
			l.report.Error(ErrUnterminatedComment{Which: "line", At: l.span(pos, pos)})
			return pos
		}
		pos += size
	}
}

// skipBlockComment consumes a block comment whose /* is already
// consumed, returning the offset just past the terminating */.
// Block comments do not nest.
func (l *Lexer) skipBlockComment(pos int) int {
	text := l.file.Text()

	var prev byte
	c, size := peekCharAndSize(text, pos)
	for {
		if c == '/' && prev == '*' {
			return pos + size
		}
		if c == 0 {
			l.report.Error(ErrUnterminatedComment{Which: "block", At: l.span(pos, pos)})
			return pos
		}
		pos += size
		prev = c
		c, size = peekCharAndSize(text, pos)
	}
}
