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
	"github.com/bufbuild/ccompile/report"
	"github.com/bufbuild/ccompile/source"
	"github.com/bufbuild/ccompile/token"
)

// TokenStream adapts a [Lexer] into a one-token-lookahead stream, the
// shape parsers consume.
//
// Once the lexer runs out of input the stream yields an [token.EOF]
// sentinel forever. A stream is not restartable.
type TokenStream struct {
	lexer *Lexer

	// The buffered lookahead, if buffered is true.
	ahead    token.Token
	buffered bool
}

// NewStream returns a stream of the tokens of file, reporting
// diagnostics to r.
func NewStream(file *source.File, r *report.Report) *TokenStream {
	return &TokenStream{lexer: New(file, r)}
}

// Peek returns the next token without consuming it, lexing it on first
// call. At end of input it returns the EOF sentinel, whose span is the
// end of the file.
func (s *TokenStream) Peek() token.Token {
	if !s.buffered {
		if !s.lexer.Lex(&s.ahead) {
			s.ahead = token.Token{
				Kind:  token.EOF,
				Range: s.lexer.File().EOF(),
			}
		}
		s.buffered = true
	}
	return s.ahead
}

// Consume returns the next token and advances past it. Consuming the
// EOF sentinel is permitted and yields EOF again on the next call.
func (s *TokenStream) Consume() token.Token {
	tok := s.Peek()
	if tok.Kind != token.EOF {
		s.buffered = false
	}
	return tok
}

// Empty reports whether the stream has run out of tokens.
func (s *TokenStream) Empty() bool {
	return s.Peek().Kind == token.EOF
}
