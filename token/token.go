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

// Package token defines the output type of the tokenizer: lexical tokens,
// their kinds, and their flags.
package token

import (
	"fmt"

	"github.com/bufbuild/ccompile/source"
)

// Flags records lexical facts about a token that downstream phases need
// but which the kind alone does not capture.
type Flags uint8

const (
	// Dirty means the token's source spelling contains at least one
	// escaped newline, so the spelling must be cleaned before its content
	// is interpreted.
	Dirty Flags = 1 << iota

	// HasUCN means the token's spelling contains a universal character
	// name (\uXXXX or \UXXXXXXXX).
	HasUCN

	// Literal marks numeric, character, and string tokens whose value is
	// produced later by the literal parsers rather than by the tokenizer.
	Literal
)

// Has returns whether all the bits of f are set in these flags.
func (f Flags) Has(flags Flags) bool {
	return f&flags == flags
}

// Token is a lexical token produced by the tokenizer.
//
// Tokens do not own their spelling; they borrow it from the file their
// span points into.
type Token struct {
	Kind  Kind
	Range source.Span
	Flags Flags
}

// Span implements [source.Spanner].
func (t Token) Span() source.Span {
	return t.Range
}

// Text returns this token's spelling: the raw source text it covers,
// escaped newlines and all.
func (t Token) Text() string {
	return t.Range.Text()
}

// Is returns whether this token has any of the given kinds.
func (t Token) Is(kinds ...Kind) bool {
	for _, k := range kinds {
		if t.Kind == k {
			return true
		}
	}
	return false
}

// IsDirty returns whether this token's spelling contains escaped newlines.
func (t Token) IsDirty() bool {
	return t.Flags.Has(Dirty)
}

// HasUCN returns whether this token's spelling contains a universal
// character name.
func (t Token) HasUCN() bool {
	return t.Flags.Has(HasUCN)
}

// String implements [fmt.Stringer].
func (t Token) String() string {
	switch t.Kind {
	case Identifier, NumericConstant, Unknown:
		return fmt.Sprintf("%s %q", t.Kind, t.Text())
	default:
		if t.Kind.IsLiteral() {
			return fmt.Sprintf("%s %q", t.Kind, t.Text())
		}
		return t.Kind.String()
	}
}
