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

package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/ccompile/token"
)

func TestKindString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind token.Kind
		want string
	}{
		{token.Unknown, "<unknown>"},
		{token.EOF, "<end of input>"},
		{token.Identifier, "identifier"},
		{token.NumericConstant, "numeric constant"},
		{token.Utf8CharConstant, "character constant"},
		{token.WideCharConstant, "wide character constant"},
		{token.Utf8StringLiteral, "utf-8 string literal"},
		{token.KwInt, "int"},
		{token.KwStaticAssert, "_Static_assert"},
		{token.KwThreadLocal, "_Thread_local"},
		{token.Arrow, "->"},
		{token.GreaterGreater, ">>"},
		{token.LessLessEqual, "<<="},
		{token.Ellipsis, "..."},
		{token.HashHash, "##"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.kind.String())
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	for k := token.KwAuto; k <= token.KwThreadLocal; k++ {
		got, ok := token.Lookup(k.String())
		assert.True(t, ok)
		assert.Equal(t, k, got)
	}

	_, ok := token.Lookup("identifier")
	assert.False(t, ok)
	_, ok = token.Lookup("Int")
	assert.False(t, ok)
}

func TestPredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, token.KwAuto.IsKeyword())
	assert.True(t, token.KwThreadLocal.IsKeyword())
	assert.False(t, token.Identifier.IsKeyword())
	assert.False(t, token.LBracket.IsKeyword())

	assert.True(t, token.NumericConstant.IsLiteral())
	assert.True(t, token.Utf16CharConstant.IsLiteral())
	assert.True(t, token.WideStringLiteral.IsLiteral())
	assert.False(t, token.Identifier.IsLiteral())
	assert.False(t, token.Semi.IsLiteral())

	assert.True(t, token.StringLiteral.IsStringLiteral())
	assert.False(t, token.Utf8CharConstant.IsStringLiteral())
	assert.True(t, token.Utf8CharConstant.IsCharConstant())
}
