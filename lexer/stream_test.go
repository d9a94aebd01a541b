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

package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/ccompile/lexer"
	"github.com/bufbuild/ccompile/report"
	"github.com/bufbuild/ccompile/source"
	"github.com/bufbuild/ccompile/token"
)

func TestStream(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test.c", "int x = 1;\n")
	stream := lexer.NewStream(file, new(report.Report))

	assert.False(t, stream.Empty())

	// Peek is idempotent: it does not advance the stream.
	assert.Equal(t, token.KwInt, stream.Peek().Kind)
	assert.Equal(t, token.KwInt, stream.Peek().Kind)

	var kinds []token.Kind
	for !stream.Empty() {
		kinds = append(kinds, stream.Consume().Kind)
	}
	assert.Equal(t, []token.Kind{
		token.KwInt,
		token.Identifier,
		token.Equal,
		token.NumericConstant,
		token.Semi,
	}, kinds)
}

func TestStreamEOF(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test.c", "x")
	stream := lexer.NewStream(file, new(report.Report))

	assert.Equal(t, token.Identifier, stream.Consume().Kind)
	assert.True(t, stream.Empty())

	// Past the end, the stream produces the EOF sentinel forever, anchored
	// at the end of the file.
	eof := stream.Peek()
	assert.Equal(t, token.EOF, eof.Kind)
	assert.Equal(t, len(file.Text()), eof.Range.Start)
	assert.Equal(t, token.EOF, stream.Consume().Kind)
	assert.Equal(t, token.EOF, stream.Consume().Kind)
	assert.True(t, stream.Empty())
}

func TestStreamEmptyFile(t *testing.T) {
	t.Parallel()

	stream := lexer.NewStream(source.NewFile("empty.c", ""), new(report.Report))
	assert.True(t, stream.Empty())
	assert.Equal(t, token.EOF, stream.Peek().Kind)
}
