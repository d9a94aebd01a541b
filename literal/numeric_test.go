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
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/ccompile/lexer"
	"github.com/bufbuild/ccompile/literal"
	"github.com/bufbuild/ccompile/report"
	"github.com/bufbuild/ccompile/source"
	"github.com/bufbuild/ccompile/token"
)

// lexOne lexes text, which must be exactly one token, and returns it.
func lexOne(t *testing.T, text string) token.Token {
	t.Helper()

	stream := lexer.NewStream(source.NewFile("test.c", text), new(report.Report))
	tok := stream.Consume()
	require.True(t, stream.Empty(), "%q must lex to a single token", text)
	return tok
}

type numericCase struct {
	Text     string
	Radix    int
	Period   bool
	Exponent bool
	Unsigned bool
	Long     bool
	LongLong bool `yaml:"longlong"`
	Float    bool
	Error    bool
	Value    *uint64
	Overflow bool
}

func TestParseNumeric(t *testing.T) {
	t.Parallel()

	raw, err := os.ReadFile("testdata/numeric.yaml")
	require.NoError(t, err)

	var cases []numericCase
	require.NoError(t, yaml.Unmarshal(raw, &cases))

	for _, test := range cases {
		t.Run(test.Text, func(t *testing.T) {
			t.Parallel()

			tok := lexOne(t, test.Text)
			require.Equal(t, token.NumericConstant, tok.Kind)

			r := new(report.Report)
			n := literal.ParseNumeric(r, tok)

			assert.Equal(t, test.Radix, n.Radix, "radix")
			assert.Equal(t, test.Period, n.HasPeriod, "period")
			assert.Equal(t, test.Exponent, n.HasExponent, "exponent")
			assert.Equal(t, test.Unsigned, n.IsUnsigned, "unsigned")
			assert.Equal(t, test.Long, n.IsLong, "long")
			assert.Equal(t, test.LongLong, n.IsLongLong, "long long")
			assert.Equal(t, test.Float, n.IsFloat, "float")
			assert.Equal(t, test.Error, n.HasError, "error flag")
			assert.Equal(t, test.Error, r.HasErrors(), "report")

			if test.Value != nil {
				value, overflowed := n.EvalToInteger()
				assert.Equal(t, *test.Value, value)
				assert.False(t, overflowed)
			}
			if test.Overflow {
				// The value is too big for uint64 but that is not a syntax
				// error; evaluation saturates and says so.
				value, overflowed := n.EvalToInteger()
				assert.Equal(t, uint64(math.MaxUint64), value)
				assert.True(t, overflowed)
			}
		})
	}
}

func TestNumericDigitRange(t *testing.T) {
	t.Parallel()

	// The digit range excludes the radix prefix: one byte for octal, two
	// for hexadecimal.
	tests := []struct {
		text       string
		begin, end int
	}{
		{"42", 0, 2},
		{"042", 1, 3},
		{"0x2a", 2, 4},
	}
	for _, test := range tests {
		r := new(report.Report)
		n := literal.ParseNumeric(r, lexOne(t, test.text))
		assert.Equal(t, test.begin, n.DigitBegin, "%q begin", test.text)
		assert.Equal(t, test.end, n.DigitEnd, "%q end", test.text)
		assert.False(t, n.HasError, "%q", test.text)
	}
}

func TestNumericSplice(t *testing.T) {
	t.Parallel()

	tok := lexOne(t, "4\\\n2ul")
	require.Equal(t, token.NumericConstant, tok.Kind)
	require.True(t, tok.IsDirty())

	r := new(report.Report)
	n := literal.ParseNumeric(r, tok)
	assert.Equal(t, "42ul", n.Spelling)
	assert.Equal(t, 10, n.Radix)
	assert.True(t, n.IsUnsigned)
	assert.True(t, n.IsLong)
	assert.False(t, n.HasError)

	value, overflowed := n.EvalToInteger()
	assert.Equal(t, uint64(42), value)
	assert.False(t, overflowed)
}
