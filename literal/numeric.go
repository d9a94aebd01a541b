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

// Package literal implements the literal analyzers: they interpret the
// spellings of numeric, character, and string tokens after the fact,
// producing values and emitting diagnostics the tokenizer deferred.
package literal

import (
	"math"
	"math/bits"

	"github.com/bufbuild/ccompile/internal/charx"
	"github.com/bufbuild/ccompile/report"
	"github.com/bufbuild/ccompile/source"
	"github.com/bufbuild/ccompile/token"
)

// NumericConstant is the analyzed form of a numeric_constant token:
// radix, digit extent, and suffix classification. The digit range
// indexes into Spelling, which has any escaped newlines removed.
type NumericConstant struct {
	Spelling             string
	DigitBegin, DigitEnd int

	Radix int

	HasPeriod   bool
	HasExponent bool

	IsUnsigned bool
	IsLong     bool
	IsLongLong bool
	IsFloat    bool

	HasError bool
}

// IsFloatingLiteral reports whether this constant has floating shape: a
// period or an exponent.
func (n *NumericConstant) IsFloatingLiteral() bool {
	return n.HasPeriod || n.HasExponent
}

// IsIntegerLiteral reports whether this constant has integer shape.
func (n *NumericConstant) IsIntegerLiteral() bool {
	return !n.IsFloatingLiteral()
}

// ParseNumeric analyzes the spelling of a numeric constant token,
// reporting any syntax errors to r. The tokenizer matched only the
// gross shape of the constant; this is where digits are checked against
// the radix and the suffix is validated.
func ParseNumeric(r *report.Report, tok token.Token) NumericConstant {
	s := cleanSpelling(tok.Text())
	n := NumericConstant{Spelling: s, Radix: 10}
	at := tok.Range

	var i int
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		// hexadecimal-constant, hexadecimal-floating-constant
		n.Radix = 16
		i = 2
		n.DigitBegin = i
		for i < len(s) && charx.IsHexDigit(s[i]) {
			i++
		}
		if i == n.DigitBegin && (i >= len(s) || s[i] != '.') {
			// A prefix with no digits after it is not a hexadecimal
			// constant at all: 0xull is the constant 0 with the (invalid)
			// suffix "xull".
			n.Radix = 10
			n.DigitBegin, n.DigitEnd = 0, 1
			n.parseSuffix(r, s[1:], at)
			return n
		}
		if i < len(s) && s[i] == '.' {
			n.HasPeriod = true
			i++
			for i < len(s) && charx.IsHexDigit(s[i]) {
				i++
			}
		}
		switch {
		case i < len(s) && (s[i] == 'p' || s[i] == 'P'):
			n.HasExponent = true
			i++
			if i < len(s) && (s[i] == '+' || s[i] == '-') {
				i++
			}
			if i >= len(s) || !charx.IsDigit(s[i]) {
				n.HasError = true
				r.Error(ErrMissingExponent{At: at})
			}
			for i < len(s) && charx.IsDigit(s[i]) {
				i++
			}
		case n.HasPeriod:
			// A hexadecimal floating constant requires a binary exponent.
			n.HasError = true
			r.Error(ErrMissingExponent{At: at})
		}
	} else {
		// decimal-constant, octal-constant, decimal-floating-constant
		for i < len(s) && charx.IsDigit(s[i]) {
			i++
		}
		intDigits := i
		if i < len(s) && s[i] == '.' {
			n.HasPeriod = true
			i++
			for i < len(s) && charx.IsDigit(s[i]) {
				i++
			}
		}
		if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
			n.HasExponent = true
			i++
			if i < len(s) && (s[i] == '+' || s[i] == '-') {
				i++
			}
			if i >= len(s) || !charx.IsDigit(s[i]) {
				n.HasError = true
				r.Error(ErrMissingExponent{At: at})
			}
			for i < len(s) && charx.IsDigit(s[i]) {
				i++
			}
		}

		// A leading zero makes an octal constant, but only when the
		// whole constant has integer shape: 0128 is an invalid octal
		// constant while 01238. is a decimal floating one.
		if !n.IsFloatingLiteral() && s[0] == '0' && intDigits > 1 {
			n.Radix = 8
			n.DigitBegin = 1 // The digits begin after the 0 prefix.
			for j := 1; j < intDigits; j++ {
				if !charx.IsOctDigit(s[j]) {
					n.HasError = true
					r.Error(ErrInvalidDigit{Digit: s[j], Radix: 8, At: at})
					break
				}
			}
		}
	}
	n.DigitEnd = i

	n.parseSuffix(r, s[i:], at)
	return n
}

// parseSuffix classifies the suffix letters: an unordered set of u/U,
// l/L or a same-case ll/LL pair, and f/F on floating constants only.
// Each may appear at most once, and integer-only suffixes may not mix
// with floating ones.
func (n *NumericConstant) parseSuffix(r *report.Report, suffix string, at source.Span) {
	floating := n.IsFloatingLiteral()

	for i := 0; i < len(suffix); i++ {
		valid := false
		switch c := suffix[i]; c {
		case 'u', 'U':
			if !n.IsUnsigned && !floating {
				n.IsUnsigned = true
				valid = true
			}
		case 'l', 'L':
			if n.IsLong || n.IsLongLong {
				break
			}
			if i+1 < len(suffix) && suffix[i+1] == c {
				// ll and LL, but not lL or Ll. long long is integer-only;
				// a lone l makes a long double on floating constants.
				if !floating {
					n.IsLongLong = true
					i++
					valid = true
				}
			} else {
				n.IsLong = true
				valid = true
			}
		case 'f', 'F':
			if floating && !n.IsFloat {
				n.IsFloat = true
				valid = true
			}
		}

		if !valid {
			n.HasError = true
			r.Error(ErrInvalidSuffix{Suffix: suffix, Floating: floating, At: at})
			return
		}
	}
}

// EvalToInteger evaluates an integer constant's digits to a 64-bit
// unsigned value in the detected radix. The boolean is true if the
// mathematical value exceeds the range of uint64; the returned value
// saturates at math.MaxUint64 in that case.
//
// Only meaningful for constants with integer shape.
func (n *NumericConstant) EvalToInteger() (uint64, bool) {
	var value uint64
	var overflowed bool
	for i := n.DigitBegin; i < n.DigitEnd; i++ {
		d := uint64(charx.HexValue(n.Spelling[i]))
		hi, lo := bits.Mul64(value, uint64(n.Radix))
		sum, carry := bits.Add64(lo, d, 0)
		if hi != 0 || carry != 0 {
			overflowed = true
		}
		value = sum
	}
	if overflowed {
		value = math.MaxUint64
	}
	return value, overflowed
}
