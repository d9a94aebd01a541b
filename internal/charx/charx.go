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

// Package charx provides the byte classification predicates shared by the
// tokenizer and the literal parsers.
//
// C11 source is processed byte-at-a-time; multibyte UTF-8 sequences only
// enter the token stream through universal character names, so these
// predicates all operate on single bytes except for the code point
// validity checks.
package charx

// IsDigit reports whether b is a decimal digit.
func IsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// IsOctDigit reports whether b is an octal digit.
func IsOctDigit(b byte) bool {
	return b >= '0' && b <= '7'
}

// IsHexDigit reports whether b is a hexadecimal digit of either case.
func IsHexDigit(b byte) bool {
	return IsDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// HexValue returns the numeric value of a hex digit. The result is
// unspecified if b is not a hex digit.
func HexValue(b byte) uint32 {
	switch {
	case b >= 'a':
		return uint32(b-'a') + 10
	case b >= 'A':
		return uint32(b-'A') + 10
	default:
		return uint32(b - '0')
	}
}

// IsNondigit reports whether b can begin an identifier: a letter or an
// underscore.
func IsNondigit(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// IsIdentifierBody reports whether b can continue an identifier.
func IsIdentifierBody(b byte) bool {
	return IsNondigit(b) || IsDigit(b)
}

// IsNewline reports whether b terminates a logical line.
func IsNewline(b byte) bool {
	return b == '\n' || b == '\r'
}

// IsWhitespace reports whether b is white space between tokens.
func IsWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\v', '\f', '\n', '\r':
		return true
	default:
		return false
	}
}

// IsValidUCN reports whether cp is a code point that a universal character
// name is permitted to designate (C11 6.4.3p2): at or above U+00A0 except
// for $, @, and `, and outside the surrogate range.
func IsValidUCN(cp uint32) bool {
	if cp < 0xA0 {
		return cp == '$' || cp == '@' || cp == '`'
	}
	return cp < 0xD800 || cp > 0xDFFF
}
