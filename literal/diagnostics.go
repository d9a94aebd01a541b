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

package literal

import (
	"fmt"

	"github.com/bufbuild/ccompile/report"
	"github.com/bufbuild/ccompile/source"
)

// Stable tags for the diagnostics the literal analyzers emit. The UCN
// diagnostics are shared with the lexer package, which owns their tags.
const (
	TagInvalidDigit            report.Tag = "err_invalid_digit"
	TagInvalidSuffix           report.Tag = "err_invalid_suffix"
	TagMissingExponent         report.Tag = "err_missing_exponent"
	TagInvalidHexEscape        report.Tag = "err_invalid_hex_escape"
	TagCharConstOverflow       report.Tag = "err_char_const_overflow"
	TagNonstandardStringConcat report.Tag = "err_nonstandard_string_concat"
)

// ErrInvalidDigit diagnoses a digit that is not valid for the
// constant's radix, such as an 8 in an octal constant.
type ErrInvalidDigit struct {
	Digit byte
	Radix int
	At    source.Span
}

func (e ErrInvalidDigit) Error() string {
	return fmt.Sprintf("invalid digit %q in base-%d constant", rune(e.Digit), e.Radix)
}

func (e ErrInvalidDigit) Diagnose(d *report.Diagnostic) {
	d.With(TagInvalidDigit, report.Snippet(e.At))
}

// ErrInvalidSuffix diagnoses a malformed suffix on a numeric constant.
type ErrInvalidSuffix struct {
	Suffix   string
	Floating bool
	At       source.Span
}

func (e ErrInvalidSuffix) Error() string {
	which := "integer"
	if e.Floating {
		which = "floating"
	}
	return fmt.Sprintf("invalid suffix %q on %s constant", e.Suffix, which)
}

func (e ErrInvalidSuffix) Diagnose(d *report.Diagnostic) {
	d.With(TagInvalidSuffix, report.Snippet(e.At))
}

// ErrMissingExponent diagnoses an exponent letter with no digits after
// it, and hexadecimal floating constants lacking their mandatory binary
// exponent.
type ErrMissingExponent struct {
	At source.Span
}

func (e ErrMissingExponent) Error() string {
	return "exponent has no digits"
}

func (e ErrMissingExponent) Diagnose(d *report.Diagnostic) {
	d.With(TagMissingExponent, report.Snippet(e.At))
}

// ErrInvalidHexEscape diagnoses a \x escape with no hex digits.
type ErrInvalidHexEscape struct {
	At source.Span
}

func (e ErrInvalidHexEscape) Error() string {
	return "\\x used with no following hex digits"
}

func (e ErrInvalidHexEscape) Diagnose(d *report.Diagnostic) {
	d.With(TagInvalidHexEscape, report.Snippet(e.At))
}

// ErrCharConstOverflow diagnoses a character constant whose value does
// not fit in its encoding.
type ErrCharConstOverflow struct {
	At source.Span
}

func (e ErrCharConstOverflow) Error() string {
	return "character constant too large for its type"
}

func (e ErrCharConstOverflow) Diagnose(d *report.Diagnostic) {
	d.With(TagCharConstOverflow, report.Snippet(e.At))
}

// ErrNonstandardStringConcat diagnoses adjacent string literals with
// conflicting encoding prefixes.
type ErrNonstandardStringConcat struct {
	At source.Span
}

func (e ErrNonstandardStringConcat) Error() string {
	return "unsupported non-standard concatenation of string literals"
}

func (e ErrNonstandardStringConcat) Diagnose(d *report.Diagnostic) {
	d.With(TagNonstandardStringConcat, report.Snippet(e.At))
}
