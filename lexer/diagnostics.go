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
	"fmt"

	"github.com/bufbuild/ccompile/report"
	"github.com/bufbuild/ccompile/source"
)

// Stable tags for every diagnostic the tokenizer can emit. Tests and
// tools match on these, so they never change spelling.
const (
	TagUnknownCharacter    report.Tag = "err_unknown_character"
	TagUnterminatedComment report.Tag = "err_unterminated_comment"
	TagUnterminatedChar    report.Tag = "err_unterminated_char_const"
	TagUnterminatedString  report.Tag = "err_unterminated_string"
	TagEmptyCharacter      report.Tag = "err_empty_character"
	TagUCNInvalid          report.Tag = "err_ucn_invalid"
	TagUCNIncomplete       report.Tag = "warn_ucn_incomplete"
)

// ErrUnknownCharacter diagnoses a byte that cannot begin any token.
type ErrUnknownCharacter struct {
	Char byte
	At   source.Span
}

func (e ErrUnknownCharacter) Error() string {
	return fmt.Sprintf("unknown character %q", rune(e.Char))
}

func (e ErrUnknownCharacter) Diagnose(d *report.Diagnostic) {
	d.With(TagUnknownCharacter, report.Snippet(e.At))
}

// ErrUnterminatedComment diagnoses a comment that runs off the end of
// the input. Which is "line" or "block".
type ErrUnterminatedComment struct {
	Which string
	At    source.Span
}

func (e ErrUnterminatedComment) Error() string {
	return fmt.Sprintf("unterminated %s comment", e.Which)
}

func (e ErrUnterminatedComment) Diagnose(d *report.Diagnostic) {
	d.With(TagUnterminatedComment, report.Snippet(e.At))
}

// ErrUnterminatedChar diagnoses a character constant missing its
// closing quote before the end of the line.
type ErrUnterminatedChar struct {
	At source.Span
}

func (e ErrUnterminatedChar) Error() string {
	return "missing terminating ' character"
}

func (e ErrUnterminatedChar) Diagnose(d *report.Diagnostic) {
	d.With(TagUnterminatedChar, report.Snippet(e.At))
}

// ErrUnterminatedString diagnoses a string literal missing its closing
// quote before the end of the line.
type ErrUnterminatedString struct {
	At source.Span
}

func (e ErrUnterminatedString) Error() string {
	return "missing terminating \" character"
}

func (e ErrUnterminatedString) Diagnose(d *report.Diagnostic) {
	d.With(TagUnterminatedString, report.Snippet(e.At))
}

// ErrEmptyCharacter diagnoses an empty character constant, ''.
type ErrEmptyCharacter struct {
	At source.Span
}

func (e ErrEmptyCharacter) Error() string {
	return "empty character constant"
}

func (e ErrEmptyCharacter) Diagnose(d *report.Diagnostic) {
	d.With(TagEmptyCharacter, report.Snippet(e.At))
}

// ErrUCNInvalid diagnoses a universal character name whose code point
// is outside the set C11 permits.
type ErrUCNInvalid struct {
	At source.Span
}

func (e ErrUCNInvalid) Error() string {
	return "invalid universal character name"
}

func (e ErrUCNInvalid) Diagnose(d *report.Diagnostic) {
	d.With(
		TagUCNInvalid,
		report.Snippet(e.At),
		report.Note("code points below U+00A0 (other than $, @, and `) and surrogates are not permitted"),
	)
}

// WarnUCNIncomplete diagnoses a \u or \U escape with too few hex
// digits. The spelling is left unconsumed by the tokenizer.
type WarnUCNIncomplete struct {
	At source.Span
}

func (e WarnUCNIncomplete) Error() string {
	return "incomplete universal character name"
}

func (e WarnUCNIncomplete) Diagnose(d *report.Diagnostic) {
	d.With(
		TagUCNIncomplete,
		report.Snippet(e.At),
		report.Help("\\u takes exactly four hex digits and \\U exactly eight"),
	)
}
