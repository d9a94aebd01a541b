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

package report

import (
	"fmt"

	"github.com/bufbuild/ccompile/source"
)

// Level represents the severity of a diagnostic message.
type Level int8

const (
	// Internal compiler error. Indicates a panic within the compiler.
	ICE Level = 1 + iota
	// Indicates a constraint violation in the input.
	Error
	// Indicates something that probably should not be ignored.
	Warning
	// The diagnostics version of "info".
	Remark
)

// String implements [fmt.Stringer].
func (l Level) String() string {
	switch l {
	case ICE:
		return "internal compiler error"
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Remark:
		return "remark"
	default:
		return fmt.Sprintf("report.Level(%d)", int8(l))
	}
}

// Tag is a machine-readable identification for a diagnostic.
//
// A package that generates tagged diagnostics should expose its tags as
// constants; tags are stable identifiers that tests and tools may match on.
type Tag string

// Apply implements [DiagnosticOption].
func (t Tag) Apply(d *Diagnostic) {
	if d.tag != "" {
		panic("ccompile/report: set diagnostic tag more than once")
	}
	d.tag = t
}

// Diagnose is an error that can be rendered as a rich diagnostic.
type Diagnose interface {
	error

	// Diagnose writes out this error to the given diagnostic.
	//
	// This function should not set the level or the message; those are set
	// by the diagnostics framework.
	Diagnose(*Diagnostic)
}

// Diagnostic is a structured compiler message: an error, a warning, or a
// remark, with a location and a stable tag.
//
// To construct a diagnostic, use a function like [Report.Error], then
// apply options with [Diagnostic.With].
type Diagnostic struct {
	tag     Tag
	message string
	level   Level

	// The file this diagnostic occurs in, if it has no annotations. Used
	// for errors that cannot be given a snippet.
	inFile string

	annotations []annotation
	notes, help []string
}

// DiagnosticOption is an option that can be applied to a [Diagnostic].
//
// Nil values passed to [Diagnostic.With] are ignored.
type DiagnosticOption interface {
	Apply(*Diagnostic)
}

// Level returns this diagnostic's severity.
func (d *Diagnostic) Level() Level {
	return d.level
}

// Tag returns this diagnostic's stable tag, which may be empty.
func (d *Diagnostic) Tag() Tag {
	return d.tag
}

// Is checks whether this diagnostic has a particular tag.
func (d *Diagnostic) Is(tag Tag) bool {
	return d.tag == tag
}

// Message returns the main diagnostic message.
func (d *Diagnostic) Message() string {
	return d.message
}

// Primary returns this diagnostic's primary span, if it has one.
//
// If it doesn't have one, it returns the zero span.
func (d *Diagnostic) Primary() source.Span {
	for _, a := range d.annotations {
		if a.primary {
			return a.Span
		}
	}
	return source.Span{}
}

// With applies the given options to this diagnostic.
//
// Nil values are ignored.
func (d *Diagnostic) With(options ...DiagnosticOption) *Diagnostic {
	for _, option := range options {
		if option != nil {
			option.Apply(d)
		}
	}
	return d
}

// InFile is a DiagnosticOption that causes a diagnostic without a primary
// span to mention the given file.
type InFile string

// Apply implements [DiagnosticOption].
func (f InFile) Apply(d *Diagnostic) {
	d.inFile = string(f)
}

// Snippet returns a DiagnosticOption that adds an annotated source span to
// a diagnostic.
//
// Any additional arguments are passed to [fmt.Sprintf] to produce a
// message to go with the span; Snippet(span) is equivalent to
// Snippet(span, "").
//
// The first annotation added is the "primary" annotation: the position the
// diagnostic is reported at.
func Snippet(at source.Spanner, args ...any) DiagnosticOption {
	if at == nil {
		return nil
	}
	span := at.Span()
	if span.IsZero() {
		return nil
	}

	a := annotation{Span: span}
	if len(args) > 0 {
		format, ok := args[0].(string)
		if !ok {
			panic("ccompile/report: expected string as first Snippet argument")
		}
		a.message = fmt.Sprintf(format, args[1:]...)
	}
	return a
}

// Note returns a DiagnosticOption that provides the user with context
// about the diagnostic, after the annotations.
func Note(format string, args ...any) DiagnosticOption {
	return note(fmt.Sprintf(format, args...))
}

// Help returns a DiagnosticOption that provides the user with a prose
// suggestion for resolving the diagnostic.
func Help(format string, args ...any) DiagnosticOption {
	return help(fmt.Sprintf(format, args...))
}

// annotation is an annotated source code snippet within a [Diagnostic]:
// an underlined region with an optional note attached to it.
type annotation struct {
	source.Span

	message string
	primary bool
}

// Apply implements [DiagnosticOption].
func (a annotation) Apply(d *Diagnostic) {
	a.primary = len(d.annotations) == 0
	d.annotations = append(d.annotations, a)
}

type note string
type help string

func (n note) Apply(d *Diagnostic) { d.notes = append(d.notes, string(n)) }
func (h help) Apply(d *Diagnostic) { d.help = append(d.help, string(h)) }
