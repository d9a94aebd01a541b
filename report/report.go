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

// Package report provides the diagnostics engine: structured, taggable
// compiler diagnostics and a renderer for showing them to users.
package report

import (
	"cmp"
	"fmt"
	"slices"
)

// Report is a collection of diagnostics: the sink every other component
// reports into.
//
// A Report is a single-writer value; it must not be appended to from
// multiple goroutines without external synchronization.
type Report struct {
	Diagnostics []Diagnostic
}

// Error pushes an error diagnostic onto this report.
func (r *Report) Error(err Diagnose) *Diagnostic {
	d := r.push(err.Error(), Error)
	err.Diagnose(d)
	return d
}

// Warn pushes a warning diagnostic onto this report.
func (r *Report) Warn(err Diagnose) *Diagnostic {
	d := r.push(err.Error(), Warning)
	err.Diagnose(d)
	return d
}

// Errorf creates a new error diagnostic with an untyped message; analogous
// to [fmt.Errorf].
func (r *Report) Errorf(format string, args ...any) *Diagnostic {
	return r.push(fmt.Sprintf(format, args...), Error)
}

// Warnf creates a new warning diagnostic with an untyped message.
func (r *Report) Warnf(format string, args ...any) *Diagnostic {
	return r.push(fmt.Sprintf(format, args...), Warning)
}

// Remarkf creates a new remark diagnostic with an untyped message.
func (r *Report) Remarkf(format string, args ...any) *Diagnostic {
	return r.push(fmt.Sprintf(format, args...), Remark)
}

// HasErrors returns whether this report contains any diagnostics of
// [Error] severity or worse.
func (r *Report) HasErrors() bool {
	return slices.ContainsFunc(r.Diagnostics, func(d Diagnostic) bool {
		return d.level <= Error
	})
}

// HasWarnings returns whether this report contains any warnings.
func (r *Report) HasWarnings() bool {
	return slices.ContainsFunc(r.Diagnostics, func(d Diagnostic) bool {
		return d.level == Warning
	})
}

// Count returns the number of diagnostics with exactly the given level.
func (r *Report) Count(level Level) int {
	var n int
	for i := range r.Diagnostics {
		if r.Diagnostics[i].level == level {
			n++
		}
	}
	return n
}

// Sort stably sorts this report's diagnostics by file path, then by start
// offset of the primary span.
//
// Diagnostics produced by a single lex of a single file are already in
// source order; Sort is for merging reports across files or after
// analyzers run out of lex order.
func (r *Report) Sort() {
	slices.SortStableFunc(r.Diagnostics, func(a, b Diagnostic) int {
		aSpan, bSpan := a.Primary(), b.Primary()
		if diff := cmp.Compare(aSpan.Path(), bSpan.Path()); diff != 0 {
			return diff
		}
		return cmp.Compare(aSpan.Start, bSpan.Start)
	})
}

func (r *Report) push(message string, level Level) *Diagnostic {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{message: message, level: level})
	return &r.Diagnostics[len(r.Diagnostics)-1]
}
