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
	"io"
	"strings"

	"github.com/bufbuild/ccompile/internal/interval"
	"github.com/bufbuild/ccompile/source"
)

// Renderer renders a [Report] as human-readable text.
type Renderer struct {
	// If set, the output is colored with ANSI escapes.
	Colorize bool
}

// RenderString renders a report to a string.
func (r Renderer) RenderString(report *Report) string {
	var buf strings.Builder
	_ = r.Render(report, &buf)
	return buf.String()
}

// Render renders each diagnostic in the report, in order, to w.
func (r Renderer) Render(report *Report, w io.Writer) error {
	for i := range report.Diagnostics {
		if err := r.diagnostic(&report.Diagnostics[i], w); err != nil {
			return err
		}
	}
	return nil
}

func (r Renderer) diagnostic(d *Diagnostic, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s%s: %s", r.color(d.level), d.level, d.message); err != nil {
		return err
	}
	if d.tag != "" {
		if _, err := fmt.Fprintf(w, " [%s]", d.tag); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "%s\n", r.reset()); err != nil {
		return err
	}

	primary := d.Primary()
	switch {
	case !primary.IsZero():
		loc := primary.StartLoc()
		if _, err := fmt.Fprintf(w, "  --> %s:%d:%d\n", primary.Path(), loc.Line, loc.Column); err != nil {
			return err
		}
		if err := r.windows(d, w); err != nil {
			return err
		}
	case d.inFile != "":
		if _, err := fmt.Fprintf(w, "  --> %s\n", d.inFile); err != nil {
			return err
		}
	}

	for _, n := range d.notes {
		if _, err := fmt.Fprintf(w, "   = note: %s\n", n); err != nil {
			return err
		}
	}
	for _, h := range d.help {
		if _, err := fmt.Fprintf(w, "   = help: %s\n", h); err != nil {
			return err
		}
	}
	return nil
}

// windows prints the annotated source snippets for d.
//
// Annotations whose line ranges touch or overlap are folded into a single
// window, so that two annotations on the same line produce one copy of
// that line. The fold is computed with an interval map over line numbers.
func (r Renderer) windows(d *Diagnostic, w io.Writer) error {
	type window struct {
		start, end  int // 1-indexed line range
		annotations []annotation
	}

	var windows []*window
	var byLine interval.Map[int, int]
	for _, a := range d.annotations {
		cand := &window{
			start:       a.File.Location(a.Start).Line,
			end:         a.File.Location(a.End).Line,
			annotations: []annotation{a},
		}
		for {
			// Pad by one so that windows on adjacent lines fuse.
			overlap := byLine.Insert(cand.start-1, cand.end+1, len(windows))
			if overlap.Value == nil {
				windows = append(windows, cand)
				break
			}

			// Fold the overlapping window into the candidate and retry
			// with the union.
			old := windows[*overlap.Value]
			cand.start = min(cand.start, old.start)
			cand.end = max(cand.end, old.end)
			cand.annotations = append(old.annotations, cand.annotations...)
			byLine.Remove(overlap.End)
		}
	}

	var gutter int
	for iv := range byLine.Intervals() {
		gutter = max(gutter, len(fmt.Sprint(windows[*iv.Value].end)))
	}
	if _, err := fmt.Fprintf(w, "%*s |\n", gutter+1, ""); err != nil {
		return err
	}

	for iv := range byLine.Intervals() {
		win := windows[*iv.Value]
		file := win.annotations[0].File
		for line := win.start; line <= win.end; line++ {
			text := file.Line(line)
			if _, err := fmt.Fprintf(w, "%*d | %s\n", gutter+1, line, expandTabs(text)); err != nil {
				return err
			}

			for _, a := range win.annotations {
				underline, ok := r.underline(file, line, a)
				if !ok {
					continue
				}
				if _, err := fmt.Fprintf(w, "%*s | %s%s%s\n", gutter+1, "", r.color(d.level), underline, r.reset()); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// underline builds the caret/tilde row for annotation a on the given line,
// or reports false if a does not start on that line.
func (r Renderer) underline(file *source.File, line int, a annotation) (string, bool) {
	start := file.Location(a.Start)
	if start.Line != line {
		return "", false
	}

	lineStart, lineEnd := file.LineOffsets(line)
	end := min(a.End, lineEnd) // Multi-line spans underline to end of line.

	text := file.Text()
	margin := stringWidth(0, text[lineStart:a.Start])
	width := max(stringWidth(margin, text[a.Start:end])-margin, 1)

	var row strings.Builder
	row.WriteString(strings.Repeat(" ", margin))
	if a.primary {
		row.WriteString("^")
		row.WriteString(strings.Repeat("~", width-1))
	} else {
		row.WriteString(strings.Repeat("-", width))
	}
	if a.message != "" {
		row.WriteString(" ")
		row.WriteString(a.message)
	}
	return row.String(), true
}

func (r Renderer) color(level Level) string {
	if !r.Colorize {
		return ""
	}
	switch level {
	case ICE, Error:
		return "\033[1;91m"
	case Warning:
		return "\033[1;93m"
	default:
		return "\033[1;96m"
	}
}

func (r Renderer) reset() string {
	if !r.Colorize {
		return ""
	}
	return "\033[0m"
}
