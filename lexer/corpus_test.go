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
	"fmt"
	"strings"
	"testing"

	"github.com/bufbuild/ccompile/internal/golden"
	"github.com/bufbuild/ccompile/lexer"
	"github.com/bufbuild/ccompile/report"
	"github.com/bufbuild/ccompile/source"
	"github.com/bufbuild/ccompile/token"
)

// TestCorpus lexes every file under testdata/ and compares the token
// dump and rendered diagnostics against golden files. Set
// CCOMPILE_REFRESH to a glob of case names to regenerate them.
func TestCorpus(t *testing.T) {
	t.Parallel()

	golden.Corpus{
		Root:      "testdata",
		Refresh:   "CCOMPILE_REFRESH",
		Extension: "c",
		Outputs: []golden.Output{
			{Extension: "tokens"},
			{Extension: "stderr"},
		},
		Test: func(t *testing.T, path, text string) []string {
			r := new(report.Report)
			lex := lexer.New(source.NewFile(path, text), r)

			var dump strings.Builder
			var tok token.Token
			for lex.Lex(&tok) {
				fmt.Fprintf(&dump, "%d:%d\t%s\t%q",
					tok.Range.Start, tok.Range.End, tok.Kind, tok.Text())
				if tok.IsDirty() {
					dump.WriteString("\tdirty")
				}
				if tok.HasUCN() {
					dump.WriteString("\tucn")
				}
				dump.WriteByte('\n')
			}

			return []string{dump.String(), report.Renderer{}.RenderString(r)}
		},
	}.Run(t)
}
