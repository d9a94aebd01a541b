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

// Package ccompile provides the front end of a C11 compiler: a
// tokenizer, literal analyzers, and the batch driver that runs them
// over many files at once.
package ccompile

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/bufbuild/ccompile/lexer"
	"github.com/bufbuild/ccompile/report"
	"github.com/bufbuild/ccompile/source"
	"github.com/bufbuild/ccompile/token"
)

// Tokenizer handles batch tokenization tasks: it loads each named file
// through its opener and drains a token stream over it.
//
// Lexing one file is strictly sequential; parallelism comes from
// working on many files at once.
type Tokenizer struct {
	// Resolves path names into source text. This is the only required
	// field.
	Opener source.Opener

	// The maximum parallelism to use. If unspecified or non-positive,
	// min(runtime.NumCPU(), runtime.GOMAXPROCS(-1)) is used.
	MaxParallelism int
}

// Result is the outcome of tokenizing one file. The report holds any
// diagnostics the lexer produced for it, in source order.
type Result struct {
	File   *source.File
	Tokens []token.Token
	Report report.Report
}

// Tokenize tokenizes every named file, in parallel, and returns the
// results in the order the paths were given.
//
// An error is returned only for failures to load input: diagnostics in
// the sources land in each result's report instead. On a load error or
// context cancellation, every remaining file is still drained or
// skipped and the first error is returned alongside the results so far.
func (c *Tokenizer) Tokenize(ctx context.Context, paths ...string) ([]Result, error) {
	par := c.MaxParallelism
	if par <= 0 {
		par = min(runtime.NumCPU(), runtime.GOMAXPROCS(-1))
	}

	sem := semaphore.NewWeighted(int64(par))
	results := make([]Result, len(paths))
	errs := make([]error, len(paths))

	var wg sync.WaitGroup
	for i, path := range paths {
		if err := sem.Acquire(ctx, 1); err != nil {
			errs[i] = err
			break
		}
		wg.Add(1)
		go func() {
			defer sem.Release(1)
			defer wg.Done()
			results[i], errs[i] = c.tokenizeOne(path)
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

func (c *Tokenizer) tokenizeOne(path string) (Result, error) {
	file, err := c.Opener.Open(path)
	if err != nil {
		return Result{}, err
	}

	result := Result{File: file}
	stream := lexer.NewStream(file, &result.Report)
	for !stream.Empty() {
		result.Tokens = append(result.Tokens, stream.Consume())
	}
	return result, nil
}
