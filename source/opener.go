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

package source

import (
	"io"
	"io/fs"
	"strings"
)

// Opener is a mechanism for opening files.
type Opener interface {
	// Open opens a file, potentially returning an error.
	//
	// Note that the path of the returned file need not be path; the
	// returned path should *only* be used for diagnostics.
	Open(path string) (*File, error)
}

// Map implements [Opener] via lookup in a map from paths to file contents.
//
// Missing entries result in [fs.ErrNotExist].
type Map map[string]string

// Open implements [Opener].
func (m Map) Open(path string) (*File, error) {
	text, ok := m[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return NewFile(path, text), nil
}

// FS wraps an [fs.FS] to give it an [Opener] interface.
type FS struct {
	fs.FS
}

// Open implements [Opener].
func (o *FS) Open(path string) (*File, error) {
	file, err := o.FS.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var buf strings.Builder
	if _, err := io.Copy(&buf, file); err != nil {
		return nil, err
	}
	return NewFile(path, buf.String()), nil
}
