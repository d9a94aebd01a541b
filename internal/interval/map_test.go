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

package interval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/ccompile/internal/interval"
)

func TestInsertAndGet(t *testing.T) {
	t.Parallel()

	var m interval.Map[int, string]

	assert.Nil(t, m.Insert(1, 5, "a").Value)
	assert.Nil(t, m.Insert(10, 12, "b").Value)

	hit := m.Get(3)
	require.NotNil(t, hit.Value)
	assert.Equal(t, "a", *hit.Value)
	assert.Equal(t, 1, hit.Start)
	assert.Equal(t, 5, hit.End)

	// Endpoints are inclusive.
	assert.NotNil(t, m.Get(5).Value)
	assert.NotNil(t, m.Get(10).Value)
	assert.Nil(t, m.Get(6).Value)
	assert.Nil(t, m.Get(0).Value)
	assert.Nil(t, m.Get(13).Value)
}

func TestInsertOverlap(t *testing.T) {
	t.Parallel()

	var m interval.Map[int, string]
	m.Insert(1, 5, "a")
	m.Insert(10, 12, "b")

	// An overlapping insert is rejected and reports what it hit.
	overlap := m.Insert(4, 11, "c")
	require.NotNil(t, overlap.Value)
	assert.Equal(t, "a", *overlap.Value)
	assert.Nil(t, m.Get(7).Value, "rejected insert must not be applied")

	// Touching only the second interval.
	overlap = m.Insert(12, 20, "d")
	require.NotNil(t, overlap.Value)
	assert.Equal(t, "b", *overlap.Value)

	// Adjacent but not overlapping is fine.
	assert.Nil(t, m.Insert(6, 9, "e").Value)
}

func TestRemove(t *testing.T) {
	t.Parallel()

	var m interval.Map[int, string]
	m.Insert(1, 5, "a")
	m.Remove(5)
	assert.Nil(t, m.Get(3).Value)
	assert.Nil(t, m.Insert(2, 4, "b").Value)
}

func TestIntervals(t *testing.T) {
	t.Parallel()

	var m interval.Map[int, string]
	m.Insert(10, 12, "b")
	m.Insert(1, 5, "a")
	m.Insert(20, 20, "c")

	var got []string
	for iv := range m.Intervals() {
		got = append(got, *iv.Value)
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)
}
