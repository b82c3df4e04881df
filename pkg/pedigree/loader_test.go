// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package pedigree

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const romanoffsYAML = `
members:
  - name: alexandra
    sex: female
  - name: nicholas
    sex: male
  - name: alexey
    sex: male
    mother: alexandra
    father: nicholas
  - name: anastasia
    sex: female
    mother: alexandra
    father: nicholas
`

func TestParseRegistry(t *testing.T) {
	r, err := ParseRegistry([]byte(romanoffsYAML))
	require.NoError(t, err)
	require.Equal(t, 4, r.Len())

	alexey, ok := r.Member("alexey")
	require.True(t, ok)
	assert.Equal(t, SexMale, alexey.Sex)
	assert.Equal(t, "alexandra", alexey.Mother)
	assert.Equal(t, "nicholas", alexey.Father)
}

func TestParseRegistryErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", `{{{`},
		{"empty", ``},
		{"no members", `members: []`},
		{"bad sex", "members:\n  - name: a\n    sex: unknown\n"},
		{"unknown parent", "members:\n  - name: a\n    sex: male\n    mother: ghost\n"},
		{"duplicate", "members:\n  - name: a\n    sex: male\n  - name: a\n    sex: male\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRegistry([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "family.yaml")
	require.NoError(t, os.WriteFile(path, []byte(romanoffsYAML), 0600))

	r, err := LoadRegistry(path)
	require.NoError(t, err)
	assert.Equal(t, 4, r.Len())

	_, err = LoadRegistry(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
