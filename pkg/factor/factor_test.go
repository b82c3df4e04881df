// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package factor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsMalformedRows(t *testing.T) {
	_, err := New([]string{"A", "B"}, []Row{
		{Assignment: []string{"0"}, Value: 0.5},
	})
	require.ErrorIs(t, err, ErrBadRowWidth)

	_, err = New([]string{"A"}, []Row{
		{Assignment: []string{"0"}, Value: 0.5},
		{Assignment: []string{"0"}, Value: 0.5},
	})
	require.ErrorIs(t, err, ErrDuplicateAssignment)
}

func TestNewCopiesInputs(t *testing.T) {
	scope := []string{"A"}
	rows := []Row{{Assignment: []string{"0"}, Value: 1.0}}
	f, err := New(scope, rows)
	require.NoError(t, err)

	scope[0] = "mutated"
	rows[0].Assignment[0] = "mutated"

	assert.Equal(t, []string{"A"}, f.Scope())
	assert.Equal(t, []string{"0"}, f.Rows()[0].Assignment)
}

func TestLookup(t *testing.T) {
	f := MustNew([]string{"G", "H"}, []Row{
		{Assignment: []string{"xx", "-"}, Value: 1.0},
		{Assignment: []string{"xx", "+"}, Value: 0.0},
	})

	t.Run("success", func(t *testing.T) {
		v, err := f.Lookup(Event{"G": "xx", "H": "-"})
		require.NoError(t, err)
		assert.Equal(t, 1.0, v)
	})

	t.Run("extra variables ignored", func(t *testing.T) {
		v, err := f.Lookup(Event{"G": "xx", "H": "+", "Unrelated": "zzz"})
		require.NoError(t, err)
		assert.Equal(t, 0.0, v)
	})

	t.Run("missing scope variable", func(t *testing.T) {
		_, err := f.Lookup(Event{"G": "xx"})
		require.ErrorIs(t, err, ErrMissingVariable)
		assert.Contains(t, err.Error(), "H")
	})

	t.Run("undefined assignment", func(t *testing.T) {
		_, err := f.Lookup(Event{"G": "XX", "H": "-"})
		require.ErrorIs(t, err, ErrUndefinedAssignment)
		assert.Contains(t, err.Error(), "G=XX")
	})
}

func TestInScope(t *testing.T) {
	f := MustNew([]string{"A", "B"}, nil)
	assert.True(t, f.InScope("A"))
	assert.True(t, f.InScope("B"))
	assert.False(t, f.InScope("C"))
}

func TestEvents(t *testing.T) {
	domains := Domains{
		"A": {"0", "1"},
		"B": {"x", "y", "z"},
	}

	events := Events([]string{"A", "B"}, domains)
	require.Len(t, events, 6)

	// Last variable cycles fastest.
	assert.Equal(t, Event{"A": "0", "B": "x"}, events[0])
	assert.Equal(t, Event{"A": "0", "B": "y"}, events[1])
	assert.Equal(t, Event{"A": "1", "B": "z"}, events[5])
}

func TestEventsEmptyDomain(t *testing.T) {
	events := Events([]string{"A"}, Domains{"A": nil})
	assert.Empty(t, events)
}

func TestEventsNoVariables(t *testing.T) {
	events := Events(nil, Domains{})
	require.Len(t, events, 1)
	assert.Empty(t, events[0])
}

func TestString(t *testing.T) {
	f := MustNew([]string{"A"}, []Row{
		{Assignment: []string{"0"}, Value: 0.25},
		{Assignment: []string{"1"}, Value: 0.75},
	})
	s := f.String()
	assert.Contains(t, s, "[A]:")
	assert.Contains(t, s, "[0]: 0.25")
	assert.Contains(t, s, "[1]: 0.75")
}
